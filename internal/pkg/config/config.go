package config

import (
	"fmt"
	"os"
)

// ProviderConfig holds the settings for one AI completion provider.
type ProviderConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Enabled bool
}

type Config struct {
	ServerPort    string
	MetricsPort   string
	PprofPort     string
	SessionSecret string

	// Primary is the deep-research provider that drafts itineraries;
	// Enhancement is the optional second pass that restyles them.
	Primary     ProviderConfig
	Enhancement ProviderConfig
}

// Load reads the configuration from the environment exactly once at process
// start. Which of the three generation paths runs (mock only, primary only,
// primary plus enhancement) is decided here and nowhere else.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:    getEnvOrDefault("SERVER_PORT", "8091"),
		MetricsPort:   getEnvOrDefault("METRICS_PORT", "9092"),
		PprofPort:     getEnvOrDefault("PPROF_PORT", "6060"),
		SessionSecret: getEnvOrDefault("SESSION_SECRET", "roamgen-dev-secret"),
		Primary: ProviderConfig{
			APIKey:  os.Getenv("PERPLEXITY_API_KEY"),
			BaseURL: getEnvOrDefault("PERPLEXITY_BASE_URL", "https://api.perplexity.ai"),
			Model:   getEnvOrDefault("PERPLEXITY_MODEL", "sonar-deep-research"),
			Enabled: os.Getenv("USE_PERPLEXITY") == "true",
		},
		Enhancement: ProviderConfig{
			APIKey:  os.Getenv("OPENAI_API_KEY"),
			BaseURL: getEnvOrDefault("OPENAI_BASE_URL", ""),
			Model:   getEnvOrDefault("OPENAI_MODEL", "gpt-4-turbo"),
			Enabled: os.Getenv("USE_CHATGPT") == "true",
		},
	}

	if cfg.Primary.Enabled && cfg.Primary.APIKey == "" {
		return nil, fmt.Errorf("USE_PERPLEXITY is set but PERPLEXITY_API_KEY is empty")
	}
	if cfg.Enhancement.Enabled && cfg.Enhancement.APIKey == "" {
		return nil, fmt.Errorf("USE_CHATGPT is set but OPENAI_API_KEY is empty")
	}

	return cfg, nil
}

// UsePrimary reports whether the real generation provider should be called
// instead of the deterministic mock generator.
func (c *Config) UsePrimary() bool {
	return c.Primary.Enabled && c.Primary.APIKey != ""
}

// UseEnhancement reports whether the optional second pass is configured.
func (c *Config) UseEnhancement() bool {
	return c.Enhancement.Enabled && c.Enhancement.APIKey != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
