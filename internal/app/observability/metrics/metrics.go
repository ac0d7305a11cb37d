package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
// Make fields public so they can be accessed from other packages.
type AppMetrics struct {
	HTTPRequestsTotal        metric.Int64Counter
	HTTPRequestDuration      metric.Float64Histogram
	GenerationRequestsTotal  metric.Int64Counter
	GenerationDuration       metric.Float64Histogram
	ExtractionFailuresTotal  metric.Int64Counter
	RepairTier2Total         metric.Int64Counter
	RepairFailuresTotal      metric.Int64Counter
	EnhancementFailuresTotal metric.Int64Counter
	MockFallbacksTotal       metric.Int64Counter
}

var (
	// Global instance of AppMetrics (initialized once)
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metrics instruments ONLY ONCE.
// It gets the Meter from the globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("roamgen")
		var err error
		m := &AppMetrics{}

		m.HTTPRequestsTotal, err = meter.Int64Counter(
			"http_requests_total",
			metric.WithDescription("Total number of HTTP requests completed"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create http_requests_total: %v", err)
		}

		m.HTTPRequestDuration, err = meter.Float64Histogram(
			"http_request_duration_seconds",
			metric.WithDescription("Duration of HTTP requests in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create http_request_duration_seconds: %v", err)
		}

		m.GenerationRequestsTotal, err = meter.Int64Counter(
			"itinerary_generation_requests_total",
			metric.WithDescription("Total number of itinerary generation requests by path (mock, primary, enhanced)"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create itinerary_generation_requests_total: %v", err)
		}

		m.GenerationDuration, err = meter.Float64Histogram(
			"itinerary_generation_duration_seconds",
			metric.WithDescription("Duration of full pipeline runs in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create itinerary_generation_duration_seconds: %v", err)
		}

		m.ExtractionFailuresTotal, err = meter.Int64Counter(
			"itinerary_extraction_failures_total",
			metric.WithDescription("Responses with no JSON-shaped payload"),
			metric.WithUnit("{response}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create itinerary_extraction_failures_total: %v", err)
		}

		m.RepairTier2Total, err = meter.Int64Counter(
			"itinerary_repair_tier2_total",
			metric.WithDescription("Responses that needed textual JSON repair before parsing"),
			metric.WithUnit("{response}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create itinerary_repair_tier2_total: %v", err)
		}

		m.RepairFailuresTotal, err = meter.Int64Counter(
			"itinerary_repair_failures_total",
			metric.WithDescription("Responses unparseable after all repair tiers"),
			metric.WithUnit("{response}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create itinerary_repair_failures_total: %v", err)
		}

		m.EnhancementFailuresTotal, err = meter.Int64Counter(
			"itinerary_enhancement_failures_total",
			metric.WithDescription("Enhancement passes that failed and were discarded"),
			metric.WithUnit("{pass}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create itinerary_enhancement_failures_total: %v", err)
		}

		m.MockFallbacksTotal, err = meter.Int64Counter(
			"itinerary_mock_fallbacks_total",
			metric.WithDescription("Generations served by the mock generator after a pipeline failure"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create itinerary_mock_fallbacks_total: %v", err)
		}

		appMetrics = m
	})
}

// Get returns the global metrics instance, initializing it if needed.
func Get() *AppMetrics {
	InitAppMetrics()
	return appMetrics
}
