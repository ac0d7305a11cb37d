package planner

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	"github.com/roamgen/roamgen/internal/app/models"
	"github.com/roamgen/roamgen/internal/pkg/config"
)

// CompletionClient is the contract for both AI collaborators: a single prompt
// exchange returning the raw message content. Implementations are treated as
// black boxes; the pipeline only cares about the text and the error kind.
type CompletionClient interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// OpenAICompatClient speaks the OpenAI chat-completions envelope, which both
// the deep-research provider and the enhancement provider expose. The base
// URL selects the provider.
type OpenAICompatClient struct {
	client *openai.Client
	model  string
}

// NewCompletionClient builds a client for one provider from its config block.
func NewCompletionClient(cfg config.ProviderConfig) *OpenAICompatClient {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &OpenAICompatClient{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
	}
}

// Complete issues a single chat completion with the fixed system instruction
// and the rendered prompt. No retries: every failure surfaces once, mapped to
// the pipeline's error taxonomy.
func (c *OpenAICompatClient) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		MaxTokens:   4000,
		Temperature: 0.7,
	})
	if err != nil {
		return "", mapCompletionError(err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: empty choices", models.ErrMalformedResponse)
	}
	return resp.Choices[0].Message.Content, nil
}

// mapCompletionError translates provider errors into the domain error kinds
// by HTTP status. Transport-level failures without a status collapse into the
// generic upstream kind.
func mapCompletionError(err error) error {
	status := 0

	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	}

	switch status {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %v", models.ErrMissingCredentials, err)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %v", models.ErrRateLimited, err)
	default:
		return fmt.Errorf("%w: %v", models.ErrUpstreamAPI, err)
	}
}
