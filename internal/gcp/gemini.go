package gcp

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// GeminiClient serves question generation through the Gemini API with an API key.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a Gemini API client. The key is held by the client for the
// lifetime of the process.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = DefaultQuestionModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, model: model}, nil
}

// GenerateText sends a single prompt and returns the response text as-is.
func (c *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", describeGeminiError(err)
	}
	if result == nil {
		return "", nil
	}
	return result.Text(), nil
}

func (c *GeminiClient) ModelID() string {
	return c.model
}

func describeGeminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("gemini API returned HTTP %d: %w", apiErr.Code, err)
	}
	return fmt.Errorf("gemini request failed: %w", err)
}
