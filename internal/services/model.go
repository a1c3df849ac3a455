package services

import (
	"context"
	"log/slog"

	"github.com/Lllllllleong/questiongenerator/internal/gcp"
)

// TextModel is a remote generative model that answers one prompt with one text response.
type TextModel interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	ModelID() string
}

const (
	MissingGeminiKeyWarning = "⚠️ Gemini API Key is missing! Set it as an environment variable."
	MissingProjectWarning   = "⚠️ Vertex AI project is missing! Set PROJECT_ID as an environment variable."
	modelUnavailableWarning = "⚠️ The question model could not be initialised. Generation is unavailable."
)

// NewModel builds the process-wide model client for the configured backend. When the
// credential is absent, or the client cannot be created, it returns a nil model and a
// warning for the UI instead of an error.
func NewModel(ctx context.Context, cfg *Config) (TextModel, string) {
	switch cfg.Backend {
	case BackendVertex:
		if cfg.ProjectID == "" {
			return nil, MissingProjectWarning
		}
		client, err := gcp.NewVertexClient(ctx, cfg.ProjectID, cfg.VertexAIRegion, cfg.ModelName)
		if err != nil {
			slog.Error("Failed to create Vertex AI client", "error", err, "projectId", cfg.ProjectID, "region", cfg.VertexAIRegion)
			return nil, modelUnavailableWarning
		}
		slog.Info("Vertex AI model configured.", "model", client.ModelID(), "region", cfg.VertexAIRegion)
		return client, ""
	default:
		if cfg.GeminiAPIKey == "" {
			return nil, MissingGeminiKeyWarning
		}
		client, err := gcp.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.ModelName)
		if err != nil {
			slog.Error("Failed to create Gemini client", "error", err)
			return nil, modelUnavailableWarning
		}
		slog.Info("Gemini model configured.", "model", client.ModelID())
		return client, ""
	}
}
