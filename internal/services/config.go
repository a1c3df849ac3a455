package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Lllllllleong/questiongenerator/internal/gcp"
)

const (
	BackendGemini = "gemini"
	BackendVertex = "vertex"

	// DefaultQuestionCount is the count shown in the form before the user changes it.
	DefaultQuestionCount = 5

	defaultMaxUploadMB = 200
)

// Config holds all configuration for the question generator.
type Config struct {
	Backend        string
	GeminiAPIKey   string
	ModelName      string
	ProjectID      string
	VertexAIRegion string
	MaxUploadBytes int64
	// RatePerMinute caps remote generation calls process-wide. Zero means unlimited.
	RatePerMinute int
}

// LoadConfig reads and validates the environment. A missing credential is not an error:
// the service still starts and reports the problem on every generation attempt.
func LoadConfig() (*Config, error) {
	backend := strings.ToLower(strings.TrimSpace(gcp.GetEnv("QUESTIONS_BACKEND", BackendGemini)))
	if backend != BackendGemini && backend != BackendVertex {
		return nil, fmt.Errorf("QUESTIONS_BACKEND must be %q or %q, got %q", BackendGemini, BackendVertex, backend)
	}

	maxUploadMB, err := strconv.Atoi(gcp.GetEnv("MAX_UPLOAD_MB", strconv.Itoa(defaultMaxUploadMB)))
	if err != nil || maxUploadMB < 1 {
		return nil, fmt.Errorf("MAX_UPLOAD_MB must be a positive integer")
	}

	ratePerMinute, err := strconv.Atoi(gcp.GetEnv("GENERATION_RATE_PER_MINUTE", "0"))
	if err != nil || ratePerMinute < 0 {
		return nil, fmt.Errorf("GENERATION_RATE_PER_MINUTE must be a non-negative integer")
	}

	return &Config{
		Backend:        backend,
		GeminiAPIKey:   gcp.GetEnv("GEMINI_API_KEY", ""),
		ModelName:      gcp.GetEnv("GEMINI_MODEL", gcp.DefaultQuestionModel),
		ProjectID:      gcp.GetEnv("PROJECT_ID", ""),
		VertexAIRegion: gcp.GetEnv("VERTEX_AI_REGION", "us-central1"),
		MaxUploadBytes: int64(maxUploadMB) << 20,
		RatePerMinute:  ratePerMinute,
	}, nil
}
