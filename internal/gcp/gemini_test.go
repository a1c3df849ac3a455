package gcp

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"
)

func TestNewGeminiClientRequiresKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), "", "")
	assert.Error(t, err)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("QG_TEST_SET", "value")
	t.Setenv("QG_TEST_EMPTY", "")

	assert.Equal(t, "value", GetEnv("QG_TEST_SET", "fallback"))
	assert.Equal(t, "fallback", GetEnv("QG_TEST_EMPTY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("QG_TEST_UNSET_VARIABLE", "fallback"))
}

func TestDescribeGeminiError(t *testing.T) {
	quota := genai.APIError{Code: 429, Message: "Resource has been exhausted", Status: "RESOURCE_EXHAUSTED"}

	err := describeGeminiError(quota)
	assert.Contains(t, err.Error(), "gemini API returned HTTP 429")

	err = describeGeminiError(fmt.Errorf("generate: %w", quota))
	assert.Contains(t, err.Error(), "gemini API returned HTTP 429")
	var apiErr genai.APIError
	assert.ErrorAs(t, err, &apiErr)

	err = describeGeminiError(errors.New("dial tcp: connection refused"))
	assert.Contains(t, err.Error(), "gemini request failed")
}
