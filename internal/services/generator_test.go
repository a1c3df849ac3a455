package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Lllllllleong/questiongenerator/internal/services"
	"github.com/Lllllllleong/questiongenerator/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrompt(t *testing.T) {
	assert.Equal(t,
		"Extract 3 important questions from the following content:\n\nHello world.",
		services.BuildPrompt(3, "Hello world."))
}

func TestGenerateEmptyTextSkipsModel(t *testing.T) {
	model := &testutil.StubModel{Reply: "Q?"}
	g := services.NewQuestionGenerator(model, 0)

	result := g.Generate(context.Background(), "", 5)

	require.NotNil(t, result.Failure)
	assert.Equal(t, services.FailureNoText, result.Failure.Kind)
	assert.Zero(t, model.Calls())
}

func TestGenerateInvalidCountSkipsModel(t *testing.T) {
	model := &testutil.StubModel{Reply: "Q?"}
	g := services.NewQuestionGenerator(model, 0)

	for _, count := range []int{0, -1} {
		result := g.Generate(context.Background(), "some text", count)
		require.NotNil(t, result.Failure)
		assert.Equal(t, services.FailureInvalidCount, result.Failure.Kind)
	}
	assert.Zero(t, model.Calls())
}

func TestGenerateWithoutModel(t *testing.T) {
	g := services.NewQuestionGenerator(nil, 0)

	result := g.Generate(context.Background(), "some text", 5)

	require.NotNil(t, result.Failure)
	assert.Equal(t, services.FailureMissingCredential, result.Failure.Kind)
	assert.NotEmpty(t, result.Failure.Detail)
}

func TestGenerateSendsFullTextUntruncated(t *testing.T) {
	model := &testutil.StubModel{Reply: "1. Why?"}
	g := services.NewQuestionGenerator(model, 0)

	long := make([]byte, 200_000)
	for i := range long {
		long[i] = 'a' + byte(i%26)
	}
	result := g.Generate(context.Background(), string(long), 12)

	require.True(t, result.OK())
	assert.Equal(t, "1. Why?", result.Questions)
	require.Equal(t, 1, model.Calls())
	assert.Equal(t, services.BuildPrompt(12, string(long)), model.Prompts()[0])
}

func TestGenerateReturnsReplyVerbatim(t *testing.T) {
	reply := "  1. What is X?\n2. Why Y?\n"
	g := services.NewQuestionGenerator(&testutil.StubModel{Reply: reply}, 0)

	result := g.Generate(context.Background(), "text", 2)

	require.True(t, result.OK())
	assert.Equal(t, reply, result.Questions)
}

func TestGenerateModelError(t *testing.T) {
	model := &testutil.StubModel{Err: errors.New("quota exceeded")}
	g := services.NewQuestionGenerator(model, 0)

	result := g.Generate(context.Background(), "text", 2)

	require.NotNil(t, result.Failure)
	assert.Equal(t, services.FailureGeneration, result.Failure.Kind)
	assert.Contains(t, result.Failure.Detail, "quota exceeded")
	assert.Equal(t, 1, model.Calls())
}

func TestGenerateEmptyReply(t *testing.T) {
	for _, reply := range []string{"", "  \n"} {
		g := services.NewQuestionGenerator(&testutil.StubModel{Reply: reply}, 0)
		result := g.Generate(context.Background(), "text", 2)
		require.NotNil(t, result.Failure)
		assert.Equal(t, services.FailureEmptyResponse, result.Failure.Kind)
	}
}

func TestGenerateRateLimit(t *testing.T) {
	model := &testutil.StubModel{Reply: "Q?"}
	g := services.NewQuestionGenerator(model, 1)

	first := g.Generate(context.Background(), "text", 1)
	second := g.Generate(context.Background(), "text", 1)

	assert.True(t, first.OK())
	require.NotNil(t, second.Failure)
	assert.Equal(t, services.FailureRateLimited, second.Failure.Kind)
	assert.Equal(t, 1, model.Calls())
}
