package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Lllllllleong/questiongenerator/internal/gcp"
	"golang.org/x/time/rate"
)

// QuestionGenerator turns extracted text into questions with one remote model call.
type QuestionGenerator struct {
	model   TextModel
	limiter *rate.Limiter
}

// NewQuestionGenerator wraps model, which may be nil when no credential is configured.
// ratePerMinute > 0 caps remote calls process-wide; excess requests fail immediately.
func NewQuestionGenerator(model TextModel, ratePerMinute int) *QuestionGenerator {
	g := &QuestionGenerator{model: model}
	if ratePerMinute > 0 {
		g.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(ratePerMinute)), ratePerMinute)
	}
	return g
}

// BuildPrompt embeds the count and the full text in the question instruction.
func BuildPrompt(count int, text string) string {
	return fmt.Sprintf(gcp.QuestionUserPrompt, count, text)
}

// Generate checks its inputs, then asks the model for count questions about text.
func (g *QuestionGenerator) Generate(ctx context.Context, text string, count int) Result {
	return g.generate(ctx, slog.Default(), text, count)
}

func (g *QuestionGenerator) generate(ctx context.Context, logCtx *slog.Logger, text string, count int) Result {
	if text == "" {
		logCtx.Warn("No text extracted; skipping generation.")
		return failed(FailureNoText, "")
	}
	if count < 1 {
		return failed(FailureInvalidCount, fmt.Sprintf("question count must be at least 1, got %d", count))
	}
	if g.model == nil {
		logCtx.Warn("Generation requested without a configured model.")
		return failed(FailureMissingCredential, "Gemini API key is not configured")
	}
	if g.limiter != nil && !g.limiter.Allow() {
		logCtx.Warn("Generation rate limit reached.")
		return failed(FailureRateLimited, "too many requests, please try again in a minute")
	}

	prompt := BuildPrompt(count, text)
	logCtx.Info("Calling question model.", "model", g.model.ModelID(), "promptChars", len(prompt))

	start := time.Now()
	questions, err := g.model.GenerateText(ctx, prompt)
	if err != nil {
		logCtx.Error("Call to question model failed", "error", err, "elapsed", time.Since(start).String())
		return failed(FailureGeneration, err.Error())
	}
	if strings.TrimSpace(questions) == "" {
		logCtx.Warn("Question model returned no text.")
		return failed(FailureEmptyResponse, "")
	}

	logCtx.Info("Questions generated.", "responseChars", len(questions), "elapsed", time.Since(start).String())
	return Result{Questions: questions}
}
