package services

import (
	"context"
	"log/slog"

	"github.com/Lllllllleong/questiongenerator/internal/models"
)

// QuestionService runs the extract-then-generate pipeline for one document.
type QuestionService struct {
	generator *QuestionGenerator
}

// NewQuestionService creates a new QuestionService instance.
func NewQuestionService(generator *QuestionGenerator) *QuestionService {
	return &QuestionService{generator: generator}
}

// Process extracts the document's text and generates job.QuestionCount questions from it.
// Every fault is returned inside the Result; Process never returns an error.
func (s *QuestionService) Process(ctx context.Context, job *models.QuestionJob) Result {
	logCtx := slog.With("requestId", job.RequestID, "questionCount", job.QuestionCount)

	if job.Document == nil {
		logCtx.Warn("No document supplied.")
		return failed(FailureNoDocument, "")
	}
	logCtx = logCtx.With("filename", job.Document.Filename, "sizeBytes", len(job.Document.Data))
	logCtx.Info("Processing uploaded document.")

	text, pages, err := ExtractText(job.Document.Data)
	if err != nil {
		logCtx.Error("Failed to extract text from PDF", "error", err)
		return failed(FailureExtraction, err.Error())
	}
	logCtx.Info("Text extracted.", "pageCount", pages, "textChars", len(text))

	result := s.generator.generate(ctx, logCtx, text, job.QuestionCount)
	result.PageCount = pages
	return result
}
