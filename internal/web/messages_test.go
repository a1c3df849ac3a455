package web

import (
	"net/http"
	"testing"

	"github.com/Lllllllleong/questiongenerator/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestMessage(t *testing.T) {
	tests := []struct {
		failure services.Failure
		want    string
	}{
		{services.Failure{Kind: services.FailureNoUpload}, "❌ Please upload a PDF file first!"},
		{services.Failure{Kind: services.FailureNoDocument}, "❌ Please upload a PDF file."},
		{services.Failure{Kind: services.FailureNoText}, "❌ No text found in the PDF."},
		{services.Failure{Kind: services.FailureExtraction, Detail: "malformed PDF: bad xref"}, "❌ Error reading PDF: malformed PDF: bad xref"},
		{services.Failure{Kind: services.FailureGeneration, Detail: "quota exceeded"}, "❌ Error generating questions: quota exceeded"},
		{services.Failure{Kind: services.FailureMissingCredential, Detail: "Gemini API key is not configured"}, "❌ Error generating questions: Gemini API key is not configured"},
		{services.Failure{Kind: services.FailureEmptyResponse}, "⚠️ Could not generate questions."},
	}
	for _, tt := range tests {
		t.Run(string(tt.failure.Kind), func(t *testing.T) {
			assert.Equal(t, tt.want, Message(&tt.failure))
		})
	}
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFor(services.FailureNoUpload))
	assert.Equal(t, http.StatusUnprocessableEntity, statusFor(services.FailureExtraction))
	assert.Equal(t, http.StatusServiceUnavailable, statusFor(services.FailureMissingCredential))
	assert.Equal(t, http.StatusTooManyRequests, statusFor(services.FailureRateLimited))
	assert.Equal(t, http.StatusBadGateway, statusFor(services.FailureGeneration))
}

func TestIsPDF(t *testing.T) {
	assert.True(t, isPDF("report.pdf", ""))
	assert.True(t, isPDF("REPORT.PDF", "application/octet-stream"))
	assert.True(t, isPDF("download", "application/pdf; charset=binary"))
	assert.False(t, isPDF("notes.txt", "text/plain"))
	assert.False(t, isPDF("", ""))
}
