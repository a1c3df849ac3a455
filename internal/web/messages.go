package web

import (
	"net/http"

	"github.com/Lllllllleong/questiongenerator/internal/services"
)

// Message is the text shown to the user for a failure.
func Message(f *services.Failure) string {
	switch f.Kind {
	case services.FailureNoUpload:
		return "❌ Please upload a PDF file first!"
	case services.FailureNoDocument:
		return "❌ Please upload a PDF file."
	case services.FailureInvalidCount:
		return "❌ Number of questions must be a whole number of at least 1."
	case services.FailureUnsupportedType:
		return "❌ Only PDF files are accepted."
	case services.FailureUploadTooLarge:
		return "❌ The uploaded file is too large: " + f.Detail
	case services.FailureSource:
		return "❌ Could not load the PDF: " + f.Detail
	case services.FailureExtraction:
		return "❌ Error reading PDF: " + f.Detail
	case services.FailureNoText:
		return "❌ No text found in the PDF."
	case services.FailureMissingCredential, services.FailureRateLimited, services.FailureGeneration:
		return "❌ Error generating questions: " + f.Detail
	case services.FailureEmptyResponse:
		return "⚠️ Could not generate questions."
	default:
		return "❌ " + f.Error()
	}
}

func statusFor(kind services.FailureKind) int {
	switch kind {
	case services.FailureNoUpload, services.FailureNoDocument, services.FailureInvalidCount, services.FailureSource:
		return http.StatusBadRequest
	case services.FailureUnsupportedType:
		return http.StatusUnsupportedMediaType
	case services.FailureUploadTooLarge:
		return http.StatusRequestEntityTooLarge
	case services.FailureExtraction, services.FailureNoText:
		return http.StatusUnprocessableEntity
	case services.FailureMissingCredential:
		return http.StatusServiceUnavailable
	case services.FailureRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusBadGateway
	}
}
