package services

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxDetailRunes bounds a failure detail. Parser errors can quote raw document bytes.
const maxDetailRunes = 200

// FailureKind classifies why a request did not produce questions.
type FailureKind string

const (
	// Input failures, detected before any document is parsed.
	FailureNoUpload        FailureKind = "no_upload"
	FailureNoDocument      FailureKind = "no_document"
	FailureInvalidCount    FailureKind = "invalid_count"
	FailureUnsupportedType FailureKind = "unsupported_type"
	FailureUploadTooLarge  FailureKind = "upload_too_large"
	FailureSource          FailureKind = "source"

	FailureExtraction FailureKind = "extraction"
	FailureNoText     FailureKind = "no_text"

	FailureMissingCredential FailureKind = "missing_credential"
	FailureRateLimited       FailureKind = "rate_limited"
	FailureGeneration        FailureKind = "generation"
	FailureEmptyResponse     FailureKind = "empty_response"
)

// Failure is a request-level fault converted into a value at the boundary that produced it.
type Failure struct {
	Kind   FailureKind
	Detail string
}

func (f *Failure) Error() string {
	if f.Detail == "" {
		return string(f.Kind)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Detail)
}

// Result is the outcome of one generation request. Failure is nil on success.
type Result struct {
	Questions string
	PageCount int
	Failure   *Failure
}

// OK reports whether the result carries generated questions.
func (r Result) OK() bool {
	return r.Failure == nil
}

func failed(kind FailureKind, detail string) Result {
	return Result{Failure: &Failure{Kind: kind, Detail: cleanDetail(detail)}}
}

// cleanDetail makes detail safe to show: valid UTF-8, no control characters, and at most
// maxDetailRunes runes.
func cleanDetail(detail string) string {
	detail = strings.ToValidUTF8(detail, "\uFFFD")
	detail = strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\t' || r == '\r':
			return ' '
		case !unicode.IsPrint(r) && !unicode.IsSpace(r):
			return -1
		}
		return r
	}, detail)
	detail = strings.TrimSpace(detail)
	if utf8.RuneCountInString(detail) <= maxDetailRunes {
		return detail
	}
	return string([]rune(detail)[:maxDetailRunes]) + "…"
}

// ParseError reports that a byte stream could not be read as a PDF.
type ParseError struct {
	Page int // 0 when the failure is not tied to a page
	Err  error
}

func (e *ParseError) Error() string {
	if e.Page > 0 {
		return fmt.Sprintf("page %d: %v", e.Page, e.Err)
	}
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }
