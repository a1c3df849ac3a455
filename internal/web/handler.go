// Package web is the question generator's single page: an upload form rendered as HTML
// and the same operation exposed as a JSON API.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Lllllllleong/questiongenerator/internal/gcp"
	"github.com/Lllllllleong/questiongenerator/internal/models"
	"github.com/Lllllllleong/questiongenerator/internal/services"
	"github.com/google/uuid"
)

const (
	multipartMemory   = 32 << 20
	formOverheadBytes = 1 << 20
	maxJSONBodyBytes  = 1 << 20
)

// DocumentFetcher loads a document named by URI instead of uploaded in the request.
type DocumentFetcher interface {
	Fetch(ctx context.Context, uri string) (*models.Document, error)
}

// Options configures the Handler.
type Options struct {
	// Warning is shown on every page, e.g. when the model credential is missing.
	Warning        string
	MaxUploadBytes int64
}

// Handler serves the form on GET and runs a generation on POST.
type Handler struct {
	service *services.QuestionService
	fetcher DocumentFetcher
	opts    Options
}

// NewHandler creates the shell. fetcher may be nil, which disables gs:// sources.
func NewHandler(service *services.QuestionService, fetcher DocumentFetcher, opts Options) *Handler {
	return &Handler{service: service, fetcher: fetcher, opts: opts}
}

type generateRequest struct {
	document *models.Document
	filename string
	countRaw string
	count    int
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	logCtx := slog.With("requestId", requestID, "method", r.Method, "path", r.URL.Path)

	switch r.Method {
	case http.MethodGet, http.MethodHead:
		h.renderPage(w, logCtx, pageData{Count: strconv.Itoa(services.DefaultQuestionCount)})
	case http.MethodPost:
		h.handleGenerate(w, r, logCtx, requestID)
	default:
		w.Header().Set("Allow", "GET, HEAD, POST")
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request, logCtx *slog.Logger, requestID string) {
	var (
		req     *generateRequest
		failure *services.Failure
	)
	if isJSONBody(r) {
		req, failure = h.readJSON(w, r)
	} else {
		req, failure = h.readUpload(w, r)
	}

	result := services.Result{Failure: failure}
	if failure == nil {
		result = h.service.Process(r.Context(), &models.QuestionJob{
			RequestID:     requestID,
			Document:      req.document,
			QuestionCount: req.count,
		})
	}

	if result.Failure != nil {
		logCtx.Info("Request finished without questions.", "kind", result.Failure.Kind, "detail", result.Failure.Detail)
	} else {
		logCtx.Info("Request finished.", "pageCount", result.PageCount)
	}

	if wantsJSON(r) {
		h.writeJSON(w, logCtx, requestID, req, result)
		return
	}

	data := pageData{
		Count:     req.countRaw,
		Filename:  req.filename,
		Submitted: true,
		PageCount: result.PageCount,
	}
	if data.Count == "" {
		data.Count = strconv.Itoa(services.DefaultQuestionCount)
	}
	if result.Failure != nil {
		data.Error = Message(result.Failure)
	} else {
		data.Questions = result.Questions
	}
	h.renderPage(w, logCtx, data)
}

// readUpload applies the shell's guards to a form post, in the order the user sees them:
// size, missing file, file type, question count.
func (h *Handler) readUpload(w http.ResponseWriter, r *http.Request) (*generateRequest, *services.Failure) {
	req := &generateRequest{}
	limit := h.opts.MaxUploadBytes

	if limit > 0 {
		if r.ContentLength > limit+formOverheadBytes {
			return req, h.tooLarge()
		}
		r.Body = http.MaxBytesReader(w, r.Body, limit+formOverheadBytes)
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return req, h.tooLarge()
		case errors.Is(err, http.ErrNotMultipart):
			// A form without a file input; ParseForm has already run.
		default:
			return req, &services.Failure{Kind: services.FailureNoUpload, Detail: err.Error()}
		}
	}
	req.countRaw = strings.TrimSpace(r.FormValue("count"))

	file, header, err := r.FormFile("pdf")
	if err != nil {
		return req, &services.Failure{Kind: services.FailureNoUpload}
	}
	defer file.Close()
	req.filename = header.Filename

	if !isPDF(header.Filename, header.Header.Get("Content-Type")) {
		return req, &services.Failure{Kind: services.FailureUnsupportedType, Detail: header.Filename}
	}

	count, failure := parseCount(req.countRaw)
	if failure != nil {
		return req, failure
	}
	req.count = count

	data, err := io.ReadAll(file)
	if err != nil {
		return req, &services.Failure{Kind: services.FailureNoUpload, Detail: err.Error()}
	}
	if limit > 0 && int64(len(data)) > limit {
		return req, h.tooLarge()
	}

	req.document = &models.Document{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}
	return req, nil
}

func (h *Handler) readJSON(w http.ResponseWriter, r *http.Request) (*generateRequest, *services.Failure) {
	req := &generateRequest{}

	var body models.QuestionsRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)).Decode(&body); err != nil {
		return req, &services.Failure{Kind: services.FailureSource, Detail: fmt.Sprintf("could not parse JSON request: %v", err)}
	}

	count := services.DefaultQuestionCount
	if body.QuestionCount != nil {
		count = *body.QuestionCount
	}
	req.countRaw = strconv.Itoa(count)
	req.filename = body.GCSUri

	if strings.TrimSpace(body.GCSUri) == "" {
		return req, &services.Failure{Kind: services.FailureNoUpload}
	}
	if count < 1 {
		return req, &services.Failure{Kind: services.FailureInvalidCount, Detail: req.countRaw}
	}
	req.count = count

	if h.fetcher == nil {
		return req, &services.Failure{Kind: services.FailureSource, Detail: "gs:// sources are not enabled"}
	}
	doc, err := h.fetcher.Fetch(r.Context(), body.GCSUri)
	if err != nil {
		if errors.Is(err, gcp.ErrObjectTooLarge) {
			return req, h.tooLarge()
		}
		return req, &services.Failure{Kind: services.FailureSource, Detail: err.Error()}
	}
	if !isPDF(doc.Filename, doc.ContentType) {
		return req, &services.Failure{Kind: services.FailureUnsupportedType, Detail: doc.Filename}
	}

	req.filename = doc.Filename
	req.document = doc
	return req, nil
}

func (h *Handler) tooLarge() *services.Failure {
	return &services.Failure{
		Kind:   services.FailureUploadTooLarge,
		Detail: fmt.Sprintf("the limit is %d MB", h.opts.MaxUploadBytes>>20),
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, logCtx *slog.Logger, requestID string, req *generateRequest, result services.Result) {
	resp := models.QuestionsResponse{
		RequestID:     requestID,
		QuestionCount: req.count,
		PageCount:     result.PageCount,
	}
	status := http.StatusOK
	if result.Failure != nil {
		status = statusFor(result.Failure.Kind)
		resp.Status = "error"
		resp.Error = &models.ErrorPayload{
			Kind:    string(result.Failure.Kind),
			Message: Message(result.Failure),
			Detail:  result.Failure.Detail,
		}
	} else {
		resp.Status = "success"
		resp.Questions = result.Questions
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logCtx.Error("Failed to write response", "error", err)
	}
}

// parseCount accepts a whole number of at least 1. An empty field means the default.
func parseCount(raw string) (int, *services.Failure) {
	if raw == "" {
		return services.DefaultQuestionCount, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, &services.Failure{Kind: services.FailureInvalidCount, Detail: raw}
	}
	return n, nil
}

func isPDF(filename, contentType string) bool {
	if strings.EqualFold(filepath.Ext(filename), ".pdf") {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == "application/pdf"
}

func isJSONBody(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}

func wantsJSON(r *http.Request) bool {
	return r.URL.Query().Get("format") == "json" ||
		strings.Contains(r.Header.Get("Accept"), "application/json") ||
		isJSONBody(r)
}
