package web

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type pageData struct {
	Warning     string
	MaxUploadMB int64
	Count       string
	Filename    string
	Submitted   bool
	Questions   string
	PageCount   int
	Error       string
}

func (h *Handler) renderPage(w http.ResponseWriter, logCtx *slog.Logger, data pageData) {
	data.Warning = h.opts.Warning
	data.MaxUploadMB = h.opts.MaxUploadBytes >> 20

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		logCtx.Error("Failed to render page", "error", err)
		http.Error(w, "Internal Server Error: failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		logCtx.Error("Failed to write page", "error", err)
	}
}
