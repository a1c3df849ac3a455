package services

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

var errEmptyDocument = errors.New("the uploaded file is empty")

func init() {
	// Keep pdfcpu from creating a config directory under the user's home.
	model.ConfigPath = "disable"
}

// ExtractText returns the plain text of every page in document order, joined with
// newlines and trimmed. A document the text reader cannot open is rewritten once by pdfcpu,
// which rebuilds a damaged cross-reference table, and read again. Any parser failure,
// including a parser panic, comes back as a *ParseError.
func ExtractText(data []byte) (string, int, error) {
	if len(data) == 0 {
		return "", 0, &ParseError{Err: errEmptyDocument}
	}

	text, pages, err := readPlainText(data)
	if err == nil {
		return text, pages, nil
	}

	repaired, repairErr := RepairPDF(data)
	if repairErr != nil {
		slog.Debug("pdfcpu could not repair document", "error", repairErr)
		return "", 0, err
	}
	text, pages, retryErr := readPlainText(repaired)
	if retryErr != nil {
		return "", 0, err
	}
	slog.Info("Read document after pdfcpu repair.", "pageCount", pages, "readError", err)
	return text, pages, nil
}

func readPlainText(data []byte) (text string, pages int, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, pages, err = "", 0, &ParseError{Err: fmt.Errorf("malformed PDF: %v", r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, &ParseError{Err: err}
	}

	pages = reader.NumPage()
	pageTexts := make([]string, 0, pages)
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pageTexts = append(pageTexts, "")
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", 0, &ParseError{Page: i, Err: err}
		}
		pageTexts = append(pageTexts, pageText)
	}

	return strings.TrimSpace(strings.Join(pageTexts, "\n")), pages, nil
}

// RepairPDF reads data with pdfcpu in relaxed mode and writes it back out with a fresh
// cross-reference table and no object or xref streams.
func RepairPDF(data []byte) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("pdfcpu repair: %v", r)
		}
	}()

	if len(data) == 0 {
		return nil, errEmptyDocument
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	conf.WriteObjectStream = false
	conf.WriteXRefStream = false

	var buf bytes.Buffer
	if err := api.Optimize(bytes.NewReader(data), &buf, conf); err != nil {
		return nil, fmt.Errorf("pdfcpu repair: %w", err)
	}
	return buf.Bytes(), nil
}
