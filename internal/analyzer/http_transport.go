package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/boopin/seo-url-analyzer/internal/export"
	"github.com/boopin/seo-url-analyzer/internal/model"
	"github.com/boopin/seo-url-analyzer/internal/platform/errs"
	"github.com/boopin/seo-url-analyzer/internal/web"
)

// analyzeTimeout bounds a whole batch; individual fetches carry their own
// shorter timeout.
const analyzeTimeout = 2 * time.Minute

var errURLsRequired = errors.New("the \"urls\" field must be an array of URL strings")

// Transport handles HTTP requests for the analyzer UI and API.
type Transport struct {
	service *Service
	store   *ReportStore
	maxURLs int
	logger  *slog.Logger
}

// NewTransport creates an HTTP transport backed by the given service and
// report store. Input URL lists are capped at maxURLs per run.
func NewTransport(service *Service, store *ReportStore, maxURLs int, logger *slog.Logger) *Transport {
	return &Transport{service: service, store: store, maxURLs: maxURLs, logger: logger}
}

// RegisterRoutes attaches the transport's handlers to the given mux.
func (t *Transport) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", t.handleIndex)
	mux.HandleFunc("POST /api/analyze", t.handleAnalyze)
	mux.HandleFunc("GET /api/reports/{id}", t.handleGetReport)
	mux.HandleFunc("GET /api/reports/{id}/csv/{table}", t.handleExportCSV)
}

type analyzeRequest struct {
	URLs []string `json:"urls"`
}

// cleaned returns the request URLs with surrounding whitespace trimmed
// and blank entries dropped.
func (r analyzeRequest) cleaned() []string {
	urls := make([]string, 0, len(r.URLs))
	for _, u := range r.URLs {
		if u = strings.TrimSpace(u); u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

func (t *Transport) handleIndex(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := web.Index.Execute(&buf, web.IndexData{MaxURLs: t.maxURLs}); err != nil {
		t.logger.Error("failed to render index", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (t *Transport) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	const maxRequestBody = 1 << 20 // 1 MB
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		t.renderAppError(w, &errs.AppError{
			Kind:    errs.InvalidInput,
			Message: errURLsRequired.Error(),
			Cause:   err,
		})
		return
	}

	// An empty list is a valid run: the report comes back with no
	// records and zero averages.
	urls := req.cleaned()
	truncated := false
	if len(urls) > t.maxURLs {
		urls = urls[:t.maxURLs]
		truncated = true
	}

	ctx, cancel := context.WithTimeout(r.Context(), analyzeTimeout)
	defer cancel()

	report := t.service.Analyze(ctx, urls)
	report.Truncated = truncated
	t.store.Put(report)

	t.renderJSON(w, http.StatusOK, report)
}

func (t *Transport) handleGetReport(w http.ResponseWriter, r *http.Request) {
	report, ok := t.store.Get(r.PathValue("id"))
	if !ok {
		t.renderAppError(w, reportNotFound())
		return
	}
	t.renderJSON(w, http.StatusOK, report)
}

func (t *Transport) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	report, ok := t.store.Get(r.PathValue("id"))
	if !ok {
		t.renderAppError(w, reportNotFound())
		return
	}

	var (
		filename string
		write    func(io.Writer, *model.AnalysisReport) error
	)
	switch table := r.PathValue("table"); table {
	case "main":
		filename, write = "seo_analysis.csv", export.WriteMain
	case "headings":
		filename, write = "headings.csv", export.WriteHeadings
	case "internal-links":
		filename, write = "internal_links.csv", export.WriteInternalLinks
	case "external-links":
		filename, write = "external_links.csv", export.WriteExternalLinks
	default:
		t.renderAppError(w, &errs.AppError{
			Kind:    errs.InvalidInput,
			Message: fmt.Sprintf("Unknown CSV table %q.", table),
		})
		return
	}

	var buf bytes.Buffer
	if err := write(&buf, report); err != nil {
		t.logger.Error("failed to serialize csv", "table", filename, "error", err)
		t.renderError(w, http.StatusInternalServerError, "Failed to serialize the report.")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = buf.WriteTo(w)
}

func reportNotFound() *errs.AppError {
	return &errs.AppError{
		Kind:    errs.NotFound,
		Message: "Report not found. It may have expired; run the analysis again.",
	}
}

func (t *Transport) renderAppError(w http.ResponseWriter, err error) {
	var appErr *errs.AppError
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError
		switch appErr.Kind {
		case errs.InvalidInput:
			status = http.StatusBadRequest
		case errs.NotFound:
			status = http.StatusNotFound
		case errs.Unreachable:
			status = http.StatusBadGateway
		case errs.Timeout:
			status = http.StatusGatewayTimeout
		case errs.ParsingFailed, errs.Unknown:
			// 500 Internal Server Error
		}
		t.renderError(w, status, appErr.Message)
		return
	}

	t.renderError(w, http.StatusInternalServerError, "An unexpected error occurred.")
}

func (t *Transport) renderJSON(w http.ResponseWriter, status int, data any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		t.logger.Error("failed to encode response", "error", err)
		http.Error(w, `{"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (t *Transport) renderError(w http.ResponseWriter, status int, message string) {
	t.renderJSON(w, status, model.ErrorResponse{
		Error:      http.StatusText(status),
		StatusCode: status,
		Message:    message,
	})
}
