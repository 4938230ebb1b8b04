// Package export provides HTTP handlers for file downloads and the RSS feed.
package export

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"newsdesk/internal/common/query"
	"newsdesk/internal/export"
	"newsdesk/internal/handler/http/respond"
	"newsdesk/internal/observability/logging"
	"newsdesk/internal/observability/metrics"
	artUC "newsdesk/internal/usecase/article"
)

type DownloadHandler struct {
	Svc    *artUC.Service
	Logger *slog.Logger
}

// ServeHTTP renders the whole collection in the format named by the path
// (txt, csv, or xml) and serves it as a file attachment. Unknown formats are
// a 400; the collection is exported newest first.
func (h DownloadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)
	format := r.PathValue("format")

	articles, err := h.Svc.List(ctx)
	if err != nil {
		logger.Error("Failed to load articles for export",
			"format", format,
			"error", err.Error())
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	articles = query.SortBy(articles, query.DefaultSortKey, query.Descending)

	d, err := export.Generate(format, articles)
	if err != nil {
		if errors.Is(err, export.ErrUnsupportedFormat) {
			respond.SafeError(w, http.StatusBadRequest, err)
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	metrics.RecordExport(format)
	logger.Info("Export generated",
		"format", format,
		"articles", len(articles),
		"bytes", len(d.Content))

	w.Header().Set("Content-Type", d.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", d.Filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(d.Content)); err != nil {
		logger.Error("Failed to write export response",
			"format", format,
			"error", err.Error())
	}
}
