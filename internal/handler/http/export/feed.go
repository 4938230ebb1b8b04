package export

import (
	"log/slog"
	"net/http"
	"time"

	"newsdesk/internal/common/query"
	"newsdesk/internal/export"
	"newsdesk/internal/handler/http/respond"
	"newsdesk/internal/observability/logging"
	"newsdesk/internal/observability/metrics"
	artUC "newsdesk/internal/usecase/article"
)

type FeedHandler struct {
	Svc     *artUC.Service
	SiteURL string
	Logger  *slog.Logger

	// Now supplies the channel's lastBuildDate; defaults to time.Now.
	Now func() time.Time
}

// ServeHTTP serves the collection as an RSS 2.0 feed, newest first.
func (h FeedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	articles, err := h.Svc.List(ctx)
	if err != nil {
		logger.Error("Failed to load articles for feed", "error", err.Error())
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	articles = query.SortBy(articles, query.DefaultSortKey, query.Descending)

	now := time.Now()
	if h.Now != nil {
		now = h.Now()
	}
	body := export.RSS(articles, h.SiteURL, now)

	metrics.RecordExport("rss")

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(body)); err != nil {
		logger.Error("Failed to write feed response", "error", err.Error())
	}
}
