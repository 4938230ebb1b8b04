package article

import (
	"log/slog"
	"net/http"
	"time"

	"newsdesk/internal/common/query"
	"newsdesk/internal/handler/http/requestid"
	"newsdesk/internal/handler/http/respond"
	"newsdesk/internal/observability/logging"
	artUC "newsdesk/internal/usecase/article"
)

type ListHandler struct {
	Svc    *artUC.Service
	Logger *slog.Logger
}

// ServeHTTP returns the article collection, optionally filtered and sorted.
// Query parameters:
//   - category: exact match; "all" or absent disables the filter
//   - q: case-insensitive substring match on title or content
//   - sortBy: id, title, category, publishedAt, or views (default publishedAt)
//   - order: asc or desc (default desc)
//
// Filters are applied before sorting; the response is always a JSON array.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()

	reqID := requestid.FromContext(ctx)
	logger := logging.WithRequestID(ctx, h.Logger)

	articles, err := h.Svc.List(ctx)
	if err != nil {
		logger.Error("Failed to list articles",
			"error", err.Error(),
			"request_id", reqID)
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	q := r.URL.Query()
	articles = query.FilterByCategory(articles, q.Get("category"))
	articles = query.FilterBySearch(articles, q.Get("q"))

	sortKey := q.Get("sortBy")
	if sortKey == "" {
		sortKey = query.DefaultSortKey
	}
	dir := query.Descending
	if q.Get("order") == string(query.Ascending) {
		dir = query.Ascending
	}
	articles = query.SortBy(articles, sortKey, dir)

	logger.Info("Article list request",
		"category", q.Get("category"),
		"search", q.Get("q"),
		"sort_by", sortKey,
		"order", string(dir),
		"returned_count", len(articles),
		"duration_ms", time.Since(startTime).Milliseconds(),
		"request_id", reqID)

	respond.JSON(w, http.StatusOK, fromEntities(articles))
}
