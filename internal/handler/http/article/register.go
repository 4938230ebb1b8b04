package article

import (
	"log/slog"
	"net/http"

	artUC "newsdesk/internal/usecase/article"
)

// Register registers all article-related HTTP handlers with the given mux.
// All verbs share the /articles path; update and delete address a record via
// the id query parameter rather than a path segment.
func Register(mux *http.ServeMux, svc *artUC.Service, logger *slog.Logger) {
	mux.Handle("GET    /articles", ListHandler{Svc: svc, Logger: logger})
	mux.Handle("POST   /articles", CreateHandler{svc})
	mux.Handle("PATCH  /articles", UpdateHandler{svc})
	mux.Handle("DELETE /articles", DeleteHandler{svc})
}
