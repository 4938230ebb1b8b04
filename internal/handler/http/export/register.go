package export

import (
	"log/slog"
	"net/http"

	artUC "newsdesk/internal/usecase/article"
)

// Register registers the download and feed endpoints with the given mux.
func Register(mux *http.ServeMux, svc *artUC.Service, siteURL string, logger *slog.Logger) {
	mux.Handle("GET /export/{format}", DownloadHandler{Svc: svc, Logger: logger})
	mux.Handle("GET /feed", FeedHandler{Svc: svc, SiteURL: siteURL, Logger: logger})
}
