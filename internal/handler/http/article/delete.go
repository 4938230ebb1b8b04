package article

import (
	"errors"
	"net/http"

	"newsdesk/internal/handler/http/queryutil"
	"newsdesk/internal/handler/http/respond"
	"newsdesk/internal/observability/metrics"
	artUC "newsdesk/internal/usecase/article"
)

type DeleteHandler struct{ Svc *artUC.Service }

// ServeHTTP deletes one article when an id query parameter is given, or
// clears the whole collection when it is absent. Single deletes answer
// {"success":true}; collection clears also report the removed count.
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := queryutil.ExtractID(r.URL.Query())
	switch {
	case errors.Is(err, queryutil.ErrMissingID):
		count, err := h.Svc.DeleteAll(r.Context())
		if err != nil {
			respond.SafeError(w, http.StatusInternalServerError, err)
			return
		}
		metrics.RecordArticleMutation("delete_all")
		respond.JSON(w, http.StatusOK, map[string]any{"success": true, "count": count})
		return
	case err != nil:
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, artUC.ErrArticleNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	metrics.RecordArticleMutation("delete")
	respond.JSON(w, http.StatusOK, map[string]any{"success": true})
}
