package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/queryutil"
	"newsdesk/internal/handler/http/respond"
	"newsdesk/internal/observability/metrics"
	artUC "newsdesk/internal/usecase/article"
)

type UpdateHandler struct{ Svc *artUC.Service }

// ServeHTTP applies a partial update to the article named by the id query
// parameter. Absent body fields are left unchanged; present fields must still
// satisfy the schema. id and publishedAt are never client-writable.
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := queryutil.ExtractID(r.URL.Query())
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Title    *string `json:"title"`
		Content  *string `json:"content"`
		Category *string `json:"category"`
		IsUrgent *bool   `json:"isUrgent"`
		Views    *int64  `json:"views"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	updated, err := h.Svc.Update(r.Context(), artUC.UpdateInput{
		ID:       id,
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		IsUrgent: req.IsUrgent,
		Views:    req.Views,
	})
	if err != nil {
		var verrs entity.ValidationErrors
		if errors.As(err, &verrs) {
			respond.ValidationFailed(w, verrs)
			return
		}
		code := http.StatusInternalServerError
		switch {
		case errors.Is(err, artUC.ErrArticleNotFound):
			code = http.StatusNotFound
		case errors.Is(err, artUC.ErrInvalidArticleID):
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	metrics.RecordArticleMutation("update")
	respond.JSON(w, http.StatusOK, fromEntity(updated))
}
