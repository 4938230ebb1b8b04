package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/respond"
	"newsdesk/internal/observability/metrics"
	artUC "newsdesk/internal/usecase/article"
)

type CreateHandler struct{ Svc *artUC.Service }

// ServeHTTP creates a new article from the request body. The server assigns
// id, publishedAt, views, and the image fields; clients supply only title,
// content, category, and the urgent flag. Schema violations come back as a
// 400 with a per-field details map.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		Category string `json:"category"`
		IsUrgent bool   `json:"isUrgent"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	created, err := h.Svc.Create(r.Context(), artUC.CreateInput{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		IsUrgent: req.IsUrgent,
	})
	if err != nil {
		var verrs entity.ValidationErrors
		if errors.As(err, &verrs) {
			respond.ValidationFailed(w, verrs)
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	metrics.RecordArticleMutation("create")
	respond.JSON(w, http.StatusCreated, fromEntity(created))
}
