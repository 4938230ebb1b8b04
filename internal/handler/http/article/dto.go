// Package article provides HTTP handlers for article-related endpoints.
// It includes handlers for listing, creating, updating, and deleting articles.
package article

import (
	"time"

	"newsdesk/internal/domain/entity"
)

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ID          int64     `json:"id" example:"1"`
	Title       string    `json:"title" example:"افتتاح معرض الكتاب الدولي"`
	Content     string    `json:"content" example:"انطلقت اليوم فعاليات معرض الكتاب الدولي..."`
	Category    string    `json:"category" example:"ثقافة"`
	ImageURL    string    `json:"imageUrl" example:"https://picsum.photos/seed/culture/600/400"`
	ImageHint   string    `json:"imageHint" example:"ثقافة"`
	PublishedAt time.Time `json:"publishedAt" example:"2025-10-26T10:00:00Z"`
	Views       int64     `json:"views" example:"120"`
	IsUrgent    bool      `json:"isUrgent" example:"false"`
}

// fromEntity converts a domain article to its transfer representation.
func fromEntity(a *entity.Article) DTO {
	return DTO{
		ID:          a.ID,
		Title:       a.Title,
		Content:     a.Content,
		Category:    a.Category,
		ImageURL:    a.ImageURL,
		ImageHint:   a.ImageHint,
		PublishedAt: a.PublishedAt,
		Views:       a.Views,
		IsUrgent:    a.IsUrgent,
	}
}

// fromEntities converts a slice of domain articles, always returning a
// non-nil slice so empty collections encode as [] rather than null.
func fromEntities(articles []*entity.Article) []DTO {
	dtos := make([]DTO, 0, len(articles))
	for _, a := range articles {
		dtos = append(dtos, fromEntity(a))
	}
	return dtos
}
