// Package repository defines the persistence interfaces used by the use case
// layer. Concrete implementations live under internal/infra/adapter/persistence.
package repository

import (
	"context"

	"newsdesk/internal/domain/entity"
)

// MutationHook is invoked with the full collection after every successful
// mutating call. It decouples cache mirroring (the persisted snapshot) from the
// store's core logic; the hook must not mutate the slice it receives.
type MutationHook func(ctx context.Context, articles []*entity.Article)

// ArticleRepository abstracts persistence operations for articles.
// Get returns (nil, nil) when no article matches the id; Update and Delete
// return entity.ErrNotFound in that case. Ordering of List results is an
// implementation detail — display ordering is the query engine's concern.
type ArticleRepository interface {
	List(ctx context.Context) ([]*entity.Article, error)
	Get(ctx context.Context, id int64) (*entity.Article, error)

	// Add assigns the next id (max existing id + 1, or 1 when the collection
	// is empty), stores the article, and writes the assigned id back.
	Add(ctx context.Context, article *entity.Article) error

	Update(ctx context.Context, article *entity.Article) error
	Delete(ctx context.Context, id int64) error

	// DeleteAll clears the collection and reports how many records were removed.
	DeleteAll(ctx context.Context) (int64, error)
}
