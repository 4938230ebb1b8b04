// Package memory provides the in-memory implementation of the article
// repository. It owns the canonical collection as a slice in insertion order
// and hands out copies, never the records themselves.
package memory

import (
	"context"
	"sync"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

// ArticleRepo is an in-memory article store. All operations are O(n) scans,
// which is the intended scale for this single-tenant service. The mutex exists
// because a net/http process serves requests concurrently; there is still no
// cross-request coordination such as versioning — last write wins.
type ArticleRepo struct {
	mu       sync.Mutex
	articles []*entity.Article
	hook     repository.MutationHook
}

// Option configures an ArticleRepo at construction time.
type Option func(*ArticleRepo)

// WithSeed pre-populates the store, typically from a snapshot written by a
// previous process. The articles are cloned on the way in.
func WithSeed(articles []*entity.Article) Option {
	return func(r *ArticleRepo) {
		r.articles = cloneAll(articles)
	}
}

// WithHook registers the post-commit mutation hook. The hook runs after every
// successful Add, Update, Delete, and DeleteAll, while the store lock is held,
// so the mirrored state always matches the in-memory collection.
func WithHook(hook repository.MutationHook) Option {
	return func(r *ArticleRepo) {
		r.hook = hook
	}
}

// NewArticleRepo creates a new in-memory article repository.
func NewArticleRepo(opts ...Option) *ArticleRepo {
	repo := &ArticleRepo{}
	for _, opt := range opts {
		opt(repo)
	}
	return repo
}

// List returns a copy of every article in insertion order.
func (r *ArticleRepo) List(_ context.Context) ([]*entity.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneAll(r.articles), nil
}

// Get returns the article with the given id, or (nil, nil) when absent.
func (r *ArticleRepo) Get(_ context.Context, id int64) (*entity.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, article := range r.articles {
		if article.ID == id {
			return article.Clone(), nil
		}
	}
	return nil, nil
}

// Add assigns id = max(existing ids) + 1 (or 1 when empty), appends the
// article, and writes the assigned id back to the caller's record.
func (r *ArticleRepo) Add(ctx context.Context, article *entity.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var maxID int64
	for _, existing := range r.articles {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	article.ID = maxID + 1

	r.articles = append(r.articles, article.Clone())
	r.notify(ctx)
	return nil
}

// Update replaces the stored record with the given one, matched by id.
// Returns entity.ErrNotFound when no record matches.
func (r *ArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.articles {
		if existing.ID == article.ID {
			r.articles[i] = article.Clone()
			r.notify(ctx)
			return nil
		}
	}
	return entity.ErrNotFound
}

// Delete removes the article with the given id.
// Returns entity.ErrNotFound when no record matches.
func (r *ArticleRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.articles {
		if existing.ID == id {
			r.articles = append(r.articles[:i], r.articles[i+1:]...)
			r.notify(ctx)
			return nil
		}
	}
	return entity.ErrNotFound
}

// DeleteAll clears the collection and reports how many records were removed.
// Always succeeds; the count may be zero.
func (r *ArticleRepo) DeleteAll(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := int64(len(r.articles))
	r.articles = nil
	r.notify(ctx)
	return count, nil
}

// notify invokes the mutation hook with a copy of the collection.
// Callers must hold the lock.
func (r *ArticleRepo) notify(ctx context.Context) {
	if r.hook != nil {
		r.hook(ctx, cloneAll(r.articles))
	}
}

func cloneAll(articles []*entity.Article) []*entity.Article {
	out := make([]*entity.Article, 0, len(articles))
	for _, article := range articles {
		out = append(out, article.Clone())
	}
	return out
}
