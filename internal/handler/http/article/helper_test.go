package article_test

import (
	"context"
	"errors"
	"time"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/infra/adapter/persistence/memory"
	artUC "newsdesk/internal/usecase/article"
)

var errStore = errors.New("store unavailable")

// failingRepo satisfies the repository interface and fails every call, for
// exercising the 500 paths.
type failingRepo struct{}

func (failingRepo) List(_ context.Context) ([]*entity.Article, error)  { return nil, errStore }
func (failingRepo) Get(_ context.Context, _ int64) (*entity.Article, error) {
	return nil, errStore
}
func (failingRepo) Add(_ context.Context, _ *entity.Article) error    { return errStore }
func (failingRepo) Update(_ context.Context, _ *entity.Article) error { return errStore }
func (failingRepo) Delete(_ context.Context, _ int64) error           { return errStore }
func (failingRepo) DeleteAll(_ context.Context) (int64, error)        { return 0, errStore }

// fixedNow pins creation timestamps so responses are deterministic.
var fixedNow = time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)

func newTestService(seed ...*entity.Article) *artUC.Service {
	repo := memory.NewArticleRepo(memory.WithSeed(seed))
	return &artUC.Service{
		Repo: repo,
		Now:  func() time.Time { return fixedNow },
	}
}

func seedArticle(id int64, title, category string, views int64, published time.Time) *entity.Article {
	return &entity.Article{
		ID:          id,
		Title:       title,
		Content:     "محتوى تجريبي طويل بما يكفي لاجتياز الحد الأدنى",
		Category:    category,
		PublishedAt: published,
		Views:       views,
	}
}
