package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"newsdesk/internal/domain/entity"
	pg "newsdesk/internal/infra/adapter/persistence/postgres"
)

func artRow(a *entity.Article) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "content", "category",
		"image_url", "image_hint", "published_at", "views", "is_urgent",
	}).AddRow(
		a.ID, a.Title, a.Content, a.Category,
		a.ImageURL, a.ImageHint, a.PublishedAt, a.Views, a.IsUrgent,
	)
}

func TestArticleRepo_Get(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2025, 7, 19, 0, 0, 0, 0, time.UTC)
	want := &entity.Article{
		ID: 1, Title: "Breaking story", Content: "body text long enough for the schema",
		Category: "politics", ImageURL: "https://picsum.photos/seed/politics/600/400",
		ImageHint: "politics", PublishedAt: now, Views: 12, IsUrgent: true,
	}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id")).
		WithArgs(int64(1)).
		WillReturnRows(artRow(want))

	repo := pg.NewArticleRepo(db)
	got, err := repo.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestArticleRepo_Get_Missing(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id")).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "content", "category",
			"image_url", "image_hint", "published_at", "views", "is_urgent",
		}))

	repo := pg.NewArticleRepo(db)
	got, err := repo.Get(context.Background(), 9)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if got != nil {
		t.Fatalf("Get missing = %+v, want nil", got)
	}
}

func TestArticleRepo_List(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery("FROM articles").
		WillReturnRows(artRow(&entity.Article{
			ID: 1, Title: "x", Content: "y", Category: "z",
			PublishedAt: now,
		}))

	repo := pg.NewArticleRepo(db)
	got, err := repo.List(context.Background())
	if err != nil || len(got) != 1 {
		t.Fatalf("List err=%v len=%d", err, len(got))
	}
}

func TestArticleRepo_Add_AssignsID(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO articles")).
		WithArgs("title here", "content here", "sports",
			"https://picsum.photos/seed/sports/600/400", "sports",
			now, int64(0), false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	repo := pg.NewArticleRepo(db)
	article := &entity.Article{
		Title: "title here", Content: "content here", Category: "sports",
		ImageURL:  "https://picsum.photos/seed/sports/600/400",
		ImageHint: "sports", PublishedAt: now,
	}
	if err := repo.Add(context.Background(), article); err != nil {
		t.Fatalf("Add err=%v", err)
	}
	if article.ID != 7 {
		t.Fatalf("ID = %d, want 7 from RETURNING", article.ID)
	}
}

func TestArticleRepo_Update_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE articles")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := pg.NewArticleRepo(db)
	err := repo.Update(context.Background(), &entity.Article{ID: 99, Title: "gone"})
	if !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("Update err=%v, want entity.ErrNotFound", err)
	}
}

func TestArticleRepo_Delete(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM articles WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := pg.NewArticleRepo(db)
	if err := repo.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
}

func TestArticleRepo_DeleteAll_ReportsCount(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM articles")).
		WillReturnResult(sqlmock.NewResult(0, 4))

	repo := pg.NewArticleRepo(db)
	count, err := repo.DeleteAll(context.Background())
	if err != nil {
		t.Fatalf("DeleteAll err=%v", err)
	}
	if count != 4 {
		t.Fatalf("count = %d, want 4", count)
	}
}
