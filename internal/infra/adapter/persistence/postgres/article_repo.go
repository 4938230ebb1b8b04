// Package postgres provides the PostgreSQL implementation of the article
// repository, used when a durable backend is configured via DATABASE_URL.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

// ArticleRepo implements repository.ArticleRepository using PostgreSQL.
type ArticleRepo struct{ db *sql.DB }

// NewArticleRepo creates a new PostgreSQL-backed article repository.
func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

const articleColumns = `id, title, content, category, image_url, image_hint, published_at, views, is_urgent`

// List retrieves all articles ordered by published date (newest first).
func (repo *ArticleRepo) List(ctx context.Context) ([]*entity.Article, error) {
	query := `
SELECT ` + articleColumns + `
FROM articles
ORDER BY published_at DESC, id DESC
`

	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, 100)
	for rows.Next() {
		var article entity.Article
		err := rows.Scan(&article.ID, &article.Title, &article.Content,
			&article.Category, &article.ImageURL, &article.ImageHint,
			&article.PublishedAt, &article.Views, &article.IsUrgent)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		articles = append(articles, &article)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("List: rows.Err: %w", err)
	}

	return articles, nil
}

// Get returns the article with the given id, or (nil, nil) when absent.
func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	query := `
SELECT ` + articleColumns + `
FROM articles
WHERE id = $1
LIMIT 1
`
	var article entity.Article
	err := repo.db.QueryRowContext(ctx, query, id).Scan(
		&article.ID, &article.Title, &article.Content,
		&article.Category, &article.ImageURL, &article.ImageHint,
		&article.PublishedAt, &article.Views, &article.IsUrgent,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("Get: QueryRowContext: %w", err)
	}
	return &article, nil
}

// Add inserts the article with id assigned as max existing id + 1 inside the
// insert itself, then writes the assigned id back to the caller's record.
func (repo *ArticleRepo) Add(ctx context.Context, article *entity.Article) error {
	const query = `
INSERT INTO articles
(id, title, content, category, image_url, image_hint, published_at, views, is_urgent)
SELECT COALESCE(MAX(id), 0) + 1, $1, $2, $3, $4, $5, $6, $7, $8
FROM articles
RETURNING id
`
	err := repo.db.QueryRowContext(ctx, query,
		article.Title, article.Content, article.Category,
		article.ImageURL, article.ImageHint,
		article.PublishedAt, article.Views, article.IsUrgent,
	).Scan(&article.ID)
	if err != nil {
		return fmt.Errorf("Add: QueryRowContext: %w", err)
	}
	return nil
}

// Update replaces the stored record matched by id.
// Returns entity.ErrNotFound when no row matches.
func (repo *ArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	const query = `
UPDATE articles SET
	title        = $1,
	content      = $2,
	category     = $3,
	image_url    = $4,
	image_hint   = $5,
	published_at = $6,
	views        = $7,
	is_urgent    = $8
WHERE id = $9
`
	res, err := repo.db.ExecContext(ctx, query,
		article.Title, article.Content, article.Category,
		article.ImageURL, article.ImageHint,
		article.PublishedAt, article.Views, article.IsUrgent,
		article.ID,
	)
	if err != nil {
		return fmt.Errorf("Update: ExecContext: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Update: RowsAffected: %w", err)
	}
	if n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

// Delete removes the article with the given id.
// Returns entity.ErrNotFound when no row matches.
func (repo *ArticleRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM articles WHERE id = $1`

	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: ExecContext: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Delete: RowsAffected: %w", err)
	}
	if n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

// DeleteAll clears the table and reports how many rows were removed.
func (repo *ArticleRepo) DeleteAll(ctx context.Context) (int64, error) {
	const query = `DELETE FROM articles`

	res, err := repo.db.ExecContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("DeleteAll: ExecContext: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("DeleteAll: RowsAffected: %w", err)
	}
	return n, nil
}
