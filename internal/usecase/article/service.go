package article

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

// CreateInput represents the input parameters for creating a new article.
// ID, PublishedAt, Views, and the image fields are assigned server-side and
// cannot be supplied here.
type CreateInput struct {
	Title    string
	Content  string
	Category string
	IsUrgent bool
}

// Validate checks the full-create schema and reports every violated field.
func (in CreateInput) Validate() error {
	var errs entity.ValidationErrors
	if v := entity.ValidateTitle(in.Title); v != nil {
		errs = append(errs, v)
	}
	if v := entity.ValidateContent(in.Content); v != nil {
		errs = append(errs, v)
	}
	if v := entity.ValidateCategory(in.Category); v != nil {
		errs = append(errs, v)
	}
	return errs.OrNil()
}

// UpdateInput represents the input parameters for a partial update.
// Nil fields are left unchanged; any field that is present must still satisfy
// its constraint. Views is the one counter a client may set explicitly;
// ID and PublishedAt are never client-writable.
type UpdateInput struct {
	ID       int64
	Title    *string
	Content  *string
	Category *string
	IsUrgent *bool
	Views    *int64
}

// Validate checks every present field against the partial-update schema,
// reporting all violations at once.
func (in UpdateInput) Validate() error {
	var errs entity.ValidationErrors
	if in.Title != nil {
		if v := entity.ValidateTitle(*in.Title); v != nil {
			errs = append(errs, v)
		}
	}
	if in.Content != nil {
		if v := entity.ValidateContent(*in.Content); v != nil {
			errs = append(errs, v)
		}
	}
	if in.Category != nil {
		if v := entity.ValidateCategory(*in.Category); v != nil {
			errs = append(errs, v)
		}
	}
	if in.Views != nil {
		if v := entity.ValidateViews(*in.Views); v != nil {
			errs = append(errs, v)
		}
	}
	return errs.OrNil()
}

// Service provides article management use cases.
// It handles business logic for article operations and delegates persistence
// to the repository.
type Service struct {
	Repo repository.ArticleRepository

	// Now supplies creation timestamps; defaults to time.Now. Injected so
	// tests can pin PublishedAt.
	Now func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

// List retrieves all articles from the repository.
// Ordering for display is the caller's concern (see internal/common/query).
func (s *Service) List(ctx context.Context) ([]*entity.Article, error) {
	articles, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// Create validates the input, fills the server-assigned fields, and stores
// the new article. Returns entity.ValidationErrors when any field is invalid.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Article, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	art := &entity.Article{
		Title:       in.Title,
		Content:     in.Content,
		Category:    in.Category,
		ImageURL:    placeholderImageURL(in.Category),
		ImageHint:   in.Category,
		PublishedAt: s.now(),
		Views:       0,
		IsUrgent:    in.IsUrgent,
	}

	if err := s.Repo.Add(ctx, art); err != nil {
		return nil, fmt.Errorf("add article: %w", err)
	}
	return art, nil
}

// Update merges the provided fields into the existing record.
// Returns ErrInvalidArticleID for non-positive ids, ErrArticleNotFound when
// the article does not exist, and entity.ValidationErrors when a present
// field violates its constraint.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Article, error) {
	if in.ID <= 0 {
		return nil, ErrInvalidArticleID
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	art, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}

	if in.Title != nil {
		art.Title = *in.Title
	}
	if in.Content != nil {
		art.Content = *in.Content
	}
	if in.Category != nil {
		art.Category = *in.Category
	}
	if in.IsUrgent != nil {
		art.IsUrgent = *in.IsUrgent
	}
	if in.Views != nil {
		art.Views = *in.Views
	}

	if err := s.Repo.Update(ctx, art); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("update article: %w", err)
	}
	return art, nil
}

// Delete removes an article by its ID.
// Returns ErrInvalidArticleID for non-positive ids and ErrArticleNotFound
// when no record matches.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidArticleID
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrArticleNotFound
		}
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}

// DeleteAll clears the collection and reports how many records were removed.
func (s *Service) DeleteAll(ctx context.Context) (int64, error) {
	count, err := s.Repo.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete all articles: %w", err)
	}
	return count, nil
}

// placeholderImageURL derives the placeholder image for a new article from
// its category, so articles in the same category share a stable image.
func placeholderImageURL(category string) string {
	seed := strings.ToLower(strings.TrimSpace(category))
	if seed == "" {
		seed = "news"
	}
	return "https://picsum.photos/seed/" + url.PathEscape(seed) + "/600/400"
}
