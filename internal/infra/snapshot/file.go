// Package snapshot mirrors the article collection into a single JSON file.
// The file is a cache, not a source of truth: it is rewritten after every
// successful mutation and read once at startup to rehydrate the in-memory
// store before the first request.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

// DefaultPath is the snapshot location used when none is configured.
// The base name matches the cache key the web UI reads.
const DefaultPath = "news_data.json"

// record is the persisted article shape. The field names match the JSON the
// UI stores under its news_data key, so a snapshot is readable by both sides.
type record struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"imageUrl"`
	ImageHint   string    `json:"imageHint"`
	PublishedAt time.Time `json:"publishedAt"`
	Views       int64     `json:"views"`
	IsUrgent    bool      `json:"isUrgent"`
}

// Store reads and writes the snapshot file.
type Store struct {
	path string
}

// New creates a snapshot store for the given path.
// An empty path falls back to DefaultPath.
func New(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{path: path}
}

// Save writes the full collection to the snapshot file. The write goes to a
// temp file in the same directory and is renamed into place, so a crash
// mid-write never leaves a truncated snapshot behind.
func (s *Store) Save(articles []*entity.Article) error {
	records := make([]record, 0, len(articles))
	for _, a := range articles {
		records = append(records, record{
			ID:          a.ID,
			Title:       a.Title,
			Content:     a.Content,
			Category:    a.Category,
			ImageURL:    a.ImageURL,
			ImageHint:   a.ImageHint,
			PublishedAt: a.PublishedAt,
			Views:       a.Views,
			IsUrgent:    a.IsUrgent,
		})
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("rename snapshot: %w", err)
	}
	return nil
}

// Load reads the snapshot file. A missing file is not an error: it returns
// (nil, nil), meaning the process starts with an empty collection.
func (s *Store) Load() ([]*entity.Article, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}

	articles := make([]*entity.Article, 0, len(records))
	for _, r := range records {
		articles = append(articles, &entity.Article{
			ID:          r.ID,
			Title:       r.Title,
			Content:     r.Content,
			Category:    r.Category,
			ImageURL:    r.ImageURL,
			ImageHint:   r.ImageHint,
			PublishedAt: r.PublishedAt,
			Views:       r.Views,
			IsUrgent:    r.IsUrgent,
		})
	}
	return articles, nil
}

// Hook adapts the store into a repository.MutationHook. A failed mirror write
// is logged and swallowed: the in-memory collection stays authoritative and
// the next successful mutation rewrites the whole file anyway.
func (s *Store) Hook(logger *slog.Logger) repository.MutationHook {
	return func(_ context.Context, articles []*entity.Article) {
		if err := s.Save(articles); err != nil {
			logger.Error("snapshot mirror write failed",
				slog.String("path", s.path),
				slog.Any("error", err))
		}
	}
}
