// Package entity defines the core domain entities and validation logic for the
// application. It contains the Article entity, its field-level validation rules,
// and domain-specific errors.
package entity

import "time"

// Article represents a single news item, the system's only domain entity.
// The store assigns ID and PublishedAt on creation; both are immutable through
// normal update paths. ImageURL and ImageHint are derived placeholder fields,
// never supplied by clients.
type Article struct {
	ID          int64
	Title       string
	Content     string
	Category    string
	ImageURL    string
	ImageHint   string
	PublishedAt time.Time
	Views       int64
	IsUrgent    bool
}

// Clone returns a copy of the article so callers can mutate the result
// without touching the store's canonical record.
func (a *Article) Clone() *Article {
	c := *a
	return &c
}
