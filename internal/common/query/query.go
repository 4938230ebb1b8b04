// Package query provides pure functions that compute filtered and sorted
// views of the article collection. The functions never mutate their input;
// callers compose them in whatever order they need (handlers apply category,
// then search, then sort).
package query

import (
	"sort"
	"strings"

	"newsdesk/internal/domain/entity"
)

// Direction selects the sort order for SortBy.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// AllCategories is the category value that disables category filtering.
const AllCategories = "all"

// DefaultSortKey is the display default: newest first.
const DefaultSortKey = "publishedAt"

// FilterByCategory returns the articles whose category matches exactly.
// The value "all" (or empty) is the identity filter and returns the input
// slice unchanged.
func FilterByCategory(articles []*entity.Article, category string) []*entity.Article {
	if category == "" || category == AllCategories {
		return articles
	}

	out := make([]*entity.Article, 0, len(articles))
	for _, a := range articles {
		if a.Category == category {
			out = append(out, a)
		}
	}
	return out
}

// FilterBySearch returns the articles whose title or content contains the
// query, case-insensitively. An empty query is the identity filter.
func FilterBySearch(articles []*entity.Article, q string) []*entity.Article {
	if q == "" {
		return articles
	}

	needle := strings.ToLower(q)
	out := make([]*entity.Article, 0, len(articles))
	for _, a := range articles {
		if strings.Contains(strings.ToLower(a.Title), needle) ||
			strings.Contains(strings.ToLower(a.Content), needle) {
			out = append(out, a)
		}
	}
	return out
}

// SortBy returns a new slice ordered by the named field. The sort is stable:
// ties keep the input's relative order. Supported keys are id, title,
// category, publishedAt, and views; an unknown key falls back to publishedAt
// descending regardless of the requested direction.
func SortBy(articles []*entity.Article, key string, dir Direction) []*entity.Article {
	out := make([]*entity.Article, len(articles))
	copy(out, articles)

	less := lessFunc(key)
	if less == nil {
		key, dir = DefaultSortKey, Descending
		less = lessFunc(key)
	}

	if dir == Descending {
		inner := less
		less = func(a, b *entity.Article) bool { return inner(b, a) }
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// lessFunc returns the ascending comparator for a sort key, or nil when the
// key is not recognized.
func lessFunc(key string) func(a, b *entity.Article) bool {
	switch key {
	case "id":
		return func(a, b *entity.Article) bool { return a.ID < b.ID }
	case "title":
		return func(a, b *entity.Article) bool { return a.Title < b.Title }
	case "category":
		return func(a, b *entity.Article) bool { return a.Category < b.Category }
	case "publishedAt":
		return func(a, b *entity.Article) bool { return a.PublishedAt.Before(b.PublishedAt) }
	case "views":
		return func(a, b *entity.Article) bool { return a.Views < b.Views }
	default:
		return nil
	}
}
