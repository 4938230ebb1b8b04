package snapshot_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/infra/snapshot"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "news_data.json")
	store := snapshot.New(path)

	want := []*entity.Article{
		{
			ID:          1,
			Title:       "عنوان تجريبي للاختبار",
			Content:     "محتوى طويل بما يكفي لاجتياز الحد الأدنى للحقل",
			Category:    "سياسة",
			ImageURL:    "https://picsum.photos/seed/politics/600/400",
			ImageHint:   "سياسة",
			PublishedAt: time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC),
			Views:       42,
			IsUrgent:    true,
		},
		{
			ID:          2,
			Title:       "Second article",
			Content:     "another content body that is long enough",
			Category:    "sports",
			PublishedAt: time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC),
		},
	}

	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, want[0].Title, got[0].Title)
	assert.Equal(t, want[0].Views, got[0].Views)
	assert.True(t, got[0].IsUrgent)
	assert.True(t, want[0].PublishedAt.Equal(got[0].PublishedAt))
	assert.Equal(t, int64(2), got[1].ID)
}

func TestLoad_MissingFileIsEmptyCollection(t *testing.T) {
	store := snapshot.New(filepath.Join(t.TempDir(), "absent.json"))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLoad_CorruptFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := snapshot.New(path).Load()
	assert.Error(t, err)
}

func TestSave_OverwritesPreviousSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "news_data.json")
	store := snapshot.New(path)

	require.NoError(t, store.Save([]*entity.Article{{ID: 1, Title: "first"}}))
	require.NoError(t, store.Save(nil))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestHook_SwallowsWriteFailure(t *testing.T) {
	// Point the snapshot at a directory path so the write fails.
	dir := t.TempDir()
	store := snapshot.New(dir)
	hook := store.Hook(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	// Must not panic; the store remains authoritative.
	hook(context.Background(), []*entity.Article{{ID: 1}})
}
