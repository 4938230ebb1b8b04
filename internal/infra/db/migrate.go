package db

import "database/sql"

// MigrateUp creates the articles table and its indexes if they do not exist.
// Article ids are assigned by the repository (max + 1), not by a sequence, so
// the column is a plain BIGINT primary key.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS articles (
    id           BIGINT PRIMARY KEY,
    title        TEXT NOT NULL,
    content      TEXT NOT NULL,
    category     TEXT NOT NULL,
    image_url    TEXT NOT NULL DEFAULT '',
    image_hint   TEXT NOT NULL DEFAULT '',
    published_at TIMESTAMPTZ NOT NULL,
    views        BIGINT NOT NULL DEFAULT 0 CHECK (views >= 0),
    is_urgent    BOOLEAN NOT NULL DEFAULT FALSE
)`); err != nil {
		return err
	}

	indexes := []string{
		// ORDER BY published_at DESC is the default display order
		`CREATE INDEX IF NOT EXISTS idx_articles_published_at ON articles(published_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_category ON articles(category)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	return nil
}
