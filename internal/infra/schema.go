package infra

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS news_articles (
		id               TEXT PRIMARY KEY,
		title            TEXT NOT NULL,
		content          TEXT,
		source           TEXT,
		url              TEXT UNIQUE,
		publish_date     TIMESTAMPTZ,
		relevance_score  DOUBLE PRECISION NOT NULL DEFAULT 0,
		region           TEXT,
		countries        TEXT NOT NULL DEFAULT '',
		event_type       TEXT NOT NULL DEFAULT 'other',
		market_sentiment TEXT NOT NULL DEFAULT 'neutral',
		affected_sectors TEXT NOT NULL DEFAULT '',
		processed        BOOLEAN NOT NULL DEFAULT FALSE,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_news_articles_publish_date ON news_articles (publish_date DESC NULLS LAST)`,
	`CREATE INDEX IF NOT EXISTS idx_news_articles_region ON news_articles (region)`,
	`CREATE INDEX IF NOT EXISTS idx_news_articles_event_type ON news_articles (event_type)`,
}

// EnsureSchema creates the article table and its indexes if they do not
// exist. Safe to run on every startup.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}
