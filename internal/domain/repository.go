package domain

import (
	"context"
	"time"
)

// DefaultQueryLimit bounds retrieval when the caller supplies none.
const DefaultQueryLimit = 20

// DefaultRetentionDays is the purge cutoff when none is configured.
const DefaultRetentionDays = 90

// ArticleRepository persists classified articles.
//
// Insert is the safe upsert path: articles whose identifier already exists
// are skipped, never updated (first write wins), and calling it twice with
// the same batch stores the same rows as calling it once. BulkInsert skips
// the per-row existence handling for throughput; callers must pre-filter
// duplicates themselves.
type ArticleRepository interface {
	Insert(ctx context.Context, articles []ClassifiedArticle) (int, error)
	BulkInsert(ctx context.Context, articles []ClassifiedArticle) (int, error)
	Latest(ctx context.Context, limit int) ([]ClassifiedArticle, error)
	ByRegion(ctx context.Context, region string, limit int) ([]ClassifiedArticle, error)
	ByDateRange(ctx context.Context, start, end time.Time, limit int) ([]ClassifiedArticle, error)
	ExistsByURL(ctx context.Context, url string) (bool, error)
	// PurgeOlderThan deletes rows whose publish date is strictly before the
	// cutoff. Rows with a NULL publish date are never purged.
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	All(ctx context.Context) ([]ClassifiedArticle, error)
}

// ArticleFetcher is the external news-fetch collaborator. Implementations
// perform single-shot network calls; the core never blocks on network I/O
// inside its own operations.
type ArticleFetcher interface {
	FetchLatest(ctx context.Context, limit int) ([]RawArticle, error)
}
