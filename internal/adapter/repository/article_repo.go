package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ShayaanRahim/GeoPoli-Invest/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const articleColumns = `id, title, content, source, url, publish_date, relevance_score,
		region, countries, event_type, market_sentiment, affected_sectors, processed`

var copyColumns = []string{
	"id", "title", "content", "source", "url", "publish_date", "relevance_score",
	"region", "countries", "event_type", "market_sentiment", "affected_sectors", "processed",
}

type articleRepository struct {
	db     DBIface
	logger *slog.Logger
}

// NewArticleRepository creates the PostgreSQL article repository.
func NewArticleRepository(db DBIface, logger *slog.Logger) domain.ArticleRepository {
	return &articleRepository{
		db:     db,
		logger: logger.With("component", "article_repository"),
	}
}

// Insert upserts articles one by one inside a single transaction. Existing
// identifiers (or URLs) are skipped, never updated: first write wins. The
// transaction makes the call atomic; a failure rolls back the whole batch.
func (r *articleRepository) Insert(ctx context.Context, articles []domain.ClassifiedArticle) (int, error) {
	if len(articles) == 0 {
		return 0, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", wrapStorage(err))
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO news_articles (` + articleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT DO NOTHING
	`

	inserted := 0
	for _, article := range articles {
		tag, err := tx.Exec(ctx, query, insertArgs(article)...)
		if err != nil {
			return 0, fmt.Errorf("failed to insert article %s: %w", article.ID, wrapStorage(err))
		}
		inserted += int(tag.RowsAffected())
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit insert: %w", wrapStorage(err))
	}
	return inserted, nil
}

// BulkInsert loads articles through the COPY protocol without per-row
// duplicate handling. Callers must pre-filter duplicates; a conflicting row
// fails the whole copy.
func (r *articleRepository) BulkInsert(ctx context.Context, articles []domain.ClassifiedArticle) (int, error) {
	if len(articles) == 0 {
		return 0, nil
	}

	copied, err := r.db.CopyFrom(ctx,
		pgx.Identifier{"news_articles"},
		copyColumns,
		pgx.CopyFromSlice(len(articles), func(i int) ([]any, error) {
			return insertArgs(articles[i]), nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk insert %d articles: %w", len(articles), wrapStorage(err))
	}
	return int(copied), nil
}

func (r *articleRepository) Latest(ctx context.Context, limit int) ([]domain.ClassifiedArticle, error) {
	query := `
		SELECT ` + articleColumns + `
		FROM news_articles
		ORDER BY publish_date DESC NULLS LAST
		LIMIT $1
	`
	return r.queryArticles(ctx, query, limit)
}

func (r *articleRepository) ByRegion(ctx context.Context, region string, limit int) ([]domain.ClassifiedArticle, error) {
	query := `
		SELECT ` + articleColumns + `
		FROM news_articles
		WHERE region = $1
		ORDER BY publish_date DESC NULLS LAST
		LIMIT $2
	`
	return r.queryArticles(ctx, query, region, limit)
}

func (r *articleRepository) ByDateRange(ctx context.Context, start, end time.Time, limit int) ([]domain.ClassifiedArticle, error) {
	query := `
		SELECT ` + articleColumns + `
		FROM news_articles
		WHERE publish_date >= $1 AND publish_date <= $2
		ORDER BY publish_date DESC
		LIMIT $3
	`
	return r.queryArticles(ctx, query, start, end, limit)
}

func (r *articleRepository) ExistsByURL(ctx context.Context, url string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM news_articles WHERE url = $1)`, url).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check url existence: %w", wrapStorage(err))
	}
	return exists, nil
}

// PurgeOlderThan deletes rows published strictly before the cutoff. The
// comparison is never true for NULL publish dates, so those rows survive.
func (r *articleRepository) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM news_articles WHERE publish_date < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge articles: %w", wrapStorage(err))
	}
	return tag.RowsAffected(), nil
}

func (r *articleRepository) All(ctx context.Context) ([]domain.ClassifiedArticle, error) {
	query := `
		SELECT ` + articleColumns + `
		FROM news_articles
		ORDER BY publish_date DESC NULLS LAST
	`
	return r.queryArticles(ctx, query)
}

func (r *articleRepository) queryArticles(ctx context.Context, query string, args ...any) ([]domain.ClassifiedArticle, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", wrapStorage(err))
	}
	defer rows.Close()

	var articles []domain.ClassifiedArticle
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed while iterating articles: %w", wrapStorage(err))
	}
	return articles, nil
}

func scanArticle(row pgx.Row) (domain.ClassifiedArticle, error) {
	var (
		article                      domain.ClassifiedArticle
		content, source, url, region pgtype.Text
		publishDate                  pgtype.Timestamptz
		countries, sectors           string
	)

	err := row.Scan(
		&article.ID,
		&article.Title,
		&content,
		&source,
		&url,
		&publishDate,
		&article.RelevanceScore,
		&region,
		&countries,
		&article.EventType,
		&article.MarketSentiment,
		&sectors,
		&article.Processed,
	)
	if err != nil {
		return domain.ClassifiedArticle{}, fmt.Errorf("failed to scan article: %w", wrapStorage(err))
	}

	article.Content = content.String
	article.Source = source.String
	article.URL = url.String
	article.Region = region.String
	if publishDate.Valid {
		t := publishDate.Time
		article.PublishDate = &t
	}
	article.Countries = splitSet(countries)
	article.AffectedSectors = splitSet(sectors)
	return article, nil
}

func insertArgs(article domain.ClassifiedArticle) []any {
	return []any{
		article.ID,
		article.Title,
		nullableText(article.Content),
		nullableText(article.Source),
		nullableText(article.URL),
		nullableTime(article.PublishDate),
		article.RelevanceScore,
		nullableText(article.Region),
		joinSet(article.Countries),
		article.EventType,
		article.MarketSentiment,
		joinSet(article.AffectedSectors),
		article.Processed,
	}
}

// nullableText stores empty strings as NULL so the unique constraint on url
// tolerates URL-less articles.
func nullableText(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

func wrapStorage(err error) error {
	return fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
}
