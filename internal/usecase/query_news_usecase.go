package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/ShayaanRahim/GeoPoli-Invest/internal/domain"
)

// maxQueryLimit caps caller-supplied limits.
const maxQueryLimit = 100

// QueryNewsUsecase serves stored articles ordered by publish date
// descending, bounded by a limit.
type QueryNewsUsecase interface {
	Latest(ctx context.Context, limit int) ([]domain.ClassifiedArticle, error)
	ByRegion(ctx context.Context, region string, limit int) ([]domain.ClassifiedArticle, error)
	ByDateRange(ctx context.Context, start, end time.Time, limit int) ([]domain.ClassifiedArticle, error)
}

type queryNewsUsecase struct {
	repo domain.ArticleRepository
}

func NewQueryNewsUsecase(repo domain.ArticleRepository) QueryNewsUsecase {
	return &queryNewsUsecase{repo: repo}
}

func (u *queryNewsUsecase) Latest(ctx context.Context, limit int) ([]domain.ClassifiedArticle, error) {
	articles, err := u.repo.Latest(ctx, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query latest news: %w", err)
	}
	return articles, nil
}

func (u *queryNewsUsecase) ByRegion(ctx context.Context, region string, limit int) ([]domain.ClassifiedArticle, error) {
	articles, err := u.repo.ByRegion(ctx, region, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query news for region %q: %w", region, err)
	}
	return articles, nil
}

func (u *queryNewsUsecase) ByDateRange(ctx context.Context, start, end time.Time, limit int) ([]domain.ClassifiedArticle, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("invalid date range: end %s before start %s", end.Format(time.RFC3339), start.Format(time.RFC3339))
	}
	articles, err := u.repo.ByDateRange(ctx, start, end, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query news by date range: %w", err)
	}
	return articles, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return domain.DefaultQueryLimit
	}
	if limit > maxQueryLimit {
		return maxQueryLimit
	}
	return limit
}
