package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ShayaanRahim/GeoPoli-Invest/internal/domain"
)

// RefreshResult summarizes one fetch-and-ingest cycle.
type RefreshResult struct {
	Fetched int           `json:"fetched"`
	Kept    int           `json:"kept"`
	Ingest  *IngestResult `json:"ingest"`
}

// RefreshNewsUsecase pulls the latest articles from the news collaborator,
// drops off-topic ones, and runs the ingest pipeline on the rest. It is the
// shared path behind the refresh endpoint and the periodic worker.
type RefreshNewsUsecase interface {
	Refresh(ctx context.Context, limit int) (*RefreshResult, error)
}

type refreshNewsUsecase struct {
	fetcher domain.ArticleFetcher
	ingest  IngestArticlesUsecase
	tax     *domain.Taxonomy
	logger  *slog.Logger
}

func NewRefreshNewsUsecase(
	fetcher domain.ArticleFetcher,
	ingest IngestArticlesUsecase,
	tax *domain.Taxonomy,
	logger *slog.Logger,
) RefreshNewsUsecase {
	return &refreshNewsUsecase{
		fetcher: fetcher,
		ingest:  ingest,
		tax:     tax,
		logger:  logger.With(slog.String("component", "refresh_news_usecase")),
	}
}

func (u *refreshNewsUsecase) Refresh(ctx context.Context, limit int) (*RefreshResult, error) {
	raws, err := u.fetcher.FetchLatest(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest news: %w", err)
	}

	kept := domain.FilterGeopolitical(u.tax, raws)

	result, err := u.ingest.Ingest(ctx, kept)
	if err != nil {
		return nil, fmt.Errorf("failed to ingest fetched news: %w", err)
	}

	u.logger.Info("refresh cycle complete",
		slog.Int("fetched", len(raws)),
		slog.Int("kept", len(kept)),
		slog.Int("stored", result.Stored))

	return &RefreshResult{
		Fetched: len(raws),
		Kept:    len(kept),
		Ingest:  result,
	}, nil
}
