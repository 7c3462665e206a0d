package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ShayaanRahim/GeoPoli-Invest/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// classifyConcurrency bounds the fan-out of batch classification.
const classifyConcurrency = 4

// RejectedArticle reports a single article that failed validation. The rest
// of the batch proceeds.
type RejectedArticle struct {
	Index  int    `json:"index"`
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

// IngestResult summarizes one ingest run.
type IngestResult struct {
	Received   int               `json:"received"`
	Classified int               `json:"classified"`
	Stored     int               `json:"stored"`
	Rejected   []RejectedArticle `json:"rejected,omitempty"`
}

// IngestArticlesUsecase runs the classify → normalize → enrich → store
// pipeline.
type IngestArticlesUsecase interface {
	// ClassifyAndNormalize produces the canonical record for one raw
	// article, including sector enrichment. It never fails.
	ClassifyAndNormalize(raw domain.RawArticle) domain.ClassifiedArticle
	// ClassifyBatch classifies independent articles in parallel. Result
	// ordering always matches input ordering.
	ClassifyBatch(ctx context.Context, raws []domain.RawArticle) []domain.ClassifiedArticle
	// Ingest validates, classifies and stores a batch. Validation failures
	// are reported per article; a storage failure fails the whole call.
	Ingest(ctx context.Context, raws []domain.RawArticle) (*IngestResult, error)
}

type ingestArticlesUsecase struct {
	normalizer *domain.Normalizer
	repo       domain.ArticleRepository
	validate   *validator.Validate
	logger     *slog.Logger
}

func NewIngestArticlesUsecase(
	normalizer *domain.Normalizer,
	repo domain.ArticleRepository,
	logger *slog.Logger,
) IngestArticlesUsecase {
	return &ingestArticlesUsecase{
		normalizer: normalizer,
		repo:       repo,
		validate:   validator.New(),
		logger:     logger.With("component", "ingest_usecase"),
	}
}

func (u *ingestArticlesUsecase) ClassifyAndNormalize(raw domain.RawArticle) domain.ClassifiedArticle {
	article := u.normalizer.Normalize(raw)
	u.normalizer.EnrichSectors(&article)
	return article
}

func (u *ingestArticlesUsecase) ClassifyBatch(ctx context.Context, raws []domain.RawArticle) []domain.ClassifiedArticle {
	results := make([]domain.ClassifiedArticle, len(raws))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(classifyConcurrency)
	for i, raw := range raws {
		i, raw := i, raw
		g.Go(func() error {
			results[i] = u.ClassifyAndNormalize(raw)
			return nil
		})
	}
	// Classification never fails, so the group error is always nil.
	_ = g.Wait()

	return results
}

func (u *ingestArticlesUsecase) Ingest(ctx context.Context, raws []domain.RawArticle) (*IngestResult, error) {
	batchID := uuid.New().String()
	result := &IngestResult{Received: len(raws)}

	accepted := make([]domain.RawArticle, 0, len(raws))
	for i, raw := range raws {
		if err := u.validate.Struct(raw); err != nil {
			vErr := &domain.ValidationError{Title: raw.Title, Reason: err.Error()}
			u.logger.Warn("article rejected", "batch_id", batchID, "index", i, "reason", vErr.Reason)
			result.Rejected = append(result.Rejected, RejectedArticle{
				Index:  i,
				Title:  raw.Title,
				Reason: vErr.Reason,
			})
			continue
		}
		accepted = append(accepted, raw)
	}

	classified := u.ClassifyBatch(ctx, accepted)
	result.Classified = len(classified)

	stored, err := u.repo.Insert(ctx, classified)
	if err != nil {
		return result, fmt.Errorf("failed to store batch %s: %w", batchID, err)
	}
	result.Stored = stored

	u.logger.Info("batch ingested",
		"batch_id", batchID,
		"received", result.Received,
		"classified", result.Classified,
		"stored", result.Stored,
		"rejected", len(result.Rejected),
	)
	return result, nil
}
