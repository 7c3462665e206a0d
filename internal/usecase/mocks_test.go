package usecase_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/ShayaanRahim/GeoPoli-Invest/internal/domain"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) Insert(ctx context.Context, articles []domain.ClassifiedArticle) (int, error) {
	args := m.Called(ctx, articles)
	return args.Int(0), args.Error(1)
}

func (m *MockArticleRepository) BulkInsert(ctx context.Context, articles []domain.ClassifiedArticle) (int, error) {
	args := m.Called(ctx, articles)
	return args.Int(0), args.Error(1)
}

func (m *MockArticleRepository) Latest(ctx context.Context, limit int) ([]domain.ClassifiedArticle, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClassifiedArticle), args.Error(1)
}

func (m *MockArticleRepository) ByRegion(ctx context.Context, region string, limit int) ([]domain.ClassifiedArticle, error) {
	args := m.Called(ctx, region, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClassifiedArticle), args.Error(1)
}

func (m *MockArticleRepository) ByDateRange(ctx context.Context, start, end time.Time, limit int) ([]domain.ClassifiedArticle, error) {
	args := m.Called(ctx, start, end, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClassifiedArticle), args.Error(1)
}

func (m *MockArticleRepository) ExistsByURL(ctx context.Context, url string) (bool, error) {
	args := m.Called(ctx, url)
	return args.Bool(0), args.Error(1)
}

func (m *MockArticleRepository) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockArticleRepository) All(ctx context.Context) ([]domain.ClassifiedArticle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClassifiedArticle), args.Error(1)
}

type stubQuoteProvider struct {
	quotes map[string]domain.Quote
	err    error
}

func (s *stubQuoteProvider) Quotes(ctx context.Context, symbols []string) (map[string]domain.Quote, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.quotes, nil
}

// --- Shared helpers ---

func testLogger() *slog.Logger {
	return slog.Default()
}

func testNormalizer(t *testing.T) *domain.Normalizer {
	t.Helper()
	tax, err := domain.LoadTaxonomy()
	require.NoError(t, err)
	return domain.NewNormalizer(domain.NewKeywordClassifier(tax), domain.NewIdentifierPolicy())
}
