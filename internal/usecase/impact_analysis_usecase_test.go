package usecase_test

import (
	"context"
	"testing"

	"github.com/ShayaanRahim/GeoPoli-Invest/internal/domain"
	"github.com/ShayaanRahim/GeoPoli-Invest/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newImpactUsecase(t *testing.T, quotes domain.QuoteProvider) usecase.ImpactAnalysisUsecase {
	t.Helper()
	tax, err := domain.LoadTaxonomy()
	require.NoError(t, err)
	return usecase.NewImpactAnalysisUsecase(tax, domain.NewKeywordClassifier(tax), quotes, testLogger())
}

func TestImpactAnalysis_Analyze(t *testing.T) {
	uc := newImpactUsecase(t, &stubQuoteProvider{})

	t.Run("non-geopolitical text", func(t *testing.T) {
		analysis := uc.Analyze("sourdough starter troubleshooting")
		assert.False(t, analysis.IsGeopolitical)
		assert.Equal(t, usecase.ImpactNone, analysis.ImpactLevel)
		assert.Empty(t, analysis.AffectedSectors)
		assert.Zero(t, analysis.Confidence)
	})

	t.Run("high impact with sectors", func(t *testing.T) {
		analysis := uc.Analyze("oil embargo and military escalation threaten supply")
		assert.True(t, analysis.IsGeopolitical)
		assert.Equal(t, usecase.ImpactHigh, analysis.ImpactLevel)
		assert.Equal(t, 0.8, analysis.Confidence)
		assert.ElementsMatch(t, []string{"energy", "defense"}, analysis.AffectedSectors)
		assert.Contains(t, analysis.Analysis, "high impact")
	})

	t.Run("medium impact", func(t *testing.T) {
		analysis := uc.Analyze("diplomatic tension over fishing rights")
		assert.True(t, analysis.IsGeopolitical)
		assert.Equal(t, usecase.ImpactMedium, analysis.ImpactLevel)
		assert.Equal(t, 0.6, analysis.Confidence)
	})
}

func TestImpactAnalysis_SectorStocks(t *testing.T) {
	provider := &stubQuoteProvider{quotes: map[string]domain.Quote{
		"XOM": {Price: 100.0, Change: 1.5},
	}}
	uc := newImpactUsecase(t, provider)

	t.Run("known sector", func(t *testing.T) {
		result, err := uc.SectorStocks(context.Background(), "energy")
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "energy", result.Sector)
		assert.Contains(t, result.Tickers, "XOM")
		assert.Equal(t, 100.0, result.Quotes["XOM"].Price)
	})

	t.Run("unknown sector", func(t *testing.T) {
		result, err := uc.SectorStocks(context.Background(), "cryptozoology")
		require.NoError(t, err)
		assert.Nil(t, result)
	})
}

func TestImpactAnalysis_FullAnalysis(t *testing.T) {
	provider := &stubQuoteProvider{quotes: map[string]domain.Quote{
		"XOM": {Price: 100.0},
	}}
	uc := newImpactUsecase(t, provider)

	result, err := uc.FullAnalysis(context.Background(), "oil embargo hits exports")
	require.NoError(t, err)
	assert.True(t, result.Impact.IsGeopolitical)
	assert.Contains(t, result.AffectedStocks, "energy")
	assert.Equal(t, "sanctions", result.Historical.EventType)
	assert.NotEmpty(t, result.Historical.SimilarEvents)
}

func TestImpactAnalysis_Historical_Defaults(t *testing.T) {
	uc := newImpactUsecase(t, &stubQuoteProvider{})

	ctxData := uc.Historical("", 0)
	assert.Equal(t, "general", ctxData.EventType)
	assert.Equal(t, 30, ctxData.PeriodDays)
}
