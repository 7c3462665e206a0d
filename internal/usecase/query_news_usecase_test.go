package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/ShayaanRahim/GeoPoli-Invest/internal/domain"
	"github.com/ShayaanRahim/GeoPoli-Invest/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestQueryNews_Latest_DefaultLimit(t *testing.T) {
	repo := new(MockArticleRepository)
	uc := usecase.NewQueryNewsUsecase(repo)

	repo.On("Latest", mock.Anything, domain.DefaultQueryLimit).Return([]domain.ClassifiedArticle{}, nil)

	_, err := uc.Latest(context.Background(), 0)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestQueryNews_Latest_CapsExcessiveLimit(t *testing.T) {
	repo := new(MockArticleRepository)
	uc := usecase.NewQueryNewsUsecase(repo)

	repo.On("Latest", mock.Anything, 100).Return([]domain.ClassifiedArticle{}, nil)

	_, err := uc.Latest(context.Background(), 5000)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestQueryNews_ByRegion(t *testing.T) {
	repo := new(MockArticleRepository)
	uc := usecase.NewQueryNewsUsecase(repo)

	stored := []domain.ClassifiedArticle{{ID: "a1", Region: "Europe"}}
	repo.On("ByRegion", mock.Anything, "Europe", 5).Return(stored, nil)

	articles, err := uc.ByRegion(context.Background(), "Europe", 5)
	require.NoError(t, err)
	assert.Equal(t, stored, articles)
}

func TestQueryNews_ByDateRange_RejectsInvertedRange(t *testing.T) {
	repo := new(MockArticleRepository)
	uc := usecase.NewQueryNewsUsecase(repo)

	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.ByDateRange(context.Background(), start, end, 10)
	assert.Error(t, err)
	repo.AssertNotCalled(t, "ByDateRange")
}
