package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ShayaanRahim/GeoPoli-Invest/internal/domain"
)

// Impact levels assigned by the keyword heuristic. This is a stand-in for a
// real model; see the README note on the LLM integration.
const (
	ImpactNone   = "none"
	ImpactLow    = "low"
	ImpactMedium = "medium"
	ImpactHigh   = "high"
)

var (
	highImpactKeywords   = []string{"war", "sanctions", "embargo", "crisis", "attack"}
	mediumImpactKeywords = []string{"tension", "dispute", "protest"}
)

// ImpactAnalysis is the result of analyzing free text for market impact.
type ImpactAnalysis struct {
	IsGeopolitical  bool     `json:"is_geopolitical"`
	ImpactLevel     string   `json:"impact_level"`
	AffectedSectors []string `json:"affected_sectors"`
	Confidence      float64  `json:"confidence"`
	Analysis        string   `json:"analysis,omitempty"`
}

// SectorStocksResult lists a sector's tickers together with quote data.
type SectorStocksResult struct {
	Sector  string                  `json:"sector"`
	Tickers []string                `json:"stocks"`
	Quotes  map[string]domain.Quote `json:"stock_data"`
}

// HistoricalEvent is a canned entry of the historical context payload.
type HistoricalEvent struct {
	Date             string   `json:"date"`
	Event            string   `json:"event"`
	MarketImpact     float64  `json:"market_impact"`
	AffectedSectors  []string `json:"affected_sectors,omitempty"`
	RecoveryTimeDays int      `json:"recovery_time_days"`
}

// HistoricalContext summarizes similar past events for an event type.
type HistoricalContext struct {
	EventType           string            `json:"event_type"`
	PeriodDays          int               `json:"period_days"`
	SimilarEvents       []HistoricalEvent `json:"similar_events"`
	AverageImpact       float64           `json:"average_impact"`
	AverageRecoveryTime int               `json:"average_recovery_time"`
}

// FullAnalysisResult combines impact, sector stocks and historical context.
type FullAnalysisResult struct {
	Impact          ImpactAnalysis          `json:"impact"`
	AffectedSectors []string                `json:"affected_sectors"`
	AffectedStocks  map[string][]string     `json:"affected_stocks"`
	StockData       map[string]domain.Quote `json:"stock_data"`
	Historical      HistoricalContext       `json:"historical_context"`
}

// ImpactAnalysisUsecase estimates market impact of geopolitical text using
// the shared sector-keyword table, so the classifier and the impact analyzer
// cannot drift apart.
type ImpactAnalysisUsecase interface {
	Analyze(text string) ImpactAnalysis
	SectorStocks(ctx context.Context, sector string) (*SectorStocksResult, error)
	FullAnalysis(ctx context.Context, text string) (*FullAnalysisResult, error)
	Historical(eventType string, daysBack int) HistoricalContext
}

type impactAnalysisUsecase struct {
	tax        *domain.Taxonomy
	classifier domain.Classifier
	quotes     domain.QuoteProvider
	logger     *slog.Logger
}

func NewImpactAnalysisUsecase(
	tax *domain.Taxonomy,
	classifier domain.Classifier,
	quotes domain.QuoteProvider,
	logger *slog.Logger,
) ImpactAnalysisUsecase {
	return &impactAnalysisUsecase{
		tax:        tax,
		classifier: classifier,
		quotes:     quotes,
		logger:     logger.With("component", "impact_usecase"),
	}
}

func (u *impactAnalysisUsecase) Analyze(text string) ImpactAnalysis {
	if !u.tax.IsGeopolitical(text) {
		return ImpactAnalysis{
			IsGeopolitical:  false,
			ImpactLevel:     ImpactNone,
			AffectedSectors: []string{},
			Confidence:      0.0,
		}
	}

	sectors := u.classifier.AffectedSectors(text)
	if sectors == nil {
		sectors = []string{}
	}

	lowered := strings.ToLower(text)
	level := ImpactLow
	if containsAny(lowered, highImpactKeywords) {
		level = ImpactHigh
	} else if containsAny(lowered, mediumImpactKeywords) {
		level = ImpactMedium
	}

	confidence := 0.6
	if level == ImpactHigh {
		confidence = 0.8
	}

	described := "various"
	if len(sectors) > 0 {
		described = strings.Join(sectors, ", ")
	}

	return ImpactAnalysis{
		IsGeopolitical:  true,
		ImpactLevel:     level,
		AffectedSectors: sectors,
		Confidence:      confidence,
		Analysis:        fmt.Sprintf("This appears to be a %s impact geopolitical event affecting %s sectors.", level, described),
	}
}

func (u *impactAnalysisUsecase) SectorStocks(ctx context.Context, sector string) (*SectorStocksResult, error) {
	tickers := u.tax.SectorTickers(sector)
	if tickers == nil {
		return nil, nil
	}

	quotes, err := u.quotes.Quotes(ctx, tickers)
	if err != nil {
		// Quote data is best effort; the ticker list is still useful.
		u.logger.Warn("failed to fetch quotes", "sector", sector, "error", err)
		quotes = map[string]domain.Quote{}
	}

	return &SectorStocksResult{
		Sector:  strings.ToLower(sector),
		Tickers: tickers,
		Quotes:  quotes,
	}, nil
}

func (u *impactAnalysisUsecase) FullAnalysis(ctx context.Context, text string) (*FullAnalysisResult, error) {
	impact := u.Analyze(text)

	affectedStocks := make(map[string][]string)
	stockData := make(map[string]domain.Quote)
	for _, sector := range impact.AffectedSectors {
		result, err := u.SectorStocks(ctx, sector)
		if err != nil || result == nil {
			continue
		}
		affectedStocks[sector] = result.Tickers
		for symbol, quote := range result.Quotes {
			stockData[symbol] = quote
		}
	}

	lowered := strings.ToLower(text)
	eventType := "general"
	switch {
	case containsAny(lowered, []string{"sanctions", "embargo"}):
		eventType = "sanctions"
	case containsAny(lowered, []string{"war", "conflict"}):
		eventType = "conflict"
	}

	return &FullAnalysisResult{
		Impact:          impact,
		AffectedSectors: impact.AffectedSectors,
		AffectedStocks:  affectedStocks,
		StockData:       stockData,
		Historical:      u.Historical(eventType, 30),
	}, nil
}

// Historical returns canned similar-event data. There is no backing dataset
// yet; the payload shape is stable so consumers can build against it.
func (u *impactAnalysisUsecase) Historical(eventType string, daysBack int) HistoricalContext {
	if eventType == "" {
		eventType = "general"
	}
	if daysBack <= 0 {
		daysBack = 30
	}
	return HistoricalContext{
		EventType:  eventType,
		PeriodDays: daysBack,
		SimilarEvents: []HistoricalEvent{
			{
				Date:             "2023-01-15",
				Event:            "Trade sanctions imposed",
				MarketImpact:     -2.5,
				AffectedSectors:  []string{"trade", "shipping"},
				RecoveryTimeDays: 7,
			},
			{
				Date:             "2022-11-20",
				Event:            "Political crisis",
				MarketImpact:     -1.8,
				AffectedSectors:  []string{"finance", "consumer"},
				RecoveryTimeDays: 5,
			},
		},
		AverageImpact:       -2.15,
		AverageRecoveryTime: 6,
	}
}

func containsAny(lowered string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}
