package domain

import "context"

// Quote is a snapshot of market data for a single ticker symbol.
type Quote struct {
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
	Volume        int64   `json:"volume"`
	MarketCap     int64   `json:"market_cap"`
}

// QuoteProvider is the external stock-data collaborator.
type QuoteProvider interface {
	Quotes(ctx context.Context, symbols []string) (map[string]Quote, error)
}
