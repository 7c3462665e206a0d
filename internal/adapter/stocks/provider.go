package stocks

import (
	"context"
	"log/slog"
	"time"

	"github.com/ShayaanRahim/GeoPoli-Invest/internal/domain"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// maxSymbols bounds a single lookup so sector queries stay cheap.
const maxSymbols = 5

const cacheSize = 256

// Provider serves stock quotes with a short-lived in-memory cache in front.
// Until a market data feed is wired in, quotes are static placeholder values;
// the cache and the lookup shape stay the same once a real feed lands.
type Provider struct {
	cache  *expirable.LRU[string, domain.Quote]
	logger *slog.Logger
}

func NewProvider(ttl time.Duration, logger *slog.Logger) *Provider {
	return &Provider{
		cache:  expirable.NewLRU[string, domain.Quote](cacheSize, nil, ttl),
		logger: logger,
	}
}

func (p *Provider) Quotes(ctx context.Context, symbols []string) (map[string]domain.Quote, error) {
	if len(symbols) > maxSymbols {
		symbols = symbols[:maxSymbols]
	}

	quotes := make(map[string]domain.Quote, len(symbols))
	misses := 0
	for _, symbol := range symbols {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if quote, ok := p.cache.Get(symbol); ok {
			quotes[symbol] = quote
			continue
		}
		quote := p.fetch(symbol)
		p.cache.Add(symbol, quote)
		quotes[symbol] = quote
		misses++
	}

	p.logger.Debug("resolved quotes",
		slog.Int("symbols", len(symbols)),
		slog.Int("cache_misses", misses))

	return quotes, nil
}

// fetch returns placeholder market data for a symbol.
func (p *Provider) fetch(_ string) domain.Quote {
	return domain.Quote{
		Price:         100.0,
		Change:        1.5,
		ChangePercent: 1.5,
		Volume:        1_000_000,
		MarketCap:     1_000_000_000,
	}
}
