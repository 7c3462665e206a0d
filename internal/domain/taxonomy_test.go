package domain_test

import (
	"testing"

	"github.com/ShayaanRahim/GeoPoli-Invest/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTaxonomy(t *testing.T) {
	tax, err := domain.LoadTaxonomy()
	require.NoError(t, err)

	t.Run("event type priority order is preserved", func(t *testing.T) {
		var names []string
		for _, e := range tax.EventTypes {
			names = append(names, e.Name)
		}
		assert.Equal(t, []string{"sanctions", "military", "trade", "energy", "diplomacy", "cyber", "political"}, names)
	})

	t.Run("sector tickers lookup", func(t *testing.T) {
		assert.Contains(t, tax.SectorTickers("energy"), "XOM")
		assert.Contains(t, tax.SectorTickers("Defense"), "LMT")
		assert.Nil(t, tax.SectorTickers("unknown"))
	})

	t.Run("sector names in table order", func(t *testing.T) {
		names := tax.SectorNames()
		require.Len(t, names, 9)
		assert.Equal(t, "energy", names[0])
		assert.Equal(t, "materials", names[8])
	})

	t.Run("broad geopolitical check", func(t *testing.T) {
		assert.True(t, tax.IsGeopolitical("tensions in the South China Sea"))
		assert.False(t, tax.IsGeopolitical("recipe for banana bread"))
	})

	t.Run("core geo keyword check", func(t *testing.T) {
		assert.True(t, tax.MatchesGeoKeyword("nuclear deal in doubt"))
		assert.False(t, tax.MatchesGeoKeyword("gardening tips"))
	})
}
