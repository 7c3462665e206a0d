package domain_test

import (
	"strings"
	"testing"

	"github.com/ShayaanRahim/GeoPoli-Invest/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClassifier(t *testing.T) domain.Classifier {
	t.Helper()
	tax, err := domain.LoadTaxonomy()
	require.NoError(t, err)
	return domain.NewKeywordClassifier(tax)
}

func TestClassifier_RelevanceScore(t *testing.T) {
	classifier := newClassifier(t)

	t.Run("empty text scores zero", func(t *testing.T) {
		cls := classifier.Classify("")
		assert.Equal(t, 0.0, cls.RelevanceScore)
	})

	t.Run("single keyword scores one fifth", func(t *testing.T) {
		cls := classifier.Classify("New sanctions announced today")
		assert.InDelta(t, 0.2, cls.RelevanceScore, 1e-9)
	})

	t.Run("score is clamped to one", func(t *testing.T) {
		text := strings.Repeat("military conflict sanctions embargo nuclear ", 3)
		cls := classifier.Classify(text)
		assert.Equal(t, 1.0, cls.RelevanceScore)
	})

	t.Run("score stays within bounds for arbitrary text", func(t *testing.T) {
		for _, text := range []string{"", "no matches here", "war war war war war war", "MISSILE missile Missile"} {
			cls := classifier.Classify(text)
			assert.GreaterOrEqual(t, cls.RelevanceScore, 0.0)
			assert.LessOrEqual(t, cls.RelevanceScore, 1.0)
		}
	})
}

func TestClassifier_CountriesAndRegion(t *testing.T) {
	classifier := newClassifier(t)

	t.Run("whole word match is case insensitive", func(t *testing.T) {
		cls := classifier.Classify("tensions rise between RUSSIA and china")
		assert.ElementsMatch(t, []string{"China", "Russia"}, cls.Countries)
	})

	t.Run("substring inside a word does not match", func(t *testing.T) {
		// "Prussia" must not match the "Russia" alias.
		cls := classifier.Classify("a history of Prussia")
		assert.Empty(t, cls.Countries)
		assert.Empty(t, cls.Region)
	})

	t.Run("region is never set without a matched country", func(t *testing.T) {
		cls := classifier.Classify("completely unrelated text about gardening")
		assert.Empty(t, cls.Region)
		assert.Empty(t, cls.Countries)
	})

	t.Run("first matching region in table order wins", func(t *testing.T) {
		// China precedes Europe in the taxonomy table.
		cls := classifier.Classify("China and Germany sign an accord")
		assert.Equal(t, "China", cls.Region)
		assert.ElementsMatch(t, []string{"China", "Germany"}, cls.Countries)
	})

	t.Run("duplicate aliases are deduplicated", func(t *testing.T) {
		cls := classifier.Classify("Iran says Iran will respond")
		assert.Equal(t, []string{"Iran"}, cls.Countries)
		assert.Equal(t, "Iran", cls.Region)
	})
}

func TestClassifier_CategorizeEvent(t *testing.T) {
	classifier := newClassifier(t)

	t.Run("first table entry wins on multiple matches", func(t *testing.T) {
		cls := classifier.Classify("sanction follows military buildup")
		assert.Equal(t, "sanctions", cls.EventType)
	})

	t.Run("defaults to other", func(t *testing.T) {
		cls := classifier.Classify("quiet day on the markets")
		assert.Equal(t, domain.EventTypeOther, cls.EventType)
	})

	tests := []struct {
		text string
		want string
	}{
		{"drone strike reported", "military"},
		{"new tariff schedule published", "trade"},
		{"pipeline maintenance extended", "energy"},
		{"summit planned for spring", "diplomacy"},
		{"major hack reported at the ministry", "cyber"},
		{"referendum scheduled", "political"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			cls := classifier.Classify(tt.text)
			assert.Equal(t, tt.want, cls.EventType)
		})
	}
}

func TestClassifier_Sentiment(t *testing.T) {
	classifier := newClassifier(t)

	t.Run("negative takes precedence over positive", func(t *testing.T) {
		cls := classifier.Classify("peace talks collapse amid new sanction threats")
		assert.Equal(t, domain.SentimentNegative, cls.Sentiment)
	})

	t.Run("positive when only positive keywords match", func(t *testing.T) {
		cls := classifier.Classify("breakthrough agreement reached in negotiation")
		assert.Equal(t, domain.SentimentPositive, cls.Sentiment)
	})

	t.Run("defaults to neutral", func(t *testing.T) {
		cls := classifier.Classify("markets flat ahead of earnings")
		assert.Equal(t, domain.SentimentNeutral, cls.Sentiment)
	})
}

func TestClassifier_AffectedSectors(t *testing.T) {
	classifier := newClassifier(t)

	t.Run("multi-label matching", func(t *testing.T) {
		sectors := classifier.AffectedSectors("oil prices spike as military tension grows")
		assert.ElementsMatch(t, []string{"energy", "defense"}, sectors)
	})

	t.Run("no matches yields empty", func(t *testing.T) {
		assert.Empty(t, classifier.AffectedSectors("nothing sector related"))
	})
}

func TestClassifier_EndToEndExample(t *testing.T) {
	classifier := newClassifier(t)

	text := "Country X imposes new sanctions on neighbor Trade war escalates amid embargo threats"
	cls := classifier.Classify(text)

	// "Country X" matches no region alias.
	assert.Empty(t, cls.Countries)
	assert.Empty(t, cls.Region)
	assert.Equal(t, "sanctions", cls.EventType)
	assert.Equal(t, domain.SentimentNegative, cls.Sentiment)
	// Geo keyword hits: sanctions + embargo.
	assert.InDelta(t, 0.4, cls.RelevanceScore, 1e-9)
}
