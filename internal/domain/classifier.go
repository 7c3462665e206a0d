package domain

import "strings"

// relevanceDivisor normalizes keyword hit counts into the [0,1] range:
// five keyword occurrences saturate the score.
const relevanceDivisor = 5.0

// Classification is the result of running the keyword classifier over a
// single article text.
type Classification struct {
	RelevanceScore float64
	Region         string
	Countries      []string
	EventType      string
	Sentiment      string
}

// Classifier turns raw article text into classification metadata. It never
// fails: absent matches yield default/neutral/empty outputs.
type Classifier interface {
	Classify(text string) Classification
	AffectedSectors(text string) []string
}

type keywordClassifier struct {
	tax *Taxonomy
}

// NewKeywordClassifier creates the keyword/regex classifier backed by the
// shared taxonomy tables.
func NewKeywordClassifier(tax *Taxonomy) Classifier {
	return &keywordClassifier{tax: tax}
}

func (c *keywordClassifier) Classify(text string) Classification {
	countries, region := c.extractCountriesRegion(text)
	return Classification{
		RelevanceScore: c.relevanceScore(text),
		Region:         region,
		Countries:      countries,
		EventType:      c.categorizeEvent(text),
		Sentiment:      c.sentiment(text),
	}
}

// relevanceScore counts substring occurrences of each geo keyword and
// clamps the normalized sum to 1.0.
func (c *keywordClassifier) relevanceScore(text string) float64 {
	lowered := strings.ToLower(text)
	hits := 0
	for _, keyword := range c.tax.GeoKeywords {
		hits += strings.Count(lowered, keyword)
	}
	score := float64(hits) / relevanceDivisor
	if score > 1.0 {
		return 1.0
	}
	return score
}

// extractCountriesRegion collects every country alias matched as a whole
// word. The region is the first table entry with at least one matching
// alias, so it is set only when the country set is non-empty.
func (c *keywordClassifier) extractCountriesRegion(text string) ([]string, string) {
	var countries []string
	var region string
	seen := make(map[string]bool)

	for i := range c.tax.Regions {
		entry := &c.tax.Regions[i]
		matched := false
		for j, pattern := range entry.patterns {
			if !pattern.MatchString(text) {
				continue
			}
			matched = true
			alias := entry.Aliases[j]
			if !seen[alias] {
				seen[alias] = true
				countries = append(countries, alias)
			}
		}
		if matched && region == "" {
			region = entry.Name
		}
	}

	return countries, region
}

// categorizeEvent walks the ordered event-type table and returns the first
// entry with a matching keyword. Table order is the priority order.
func (c *keywordClassifier) categorizeEvent(text string) string {
	lowered := strings.ToLower(text)
	for _, entry := range c.tax.EventTypes {
		for _, keyword := range entry.Keywords {
			if strings.Contains(lowered, keyword) {
				return entry.Name
			}
		}
	}
	return EventTypeOther
}

// sentiment checks negative keywords before positive ones, so negative wins
// when both lists match.
func (c *keywordClassifier) sentiment(text string) string {
	lowered := strings.ToLower(text)
	for _, keyword := range c.tax.Sentiment.Negative {
		if strings.Contains(lowered, keyword) {
			return SentimentNegative
		}
	}
	for _, keyword := range c.tax.Sentiment.Positive {
		if strings.Contains(lowered, keyword) {
			return SentimentPositive
		}
	}
	return SentimentNeutral
}

// AffectedSectors returns every sector with a trigger keyword present in
// the text. Unlike event types, sector matching is multi-label.
func (c *keywordClassifier) AffectedSectors(text string) []string {
	lowered := strings.ToLower(text)
	var sectors []string
	for _, entry := range c.tax.Sectors {
		for _, keyword := range entry.Keywords {
			if strings.Contains(lowered, keyword) {
				sectors = append(sectors, entry.Name)
				break
			}
		}
	}
	return sectors
}
