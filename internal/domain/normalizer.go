package domain

import "strings"

// Normalizer merges a raw fetched article into the canonical record. Sector
// enrichment is deliberately not part of normalization: AffectedSectors is
// left empty and filled by a later, independently callable step.
type Normalizer struct {
	classifier Classifier
	ids        IdentifierPolicy
}

func NewNormalizer(classifier Classifier, ids IdentifierPolicy) *Normalizer {
	return &Normalizer{classifier: classifier, ids: ids}
}

// Normalize classifies the article text and produces the canonical record.
// It never fails; a missing content field is treated as an empty string.
func (n *Normalizer) Normalize(raw RawArticle) ClassifiedArticle {
	text := strings.TrimSpace(raw.Title + " " + raw.Content)
	cls := n.classifier.Classify(text)

	return ClassifiedArticle{
		ID:              n.ids.Derive(raw.URL, raw.Title, raw.Source),
		Title:           raw.Title,
		Content:         raw.Content,
		Source:          raw.Source,
		URL:             raw.URL,
		PublishDate:     ParsePublishDate(raw.PublishDate),
		RelevanceScore:  cls.RelevanceScore,
		Region:          cls.Region,
		Countries:       cls.Countries,
		EventType:       cls.EventType,
		MarketSentiment: cls.Sentiment,
		AffectedSectors: []string{},
	}
}

// EnrichSectors fills in the affected sectors for an already normalized
// article. Kept separate from Normalize so the two steps stay independently
// callable.
func (n *Normalizer) EnrichSectors(article *ClassifiedArticle) {
	text := strings.TrimSpace(article.Title + " " + article.Content)
	sectors := n.classifier.AffectedSectors(text)
	if sectors == nil {
		sectors = []string{}
	}
	article.AffectedSectors = sectors
}

// FilterGeopolitical keeps only articles whose title or content contains a
// core geo keyword. Applied before classification to drop off-topic fetches.
func FilterGeopolitical(tax *Taxonomy, articles []RawArticle) []RawArticle {
	var filtered []RawArticle
	for _, article := range articles {
		if tax.MatchesGeoKeyword(article.Title + " " + article.Content) {
			filtered = append(filtered, article)
		}
	}
	return filtered
}
