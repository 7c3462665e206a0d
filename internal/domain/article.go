package domain

import "time"

// Market sentiment labels assigned by the classifier.
const (
	SentimentNegative = "negative"
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
)

// EventTypeOther is assigned when no event-type keywords match.
const EventTypeOther = "other"

// RawArticle is an article as delivered by the news-fetch collaborator.
// PublishDate stays a string here; it is only parsed during normalization.
type RawArticle struct {
	Title       string `json:"title" validate:"required"`
	Content     string `json:"content"`
	Source      string `json:"source"`
	PublishDate string `json:"publish_date" validate:"required"`
	URL         string `json:"url" validate:"required,url"`
}

// ClassifiedArticle is the canonical record produced by normalization.
// It is immutable after creation except for the Processed flag in storage.
type ClassifiedArticle struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Content         string     `json:"content"`
	Source          string     `json:"source"`
	URL             string     `json:"url"`
	PublishDate     *time.Time `json:"publish_date"`
	RelevanceScore  float64    `json:"relevance_score"`
	Region          string     `json:"region,omitempty"`
	Countries       []string   `json:"countries"`
	EventType       string     `json:"event_type"`
	MarketSentiment string     `json:"market_sentiment"`
	AffectedSectors []string   `json:"affected_sectors"`
	Processed       bool       `json:"processed"`
}
