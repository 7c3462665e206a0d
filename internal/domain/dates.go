package domain

import (
	"strings"
	"time"
)

// publishDateLayouts are tried in order: RFC 3339 (covers the trailing 'Z'
// form news APIs emit) and the same timestamp with a compact numeric offset.
var publishDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05-0700",
}

// ParsePublishDate parses a loosely formatted publish date. A nil result
// means the date was missing or unparseable; callers store it as NULL.
func ParsePublishDate(raw string) *time.Time {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	for _, layout := range publishDateLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return &parsed
		}
	}
	return nil
}
