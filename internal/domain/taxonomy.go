package domain

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed taxonomy.yaml
var taxonomyYAML []byte

// RegionEntry maps a canonical region name to the country and alias strings
// that identify it in free text. Aliases are matched as whole words,
// case-insensitively.
type RegionEntry struct {
	Name    string   `yaml:"name"`
	Aliases []string `yaml:"aliases"`

	patterns []*regexp.Regexp
}

// EventTypeEntry is one entry of the ordered event-type priority list.
type EventTypeEntry struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// SectorEntry maps a stock market sector to its trigger keywords and the
// ticker symbols traded under it. Sector matching is multi-label.
type SectorEntry struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
	Tickers  []string `yaml:"tickers"`
}

type sentimentLists struct {
	Negative []string `yaml:"negative"`
	Positive []string `yaml:"positive"`
}

// Taxonomy holds all keyword tables used by classification and impact
// analysis. It is loaded once at startup and never mutated afterwards, so a
// single instance is safe to share across concurrent classification calls.
type Taxonomy struct {
	GeoKeywords          []string       `yaml:"geo_keywords"`
	Regions              []RegionEntry  `yaml:"regions"`
	EventTypes           []EventTypeEntry `yaml:"event_types"`
	Sentiment            sentimentLists `yaml:"sentiment"`
	Sectors              []SectorEntry  `yaml:"sectors"`
	GeopoliticalKeywords []string       `yaml:"geopolitical_keywords"`
}

// LoadTaxonomy parses the embedded taxonomy tables and precompiles the
// alias patterns. Entry order in the file is preserved.
func LoadTaxonomy() (*Taxonomy, error) {
	var tax Taxonomy
	if err := yaml.Unmarshal(taxonomyYAML, &tax); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy: %w", err)
	}

	if len(tax.EventTypes) == 0 {
		return nil, fmt.Errorf("taxonomy has no event types")
	}
	if len(tax.Regions) == 0 {
		return nil, fmt.Errorf("taxonomy has no regions")
	}

	for i := range tax.Regions {
		region := &tax.Regions[i]
		region.patterns = make([]*regexp.Regexp, 0, len(region.Aliases))
		for _, alias := range region.Aliases {
			pattern, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(alias) + `\b`)
			if err != nil {
				return nil, fmt.Errorf("failed to compile alias %q: %w", alias, err)
			}
			region.patterns = append(region.patterns, pattern)
		}
	}

	return &tax, nil
}

// MustLoadTaxonomy is LoadTaxonomy for wiring paths where a broken embedded
// table is unrecoverable.
func MustLoadTaxonomy() *Taxonomy {
	tax, err := LoadTaxonomy()
	if err != nil {
		panic(err)
	}
	return tax
}

// SectorTickers returns the ticker symbols for a sector, or nil when the
// sector is unknown.
func (t *Taxonomy) SectorTickers(sector string) []string {
	name := strings.ToLower(strings.TrimSpace(sector))
	for _, s := range t.Sectors {
		if s.Name == name {
			return s.Tickers
		}
	}
	return nil
}

// SectorNames lists all known sector names in table order.
func (t *Taxonomy) SectorNames() []string {
	names := make([]string, 0, len(t.Sectors))
	for _, s := range t.Sectors {
		names = append(names, s.Name)
	}
	return names
}

// MatchesGeoKeyword reports whether the text contains any of the core geo
// keywords. Used to pre-filter fetched articles before classification.
func (t *Taxonomy) MatchesGeoKeyword(text string) bool {
	lowered := strings.ToLower(text)
	for _, keyword := range t.GeoKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

// IsGeopolitical reports whether free text describes a geopolitical event,
// using the broad keyword list. Used by impact analysis.
func (t *Taxonomy) IsGeopolitical(text string) bool {
	lowered := strings.ToLower(text)
	for _, keyword := range t.GeopoliticalKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}
