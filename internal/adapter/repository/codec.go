package repository

import "strings"

// Countries and affected sectors are stored as comma-joined strings. The
// empty set serializes to the empty string and must deserialize back to an
// empty set, not a single empty element.

func joinSet(values []string) string {
	return strings.Join(values, ",")
}

func splitSet(raw string) []string {
	if raw == "" {
		return []string{}
	}
	return strings.Split(raw, ",")
}
