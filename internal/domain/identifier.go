package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// IdentifierPolicy derives the stable identifier under which an article is
// stored. Two articles with the same identifier are treated as the same
// article by the persistence layer.
type IdentifierPolicy interface {
	Derive(url, title, source string) string
}

type contentHashPolicy struct{}

// NewIdentifierPolicy returns the content-hash identifier policy: a SHA-256
// over url, title and source. Hashing all three avoids the collision between
// URL-less articles whose titles share a common prefix.
func NewIdentifierPolicy() IdentifierPolicy {
	return contentHashPolicy{}
}

func (contentHashPolicy) Derive(url, title, source string) string {
	sum := sha256.Sum256([]byte(url + "|" + title + "|" + source))
	return hex.EncodeToString(sum[:])
}
