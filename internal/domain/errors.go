package domain

import (
	"errors"
	"fmt"
)

// ErrStorageUnavailable wraps connection and transaction failures from the
// persistence layer. Callers decide whether to retry.
var ErrStorageUnavailable = errors.New("storage unavailable")

// ValidationError rejects a single raw article before storage. It is
// reported per article and never aborts the rest of a batch.
type ValidationError struct {
	Title  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("article %q rejected: %s", e.Title, e.Reason)
}
