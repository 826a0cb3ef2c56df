package services

import (
	"errors"
	"fmt"
)

// ErrFoodNotFound reports a query the food database returned no candidates
// for. It degrades a single ingredient, never the whole batch.
var ErrFoodNotFound = errors.New("no matching food found")

// ValidationError reports bad caller input (mismatched lists, negative
// amounts). It is raised before any network call is made.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// UpstreamError wraps a failed call to an external service: network errors,
// timeouts, auth and rate-limit rejections all land here.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("food database %s failed: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
