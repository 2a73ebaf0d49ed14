package parsort

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is returned when a Config carries a chunk size or
	// thread count below 1. It is detected before any element is touched.
	ErrInvalidConfig = errors.New("parsort: chunk size and thread count must be at least 1")

	// ErrPoolShutdown is returned by Submit after Close. Submitting to a
	// closed pool is a lifecycle bug in the caller.
	ErrPoolShutdown = errors.New("parsort: pool is shut down")
)

// SortError wraps the failure that halted a sort pipeline, typically a
// panicking comparator. When Sort returns a SortError the contents of
// the input slice are unspecified: neither the original order nor a
// sorted one may be assumed.
type SortError struct {
	Cause error
}

func (e *SortError) Error() string {
	return fmt.Sprintf("parsort: sort failed: %v", e.Cause)
}

func (e *SortError) Unwrap() error { return e.Cause }
