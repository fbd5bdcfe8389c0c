package align

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (possibly wrapped) by Aligner operations.
// Match with errors.Is.
var (
	// ErrConfig reports invalid scoring or capacity parameters at construction.
	ErrConfig = errors.New("invalid aligner configuration")

	// ErrQueryTooLong reports a query exceeding the configured maximum length.
	ErrQueryTooLong = errors.New("query exceeds configured maximum length")

	// ErrTargetTooLong reports a target exceeding the configured maximum length.
	ErrTargetTooLong = errors.New("target exceeds configured maximum length")

	// ErrAlphabet reports a disallowed symbol in an input sequence.
	ErrAlphabet = errors.New("disallowed symbol in sequence")

	// ErrShapeMismatch reports AlignBatch inputs of differing lengths.
	ErrShapeMismatch = errors.New("query and target counts differ")
)

// PairError attributes a failure to a specific input pair of a batch call.
type PairError struct {
	Index int
	Err   error
}

func (e *PairError) Error() string { return fmt.Sprintf("pair %d: %v", e.Index, e.Err) }

func (e *PairError) Unwrap() error { return e.Err }
