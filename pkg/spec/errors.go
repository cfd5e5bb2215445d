package spec

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidInput marks malformed or out-of-domain arguments
	// (timestamp before genesis, inverted date range, unsorted samples).
	ErrInvalidInput = errors.New("invalid input")

	// ErrInconsistentData marks input records that violate the upstream
	// schema (negative wei amounts), signaling corrupted data.
	ErrInconsistentData = errors.New("inconsistent data")
)
