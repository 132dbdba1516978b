package models

import "errors"

// ErrInvalidInput marks malformed or out-of-range caller input. It is the
// only error class surfaced to API callers; upstream failures are absorbed
// by fallback synthesis and remove operations on absent keys are no-ops.
var ErrInvalidInput = errors.New("invalid input")
