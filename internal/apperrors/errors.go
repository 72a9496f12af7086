package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrMalformedRecord indicates that a persisted record could not be decoded.
// It is fatal for the whole file being loaded: the store does not skip bad lines.
var ErrMalformedRecord = errors.New("malformed record")
