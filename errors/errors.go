// Package errors provides error handling for parkour.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints for CLI output
//
// Usage:
//
//	// Wrap a domain sentinel so callers can match it with errors.Is
//	return errors.Wrapf(errors.ErrMalformedLocation, "expected 4 tokens in %q", s)
//
//	// Add hints for users
//	return errors.WithHint(err, "positions are written as (x,y,z,world)")
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint      = crdb.WithHint
	WithHintf     = crdb.WithHintf
	WithDetail    = crdb.WithDetail
	WithDetailf   = crdb.WithDetailf
	GetAllHints   = crdb.GetAllHints
	FlattenHints  = crdb.FlattenHints
	GetAllDetails = crdb.GetAllDetails
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// GetStack returns the reportable stack trace attached to err, if any.
var GetStack = crdb.GetReportableStackTrace

// Sentinel errors. Call sites wrap these with Wrap/Wrapf so that
// errors.Is keeps working while the message carries the offending input.
var (
	// ErrInvalidRegion indicates two region corners reference different worlds
	ErrInvalidRegion = New("invalid region")

	// ErrInvalidPosition indicates a coordinate is NaN or infinite
	ErrInvalidPosition = New("invalid position")

	// ErrMalformedLocation indicates location text could not be decoded
	ErrMalformedLocation = New("malformed location")

	// ErrMalformedToken indicates a rank placeholder with a non-numeric suffix
	ErrMalformedToken = New("malformed token")

	// ErrNotFound indicates the requested record does not exist
	ErrNotFound = New("not found")

	// ErrInvalidRequest indicates a malformed caller request (CLI args, config)
	ErrInvalidRequest = New("invalid request")
)

// IsInvalidRegion checks if an error is or wraps ErrInvalidRegion
func IsInvalidRegion(err error) bool {
	return err != nil && Is(err, ErrInvalidRegion)
}

// IsInvalidPosition checks if an error is or wraps ErrInvalidPosition
func IsInvalidPosition(err error) bool {
	return err != nil && Is(err, ErrInvalidPosition)
}

// IsMalformedLocation checks if an error is or wraps ErrMalformedLocation
func IsMalformedLocation(err error) bool {
	return err != nil && Is(err, ErrMalformedLocation)
}

// IsMalformedToken checks if an error is or wraps ErrMalformedToken
func IsMalformedToken(err error) bool {
	return err != nil && Is(err, ErrMalformedToken)
}

// IsNotFoundError checks if an error is or wraps ErrNotFound
func IsNotFoundError(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// NewNotFoundError creates a not-found error with a formatted message
func NewNotFoundError(format string, args ...interface{}) error {
	return Wrapf(ErrNotFound, format, args...)
}

// NewInvalidRequestError creates an invalid-request error with a formatted message
func NewInvalidRequestError(format string, args ...interface{}) error {
	return Wrapf(ErrInvalidRequest, format, args...)
}
