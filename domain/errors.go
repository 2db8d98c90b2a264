// ABOUTME: Domain-level sentinel errors for the analysis pipeline
// ABOUTME: These errors are used with errors.Is() for error type checking
package domain

import "errors"

// Inference provider errors
var (
	// ErrAuthFailed indicates the provider rejected our credentials.
	// Fatal: the whole run aborts, no retry can succeed.
	ErrAuthFailed = errors.New("provider authentication failed")

	// ErrProviderRateLimited indicates the provider signalled throttling (429),
	// distinct from our own rate governor. Retryable.
	ErrProviderRateLimited = errors.New("provider rate limited")

	// ErrProviderUnavailable indicates a provider-side failure (5xx). Retryable.
	ErrProviderUnavailable = errors.New("provider unavailable")
)

// Validation errors
var (
	// ErrMalformedResponse indicates the provider output failed schema
	// validation (wrong count, missing field, invalid enum value). Retryable:
	// the model may produce valid output on resubmission.
	ErrMalformedResponse = errors.New("malformed analysis response")
)

// Template errors
var (
	// ErrMissingPlaceholder indicates the prompt template has no entry
	// substitution point.
	ErrMissingPlaceholder = errors.New("prompt template missing {entries} placeholder")
)
