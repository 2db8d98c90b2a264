// ABOUTME: This file classifies errors for retry decisions
// ABOUTME: Distinguishes between transient and permanent failures of inference calls
package service

import (
	"context"
	"errors"
	"net"
	"syscall"

	"rss-analyzer/domain"
)

// IsRetryableFailure determines if a failed inference attempt should trigger
// a retry. Auth failures and cancellation are permanent; malformed output,
// provider throttling, provider 5xx, timeouts and transport errors are
// transient.
func IsRetryableFailure(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, domain.ErrAuthFailed) {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}

	if errors.Is(err, domain.ErrMalformedResponse) ||
		errors.Is(err, domain.ErrProviderRateLimited) ||
		errors.Is(err, domain.ErrProviderUnavailable) {
		return true
	}

	// Per-call timeout surfaces as a deadline error.
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	// http.Client wraps the errno in an *os.SyscallError inside the
	// *net.OpError, so unwrap with errors.Is rather than asserting the type.
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		if errors.Is(opErr.Err, syscall.ECONNREFUSED) ||
			errors.Is(opErr.Err, syscall.ECONNRESET) ||
			errors.Is(opErr.Err, syscall.ETIMEDOUT) {
			return true
		}
		if opErr.Timeout() {
			return true
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}

	return false
}
