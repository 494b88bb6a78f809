// Package errors provides standardized error handling patterns for slice-queue.
//
// # Overview
//
// The errors package implements a three-class error classification system
// matching the library's two-tier failure model: Shortfall (recoverable
// partial outcome, retry after draining), Contract (caller misuse, used as
// panic payloads for faults) and Internal (unexpected failure).
//
// Queue operations themselves report shortfalls through value-level
// discrimination (counts and flags), not through errors. The sentinel
// errors here exist for the surrounding machinery: retry loops built on
// the rejected remainder of a push, fill callbacks of PushInPlace, metric
// registration, and fault panics.
//
// # Error Classification
//
//   - Shortfall: fewer elements available or acceptable than requested
//     (ErrEmpty, ErrLimitReached, ErrReserveClipped) - retry reasonable
//   - Contract: caller misuse (ErrZeroLimit, ErrRangeOutOfBounds,
//     ErrFillOverclaim, ...) - never retry, never tolerate silently
//   - Internal: everything else
//
// The classification system integrates with Go's standard error handling,
// supporting errors.Is(), errors.As() and error wrapping chains.
//
// # Faults
//
// Contract violations terminate the offending operation with a panic whose
// payload is a *ClassifiedError of ClassContract. Recovering callers (and
// tests) can discriminate fault panics from unrelated ones:
//
//	defer func() {
//	    if r := recover(); r != nil {
//	        if err, ok := r.(error); ok && errors.IsContract(err) {
//	            // caller bug surfaced by the queue
//	        }
//	    }
//	}()
//
// # Retry Integration
//
// RetryConfig bridges classification into the retry package:
//
//	cfg := errors.DefaultRetryConfig()
//	err := retry.Do(ctx, cfg.ToRetryConfig(), pushRemainder)
package errors
