// Package retry provides exponential backoff retry logic for recoverable
// shortfall outcomes.
//
// # Overview
//
// Queue operations in this library never block: a push clipped by the
// length limit reports how much was accepted and returns the rejected
// remainder to the caller. The retry package turns that value-level
// discrimination into a backoff loop when the caller prefers "wait and
// try again" over dropping data.
//
// # Quick Start
//
//	cfg := retry.Quick()
//	pending := records
//	err := retry.Do(ctx, cfg, func() error {
//	    pending = q.PushN(pending)
//	    if len(pending) > 0 {
//	        return errors.ErrLimitReached
//	    }
//	    return nil
//	})
//
// Errors wrapped with NonRetryable abort the loop immediately; everything
// else is retried up to Config.MaxAttempts with exponential backoff and
// optional jitter. Cancellation is honored through the context both
// between attempts and during backoff sleeps.
package retry
