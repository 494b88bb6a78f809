// Package errors provides standardized error handling patterns for slice-queue
// components. It includes error classification, standard error variables, and
// helper functions for consistent error wrapping across the library.
package errors

import (
	"errors"
	"fmt"
	"time"

	"github.com/KizzyCode/slice-queue/retry"
)

// ErrorClass represents the classification of errors for handling purposes
type ErrorClass int

const (
	// ClassShortfall represents recoverable partial outcomes: fewer elements
	// were available or acceptable than requested. Retry after draining or
	// freeing limit headroom is reasonable.
	ClassShortfall ErrorClass = iota
	// ClassContract represents caller misuse of the API. Contract errors are
	// used as panic payloads for faults and must never be silently tolerated.
	ClassContract
	// ClassInternal represents unexpected internal failures
	ClassInternal
)

// String returns the string representation of ErrorClass
func (ec ErrorClass) String() string {
	switch ec {
	case ClassShortfall:
		return "shortfall"
	case ClassContract:
		return "contract"
	case ClassInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Standard error variables for common conditions
var (
	// Shortfall conditions
	ErrEmpty          = errors.New("queue is empty")
	ErrLimitReached   = errors.New("length limit reached")
	ErrReserveClipped = errors.New("reservation clipped by limit")

	// Contract violations
	ErrZeroLimit        = errors.New("limit must be positive")
	ErrNegativeCount    = errors.New("count must not be negative")
	ErrRangeOutOfBounds = errors.New("range outside live elements")
	ErrRangeInverted    = errors.New("range start exceeds end")
	ErrFillOverclaim    = errors.New("fill callback claimed more slots than reserved")
	ErrReserveOverLimit = errors.New("in-place reservation exceeds limit")

	// Registration errors
	ErrDuplicateMetric = errors.New("metric already registered")
)

// ClassifiedError wraps an error with its classification
type ClassifiedError struct {
	Class     ErrorClass
	Err       error
	Message   string
	Component string
	Operation string
}

// Error implements the error interface
func (ce *ClassifiedError) Error() string {
	if ce.Message != "" {
		return ce.Message
	}
	return ce.Err.Error()
}

// Unwrap returns the underlying error
func (ce *ClassifiedError) Unwrap() error {
	return ce.Err
}

// IsShortfall checks if an error reports a recoverable partial outcome
func IsShortfall(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ClassShortfall
	}

	return errors.Is(err, ErrEmpty) ||
		errors.Is(err, ErrLimitReached) ||
		errors.Is(err, ErrReserveClipped)
}

// IsContract checks if an error represents caller misuse
func IsContract(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ClassContract
	}

	return errors.Is(err, ErrZeroLimit) ||
		errors.Is(err, ErrNegativeCount) ||
		errors.Is(err, ErrRangeOutOfBounds) ||
		errors.Is(err, ErrRangeInverted) ||
		errors.Is(err, ErrFillOverclaim) ||
		errors.Is(err, ErrReserveOverLimit)
}

// Classify returns the error class for an error
func Classify(err error) ErrorClass {
	if err == nil {
		return ClassShortfall // Default for nil
	}

	if IsContract(err) {
		return ClassContract
	}
	if IsShortfall(err) {
		return ClassShortfall
	}

	return ClassInternal
}

// newClassified creates a new classified error.
// This is an internal helper - use WrapShortfall(), WrapContract(), or
// WrapInternal() instead.
func newClassified(class ErrorClass, err error, component, operation, message string) *ClassifiedError {
	return &ClassifiedError{
		Class:     class,
		Err:       err,
		Message:   message,
		Component: component,
		Operation: operation,
	}
}

// Wrap creates a standardized error with context following the pattern:
// "component.method: action failed: %w"
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}

// WrapShortfall wraps an error as a recoverable shortfall with context
func WrapShortfall(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ClassShortfall, wrappedErr, component, method, wrappedErr.Error())
}

// WrapContract wraps an error as a contract violation with context
func WrapContract(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ClassContract, wrappedErr, component, method, wrappedErr.Error())
}

// WrapInternal wraps an error as an internal failure with context
func WrapInternal(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrappedErr := Wrap(err, component, method, action)
	return newClassified(ClassInternal, wrappedErr, component, method, wrappedErr.Error())
}

// RetryConfig defines configuration for retrying shortfall outcomes
type RetryConfig struct {
	MaxRetries    int
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
}

// DefaultRetryConfig returns a sensible default retry configuration
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    3,
		InitialDelay:  100 * time.Millisecond,
		MaxDelay:      5 * time.Second,
		BackoffFactor: 2.0,
	}
}

// ShouldRetry determines if an error should be retried based on config.
// Only shortfalls are retryable: contract violations and internal errors
// never resolve by waiting.
func (rc RetryConfig) ShouldRetry(err error, attempt int) bool {
	if err == nil || attempt >= rc.MaxRetries {
		return false
	}
	return IsShortfall(err)
}

// ToRetryConfig converts the errors package RetryConfig to the retry
// package's Config type so classification-aware callers can drive
// retry.Do with a consistent policy.
//
// The conversion adds 1 to MaxRetries (converting "additional attempts" to
// "total attempts") and enables jitter by default.
func (rc RetryConfig) ToRetryConfig() retry.Config {
	return retry.Config{
		MaxAttempts:  rc.MaxRetries + 1,
		InitialDelay: rc.InitialDelay,
		MaxDelay:     rc.MaxDelay,
		Multiplier:   rc.BackoffFactor,
		AddJitter:    true,
	}
}

// BackoffDelay calculates the delay for a retry attempt
func (rc RetryConfig) BackoffDelay(attempt int) time.Duration {
	if attempt <= 0 {
		return rc.InitialDelay
	}

	delay := rc.InitialDelay
	for i := 0; i < attempt; i++ {
		delay = time.Duration(float64(delay) * rc.BackoffFactor)
		if delay > rc.MaxDelay {
			delay = rc.MaxDelay
			break
		}
	}

	return delay
}
