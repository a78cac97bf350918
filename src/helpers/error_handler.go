package helpers

import (
	"context"
	"errors"
	"fmt"

	"market-indexes/src/logger"
)

// -----------------------------------------------------------------------------
// Custom Error Types
// -----------------------------------------------------------------------------

type IndexesError struct {
	Message string
	Cause   error
}

func (e *IndexesError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *IndexesError) Unwrap() error {
	return e.Cause
}

// Distinct error kinds, matched with errors.As
type InvalidRequestError struct{ IndexesError }
type NotFoundError struct{ IndexesError }
type UpstreamUnavailableError struct{ IndexesError }
type SchemaMismatchError struct{ IndexesError }

// ErrMethodNotAllowed is the cause of an InvalidRequestError raised for a non-GET verb
var ErrMethodNotAllowed = errors.New("method not allowed")

// -----------------------------------------------------------------------------

func NewInvalidRequest(message string, cause error) error {
	return &InvalidRequestError{IndexesError{Message: message, Cause: cause}}
}

func NewNotFound(message string, cause error) error {
	return &NotFoundError{IndexesError{Message: message, Cause: cause}}
}

func NewUpstreamUnavailable(message string, cause error) error {
	return &UpstreamUnavailableError{IndexesError{Message: message, Cause: cause}}
}

func NewSchemaMismatch(message string, cause error) error {
	return &SchemaMismatchError{IndexesError{Message: message, Cause: cause}}
}

// -----------------------------------------------------------------------------
// Classification
// -----------------------------------------------------------------------------

type ErrorKind string

const (
	KindNone                ErrorKind = ""
	KindInvalidRequest      ErrorKind = "InvalidRequest"
	KindMethodNotAllowed    ErrorKind = "MethodNotAllowed"
	KindNotFound            ErrorKind = "NotFound"
	KindUpstreamUnavailable ErrorKind = "UpstreamUnavailable"
	KindSchemaMismatch      ErrorKind = "SchemaMismatch"
	KindCanceled            ErrorKind = "Canceled"
	KindDeadlineExceeded    ErrorKind = "DeadlineExceeded"
	KindInternal            ErrorKind = "Internal"
)

// KindOf maps an error returned by the core to its kind. A typed error keeps
// its kind even when its cause is a context error; the context kinds only
// apply to errors that carry no kind of their own.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}

	var (
		invalid     *InvalidRequestError
		notFound    *NotFoundError
		unavailable *UpstreamUnavailableError
		mismatch    *SchemaMismatchError
	)
	switch {
	case errors.As(err, &invalid):
		if errors.Is(err, ErrMethodNotAllowed) {
			return KindMethodNotAllowed
		}
		return KindInvalidRequest
	case errors.As(err, &notFound):
		return KindNotFound
	case errors.As(err, &unavailable):
		return KindUpstreamUnavailable
	case errors.As(err, &mismatch):
		return KindSchemaMismatch
	case errors.Is(err, context.Canceled):
		return KindCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return KindDeadlineExceeded
	}
	return KindInternal
}

// IsCancellation reports whether err stems from the caller's context
func IsCancellation(err error) bool {
	kind := KindOf(err)
	return kind == KindCanceled || kind == KindDeadlineExceeded
}

// -----------------------------------------------------------------------------
// Error Handler
// -----------------------------------------------------------------------------

type ErrorHandler struct {
	Logger *logger.Logger
}

func NewErrorHandler(l *logger.Logger) *ErrorHandler {
	return &ErrorHandler{Logger: l}
}

// -----------------------------------------------------------------------------

// Handle logs err at a level matching its kind: caller mistakes and
// cancellations are routine, upstream trouble is not.
func (e *ErrorHandler) Handle(err error, context string) ErrorKind {
	kind := KindOf(err)
	switch kind {
	case KindNone:
	case KindInvalidRequest, KindMethodNotAllowed, KindCanceled:
		e.Logger.Debug("%s: %v", context, err)
	case KindNotFound:
		e.Logger.Info("%s: %v", context, err)
	case KindUpstreamUnavailable, KindSchemaMismatch, KindDeadlineExceeded:
		e.Logger.Warning("%s: %v", context, err)
	default:
		e.Logger.Error("Error in %s: %v", context, err)
	}
	return kind
}
