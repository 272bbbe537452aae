package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of application error.
type ErrorCode string

const (
	// ErrCodeAuthentication indicates rejected login credentials.
	ErrCodeAuthentication ErrorCode = "authentication"
	// ErrCodeSessionResolution indicates a persisted credential could not be
	// resolved into a principal.
	ErrCodeSessionResolution ErrorCode = "session_resolution"
	// ErrCodeSessionExpired indicates the credential expired and the single
	// reissue attempt failed.
	ErrCodeSessionExpired ErrorCode = "session_expired"
	// ErrCodeValidation indicates invalid local input; no network call was made.
	ErrCodeValidation ErrorCode = "validation"
	// ErrCodeDecode indicates a response did not match its documented envelope.
	ErrCodeDecode ErrorCode = "decode"
	// ErrCodeTransport indicates the request never produced a usable response.
	ErrCodeTransport ErrorCode = "transport"
	// ErrCodeOrderCreation indicates step 1 of the purchase commit failed.
	ErrCodeOrderCreation ErrorCode = "order_creation"
	// ErrCodePaymentInitialization indicates step 2 of the purchase commit failed.
	ErrCodePaymentInitialization ErrorCode = "payment_initialization"
	// ErrCodePaymentConfirmation indicates step 3 of the purchase commit failed.
	ErrCodePaymentConfirmation ErrorCode = "payment_confirmation"
	// ErrCodeBidCreation indicates the listing commit failed.
	ErrCodeBidCreation ErrorCode = "bid_creation"
	// ErrCodeInternal indicates an unexpected internal failure.
	ErrCodeInternal ErrorCode = "internal"
)

// AppError is a structured application error with a code, message, and
// optional cause. It supports errors.Is and errors.As through Unwrap.
type AppError struct {
	// Code categorizes the error type
	Code ErrorCode
	// Message is a human-readable error message. For commit errors this is the
	// server-supplied message when one was present, otherwise a generic one.
	Message string
	// Cause is the underlying error (optional)
	Cause error
	// Field is the specific field that failed validation (optional)
	Field string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates an AppError with the given code and message.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Newf creates an AppError with a formatted message.
func Newf(code ErrorCode, format string, args ...any) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Authentication creates a new authentication error.
func Authentication(message string) *AppError {
	return New(ErrCodeAuthentication, message)
}

// Validation creates a new validation error.
func Validation(message string) *AppError {
	return New(ErrCodeValidation, message)
}

// ValidationField creates a validation error for a specific field.
func ValidationField(field, message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message, Field: field}
}

// SessionExpired creates a new session-expired error.
func SessionExpired(message string) *AppError {
	return New(ErrCodeSessionExpired, message)
}

// Wrap wraps an existing error with an AppError, preserving the cause.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, Cause: err}
}

// Wrapf wraps an existing error with an AppError and formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...any) *AppError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// isCode checks if an error has a specific error code.
func isCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsAuthentication checks if an error is an authentication error.
func IsAuthentication(err error) bool {
	return isCode(err, ErrCodeAuthentication)
}

// IsSessionResolution checks if an error is a session-resolution error.
func IsSessionResolution(err error) bool {
	return isCode(err, ErrCodeSessionResolution)
}

// IsSessionExpired checks if an error is a session-expired error.
func IsSessionExpired(err error) bool {
	return isCode(err, ErrCodeSessionExpired)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return isCode(err, ErrCodeValidation)
}

// IsDecode checks if an error is a decode error.
func IsDecode(err error) bool {
	return isCode(err, ErrCodeDecode)
}

// IsTransport checks if an error is a transport error.
func IsTransport(err error) bool {
	return isCode(err, ErrCodeTransport)
}

// IsOrderCreation checks if an error is an order-creation error.
func IsOrderCreation(err error) bool {
	return isCode(err, ErrCodeOrderCreation)
}

// IsPaymentInitialization checks if an error is a payment-initialization error.
func IsPaymentInitialization(err error) bool {
	return isCode(err, ErrCodePaymentInitialization)
}

// IsPaymentConfirmation checks if an error is a payment-confirmation error.
func IsPaymentConfirmation(err error) bool {
	return isCode(err, ErrCodePaymentConfirmation)
}

// IsBidCreation checks if an error is a bid-creation error.
func IsBidCreation(err error) bool {
	return isCode(err, ErrCodeBidCreation)
}

// GetCode returns the ErrorCode from an error, or empty string if not an AppError.
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// GetField returns the Field from an error, or empty string if not set.
func GetField(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Field
	}
	return ""
}

// UserMessage returns the message a view should display for err: the AppError
// message when err carries one, otherwise fallback.
func UserMessage(err error, fallback string) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}
