// Package domain defines the error model shared by tokrand packages.
package domain

import (
	"errors"
	"fmt"
)

// DomainError is an error with a stable, machine-readable code.
type DomainError struct {
	Code    string // Error code (e.g., "TR-TOKN-4000")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Details != "" {
		msg += ": " + e.Details
	}
	if e.Cause != nil {
		msg += " (" + e.Cause.Error() + ")"
	}
	return msg
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a DomainError with the same code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	cp := *e
	cp.Details = details
	return &cp
}

// WithDetailsf is WithDetails with fmt.Sprintf formatting.
func (e *DomainError) WithDetailsf(format string, args ...any) *DomainError {
	return e.WithDetails(fmt.Sprintf(format, args...))
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	cp := *e
	cp.Cause = cause
	return &cp
}

// IsDomainError checks if an error is a DomainError with the given code.
// If code is empty, it only checks if the error is a DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return code == "" || de.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// ============================================================================
// Entropy Errors (ENTR)
// ============================================================================

var (
	// ErrUnknownProvider indicates a provider name that is not registered.
	ErrUnknownProvider = NewDomainError("TR-ENTR-4000", "unknown entropy provider")

	// ErrProviderUnavailable indicates the provider cannot run on this host.
	ErrProviderUnavailable = NewDomainError("TR-ENTR-5030", "entropy provider unavailable")

	// ErrWeakEntropy indicates the provider produced bytes it flagged as weak.
	ErrWeakEntropy = NewDomainError("TR-ENTR-5031", "entropy provider reported weak result")

	// ErrShortRead indicates the provider returned fewer bytes than requested.
	ErrShortRead = NewDomainError("TR-ENTR-5032", "short entropy read")

	// ErrNoStrongSource indicates no strong provider succeeded.
	ErrNoStrongSource = NewDomainError("TR-ENTR-5033", "no strong entropy source available")
)

// ============================================================================
// Token Errors (TOKN)
// ============================================================================

var (
	// ErrUnsupportedAlgorithm indicates the hash algorithm name is not registered.
	ErrUnsupportedAlgorithm = NewDomainError("TR-TOKN-4000", "unsupported hash algorithm")

	// ErrUnsupportedEncoding indicates the digest encoding is not known.
	ErrUnsupportedEncoding = NewDomainError("TR-TOKN-4001", "unsupported token encoding")
)

// ============================================================================
// Configuration Errors (CONF)
// ============================================================================

var (
	// ErrInvalidConfig indicates a configuration value failed validation.
	ErrInvalidConfig = NewDomainError("TR-CONF-4000", "invalid configuration")
)
