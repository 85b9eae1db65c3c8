package model

import (
	"errors"
	"fmt"
)

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidFilter    = "INVALID_FILTER"
	ErrCodeInvalidProduct   = "INVALID_PRODUCT"
	ErrCodeInvalidID        = "INVALID_ID"
	ErrCodeProductNotFound  = "PRODUCT_NOT_FOUND"
	ErrCodeSellerNotFound   = "SELLER_NOT_FOUND"
	ErrCodeOrderNotFound    = "ORDER_NOT_FOUND"
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrCodeUnauthorised     = "UNAUTHORIZED"
	ErrCodeRateLimited      = "RATE_LIMITED"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrSellerNotFound  = NewDomainError(ErrCodeSellerNotFound, "Seller not found")
	ErrOrderNotFound   = NewDomainError(ErrCodeOrderNotFound, "Order not found")
)

// InvalidFilterError is returned when a filter field carries a malformed value.
type InvalidFilterError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidFilterError) Error() string {
	return fmt.Sprintf("invalid filter: field=%s, value=%q, reason=%s", e.Field, e.Value, e.Reason)
}

// Is allows errors.Is to match any InvalidFilterError.
func (e *InvalidFilterError) Is(target error) bool {
	_, ok := target.(*InvalidFilterError)
	return ok
}

// NewInvalidFilterError creates a new InvalidFilterError.
func NewInvalidFilterError(field, value, reason string) error {
	return &InvalidFilterError{Field: field, Value: value, Reason: reason}
}

// IsInvalidFilterError checks if an error is an InvalidFilterError.
func IsInvalidFilterError(err error) bool {
	var ife *InvalidFilterError
	return errors.As(err, &ife)
}

// ValidationError is returned when an entity violates a catalogue invariant.
type ValidationError struct {
	EntityID string
	Field    string
	Reason   string
	Value    interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid entity %s: field=%s, reason=%s, value=%v", e.EntityID, e.Field, e.Reason, e.Value)
}

// Is allows errors.Is to match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	_, ok := target.(*ValidationError)
	return ok
}

// NewValidationError creates a new ValidationError.
func NewValidationError(entityID, field, reason string, value interface{}) error {
	return &ValidationError{EntityID: entityID, Field: field, Reason: reason, Value: value}
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
