package shared

import "fmt"

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// ValidationError reports an invalid field on a domain input.

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Voyage configuration errors surface before a voyage starts.

type ConfigurationError struct {
	*DomainError
	Field string
}

func NewConfigurationError(field, message string) *ConfigurationError {
	return &ConfigurationError{
		DomainError: &DomainError{Message: fmt.Sprintf("%s: %s", field, message)},
		Field:       field,
	}
}

// InsufficientFundsError is returned when a purchase or repair branch cannot
// be afforded. It is never fatal; callers record a deferral and continue.

type InsufficientFundsError struct {
	*DomainError
	Required  int
	Available int
}

func NewInsufficientFundsError(required, available int) *InsufficientFundsError {
	return &InsufficientFundsError{
		DomainError: &DomainError{Message: fmt.Sprintf("insufficient funds: need %d gp, have %d gp", required, available)},
		Required:    required,
		Available:   available,
	}
}

// NotFoundError reports a missing registry or store entry.

type NotFoundError struct {
	*DomainError
	Kind string
	ID   string
}

func NewNotFoundError(kind, id string) *NotFoundError {
	return &NotFoundError{
		DomainError: &DomainError{Message: fmt.Sprintf("%s not found: %s", kind, id)},
		Kind:        kind,
		ID:          id,
	}
}
