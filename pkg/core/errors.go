package core

import "fmt"

// ResolutionError means no default account or key could be resolved from any
// of the three sources (explicit argument, context, client operator).
type ResolutionError struct {
	What string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("could not resolve %s: no explicit value, no context default, and no client operator identity", e.What)
}

// NewResolutionError reports a failed default resolution for the named item.
func NewResolutionError(what string) *ResolutionError {
	return &ResolutionError{What: what}
}

// BusinessRuleError means a structurally valid input violates an
// operation-specific invariant (non-positive transfer amount, empty serial
// list, waitForExpiry without expirationTime, ...). It is raised during
// normalisation, before any network call.
type BusinessRuleError struct {
	Message string
}

func (e *BusinessRuleError) Error() string { return e.Message }

// NewBusinessRuleError builds a BusinessRuleError with a formatted message
// naming the offending value.
func NewBusinessRuleError(format string, args ...any) *BusinessRuleError {
	return &BusinessRuleError{Message: fmt.Sprintf(format, args...)}
}
