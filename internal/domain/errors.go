package domain

import (
	"errors"
	"fmt"
)

// Ledger errors shared between the core and the persistence layer.
var (
	ErrInsufficientFunds = errors.New("ledger: insufficient funds")
)

// ValidationError reports a field outside its allowed range.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s %s", e.Field, e.Reason)
}

// AuthorizationError reports a caller that is not the identity an
// operation requires.
type AuthorizationError struct {
	Caller   string
	Required string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("authorization: caller %q is not the %s", e.Caller, e.Required)
}

// StateError reports an operation invoked while the task is not in the
// required status, or an escrow/record precondition that does not hold.
type StateError struct {
	Op     string
	Status TaskStatus
	Reason string
}

func (e *StateError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("state: %s not allowed while task is %s: %s", e.Op, e.Status, e.Reason)
	}
	return fmt.Sprintf("state: %s not allowed: %s", e.Op, e.Reason)
}

// InsufficientReputationError reports a bidder that fails the
// stake-ratio-or-track-record gate.
type InsufficientReputationError struct {
	Bidder         string
	RequiredEarned int64
}

func (e *InsufficientReputationError) Error() string {
	return fmt.Sprintf("reputation: bidder %q needs at least one completed task or %d micro-units earned", e.Bidder, e.RequiredEarned)
}

// ArithmeticError reports an overflow in a counter, total, or rate
// computation. It aborts the whole enclosing operation.
type ArithmeticError struct {
	Op  string
	Err error
}

func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("arithmetic: %s: %v", e.Op, e.Err)
}

func (e *ArithmeticError) Unwrap() error { return e.Err }
