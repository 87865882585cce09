package calculator

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAmount  = errors.New("amount must be a positive finite number")
	ErrMissingPayer   = errors.New("payer is required")
	ErrNoParticipants = errors.New("expense must involve at least one participant")
	ErrUnbalanced     = errors.New("balances do not sum to zero")
)

// InputError reports a malformed expense record.
// It is deterministic: retrying the same input fails the same way.
type InputError struct {
	ExpenseID string
	Err       error
}

func (e *InputError) Error() string {
	if e.ExpenseID == "" {
		return fmt.Sprintf("invalid expense: %v", e.Err)
	}
	return fmt.Sprintf("invalid expense %s: %v", e.ExpenseID, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// ConsistencyError reports balances that do not net to zero, which means the
// caller computed them incorrectly. The settlement of such balances is undefined.
type ConsistencyError struct {
	Sum float64
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("%v: sum is %.4f (tolerance %.2f)", ErrUnbalanced, e.Sum, Epsilon)
}

func (e *ConsistencyError) Unwrap() error {
	return ErrUnbalanced
}
