package clinic

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTransition     = errors.New("invalid status transition")
	ErrInvalidQuantity       = errors.New("number of sessions must be at least 1")
	ErrInvalidPercent        = errors.New("discount percent must be between 0 and 100")
	ErrPlanExhausted         = errors.New("plan has no remaining sessions")
	ErrOrdinalMismatch       = errors.New("session number does not match the next expected session")
	ErrNonPositiveAmount     = errors.New("payment amount must be greater than zero")
	ErrOverpaymentNotAllowed = errors.New("full payment must match the outstanding balance")
	ErrAlreadyRefunded       = errors.New("payment already refunded")
	ErrInvalidModality       = errors.New("invalid payment modality")

	ErrPaymentNotApplied  = errors.New("payment is not applied")
	ErrInvalidPaymentType = errors.New("payment type not allowed for this target")
	ErrPlanMismatch       = errors.New("entity does not belong to this plan")
	ErrInvalidPainScale   = errors.New("pain scale must be between 0 and 10")
)

// TransitionError describes a rejected status change. It unwraps to
// ErrInvalidTransition.
type TransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: cannot transition from %s to %s", e.Entity, e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}
