package clinic

import (
	"time"

	"clinica_fisio/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// PaymentRequest is a payment about to be registered.
type PaymentRequest struct {
	Type   entities.PaymentType
	Amount decimal.Decimal
	Method entities.PaymentMethod
}

// PaymentCheck carries advisory figures from a successful validation.
type PaymentCheck struct {
	// SuggestedAmount is what the payment would normally be for its type;
	// zero when there is no default.
	SuggestedAmount decimal.Decimal
	// MatchesSuggestion is false when a suggestion exists and the amount
	// differs from it. It is never an error.
	MatchesSuggestion bool
}

// RefundResult is the outcome of refunding a payment. Plan is nil when the
// payment was not linked to a plan.
type RefundResult struct {
	Payment entities.Payment
	Plan    *entities.TreatmentPlan
}

// OutstandingBalance is the applicable cost minus what was paid, floored at zero.
func OutstandingBalance(plan entities.TreatmentPlan) decimal.Decimal {
	balance := ApplicableCost(plan).Sub(plan.TotalPaid)
	if balance.IsNegative() {
		return decimal.Zero
	}
	return balance
}

// SuggestedPlanPaymentAmount is the default amount offered for a plan payment type.
func SuggestedPlanPaymentAmount(plan entities.TreatmentPlan, t entities.PaymentType) decimal.Decimal {
	switch t {
	case entities.PaymentTypePagoPlanCompleto:
		return OutstandingBalance(plan)
	case entities.PaymentTypePagoSesion:
		return plan.CostPerSession
	}
	return decimal.Zero
}

// ValidatePlanPayment checks a payment against the plan's financial state.
//
// A full payment must settle the outstanding balance exactly. Session payments
// may be partial; the cost per session is only suggested.
func ValidatePlanPayment(plan entities.TreatmentPlan, req PaymentRequest) (PaymentCheck, error) {
	if !req.Amount.IsPositive() {
		return PaymentCheck{}, ErrNonPositiveAmount
	}
	if !req.Type.IsPlanPayment() {
		return PaymentCheck{}, ErrInvalidPaymentType
	}
	if req.Type == entities.PaymentTypePagoPlanCompleto && !req.Amount.Equal(OutstandingBalance(plan)) {
		return PaymentCheck{}, ErrOverpaymentNotAllowed
	}

	suggested := SuggestedPlanPaymentAmount(plan, req.Type)
	return PaymentCheck{
		SuggestedAmount:   suggested,
		MatchesSuggestion: suggested.IsZero() || req.Amount.Equal(suggested),
	}, nil
}

// ValidateAppointmentPayment checks a deposit or consultation payment linked
// to an appointment. Plan payment types are rejected here.
func ValidateAppointmentPayment(a entities.Appointment, req PaymentRequest) error {
	if !req.Amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	switch req.Type {
	case entities.PaymentTypeAdelantoCita, entities.PaymentTypeAdelantoConsulta, entities.PaymentTypePagoConsulta:
	default:
		return ErrInvalidPaymentType
	}
	switch a.Status {
	case entities.AppointmentStatusCancelada, entities.AppointmentStatusNoAsistio, entities.AppointmentStatusReprogramada:
		return &TransitionError{Entity: "appointment payment", From: string(a.Status), To: string(req.Type)}
	}
	return nil
}

// ApplyPayment adds an applied plan payment to the plan's running totals.
// Only plan payment types count, matching TotalPaid.
func ApplyPayment(plan entities.TreatmentPlan, p entities.Payment) (entities.TreatmentPlan, error) {
	if p.PlanID != "" && plan.ID != "" && p.PlanID != plan.ID {
		return plan, ErrPlanMismatch
	}
	if !p.Type.IsPlanPayment() {
		return plan, ErrInvalidPaymentType
	}
	if !p.Amount.IsPositive() {
		return plan, ErrNonPositiveAmount
	}
	if p.Status != entities.PaymentStatusAplicado {
		return plan, ErrPaymentNotApplied
	}

	out := clonePlan(plan)
	out.TotalPaid = plan.TotalPaid.Add(p.Amount)
	out.OutstandingBalance = OutstandingBalance(out)
	return out, nil
}

// Refund marks an applied payment as returned and, when plan is given, takes
// the amount back out of the plan's total paid.
func Refund(p entities.Payment, plan *entities.TreatmentPlan, now time.Time) (RefundResult, error) {
	switch p.Status {
	case entities.PaymentStatusDevuelto:
		return RefundResult{}, ErrAlreadyRefunded
	case entities.PaymentStatusAplicado:
	default:
		return RefundResult{}, ErrPaymentNotApplied
	}
	if plan != nil && p.PlanID != plan.ID {
		return RefundResult{}, ErrPlanMismatch
	}

	refunded := p
	refunded.Status = entities.PaymentStatusDevuelto
	refunded.UpdatedAt = now

	res := RefundResult{Payment: refunded}
	if plan != nil {
		out := clonePlan(*plan)
		out.TotalPaid = plan.TotalPaid.Sub(p.Amount)
		if out.TotalPaid.IsNegative() {
			out.TotalPaid = decimal.Zero
		}
		out.OutstandingBalance = OutstandingBalance(out)
		res.Plan = &out
	}
	return res, nil
}

// TotalPaid sums the applied plan payments in ps.
func TotalPaid(ps []entities.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range ps {
		if p.Status == entities.PaymentStatusAplicado && p.Type.IsPlanPayment() {
			total = total.Add(p.Amount)
		}
	}
	return total
}

// Summarize aggregates applied payments. Refund records (DEVOLUCION) count
// against income.
func Summarize(ps []entities.Payment, from, to time.Time) entities.PaymentSummary {
	s := entities.PaymentSummary{From: from, To: to, TotalIncome: decimal.Zero}
	for _, p := range ps {
		if p.Status != entities.PaymentStatusAplicado {
			continue
		}
		if p.Type == entities.PaymentTypeDevolucion {
			s.TotalIncome = s.TotalIncome.Sub(p.Amount)
		} else {
			s.TotalIncome = s.TotalIncome.Add(p.Amount)
		}
		s.PaymentCount++
	}
	return s
}
