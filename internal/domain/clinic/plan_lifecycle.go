package clinic

import (
	"time"

	"clinica_fisio/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var planTransitions = map[entities.PlanStatus][]entities.PlanStatus{
	entities.PlanStatusPropuesto: {entities.PlanStatusAceptado},
	entities.PlanStatusAceptado:  {entities.PlanStatusEnCurso, entities.PlanStatusAbandonado},
	entities.PlanStatusEnCurso:   {entities.PlanStatusCompletado, entities.PlanStatusAbandonado},
}

func AllowedPlanTransitions(from entities.PlanStatus) []entities.PlanStatus {
	next := planTransitions[from]
	out := make([]entities.PlanStatus, len(next))
	copy(out, next)
	return out
}

func CanTransitionPlan(from, to entities.PlanStatus) bool {
	for _, s := range planTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func IsPlanTerminal(s entities.PlanStatus) bool {
	return s == entities.PlanStatusCompletado || s == entities.PlanStatusAbandonado
}

// ConfirmPlan accepts a proposed plan with the chosen payment modality.
//
// The full-payment discount is applied only when the plan is paid upfront and
// the patient takes the discount; any other combination confirms at 0%.
func ConfirmPlan(
	plan entities.TreatmentPlan,
	modality entities.PaymentModality,
	applyDiscount bool,
	fullPaymentDiscount decimal.Decimal,
	now time.Time,
) (entities.TreatmentPlan, error) {
	if !modalityChosen(modality) {
		return plan, ErrInvalidModality
	}
	if !CanTransitionPlan(plan.Status, entities.PlanStatusAceptado) {
		return plan, planTransitionError(plan.Status, entities.PlanStatusAceptado)
	}

	discount := decimal.Zero
	if modality == entities.PaymentModalityPagoCompleto && applyDiscount {
		discount = fullPaymentDiscount
	}
	discounted, err := DiscountedCost(plan.TotalCost, discount)
	if err != nil {
		return plan, err
	}

	out := clonePlan(plan)
	out.PaymentModality = modality
	out.DiscountPercent = discount
	out.DiscountedCost = discounted
	out.Status = entities.PlanStatusAceptado
	confirmedAt := now
	out.ConfirmedAt = &confirmedAt
	out.OutstandingBalance = OutstandingBalance(out)
	return out, nil
}

func MarkInProgress(plan entities.TreatmentPlan) (entities.TreatmentPlan, error) {
	return transitionPlan(plan, entities.PlanStatusEnCurso)
}

// MarkCompleted closes the plan. Completion is the clinician's call and is
// accepted even when sessions remain.
func MarkCompleted(plan entities.TreatmentPlan) (entities.TreatmentPlan, error) {
	return transitionPlan(plan, entities.PlanStatusCompletado)
}

func MarkAbandoned(plan entities.TreatmentPlan) (entities.TreatmentPlan, error) {
	return transitionPlan(plan, entities.PlanStatusAbandonado)
}

// TransitionPlan dispatches a status change requested by status value.
// ACEPTADO is only reachable through ConfirmPlan.
func TransitionPlan(plan entities.TreatmentPlan, to entities.PlanStatus) (entities.TreatmentPlan, error) {
	switch to {
	case entities.PlanStatusEnCurso:
		return MarkInProgress(plan)
	case entities.PlanStatusCompletado:
		return MarkCompleted(plan)
	case entities.PlanStatusAbandonado:
		return MarkAbandoned(plan)
	}
	return plan, planTransitionError(plan.Status, to)
}

func transitionPlan(plan entities.TreatmentPlan, to entities.PlanStatus) (entities.TreatmentPlan, error) {
	if !CanTransitionPlan(plan.Status, to) {
		return plan, planTransitionError(plan.Status, to)
	}
	if (to == entities.PlanStatusEnCurso || to == entities.PlanStatusCompletado) && !modalityChosen(plan.PaymentModality) {
		return plan, ErrInvalidModality
	}

	out := clonePlan(plan)
	out.Status = to
	return out, nil
}

func planTransitionError(from, to entities.PlanStatus) error {
	return &TransitionError{Entity: "treatment plan", From: string(from), To: string(to)}
}

func modalityChosen(m entities.PaymentModality) bool {
	return m == entities.PaymentModalityPagoCompleto || m == entities.PaymentModalityPagoPorSesion
}
