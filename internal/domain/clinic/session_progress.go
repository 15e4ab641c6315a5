package clinic

import "clinica_fisio/internal/domain/entities"

// SessionProgress is the result of recording a session against a plan.
type SessionProgress struct {
	Plan entities.TreatmentPlan
	// CompletionCandidate is advisory: every prescribed session is done, but
	// the plan status is left for the clinician to change.
	CompletionCandidate bool
}

// NextSessionNumber returns the number the next recorded session must carry.
func NextSessionNumber(plan entities.TreatmentPlan) (int, error) {
	next := plan.SessionsCompleted + 1
	if next > plan.NumberOfSessions {
		return 0, ErrPlanExhausted
	}
	return next, nil
}

func RemainingSessions(plan entities.TreatmentPlan) int {
	if r := plan.NumberOfSessions - plan.SessionsCompleted; r > 0 {
		return r
	}
	return 0
}

// RecordSession advances the plan by one session. Sessions are recorded
// strictly in order.
func RecordSession(plan entities.TreatmentPlan, session entities.Session) (SessionProgress, error) {
	if session.PlanID != "" && plan.ID != "" && session.PlanID != plan.ID {
		return SessionProgress{Plan: plan}, ErrPlanMismatch
	}
	next, err := NextSessionNumber(plan)
	if err != nil {
		return SessionProgress{Plan: plan}, err
	}
	if session.Number != next {
		return SessionProgress{Plan: plan}, ErrOrdinalMismatch
	}
	if err := ValidatePainScale(session.PainScale); err != nil {
		return SessionProgress{Plan: plan}, err
	}

	out := clonePlan(plan)
	out.SessionsCompleted = next
	return SessionProgress{
		Plan:                out,
		CompletionCandidate: out.SessionsCompleted == out.NumberOfSessions,
	}, nil
}

func ValidatePainScale(v *int) error {
	if v == nil {
		return nil
	}
	if *v < 0 || *v > 10 {
		return ErrInvalidPainScale
	}
	return nil
}

// PainScaleLabel maps a 0-10 pain reading to its clinical band.
func PainScaleLabel(v *int) string {
	switch {
	case v == nil:
		return "No evaluado"
	case *v == 0:
		return "Sin dolor"
	case *v <= 3:
		return "Dolor leve"
	case *v <= 6:
		return "Dolor moderado"
	case *v <= 9:
		return "Dolor severo"
	default:
		return "Dolor insoportable"
	}
}
