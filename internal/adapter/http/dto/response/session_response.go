package response

import (
	"clinica_fisio/internal/domain/clinic"
	"clinica_fisio/internal/domain/entities"
	"clinica_fisio/internal/usecase"
	"time"

	"github.com/shopspring/decimal"
)

type SessionResponse struct {
	ID           string           `json:"id"`
	PlanID       string           `json:"plan_id"`
	Number       int              `json:"number"`
	Date         time.Time        `json:"date"`
	PainScale    *int             `json:"pain_scale,omitempty"`
	PainLabel    string           `json:"pain_label,omitempty"`
	WeightKg     *decimal.Decimal `json:"weight_kg,omitempty"`
	HeightCm     *decimal.Decimal `json:"height_cm,omitempty"`
	Observations string           `json:"observations,omitempty"`
	AttendedByID string           `json:"attended_by_id"`
	TechniqueIDs []string         `json:"technique_ids"`
	CreatedAt    time.Time        `json:"created_at"`
}

func FromSession(s entities.Session) SessionResponse {
	res := SessionResponse{
		ID:           s.ID,
		PlanID:       s.PlanID,
		Number:       s.Number,
		Date:         s.Date,
		PainScale:    s.PainScale,
		WeightKg:     s.WeightKg,
		HeightCm:     s.HeightCm,
		Observations: s.Observations,
		AttendedByID: s.AttendedByID,
		TechniqueIDs: s.TechniqueIDs,
		CreatedAt:    s.CreatedAt,
	}
	if s.PainScale != nil {
		res.PainLabel = clinic.PainScaleLabel(s.PainScale)
	}
	if res.TechniqueIDs == nil {
		res.TechniqueIDs = []string{}
	}
	return res
}

func FromSessions(ss []entities.Session) []SessionResponse {
	out := make([]SessionResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, FromSession(s))
	}
	return out
}

// RecordSessionResponse flags a plan whose last session was just recorded so
// the clinician can close it.
type RecordSessionResponse struct {
	Session             SessionResponse      `json:"session"`
	Plan                PlanResponse         `json:"plan"`
	RemainingSessions   int                  `json:"remaining_sessions"`
	CompletionCandidate bool                 `json:"completion_candidate"`
	Appointment         *AppointmentResponse `json:"appointment,omitempty"`
}

func FromRecordSessionResult(r usecase.RecordSessionResult) RecordSessionResponse {
	res := RecordSessionResponse{
		Session:             FromSession(r.Session),
		Plan:                FromPlan(r.Plan),
		RemainingSessions:   r.RemainingSessions,
		CompletionCandidate: r.CompletionCandidate,
	}
	res.Session.PainLabel = r.PainLabel
	if r.Appointment != nil {
		a := FromAppointment(*r.Appointment)
		res.Appointment = &a
	}
	return res
}
