package response

import (
	"clinica_fisio/internal/domain/clinic"
	"clinica_fisio/internal/domain/entities"
	"time"

	"github.com/shopspring/decimal"
)

type PlanResponse struct {
	ID                 string          `json:"id"`
	PatientID          string          `json:"patient_id"`
	ConsultationID     string          `json:"consultation_id,omitempty"`
	Diagnosis          string          `json:"diagnosis,omitempty"`
	NumberOfSessions   int             `json:"number_of_sessions"`
	SessionsCompleted  int             `json:"sessions_completed"`
	RemainingSessions  int             `json:"remaining_sessions"`
	CostPerSession     decimal.Decimal `json:"cost_per_session"`
	TotalCost          decimal.Decimal `json:"total_cost"`
	DiscountPercent    decimal.Decimal `json:"discount_percent"`
	DiscountedCost     decimal.Decimal `json:"discounted_cost"`
	ApplicableCost     decimal.Decimal `json:"applicable_cost"`
	PaymentModality    string          `json:"payment_modality"`
	Status             string          `json:"status"`
	TechniqueIDs       []string        `json:"technique_ids"`
	TotalPaid          decimal.Decimal `json:"total_paid"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	ConfirmedAt        *time.Time      `json:"confirmed_at,omitempty"`
	Observations       string          `json:"observations,omitempty"`
	SuggestedFrequency string          `json:"suggested_frequency,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
	Version            int             `json:"version"`
}

func FromPlan(p entities.TreatmentPlan) PlanResponse {
	techniqueIDs := p.TechniqueIDs
	if techniqueIDs == nil {
		techniqueIDs = []string{}
	}
	return PlanResponse{
		ID:                 p.ID,
		PatientID:          p.PatientID,
		ConsultationID:     p.ConsultationID,
		Diagnosis:          p.Diagnosis,
		NumberOfSessions:   p.NumberOfSessions,
		SessionsCompleted:  p.SessionsCompleted,
		RemainingSessions:  clinic.RemainingSessions(p),
		CostPerSession:     p.CostPerSession,
		TotalCost:          p.TotalCost,
		DiscountPercent:    p.DiscountPercent,
		DiscountedCost:     p.DiscountedCost,
		ApplicableCost:     clinic.ApplicableCost(p),
		PaymentModality:    string(p.PaymentModality),
		Status:             string(p.Status),
		TechniqueIDs:       techniqueIDs,
		TotalPaid:          p.TotalPaid,
		OutstandingBalance: p.OutstandingBalance,
		ConfirmedAt:        p.ConfirmedAt,
		Observations:       p.Observations,
		SuggestedFrequency: p.SuggestedFrequency,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
		Version:            p.Version,
	}
}

func FromPlans(ps []entities.TreatmentPlan) []PlanResponse {
	out := make([]PlanResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPlan(p))
	}
	return out
}
