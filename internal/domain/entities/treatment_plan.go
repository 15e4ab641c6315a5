package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentModality is how the sessions of a plan are paid for.
type PaymentModality string

const (
	PaymentModalityPendiente     PaymentModality = "PENDIENTE"
	PaymentModalityPagoCompleto  PaymentModality = "PAGO_COMPLETO"
	PaymentModalityPagoPorSesion PaymentModality = "PAGO_POR_SESION"
)

func (m PaymentModality) IsValid() bool {
	switch m {
	case PaymentModalityPendiente, PaymentModalityPagoCompleto, PaymentModalityPagoPorSesion:
		return true
	}
	return false
}

// PlanStatus represents the lifecycle of a treatment plan.
//
//	PROPUESTO -> ACEPTADO -> EN_CURSO -> COMPLETADO
//	ACEPTADO | EN_CURSO -> ABANDONADO
type PlanStatus string

const (
	PlanStatusPropuesto  PlanStatus = "PROPUESTO"
	PlanStatusAceptado   PlanStatus = "ACEPTADO"
	PlanStatusEnCurso    PlanStatus = "EN_CURSO"
	PlanStatusCompletado PlanStatus = "COMPLETADO"
	PlanStatusAbandonado PlanStatus = "ABANDONADO"
)

func (s PlanStatus) IsValid() bool {
	switch s {
	case PlanStatusPropuesto, PlanStatusAceptado, PlanStatusEnCurso, PlanStatusCompletado, PlanStatusAbandonado:
		return true
	}
	return false
}

// TreatmentPlan is a prescribed course of sessions with its pricing and
// payment terms.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (patient_id-index): patient_id
//   - GSI2 (status-index): status
//
// Monetary representation:
//   - TotalCost = CostPerSession x NumberOfSessions
//   - DiscountedCost = TotalCost x (1 - DiscountPercent/100)
//   - OutstandingBalance is derived from the applicable cost and TotalPaid, never negative.
type TreatmentPlan struct {
	ID                 string          `json:"id"`
	PatientID          string          `json:"patient_id"`
	ConsultationID     string          `json:"consultation_id"`
	Diagnosis          string          `json:"diagnosis"`
	NumberOfSessions   int             `json:"number_of_sessions"`
	SessionsCompleted  int             `json:"sessions_completed"`
	CostPerSession     decimal.Decimal `json:"cost_per_session"`
	TotalCost          decimal.Decimal `json:"total_cost"`
	DiscountPercent    decimal.Decimal `json:"discount_percent"`
	DiscountedCost     decimal.Decimal `json:"discounted_cost"`
	PaymentModality    PaymentModality `json:"payment_modality"`
	Status             PlanStatus      `json:"status"`
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
