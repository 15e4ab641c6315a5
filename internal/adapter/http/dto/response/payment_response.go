package response

import (
	"clinica_fisio/internal/domain/entities"
	"clinica_fisio/internal/usecase"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentResponse struct {
	ID                string          `json:"id"`
	PatientID         string          `json:"patient_id"`
	AppointmentID     string          `json:"appointment_id,omitempty"`
	ConsultationID    string          `json:"consultation_id,omitempty"`
	PlanID            string          `json:"plan_id,omitempty"`
	SessionID         string          `json:"session_id,omitempty"`
	Type              string          `json:"type"`
	Amount            decimal.Decimal `json:"amount"`
	Method            string          `json:"method"`
	Status            string          `json:"status"`
	Reference         string          `json:"reference,omitempty"`
	Concept           string          `json:"concept,omitempty"`
	Notes             string          `json:"notes,omitempty"`
	RegisteredByID    string          `json:"registered_by_id,omitempty"`
	ProviderPaymentID string          `json:"provider_payment_id,omitempty"`
	MPPayloadRaw      string          `json:"mp_payload_raw,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                p.ID,
		PatientID:         p.PatientID,
		AppointmentID:     p.AppointmentID,
		ConsultationID:    p.ConsultationID,
		PlanID:            p.PlanID,
		SessionID:         p.SessionID,
		Type:              string(p.Type),
		Amount:            p.Amount,
		Method:            string(p.Method),
		Status:            string(p.Status),
		Reference:         p.Reference,
		Concept:           p.Concept,
		Notes:             p.Notes,
		RegisteredByID:    p.RegisteredByID,
		ProviderPaymentID: p.ProviderPaymentID,
		MPPayloadRaw:      string(p.ProviderPayloadRaw),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func FromPayments(ps []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPayment(p))
	}
	return out
}

// RegisterPaymentResponse carries the advisory amount check. A mismatch is
// informational only; the payment was stored.
type RegisterPaymentResponse struct {
	Payment           PaymentResponse `json:"payment"`
	Plan              *PlanResponse   `json:"plan,omitempty"`
	SuggestedAmount   decimal.Decimal `json:"suggested_amount"`
	MatchesSuggestion bool            `json:"matches_suggestion"`
}

func FromRegisterPaymentResult(r usecase.RegisterPaymentResult) RegisterPaymentResponse {
	return RegisterPaymentResponse{
		Payment:           FromPayment(r.Payment),
		Plan:              planPtr(r.Plan),
		SuggestedAmount:   r.SuggestedAmount,
		MatchesSuggestion: r.MatchesSuggestion,
	}
}

type RefundResponse struct {
	Payment PaymentResponse `json:"payment"`
	Plan    *PlanResponse   `json:"plan,omitempty"`
}

func FromRefund(p entities.Payment, plan *entities.TreatmentPlan) RefundResponse {
	return RefundResponse{Payment: FromPayment(p), Plan: planPtr(plan)}
}

type PaymentSummaryResponse struct {
	From         time.Time       `json:"from"`
	To           time.Time       `json:"to"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	PaymentCount int             `json:"payment_count"`
}

func FromPaymentSummary(s entities.PaymentSummary) PaymentSummaryResponse {
	return PaymentSummaryResponse{
		From:         s.From,
		To:           s.To,
		TotalIncome:  s.TotalIncome,
		PaymentCount: s.PaymentCount,
	}
}

type PlanTotalPaidResponse struct {
	PlanID    string          `json:"plan_id"`
	TotalPaid decimal.Decimal `json:"total_paid"`
}

type SuggestedAmountResponse struct {
	PlanID          string          `json:"plan_id"`
	Type            string          `json:"type"`
	SuggestedAmount decimal.Decimal `json:"suggested_amount"`
}

func planPtr(p *entities.TreatmentPlan) *PlanResponse {
	if p == nil {
		return nil
	}
	res := FromPlan(*p)
	return &res
}
