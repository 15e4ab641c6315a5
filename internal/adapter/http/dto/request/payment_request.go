package request

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// RegisterPaymentRequest is a payment taken at the front desk.
//
// `mp_payload` is forwarded to Mercado Pago as-is (raw JSON) for TARJETA
// payments and ignored otherwise.
type RegisterPaymentRequest struct {
	PatientID      string          `json:"patient_id" binding:"required"`
	AppointmentID  string          `json:"appointment_id"`
	ConsultationID string          `json:"consultation_id"`
	PlanID         string          `json:"plan_id"`
	SessionID      string          `json:"session_id"`
	Type           string          `json:"type" binding:"required"`
	Amount         decimal.Decimal `json:"amount"`
	Method         string          `json:"method" binding:"required"`
	Reference      string          `json:"reference"`
	Concept        string          `json:"concept"`
	Notes          string          `json:"notes"`
	RegisteredByID string          `json:"registered_by_id"`
	MPPayload      json.RawMessage `json:"mp_payload"`
}

func (r RegisterPaymentRequest) ResolveType() string {
	return strings.ToUpper(strings.TrimSpace(r.Type))
}

func (r RegisterPaymentRequest) ResolveMethod() string {
	return strings.ToUpper(strings.TrimSpace(r.Method))
}
