package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentType string

const (
	PaymentTypeAdelantoCita     PaymentType = "ADELANTO_CITA"
	PaymentTypeAdelantoConsulta PaymentType = "ADELANTO_CONSULTA"
	PaymentTypePagoConsulta     PaymentType = "PAGO_CONSULTA"
	PaymentTypeAdelantoPlan     PaymentType = "ADELANTO_PLAN"
	PaymentTypePagoPlanCompleto PaymentType = "PAGO_PLAN_COMPLETO"
	PaymentTypePagoSesion       PaymentType = "PAGO_SESION"
	PaymentTypeDevolucion       PaymentType = "DEVOLUCION"
)

func (t PaymentType) IsValid() bool {
	switch t {
	case PaymentTypeAdelantoCita, PaymentTypeAdelantoConsulta, PaymentTypePagoConsulta,
		PaymentTypeAdelantoPlan, PaymentTypePagoPlanCompleto, PaymentTypePagoSesion, PaymentTypeDevolucion:
		return true
	}
	return false
}

// IsPlanPayment reports whether the type settles part of a treatment plan.
func (t PaymentType) IsPlanPayment() bool {
	switch t {
	case PaymentTypeAdelantoPlan, PaymentTypePagoPlanCompleto, PaymentTypePagoSesion:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodEfectivo      PaymentMethod = "EFECTIVO"
	PaymentMethodYape          PaymentMethod = "YAPE"
	PaymentMethodPlin          PaymentMethod = "PLIN"
	PaymentMethodTransferencia PaymentMethod = "TRANSFERENCIA"
	PaymentMethodTarjeta       PaymentMethod = "TARJETA"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodEfectivo, PaymentMethodYape, PaymentMethodPlin, PaymentMethodTransferencia, PaymentMethodTarjeta:
		return true
	}
	return false
}

// PaymentStatus represents the payment outcome.
//
// The only transition after registration is APLICADO -> DEVUELTO.
type PaymentStatus string

const (
	PaymentStatusAplicado  PaymentStatus = "APLICADO"
	PaymentStatusPendiente PaymentStatus = "PENDIENTE"
	PaymentStatusDevuelto  PaymentStatus = "DEVUELTO"
)

// Payment is a money movement registered against a patient.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (patient_id-index): patient_id
//   - GSI2 (plan_id-index): plan_id
//   - GSI3 (day-index): day (YYYY-MM-DD of created_at)
//
// Card payments keep the provider response in ProviderPayloadRaw for audit.
type Payment struct {
	ID             string          `json:"id"`
	PatientID      string          `json:"patient_id"`
	AppointmentID  string          `json:"appointment_id,omitempty"`
	ConsultationID string          `json:"consultation_id,omitempty"`
	PlanID         string          `json:"plan_id,omitempty"`
	SessionID      string          `json:"session_id,omitempty"`
	Type           PaymentType     `json:"type"`
	Amount         decimal.Decimal `json:"amount"`
	Method         PaymentMethod   `json:"method"`
	Status         PaymentStatus   `json:"status"`
	Reference      string          `json:"reference,omitempty"`
	Concept        string          `json:"concept,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	RegisteredByID string          `json:"registered_by_id"`

	ProviderPaymentID  string          `json:"provider_payment_id,omitempty"`
	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PaymentSummary aggregates applied payments over a period.
type PaymentSummary struct {
	From         time.Time       `json:"from"`
	To           time.Time       `json:"to"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	PaymentCount int             `json:"payment_count"`
}
