package request

import "strings"

type ProposePlanRequest struct {
	PatientID          string   `json:"patient_id" binding:"required"`
	ConsultationID     string   `json:"consultation_id"`
	Diagnosis          string   `json:"diagnosis"`
	NumberOfSessions   int      `json:"number_of_sessions" binding:"required,min=1"`
	TechniqueIDs       []string `json:"technique_ids" binding:"required,min=1"`
	Observations       string   `json:"observations"`
	SuggestedFrequency string   `json:"suggested_frequency"`
}

// ConfirmPlanRequest records the payment modality chosen by the patient.
// The full-payment discount applies unless `apply_discount` is false.
type ConfirmPlanRequest struct {
	PaymentModality string `json:"payment_modality" binding:"required"`
	ApplyDiscount   *bool  `json:"apply_discount"`
}

func (r ConfirmPlanRequest) ResolveModality() string {
	return strings.ToUpper(strings.TrimSpace(r.PaymentModality))
}

func (r ConfirmPlanRequest) ResolveApplyDiscount() bool {
	if r.ApplyDiscount == nil {
		return true
	}
	return *r.ApplyDiscount
}

type UpdatePlanStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdatePlanStatusRequest) ResolveStatus() string {
	return strings.ToUpper(strings.TrimSpace(r.Status))
}
