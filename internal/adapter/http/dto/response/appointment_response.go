package response

import (
	"clinica_fisio/internal/domain/clinic"
	"clinica_fisio/internal/domain/entities"
	"time"
)

type AppointmentResponse struct {
	ID                string    `json:"id"`
	PatientID         string    `json:"patient_id"`
	PlanID            string    `json:"plan_id,omitempty"`
	ScheduledAt       time.Time `json:"scheduled_at"`
	Type              string    `json:"type"`
	Status            string    `json:"status"`
	SessionNumber     int       `json:"session_number,omitempty"`
	Notes             string    `json:"notes,omitempty"`
	StatusReason      string    `json:"status_reason,omitempty"`
	AttendedByID      string    `json:"attended_by_id,omitempty"`
	RescheduledFromID string    `json:"rescheduled_from_id,omitempty"`
	AllowedStatuses   []string  `json:"allowed_statuses"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
	Version           int       `json:"version"`
}

// FromAppointment also lists the statuses the agenda may move the
// appointment to next.
func FromAppointment(a entities.Appointment) AppointmentResponse {
	next := clinic.AllowedAppointmentTransitions(a.Status)
	allowed := make([]string, 0, len(next))
	for _, s := range next {
		allowed = append(allowed, string(s))
	}
	return AppointmentResponse{
		ID:                a.ID,
		PatientID:         a.PatientID,
		PlanID:            a.PlanID,
		ScheduledAt:       a.ScheduledAt,
		Type:              string(a.Type),
		Status:            string(a.Status),
		SessionNumber:     a.SessionNumber,
		Notes:             a.Notes,
		StatusReason:      a.StatusReason,
		AttendedByID:      a.AttendedByID,
		RescheduledFromID: a.RescheduledFromID,
		AllowedStatuses:   allowed,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
		Version:           a.Version,
	}
}

func FromAppointments(as []entities.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(as))
	for _, a := range as {
		out = append(out, FromAppointment(a))
	}
	return out
}

type RescheduleResponse struct {
	Original    AppointmentResponse `json:"original"`
	Rescheduled AppointmentResponse `json:"rescheduled"`
}
