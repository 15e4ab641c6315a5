package request

import (
	"strings"
	"time"
)

// ScheduleAppointmentRequest books a new appointment.
//
// `scheduled_at` accepts RFC3339 or "2006-01-02T15:04" (UTC).
type ScheduleAppointmentRequest struct {
	PatientID     string `json:"patient_id" binding:"required"`
	PlanID        string `json:"plan_id"`
	ScheduledAt   string `json:"scheduled_at" binding:"required"`
	Type          string `json:"type" binding:"required"`
	SessionNumber int    `json:"session_number" binding:"omitempty,min=1"`
	Notes         string `json:"notes"`
}

func (r ScheduleAppointmentRequest) ResolveScheduledAt() (time.Time, error) {
	return ParseDateTime(r.ScheduledAt)
}

type ChangeAppointmentStatusRequest struct {
	Status       string `json:"status" binding:"required"`
	Reason       string `json:"reason"`
	AttendedByID string `json:"attended_by_id"`
}

func (r ChangeAppointmentStatusRequest) ResolveStatus() string {
	return strings.ToUpper(strings.TrimSpace(r.Status))
}

type RescheduleAppointmentRequest struct {
	NewDate string `json:"new_date" binding:"required"`
	Reason  string `json:"reason"`
}

func (r RescheduleAppointmentRequest) ResolveNewDate() (time.Time, error) {
	return ParseDateTime(r.NewDate)
}
