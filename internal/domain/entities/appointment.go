package entities

import "time"

// AppointmentType is the kind of visit being scheduled.
type AppointmentType string

const (
	AppointmentTypeConsulta   AppointmentType = "CONSULTA"
	AppointmentTypeReconsulta AppointmentType = "RECONSULTA"
	AppointmentTypeSesion     AppointmentType = "SESION"
	AppointmentTypeControl    AppointmentType = "CONTROL"
)

func (t AppointmentType) IsValid() bool {
	switch t {
	case AppointmentTypeConsulta, AppointmentTypeReconsulta, AppointmentTypeSesion, AppointmentTypeControl:
		return true
	}
	return false
}

// AppointmentStatus represents the lifecycle of an appointment (cita).
//
// Lifecycle:
//
//	PROGRAMADA -> CONFIRMADA -> EN_ATENCION -> COMPLETADA
//	PROGRAMADA -> CANCELADA
//	CONFIRMADA -> CANCELADA | NO_ASISTIO
//
// SEPARADA and REPROGRAMADA are only produced by rescheduling.
type AppointmentStatus string

const (
	AppointmentStatusProgramada   AppointmentStatus = "PROGRAMADA"
	AppointmentStatusSeparada     AppointmentStatus = "SEPARADA"
	AppointmentStatusConfirmada   AppointmentStatus = "CONFIRMADA"
	AppointmentStatusEnAtencion   AppointmentStatus = "EN_ATENCION"
	AppointmentStatusCompletada   AppointmentStatus = "COMPLETADA"
	AppointmentStatusReprogramada AppointmentStatus = "REPROGRAMADA"
	AppointmentStatusCancelada    AppointmentStatus = "CANCELADA"
	AppointmentStatusNoAsistio    AppointmentStatus = "NO_ASISTIO"
)

func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusProgramada, AppointmentStatusSeparada, AppointmentStatusConfirmada,
		AppointmentStatusEnAtencion, AppointmentStatusCompletada, AppointmentStatusReprogramada,
		AppointmentStatusCancelada, AppointmentStatusNoAsistio:
		return true
	}
	return false
}

// Appointment is a scheduled visit persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (patient_id-index): patient_id
//   - GSI2 (day-index): day (YYYY-MM-DD of scheduled_at)
//
// Appointments are never deleted; cancellation is a terminal status.
type Appointment struct {
	ID                string            `json:"id"`
	PatientID         string            `json:"patient_id"`
	PlanID            string            `json:"plan_id,omitempty"`
	ScheduledAt       time.Time         `json:"scheduled_at"`
	Type              AppointmentType   `json:"type"`
	Status            AppointmentStatus `json:"status"`
	SessionNumber     int               `json:"session_number,omitempty"`
	Notes             string            `json:"notes,omitempty"`
	StatusReason      string            `json:"status_reason,omitempty"`
	AttendedByID      string            `json:"attended_by_id,omitempty"`
	RescheduledFromID string            `json:"rescheduled_from_id,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
	Version           int               `json:"version"`
}
