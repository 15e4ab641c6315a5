package interfaces

//go:generate mockgen -source=appointment_repository_interface.go -destination=mocks/mock_appointment_repository.go -package=mock_interfaces

import (
	"context"
	"time"

	"clinica_fisio/internal/domain/entities"
)

// IAppointmentRepository abstracts DynamoDB persistence for Appointment.
//
// Getters return a zero-value Appointment (empty ID) when nothing is stored.
// Update only succeeds when the stored version equals expectedVersion.

type IAppointmentRepository interface {
	Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error)
	GetByID(ctx context.Context, id string) (entities.Appointment, error)
	ListByPatientID(ctx context.Context, patientID string) ([]entities.Appointment, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]entities.Appointment, error)
	Update(ctx context.Context, a entities.Appointment, expectedVersion int) (entities.Appointment, error)
}
