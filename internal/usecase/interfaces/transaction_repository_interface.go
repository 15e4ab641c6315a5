package interfaces

//go:generate mockgen -source=transaction_repository_interface.go -destination=mocks/mock_transaction_repository.go -package=mock_interfaces

import (
	"context"
	"time"

	"clinica_fisio/internal/domain/entities"
)

// PlanWrite stores Plan only if the stored plan is still at ExpectedVersion.
type PlanWrite struct {
	Plan            entities.TreatmentPlan
	ExpectedVersion int
}

// AppointmentWrite stores Appointment only if the stored appointment is
// still at ExpectedVersion.
type AppointmentWrite struct {
	Appointment     entities.Appointment
	ExpectedVersion int
}

// ITransactionRepository commits writes that span several tables in a
// single DynamoDB transaction: every write lands or none does.
//
// A failed condition on any item (stale version, taken session number,
// payment no longer in the expected status) returns ErrVersionConflict.
// Returned plans and appointments carry their new version.

type ITransactionRepository interface {
	RecordSession(ctx context.Context, s entities.Session, plan PlanWrite, appt *AppointmentWrite) (entities.TreatmentPlan, *entities.Appointment, error)
	RegisterPlanPayment(ctx context.Context, p entities.Payment, plan PlanWrite) (entities.TreatmentPlan, error)
	RefundPlanPayment(ctx context.Context, paymentID string, from, to entities.PaymentStatus, at time.Time, plan PlanWrite) (entities.TreatmentPlan, error)
	Reschedule(ctx context.Context, original AppointmentWrite, replacement entities.Appointment) (entities.Appointment, entities.Appointment, error)
}
