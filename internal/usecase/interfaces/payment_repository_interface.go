package interfaces

//go:generate mockgen -source=payment_repository_interface.go -destination=mocks/mock_payment_repository.go -package=mock_interfaces

import (
	"context"
	"time"

	"clinica_fisio/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// UpdateStatus is conditional on the current status so a payment cannot be
// refunded twice by concurrent requests.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByPatientID(ctx context.Context, patientID string) ([]entities.Payment, error)
	ListByPlanID(ctx context.Context, planID string) ([]entities.Payment, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]entities.Payment, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.PaymentStatus, updatedAt time.Time) (entities.Payment, error)
}
