package interfaces

//go:generate mockgen -source=plan_repository_interface.go -destination=mocks/mock_plan_repository.go -package=mock_interfaces

import (
	"context"

	"clinica_fisio/internal/domain/entities"
)

// IPlanRepository abstracts DynamoDB persistence for TreatmentPlan.

type IPlanRepository interface {
	Create(ctx context.Context, p entities.TreatmentPlan) (entities.TreatmentPlan, error)
	GetByID(ctx context.Context, id string) (entities.TreatmentPlan, error)
	ListByPatientID(ctx context.Context, patientID string) ([]entities.TreatmentPlan, error)
	ListByStatus(ctx context.Context, status entities.PlanStatus) ([]entities.TreatmentPlan, error)
	Update(ctx context.Context, p entities.TreatmentPlan, expectedVersion int) (entities.TreatmentPlan, error)
}
