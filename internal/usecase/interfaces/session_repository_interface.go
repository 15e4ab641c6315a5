package interfaces

//go:generate mockgen -source=session_repository_interface.go -destination=mocks/mock_session_repository.go -package=mock_interfaces

import (
	"context"

	"clinica_fisio/internal/domain/entities"
)

// ISessionRepository abstracts DynamoDB reads for Session.
//
// Sessions are keyed by (plan_id, number). They are only written together
// with their plan, through ITransactionRepository.RecordSession.

type ISessionRepository interface {
	ListByPlanID(ctx context.Context, planID string) ([]entities.Session, error)
}
