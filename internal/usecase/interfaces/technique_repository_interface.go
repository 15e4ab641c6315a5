package interfaces

//go:generate mockgen -source=technique_repository_interface.go -destination=mocks/mock_technique_repository.go -package=mock_interfaces

import (
	"context"

	"clinica_fisio/internal/domain/entities"
)

// ITechniqueRepository reads the technique catalog.

type ITechniqueRepository interface {
	GetByID(ctx context.Context, id string) (entities.Technique, error)
	GetByIDs(ctx context.Context, ids []string) ([]entities.Technique, error)
	ListActive(ctx context.Context) ([]entities.Technique, error)
}
