package usecase

//go:generate mockgen -source=technique_usecase.go -destination=../adapter/http/handlers/mocks/mock_technique_usecase.go -package=mocks

import (
	"context"
	"errors"
	"log"
	"strings"

	"clinica_fisio/internal/domain/clinic"
	"clinica_fisio/internal/domain/entities"
	"clinica_fisio/internal/usecase/interfaces"
)

var (
	ErrTechniqueNotFound  = errors.New("technique not found")
	ErrInvalidTechniqueID = errors.New("invalid technique id")
)

// ITechniqueUseCase exposes the read-only technique catalog.
type ITechniqueUseCase interface {
	ListActive(ctx context.Context) ([]entities.Technique, error)
	GetByID(ctx context.Context, id string) (entities.Technique, error)
}

type TechniqueUseCase struct {
	repo interfaces.ITechniqueRepository
}

var _ ITechniqueUseCase = (*TechniqueUseCase)(nil)

func NewTechniqueUseCase(repo interfaces.ITechniqueRepository) *TechniqueUseCase {
	return &TechniqueUseCase{repo: repo}
}

func (u *TechniqueUseCase) ListActive(ctx context.Context) ([]entities.Technique, error) {
	items, err := u.repo.ListActive(ctx)
	if err != nil {
		log.Printf("[technique][usecase] list active failed err=%v", err)
		return nil, err
	}
	return items, nil
}

func (u *TechniqueUseCase) GetByID(ctx context.Context, id string) (entities.Technique, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Technique{}, ErrInvalidTechniqueID
	}

	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Technique{}, err
	}
	if t.ID == "" {
		return entities.Technique{}, ErrTechniqueNotFound
	}
	return t, nil
}

// loadCatalog resolves ids against the catalog. Ids that are unknown or
// inactive come back in missing.
func loadCatalog(ctx context.Context, repo interfaces.ITechniqueRepository, ids []string) (catalog clinic.CatalogMap, missing []string, err error) {
	ids = clinic.UniqueTechniqueIDs(ids)
	found, err := repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	catalog = make(clinic.CatalogMap, len(found))
	for _, t := range found {
		if t.Active {
			catalog[t.ID] = t.Price
		}
	}
	for _, id := range ids {
		if _, ok := catalog[id]; !ok {
			missing = append(missing, id)
		}
	}
	return catalog, missing, nil
}
