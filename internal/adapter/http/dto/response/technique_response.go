package response

import (
	"clinica_fisio/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type TechniqueResponse struct {
	ID              string          `json:"id"`
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"duration_minutes,omitempty"`
	Active          bool            `json:"active"`
}

func FromTechnique(t entities.Technique) TechniqueResponse {
	return TechniqueResponse{
		ID:              t.ID,
		Code:            t.Code,
		Name:            t.Name,
		Description:     t.Description,
		Price:           t.Price,
		DurationMinutes: t.DurationMinutes,
		Active:          t.Active,
	}
}

func FromTechniques(ts []entities.Technique) []TechniqueResponse {
	out := make([]TechniqueResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromTechnique(t))
	}
	return out
}
