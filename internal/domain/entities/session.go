package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Session is one completed visit under a treatment plan.
//
// Storage model (DynamoDB):
//   - PK: plan_id
//   - SK: number
//
// Sessions are immutable once recorded.
type Session struct {
	ID           string           `json:"id"`
	PlanID       string           `json:"plan_id"`
	Number       int              `json:"number"`
	Date         time.Time        `json:"date"`
	PainScale    *int             `json:"pain_scale,omitempty"`
	WeightKg     *decimal.Decimal `json:"weight_kg,omitempty"`
	HeightCm     *decimal.Decimal `json:"height_cm,omitempty"`
	Observations string           `json:"observations,omitempty"`
	AttendedByID string           `json:"attended_by_id"`
	TechniqueIDs []string         `json:"technique_ids"`
	CreatedAt    time.Time        `json:"created_at"`
}
