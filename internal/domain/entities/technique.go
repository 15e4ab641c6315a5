package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Technique is a billable therapy technique from the clinic catalog.
//
// The catalog is maintained elsewhere; this service only reads it to price plans.

type Technique struct {
	ID              string          `json:"id"`
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"duration_minutes,omitempty"`
	Active          bool            `json:"active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
