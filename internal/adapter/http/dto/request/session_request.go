package request

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordSessionRequest registers an attended session. `number` and `date` are
// optional: the next session number and the current time are used.
type RecordSessionRequest struct {
	Number        int              `json:"number" binding:"omitempty,min=1"`
	Date          string           `json:"date"`
	PainScale     *int             `json:"pain_scale"`
	WeightKg      *decimal.Decimal `json:"weight_kg"`
	HeightCm      *decimal.Decimal `json:"height_cm"`
	Observations  string           `json:"observations"`
	AttendedByID  string           `json:"attended_by_id" binding:"required"`
	TechniqueIDs  []string         `json:"technique_ids"`
	AppointmentID string           `json:"appointment_id"`
}

func (r RecordSessionRequest) ResolveDate() (time.Time, error) {
	return ParseOptionalDateTime(r.Date)
}
