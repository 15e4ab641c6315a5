package clinic

import (
	"testing"

	"clinica_fisio/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func requireDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.Truef(t, dec(want).Equal(got), "expected %s, got %s", want, got.String())
}

func pricedPlan(costPerSession string, sessions int) entities.TreatmentPlan {
	cost := dec(costPerSession)
	total := cost.Mul(decimal.NewFromInt(int64(sessions)))
	return entities.TreatmentPlan{
		ID:                 "plan-1",
		PatientID:          "pat-1",
		NumberOfSessions:   sessions,
		CostPerSession:     cost,
		TotalCost:          total,
		DiscountPercent:    decimal.Zero,
		DiscountedCost:     total,
		PaymentModality:    entities.PaymentModalityPendiente,
		Status:             entities.PlanStatusPropuesto,
		TotalPaid:          decimal.Zero,
		OutstandingBalance: total,
		TechniqueIDs:       []string{"t-1"},
	}
}

func intPtr(v int) *int { return &v }
