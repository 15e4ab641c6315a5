package usecase

import (
	"context"
	"time"

	"clinica_fisio/internal/domain/clinic"
	"clinica_fisio/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var testNow = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func testClock() clinic.Clock { return clinic.FixedClock(testNow) }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// proposedPlan is a 10-session plan at 50 per session.
func proposedPlan() entities.TreatmentPlan {
	return entities.TreatmentPlan{
		ID:                 "plan-1",
		PatientID:          "patient-1",
		NumberOfSessions:   10,
		CostPerSession:     dec("50"),
		TotalCost:          dec("500"),
		DiscountPercent:    decimal.Zero,
		DiscountedCost:     dec("500"),
		PaymentModality:    entities.PaymentModalityPendiente,
		Status:             entities.PlanStatusPropuesto,
		TechniqueIDs:       []string{"t-1", "t-2"},
		TotalPaid:          decimal.Zero,
		OutstandingBalance: dec("500"),
		Version:            1,
	}
}

// acceptedPlan is proposedPlan confirmed with the given modality.
func acceptedPlan(modality entities.PaymentModality, discount string) entities.TreatmentPlan {
	p := proposedPlan()
	p.Status = entities.PlanStatusAceptado
	p.PaymentModality = modality
	p.DiscountPercent = dec(discount)
	p.DiscountedCost, _ = clinic.DiscountedCost(p.TotalCost, p.DiscountPercent)
	p.OutstandingBalance = clinic.OutstandingBalance(p)
	p.Version = 2
	return p
}

func echoPlanUpdate(_ context.Context, p entities.TreatmentPlan, expectedVersion int) (entities.TreatmentPlan, error) {
	p.Version = expectedVersion + 1
	return p, nil
}

func echoAppointmentUpdate(_ context.Context, a entities.Appointment, expectedVersion int) (entities.Appointment, error) {
	a.Version = expectedVersion + 1
	return a, nil
}
