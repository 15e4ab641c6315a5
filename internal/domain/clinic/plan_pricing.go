package clinic

import (
	"clinica_fisio/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Catalog resolves technique prices.
type Catalog interface {
	PriceOf(techniqueID string) (decimal.Decimal, bool)
}

// CatalogMap is a Catalog backed by a map of technique id to price.
type CatalogMap map[string]decimal.Decimal

func (m CatalogMap) PriceOf(techniqueID string) (decimal.Decimal, bool) {
	p, ok := m[techniqueID]
	return p, ok
}

// UniqueTechniqueIDs drops repeated and empty ids, keeping first-seen order.
func UniqueTechniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// CostPerSession sums the catalog price of each distinct technique. A technique
// is billed once per session however many times it was selected; ids missing
// from the catalog contribute nothing.
func CostPerSession(techniqueIDs []string, catalog Catalog) decimal.Decimal {
	total := decimal.Zero
	if catalog == nil {
		return total
	}
	for _, id := range UniqueTechniqueIDs(techniqueIDs) {
		if price, ok := catalog.PriceOf(id); ok {
			total = total.Add(price)
		}
	}
	return total
}

func TotalCost(costPerSession decimal.Decimal, numberOfSessions int) (decimal.Decimal, error) {
	if numberOfSessions < 1 {
		return decimal.Zero, ErrInvalidQuantity
	}
	return costPerSession.Mul(decimal.NewFromInt(int64(numberOfSessions))), nil
}

// DiscountedCost applies a percentage discount, rounded to cents.
func DiscountedCost(totalCost, discountPercent decimal.Decimal) (decimal.Decimal, error) {
	if discountPercent.IsNegative() || discountPercent.GreaterThan(hundred) {
		return decimal.Zero, ErrInvalidPercent
	}
	return totalCost.Mul(hundred.Sub(discountPercent)).Div(hundred).Round(2), nil
}

// ApplicableCost is the cost basis for balances: the discounted cost when the
// plan is paid upfront in full, the total cost otherwise.
func ApplicableCost(plan entities.TreatmentPlan) decimal.Decimal {
	if plan.PaymentModality != entities.PaymentModalityPagoCompleto {
		return plan.TotalCost
	}
	discounted, err := DiscountedCost(plan.TotalCost, plan.DiscountPercent)
	if err != nil {
		return plan.TotalCost
	}
	return discounted
}

// PricePlan fills in the techniques and every derived figure of a plan from
// the catalog. The plan's discount percent is kept as is.
func PricePlan(plan entities.TreatmentPlan, catalog Catalog) (entities.TreatmentPlan, error) {
	out := clonePlan(plan)
	out.TechniqueIDs = UniqueTechniqueIDs(plan.TechniqueIDs)
	out.CostPerSession = CostPerSession(out.TechniqueIDs, catalog)

	total, err := TotalCost(out.CostPerSession, out.NumberOfSessions)
	if err != nil {
		return plan, err
	}
	discounted, err := DiscountedCost(total, out.DiscountPercent)
	if err != nil {
		return plan, err
	}
	out.TotalCost = total
	out.DiscountedCost = discounted
	out.OutstandingBalance = OutstandingBalance(out)
	return out, nil
}

func clonePlan(p entities.TreatmentPlan) entities.TreatmentPlan {
	out := p
	if p.TechniqueIDs != nil {
		out.TechniqueIDs = append([]string(nil), p.TechniqueIDs...)
	}
	if p.ConfirmedAt != nil {
		t := *p.ConfirmedAt
		out.ConfirmedAt = &t
	}
	return out
}
