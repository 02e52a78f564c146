package model

import (
	"errors"
	"fmt"
)

// CurrencyUSD is the only currency this system charges in.
const CurrencyUSD = "usd"

// PlanCustom is the plan selector for a client-priced checkout.
const PlanCustom = "custom"

// Validation errors surfaced to the caller as 400s.
var (
	ErrInvalidPlanType     = errors.New("invalid plan type")
	ErrInvalidCustomAmount = errors.New("invalid custom amount")
)

// Plan is a named pricing tier resolved for one checkout.
type Plan struct {
	Type   string
	Name   string
	Amount float64
}

// plans is the fixed price table for the non-custom tiers.
// Amounts are server-side truth; client-supplied amounts for these
// tiers are ignored.
var plans = map[string]Plan{
	"bronze": {Type: "bronze", Name: "Bronze Plan", Amount: 50.0},
	"silver": {Type: "silver", Name: "Silver Plan", Amount: 100.0},
	"gold":   {Type: "gold", Name: "Gold Plan", Amount: 250.0},
}

// ResolvePlan maps a plan selector to a priced Plan. For the custom
// selector, customAmount must be strictly positive; for fixed tiers it
// is ignored entirely. Unknown selectors return ErrInvalidPlanType.
func ResolvePlan(planType string, customAmount float64) (Plan, error) {
	if planType == PlanCustom {
		if customAmount <= 0 {
			return Plan{}, ErrInvalidCustomAmount
		}
		return Plan{
			Type:   PlanCustom,
			Name:   fmt.Sprintf("Custom Plan - $%g", customAmount),
			Amount: customAmount,
		}, nil
	}
	plan, ok := plans[planType]
	if !ok {
		return Plan{}, ErrInvalidPlanType
	}
	return plan, nil
}
