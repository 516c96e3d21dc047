package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Weight is the share of one asset class in an allocation
type Weight struct {
	Asset   AssetClass
	Percent decimal.Decimal // Percentage between 0 and 100
}

// Allocation is an ordered list of asset class weights summing to 100
// Produced once per advisory request and never mutated afterwards
type Allocation []Weight

// NewAllocation builds an allocation from integer percentages in AssetClasses order
func NewAllocation(percents ...int64) Allocation {
	allocation := make(Allocation, 0, len(percents))
	for i, pct := range percents {
		if i >= len(AssetClasses) {
			break
		}
		allocation = append(allocation, Weight{
			Asset:   AssetClasses[i],
			Percent: decimal.NewFromInt(pct),
		})
	}
	return allocation
}

// Total returns the sum of all percentages
func (a Allocation) Total() decimal.Decimal {
	total := decimal.Zero
	for _, w := range a {
		total = total.Add(w.Percent)
	}
	return total
}

// NonZero returns the weights with a strictly positive percentage
func (a Allocation) NonZero() Allocation {
	out := make(Allocation, 0, len(a))
	for _, w := range a {
		if w.Percent.IsPositive() {
			out = append(out, w)
		}
	}
	return out
}

// Validate ensures the allocation adheres to domain rules
// Returns an error if validation fails
// CRITICAL: Percentages must be non-negative and sum to exactly 100
func (a Allocation) Validate() error {
	if len(a) == 0 {
		return errors.New("allocation must have at least one weight")
	}

	seen := make(map[AssetClass]bool, len(a))
	for _, w := range a {
		if !w.Asset.IsKnown() {
			return fmt.Errorf("allocation references unknown asset class %q", w.Asset)
		}
		if seen[w.Asset] {
			return fmt.Errorf("allocation lists asset class %s more than once", w.Asset)
		}
		seen[w.Asset] = true

		if w.Percent.IsNegative() || w.Percent.GreaterThan(hundred) {
			return fmt.Errorf("allocation percentage for %s must be between 0 and 100", w.Asset)
		}
	}

	if !a.Total().Equal(hundred) {
		return fmt.Errorf("allocation must sum to 100, got %s", a.Total().String())
	}

	return nil
}
