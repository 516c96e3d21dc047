package allocator

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/simaogato/wealthflow-advisor/internal/domain"
)

var (
	lowCapitalThreshold  = decimal.NewFromInt(2000)
	highCapitalThreshold = decimal.NewFromInt(10000)
)

// Selection is the outcome of the allocation decision table
type Selection struct {
	Profile       domain.Profile
	Justification string
}

// SelectAllocation picks one of the fixed profiles for a capital and risk tier
// Logic:
//   - capital < 2000: SAFE (low risk) or BALANCED (high risk, crypto and heavy volatility avoided)
//   - 2000 <= capital < 10000: BALANCED (low risk) or BALANCED_GROWTH (high risk)
//   - capital >= 10000: BALANCED (low risk) or DYNAMIC (high risk)
//
// Returns domain.ErrInvalidInput if capital is not positive or the risk tier is unknown.
func SelectAllocation(capital decimal.Decimal, risk domain.RiskTier) (Selection, error) {
	if !capital.IsPositive() {
		return Selection{}, fmt.Errorf("%w: capital must be positive", domain.ErrInvalidInput)
	}
	if risk != domain.RiskTierLow && risk != domain.RiskTierHigh {
		return Selection{}, fmt.Errorf("%w: unknown risk tier %q", domain.ErrInvalidInput, risk)
	}

	high := risk == domain.RiskTierHigh

	var name domain.ProfileName
	var justification string
	switch {
	case capital.LessThan(lowCapitalThreshold):
		if high {
			name = domain.ProfileBalanced
			justification = "Capital < 2 000€ : profil prudent (limitation de la volatilité)."
		} else {
			name = domain.ProfileSafe
			justification = "Capital < 2 000€ : profil sécuritaire."
		}
	case capital.LessThan(highCapitalThreshold):
		if high {
			name = domain.ProfileBalancedGrowth
			justification = "Capital 2 000–10 000€ : profil équilibré orienté croissance."
		} else {
			name = domain.ProfileBalanced
			justification = "Capital 2 000–10 000€ : profil équilibré prudent."
		}
	default:
		if high {
			name = domain.ProfileDynamic
			justification = "Capital ≥ 10 000€ : profil dynamique (diversification + croissance)."
		} else {
			name = domain.ProfileBalanced
			justification = "Capital ≥ 10 000€ : profil équilibré (risque maîtrisé)."
		}
	}

	profile, ok := domain.GetProfile(name)
	if !ok {
		return Selection{}, fmt.Errorf("profile %s not found", name)
	}

	return Selection{Profile: profile, Justification: justification}, nil
}

// CalculateAmounts splits a capital across the weights of an allocation
// Returns a map of asset class to amount, rounded to the cent
// Logic:
//  1. Each weight gets capital * percent / 100, rounded to 2 decimals
//  2. The last non-zero weight receives whatever is left, absorbing rounding
//
// Safety: Ensures the amounts sum to the capital exactly (no cent lost)
func CalculateAmounts(capital decimal.Decimal, allocation domain.Allocation) (map[domain.AssetClass]decimal.Decimal, error) {
	if !capital.IsPositive() {
		return nil, fmt.Errorf("%w: capital must be positive", domain.ErrInvalidInput)
	}

	if err := allocation.Validate(); err != nil {
		return nil, err
	}

	total := capital.Round(2)
	amounts := make(map[domain.AssetClass]decimal.Decimal, len(allocation))

	held := allocation.NonZero()
	if len(held) == 0 {
		return nil, errors.New("allocation has no positive weight")
	}
	last := held[len(held)-1]

	allocated := decimal.Zero
	for _, w := range allocation {
		if w.Asset == last.Asset {
			continue
		}
		amount := total.Mul(w.Percent).Div(decimal.NewFromInt(100)).Round(2)
		amounts[w.Asset] = amount
		allocated = allocated.Add(amount)
	}
	amounts[last.Asset] = total.Sub(allocated)

	// Safety check: Ensure total allocation equals capital exactly
	sum := decimal.Zero
	for _, amount := range amounts {
		sum = sum.Add(amount)
	}
	if !sum.Equal(total) {
		return nil, errors.New("total allocation does not equal capital")
	}

	return amounts, nil
}
