package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// TradingDaysPerYear is the number of simulated trading days in one year
	TradingDaysPerYear = 252

	// MinProjectionYears and MaxProjectionYears bound the projection horizon
	MinProjectionYears = 1
	MaxProjectionYears = 30
)

// Scenario selects the projection variant
type Scenario string

const (
	ScenarioBaseline Scenario = "baseline"
	ScenarioCrisis   Scenario = "crisis"
)

// ParseScenario converts user input into a Scenario (empty means baseline)
func ParseScenario(s string) (Scenario, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "baseline", "normal":
		return ScenarioBaseline, nil
	case "crisis", "crise":
		return ScenarioCrisis, nil
	default:
		return "", fmt.Errorf("%w: scenario must be 'baseline' or 'crisis', got %q", ErrInvalidInput, s)
	}
}

// ValidateYears checks the projection horizon
func ValidateYears(years int) error {
	if years < MinProjectionYears || years > MaxProjectionYears {
		return fmt.Errorf("%w: years must be between %d and %d, got %d",
			ErrInvalidInput, MinProjectionYears, MaxProjectionYears, years)
	}
	return nil
}

// ProjectionPoint is one sample of a projected value path
// YearFraction is rounded to 1 decimal, Value and Baseline to the cent
type ProjectionPoint struct {
	YearFraction float64
	Value        decimal.Decimal // Simulated value
	Baseline     decimal.Decimal // Pure compound growth, no randomness
}

// ProjectionStats summarizes the unrounded daily path of a projection
type ProjectionStats struct {
	FinalValue         decimal.Decimal
	Gain               decimal.Decimal // FinalValue - capital
	MaxDrawdown        float64         // Largest peak-to-trough loss as a fraction (0.25 = -25%)
	RealizedVolatility float64         // Annualized standard deviation of daily returns
}

// Projection is the full result of a projection request
// Produced fresh on each request, never persisted
type Projection struct {
	ID                 uuid.UUID
	Scenario           Scenario
	Years              int
	Capital            decimal.Decimal
	WeightedReturn     float64
	WeightedVolatility float64
	Points             []ProjectionPoint
	Yearly             []ProjectionPoint // One checkpoint per whole year, 0..Years
	Stats              ProjectionStats
}
