package projection

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/wealthflow-advisor/internal/domain"
	"github.com/simaogato/wealthflow-advisor/internal/usecase/portfolio"
)

// SamplingInterval is the number of trading days between two output points
const SamplingInterval = 5

var sqrtTradingDays = math.Sqrt(domain.TradingDaysPerYear)

// ErrPathCollapsed is returned when the simulated path ends at a value that
// cannot be anchored to the target (zero, negative or not finite)
var ErrPathCollapsed = errors.New("simulated path collapsed")

// Engine turns an allocation and a horizon into a synthetic value path
type Engine struct {
	ref domain.ReferenceData
}

// NewEngine creates a new Engine reading asset attributes from ref
func NewEngine(ref domain.ReferenceData) *Engine {
	return &Engine{ref: ref}
}

// ProjectBaseline simulates a mean-reverting random walk anchored on compound growth
func (e *Engine) ProjectBaseline(capital decimal.Decimal, allocation domain.Allocation, years int, src RandomSource) (*domain.Projection, error) {
	return e.Project(domain.ScenarioBaseline, capital, allocation, years, src)
}

// ProjectCrisis simulates a random walk with two scripted crises and recoveries
func (e *Engine) ProjectCrisis(capital decimal.Decimal, allocation domain.Allocation, years int, src RandomSource) (*domain.Projection, error) {
	return e.Project(domain.ScenarioCrisis, capital, allocation, years, src)
}

// Project runs the requested scenario
// Logic:
//  1. Weighted annual return r and volatility σ of the allocation
//  2. Daily walk over years*252 days following the scenario's day policy
//  3. Target T = capital * (1+r)^years; every day d is rescaled by (T/final)^(d/totalDays)
//  4. Sample every 5th day plus a final point exactly at years
//
// The result is either complete and anchored, or an error.
func (e *Engine) Project(scenario domain.Scenario, capital decimal.Decimal, allocation domain.Allocation, years int, src RandomSource) (*domain.Projection, error) {
	if !capital.IsPositive() {
		return nil, fmt.Errorf("%w: capital must be positive", domain.ErrInvalidInput)
	}
	if err := domain.ValidateYears(years); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, errors.New("random source is required")
	}

	var policy dayPolicy
	switch scenario {
	case domain.ScenarioBaseline:
		policy = meanRevertingPolicy
	case domain.ScenarioCrisis:
		policy = crisisPolicy(crisisEvents(years * domain.TradingDaysPerYear))
	default:
		return nil, fmt.Errorf("%w: unknown scenario %q", domain.ErrInvalidInput, scenario)
	}

	metrics, err := portfolio.ComputeWeightedMetrics(allocation, e.ref)
	if err != nil {
		return nil, err
	}

	capitalValue := capital.InexactFloat64()
	params := newWalkParams(capitalValue, metrics.AnnualReturn, metrics.AnnualVolatility, years)

	daily := walk(params, policy, src)

	adjusted, err := anchor(daily, capitalValue*math.Pow(1+metrics.AnnualReturn, float64(years)))
	if err != nil {
		return nil, err
	}

	growth := func(yearFraction float64) float64 {
		return capitalValue * math.Pow(1+metrics.AnnualReturn, yearFraction)
	}

	points := samplePoints(adjusted, years, growth)

	return &domain.Projection{
		ID:                 uuid.New(),
		Scenario:           scenario,
		Years:              years,
		Capital:            capital,
		WeightedReturn:     metrics.AnnualReturn,
		WeightedVolatility: metrics.AnnualVolatility,
		Points:             points,
		Yearly:             yearlyPoints(adjusted, years, growth),
		Stats:              pathStats(adjusted, capital, points[len(points)-1].Value),
	}, nil
}

// meanRevertingPolicy is the baseline: every day pulls toward the expected path
func meanRevertingPolicy(int) dayStep {
	return dayStep{kind: stepMeanReverting}
}

// anchor rescales day d by (target/final)^(d/totalDays) so the path ends on target
// without a visible jump at the horizon
func anchor(daily []float64, target float64) ([]float64, error) {
	totalDays := len(daily) - 1
	final := daily[totalDays]
	if final <= 0 || math.IsNaN(final) || math.IsInf(final, 0) {
		return nil, fmt.Errorf("%w: final value %v", ErrPathCollapsed, final)
	}

	factor := target / final
	adjusted := make([]float64, len(daily))
	for day, v := range daily {
		adjusted[day] = v * math.Pow(factor, float64(day)/float64(totalDays))
	}
	adjusted[totalDays] = target

	for day, v := range adjusted {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: day %d is not finite", ErrPathCollapsed, day)
		}
	}

	return adjusted, nil
}

// samplePoints keeps every SamplingInterval-th day and forces a last point at years
// When the last grid day already rounds to years it is replaced by the exact horizon day
func samplePoints(adjusted []float64, years int, growth func(float64) float64) []domain.ProjectionPoint {
	totalDays := len(adjusted) - 1
	points := make([]domain.ProjectionPoint, 0, totalDays/SamplingInterval+2)

	lastDay := 0
	for day := 0; day <= totalDays; day += SamplingInterval {
		yearFraction := float64(day) / domain.TradingDaysPerYear
		points = append(points, newPoint(roundYear(yearFraction), adjusted[day], growth(yearFraction)))
		lastDay = day
	}

	if lastDay != totalDays {
		final := newPoint(float64(years), adjusted[totalDays], growth(float64(years)))
		if points[len(points)-1].YearFraction == float64(years) {
			points[len(points)-1] = final
		} else {
			points = append(points, final)
		}
	}

	return points
}

// yearlyPoints returns one checkpoint per whole year, including year 0
func yearlyPoints(adjusted []float64, years int, growth func(float64) float64) []domain.ProjectionPoint {
	points := make([]domain.ProjectionPoint, 0, years+1)
	for year := 0; year <= years; year++ {
		day := year * domain.TradingDaysPerYear
		points = append(points, newPoint(float64(year), adjusted[day], growth(float64(year))))
	}
	return points
}

func newPoint(yearFraction, value, baseline float64) domain.ProjectionPoint {
	return domain.ProjectionPoint{
		YearFraction: yearFraction,
		Value:        decimal.NewFromFloat(value).Round(2),
		Baseline:     decimal.NewFromFloat(baseline).Round(2),
	}
}

func roundYear(yearFraction float64) float64 {
	return math.Round(yearFraction*10) / 10
}
