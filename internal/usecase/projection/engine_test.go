package projection

import (
	"fmt"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/wealthflow-advisor/internal/domain"
)

// constantSource always returns the same uniform draw
// With 0.75 both Box-Muller inputs are 0.25 and the normal variate is ~0
type constantSource float64

func (c constantSource) Float64() float64 { return float64(c) }

// sequenceSource replays its draws in a loop
type sequenceSource struct {
	draws []float64
	next  int
}

func (s *sequenceSource) Float64() float64 {
	v := s.draws[s.next%len(s.draws)]
	s.next++
	return v
}

// twoSigmaSource makes every normal variate exactly +2
// u1 = e^-2 gives sqrt(-2 ln u1) = 2 and u2 = 1 gives cos(2π) = 1
func twoSigmaSource() *sequenceSource {
	return &sequenceSource{draws: []float64{1 - math.Exp(-2), 0}}
}

func balanced() domain.Allocation {
	return domain.NewAllocation(35, 40, 20, 5, 0)
}

func TestProject_EndpointsAndLength(t *testing.T) {
	engine := NewEngine(domain.DefaultReferenceData)
	capital := decimal.NewFromInt(5000)

	for _, scenario := range []domain.Scenario{domain.ScenarioBaseline, domain.ScenarioCrisis} {
		for _, years := range []int{1, 2, 3, 5, 10, 17, 30} {
			t.Run(fmt.Sprintf("%s/%dy", scenario, years), func(t *testing.T) {
				p, err := engine.Project(scenario, capital, balanced(), years, NewSource(uint64(years)))
				require.NoError(t, err)

				totalDays := years * domain.TradingDaysPerYear
				assert.Len(t, p.Points, totalDays/SamplingInterval+1)

				first := p.Points[0]
				assert.Equal(t, 0.0, first.YearFraction)
				assert.True(t, first.Value.Equal(capital), "first value %s", first.Value)
				assert.True(t, first.Baseline.Equal(capital), "first baseline %s", first.Baseline)

				target := decimal.NewFromFloat(5000 * math.Pow(1.0475, float64(years))).Round(2)
				last := p.Points[len(p.Points)-1]
				assert.Equal(t, float64(years), last.YearFraction)
				assert.True(t, last.Baseline.Sub(target).Abs().LessThanOrEqual(decimal.RequireFromString("0.01")),
					"baseline %s want %s", last.Baseline, target)
				assert.True(t, last.Value.Equal(last.Baseline), "value %s baseline %s", last.Value, last.Baseline)

				for i := 1; i < len(p.Points); i++ {
					assert.GreaterOrEqual(t, p.Points[i].YearFraction, p.Points[i-1].YearFraction)
				}
			})
		}
	}
}

func TestProject_ValuesAreRounded(t *testing.T) {
	engine := NewEngine(domain.DefaultReferenceData)

	p, err := engine.ProjectBaseline(decimal.NewFromInt(1234), balanced(), 3, NewSource(7))
	require.NoError(t, err)

	for _, point := range p.Points {
		assert.LessOrEqual(t, -point.Value.Exponent(), int32(2))
		assert.LessOrEqual(t, -point.Baseline.Exponent(), int32(2))
		assert.Equal(t, math.Round(point.YearFraction*10)/10, point.YearFraction)
	}
}

func TestProject_SameSeedSamePath(t *testing.T) {
	engine := NewEngine(domain.DefaultReferenceData)
	capital := decimal.NewFromInt(15000)
	dynamic := domain.NewAllocation(10, 70, 10, 5, 5)

	first, err := engine.ProjectCrisis(capital, dynamic, 10, NewSource(42))
	require.NoError(t, err)
	second, err := engine.ProjectCrisis(capital, dynamic, 10, NewSource(42))
	require.NoError(t, err)
	other, err := engine.ProjectCrisis(capital, dynamic, 10, NewSource(43))
	require.NoError(t, err)

	require.Equal(t, len(first.Points), len(second.Points))
	for i := range first.Points {
		assert.True(t, first.Points[i].Value.Equal(second.Points[i].Value))
	}

	differs := false
	for i := range first.Points {
		if !first.Points[i].Value.Equal(other.Points[i].Value) {
			differs = true
			break
		}
	}
	assert.True(t, differs, "different seeds should give different paths")
}

func TestProject_YearlyCheckpoints(t *testing.T) {
	engine := NewEngine(domain.DefaultReferenceData)

	p, err := engine.ProjectBaseline(decimal.NewFromInt(2000), balanced(), 4, NewSource(1))
	require.NoError(t, err)

	require.Len(t, p.Yearly, 5)
	for year, point := range p.Yearly {
		assert.Equal(t, float64(year), point.YearFraction)
	}
	assert.True(t, p.Yearly[0].Value.Equal(decimal.NewFromInt(2000)))
	assert.True(t, p.Yearly[4].Value.Equal(p.Points[len(p.Points)-1].Value))
}

func TestProject_WeightedMetricsAndStats(t *testing.T) {
	engine := NewEngine(domain.DefaultReferenceData)
	capital := decimal.NewFromInt(10000)

	p, err := engine.ProjectCrisis(capital, balanced(), 10, NewSource(99))
	require.NoError(t, err)

	assert.InDelta(t, 0.0475, p.WeightedReturn, 1e-12)
	assert.InDelta(t, 0.0975, p.WeightedVolatility, 1e-12)
	assert.Equal(t, domain.ScenarioCrisis, p.Scenario)
	assert.Equal(t, 10, p.Years)

	assert.True(t, p.Stats.FinalValue.Equal(p.Points[len(p.Points)-1].Value))
	assert.True(t, p.Stats.Gain.Equal(p.Stats.FinalValue.Sub(capital)))
	// Five days at -5% alone is a 22.6% drawdown
	assert.Greater(t, p.Stats.MaxDrawdown, 0.2)
	assert.Greater(t, p.Stats.RealizedVolatility, 0.0)
}

func TestProject_InvalidInput(t *testing.T) {
	engine := NewEngine(domain.DefaultReferenceData)
	src := NewSource(1)

	_, err := engine.ProjectBaseline(decimal.Zero, balanced(), 5, src)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = engine.ProjectBaseline(decimal.NewFromInt(100), balanced(), 0, src)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = engine.ProjectCrisis(decimal.NewFromInt(100), balanced(), 31, src)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = engine.Project(domain.Scenario("boom"), decimal.NewFromInt(100), balanced(), 5, src)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = engine.ProjectBaseline(decimal.NewFromInt(100), balanced(), 5, nil)
	assert.Error(t, err)
}

func TestProject_MissingReferenceData(t *testing.T) {
	bonds, _ := domain.DefaultReferenceData.Lookup(domain.AssetClassBonds)
	partial := domain.NewReferenceTable(bonds)
	engine := NewEngine(partial)

	p, err := engine.ProjectBaseline(decimal.NewFromInt(100), balanced(), 5, NewSource(1))

	assert.Nil(t, p)
	assert.ErrorIs(t, err, domain.ErrMissingReferenceData)
}

func TestCrisisEvents_Placement(t *testing.T) {
	events := crisisEvents(2520)

	require.Len(t, events, 2)
	assert.Equal(t, 756, events[0].start)
	assert.Equal(t, 0.05, events[0].dropPerDay)
	assert.Equal(t, 3*domain.TradingDaysPerYear, events[0].recovery)
	assert.Equal(t, 1764, events[1].start)
	assert.Equal(t, 0.03, events[1].dropPerDay)
	assert.Equal(t, 2*domain.TradingDaysPerYear, events[1].recovery)
}

func TestCrisisEvents_DropsOutOfRangeEvents(t *testing.T) {
	// floor(3*0.3) = 0 is dropped, floor(3*0.7) = 2 is kept
	events := crisisEvents(3)
	require.Len(t, events, 1)
	assert.Equal(t, 2, events[0].start)

	assert.Empty(t, crisisEvents(1))
}

func TestCrisisPolicy_CrisisWinsOverRecovery(t *testing.T) {
	// 3 years: crisis 2 at day 529 falls inside the recovery window of crisis 1
	policy := crisisPolicy(crisisEvents(3 * domain.TradingDaysPerYear))

	assert.Equal(t, dayStep{kind: stepCrisis, drop: 0.05}, policy(226))
	assert.Equal(t, dayStep{kind: stepRecovery}, policy(231))
	assert.Equal(t, dayStep{kind: stepCrisis, drop: 0.03}, policy(529))
	assert.Equal(t, dayStep{kind: stepRecovery}, policy(534))
	assert.Equal(t, dayStep{kind: stepNormal}, policy(100))
}

func TestWalk_CrisisDaysDropExactly(t *testing.T) {
	params := newWalkParams(10000, 0.0475, 0.0975, 10)
	values := walk(params, crisisPolicy(crisisEvents(params.totalDays)), NewSource(2024))

	for day := 756; day < 761; day++ {
		assert.Less(t, values[day], values[day-1])
		assert.InDelta(t, values[day-1]*0.95, values[day], 1e-9*values[day-1], "day %d", day)
	}
	for day := 1764; day < 1769; day++ {
		assert.InDelta(t, values[day-1]*0.97, values[day], 1e-9*values[day-1], "day %d", day)
	}
}

func TestWalk_NormalAndRecoveryDrift(t *testing.T) {
	params := newWalkParams(1000, 0.0504, 0.10, 10)
	values := walk(params, crisisPolicy(crisisEvents(params.totalDays)), constantSource(0.75))

	daily := 0.0504 / domain.TradingDaysPerYear
	assert.InDelta(t, 1000*(1+daily), values[1], 1e-9)
	// First recovery day follows the last crisis day (756..760)
	assert.InDelta(t, values[760]*(1+daily*1.5), values[761], 1e-9)
}

func TestStandardNormal_KnownDraw(t *testing.T) {
	assert.InDelta(t, 2.0, standardNormal(twoSigmaSource()), 1e-12)
}

func TestWalk_NoiseScaledByDailyVolatility(t *testing.T) {
	const (
		annualReturn     = 0.0504
		annualVolatility = 0.10
	)
	params := newWalkParams(1000, annualReturn, annualVolatility, 10)
	values := walk(params, crisisPolicy(crisisEvents(params.totalDays)), twoSigmaSource())

	daily := annualReturn / domain.TradingDaysPerYear
	shock := 2 * annualVolatility / math.Sqrt(domain.TradingDaysPerYear)

	// Day 1 is a normal day: full daily volatility
	assert.InEpsilon(t, 1000*(1+daily+shock), values[1], 1e-9)
	assert.InEpsilon(t, values[1]*(1+daily+shock), values[2], 1e-9)

	// Crisis days drop without noise
	assert.InEpsilon(t, values[755]*0.95, values[756], 1e-9)

	// Day 761 opens the first recovery window: boosted drift, half the noise
	assert.InEpsilon(t, values[760]*(1+daily*1.5+shock*0.5), values[761], 1e-9)
}

func TestWalk_MeanRevertingDayIncludesNoise(t *testing.T) {
	params := newWalkParams(1000, 0.05, 0.10, 1)
	values := walk(params, meanRevertingPolicy, twoSigmaSource())

	expected1 := 1000 * (1 + 0.05/float64(domain.TradingDaysPerYear))
	deviation := (1000 - expected1) / expected1
	shock := 2 * 0.10 / math.Sqrt(domain.TradingDaysPerYear)
	want := 1000 * (1 + 0.05/domain.TradingDaysPerYear + shock - deviation*0.02)
	assert.InDelta(t, want, values[1], 1e-9)
}

func TestWalk_MeanReversionPullsTowardExpected(t *testing.T) {
	params := newWalkParams(1000, 0.05, 0.10, 1)
	// No noise: day 1 is drift plus the pull toward the expected path
	values := walk(params, meanRevertingPolicy, constantSource(0.75))

	expected1 := 1000 * (1 + 0.05*1/float64(domain.TradingDaysPerYear))
	deviation := (1000 - expected1) / expected1
	want := 1000 * (1 + 0.05/domain.TradingDaysPerYear - deviation*0.02)
	assert.InDelta(t, want, values[1], 1e-9)
}

func TestAnchor_CollapsedPath(t *testing.T) {
	_, err := anchor([]float64{100, 50, -5}, 110)
	assert.ErrorIs(t, err, ErrPathCollapsed)

	_, err = anchor([]float64{100, math.NaN()}, 110)
	assert.ErrorIs(t, err, ErrPathCollapsed)
}

func TestAnchor_PowerLawBlend(t *testing.T) {
	adjusted, err := anchor([]float64{100, 100, 100, 100, 100}, 121)
	require.NoError(t, err)

	// factor 1.21 spread as 1.21^(d/4)
	assert.InDelta(t, 100.0, adjusted[0], 1e-9)
	assert.InDelta(t, 110.0, adjusted[2], 1e-9)
	assert.InDelta(t, 121.0, adjusted[4], 1e-9)
}
