package projection

import "github.com/simaogato/wealthflow-advisor/internal/domain"

const (
	meanReversionStrength   = 0.02
	recoveryDriftBoost      = 1.5
	recoveryVolatilityScale = 0.5
)

// stepKind tags how a single simulated day moves the value
type stepKind int

const (
	stepMeanReverting stepKind = iota // drift + noise + pull toward the expected path
	stepNormal                        // drift + noise
	stepCrisis                        // deterministic drop, no drift, no noise
	stepRecovery                      // boosted drift, damped noise
)

// dayStep is the decision a policy takes for one day
type dayStep struct {
	kind stepKind
	drop float64 // Daily loss fraction, only used by stepCrisis
}

// dayPolicy decides the step for day 1..totalDays
type dayPolicy func(day int) dayStep

// walkParams are the per-projection constants of the daily walk
type walkParams struct {
	capital         float64
	annualReturn    float64
	dailyReturn     float64
	dailyVolatility float64
	years           int
	totalDays       int
}

func newWalkParams(capital, annualReturn, annualVolatility float64, years int) walkParams {
	return walkParams{
		capital:         capital,
		annualReturn:    annualReturn,
		dailyReturn:     annualReturn / domain.TradingDaysPerYear,
		dailyVolatility: annualVolatility / sqrtTradingDays,
		years:           years,
		totalDays:       years * domain.TradingDaysPerYear,
	}
}

// walk simulates one value per day, values[0] is the capital
// Every stochastic day consumes exactly one normal draw (two uniforms)
func walk(p walkParams, policy dayPolicy, src RandomSource) []float64 {
	values := make([]float64, p.totalDays+1)
	values[0] = p.capital
	current := p.capital

	for day := 1; day <= p.totalDays; day++ {
		step := policy(day)

		switch step.kind {
		case stepCrisis:
			current *= 1 - step.drop

		case stepRecovery:
			shock := standardNormal(src) * p.dailyVolatility * recoveryVolatilityScale
			current *= 1 + p.dailyReturn*recoveryDriftBoost + shock

		case stepNormal:
			shock := standardNormal(src) * p.dailyVolatility
			current *= 1 + p.dailyReturn + shock

		default:
			// Expected value grows linearly over the whole horizon
			expected := p.capital * (1 + p.annualReturn*float64(day)/domain.TradingDaysPerYear/float64(p.years))
			deviation := 0.0
			if expected != 0 {
				deviation = (current - expected) / expected
			}
			adjustment := -deviation * meanReversionStrength
			shock := standardNormal(src) * p.dailyVolatility
			current *= 1 + p.dailyReturn + shock + adjustment
		}

		values[day] = current
	}

	return values
}
