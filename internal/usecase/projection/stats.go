package projection

import (
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"

	"github.com/simaogato/wealthflow-advisor/internal/domain"
)

// pathStats summarizes an anchored daily path
func pathStats(adjusted []float64, capital, finalValue decimal.Decimal) domain.ProjectionStats {
	return domain.ProjectionStats{
		FinalValue:         finalValue,
		Gain:               finalValue.Sub(capital.Round(2)),
		MaxDrawdown:        maxDrawdown(adjusted),
		RealizedVolatility: realizedVolatility(adjusted),
	}
}

// maxDrawdown returns the largest peak-to-trough loss as a positive fraction
func maxDrawdown(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	peak := values[0]
	worst := 0.0
	for _, v := range values {
		if v > peak {
			peak = v
		}
		if peak > 0 {
			if dd := (peak - v) / peak; dd > worst {
				worst = dd
			}
		}
	}
	return worst
}

// realizedVolatility annualizes the standard deviation of daily returns
func realizedVolatility(values []float64) float64 {
	if len(values) < 3 {
		return 0
	}
	returns := make([]float64, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		if values[i-1] != 0 {
			returns = append(returns, (values[i]-values[i-1])/values[i-1])
		}
	}
	if len(returns) < 2 {
		return 0
	}
	return stat.StdDev(returns, nil) * sqrtTradingDays
}
