package portfolio

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/simaogato/wealthflow-advisor/internal/domain"
)

// WeightedMetrics holds the allocation-weighted annual figures of a portfolio
type WeightedMetrics struct {
	AnnualReturn     float64
	AnnualVolatility float64
}

// ComputeWeightedMetrics aggregates expected return and volatility over an allocation
// Logic:
//   - weight_i = percent_i / 100
//   - AnnualReturn = Σ weight_i * expectedAnnualReturn_i
//   - AnnualVolatility = Σ weight_i * annualVolatility_i
//
// An asset class absent from the reference data is an error, never a zero contribution.
func ComputeWeightedMetrics(allocation domain.Allocation, ref domain.ReferenceData) (WeightedMetrics, error) {
	weights := make([]float64, len(allocation))
	returns := make([]float64, len(allocation))
	volatilities := make([]float64, len(allocation))

	for i, w := range allocation {
		info, ok := ref.Lookup(w.Asset)
		if !ok {
			return WeightedMetrics{}, fmt.Errorf("%w: asset class %s", domain.ErrMissingReferenceData, w.Asset)
		}
		weights[i] = w.Percent.InexactFloat64() / 100
		returns[i] = info.ExpectedAnnualReturn
		volatilities[i] = info.AnnualVolatility
	}

	return WeightedMetrics{
		AnnualReturn:     floats.Dot(weights, returns),
		AnnualVolatility: floats.Dot(weights, volatilities),
	}, nil
}
