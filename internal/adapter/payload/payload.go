// Package payload converts between transport documents (JSON objects and
// protobuf Structs, both seen as map[string]interface{}) and advisor types.
package payload

import (
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/simaogato/wealthflow-advisor/internal/domain"
	"github.com/simaogato/wealthflow-advisor/internal/usecase/advisor"
)

// RecommendRequest is the decoded form of {capital, risk}
type RecommendRequest struct {
	Capital decimal.Decimal
	Risk    domain.RiskTier
}

// DecodeRecommend validates and converts a recommendation request document
func DecodeRecommend(doc map[string]interface{}) (RecommendRequest, error) {
	capital, err := decodeCapital(doc["capital"])
	if err != nil {
		return RecommendRequest{}, err
	}

	riskText, _ := doc["risk"].(string)
	risk, err := domain.ParseRiskTier(riskText)
	if err != nil {
		return RecommendRequest{}, err
	}

	return RecommendRequest{Capital: capital, Risk: risk}, nil
}

// DecodeProject validates and converts a projection request document
func DecodeProject(doc map[string]interface{}) (advisor.ProjectInput, error) {
	rec, err := DecodeRecommend(doc)
	if err != nil {
		return advisor.ProjectInput{}, err
	}

	years, err := decodeYears(doc["years"])
	if err != nil {
		return advisor.ProjectInput{}, err
	}

	scenarioText, _ := doc["scenario"].(string)
	scenario, err := domain.ParseScenario(scenarioText)
	if err != nil {
		return advisor.ProjectInput{}, err
	}

	seed, err := decodeSeed(doc["seed"])
	if err != nil {
		return advisor.ProjectInput{}, err
	}

	return advisor.ProjectInput{
		Capital:  rec.Capital,
		Risk:     rec.Risk,
		Years:    years,
		Scenario: scenario,
		Seed:     seed,
	}, nil
}

func decodeCapital(v interface{}) (decimal.Decimal, error) {
	switch c := v.(type) {
	case string:
		return domain.ParseCapital(c)
	case float64:
		if math.IsNaN(c) || math.IsInf(c, 0) || c <= 0 {
			return decimal.Zero, fmt.Errorf("%w: capital must be positive", domain.ErrInvalidInput)
		}
		return decimal.NewFromFloat(c), nil
	case nil:
		return decimal.Zero, fmt.Errorf("%w: capital is required", domain.ErrInvalidInput)
	default:
		return decimal.Zero, fmt.Errorf("%w: capital must be a string or a number", domain.ErrInvalidInput)
	}
}

func decodeYears(v interface{}) (int, error) {
	switch y := v.(type) {
	case float64:
		if y != math.Trunc(y) {
			return 0, fmt.Errorf("%w: years must be a whole number", domain.ErrInvalidInput)
		}
		years := int(y)
		return years, domain.ValidateYears(years)
	case string:
		years, err := strconv.Atoi(y)
		if err != nil {
			return 0, fmt.Errorf("%w: years %q is not a number", domain.ErrInvalidInput, y)
		}
		return years, domain.ValidateYears(years)
	case nil:
		return 0, fmt.Errorf("%w: years is required", domain.ErrInvalidInput)
	default:
		return 0, fmt.Errorf("%w: years must be a number", domain.ErrInvalidInput)
	}
}

func decodeSeed(v interface{}) (uint64, error) {
	switch s := v.(type) {
	case nil:
		return 0, nil
	case string:
		if s == "" {
			return 0, nil
		}
		seed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: seed %q is not an unsigned integer", domain.ErrInvalidInput, s)
		}
		return seed, nil
	case float64:
		if s < 0 || s != math.Trunc(s) || s >= math.Exp2(64) {
			return 0, fmt.Errorf("%w: seed must be an unsigned integer", domain.ErrInvalidInput)
		}
		return uint64(s), nil
	default:
		return 0, fmt.Errorf("%w: seed must be a string or a number", domain.ErrInvalidInput)
	}
}

// EncodeAdvisory renders a recommendation and its summary
func EncodeAdvisory(result *domain.AdvisoryResult, summary *advisor.Summary) map[string]interface{} {
	allocation := make([]interface{}, 0, len(summary.Amounts))
	for _, a := range summary.Amounts {
		allocation = append(allocation, map[string]interface{}{
			"asset":       string(a.Info.Class),
			"label":       a.Info.Label,
			"percent":     a.Percent.InexactFloat64(),
			"amount":      a.Amount.StringFixed(2),
			"description": a.Info.Description,
			"color":       a.Info.Color,
		})
	}

	return map[string]interface{}{
		"id":                  result.ID.String(),
		"capital":             result.Capital.StringFixed(2),
		"risk":                string(result.Risk),
		"profile":             string(result.Profile),
		"profile_id":          result.ProfileID.String(),
		"justification":       result.Justification,
		"allocation":          allocation,
		"weighted_return":     summary.WeightedReturn,
		"weighted_volatility": summary.WeightedVolatility,
	}
}

// EncodeProjection renders a projection; points carry float values for charting
func EncodeProjection(out *advisor.ProjectOutput) map[string]interface{} {
	p := out.Projection
	return map[string]interface{}{
		"id":                  p.ID.String(),
		"advisory_id":         out.Advisory.ID.String(),
		"profile":             string(out.Advisory.Profile),
		"profile_id":          out.Advisory.ProfileID.String(),
		"justification":       out.Advisory.Justification,
		"scenario":            string(p.Scenario),
		"years":               p.Years,
		"seed":                strconv.FormatUint(out.Seed, 10),
		"capital":             p.Capital.StringFixed(2),
		"weighted_return":     p.WeightedReturn,
		"weighted_volatility": p.WeightedVolatility,
		"points":              encodePoints(p.Points),
		"yearly":              encodePoints(p.Yearly),
		"stats": map[string]interface{}{
			"final_value":         p.Stats.FinalValue.StringFixed(2),
			"gain":                p.Stats.Gain.StringFixed(2),
			"max_drawdown":        p.Stats.MaxDrawdown,
			"realized_volatility": p.Stats.RealizedVolatility,
		},
	}
}

// EncodeAssets renders the reference table
func EncodeAssets(infos []domain.AssetInfo) map[string]interface{} {
	assets := make([]interface{}, 0, len(infos))
	for _, info := range infos {
		assets = append(assets, map[string]interface{}{
			"asset":                  string(info.Class),
			"label":                  info.Label,
			"expected_annual_return": info.ExpectedAnnualReturn,
			"annual_volatility":      info.AnnualVolatility,
			"description":            info.Description,
			"color":                  info.Color,
		})
	}
	return map[string]interface{}{"assets": assets}
}

func encodePoints(points []domain.ProjectionPoint) []interface{} {
	out := make([]interface{}, 0, len(points))
	for _, pt := range points {
		out = append(out, map[string]interface{}{
			"year":     pt.YearFraction,
			"value":    pt.Value.InexactFloat64(),
			"baseline": pt.Baseline.InexactFloat64(),
		})
	}
	return out
}
