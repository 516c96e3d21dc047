package advisor

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/simaogato/wealthflow-advisor/internal/domain"
	"github.com/simaogato/wealthflow-advisor/internal/usecase/allocator"
	"github.com/simaogato/wealthflow-advisor/internal/usecase/portfolio"
	"github.com/simaogato/wealthflow-advisor/internal/usecase/projection"
)

// Recorder receives usage metrics; implemented by the Prometheus registry
type Recorder interface {
	RecordRecommendation(profile, risk string)
	RecordProjection(scenario string, elapsed time.Duration, err error)
}

// AssetAmount is the share of capital placed in one asset class
type AssetAmount struct {
	Info    domain.AssetInfo
	Percent decimal.Decimal
	Amount  decimal.Decimal
}

// Summary is the portfolio statistics panel of a recommendation
type Summary struct {
	WeightedReturn     float64
	WeightedVolatility float64
	Amounts            []AssetAmount // AssetClasses order, zero weights included
}

// ProjectInput is a full projection request
type ProjectInput struct {
	Capital  decimal.Decimal
	Risk     domain.RiskTier
	Years    int
	Scenario domain.Scenario
	Seed     uint64 // 0 = service default
}

// ProjectOutput pairs the recommendation with its projection
type ProjectOutput struct {
	Advisory   *domain.AdvisoryResult
	Projection *domain.Projection
	Seed       uint64
}

// AdvisorService handles recommendation and projection requests
type AdvisorService struct {
	Ref      domain.ReferenceData
	Engine   *projection.Engine
	Recorder Recorder
	Log      zerolog.Logger

	defaultSeed uint64
}

// NewAdvisorService creates a new AdvisorService instance
// recorder may be nil; defaultSeed 0 draws a fresh seed per projection
func NewAdvisorService(ref domain.ReferenceData, recorder Recorder, log zerolog.Logger, defaultSeed uint64) *AdvisorService {
	return &AdvisorService{
		Ref:         ref,
		Engine:      projection.NewEngine(ref),
		Recorder:    recorder,
		Log:         log.With().Str("component", "advisor").Logger(),
		defaultSeed: defaultSeed,
	}
}

// Recommend selects the allocation profile for a capital and risk tier
func (s *AdvisorService) Recommend(ctx context.Context, capital decimal.Decimal, risk domain.RiskTier) (*domain.AdvisoryResult, error) {
	selection, err := allocator.SelectAllocation(capital, risk)
	if err != nil {
		return nil, err
	}

	result := &domain.AdvisoryResult{
		ID:            uuid.New(),
		Capital:       capital,
		Risk:          risk,
		Profile:       selection.Profile.Name,
		ProfileID:     selection.Profile.ID,
		Allocation:    selection.Profile.Allocation,
		Justification: selection.Justification,
	}

	if err := result.Validate(); err != nil {
		return nil, fmt.Errorf("invalid recommendation: %w", err)
	}

	if s.Recorder != nil {
		s.Recorder.RecordRecommendation(string(result.Profile), string(risk))
	}

	s.Log.Info().
		Str("advisory_id", result.ID.String()).
		Str("capital", capital.StringFixed(2)).
		Str("risk", string(risk)).
		Str("profile", string(result.Profile)).
		Msg("Recommendation computed")

	return result, nil
}

// Summarize computes the weighted figures and per-asset amounts of a recommendation
func (s *AdvisorService) Summarize(result *domain.AdvisoryResult) (*Summary, error) {
	metrics, err := portfolio.ComputeWeightedMetrics(result.Allocation, s.Ref)
	if err != nil {
		return nil, err
	}

	amounts, err := allocator.CalculateAmounts(result.Capital, result.Allocation)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		WeightedReturn:     metrics.AnnualReturn,
		WeightedVolatility: metrics.AnnualVolatility,
		Amounts:            make([]AssetAmount, 0, len(result.Allocation)),
	}
	for _, w := range result.Allocation {
		info, ok := s.Ref.Lookup(w.Asset)
		if !ok {
			return nil, fmt.Errorf("%w: asset class %s", domain.ErrMissingReferenceData, w.Asset)
		}
		summary.Amounts = append(summary.Amounts, AssetAmount{
			Info:    info,
			Percent: w.Percent,
			Amount:  amounts[w.Asset],
		})
	}

	return summary, nil
}

// Project recommends an allocation and simulates its value path
// Years outside [1,30] are rejected before anything is computed
func (s *AdvisorService) Project(ctx context.Context, in ProjectInput) (*ProjectOutput, error) {
	if err := domain.ValidateYears(in.Years); err != nil {
		return nil, err
	}
	if in.Scenario == "" {
		in.Scenario = domain.ScenarioBaseline
	}

	advisory, err := s.Recommend(ctx, in.Capital, in.Risk)
	if err != nil {
		return nil, err
	}

	seed := s.seed(in.Seed)
	start := time.Now()
	p, err := s.Engine.Project(in.Scenario, advisory.Capital, advisory.Allocation, in.Years, projection.NewSource(seed))
	elapsed := time.Since(start)

	if s.Recorder != nil {
		s.Recorder.RecordProjection(string(in.Scenario), elapsed, err)
	}

	if err != nil {
		s.Log.Error().Err(err).
			Str("advisory_id", advisory.ID.String()).
			Str("scenario", string(in.Scenario)).
			Msg("Projection failed")
		return nil, err
	}

	s.Log.Info().
		Str("advisory_id", advisory.ID.String()).
		Str("projection_id", p.ID.String()).
		Str("scenario", string(p.Scenario)).
		Int("years", p.Years).
		Int("points", len(p.Points)).
		Str("final_value", p.Stats.FinalValue.StringFixed(2)).
		Dur("elapsed", elapsed).
		Msg("Projection computed")

	return &ProjectOutput{Advisory: advisory, Projection: p, Seed: seed}, nil
}

func (s *AdvisorService) seed(requested uint64) uint64 {
	if requested != 0 {
		return requested
	}
	if s.defaultSeed != 0 {
		return s.defaultSeed
	}
	return rand.Uint64()
}
