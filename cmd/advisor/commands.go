package main

import (
	"encoding/json"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/simaogato/wealthflow-advisor/internal/adapter/payload"
	"github.com/simaogato/wealthflow-advisor/internal/display"
	"github.com/simaogato/wealthflow-advisor/internal/domain"
	"github.com/simaogato/wealthflow-advisor/internal/usecase/advisor"
	"github.com/simaogato/wealthflow-advisor/pkg/logger"
)

type rootOptions struct {
	logLevel string
	jsonOut  bool
}

type recommendOptions struct {
	capital string
	risk    string
}

type projectOptions struct {
	recommendOptions
	years    int
	scenario string
	seed     uint64
	yearly   bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "advisor",
		Short: "Educational investment allocation advisor",
		Long: `advisor picks one of four fixed allocations from an amount and a risk
tier, and simulates an illustrative value path for it.

Results are illustrative only and are not financial advice.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	root.PersistentFlags().BoolVar(&opts.jsonOut, "json", false, "Print JSON instead of tables")

	root.AddCommand(
		newRecommendCmd(opts),
		newProjectCmd(opts),
		newAssetsCmd(opts),
	)

	return root
}

func newRecommendCmd(root *rootOptions) *cobra.Command {
	opts := &recommendOptions{}

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend an allocation for an amount and a risk tier",
		Example: `  advisor recommend --capital 5000 --risk low
  advisor recommend --capital "12 500,50" --risk élevée`,
		RunE: func(cmd *cobra.Command, args []string) error {
			service := newService(cmd, root)

			capital, risk, err := opts.parse()
			if err != nil {
				return err
			}

			result, err := service.Recommend(cmd.Context(), capital, risk)
			if err != nil {
				return err
			}
			summary, err := service.Summarize(result)
			if err != nil {
				return err
			}

			if root.jsonOut {
				return writeJSON(cmd.OutOrStdout(), payload.EncodeAdvisory(result, summary))
			}
			return display.RenderAdvisory(cmd.OutOrStdout(), result, summary)
		},
	}

	opts.addFlags(cmd)
	return cmd
}

func newProjectCmd(root *rootOptions) *cobra.Command {
	opts := &projectOptions{}

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Simulate the value path of the recommended allocation",
		Example: `  advisor project --capital 10000 --risk high --years 10
  advisor project --capital 10000 --risk high --years 10 --scenario crisis --seed 42 --yearly`,
		RunE: func(cmd *cobra.Command, args []string) error {
			service := newService(cmd, root)

			capital, risk, err := opts.parse()
			if err != nil {
				return err
			}
			scenario, err := domain.ParseScenario(opts.scenario)
			if err != nil {
				return err
			}

			out, err := service.Project(cmd.Context(), advisor.ProjectInput{
				Capital:  capital,
				Risk:     risk,
				Years:    opts.years,
				Scenario: scenario,
				Seed:     opts.seed,
			})
			if err != nil {
				return err
			}

			if root.jsonOut {
				return writeJSON(cmd.OutOrStdout(), payload.EncodeProjection(out))
			}
			return display.RenderProjection(cmd.OutOrStdout(), out, opts.yearly)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().IntVar(&opts.years, "years", 10, "Projection horizon in years (1-30)")
	cmd.Flags().StringVar(&opts.scenario, "scenario", "baseline", "Scenario: baseline or crisis")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Random seed, 0 for a fresh one")
	cmd.Flags().BoolVar(&opts.yearly, "yearly", false, "Only list whole-year checkpoints")
	return cmd
}

func newAssetsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "assets",
		Short: "List asset classes with their expected return and volatility",
		RunE: func(cmd *cobra.Command, args []string) error {
			assets := domain.DefaultReferenceData.List()
			if root.jsonOut {
				return writeJSON(cmd.OutOrStdout(), payload.EncodeAssets(assets))
			}
			return display.RenderAssets(cmd.OutOrStdout(), assets)
		},
	}
}

func (o *recommendOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.capital, "capital", "", "Amount to invest in euros, e.g. 5000 or \"5 000,50\"")
	cmd.Flags().StringVar(&o.risk, "risk", "low", "Risk tier: low or high")
	_ = cmd.MarkFlagRequired("capital")
}

func (o *recommendOptions) parse() (capital decimal.Decimal, risk domain.RiskTier, err error) {
	capital, err = domain.ParseCapital(o.capital)
	if err != nil {
		return capital, "", err
	}
	risk, err = domain.ParseRiskTier(o.risk)
	return capital, risk, err
}

func newService(cmd *cobra.Command, root *rootOptions) *advisor.AdvisorService {
	log := logger.New(logger.Config{Level: root.logLevel, Pretty: true, Output: cmd.ErrOrStderr()})
	return advisor.NewAdvisorService(domain.DefaultReferenceData, nil, log, 0)
}

func writeJSON(w io.Writer, doc map[string]interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
