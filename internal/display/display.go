// Package display renders advisor results for terminals.
// Amounts follow the French convention: narrow no-break space between
// thousands, comma decimal separator, trailing euro sign.
package display

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/simaogato/wealthflow-advisor/internal/domain"
	"github.com/simaogato/wealthflow-advisor/internal/usecase/advisor"
)

const (
	amountFormat  = "#\u202f###,##"
	percentFormat = "#,##"
)

// FormatEUR formats an amount as "12 500,50 €"
func FormatEUR(amount decimal.Decimal) string {
	return humanize.FormatFloat(amountFormat, amount.Round(2).InexactFloat64()) + " €"
}

// FormatPercent formats a fraction as "5,85 %"
func FormatPercent(fraction float64) string {
	return humanize.FormatFloat(percentFormat, fraction*100) + " %"
}

// RenderAdvisory writes the recommended profile and its allocation table
func RenderAdvisory(w io.Writer, result *domain.AdvisoryResult, summary *advisor.Summary) error {
	profile, ok := domain.GetProfile(result.Profile)
	if !ok {
		return fmt.Errorf("%w: unknown profile %s", domain.ErrInvalidInput, result.Profile)
	}

	fmt.Fprintf(w, "Profil : %s (%s)\n", profile.Label, profile.Name)
	fmt.Fprintf(w, "Capital : %s\n", FormatEUR(result.Capital))
	fmt.Fprintf(w, "%s\n\n", result.Justification)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Classe\tPart\tMontant\t")
	for _, a := range summary.Amounts {
		if a.Percent.IsZero() {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s %%\t%s\t\n", a.Info.Label, a.Percent.String(), FormatEUR(a.Amount))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nRendement attendu : %s\n", FormatPercent(summary.WeightedReturn))
	fmt.Fprintf(w, "Volatilité : %s\n", FormatPercent(summary.WeightedVolatility))
	return nil
}

// RenderProjection writes the projection summary and its value table
// With yearly set only whole-year checkpoints are listed
func RenderProjection(w io.Writer, out *advisor.ProjectOutput, yearly bool) error {
	p := out.Projection

	fmt.Fprintf(w, "Scénario : %s, %d ans, profil %s (graine %d)\n", p.Scenario, p.Years, out.Advisory.Profile, out.Seed)
	fmt.Fprintf(w, "Valeur finale : %s (gain %s)\n", FormatEUR(p.Stats.FinalValue), FormatEUR(p.Stats.Gain))
	fmt.Fprintf(w, "Perte maximale : %s, volatilité réalisée : %s\n\n",
		FormatPercent(p.Stats.MaxDrawdown), FormatPercent(p.Stats.RealizedVolatility))

	points := p.Points
	if yearly {
		points = p.Yearly
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Année\tValeur\tRéférence\t")
	for _, pt := range points {
		fmt.Fprintf(tw, "%s\t%s\t%s\t\n",
			humanize.FormatFloat("#,#", pt.YearFraction), FormatEUR(pt.Value), FormatEUR(pt.Baseline))
	}
	return tw.Flush()
}

// RenderAssets writes the reference table
func RenderAssets(w io.Writer, infos []domain.AssetInfo) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Classe\tRendement\tVolatilité\tDescription")
	for _, info := range infos {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			info.Label, FormatPercent(info.ExpectedAnnualReturn), FormatPercent(info.AnnualVolatility), info.Description)
	}
	return tw.Flush()
}
