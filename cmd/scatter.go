package cmd

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/launchdash/internal/cli"
	"github.com/theirongolddev/launchdash/internal/model"
	"github.com/theirongolddev/launchdash/internal/pipeline"
	"github.com/theirongolddev/launchdash/internal/render"
)

var (
	flagLow  float64
	flagHigh float64
)

var scatterCmd = &cobra.Command{
	Use:   "scatter",
	Short: "Launches with payload strictly inside a range, by outcome and booster",
	RunE:  runScatter,
}

func init() {
	scatterCmd.Flags().StringVar(&flagSite, "site", model.AllSites, "Launch site, or ALL")
	scatterCmd.Flags().Float64Var(&flagLow, "low", math.NaN(), "Exclusive lower payload bound in kg (default dataset minimum)")
	scatterCmd.Flags().Float64Var(&flagHigh, "high", math.NaN(), "Exclusive upper payload bound in kg (default dataset maximum)")
	scatterCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the figure as JSON")
	scatterCmd.Flags().StringVar(&flagSVG, "svg", "", "Write the chart as SVG to this file")
	rootCmd.AddCommand(scatterCmd)
}

func runScatter(_ *cobra.Command, _ []string) error {
	result, err := loadTable(showProgress(), logger)
	if err != nil {
		return err
	}
	t := result.Table

	sel := t.FullSelection()
	sel.Site = flagSite
	if !math.IsNaN(flagLow) {
		sel.Payload.Low = flagLow
	}
	if !math.IsNaN(flagHigh) {
		sel.Payload.High = flagHigh
	}
	if sel.Payload.Low > sel.Payload.High {
		return fmt.Errorf("--low %v is above --high %v", sel.Payload.Low, sel.Payload.High)
	}

	fig := pipeline.DeriveScatter(t, sel)

	if flagSVG != "" {
		if err := writeSVG(flagSVG, func(f *os.File) error {
			return render.Scatter(f, fig, chartOptions())
		}); err != nil {
			return err
		}
	}
	if flagJSON {
		return printJSON(fig)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fig.Title))
	fmt.Printf("\n  Payload strictly between %s\n\n", cli.FormatRange(fig.Payload))
	if fig.Empty() {
		fmt.Printf("  %s\n\n", render.EmptyMessage)
		return nil
	}

	rows := make([][]string, 0, len(fig.Points))
	successes := 0
	for _, p := range fig.Points {
		rows = append(rows, []string{
			p.Site,
			cli.FormatMass(p.PayloadKg),
			p.BoosterCategory,
			cli.FormatClass(p.Class),
		})
		successes += p.Class
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Site", "Payload", "Booster", "Class"},
		Rows:    rows,
	}))
	fmt.Printf("\n  %s launches, %s successful\n\n",
		cli.FormatNumber(len(fig.Points)), cli.FormatShare(successes, len(fig.Points)))
	return nil
}
