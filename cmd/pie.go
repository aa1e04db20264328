package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/launchdash/internal/cli"
	"github.com/theirongolddev/launchdash/internal/model"
	"github.com/theirongolddev/launchdash/internal/pipeline"
	"github.com/theirongolddev/launchdash/internal/render"
	"github.com/theirongolddev/launchdash/internal/theme"
)

var (
	flagSite string
	flagJSON bool
	flagSVG  string
)

var pieCmd = &cobra.Command{
	Use:   "pie",
	Short: "Success counts by site, or success vs. failure for one site",
	RunE:  runPie,
}

func init() {
	pieCmd.Flags().StringVar(&flagSite, "site", model.AllSites, "Launch site, or ALL")
	pieCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the figure as JSON")
	pieCmd.Flags().StringVar(&flagSVG, "svg", "", "Write the chart as SVG to this file")
	rootCmd.AddCommand(pieCmd)
}

func runPie(_ *cobra.Command, _ []string) error {
	result, err := loadTable(showProgress(), logger)
	if err != nil {
		return err
	}

	fig := pipeline.DerivePie(result.Table, flagSite)

	if flagSVG != "" {
		if err := writeSVG(flagSVG, func(f *os.File) error {
			return render.Pie(f, fig, chartOptions())
		}); err != nil {
			return err
		}
	}
	if flagJSON {
		return printJSON(fig)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fig.Title))
	fmt.Println()
	if fig.Empty() {
		fmt.Printf("  %s\n\n", render.EmptyMessage)
		return nil
	}

	total := fig.Total()
	maxVal, labelW := 0, 0
	for _, s := range fig.Slices {
		maxVal = max(maxVal, s.Value)
		labelW = max(labelW, len(s.Label))
	}
	for i, s := range fig.Slices {
		bar := cli.RenderShareBar(s.Label, labelW, float64(s.Value), float64(maxVal), 30, theme.Active.SeriesColor(i))
		fmt.Printf("%s  %s  %s\n", bar, cli.FormatNumber(s.Value), cli.FormatShare(s.Value, total))
	}
	fmt.Println()
	return nil
}

func chartOptions() render.Options {
	return render.Options{
		Width:  settings.Dashboard.ChartWidth,
		Height: settings.Dashboard.ChartHeight,
		Theme:  theme.Active,
	}
}

// writeSVG creates path and hands it to draw.
func writeSVG(path string, draw func(*os.File) error) error {
	f, err := os.Create(path) //nolint:gosec // output path is chosen by the local user
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := draw(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Wrote %s\n", path)
	}
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
