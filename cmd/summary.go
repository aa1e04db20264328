package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/launchdash/internal/cli"
	"github.com/theirongolddev/launchdash/internal/model"
	"github.com/theirongolddev/launchdash/internal/pipeline"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Launch outcomes per site",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	result, err := loadTable(showProgress(), logger)
	if err != nil {
		return err
	}
	t := result.Table

	fmt.Println()
	fmt.Println(cli.RenderTitle("SPACEX LAUNCHES  " + settings.Data.File))
	fmt.Println()

	sites := pipeline.SummarizeSites(t.Records())
	rows := make([][]string, 0, len(sites)+2)
	for _, s := range sites {
		rows = append(rows, []string{
			s.Site,
			cli.FormatNumber(s.Launches),
			cli.FormatNumber(s.Successes),
			cli.FormatNumber(s.Failures),
			cli.FormatRange(model.PayloadRange{Low: s.MinPayload, High: s.MaxPayload}),
			cli.FormatPercent(s.SuccessRate()),
		})
	}
	total := pipeline.TotalSummary(sites)
	rows = append(rows, []string{"---"}, []string{
		total.Site,
		cli.FormatNumber(total.Launches),
		cli.FormatNumber(total.Successes),
		cli.FormatNumber(total.Failures),
		cli.FormatRange(model.PayloadRange{Low: total.MinPayload, High: total.MaxPayload}),
		cli.FormatPercent(total.SuccessRate()),
	})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Site", "Launches", "Success", "Failed", "Payload", "Rate"},
		Rows:    rows,
	}))
	fmt.Printf("\n  Payload range: %s\n\n", cli.FormatRange(t.PayloadBounds()))
	return nil
}
