package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/cadence/internal/cli/formatter"
	"github.com/alexanderramin/cadence/internal/contract"
)

func newAnalyzeCmd(app *App) *cobra.Command {
	var rangeDays int

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Build the behavioral profile from stored events",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewAnalyzeRequest()
			if cmd.Flags().Changed("range") {
				req.RangeDays = &rangeDays
			}

			resp, err := app.Profiles.Analyze(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatProfile(&resp.Profile))
			return nil
		},
	}

	cmd.Flags().IntVar(&rangeDays, "range", 30, "Days of history to analyze")

	return cmd
}
