package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/cadence/internal/cli/formatter"
	"github.com/alexanderramin/cadence/internal/contract"
)

func newTodayCmd(app *App) *cobra.Command {
	var daysAhead int

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Analyze today's schedule and burnout risk",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewTodayRequest()
			req.AlertDaysAhead = daysAhead

			resp, err := app.Briefings.Today(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatToday(resp))
			return nil
		},
	}

	cmd.Flags().IntVar(&daysAhead, "alerts", 7, "Days ahead to scan for special events")

	return cmd
}
