package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/cadence/internal/cli/formatter"
	"github.com/alexanderramin/cadence/internal/contract"
)

func newSuggestCmd(app *App) *cobra.Command {
	var phase string

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Show suggestions based on the behavioral profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewSuggestRequest()
			req.Phase = phase

			resp, err := app.Briefings.Suggest(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatSuggestions(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&phase, "phase", "week_two", "Observation phase: day_one, week_one or week_two")

	return cmd
}
