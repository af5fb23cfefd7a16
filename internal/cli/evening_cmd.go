package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/cadence/internal/contract"
)

func newEveningCmd(app *App) *cobra.Command {
	var completed, total int

	cmd := &cobra.Command{
		Use:   "evening",
		Short: "Print the end-of-day summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewEveningRequest()
			req.Completed = completed
			req.Total = total

			resp, err := app.Briefings.Evening(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Println(resp.Message)
			return nil
		},
	}

	cmd.Flags().IntVar(&completed, "done", 0, "Tasks completed today")
	cmd.Flags().IntVar(&total, "total", 0, "Tasks planned today")

	return cmd
}
