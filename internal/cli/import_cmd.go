package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/cadence/internal/cli/formatter"
	"github.com/alexanderramin/cadence/internal/contract"
)

func newImportCmd(app *App) *cobra.Command {
	var rangeDays int

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Refresh events from all configured calendar sources",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewImportRequest()
			if cmd.Flags().Changed("range") {
				req.RangeDays = &rangeDays
			}

			resp, err := app.Import.Import(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatImport(resp))
			return nil
		},
	}

	cmd.Flags().IntVar(&rangeDays, "range", 30, "Days of history and future to import")

	return cmd
}
