package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/cadence/internal/cli/formatter"
	"github.com/alexanderramin/cadence/internal/repository"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the stored behavioral profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := app.Profiles.GetProfile(context.Background())
			if errors.Is(err, repository.ErrNotFound) {
				fmt.Println("No profile yet. Run `cadence import` and `cadence analyze` first.")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatProfile(profile))
			return nil
		},
	}
}
