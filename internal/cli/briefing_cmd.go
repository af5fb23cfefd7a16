package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/cadence/internal/cli/formatter"
	"github.com/alexanderramin/cadence/internal/contract"
	"github.com/alexanderramin/cadence/internal/domain"
)

func newBriefingCmd(app *App) *cobra.Command {
	var tone string

	cmd := &cobra.Command{
		Use:   "briefing",
		Short: "Print the morning briefing",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewBriefingRequest()
			switch tone {
			case "", "auto":
			case "energetic", "gentle", "supportive":
				req.Tone = domain.Tone(tone)
			default:
				return fmt.Errorf("unknown tone %q (energetic, gentle, supportive)", tone)
			}

			resp, err := app.Briefings.MorningBriefing(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatBriefing(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&tone, "tone", "auto", "Override the message tone")

	return cmd
}
