package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/cadence/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Import    service.ImportService
	Profiles  service.ProfileService
	Briefings service.BriefingService
}

// NewRootCmd creates the top-level "cadence" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "cadence",
		Short: "Calendar behavior analysis and daily briefings",
	}

	root.AddCommand(
		newImportCmd(app),
		newAnalyzeCmd(app),
		newStatusCmd(app),
		newTodayCmd(app),
		newBriefingCmd(app),
		newSuggestCmd(app),
		newEveningCmd(app),
	)

	return root
}
