package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mouazan/thesisflow/internal/service"
)

// App holds the service interfaces the CLI commands run against.
type App struct {
	Planning service.PlanningService
	Status   service.StatusService

	// IsInteractive reports whether stdin is a terminal. Interactive
	// commands fall back to flags-only behavior when it returns false.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "thesisflow" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:          "thesisflow",
		Short:        "Thesis planner with day-level scheduling",
		SilenceUsage: true,
	}

	// Accept snake_case spellings of multi-word flags.
	root.SetGlobalNormalizationFunc(normalizeFlagName)

	root.AddCommand(
		newNewCmd(app),
		newReplanCmd(app),
		newTodayCmd(app),
		newStatusCmd(app),
		newDoneCmd(app),
	)

	return root
}

func normalizeFlagName(f *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}
