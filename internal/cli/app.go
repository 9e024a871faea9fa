// Package cli implements pulssctl, a command line front end to the dashboard
// services.
package cli

import (
	"fmt"
	"net/http"

	service "github.com/okian/pulss/internal/app"
	"github.com/spf13/cobra"
)

// Output formats accepted by --output.
const (
	OutputAuto  = "auto"
	OutputJSON  = "json"
	OutputTable = "table"
)

// App holds what the commands call.
type App struct {
	Dashboard *service.Dashboard

	// IsInteractive reports whether stdout is a terminal. Auto output
	// renders tables for terminals and JSON otherwise.
	IsInteractive func() bool

	// HTTPClient is used by smoke; nil means a client with the smoke timeout.
	HTTPClient *http.Client

	Output string
}

// NewRootCmd creates the top-level "pulssctl" command and registers all
// subcommands against app.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "pulssctl",
		Short:         "Pulss CRM dashboard from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch app.Output {
			case OutputAuto, OutputJSON, OutputTable:
				return nil
			default:
				return fmt.Errorf("unknown output format %q (want auto, json or table)", app.Output)
			}
		},
	}
	if app.Output == "" {
		app.Output = OutputAuto
	}
	root.PersistentFlags().StringVarP(&app.Output, "output", "o", app.Output, "Output format: auto, json or table")

	root.AddCommand(
		newClientsCmd(app),
		newTasksCmd(app),
		newSchedulesCmd(app),
		newNewsCmd(app),
		newSuggestionsCmd(app),
		newBoardCmd(app),
		newLeadsCmd(app),
		newProposalsCmd(app),
		newContractsCmd(app),
		newNotificationsCmd(app),
		newChatCmd(app),
		newPingCmd(app),
		newSmokeCmd(app),
	)

	return root
}

func (a *App) tables() bool {
	switch a.Output {
	case OutputTable:
		return true
	case OutputJSON:
		return false
	}
	return a.IsInteractive != nil && a.IsInteractive()
}
