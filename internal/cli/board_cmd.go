package cli

import (
	"github.com/spf13/cobra"
)

func newBoardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Show the director board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := app.Dashboard.Board().List(cmd.Context())
			if err != nil {
				return err
			}
			return app.emit(cmd, items, boardHeaders, boardRows(items))
		},
	}
}
