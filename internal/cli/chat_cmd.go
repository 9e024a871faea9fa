package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newChatCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Drive the intake chat",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "start CLIENT_ID TOKEN",
			Short: "Open a session from a pulse link",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				start, err := app.Dashboard.Chat().StartFromLink(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				if !app.tables() {
					return app.emit(cmd, start, nil, nil)
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "session %s\n\n%s\n", start.SessionID, start.FirstMessage)
				return err
			},
		},
		&cobra.Command{
			Use:   "send SESSION_ID MESSAGE...",
			Short: "Send one message",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				reply, err := app.Dashboard.Chat().SendMessage(cmd.Context(), args[0], strings.Join(args[1:], " "))
				if err != nil {
					return err
				}
				if !app.tables() {
					return app.emit(cmd, reply, nil, nil)
				}
				out := reply.AssistantMessage + "\n"
				if reply.Done {
					out += "\n(session finished)\n"
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), out)
				return err
			},
		},
	)

	return cmd
}
