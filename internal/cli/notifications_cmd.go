package cli

import (
	model "github.com/okian/pulss/internal/domain/model"
	"github.com/spf13/cobra"
)

func newNotificationsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"inbox"},
		Short:   "Staff notifications",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list USER",
			Short: "List a user's notifications, newest first",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ns, err := app.Dashboard.Notifications().List(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return app.emit(cmd, ns, notificationHeaders, notificationRows(ns))
			},
		},
		newNotificationsSendCmd(app),
		&cobra.Command{
			Use:   "read NOTIFICATION_ID",
			Short: "Mark a notification read",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := app.Dashboard.Notifications().MarkRead(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return app.emit(cmd, n, notificationHeaders, notificationRows([]model.Notification{n}))
			},
		},
	)

	return cmd
}

func newNotificationsSendCmd(app *App) *cobra.Command {
	var in model.NotificationInput

	cmd := &cobra.Command{
		Use:   "send USER",
		Short: "Notify a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.Dashboard.Notifications().Create(cmd.Context(), args[0], in)
			if err != nil {
				return err
			}
			return app.emit(cmd, n, notificationHeaders, notificationRows([]model.Notification{n}))
		},
	}

	cmd.Flags().StringVar(&in.Title, "title", "", "Title (required)")
	cmd.Flags().StringVar(&in.Body, "body", "", "Message body")

	return cmd
}
