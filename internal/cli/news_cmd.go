package cli

import (
	"fmt"

	model "github.com/okian/pulss/internal/domain/model"
	"github.com/spf13/cobra"
)

func newNewsCmd(app *App) *cobra.Command {
	var f model.NewsFilter
	var clientID string

	cmd := &cobra.Command{
		Use:   "news",
		Short: "Show the SNS news feed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			var (
				items []model.SnsNewsItem
				err   error
			)
			if clientID != "" {
				c, gerr := app.Dashboard.Clients().Get(ctx, clientID)
				if gerr != nil {
					return gerr
				}
				if c == nil {
					return fmt.Errorf("client not found: %q", clientID)
				}
				items, err = app.Dashboard.News().ForClient(ctx, *c, f.Limit)
			} else {
				items, err = app.Dashboard.News().GetDefault(ctx, f)
			}
			if err != nil {
				return err
			}
			return app.emit(cmd, items, newsHeaders, newsRows(items))
		},
	}

	cmd.Flags().StringVar(&f.Platform, "platform", "", "instagram, tiktok, youtube, x, other or all")
	cmd.Flags().StringVar(&f.Industry, "industry", "", "food, beauty, hotel, other or all")
	cmd.Flags().IntVar(&f.Limit, "limit", 0, "Maximum items (default depends on mode)")
	cmd.Flags().StringVar(&clientID, "client", "", "Show news for this client's industry")

	return cmd
}
