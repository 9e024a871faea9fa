package cli

import (
	"fmt"
	"strings"

	model "github.com/okian/pulss/internal/domain/model"
	"github.com/spf13/cobra"
)

func newClientsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clients",
		Short: "Manage clients",
	}

	cmd.AddCommand(
		newClientsListCmd(app),
		newClientsGetCmd(app),
		newClientsAddCmd(app),
		newClientsUpdateCmd(app),
		newClientsToggleCmd(app),
		newClientsPulseLinkCmd(app),
		newClientsSubmitPulseCmd(app),
	)

	return cmd
}

func newClientsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List clients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cs, err := app.Dashboard.Clients().List(cmd.Context())
			if err != nil {
				return err
			}
			return app.emit(cmd, cs, clientHeaders, clientRows(cs))
		},
	}
}

func newClientsGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get CLIENT_ID",
		Short: "Show one client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Dashboard.Clients().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if c == nil {
				return fmt.Errorf("client not found: %q", args[0])
			}
			return app.emit(cmd, c, clientHeaders, clientRows([]model.Client{*c}))
		},
	}
}

func newClientsAddCmd(app *App) *cobra.Command {
	var in model.CreateClient
	var status, phase string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in.Status = model.ClientStatus(status)
			in.Phase = model.ClientPhase(phase)
			c, err := app.Dashboard.Clients().Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			return app.emit(cmd, c, clientHeaders, clientRows([]model.Client{c}))
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "Client name")
	cmd.Flags().StringVar(&in.Industry, "industry", "", "Industry, e.g. 飲食")
	cmd.Flags().StringVar(&status, "status", string(model.StatusPreContract), "pre_contract or contracted")
	cmd.Flags().StringVar(&phase, "phase", "", "Pipeline phase (default hearing)")
	cmd.Flags().StringVar(&in.SalesOwner, "sales-owner", "", "Sales owner")
	cmd.Flags().StringVar(&in.DirectorOwner, "director-owner", "", "Director owner")
	cmd.Flags().StringVar(&in.SlackURL, "slack-url", "", "Slack channel URL")
	cmd.Flags().StringVar(&in.Memo, "memo", "", "Free-form memo")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("industry")

	return cmd
}

func newClientsUpdateCmd(app *App) *cobra.Command {
	var name, industry, status, phase, salesOwner, directorOwner, slackURL, memo string
	var touch bool

	cmd := &cobra.Command{
		Use:   "update CLIENT_ID",
		Short: "Change fields of a client; only flags given are sent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch model.ClientPatch
			set := func(flag string, dst **string, v string) {
				if cmd.Flags().Changed(flag) {
					*dst = &v
				}
			}
			set("name", &patch.Name, name)
			set("industry", &patch.Industry, industry)
			set("sales-owner", &patch.SalesOwner, salesOwner)
			set("director-owner", &patch.DirectorOwner, directorOwner)
			set("slack-url", &patch.SlackURL, slackURL)
			set("memo", &patch.Memo, memo)
			if cmd.Flags().Changed("status") {
				s := model.ClientStatus(status)
				patch.Status = &s
			}
			if cmd.Flags().Changed("phase") {
				p := model.ClientPhase(phase)
				patch.Phase = &p
			}
			if touch {
				now := model.Now()
				patch.LastContactAt = &now
			}

			c, err := app.Dashboard.Clients().Update(cmd.Context(), args[0], patch)
			if err != nil {
				return err
			}
			return app.emit(cmd, c, clientHeaders, clientRows([]model.Client{c}))
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Client name")
	cmd.Flags().StringVar(&industry, "industry", "", "Industry")
	cmd.Flags().StringVar(&status, "status", "", "pre_contract or contracted")
	cmd.Flags().StringVar(&phase, "phase", "", "Pipeline phase")
	cmd.Flags().StringVar(&salesOwner, "sales-owner", "", "Sales owner")
	cmd.Flags().StringVar(&directorOwner, "director-owner", "", "Director owner")
	cmd.Flags().StringVar(&slackURL, "slack-url", "", "Slack channel URL")
	cmd.Flags().StringVar(&memo, "memo", "", "Free-form memo")
	cmd.Flags().BoolVar(&touch, "touch", false, "Record a contact now")

	return cmd
}

func newClientsToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle-status CLIENT_ID",
		Short: "Flip between pre_contract and contracted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Dashboard.Clients().ToggleStatus(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return app.emit(cmd, c, clientHeaders, clientRows([]model.Client{c}))
		},
	}
}

func newClientsPulseLinkCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pulse-link CLIENT_ID",
		Short: "Generate a shareable intake link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			link, err := app.Dashboard.Clients().GeneratePulseURL(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if app.tables() {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), link)
				return err
			}
			return app.emit(cmd, model.PulseLink{URL: link}, nil, nil)
		},
	}
}

func newClientsSubmitPulseCmd(app *App) *cobra.Command {
	var in model.PulseAnswers
	var refs string

	cmd := &cobra.Command{
		Use:   "submit-pulse",
		Short: "Submit intake answers for a link token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, r := range strings.Split(refs, ",") {
				if r = strings.TrimSpace(r); r != "" {
					in.ReferenceAccounts = append(in.ReferenceAccounts, r)
				}
			}
			resp, err := app.Dashboard.Clients().SubmitPulseResponse(cmd.Context(), in)
			if err != nil {
				return err
			}
			return app.emit(cmd, resp, []string{"ID", "CLIENT", "SUBMITTED"},
				[][]string{{resp.ID, resp.ClientID, fmtTime(&resp.SubmittedAt)}})
		},
	}

	cmd.Flags().StringVar(&in.Token, "token", "", "Token from the pulse link")
	cmd.Flags().StringVar(&in.Problem, "problem", "", "Current problem")
	cmd.Flags().StringVar(&in.CurrentSNS, "current-sns", "", "Current SNS activity")
	cmd.Flags().StringVar(&in.Target, "target", "", "Target audience")
	cmd.Flags().StringVar(&in.ProductSummary, "product", "", "Product summary")
	cmd.Flags().StringVar(&in.StrengthsUSP, "strengths", "", "Strengths and USP")
	cmd.Flags().StringVar(&in.BrandStory, "brand-story", "", "Brand story")
	cmd.Flags().StringVar(&refs, "references", "", "Comma-separated reference accounts")
	_ = cmd.MarkFlagRequired("token")

	return cmd
}
