package cli

import (
	model "github.com/okian/pulss/internal/domain/model"
	"github.com/spf13/cobra"
)

func newLeadsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leads",
		Short: "Manage the sales pipeline",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List leads, most recently updated first",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				ls, err := app.Dashboard.Leads().List(cmd.Context())
				if err != nil {
					return err
				}
				return app.emit(cmd, ls, leadHeaders, leadRows(ls))
			},
		},
		newLeadsAddCmd(app),
		newLeadsUpdateCmd(app),
		&cobra.Command{
			Use:   "contacts LEAD_ID",
			Short: "Show a lead's contact log",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				cs, err := app.Dashboard.Leads().Contacts(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return app.emit(cmd, cs, contactHeaders, contactRows(cs))
			},
		},
		newLeadsLogCmd(app),
	)

	return cmd
}

func newLeadsAddCmd(app *App) *cobra.Command {
	var in model.CreateLead
	var status string
	var score, mrr int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a lead",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in.Status = model.LeadStatus(status)
			if cmd.Flags().Changed("score") {
				in.Score = &score
			}
			if cmd.Flags().Changed("mrr") {
				in.ExpectedMRR = &mrr
			}
			l, err := app.Dashboard.Leads().Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			return app.emit(cmd, l, leadHeaders, leadRows([]model.Lead{l}))
		},
	}

	cmd.Flags().StringVar(&in.CompanyName, "company", "", "Company name (required)")
	cmd.Flags().StringVar(&in.Industry, "industry", "", "Industry")
	cmd.Flags().StringVar(&in.Source, "source", "", "Where the lead came from")
	cmd.Flags().StringVar(&in.Area, "area", "", "Area")
	cmd.Flags().StringVar(&in.Owner, "owner", "", "Sales owner")
	cmd.Flags().StringVar(&status, "status", "", "Pipeline status; defaults to new")
	cmd.Flags().IntVar(&score, "score", 0, "Lead score")
	cmd.Flags().IntVar(&mrr, "mrr", 0, "Expected monthly revenue in yen")
	cmd.Flags().StringVar(&in.Memo, "memo", "", "Memo")
	_ = cmd.MarkFlagRequired("company")

	return cmd
}

func newLeadsUpdateCmd(app *App) *cobra.Command {
	var company, owner, status, memo string
	var score, mrr int

	cmd := &cobra.Command{
		Use:   "update LEAD_ID",
		Short: "Change fields of a lead; only flags given are sent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch model.LeadPatch
			flags := cmd.Flags()
			if flags.Changed("company") {
				patch.CompanyName = &company
			}
			if flags.Changed("owner") {
				patch.Owner = &owner
			}
			if flags.Changed("status") {
				s := model.LeadStatus(status)
				patch.Status = &s
			}
			if flags.Changed("score") {
				patch.Score = &score
			}
			if flags.Changed("mrr") {
				patch.ExpectedMRR = &mrr
			}
			if flags.Changed("memo") {
				patch.Memo = &memo
			}

			l, err := app.Dashboard.Leads().Update(cmd.Context(), args[0], patch)
			if err != nil {
				return err
			}
			return app.emit(cmd, l, leadHeaders, leadRows([]model.Lead{l}))
		},
	}

	cmd.Flags().StringVar(&company, "company", "", "Company name")
	cmd.Flags().StringVar(&owner, "owner", "", "Sales owner")
	cmd.Flags().StringVar(&status, "status", "", "new, calling, meeting_scheduled, meeting_done, proposal, following, lost or won")
	cmd.Flags().IntVar(&score, "score", 0, "Lead score")
	cmd.Flags().IntVar(&mrr, "mrr", 0, "Expected monthly revenue in yen")
	cmd.Flags().StringVar(&memo, "memo", "", "Memo")

	return cmd
}

func newLeadsLogCmd(app *App) *cobra.Command {
	var in model.CreateContact
	var at string

	cmd := &cobra.Command{
		Use:   "log LEAD_ID",
		Short: "Record a touchpoint with a lead",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			when, err := parseWhen("contact time", at)
			if err != nil {
				return err
			}
			in.ContactAt = when
			c, err := app.Dashboard.Leads().AddContact(cmd.Context(), args[0], in)
			if err != nil {
				return err
			}
			return app.emit(cmd, c, contactHeaders, contactRows([]model.ContactLog{c}))
		},
	}

	cmd.Flags().StringVar(&in.Channel, "channel", "", "call, email, meeting or chat; defaults to call")
	cmd.Flags().StringVar(&in.Content, "content", "", "What was discussed (required)")
	cmd.Flags().StringVar(&in.Actor, "actor", "", "Who made contact")
	cmd.Flags().StringVar(&at, "at", "", "When, YYYY-MM-DD or RFC 3339; defaults to now")

	return cmd
}
