package cli

import (
	model "github.com/okian/pulss/internal/domain/model"
	"github.com/spf13/cobra"
)

func newProposalsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "proposals",
		Short: "Manage proposals",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list CLIENT_ID",
			Short: "List a client's proposals",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ps, err := app.Dashboard.Proposals().List(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return app.emit(cmd, ps, proposalHeaders, proposalRows(ps))
			},
		},
		newProposalsAddCmd(app),
		newProposalsUpdateCmd(app),
	)

	return cmd
}

func newProposalsAddCmd(app *App) *cobra.Command {
	var in model.CreateProposal
	var status, sent, followDue string
	var amount int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Draft a proposal for a client or a lead",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if in.SentAt, err = parseWhen("sent date", sent); err != nil {
				return err
			}
			if in.FollowDueAt, err = parseWhen("follow-up date", followDue); err != nil {
				return err
			}
			if cmd.Flags().Changed("amount") {
				in.Amount = &amount
			}
			in.Status = model.ProposalStatus(status)

			p, err := app.Dashboard.Proposals().Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			return app.emit(cmd, p, proposalHeaders, proposalRows([]model.Proposal{p}))
		},
	}

	cmd.Flags().StringVar(&in.ClientID, "client", "", "Client id")
	cmd.Flags().StringVar(&in.LeadID, "lead", "", "Lead id")
	cmd.Flags().StringVar(&in.Title, "title", "", "Title (required)")
	cmd.Flags().IntVar(&amount, "amount", 0, "Amount in yen")
	cmd.Flags().StringVar(&status, "status", "", "draft, sent, following, won or lost; defaults to draft")
	cmd.Flags().StringVar(&sent, "sent", "", "Sent date, YYYY-MM-DD or RFC 3339")
	cmd.Flags().StringVar(&followDue, "follow-due", "", "Follow-up date, YYYY-MM-DD or RFC 3339")
	cmd.Flags().StringVar(&in.Memo, "memo", "", "Memo")
	cmd.Flags().StringVar(&in.FileURL, "file-url", "", "Link to the proposal document")

	return cmd
}

func newProposalsUpdateCmd(app *App) *cobra.Command {
	var title, status, sent, followDue, memo string
	var amount int

	cmd := &cobra.Command{
		Use:   "update PROPOSAL_ID",
		Short: "Change fields of a proposal; only flags given are sent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch model.ProposalPatch
			var err error
			flags := cmd.Flags()
			if flags.Changed("title") {
				patch.Title = &title
			}
			if flags.Changed("amount") {
				patch.Amount = &amount
			}
			if flags.Changed("status") {
				s := model.ProposalStatus(status)
				patch.Status = &s
			}
			if flags.Changed("sent") {
				if patch.SentAt, err = parseWhen("sent date", sent); err != nil {
					return err
				}
			}
			if flags.Changed("follow-due") {
				if patch.FollowDueAt, err = parseWhen("follow-up date", followDue); err != nil {
					return err
				}
			}
			if flags.Changed("memo") {
				patch.Memo = &memo
			}

			p, err := app.Dashboard.Proposals().Update(cmd.Context(), args[0], patch)
			if err != nil {
				return err
			}
			return app.emit(cmd, p, proposalHeaders, proposalRows([]model.Proposal{p}))
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Title")
	cmd.Flags().IntVar(&amount, "amount", 0, "Amount in yen")
	cmd.Flags().StringVar(&status, "status", "", "draft, sent, following, won or lost")
	cmd.Flags().StringVar(&sent, "sent", "", "Sent date, YYYY-MM-DD or RFC 3339")
	cmd.Flags().StringVar(&followDue, "follow-due", "", "Follow-up date, YYYY-MM-DD or RFC 3339")
	cmd.Flags().StringVar(&memo, "memo", "", "Memo")

	return cmd
}

func newContractsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contracts",
		Short: "Manage client contracts",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list CLIENT_ID",
			Short: "List a client's contracts",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				cs, err := app.Dashboard.Contracts().List(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return app.emit(cmd, cs, contractHeaders, contractRows(cs))
			},
		},
		newContractsAddCmd(app),
	)

	return cmd
}

func newContractsAddCmd(app *App) *cobra.Command {
	var in model.CreateContract
	var start, end string
	var fee int

	cmd := &cobra.Command{
		Use:   "add CLIENT_ID",
		Short: "Record a contract",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if in.StartDate, err = parseWhen("start date", start); err != nil {
				return err
			}
			if in.EndDate, err = parseWhen("end date", end); err != nil {
				return err
			}
			if cmd.Flags().Changed("fee") {
				in.MonthlyFee = &fee
			}
			in.ClientID = args[0]

			c, err := app.Dashboard.Contracts().Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			return app.emit(cmd, c, contractHeaders, contractRows([]model.Contract{c}))
		},
	}

	cmd.Flags().StringVar(&in.PlanName, "plan", "", "Plan name")
	cmd.Flags().IntVar(&fee, "fee", 0, "Monthly fee in yen")
	cmd.Flags().StringVar(&start, "start", "", "Start date, YYYY-MM-DD")
	cmd.Flags().StringVar(&end, "end", "", "End date, YYYY-MM-DD")
	cmd.Flags().StringVar(&in.PaymentTerms, "terms", "", "Payment terms, e.g. monthly")
	cmd.Flags().StringVar(&in.FileURL, "file-url", "", "Link to the signed contract")

	return cmd
}
