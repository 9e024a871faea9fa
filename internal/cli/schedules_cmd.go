package cli

import (
	"fmt"

	model "github.com/okian/pulss/internal/domain/model"
	"github.com/spf13/cobra"
)

func newSchedulesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "schedules",
		Aliases: []string{"schedule"},
		Short:   "Manage team calendar events",
	}

	cmd.AddCommand(
		newSchedulesListCmd(app),
		newSchedulesAddCmd(app),
		newSchedulesUpdateCmd(app),
		newSchedulesDeleteCmd(app),
	)

	return cmd
}

func newSchedulesListCmd(app *App) *cobra.Command {
	var q model.ScheduleQuery

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events; empty while the API is down",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			evs, err := app.Dashboard.Schedules().List(cmd.Context(), q)
			if err != nil {
				return err
			}
			return app.emit(cmd, evs, scheduleHeaders, scheduleRows(evs))
		},
	}

	cmd.Flags().StringVar(&q.Date, "date", "", "Day to list, YYYY-MM-DD")
	cmd.Flags().StringVar(&q.Team, "team", "", "sales, director or creative")

	return cmd
}

// scheduleFlags binds the event input flags shared by add and update.
type scheduleFlags struct {
	title, start, end, typ, team, description string
}

func (f *scheduleFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "Event title")
	cmd.Flags().StringVar(&f.start, "start", "", "Start, RFC 3339")
	cmd.Flags().StringVar(&f.end, "end", "", "End, RFC 3339")
	cmd.Flags().StringVar(&f.typ, "type", string(model.EventMeeting), "meeting, deadline or other")
	cmd.Flags().StringVar(&f.team, "team", "", "sales, director or creative")
	cmd.Flags().StringVar(&f.description, "description", "", "Description")
}

func (f *scheduleFlags) input() (model.ScheduleInput, error) {
	start, err := model.ParseTime(f.start)
	if err != nil {
		return model.ScheduleInput{}, fmt.Errorf("invalid start %q: %w", f.start, err)
	}
	end, err := model.ParseTime(f.end)
	if err != nil {
		return model.ScheduleInput{}, fmt.Errorf("invalid end %q: %w", f.end, err)
	}
	return model.ScheduleInput{
		Title:       f.title,
		Start:       start,
		End:         end,
		Type:        model.EventType(f.typ),
		Team:        model.Team(f.team),
		Description: f.description,
	}, nil
}

func newSchedulesAddCmd(app *App) *cobra.Command {
	var f scheduleFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an event",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := f.input()
			if err != nil {
				return err
			}
			ev, err := app.Dashboard.Schedules().Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			return app.emit(cmd, ev, scheduleHeaders, scheduleRows([]model.ScheduleEvent{ev}))
		},
	}
	f.bind(cmd)

	return cmd
}

func newSchedulesUpdateCmd(app *App) *cobra.Command {
	var f scheduleFlags

	cmd := &cobra.Command{
		Use:   "update EVENT_ID",
		Short: "Replace an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := f.input()
			if err != nil {
				return err
			}
			ev, err := app.Dashboard.Schedules().Update(cmd.Context(), args[0], in)
			if err != nil {
				return err
			}
			return app.emit(cmd, ev, scheduleHeaders, scheduleRows([]model.ScheduleEvent{ev}))
		},
	}
	f.bind(cmd)

	return cmd
}

func newSchedulesDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete EVENT_ID",
		Short: "Delete an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Dashboard.Schedules().Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Deleted event %s\n", args[0])
			return err
		},
	}
}
