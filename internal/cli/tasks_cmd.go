package cli

import (
	"fmt"

	model "github.com/okian/pulss/internal/domain/model"
	"github.com/spf13/cobra"
)

func newTasksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Manage client tasks",
	}

	cmd.AddCommand(
		newTasksListCmd(app),
		newTasksAddCmd(app),
		newTasksUpdateCmd(app),
		newTasksDoneCmd(app),
	)

	return cmd
}

// parseDue accepts a date or a timestamp. Empty means no due date.
func parseDue(s string) (*model.Time, error) { return parseWhen("due date", s) }

// parseWhen parses an optional date or timestamp flag named what.
func parseWhen(what, s string) (*model.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := model.ParseTime(s)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", what, s, err)
	}
	return &t, nil
}

func newTasksListCmd(app *App) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list CLIENT_ID",
		Short: "List a client's tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, err := app.Dashboard.Tasks().List(cmd.Context(), args[0], model.TaskCategory(category))
			if err != nil {
				return err
			}
			return app.emit(cmd, ts, taskHeaders, taskRows(ts))
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "onboarding, operation or other")

	return cmd
}

func newTasksAddCmd(app *App) *cobra.Command {
	var in model.CreateTask
	var category, status, due string

	cmd := &cobra.Command{
		Use:   "add CLIENT_ID",
		Short: "Create a task; unset fields take the defaults",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDue(due)
			if err != nil {
				return err
			}
			in.DueDate = d
			in.Category = model.TaskCategory(category)
			in.Status = model.TaskStatus(status)

			t, err := app.Dashboard.Tasks().Create(cmd.Context(), args[0], in)
			if err != nil {
				return err
			}
			return app.emit(cmd, t, taskHeaders, taskRows([]model.Task{t}))
		},
	}

	cmd.Flags().StringVar(&in.Title, "title", "", "Task title")
	cmd.Flags().StringVar(&in.Description, "description", "", "Task description")
	cmd.Flags().StringVar(&category, "category", "", "onboarding, operation or other")
	cmd.Flags().StringVar(&status, "status", "", "todo, in_progress, done or blocked")
	cmd.Flags().StringVar(&due, "due", "", "Due date, YYYY-MM-DD or RFC 3339")
	cmd.Flags().StringVar(&in.Assignee, "assignee", "", "Assignee")

	return cmd
}

func newTasksUpdateCmd(app *App) *cobra.Command {
	var title, description, category, status, due, assignee string

	cmd := &cobra.Command{
		Use:   "update TASK_ID",
		Short: "Change fields of a task; only flags given are sent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch model.TaskPatch
			flags := cmd.Flags()
			if flags.Changed("title") {
				patch.Title = &title
			}
			if flags.Changed("description") {
				patch.Description = &description
			}
			if flags.Changed("assignee") {
				patch.Assignee = &assignee
			}
			if flags.Changed("category") {
				c := model.TaskCategory(category)
				patch.Category = &c
			}
			if flags.Changed("status") {
				s := model.TaskStatus(status)
				patch.Status = &s
			}
			if flags.Changed("due") {
				d, err := parseDue(due)
				if err != nil {
					return err
				}
				patch.DueDate = d
			}

			t, err := app.Dashboard.Tasks().Update(cmd.Context(), args[0], patch)
			if err != nil {
				return err
			}
			return app.emit(cmd, t, taskHeaders, taskRows([]model.Task{t}))
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&description, "description", "", "Task description")
	cmd.Flags().StringVar(&category, "category", "", "onboarding, operation or other")
	cmd.Flags().StringVar(&status, "status", "", "todo, in_progress, done or blocked")
	cmd.Flags().StringVar(&due, "due", "", "Due date, YYYY-MM-DD or RFC 3339")
	cmd.Flags().StringVar(&assignee, "assignee", "", "Assignee")

	return cmd
}

func newTasksDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done TASK_ID",
		Short: "Mark a task done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := model.TaskDone
			now := model.Now()
			t, err := app.Dashboard.Tasks().Update(cmd.Context(), args[0], model.TaskPatch{Status: &status, CompletedAt: &now})
			if err != nil {
				return err
			}
			return app.emit(cmd, t, taskHeaders, taskRows([]model.Task{t}))
		},
	}
}
