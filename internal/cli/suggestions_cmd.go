package cli

import (
	"encoding/json"
	"fmt"

	model "github.com/okian/pulss/internal/domain/model"
	"github.com/spf13/cobra"
)

func newSuggestionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "suggestions",
		Aliases: []string{"ai"},
		Short:   "AI message drafts",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list CLIENT_ID",
			Short: "List drafts for a client",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ss, err := app.Dashboard.Suggestions().List(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return app.emit(cmd, ss, suggestionHeaders, suggestionRows(ss))
			},
		},
		newSuggestionsGenerateCmd(app),
	)

	return cmd
}

func newSuggestionsGenerateCmd(app *App) *cobra.Command {
	var hintJSON string

	cmd := &cobra.Command{
		Use:   "generate CLIENT_ID",
		Short: "Generate one new draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var hint map[string]any
			if hintJSON != "" {
				if err := json.Unmarshal([]byte(hintJSON), &hint); err != nil {
					return fmt.Errorf("invalid --hint: %w", err)
				}
			}
			s, err := app.Dashboard.Suggestions().Generate(cmd.Context(), args[0], hint)
			if err != nil {
				return err
			}
			return app.emit(cmd, s, suggestionHeaders, suggestionRows([]model.AiSuggestion{s}))
		},
	}

	cmd.Flags().StringVar(&hintJSON, "hint", "", `Optional JSON object passed to the generator, e.g. '{"tone":"casual"}'`)

	return cmd
}
