package board

import (
	"context"

	"github.com/MakeNowJust/heredoc/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Paintersrp/qb/internal/logging"
	"github.com/Paintersrp/qb/internal/notes"
	"github.com/Paintersrp/qb/internal/state"
	"github.com/Paintersrp/qb/internal/tui/app"
	"github.com/Paintersrp/qb/internal/tui/boardview"
	"github.com/Paintersrp/qb/internal/tui/notepad"
	"github.com/Paintersrp/qb/pkg/shared/arg"
)

func NewCmdBoard(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "board [PATH|s3://bucket/key]",
		Aliases: []string{"b"},
		Short:   "Open the interactive Q&A board",
		Long: heredoc.Doc(`
			Open the board in the terminal. Questions come from PATH, the --data flag,
			the data_file setting, or the built-in examples, in that order.

			Hover a card to open it, click to toggle, and use tab to reach the notepad.
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), s, args)
		},
	}

	return cmd
}

func run(ctx context.Context, s *state.State, args []string) error {
	location, err := arg.HandleLocation(args, s.Config)
	if err != nil {
		return err
	}

	st, err := s.BoardAt(ctx, location)
	if err != nil {
		return err
	}

	buf, err := notes.Load(s.Notes)
	if err != nil {
		return err
	}

	root := app.NewRootModel(
		boardview.New(st, s.Config, s.Source),
		notepad.New(buf, s.Config),
	)

	if !viper.GetBool("debug") {
		logging.Discard()
	}

	p := tea.NewProgram(
		root,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)
	_, err = p.Run()
	return err
}
