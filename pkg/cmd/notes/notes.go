package notes

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/qb/internal/notes"
	"github.com/Paintersrp/qb/internal/state"
)

func NewCmdNotes(s *state.State) *cobra.Command {
	return newCmdNotes(s)
}

func newCmdNotes(s *state.State, opts ...notes.Option) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notes",
		Aliases: []string{"n"},
		Short:   "Work with the saved notepad",
		Long: heredoc.Doc(`
			The notepad is saved on every keystroke in the board. These commands read
			and reset it without opening the board.
		`),
	}

	load := func() (*notes.Buffer, error) {
		return notes.Load(s.Notes, opts...)
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the notepad",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				buf, err := load()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), buf.Text())
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Empty the notepad",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				buf, err := load()
				if err != nil {
					return err
				}
				if err := buf.Clear(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Notes cleared")
				return nil
			},
		},
		&cobra.Command{
			Use:   "copy",
			Short: "Copy the notepad to the clipboard",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				buf, err := load()
				if err != nil {
					return err
				}
				if err := buf.Copy(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Copied %d characters\n", buf.Len())
				return nil
			},
		},
	)

	return cmd
}
