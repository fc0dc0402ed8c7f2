package find

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/qb/internal/fzf"
	"github.com/Paintersrp/qb/internal/state"
	"github.com/Paintersrp/qb/pkg/shared/arg"
)

func NewCmdFind(s *state.State) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:     "find [PATH|s3://bucket/key]",
		Aliases: []string{"f"},
		Short:   "Fuzzy search the questions and print the chosen answer",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			location, err := arg.HandleLocation(args, s.Config)
			if err != nil {
				return err
			}

			st, err := s.BoardAt(cmd.Context(), location)
			if err != nil {
				return err
			}

			finder := fzf.NewFuzzyFinder(st.Items(), "Select a question", s.Config.GlamourStyle)
			item, err := finder.Run(query)
			if errors.Is(err, fzf.ErrNoSelection) {
				fmt.Fprintln(cmd.OutOrStdout(), "No question selected")
				return nil
			}
			if err != nil {
				return err
			}

			out, err := glamour.Render("## "+item.Question+"\n\n"+item.Answer, s.Config.GlamourStyle)
			if err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n%s\n", item.Question, item.Answer)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Initial search text")
	return cmd
}
