package list

import (
	"github.com/spf13/cobra"

	"github.com/Paintersrp/qb/internal/printer"
	"github.com/Paintersrp/qb/internal/state"
	"github.com/Paintersrp/qb/pkg/shared/arg"
	"github.com/Paintersrp/qb/pkg/shared/flags"
)

func NewCmdList(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list [PATH|s3://bucket/key]",
		Aliases: []string{"ls"},
		Short:   "Print the questions with the column each lands in",
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

			word, err := flags.HandleKeyword(cmd)
			if err != nil {
				return err
			}
			if word != "" {
				st = st.SetFilter(word)
			}

			n, err := flags.HandleColumns(cmd, s.Config)
			if err != nil {
				return err
			}

			items := st.Filtered()
			p := printer.New(cmd.OutOrStdout())
			p.Title("Questions", len(items), "question")
			p.Items(items, n)
			return nil
		},
	}

	flags.AddKeyword(cmd)
	flags.AddColumns(cmd)
	return cmd
}
