package export

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	htmlexport "github.com/Paintersrp/qb/internal/export"
	"github.com/Paintersrp/qb/internal/state"
	"github.com/Paintersrp/qb/pkg/shared/arg"
	"github.com/Paintersrp/qb/pkg/shared/flags"
)

func NewCmdExport(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [PATH|s3://bucket/key]",
		Short: "Render the board to a standalone HTML page",
		Args:  cobra.MaximumNArgs(1),
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

			output, err := flags.HandleOutput(cmd)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", output, err)
				}
				defer f.Close()
				w = f
			}

			if err := htmlexport.HTML(w, "Q&A Board", st, n); err != nil {
				return err
			}

			if output != "-" {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d questions to %s\n", len(st.Filtered()), output)
			}
			return nil
		},
	}

	flags.AddOutput(cmd, "board.html")
	flags.AddKeyword(cmd)
	flags.AddColumns(cmd)
	return cmd
}
