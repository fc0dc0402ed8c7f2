package validate

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/qb/internal/state"
	"github.com/Paintersrp/qb/internal/upload"
	"github.com/Paintersrp/qb/pkg/shared/arg"
)

func NewCmdValidate(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate PATH|s3://bucket/key",
		Short: "Check that a document would load as a board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			location, err := arg.HandleLocation(args, s.Config)
			if err != nil {
				return err
			}

			ds, err := s.DatasetAt(cmd.Context(), location)
			if err != nil {
				return fmt.Errorf("%s: %s", location, describe(err))
			}

			ok := color.New(color.FgGreen, color.Bold)
			_, _ = ok.Fprint(cmd.OutOrStdout(), "ok")
			fmt.Fprintf(cmd.OutOrStdout(), " %s: %d questions", location, len(ds.Items))
			if ds.HasKeywords {
				fmt.Fprintf(cmd.OutOrStdout(), ", %d keywords", len(ds.Keywords))
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	return cmd
}

// describe prefixes the failure with its kind.
func describe(err error) string {
	var (
		parseErr  *upload.ParseError
		schemaErr *upload.SchemaError
		ioErr     *upload.IOError
	)
	switch {
	case errors.As(err, &parseErr):
		return "parse error: " + err.Error()
	case errors.As(err, &schemaErr):
		return "schema error: " + err.Error()
	case errors.As(err, &ioErr):
		return "read error: " + err.Error()
	}
	return err.Error()
}
