package template

import (
	"errors"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/erikgeiser/promptkit/confirmation"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Paintersrp/qb/internal/constants"
	"github.com/Paintersrp/qb/internal/state"
	"github.com/Paintersrp/qb/internal/upload"
	"github.com/Paintersrp/qb/pkg/shared/flags"
)

type confirmFunc func(path string) (bool, error)

func NewCmdTemplate(s *state.State) *cobra.Command {
	return newCmdTemplate(s, promptOverwrite)
}

func newCmdTemplate(s *state.State, confirm confirmFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template [PATH]",
		Short: "Write a sample board document to start from",
		Long: heredoc.Docf(`
			Write a JSON document with three sample questions. The file is named %s
			unless PATH is given. An existing file is only replaced after confirmation
			or with --force.
		`, constants.TemplateFile),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := constants.TemplateFile
			if len(args) == 1 {
				path = args[0]
			}

			force, err := flags.HandleForce(cmd)
			if err != nil {
				return err
			}

			err = upload.WriteTemplate(path, force)
			if errors.Is(err, os.ErrExist) {
				ok, cerr := confirm(path)
				if cerr != nil {
					return cerr
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Template not written")
					return nil
				}
				err = upload.WriteTemplate(path, true)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Template written to %s\n", path)
			return nil
		},
	}

	flags.AddForce(cmd, "Replace an existing file without asking")
	return cmd
}

func promptOverwrite(path string) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, fmt.Errorf("%s already exists; use --force to replace it", path)
	}

	input := confirmation.New(fmt.Sprintf("%s already exists. Replace it?", path), confirmation.No)
	return input.RunPrompt()
}
