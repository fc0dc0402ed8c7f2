package config

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/qb/internal/state"
)

func NewCmdConfig(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shown := *s.Config
			if shown.S3.SecretAccessKey != "" {
				shown.S3.SecretAccessKey = "********"
			}

			data, err := yaml.Marshal(&shown)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", s.Config.GetConfigPath(), data)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), s.Config.GetConfigPath())
		},
	})

	return cmd
}
