package flags

import "github.com/spf13/cobra"

func AddForce(cmd *cobra.Command, usage string) {
	cmd.Flags().BoolP("force", "f", false, usage)
}

func HandleForce(cmd *cobra.Command) (bool, error) {
	return cmd.Flags().GetBool("force")
}
