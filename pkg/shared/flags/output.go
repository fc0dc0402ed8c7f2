package flags

import "github.com/spf13/cobra"

func AddOutput(cmd *cobra.Command, def string) {
	cmd.Flags().StringP("output", "o", def, "Path of the file to write")
}

func HandleOutput(cmd *cobra.Command) (string, error) {
	return cmd.Flags().GetString("output")
}
