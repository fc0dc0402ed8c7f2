package flags

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func AddLimit(cmd *cobra.Command) {
	cmd.Flags().IntP("limit", "n", 0, "Number of keywords to derive (default from config)")
	viper.BindPFlag("keyword_limit", cmd.Flags().Lookup("limit"))
}
