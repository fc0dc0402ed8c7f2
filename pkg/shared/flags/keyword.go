package flags

import (
	"github.com/spf13/cobra"

	"github.com/Paintersrp/qb/internal/keywords"
)

func AddKeyword(cmd *cobra.Command) {
	cmd.Flags().StringP("keyword", "k", "", "Only include questions containing this keyword")
}

func HandleKeyword(cmd *cobra.Command) (string, error) {
	word, err := cmd.Flags().GetString("keyword")
	if err != nil {
		return "", err
	}
	return keywords.Normalize(word), nil
}
