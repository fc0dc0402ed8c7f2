package flags

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Paintersrp/qb/internal/config"
	"github.com/Paintersrp/qb/internal/layout"
)

func AddColumns(cmd *cobra.Command) {
	cmd.Flags().IntP("columns", "c", 0, "Column count (1-3); defaults from the terminal width")
}

// HandleColumns returns the requested column count, or the count the board
// would use at the current terminal width. Without a terminal it is 1.
func HandleColumns(cmd *cobra.Command, c *config.Config) (int, error) {
	n, err := cmd.Flags().GetInt("columns")
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return min(n, layout.MaxColumns), nil
	}

	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 1, nil
	}
	return layout.CellColumns(width, c.CellWidth, c.Breakpoints), nil
}
