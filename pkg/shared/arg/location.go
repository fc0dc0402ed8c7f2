package arg

import (
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/Paintersrp/qb/internal/config"
	"github.com/Paintersrp/qb/internal/source"
)

// HandleLocation returns the dataset location for a command: the first
// argument when given, otherwise the configured data file. An empty result
// means the built-in questions.
func HandleLocation(args []string, c *config.Config) (string, error) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return c.DataPath()
	}

	location := strings.TrimSpace(args[0])
	if source.IsRemote(location) {
		return location, nil
	}
	return homedir.Expand(location)
}
