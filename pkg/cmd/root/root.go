package root

import (
	"io"
	"log/slog"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Paintersrp/qb/internal/constants"
	"github.com/Paintersrp/qb/internal/logging"
	"github.com/Paintersrp/qb/internal/state"
	"github.com/Paintersrp/qb/pkg/cmd/board"
	"github.com/Paintersrp/qb/pkg/cmd/config"
	"github.com/Paintersrp/qb/pkg/cmd/export"
	"github.com/Paintersrp/qb/pkg/cmd/find"
	"github.com/Paintersrp/qb/pkg/cmd/keywords"
	"github.com/Paintersrp/qb/pkg/cmd/list"
	"github.com/Paintersrp/qb/pkg/cmd/notes"
	"github.com/Paintersrp/qb/pkg/cmd/template"
	"github.com/Paintersrp/qb/pkg/cmd/validate"
)

func NewCmdRoot(s *state.State) (*cobra.Command, error) {
	var logFile io.Closer

	cmd := &cobra.Command{
		Use:   "qb [PATH|s3://bucket/key]",
		Short: "A keyword-filtered Q&A board for the terminal",
		Long: heredoc.Doc(`
			Browse a list of questions and answers as cards. Hover a card to read the
			answer, filter by the keywords pulled from the questions, and keep notes
			alongside.

			  qb                      open the built-in examples
			  qb ~/interview.json     open a local document
			  qb s3://bucket/faq.yml  open a document stored in S3
		`),
		Version:      constants.Version,
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s.Config.MergeViper()

			if viper.GetBool("debug") {
				f, err := logging.ToFile(constants.DebugLogFile)
				if err != nil {
					return err
				}
				logFile = f
				slog.Debug("debug logging enabled", "command", cmd.CommandPath())
				return nil
			}

			slog.SetDefault(logging.NewCommandLogger())
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logFile == nil {
				return nil
			}
			err := logFile.Close()
			logFile = nil
			return err
		},
		// Open the board by default
		RunE: board.NewCmdBoard(s).RunE,
	}

	cmd.SetUsageTemplate(constants.Help)

	cmd.PersistentFlags().
		StringP("data", "d", "", "Document to load when no PATH is given")
	viper.BindPFlag("data", cmd.PersistentFlags().Lookup("data"))

	cmd.PersistentFlags().
		Bool("debug", false, "Write debug logs to "+constants.DebugLogFile)
	viper.BindPFlag("debug", cmd.PersistentFlags().Lookup("debug"))

	cmd.AddCommand(
		board.NewCmdBoard(s),
		validate.NewCmdValidate(s),
		keywords.NewCmdKeywords(s),
		list.NewCmdList(s),
		find.NewCmdFind(s),
		export.NewCmdExport(s),
		template.NewCmdTemplate(s),
		notes.NewCmdNotes(s),
		config.NewCmdConfig(s),
	)

	return cmd, nil
}
