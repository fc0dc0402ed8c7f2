package state

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/Paintersrp/qb/internal/board"
	"github.com/Paintersrp/qb/internal/config"
	"github.com/Paintersrp/qb/internal/constants"
	"github.com/Paintersrp/qb/internal/notes"
	"github.com/Paintersrp/qb/internal/source"
)

type State struct {
	Config *config.Config
	Source *source.Source
	Notes  *notes.Store
	Home   string
}

func NewState() (*State, error) {
	home, err := config.GetHomeDir()
	if err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(home)
	if err != nil {
		return nil, err
	}

	return FromConfig(cfg)
}

// FromConfig wires the data source and the notes store for cfg.
func FromConfig(cfg *config.Config) (*State, error) {
	notesDir, err := cfg.NotesPath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve notes directory: %w", err)
	}

	store, err := notes.Open(notesDir)
	if err != nil {
		return nil, err
	}

	return &State{
		Config: cfg,
		Source: source.New(source.NewLazyS3(cfg.S3)),
		Notes:  store,
		Home:   cfg.Home(),
	}, nil
}

func LoadConfig(home string) (*config.Config, error) {
	viper.AddConfigPath(home + constants.ConfigDir)
	viper.SetConfigName(constants.ConfigFile)
	viper.SetConfigType(constants.ConfigFileType)
	viper.SetEnvPrefix(constants.AppName)
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()

	if err := config.EnsureConfigExists(home); err != nil {
		return nil, err
	}

	cfg, err := config.Load(home)
	if err != nil {
		return nil, err
	}
	cfg.MergeViper()

	return cfg, nil
}

// Dataset returns the board to start with: the configured data file when one
// is set, otherwise the built-in questions.
func (s *State) Dataset(ctx context.Context) (board.Dataset, error) {
	location, err := s.Config.DataPath()
	if err != nil {
		return board.Dataset{}, err
	}
	return s.DatasetAt(ctx, location)
}

// DatasetAt loads the document at location. An empty location yields the
// built-in questions.
func (s *State) DatasetAt(ctx context.Context, location string) (board.Dataset, error) {
	if location == "" {
		return board.Dataset{Items: board.Defaults()}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.Config.SourceTimeout)
	defer cancel()

	slog.Debug("loading dataset", "location", location)
	return s.Source.Load(ctx, location)
}

// Board builds the initial board state from Dataset.
func (s *State) Board(ctx context.Context) (board.State, error) {
	location, err := s.Config.DataPath()
	if err != nil {
		return board.State{}, err
	}
	return s.BoardAt(ctx, location)
}

// BoardAt builds a board state from the document at location. Uploaded
// keywords seed the custom keywords.
func (s *State) BoardAt(ctx context.Context, location string) (board.State, error) {
	ds, err := s.DatasetAt(ctx, location)
	if err != nil {
		return board.State{}, err
	}

	b := board.New(ds.Items, s.Config.KeywordLimit)
	if ds.HasKeywords {
		for _, word := range ds.Keywords {
			b = b.AddKeyword(word)
		}
	}
	return b, nil
}
