package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/qb/internal/constants"
)

type S3Config struct {
	Region          string `yaml:"region"            json:"region"`
	Profile         string `yaml:"profile"           json:"profile"`
	Endpoint        string `yaml:"endpoint"          json:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id"     json:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key" json:"-"`
}

type Config struct {
	DataFile      string        `yaml:"data_file"      json:"data_file"`
	NotesDir      string        `yaml:"notes_dir"      json:"notes_dir"`
	KeywordLimit  int           `yaml:"keyword_limit"  json:"keyword_limit"`
	CloseDelay    time.Duration `yaml:"close_delay"    json:"close_delay"`
	HoverDelay    time.Duration `yaml:"hover_delay"    json:"hover_delay"`
	SuccessTTL    time.Duration `yaml:"success_ttl"    json:"success_ttl"`
	CopiedTTL     time.Duration `yaml:"copied_ttl"     json:"copied_ttl"`
	CellWidth     int           `yaml:"cell_width"     json:"cell_width"`
	Breakpoints   []int         `yaml:"breakpoints"    json:"breakpoints"`
	GlamourStyle  string        `yaml:"glamour_style"  json:"glamour_style"`
	SourceTimeout time.Duration `yaml:"source_timeout" json:"source_timeout"`
	S3            S3Config      `yaml:"s3"             json:"s3"`

	home string `yaml:"-"`
}

const (
	DefaultKeywordLimit  = 12
	DefaultCloseDelay    = 600 * time.Millisecond
	DefaultHoverDelay    = 500 * time.Millisecond
	DefaultSuccessTTL    = 3 * time.Second
	DefaultCopiedTTL     = 2 * time.Second
	DefaultCellWidth     = 8
	DefaultGlamourStyle  = "dracula"
	DefaultSourceTimeout = 30 * time.Second
)

// DefaultBreakpoints are the viewport widths at which the board moves to two
// and then three columns.
var DefaultBreakpoints = []int{768, 1536}

func Default(home string) *Config {
	cfg := &Config{home: home}
	cfg.ensureDefaults()
	return cfg
}

func (cfg *Config) ensureDefaults() {
	if cfg.KeywordLimit <= 0 {
		cfg.KeywordLimit = DefaultKeywordLimit
	}
	if cfg.CloseDelay <= 0 {
		cfg.CloseDelay = DefaultCloseDelay
	}
	if cfg.HoverDelay <= 0 {
		cfg.HoverDelay = DefaultHoverDelay
	}
	if cfg.SuccessTTL <= 0 {
		cfg.SuccessTTL = DefaultSuccessTTL
	}
	if cfg.CopiedTTL <= 0 {
		cfg.CopiedTTL = DefaultCopiedTTL
	}
	if cfg.CellWidth <= 0 {
		cfg.CellWidth = DefaultCellWidth
	}
	if len(cfg.Breakpoints) == 0 {
		cfg.Breakpoints = append([]int(nil), DefaultBreakpoints...)
	}
	if strings.TrimSpace(cfg.GlamourStyle) == "" {
		cfg.GlamourStyle = DefaultGlamourStyle
	}
	if cfg.SourceTimeout <= 0 {
		cfg.SourceTimeout = DefaultSourceTimeout
	}
	if strings.TrimSpace(cfg.NotesDir) == "" && cfg.home != "" {
		cfg.NotesDir = filepath.Join(cfg.home, constants.ConfigDir, constants.NotesDir)
	}
}

func (cfg *Config) Validate() error {
	if len(cfg.Breakpoints) != 2 {
		return fmt.Errorf("%w: got %v", ErrInvalidBreakpoints, cfg.Breakpoints)
	}
	if cfg.Breakpoints[0] <= 0 || cfg.Breakpoints[1] <= cfg.Breakpoints[0] {
		return fmt.Errorf("%w: got %v", ErrInvalidBreakpoints, cfg.Breakpoints)
	}
	return nil
}

func Load(home string) (*Config, error) {
	path := GetConfigPath(home)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}
	cfg.home = home
	cfg.ensureDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// MergeViper applies values bound through viper (flags and QB_* environment
// variables) on top of the file configuration.
func (cfg *Config) MergeViper() {
	if v := strings.TrimSpace(viper.GetString("data")); v != "" {
		cfg.DataFile = v
	}
	if v := strings.TrimSpace(viper.GetString("notes_dir")); v != "" {
		cfg.NotesDir = v
	}
	if v := viper.GetInt("keyword_limit"); v > 0 {
		cfg.KeywordLimit = v
	}
	if v := strings.TrimSpace(viper.GetString("glamour_style")); v != "" {
		cfg.GlamourStyle = v
	}
}

func (cfg *Config) Home() string {
	return cfg.home
}

func (cfg *Config) GetConfigPath() string {
	return GetConfigPath(cfg.home)
}

// NotesPath returns the notes directory with a leading ~ expanded.
func (cfg *Config) NotesPath() (string, error) {
	return homedir.Expand(cfg.NotesDir)
}

// DataPath returns the configured dataset location with a leading ~ expanded.
// Remote locations are returned untouched.
func (cfg *Config) DataPath() (string, error) {
	if strings.Contains(cfg.DataFile, "://") {
		return cfg.DataFile, nil
	}
	return homedir.Expand(cfg.DataFile)
}

func (cfg *Config) Save() error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	configPath := cfg.GetConfigPath()
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}
