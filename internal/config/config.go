package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/eatforce/internal/constants"
	"github.com/julianstephens/eatforce/internal/utils"
)

const defaultConfigYAML = `# eatforce configuration
#
# store: SQLite path (default), a path ending in .json, a PostgreSQL URL without a
# password, or "keyring" to use the connection string saved with 'eatforce keyring set'.
store: ""

# debug mirrors logs to stderr.
debug: false

# tick_interval is how often the watch loop evaluates reminders.
tick_interval: 1s

# report_dir is where 'eatforce report' writes PDFs. Empty means the current directory.
report_dir: ""
`

// File models config.yaml.
type File struct {
	Store        string `yaml:"store"`
	Debug        bool   `yaml:"debug"`
	TickInterval string `yaml:"tick_interval"`
	ReportDir    string `yaml:"report_dir"`
}

// Config is the resolved runtime configuration.
type Config struct {
	Path         string
	Store        string
	Debug        bool
	TickInterval time.Duration
	ReportDir    string
}

// Dir returns the directory holding the config file; logs and backups live beside it.
func (c Config) Dir() string {
	return filepath.Dir(c.Path)
}

// Load reads the YAML file at path. A missing file yields defaults.
func Load(path string) (Config, error) {
	expanded, err := utils.ExpandHome(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Path:         expanded,
		TickInterval: constants.DefaultTickInterval,
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", expanded, err)
	}

	cfg.Store = file.Store
	cfg.Debug = file.Debug
	if file.TickInterval != "" {
		d, err := time.ParseDuration(file.TickInterval)
		if err != nil {
			return cfg, fmt.Errorf("invalid tick_interval %q: %w", file.TickInterval, err)
		}
		if d <= 0 {
			return cfg, fmt.Errorf("tick_interval must be positive, got %s", d)
		}
		cfg.TickInterval = d
	}
	if file.ReportDir != "" {
		if cfg.ReportDir, err = utils.ExpandHome(file.ReportDir); err != nil {
			return cfg, err
		}
	}

	return cfg, nil
}

// Override applies command-line values on top of the file. Empty values leave the file's
// setting alone; debug can only be switched on.
func (c *Config) Override(store string, debug bool) {
	if store != "" {
		c.Store = store
	}
	if debug {
		c.Debug = true
	}
}

// WriteDefault creates a commented config file at path unless one exists.
func WriteDefault(path string) (bool, error) {
	expanded, err := utils.ExpandHome(path)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(expanded); err == nil {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0700); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(expanded, []byte(defaultConfigYAML), 0600); err != nil {
		return false, fmt.Errorf("failed to write config: %w", err)
	}
	return true, nil
}
