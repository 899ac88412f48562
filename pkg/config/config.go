// Package config reads the settings for the mitab command from a YAML
// file. Anything not in the file keeps its default, and command line
// flags win over both.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/andrew-torda/mitab/pkg/mitab"
)

// EnvDB names the environment variable for the default database path.
const EnvDB = "MITAB_DB"

// Config is what may be set in the file.
type Config struct {
	SkipBadRows bool   `yaml:"skip_bad_rows"`
	Workers     int    `yaml:"workers"`
	Database    string `yaml:"database"`
	LogLevel    string `yaml:"log_level"`
	MetricsFile string `yaml:"metrics_file"` // empty means no metrics file
}

// Default gives one worker, abort on the first bad row, and info
// level logging.
func Default() *Config {
	return &Config{
		Workers:  1,
		Database: DefaultDBPath(),
		LogLevel: "info",
	}
}

// DefaultDBPath is $MITAB_DB if set, otherwise ~/.mitab/interactions.db.
func DefaultDBPath() string {
	if env := os.Getenv(EnvDB); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".mitab", "interactions.db")
}

// Load reads a file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return c, nil
}

// Validate checks the values. Workers of zero means one per CPU.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.Database == "" {
		return fmt.Errorf("database path is empty")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level turns LogLevel into a zap level. Empty is info.
func (c *Config) Level() (zapcore.Level, error) {
	if c.LogLevel == "" {
		return zapcore.InfoLevel, nil
	}
	l, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return l, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}

// Logger builds a production logger at the configured level. Output
// goes to stderr so it does not mix with data on stdout.
func (c *Config) Logger() (*zap.Logger, error) {
	l, err := c.Level()
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(l)
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	return zc.Build()
}

// Options gives the parser settings. The logger may be nil.
func (c *Config) Options(logger *zap.Logger) *mitab.Options {
	nw := c.Workers
	if nw == 0 {
		nw = runtime.NumCPU()
	}
	return &mitab.Options{
		SkipBadRows: c.SkipBadRows,
		Workers:     nw,
		Logger:      logger,
	}
}
