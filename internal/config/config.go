// Package config loads runtime settings for the inventory tool.
//
// Precedence, lowest to highest: built-in defaults, the YAML file, the
// INVENTORY_* environment variables, and finally command-line flags (applied
// by the cli package after Load returns).
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/chebotarevdmitr/school-inventory/internal/auditlog"
)

// Defaults used when neither the file nor the environment sets a value.
const (
	DefaultDatabase = "data/school.db"
	DefaultLogFile  = "school_inventory.log"
	DefaultLogLevel = "info"
)

// Environment variable names.
const (
	EnvDatabase = "INVENTORY_DB"
	EnvLogFile  = "INVENTORY_LOG"
	EnvLogLevel = "INVENTORY_LOG_LEVEL"
)

// Config holds the resolved settings.
type Config struct {
	Database string `yaml:"database"`
	LogFile  string `yaml:"log_file"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Database: DefaultDatabase,
		LogFile:  DefaultLogFile,
		LogLevel: DefaultLogLevel,
	}
}

// Load reads path over the defaults and then applies environment overrides.
// An empty path or a missing file yields the defaults; any other read or
// decode failure is returned.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := decode(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv(os.LookupEnv)
	return cfg, nil
}

func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvDatabase); ok && v != "" {
		c.Database = v
	}
	if v, ok := lookup(EnvLogFile); ok && v != "" {
		c.LogFile = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
}

// Level parses LogLevel.
func (c Config) Level() (auditlog.Level, error) {
	return auditlog.ParseLevel(c.LogLevel)
}

// Validate reports every problem found, joined.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Database) == "" {
		errs = append(errs, errors.New("database path is empty"))
	}
	if strings.TrimSpace(c.LogFile) == "" {
		errs = append(errs, errors.New("log file path is empty"))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
