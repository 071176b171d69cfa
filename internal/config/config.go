// Package config loads chemistry CLI settings.
//
// Values come from, in rising priority: built-in defaults, a TOML config
// file, CHEMISTRY_* environment variables and bound command-line flags.
// Without an explicit --config the file is looked up as .chemistry.toml in
// the working directory, then as config.toml under the user config
// directory ($XDG_CONFIG_HOME/chemistry or ~/.config/chemistry).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/12dlabs/chemistry/pkg/dataset"
	errs "github.com/12dlabs/chemistry/pkg/errors"
)

const (
	appName   = "chemistry"
	envPrefix = "CHEMISTRY"

	// LocalFile is the per-directory config file name.
	LocalFile = ".chemistry.toml"
)

// Render output formats.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
	FormatPDF = "pdf"
	FormatPNG = "png"
)

// RenderFormats lists the formats accepted by render.format.
var RenderFormats = []string{FormatDOT, FormatSVG, FormatPDF, FormatPNG}

// maxPeriodLimit bounds the table and render period settings.
const maxPeriodLimit = 30

// Config holds the CLI settings.
type Config struct {
	Verbose bool         `mapstructure:"verbose"`
	Dataset string       `mapstructure:"dataset"`
	NoCache bool         `mapstructure:"no_cache"`
	Export  ExportConfig `mapstructure:"export"`
	Render  RenderConfig `mapstructure:"render"`
	Table   TableConfig  `mapstructure:"table"`
}

// ExportConfig configures the export command.
type ExportConfig struct {
	Format string `mapstructure:"format"`
}

// RenderConfig configures the render command.
type RenderConfig struct {
	Format    string  `mapstructure:"format"`
	MaxPeriod int     `mapstructure:"max_period"`
	Numbers   bool    `mapstructure:"numbers"`
	Scale     float64 `mapstructure:"scale"`
}

// TableConfig configures the terminal table.
type TableConfig struct {
	MaxPeriod int `mapstructure:"max_period"`
}

// Defaults returns the built-in settings.
func Defaults() Config {
	return Config{
		Export: ExportConfig{Format: string(dataset.FormatTOML)},
		Render: RenderConfig{Format: FormatSVG, MaxPeriod: 7, Numbers: true, Scale: 1},
		Table:  TableConfig{MaxPeriod: 7},
	}
}

// New returns a viper instance with defaults and environment binding set up.
// No file is read until [Read].
func New() *viper.Viper {
	v := viper.New()
	d := Defaults()
	v.SetDefault("verbose", d.Verbose)
	v.SetDefault("dataset", d.Dataset)
	v.SetDefault("no_cache", d.NoCache)
	v.SetDefault("export.format", d.Export.Format)
	v.SetDefault("render.format", d.Render.Format)
	v.SetDefault("render.max_period", d.Render.MaxPeriod)
	v.SetDefault("render.numbers", d.Render.Numbers)
	v.SetDefault("render.scale", d.Render.Scale)
	v.SetDefault("table.max_period", d.Table.MaxPeriod)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Read loads the config file into v and returns its path, or "" when no
// file was found. An explicit path that does not exist is an error; the
// default locations are optional.
func Read(v *viper.Viper, path string) (string, error) {
	if path == "" {
		path = Find()
		if path == "" {
			return "", nil
		}
	} else if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", errs.Wrap(errs.ErrCodeFileNotFound, err, "config %s", path)
		}
		return "", fmt.Errorf("stat config: %w", err)
	}

	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return "", errs.Wrap(errs.ErrCodeInvalidInput, err, "read config %s", path)
	}
	return path, nil
}

// Find returns the first existing default config file, or "".
func Find() string {
	candidates := []string{LocalFile}
	if dir, err := Dir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "config.toml"))
	}
	for _, p := range candidates {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// Dir returns the user config directory using the XDG convention.
func Dir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// Load decodes the settings held by v and validates them.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errs.Wrap(errs.ErrCodeInvalidInput, err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks formats and period bounds.
func (c Config) Validate() error {
	if _, err := dataset.ParseFormat(c.Export.Format); err != nil {
		return fmt.Errorf("export.format: %w", err)
	}
	if !slices.Contains(RenderFormats, c.Render.Format) {
		return errs.New(errs.ErrCodeInvalidFormat, "render.format: unsupported format %q (want %s)",
			c.Render.Format, strings.Join(RenderFormats, ", "))
	}
	if err := validatePeriod("render.max_period", c.Render.MaxPeriod); err != nil {
		return err
	}
	if err := validatePeriod("table.max_period", c.Table.MaxPeriod); err != nil {
		return err
	}
	if c.Render.Scale <= 0 {
		return errs.New(errs.ErrCodeInvalidInput, "render.scale must be positive, got %g", c.Render.Scale)
	}
	return nil
}

func validatePeriod(key string, p int) error {
	if p < 1 || p > maxPeriodLimit {
		return errs.New(errs.ErrCodeInvalidInput, "%s must be between 1 and %d, got %d", key, maxPeriodLimit, p)
	}
	return nil
}
