// Package cli implements the chemistry command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/12dlabs/chemistry/internal/config"
	"github.com/12dlabs/chemistry/pkg/buildinfo"
	"github.com/12dlabs/chemistry/pkg/cache"
	"github.com/12dlabs/chemistry/pkg/dataset"
	errs "github.com/12dlabs/chemistry/pkg/errors"
	"github.com/12dlabs/chemistry/pkg/periodic"
	"github.com/12dlabs/chemistry/pkg/registry"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "chemistry"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	reg     *registry.Registry
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		v:      config.New(),
		cfg:    config.Defaults(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               appName,
		Short:             "Chemistry explores the periodic table",
		Long:              `Chemistry looks up chemical elements and their isotopes, derives their place in the periodic table from the atomic number alone, and names and places theoretical elements beyond oganesson.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVar(&c.cfgFile, "config", "", "config file (default: ./"+config.LocalFile+" or ~/.config/chemistry/config.toml)")
	flags.BoolP("verbose", "v", false, "enable verbose logging")
	flags.String("dataset", "", "seed dataset file (.toml, .yaml or .json) instead of the built-in one")
	c.bind("verbose", flags.Lookup("verbose"))
	c.bind("dataset", flags.Lookup("dataset"))

	// Register all subcommands
	root.AddCommand(c.elementCommand())
	root.AddCommand(c.isotopesCommand())
	root.AddCommand(c.periodCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.tableCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// bind ties a flag to a config key. Flags win over the config file and
// environment only when set explicitly.
func (c *CLI) bind(key string, f *pflag.Flag) {
	_ = c.v.BindPFlag(key, f)
}

// setup reads the configuration and attaches the logger to the command
// context before any command runs.
func (c *CLI) setup(cmd *cobra.Command, args []string) error {
	path, err := config.Read(c.v, c.cfgFile)
	if err != nil {
		return err
	}
	cfg, err := config.Load(c.v)
	if err != nil {
		return err
	}
	c.cfg = cfg

	if cfg.Verbose {
		c.SetLogLevel(LogDebug)
	}
	if path != "" {
		c.Logger.Debug("Loaded config", "path", path)
	}
	installHooks(c.Logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, c.Logger))
	return nil
}

// =============================================================================
// Registry
// =============================================================================

// registry returns the element registry, seeding it on first use from the
// configured dataset or the built-in one.
func (c *CLI) registry(ctx context.Context) (*registry.Registry, error) {
	if c.reg != nil {
		return c.reg, nil
	}
	logger := loggerFromContext(ctx)

	if c.cfg.Dataset == "" {
		reg, err := registry.Default()
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInternal, err, "load built-in dataset")
		}
		c.reg = reg
		return reg, nil
	}

	records, err := dataset.LoadFile(c.cfg.Dataset)
	if err != nil {
		return nil, err
	}
	if err := dataset.Validate(records); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidDataset, err, "dataset %s", c.cfg.Dataset)
	}
	logger.Debugf("Seeding registry from %s (%d elements)", c.cfg.Dataset, len(records))
	c.reg = registry.New(dataset.Elements(records))
	return c.reg, nil
}

// resolve looks up an element given on the command line as an atomic number
// or a symbol.
func resolve(reg *registry.Registry, key string) (*periodic.Element, error) {
	if err := errs.ValidateElementKey(key); err != nil {
		return nil, err
	}
	if e := reg.Resolve(key); e != nil {
		return e, nil
	}
	return nil, errs.New(errs.ErrCodeElementNotFound, "no element matches %q", key)
}

// =============================================================================
// Cache
// =============================================================================

func newCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	c, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return c
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/chemistry/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
