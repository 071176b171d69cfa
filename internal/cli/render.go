package cli

import (
	"context"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/12dlabs/chemistry/internal/config"
	"github.com/12dlabs/chemistry/pkg/cache"
	errs "github.com/12dlabs/chemistry/pkg/errors"
	"github.com/12dlabs/chemistry/pkg/render"
)

// renderTTL is how long rendered tables stay cached.
const renderTTL = 30 * 24 * time.Hour

// renderCommand creates the render command drawing the table via Graphviz.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output string
		title  string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the periodic table as DOT, SVG, PDF or PNG",
		Long: `Render the periodic table through Graphviz.

SVG output is produced by the embedded Graphviz; PDF and PNG are converted
from it with rsvg-convert (librsvg), which must be installed. Rendered
output is cached; --no-cache bypasses the cache.`,
		Example: `  chemistry render -o table.svg
  chemistry render --format png --scale 2 -o table.png
  chemistry render --format dot --max-period 9`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := c.cfg.Render.Format
			if !cmd.Flags().Changed("format") && output != "" {
				if f, ok := formatFromPath(output); ok {
					format = f
				}
			}

			reg, err := c.registry(cmd.Context())
			if err != nil {
				return err
			}
			opts := render.Options{
				MaxPeriod:   c.cfg.Render.MaxPeriod,
				ShowNumbers: c.cfg.Render.Numbers,
				Title:       title,
			}
			dot := render.ToDOT(periodElements(reg, opts.MaxPeriod), opts)

			store := newCache(c.cfg.NoCache)
			defer store.Close()

			prog := newProgress(loggerFromContext(cmd.Context()))
			data, cached, err := renderFormat(cmd.Context(), store, dot, format, c.cfg.Render.Scale)
			if err != nil {
				return err
			}

			out, err := openOutput(cmd.OutOrStdout(), output)
			if err != nil {
				return err
			}
			defer out.Close()
			if _, err := out.Write(data); err != nil {
				return err
			}
			if output == "" {
				return nil
			}

			prog.done("Rendered periodic table")
			w := cmd.OutOrStdout()
			printSuccess(w, "Rendered %s", strings.ToUpper(format))
			printFile(w, output)
			printStats(w, len(data), cached)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	flags.StringVar(&title, "title", "", "title drawn above the table")
	flags.StringP("format", "f", c.cfg.Render.Format, "output format: "+strings.Join(config.RenderFormats, ", "))
	flags.Int("max-period", c.cfg.Render.MaxPeriod, "last period to draw")
	flags.Bool("numbers", c.cfg.Render.Numbers, "show atomic numbers")
	flags.Float64("scale", c.cfg.Render.Scale, "PNG scale factor")
	flags.Bool("no-cache", c.cfg.NoCache, "bypass the render cache")
	c.bind("render.format", flags.Lookup("format"))
	c.bind("render.max_period", flags.Lookup("max-period"))
	c.bind("render.numbers", flags.Lookup("numbers"))
	c.bind("render.scale", flags.Lookup("scale"))
	c.bind("no_cache", flags.Lookup("no-cache"))
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return config.RenderFormats, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// renderFormat turns DOT source into the requested format, consulting the
// cache for anything Graphviz has to draw. It reports whether the result
// came from the cache.
func renderFormat(ctx context.Context, store cache.Cache, dot, format string, scale float64) ([]byte, bool, error) {
	if format == config.FormatDOT {
		return []byte(dot), false, nil
	}
	logger := loggerFromContext(ctx)

	key := cache.Key("render", format, dot)
	if format == config.FormatPNG {
		key = cache.Key("render", format, dot, scale)
	}
	if data, ok, err := store.Get(ctx, key); err != nil {
		logger.Warn("Cache read failed", "err", err)
	} else if ok {
		logger.Debug("Cache hit", "format", format)
		return data, true, nil
	}

	svg, err := render.RenderSVG(ctx, dot)
	if err != nil {
		return nil, false, errs.Wrap(errs.ErrCodeInternal, err, "render SVG")
	}

	var data []byte
	switch format {
	case config.FormatSVG:
		data = svg
	case config.FormatPDF:
		data, err = render.ToPDF(ctx, svg)
	case config.FormatPNG:
		data, err = render.ToPNG(ctx, svg, scale)
	default:
		return nil, false, errs.New(errs.ErrCodeInvalidFormat, "unknown format: %s", format)
	}
	if err != nil {
		return nil, false, err
	}

	if err := store.Set(ctx, key, data, renderTTL); err != nil {
		logger.Warn("Cache write failed", "err", err)
	}
	return data, false, nil
}

// formatFromPath derives a render format from a file extension.
func formatFromPath(path string) (string, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "gv" {
		ext = config.FormatDOT
	}
	if !slices.Contains(config.RenderFormats, ext) {
		return "", false
	}
	return ext, true
}

