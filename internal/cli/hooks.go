package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/12dlabs/chemistry/pkg/observability"
)

// logHooks reports library events at debug level.
type logHooks struct {
	logger *log.Logger
}

func installHooks(l *log.Logger) {
	h := logHooks{logger: l}
	observability.SetRegistryHooks(h)
	observability.SetDatasetHooks(h)
	observability.SetRenderHooks(h)
}

func (h logHooks) OnLookup(number int, hit bool) {}

func (h logHooks) OnSynthesize(number int, symbol string) {
	h.logger.Debug("Synthesized element", "number", number, "symbol", symbol)
}

func (h logHooks) OnRegister(number int, dense bool) {
	h.logger.Debug("Registered element", "number", number, "dense", dense)
}

func (h logHooks) OnRemove(number int) {
	h.logger.Debug("Removed element", "number", number)
}

func (h logHooks) OnLoad(source string, count int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("Dataset load failed", "source", source, "err", err)
		return
	}
	h.logger.Debug("Loaded dataset", "source", source, "elements", count, "took", d.Round(time.Microsecond))
}

func (h logHooks) OnRenderStart(ctx context.Context, format string) {
	h.logger.Debug("Rendering", "format", format)
}

func (h logHooks) OnRenderComplete(ctx context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("Render failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("Rendered", "format", format, "bytes", size, "took", d.Round(time.Millisecond))
}

var (
	_ observability.RegistryHooks = logHooks{}
	_ observability.DatasetHooks  = logHooks{}
	_ observability.RenderHooks   = logHooks{}
)
