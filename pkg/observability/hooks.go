// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about registry lookups, dataset loading, and rendering.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Registry and dataset events carry no context: those operations never block.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetRegistryHooks(&myRegistryHooks{})
//	    observability.SetDatasetHooks(&myDatasetHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Dataset().OnLoad(source, len(records), time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Registry Hooks
// =============================================================================

// RegistryHooks receives events from element registries.
type RegistryHooks interface {
	// OnLookup records a lookup by atomic number. hit is false when the
	// element had to be synthesized or the number was rejected.
	OnLookup(number int, hit bool)

	// OnSynthesize records a theoretical element created on first lookup.
	OnSynthesize(number int, symbol string)

	// OnRegister records an explicit registration. dense reports whether the
	// element landed in the seeded range.
	OnRegister(number int, dense bool)

	// OnRemove records an eviction from the overflow store.
	OnRemove(number int)
}

// =============================================================================
// Dataset Hooks
// =============================================================================

// DatasetHooks receives events from seed dataset loading.
type DatasetHooks interface {
	// OnLoad records a completed load. source names the file or "embedded".
	OnLoad(source string, count int, duration time.Duration, err error)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from periodic table rendering.
type RenderHooks interface {
	OnRenderStart(ctx context.Context, format string)
	OnRenderComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopRegistryHooks is a no-op implementation of RegistryHooks.
type NoopRegistryHooks struct{}

func (NoopRegistryHooks) OnLookup(int, bool)       {}
func (NoopRegistryHooks) OnSynthesize(int, string) {}
func (NoopRegistryHooks) OnRegister(int, bool)     {}
func (NoopRegistryHooks) OnRemove(int)             {}

// NoopDatasetHooks is a no-op implementation of DatasetHooks.
type NoopDatasetHooks struct{}

func (NoopDatasetHooks) OnLoad(string, int, time.Duration, error) {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, string)                               {}
func (NoopRenderHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	registryHooks RegistryHooks = NoopRegistryHooks{}
	datasetHooks  DatasetHooks  = NoopDatasetHooks{}
	renderHooks   RenderHooks   = NoopRenderHooks{}
	hooksMu       sync.RWMutex
)

// SetRegistryHooks registers custom registry hooks.
// Registries created afterwards without an explicit hook option use them.
func SetRegistryHooks(h RegistryHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		registryHooks = h
	}
}

// SetDatasetHooks registers custom dataset hooks.
// This should be called once at application startup before any dataset is loaded.
func SetDatasetHooks(h DatasetHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		datasetHooks = h
	}
}

// SetRenderHooks registers custom render hooks.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Registry returns the registered registry hooks.
func Registry() RegistryHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return registryHooks
}

// Dataset returns the registered dataset hooks.
func Dataset() DatasetHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return datasetHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	registryHooks = NoopRegistryHooks{}
	datasetHooks = NoopDatasetHooks{}
	renderHooks = NoopRenderHooks{}
}
