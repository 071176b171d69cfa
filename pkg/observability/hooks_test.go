package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Registry hooks
	r := NoopRegistryHooks{}
	r.OnLookup(26, true)
	r.OnSynthesize(119, "Uue")
	r.OnRegister(119, true)
	r.OnRemove(119)

	// Dataset hooks
	d := NoopDatasetHooks{}
	d.OnLoad("embedded", 118, time.Millisecond, nil)
	d.OnLoad("elements.yaml", 0, time.Millisecond, errors.New("boom"))

	// Render hooks
	h := NoopRenderHooks{}
	h.OnRenderStart(ctx, "svg")
	h.OnRenderComplete(ctx, "svg", 1024, time.Second, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Registry().(NoopRegistryHooks); !ok {
		t.Error("Registry() should return NoopRegistryHooks by default")
	}
	if _, ok := Dataset().(NoopDatasetHooks); !ok {
		t.Error("Dataset() should return NoopDatasetHooks by default")
	}
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}

	// Set custom hooks
	customRegistry := &testRegistryHooks{}
	SetRegistryHooks(customRegistry)
	if Registry() != customRegistry {
		t.Error("SetRegistryHooks should set custom hooks")
	}

	customDataset := &testDatasetHooks{}
	SetDatasetHooks(customDataset)
	if Dataset() != customDataset {
		t.Error("SetDatasetHooks should set custom hooks")
	}

	customRender := &testRenderHooks{}
	SetRenderHooks(customRender)
	if Render() != customRender {
		t.Error("SetRenderHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Registry().(NoopRegistryHooks); !ok {
		t.Error("Reset() should restore NoopRegistryHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testDatasetHooks{}
	SetDatasetHooks(custom)

	// Setting nil should be ignored
	SetDatasetHooks(nil)

	if Dataset() != custom {
		t.Error("SetDatasetHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testRegistryHooks struct{ NoopRegistryHooks }
type testDatasetHooks struct{ NoopDatasetHooks }
type testRenderHooks struct{ NoopRenderHooks }
