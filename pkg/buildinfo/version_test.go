package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func setVars(t *testing.T, v, c, d string) {
	t.Helper()
	oldV, oldC, oldD := Version, Commit, Date
	Version, Commit, Date = v, c, d
	t.Cleanup(func() { Version, Commit, Date = oldV, oldC, oldD })
}

func TestFill(t *testing.T) {
	setVars(t, "dev", "none", "unknown")

	fill(&debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	})

	if Version != "v0.3.0" || Commit != "abc123" || Date != "2026-01-02T03:04:05Z" {
		t.Errorf("fill() = %s %s %s", Version, Commit, Date)
	}
}

func TestFillKeepsLdflags(t *testing.T) {
	setVars(t, "v1.0.0", "deadbeef", "2025-12-20")

	fill(&debug.BuildInfo{
		Main:     debug.Module{Version: "v0.3.0"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc123"}},
	})

	if Version != "v1.0.0" || Commit != "deadbeef" || Date != "2025-12-20" {
		t.Errorf("fill() overrode ldflags values: %s %s %s", Version, Commit, Date)
	}
}

func TestFillIgnoresDevel(t *testing.T) {
	setVars(t, "dev", "none", "unknown")
	fill(&debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
	if Version != "dev" {
		t.Errorf("Version = %s, want dev", Version)
	}
}

func TestTemplate(t *testing.T) {
	setVars(t, "v1.2.3", "abc", "today")
	if got := Template(); !strings.HasPrefix(got, "{{.Name}} version v1.2.3\n") {
		t.Errorf("Template() = %q", got)
	}
	if got := String(); got != "version: v1.2.3\ncommit: abc\nbuilt: today" {
		t.Errorf("String() = %q", got)
	}
}
