package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/12dlabs/chemistry/pkg/dataset"
	errs "github.com/12dlabs/chemistry/pkg/errors"
	"github.com/12dlabs/chemistry/pkg/observability"
)

// sandbox isolates config, cache and working directory for one test.
func sandbox(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	t.Cleanup(observability.Reset)
	return dir
}

// execute runs the CLI with args and returns what it wrote to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var logs, out bytes.Buffer
	root := New(&logs, LogInfo).RootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestElementCommand(t *testing.T) {
	sandbox(t)

	out, err := execute(t, "element", "Fe")
	require.NoError(t, err)
	assert.Contains(t, out, "Iron")
	assert.Contains(t, out, "55.845")
	assert.Contains(t, out, "transition metal")
	assert.Contains(t, out, "group-viii")
	assert.NotContains(t, out, "Theoretical")

	byNumber, err := execute(t, "element", "26")
	require.NoError(t, err)
	assert.Equal(t, out, byNumber)
}

func TestElementCommand_Theoretical(t *testing.T) {
	sandbox(t)

	out, err := execute(t, "element", "119")
	require.NoError(t, err)
	assert.Contains(t, out, "Ununennium")
	assert.Contains(t, out, "Uue")
	assert.Contains(t, out, "Theoretical")
}

func TestElementCommand_Errors(t *testing.T) {
	sandbox(t)

	tests := []struct {
		key  string
		code errs.Code
	}{
		{"Xx", errs.ErrCodeElementNotFound},
		{"0", errs.ErrCodeElementNotFound},
		{"  ", errs.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			_, err := execute(t, "element", tt.key)
			require.Error(t, err)
			assert.True(t, errs.Is(err, tt.code), "got %v", err)
		})
	}
}

func TestIsotopesCommand(t *testing.T) {
	sandbox(t)

	out, err := execute(t, "isotopes", "C")
	require.NoError(t, err)
	assert.Contains(t, out, "Carbon isotopes")
	assert.Contains(t, out, "C-12")
	assert.Contains(t, out, "C-14")
	assert.Contains(t, out, "Neutrons")
}

func TestIsotopesCommand_None(t *testing.T) {
	sandbox(t)

	out, err := execute(t, "isotopes", "119")
	require.NoError(t, err)
	assert.Contains(t, out, "Ununennium has no recorded isotopes")
}

func TestPeriodCommand(t *testing.T) {
	sandbox(t)

	out, err := execute(t, "period", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Period 2")
	assert.Contains(t, out, "Lithium")
	assert.Contains(t, out, "Neon")
	assert.Contains(t, out, "8 elements, 3 to 10")

	out, err = execute(t, "period", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "Ununennium")
	assert.Contains(t, out, "50 elements, 119 to 168")
}

func TestPeriodCommand_Invalid(t *testing.T) {
	sandbox(t)

	for _, arg := range []string{"0", "31", "two"} {
		_, err := execute(t, "period", arg)
		require.Error(t, err, arg)
		assert.True(t, errs.Is(err, errs.ErrCodeInvalidNumber), "%s: %v", arg, err)
	}
}

func TestListCommand(t *testing.T) {
	sandbox(t)

	out, err := execute(t, "list", "--class", "halogen")
	require.NoError(t, err)
	for _, name := range []string{"Fluorine", "Chlorine", "Bromine", "Iodine", "Astatine", "Tennessine"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "6 of 118 elements")

	out, err = execute(t, "list", "--block", "f", "--period", "6")
	require.NoError(t, err)
	assert.Contains(t, out, "Lanthanum")
	assert.Contains(t, out, "Ytterbium")
	assert.NotContains(t, out, "Lutetium")
	assert.Contains(t, out, "14 of 118 elements")
}

func TestListCommand_NoMatch(t *testing.T) {
	sandbox(t)

	out, err := execute(t, "list", "--class", "noble", "--period", "4", "--block", "s")
	require.NoError(t, err)
	assert.Contains(t, out, "No elements match")
}

func TestListCommand_Invalid(t *testing.T) {
	sandbox(t)

	_, err := execute(t, "list", "--class", "gas")
	assert.True(t, errs.Is(err, errs.ErrCodeInvalidInput), "got %v", err)

	_, err = execute(t, "list", "--block", "x")
	assert.True(t, errs.Is(err, errs.ErrCodeInvalidInput), "got %v", err)

	_, err = execute(t, "list", "--period", "0")
	assert.True(t, errs.Is(err, errs.ErrCodeInvalidNumber), "got %v", err)
}

func TestTableCommand(t *testing.T) {
	sandbox(t)

	out, err := execute(t, "table")
	require.NoError(t, err)
	for _, sym := range []string{"H", "He", "Fe", "Og", "La", "Lr"} {
		assert.Contains(t, out, sym)
	}
	assert.NotContains(t, out, "Uue")

	out, err = execute(t, "table", "--max-period", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "Uue")

	_, err = execute(t, "table", "--max-period", "0")
	assert.True(t, errs.Is(err, errs.ErrCodeInvalidInput), "got %v", err)
}

func TestRenderCommand_DOT(t *testing.T) {
	dir := sandbox(t)

	out, err := execute(t, "render", "--format", "dot")
	require.NoError(t, err)
	assert.Contains(t, out, "graph periodic")
	assert.Contains(t, out, "<B>Fe</B>")

	path := filepath.Join(dir, "table.gv")
	out, err = execute(t, "render", "-o", path, "--title", "Elements")
	require.NoError(t, err)
	assert.Contains(t, out, "Rendered DOT")
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `label="Elements"`)
}

func TestRenderCommand_InvalidFormat(t *testing.T) {
	sandbox(t)

	_, err := execute(t, "render", "--format", "gif")
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrCodeInvalidFormat), "got %v", err)
}

func TestExportCommand(t *testing.T) {
	sandbox(t)

	out, err := execute(t, "export", "--format", "json")
	require.NoError(t, err)

	var doc struct {
		Elements []dataset.Record `json:"elements"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Elements, 118)
	assert.Equal(t, "Fe", doc.Elements[25].Symbol)
}

func TestExportCommand_FileFormatFromExtension(t *testing.T) {
	dir := sandbox(t)
	path := filepath.Join(dir, "elements.yaml")

	out, err := execute(t, "export", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 118 elements as YAML")

	records, err := dataset.LoadFile(path)
	require.NoError(t, err)
	require.NoError(t, dataset.Validate(records))
	assert.Len(t, records, 118)
}

func TestDatasetFlag(t *testing.T) {
	dir := sandbox(t)
	path := filepath.Join(dir, "tiny.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[element]]
number = 1
symbol = "H"
name = "Hydrogen"

[[element]]
number = 2
symbol = "He"
name = "Helium"
`), 0o644))

	out, err := execute(t, "--dataset", path, "element", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Trium")
	assert.Contains(t, out, "Theoretical")

	out, err = execute(t, "--dataset", path, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "2 of 2 elements")
}

func TestDatasetFlag_Errors(t *testing.T) {
	dir := sandbox(t)

	_, err := execute(t, "--dataset", filepath.Join(dir, "missing.toml"), "element", "1")
	assert.True(t, errs.Is(err, errs.ErrCodeFileNotFound), "got %v", err)

	gap := filepath.Join(dir, "gap.json")
	require.NoError(t, os.WriteFile(gap, []byte(`{"elements":[{"number":2,"symbol":"He","name":"Helium"}]}`), 0o644))
	_, err = execute(t, "--dataset", gap, "element", "1")
	assert.True(t, errs.Is(err, errs.ErrCodeInvalidDataset), "got %v", err)
}

func TestConfigFile(t *testing.T) {
	dir := sandbox(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".chemistry.toml"), []byte("[export]\nformat = \"yaml\"\n"), 0o644))

	out, err := execute(t, "export")
	require.NoError(t, err)
	assert.Contains(t, out, "elements:")

	// Flags win over the file.
	out, err = execute(t, "export", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"elements"`)
}

func TestConfigFile_Explicit(t *testing.T) {
	dir := sandbox(t)
	path := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[render]\nformat = \"dot\"\n"), 0o644))

	out, err := execute(t, "--config", path, "render")
	require.NoError(t, err)
	assert.Contains(t, out, "graph periodic")

	_, err = execute(t, "--config", filepath.Join(dir, "nope.toml"), "render")
	assert.True(t, errs.Is(err, errs.ErrCodeFileNotFound), "got %v", err)
}

func TestEnvConfig(t *testing.T) {
	sandbox(t)
	t.Setenv("CHEMISTRY_EXPORT_FORMAT", "json")

	out, err := execute(t, "export")
	require.NoError(t, err)
	assert.Contains(t, out, `"elements"`)
}

func TestVerboseLogsHooks(t *testing.T) {
	sandbox(t)

	var logs, out bytes.Buffer
	root := New(&logs, LogInfo).RootCommand()
	root.SetOut(&out)
	root.SetArgs([]string{"-v", "element", "120"})
	require.NoError(t, root.ExecuteContext(context.Background()))

	assert.Contains(t, logs.String(), "Loaded dataset")
	assert.Contains(t, logs.String(), "Synthesized element")
}

func TestCacheCommands(t *testing.T) {
	dir := sandbox(t)

	out, err := execute(t, "cache", "path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cache", appName)+"\n", out)

	out, err = execute(t, "cache", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Cache is empty")

	store := newCache(false)
	require.NoError(t, store.Set(context.Background(), "k", []byte("v"), 0))
	out, err = execute(t, "cache", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Cleared 1 cached entries")
}

func TestCompletionCommand(t *testing.T) {
	sandbox(t)

	out, err := execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "bash completion")

	_, err = execute(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	sandbox(t)

	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "chemistry version")
}
