package cli

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/12dlabs/chemistry/pkg/cache"
	errs "github.com/12dlabs/chemistry/pkg/errors"
	"github.com/12dlabs/chemistry/pkg/periodic"
	"github.com/12dlabs/chemistry/pkg/registry"
	"github.com/12dlabs/chemistry/pkg/render"
)

func defaultRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := registry.Default()
	require.NoError(t, err)
	return reg
}

func TestLookupClass(t *testing.T) {
	cl, err := lookupClass(" Halogen ")
	require.NoError(t, err)
	assert.Equal(t, "halogen", cl.name)

	_, err = lookupClass("gas")
	assert.True(t, errs.Is(err, errs.ErrCodeInvalidInput))
}

func TestClassesOf(t *testing.T) {
	reg := defaultRegistry(t)

	assert.Equal(t, []string{"metal", "transition", "group-viii"}, classesOf(reg.Get(periodic.Iron)))
	assert.Equal(t, []string{"nonmetal", "halogen"}, classesOf(reg.Get(periodic.Chlorine)))
	assert.Contains(t, classesOf(reg.Get(periodic.Uranium)), "radioactive")
}

func TestParseBlock(t *testing.T) {
	b, err := parseBlock("DS")
	require.NoError(t, err)
	assert.Equal(t, periodic.BlockDS, b)

	_, err = parseBlock("x")
	assert.True(t, errs.Is(err, errs.ErrCodeInvalidInput))
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
		ok   bool
	}{
		{"table.svg", "svg", true},
		{"out/Table.PNG", "png", true},
		{"table.gv", "dot", true},
		{"table.dot", "dot", true},
		{"table.pdf", "pdf", true},
		{"table.txt", "", false},
		{"table", "", false},
	}
	for _, tt := range tests {
		got, ok := formatFromPath(tt.path)
		assert.Equal(t, tt.ok, ok, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}
}

func TestRenderFormat_DOT(t *testing.T) {
	data, cached, err := renderFormat(context.Background(), cache.NewNullCache(), "graph periodic {}", "dot", 1)
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, "graph periodic {}", string(data))
}

func TestRenderFormat_CacheHit(t *testing.T) {
	ctx := context.Background()
	store, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)

	dot := "graph periodic { a }"
	require.NoError(t, store.Set(ctx, cache.Key("render", "svg", dot), []byte("<svg/>"), 0))

	data, cached, err := renderFormat(ctx, store, dot, "svg", 1)
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, "<svg/>", string(data))
}

func TestRenderFormat_PNGKeyIncludesScale(t *testing.T) {
	ctx := context.Background()
	store, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)

	dot := "graph periodic { a }"
	require.NoError(t, store.Set(ctx, cache.Key("render", "png", dot, 2.0), []byte("png@2"), 0))

	data, cached, err := renderFormat(ctx, store, dot, "png", 2)
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, "png@2", string(data))
}

func TestPeriodElements(t *testing.T) {
	reg := defaultRegistry(t)

	assert.Len(t, periodElements(reg, 7), 118)
	assert.Equal(t, 118, reg.Len(), "periods 1-7 need no synthesis")

	assert.Len(t, periodElements(reg, 8), 168)
	assert.Equal(t, 168, reg.Len())
}

func TestTerminalTable(t *testing.T) {
	reg := defaultRegistry(t)
	out := terminalTable(render.Layout(periodElements(reg, 2), 2))

	for _, sym := range []string{"H", "He", "Li", "Ne", "18"} {
		assert.Contains(t, out, sym)
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m browseModel, keys ...string) browseModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(browseModel)
	}
	return m
}

func TestBrowseModel_Navigation(t *testing.T) {
	m := newBrowseModel(defaultRegistry(t))
	require.Len(t, m.elems, 118)

	m = update(t, m, "down", "down", "j")
	assert.Equal(t, 3, m.cursor)
	assert.Equal(t, "Be", m.selected().Symbol())

	m = update(t, m, "up", "up", "up", "up")
	assert.Equal(t, 0, m.cursor, "cursor stops at the top")

	m = update(t, m, "end")
	assert.Equal(t, 117, m.cursor)
	assert.Equal(t, 117-m.height+1, m.offset, "cursor scrolls into view")

	m = update(t, m, "down")
	assert.Equal(t, 117, m.cursor, "cursor stops at the bottom")
}

func TestBrowseModel_Synthesize(t *testing.T) {
	reg := defaultRegistry(t)
	m := update(t, newBrowseModel(reg), "+", "+")

	require.Len(t, m.elems, 120)
	assert.Equal(t, "Ubn", m.selected().Symbol())
	assert.True(t, reg.Exist(120))
	assert.Contains(t, m.View(), "theoretical")
}

func TestBrowseModel_View(t *testing.T) {
	m := newBrowseModel(defaultRegistry(t))

	view := m.View()
	assert.Contains(t, view, "Hydrogen")
	assert.Contains(t, view, "[1/118]")
	assert.NotContains(t, view, "H-1")

	m = update(t, m, "i")
	assert.True(t, m.showIsotopes)
	assert.Contains(t, m.View(), "H-1")
}

func TestBrowseModel_Quit(t *testing.T) {
	m := newBrowseModel(defaultRegistry(t))
	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestBrowseModel_WindowSize(t *testing.T) {
	m := newBrowseModel(defaultRegistry(t))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	assert.Equal(t, 24, next.(browseModel).height)

	next, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	assert.Equal(t, 5, next.(browseModel).height)
}
