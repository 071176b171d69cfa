package render

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"regexp"
	"strconv"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/12dlabs/chemistry/pkg/observability"
	"github.com/12dlabs/chemistry/pkg/periodic"
)

// DefaultMaxPeriod is the last period drawn when Options.MaxPeriod is unset.
const DefaultMaxPeriod = 7

// Options configures periodic table rendering.
type Options struct {
	// MaxPeriod is the last period drawn. Zero means DefaultMaxPeriod.
	MaxPeriod int

	// ShowNumbers adds the atomic number under each symbol.
	ShowNumbers bool

	// Title is drawn above the table when set.
	Title string
}

// BlockColors maps each block to its cell background.
var BlockColors = map[periodic.Block]string{
	periodic.BlockS:    "#f4a6a6",
	periodic.BlockP:    "#f9e08b",
	periodic.BlockD:    "#9ecae1",
	periodic.BlockDS:   "#a1d99b",
	periodic.BlockF:    "#d4b9f7",
	periodic.BlockG:    "#fdd0a2",
	periodic.BlockI:    "#c7e9c0",
	periodic.BlockJ:    "#fcc5c0",
	periodic.BlockNone: "#e5e5e5",
}

// ToDOT converts elements to Graphviz DOT format, placing them as [Layout]
// does.
// The resulting DOT string can be rendered using [RenderSVG].
func ToDOT(elems []*periodic.Element, opts Options) string {
	grid := Layout(elems, opts.MaxPeriod)

	var buf bytes.Buffer
	buf.WriteString("graph periodic {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n  fontsize=24;\n", opts.Title)
	}
	buf.WriteString("  node [shape=plaintext, fontname=\"Helvetica\"];\n")
	buf.WriteString("\n")
	buf.WriteString("  table [label=<\n")
	buf.WriteString("<TABLE BORDER=\"0\" CELLBORDER=\"1\" CELLSPACING=\"2\" CELLPADDING=\"4\">\n")

	for _, row := range grid.Main {
		buf.WriteString("<TR>")
		for _, e := range row {
			buf.WriteString(fmtCell(e, opts.ShowNumbers))
		}
		buf.WriteString("</TR>\n")
	}

	for _, row := range grid.Interior {
		buf.WriteString("<TR>")
		buf.WriteString(fmtCell(nil, false))
		buf.WriteString(fmtCell(nil, false))
		for _, e := range row.Elements {
			buf.WriteString(fmtCell(e, opts.ShowNumbers))
		}
		buf.WriteString("</TR>\n")
	}

	buf.WriteString("</TABLE>>];\n")
	buf.WriteString("}\n")
	return buf.String()
}

func fmtCell(e *periodic.Element, showNumber bool) string {
	if e == nil {
		return `<TD BORDER="0"></TD>`
	}
	label := "<B>" + html.EscapeString(e.Symbol()) + "</B>"
	if showNumber {
		label += `<BR/><FONT POINT-SIZE="8">` + strconv.Itoa(e.Number()) + "</FONT>"
	}
	return fmt.Sprintf(`<TD BGCOLOR="%s" TOOLTIP="%s">%s</TD>`,
		BlockColors[e.Block()], html.EscapeString(e.Name()), label)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [ToPDF] or [ToPNG].
func RenderSVG(ctx context.Context, dot string) (svg []byte, err error) {
	start := time.Now()
	hooks := observability.Render()
	hooks.OnRenderStart(ctx, "svg")
	defer func() {
		hooks.OnRenderComplete(ctx, "svg", len(svg), time.Since(start), err)
	}()

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
