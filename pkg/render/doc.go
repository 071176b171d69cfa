// Package render draws the periodic table.
//
// # Overview
//
// [ToDOT] lays elements out as a Graphviz graph holding a single HTML-like
// table: one row per period, one column per group, and the f/g/i/j interior
// of each period from 6 on as an extra row below the main grid. Cells are
// coloured by orbital block.
//
//	dot := render.ToDOT(reg.All(), render.Options{ShowNumbers: true})
//	svg, err := render.RenderSVG(ctx, dot)
//
// # Format Conversion
//
// [RenderSVG] uses the embedded Graphviz from go-graphviz. [ToPDF] and
// [ToPNG] convert that SVG further with the external rsvg-convert tool
// (from librsvg).
//
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0) // 2x scale
package render
