package render

import (
	"maps"
	"slices"

	"github.com/12dlabs/chemistry/pkg/periodic"
)

// Groups is the number of columns in the main grid.
const Groups = 18

// Grid is the periodic table laid out for drawing.
type Grid struct {
	// Main has one row per period, indexed by group - 1. Empty cells are nil.
	Main [][Groups]*periodic.Element

	// Interior holds the f/g/i/j elements of each period that has any,
	// in period order.
	Interior []InteriorRow
}

// InteriorRow lists the interior elements of one period by atomic number.
type InteriorRow struct {
	Period   int
	Elements []*periodic.Element
}

// Layout places elems on a grid of maxPeriod rows. Elements beyond
// maxPeriod or without a valid position are left out; when two elements
// share a cell the later one wins. A maxPeriod below 1 means
// DefaultMaxPeriod.
func Layout(elems []*periodic.Element, maxPeriod int) Grid {
	if maxPeriod <= 0 {
		maxPeriod = DefaultMaxPeriod
	}

	g := Grid{Main: make([][Groups]*periodic.Element, maxPeriod)}
	interior := make(map[int][]*periodic.Element)
	for _, e := range elems {
		if e == nil {
			continue
		}
		p := e.Period()
		if p < 1 || p > maxPeriod {
			continue
		}
		if col := e.Group(); col >= 1 && col <= Groups {
			g.Main[p-1][col-1] = e
		} else {
			interior[p] = append(interior[p], e)
		}
	}

	for _, p := range slices.Sorted(maps.Keys(interior)) {
		row := interior[p]
		slices.SortFunc(row, func(a, b *periodic.Element) int { return a.Number() - b.Number() })
		g.Interior = append(g.Interior, InteriorRow{Period: p, Elements: row})
	}
	return g
}
