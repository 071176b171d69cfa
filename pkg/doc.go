// Package pkg provides the core libraries for the chemistry periodic table.
//
// # Overview
//
// Every element's place in the periodic table follows from its atomic number
// alone. The pkg directory is organized around that fact:
//
//  1. [periodic] - Position derivation, elements and isotopes
//  2. [registry] - Lookup by number or symbol, with theoretical elements
//     synthesized on demand
//  3. [dataset] - The embedded seed of 118 named elements and its codecs
//  4. [render] - The table as Graphviz DOT, SVG, PDF or PNG
//
// # Architecture
//
// The typical data flow:
//
//	elements.toml (or a user dataset)
//	         ↓
//	    [dataset] package (decode + validate records)
//	         ↓
//	    [periodic] package (elements with derived positions)
//	         ↓
//	    [registry] package (lookup, synthesis past the seed)
//	         ↓
//	    [render] package (DOT → SVG → PDF/PNG)
//
// # Quick Start
//
//	import (
//	    "github.com/12dlabs/chemistry/pkg/periodic"
//	    "github.com/12dlabs/chemistry/pkg/registry"
//	)
//
//	reg, err := registry.Default()
//	if err != nil {
//	    return err
//	}
//	fe := reg.Get(periodic.Iron)
//	fmt.Println(fe.Period(), fe.Group(), fe.Block()) // 4 8 d
//
//	uue := reg.Get(119) // synthesized: Uue, Ununennium
//
// Positions need no registry at all:
//
//	pos := periodic.Locate(164) // period 8, group 14, block p
//
// # Supporting Packages
//
// [errors] - Coded errors and input validators shared by every package that
// can fail.
//
// [observability] - Hook interfaces for registry, dataset and render events
// with no-op defaults.
//
// [cache] - File cache for rendered output between CLI runs.
//
// [buildinfo] - Version information injected at build time.
//
// [periodic]: https://pkg.go.dev/github.com/12dlabs/chemistry/pkg/periodic
// [registry]: https://pkg.go.dev/github.com/12dlabs/chemistry/pkg/registry
// [dataset]: https://pkg.go.dev/github.com/12dlabs/chemistry/pkg/dataset
// [render]: https://pkg.go.dev/github.com/12dlabs/chemistry/pkg/render
// [errors]: https://pkg.go.dev/github.com/12dlabs/chemistry/pkg/errors
// [observability]: https://pkg.go.dev/github.com/12dlabs/chemistry/pkg/observability
// [cache]: https://pkg.go.dev/github.com/12dlabs/chemistry/pkg/cache
// [buildinfo]: https://pkg.go.dev/github.com/12dlabs/chemistry/pkg/buildinfo
package pkg
