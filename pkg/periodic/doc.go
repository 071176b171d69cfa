// Package periodic models the chemical periodic table: element positions,
// elements and their isotopes.
//
// # Positions
//
// Every position is derived from the atomic number alone. [PeriodOf] finds
// the row and the index inside it, [GroupOf] the IUPAC group and [BlockOf]
// the orbital block; [Locate] runs all three:
//
//	pos := periodic.Locate(periodic.Iron)
//	// pos.Period == 4, pos.Group == 8, pos.Block == periodic.BlockD
//
// The table is not limited to the 118 named elements. Past period 7 it
// continues in pairs of equal-length periods (50, 50, 72, 72, ...), adding
// the hypothetical g, i and j blocks, so any positive atomic number has a
// position. Elements inside the f/g/i/j interior have no group and report -1.
//
// # Elements and Isotopes
//
// [NewElement] computes the position once; an [Element] never changes its
// number or position afterwards. Elements created without a symbol or name
// get the systematic IUPAC one (119 becomes "Uue", Ununennium).
//
// An element owns its isotopes. [Element.Isotope] looks an isotope up by
// mass number and falls back to an unregistered one, leaving the owned
// collection unchanged.
//
// # Errors
//
// Nothing in this package returns an error. Invalid input degrades to
// sentinel values: -1 positions, [BlockNone], (nil, false) lookups.
package periodic
