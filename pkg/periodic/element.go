package periodic

import (
	"fmt"
	"math"
	"slices"
)

// Element is a chemical element. Its position in the table is derived from
// the atomic number once, at construction, and never changes afterwards.
//
// An Element owns its isotopes: every isotope in the collection reports the
// element as its owner. Duplicate masses are kept as supplied.
type Element struct {
	number   int
	symbol   string
	name     string
	pos      Position
	weight   float64
	hasWt    bool
	isotopes []*Isotope
}

// IsotopeSpec describes an isotope to attach while constructing an Element.
//
// Mass is required. Weight is optional. Element, when non-zero, names the
// atomic number the entry was recorded for; entries recorded for another
// element are dropped.
type IsotopeSpec struct {
	Mass    *float64
	Weight  *float64
	Element int
}

// MassNumber returns a spec carrying only a mass number.
func MassNumber(mass float64) IsotopeSpec {
	return IsotopeSpec{Mass: &mass}
}

// MassWithWeight returns a spec carrying a mass number and an isotopic weight.
func MassWithWeight(mass, weight float64) IsotopeSpec {
	return IsotopeSpec{Mass: &mass, Weight: &weight}
}

type elementConfig struct {
	weight   *float64
	isotopes []IsotopeSpec
}

// ElementOption configures NewElement.
type ElementOption func(*elementConfig)

// WithWeight sets the standard atomic weight in daltons. Non-finite or
// non-positive weights leave the weight unknown.
func WithWeight(w float64) ElementOption {
	return func(c *elementConfig) { c.weight = &w }
}

// WithIsotopes attaches isotopes. Specs without a finite mass, or recorded
// for a different atomic number, are skipped.
func WithIsotopes(specs ...IsotopeSpec) ElementOption {
	return func(c *elementConfig) { c.isotopes = append(c.isotopes, specs...) }
}

// NewElement creates an element. An empty symbol or name is replaced by the
// systematic IUPAC one derived from number (see SynthesizeName).
func NewElement(number int, symbol, name string, opts ...ElementOption) *Element {
	var cfg elementConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if symbol == "" || name == "" {
		sym, nm := SynthesizeName(number)
		if symbol == "" {
			symbol = sym
		}
		if name == "" {
			name = nm
		}
	}

	e := &Element{
		number: number,
		symbol: symbol,
		name:   name,
		pos:    Locate(number),
	}
	if w := cfg.weight; w != nil && isFinite(*w) && *w > 0 {
		e.weight, e.hasWt = *w, true
	}

	for _, spec := range cfg.isotopes {
		if spec.Mass == nil || !isFinite(*spec.Mass) {
			continue
		}
		if spec.Element != 0 && spec.Element != number {
			continue
		}
		var iopts []IsotopeOption
		if spec.Weight != nil {
			iopts = append(iopts, IsotopeWeight(*spec.Weight))
		}
		e.isotopes = append(e.isotopes, NewIsotope(e, *spec.Mass, iopts...))
	}
	return e
}

// Number returns the atomic number.
func (e *Element) Number() int { return e.number }

// Symbol returns the chemical symbol, e.g. "Fe".
func (e *Element) Symbol() string { return e.symbol }

// Name returns the element name, e.g. "Iron".
func (e *Element) Name() string { return e.name }

// Position returns the derived table position.
func (e *Element) Position() Position { return e.pos }

// Period returns the one-based table row.
func (e *Element) Period() int { return e.pos.Period }

// IndexInPeriod returns the zero-based index inside the row.
func (e *Element) IndexInPeriod() int { return e.pos.IndexInPeriod }

// Group returns the IUPAC group, or -1 inside the f/g/i/j interior.
func (e *Element) Group() int { return e.pos.Group }

// Block returns the orbital block.
func (e *Element) Block() Block { return e.pos.Block }

// Weight returns the standard atomic weight in daltons and whether it is known.
func (e *Element) Weight() (float64, bool) { return e.weight, e.hasWt }

// Isotopes returns a snapshot of the owned isotopes. Modifying the returned
// slice does not affect the element.
func (e *Element) Isotopes() []*Isotope {
	return slices.Clone(e.isotopes)
}

// IsAlkaliMetal reports group 1 below hydrogen's period.
func (e *Element) IsAlkaliMetal() bool { return e.pos.Period > 1 && e.pos.Group == 1 }

// IsAlkalineEarthMetal reports group 2.
func (e *Element) IsAlkalineEarthMetal() bool { return e.pos.Group == 2 }

// IsInVIII reports membership of the old group VIII (groups 8 to 10).
func (e *Element) IsInVIII() bool { return e.pos.Group >= 8 && e.pos.Group <= 10 }

// IsTransition reports groups 3 to 12.
func (e *Element) IsTransition() bool { return e.pos.Group >= 3 && e.pos.Group <= 12 }

// IsMetal reports whether the element is a metal. Periods 2 to 5 follow the
// metalloid staircase through groups 13 to 16.
func (e *Element) IsMetal() bool {
	period, group := e.pos.Period, e.pos.Group
	if period < 2 || group > 16 {
		return false
	}
	if group < 13 || period > 5 {
		return true
	}
	return period+10 >= group
}

// IsNonMetallic is the negation of IsMetal.
func (e *Element) IsNonMetallic() bool { return !e.IsMetal() }

// IsInBoronGroup reports group 13.
func (e *Element) IsInBoronGroup() bool { return e.pos.Group == 13 }

// IsInCarbonGroup reports group 14.
func (e *Element) IsInCarbonGroup() bool { return e.pos.Group == 14 }

// IsInNitrogenGroup reports group 15.
func (e *Element) IsInNitrogenGroup() bool { return e.pos.Group == 15 }

// IsChalcogen reports group 16.
func (e *Element) IsChalcogen() bool { return e.pos.Group == 16 }

// IsHalogen reports group 17.
func (e *Element) IsHalogen() bool { return e.pos.Group == 17 }

// IsNoble reports group 18.
func (e *Element) IsNoble() bool { return e.pos.Group == 18 }

// IsRadioelement reports elements without stable isotopes: technetium,
// promethium and everything from polonium on.
func (e *Element) IsRadioelement() bool {
	return e.number >= Polonium || e.number == Technetium || e.number == Promethium
}

// IsValid reports whether the element has a table position and a symbol.
func (e *Element) IsValid() bool { return e.pos.Period > 0 && e.symbol != "" }

// Category returns a coarse classification label used for display.
func (e *Element) Category() string {
	switch {
	case !e.IsValid():
		return "unknown"
	case e.IsAlkaliMetal():
		return "alkali metal"
	case e.IsAlkalineEarthMetal():
		return "alkaline earth metal"
	case e.pos.Group == -1:
		return "inner transition metal"
	case e.IsTransition():
		return "transition metal"
	case e.IsHalogen():
		return "halogen"
	case e.IsNoble():
		return "noble gas"
	case e.IsMetal():
		return "metal"
	}
	return "nonmetal"
}

// Isotope returns the owned isotope whose mass number equals mass exactly.
// Otherwise it returns a new isotope, with mass rounded, that is not added
// to the element: Isotope(55.6) on iron is a fresh Fe-56, not the owned one.
// The result is (nil, false) for a non-finite mass or one below the atomic
// number.
func (e *Element) Isotope(mass float64) (*Isotope, bool) {
	if !isFinite(mass) || mass < float64(e.number) {
		return nil, false
	}
	for _, iso := range e.isotopes {
		if float64(iso.mass) == mass {
			return iso, true
		}
	}
	return NewIsotope(e, mass), true
}

// RemoveIsotope removes iso from the owned collection, compared by identity.
// A nil or unowned isotope is ignored.
func (e *Element) RemoveIsotope(iso *Isotope) {
	if iso == nil {
		return
	}
	e.isotopes = slices.DeleteFunc(e.isotopes, func(x *Isotope) bool { return x == iso })
}

// String returns the symbol followed by the atomic number, e.g. "Fe (26)".
func (e *Element) String() string {
	return fmt.Sprintf("%s (%d)", e.symbol, e.number)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
