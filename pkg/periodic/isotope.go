package periodic

import "fmt"

// Isotope is a nuclide of an element: a mass number and, when known, the
// isotopic mass in daltons.
//
// The element reference is not owning and may be nil, in which case the
// atomic number reads as 0 and the symbol as "?".
type Isotope struct {
	element *Element
	mass    int
	weight  float64
	hasWt   bool
}

type isotopeConfig struct {
	weight       *float64
	massAsWeight bool
}

// IsotopeOption configures NewIsotope.
type IsotopeOption func(*isotopeConfig)

// IsotopeWeight sets the isotopic mass in daltons. Non-finite values leave
// the weight unknown.
func IsotopeWeight(w float64) IsotopeOption {
	return func(c *isotopeConfig) { c.weight = &w }
}

// MassAsWeight uses the (clamped) mass number as the weight.
func MassAsWeight() IsotopeOption {
	return func(c *isotopeConfig) { c.massAsWeight = true }
}

// NewIsotope creates an isotope of e. The mass is rounded, with non-finite
// values treated as 0, and then clamped to at least the atomic number of a
// valid element, or to at least 0 otherwise.
//
// The isotope is not added to e; use WithIsotopes for owned isotopes.
func NewIsotope(e *Element, mass float64, opts ...IsotopeOption) *Isotope {
	var cfg isotopeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	m := 0
	if isFinite(mass) {
		m = Round(mass)
	}
	floor := 0
	if e != nil && e.number > 0 {
		floor = e.number
	}
	m = max(m, floor)

	iso := &Isotope{element: e, mass: m}
	switch {
	case cfg.massAsWeight:
		iso.weight, iso.hasWt = float64(m), true
	case cfg.weight != nil && isFinite(*cfg.weight):
		iso.weight, iso.hasWt = *cfg.weight, true
	}
	return iso
}

// Element returns the element the isotope belongs to, or nil.
func (i *Isotope) Element() *Element { return i.element }

// Mass returns the mass number: protons plus neutrons.
func (i *Isotope) Mass() int { return i.mass }

// Weight returns the isotopic mass in daltons and whether it is known.
func (i *Isotope) Weight() (float64, bool) { return i.weight, i.hasWt }

// HasWeight reports whether the isotopic mass is known.
func (i *Isotope) HasWeight() bool { return i.hasWt }

// AtomicNumber returns the proton count, or 0 without a valid element.
func (i *Isotope) AtomicNumber() int {
	if i.element == nil || i.element.number < 1 {
		return 0
	}
	return i.element.number
}

// ElementSymbol returns the symbol of the element, or "?" when unknown.
func (i *Isotope) ElementSymbol() string {
	if i.element == nil || i.element.symbol == "" {
		return "?"
	}
	return i.element.symbol
}

// Neutrons returns the neutron count, never negative.
func (i *Isotope) Neutrons() int {
	return max(0, i.mass-i.AtomicNumber())
}

// String returns the nuclide notation, e.g. "Fe-56".
func (i *Isotope) String() string {
	return fmt.Sprintf("%s-%d", i.ElementSymbol(), i.mass)
}
