package dataset

import "github.com/12dlabs/chemistry/pkg/periodic"

// Elements builds one element per record, in order.
func Elements(records []Record) []*periodic.Element {
	out := make([]*periodic.Element, 0, len(records))
	for _, r := range records {
		var opts []periodic.ElementOption
		if r.Weight != nil {
			opts = append(opts, periodic.WithWeight(*r.Weight))
		}
		if len(r.Isotopes) > 0 {
			specs := make([]periodic.IsotopeSpec, len(r.Isotopes))
			for i, iso := range r.Isotopes {
				specs[i] = periodic.IsotopeSpec{Mass: iso.Mass, Weight: iso.Weight}
			}
			opts = append(opts, periodic.WithIsotopes(specs...))
		}
		out = append(out, periodic.NewElement(r.Number, r.Symbol, r.Name, opts...))
	}
	return out
}

// FromElements converts elements back into records. Unknown weights are
// left out.
func FromElements(elems []*periodic.Element) []Record {
	out := make([]Record, 0, len(elems))
	for _, e := range elems {
		r := Record{Number: e.Number(), Symbol: e.Symbol(), Name: e.Name()}
		if w, ok := e.Weight(); ok {
			r.Weight = &w
		}
		for _, iso := range e.Isotopes() {
			mass := float64(iso.Mass())
			ir := IsotopeRecord{Mass: &mass}
			if w, ok := iso.Weight(); ok {
				ir.Weight = &w
			}
			r.Isotopes = append(r.Isotopes, ir)
		}
		out = append(out, r)
	}
	return out
}
