package periodic

import (
	"testing"

	"pgregory.net/rapid"
)

func TestProperty_MetalPartition(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		e := NewElement(rapid.IntRange(1, 5000).Draw(rt, "number"), "", "")
		if e.IsMetal() == e.IsNonMetallic() {
			rt.Fatalf("%s: IsMetal and IsNonMetallic must differ", e)
		}
		if e.IsNoble() && e.Group() != 18 {
			rt.Fatalf("%s: noble outside group 18", e)
		}
	})
}

func TestProperty_RadioelementBelowPolonium(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, Bismuth).Draw(rt, "number")
		want := n == Technetium || n == Promethium
		if got := NewElement(n, "", "").IsRadioelement(); got != want {
			rt.Fatalf("IsRadioelement(%d) = %v, want %v", n, got, want)
		}
	})
}

func TestProperty_PositionConsistent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 100000).Draw(rt, "number")
		pos := Locate(n)
		if !pos.Valid() {
			rt.Fatalf("Locate(%d) is invalid", n)
		}
		if pos.IndexInPeriod < 0 || pos.IndexInPeriod >= PeriodLength(pos.Period) {
			rt.Fatalf("Locate(%d) index %d outside period %d", n, pos.IndexInPeriod, pos.Period)
		}
		if pos.Group != -1 && (pos.Group < 1 || pos.Group > 18) {
			rt.Fatalf("Locate(%d) group %d", n, pos.Group)
		}
		first, _ := PeriodRange(pos.Period)
		if first+pos.IndexInPeriod != n {
			rt.Fatalf("Locate(%d) = %+v does not map back", n, pos)
		}
	})
}

func TestProperty_IsotopeMassFloor(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 300).Draw(rt, "number")
		mass := rapid.Float64Range(-50, 800).Draw(rt, "mass")
		withWeight := rapid.Bool().Draw(rt, "withWeight")

		e := NewElement(n, "", "")
		var opts []IsotopeOption
		if withWeight {
			opts = append(opts, IsotopeWeight(mass))
		}
		iso := NewIsotope(e, mass, opts...)

		if iso.Mass() < n {
			rt.Fatalf("mass %d below atomic number %d", iso.Mass(), n)
		}
		if iso.Neutrons() != iso.Mass()-iso.AtomicNumber() || iso.Neutrons() < 0 {
			rt.Fatalf("neutrons %d for mass %d, Z %d", iso.Neutrons(), iso.Mass(), n)
		}
		if iso.HasWeight() != withWeight {
			rt.Fatalf("HasWeight = %v, want %v", iso.HasWeight(), withWeight)
		}
	})
}

func TestProperty_RemoveIsotope(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		masses := rapid.SliceOfN(rapid.IntRange(6, 20), 1, 8).Draw(rt, "masses")
		specs := make([]IsotopeSpec, len(masses))
		for i, m := range masses {
			specs[i] = MassNumber(float64(m))
		}
		e := NewElement(Carbon, "C", "Carbon", WithIsotopes(specs...))

		before := e.Isotopes()
		victim := before[rapid.IntRange(0, len(before)-1).Draw(rt, "victim")]
		e.RemoveIsotope(victim)

		after := e.Isotopes()
		if len(after) != len(before)-1 {
			rt.Fatalf("len after remove = %d, want %d", len(after), len(before)-1)
		}
		for _, iso := range after {
			if iso == victim {
				rt.Fatalf("removed isotope still present")
			}
		}
	})
}
