package cli

import (
	"slices"
	"strings"

	errs "github.com/12dlabs/chemistry/pkg/errors"
	"github.com/12dlabs/chemistry/pkg/periodic"
)

// class is a named element classification usable with list --class.
type class struct {
	name string
	test func(*periodic.Element) bool
}

var classes = []class{
	{"metal", (*periodic.Element).IsMetal},
	{"nonmetal", (*periodic.Element).IsNonMetallic},
	{"alkali", (*periodic.Element).IsAlkaliMetal},
	{"alkaline-earth", (*periodic.Element).IsAlkalineEarthMetal},
	{"transition", (*periodic.Element).IsTransition},
	{"group-viii", (*periodic.Element).IsInVIII},
	{"boron", (*periodic.Element).IsInBoronGroup},
	{"carbon", (*periodic.Element).IsInCarbonGroup},
	{"nitrogen", (*periodic.Element).IsInNitrogenGroup},
	{"chalcogen", (*periodic.Element).IsChalcogen},
	{"halogen", (*periodic.Element).IsHalogen},
	{"noble", (*periodic.Element).IsNoble},
	{"radioactive", (*periodic.Element).IsRadioelement},
}

func classNames() []string {
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = c.name
	}
	return names
}

// lookupClass finds a class by name, case-insensitively.
func lookupClass(name string) (class, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range classes {
		if c.name == name {
			return c, nil
		}
	}
	return class{}, errs.New(errs.ErrCodeInvalidInput, "unknown class %q (want one of %s)",
		name, strings.Join(classNames(), ", "))
}

// classesOf returns the names of every class e belongs to, metal or
// nonmetal first.
func classesOf(e *periodic.Element) []string {
	var out []string
	for _, c := range classes {
		if c.test(e) {
			out = append(out, c.name)
		}
	}
	return out
}

var blockNames = []string{"s", "p", "d", "ds", "f", "g", "i", "j"}

func parseBlock(s string) (periodic.Block, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !slices.Contains(blockNames, s) {
		return periodic.BlockNone, errs.New(errs.ErrCodeInvalidInput, "unknown block %q (want one of %s)",
			s, strings.Join(blockNames, ", "))
	}
	return periodic.Block(s), nil
}
