package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Record is the seed entry for one element.
type Record struct {
	Number   int             `toml:"number" yaml:"number" json:"number"`
	Symbol   string          `toml:"symbol" yaml:"symbol" json:"symbol"`
	Name     string          `toml:"name" yaml:"name" json:"name"`
	Weight   *float64        `toml:"weight,omitempty" yaml:"weight,omitempty" json:"weight,omitempty"`
	Isotopes []IsotopeRecord `toml:"isotopes,omitempty" yaml:"isotopes,omitempty,flow" json:"isotopes,omitempty"`
}

// IsotopeRecord is one isotope of a Record. Mass is the mass number and
// Weight the isotopic mass in daltons; either may be missing in loosely
// typed input.
type IsotopeRecord struct {
	Mass   *float64 `toml:"mass" yaml:"mass" json:"mass"`
	Weight *float64 `toml:"weight,omitempty" yaml:"weight,omitempty" json:"weight,omitempty"`
}

// isotopeFields has the IsotopeRecord layout without its decoding methods.
type isotopeFields IsotopeRecord

// UnmarshalTOML accepts a bare number or a { mass, weight } table.
func (r *IsotopeRecord) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case int64, float64:
		f, _ := number(v)
		*r = IsotopeRecord{Mass: &f}
		return nil
	case map[string]any:
		var out IsotopeRecord
		for key, raw := range v {
			f, ok := number(raw)
			if !ok {
				return fmt.Errorf("isotope %s: expected a number, got %T", key, raw)
			}
			switch key {
			case "mass":
				out.Mass = &f
			case "weight":
				out.Weight = &f
			default:
				return fmt.Errorf("isotope: unknown key %q", key)
			}
		}
		*r = out
		return nil
	}
	return fmt.Errorf("isotope: expected a number or a table, got %T", data)
}

// MarshalTOML writes the isotope as an inline table.
func (r IsotopeRecord) MarshalTOML() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("{ ")
	if r.Mass != nil {
		fmt.Fprintf(&buf, "mass = %s", tomlFloat(*r.Mass))
	}
	if r.Weight != nil {
		if r.Mass != nil {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "weight = %s", tomlFloat(*r.Weight))
	}
	buf.WriteString(" }")
	return buf.Bytes(), nil
}

// UnmarshalYAML accepts a bare number or a mapping.
func (r *IsotopeRecord) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var f float64
		if err := node.Decode(&f); err != nil {
			return fmt.Errorf("isotope: %w", err)
		}
		*r = IsotopeRecord{Mass: &f}
		return nil
	}
	var fields isotopeFields
	if err := node.Decode(&fields); err != nil {
		return err
	}
	*r = IsotopeRecord(fields)
	return nil
}

// UnmarshalJSON accepts a bare number or an object.
func (r *IsotopeRecord) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var fields isotopeFields
		if err := json.Unmarshal(data, &fields); err != nil {
			return err
		}
		*r = IsotopeRecord(fields)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("isotope: %w", err)
	}
	*r = IsotopeRecord{Mass: &f}
	return nil
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// tomlFloat formats f so that whole numbers stay integers.
func tomlFloat(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
