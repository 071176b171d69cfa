// Package dataset reads and writes element seed data.
//
// # Overview
//
// A seed dataset is an ordered list of [Record] values, one per element, in
// ascending atomic-number order starting at 1. The package embeds the 118
// named elements with their standard atomic weights and isotopes, see
// [Default], and can load or write the same data as TOML, YAML or JSON.
//
// # Format
//
// In TOML each element is an entry of the element array:
//
//	[[element]]
//	number = 26
//	symbol = "Fe"
//	name = "Iron"
//	weight = 55.845
//	isotopes = [
//	  { mass = 54, weight = 53.9396090 },
//	  { mass = 56, weight = 55.9349363 },
//	  58,
//	]
//
// An isotope is either a bare mass number or a table with a mass number and
// the isotopic mass in daltons. YAML and JSON use the same field names under
// a top-level "elements" key.
//
// # Loading
//
// [Load] decodes without judging the content; [Validate] checks that a list
// is usable as a registry seed, and [Elements] turns records into
// [periodic.Element] values. Isotope entries without a mass are dropped
// there, as [periodic.NewElement] does.
package dataset
