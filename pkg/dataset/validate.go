package dataset

import (
	"errors"
	"math"

	errs "github.com/12dlabs/chemistry/pkg/errors"
)

// Validate checks that records can seed a registry: numbered 1, 2, 3, ...
// in order, each with a well-formed symbol, a name and, when present, a
// positive finite weight. Every problem found is reported.
func Validate(records []Record) error {
	if len(records) == 0 {
		return errs.New(errs.ErrCodeInvalidDataset, "dataset is empty")
	}

	var problems []error
	seen := make(map[string]int, len(records))
	for i, r := range records {
		if r.Number != i+1 {
			problems = append(problems, errs.New(errs.ErrCodeInvalidDataset,
				"record %d: atomic number %d out of sequence (want %d)", i, r.Number, i+1))
		}
		if err := errs.ValidateSymbol(r.Symbol); err != nil {
			problems = append(problems, errs.Wrap(errs.ErrCodeInvalidDataset, err, "element %d", r.Number))
		} else if prev, dup := seen[r.Symbol]; dup {
			problems = append(problems, errs.New(errs.ErrCodeInvalidDataset,
				"element %d: symbol %q already used by element %d", r.Number, r.Symbol, prev))
		} else {
			seen[r.Symbol] = r.Number
		}
		if err := errs.ValidateName(r.Name); err != nil {
			problems = append(problems, errs.Wrap(errs.ErrCodeInvalidDataset, err, "element %d", r.Number))
		}
		if w := r.Weight; w != nil && (math.IsNaN(*w) || math.IsInf(*w, 0) || *w <= 0) {
			problems = append(problems, errs.New(errs.ErrCodeInvalidDataset,
				"element %d: weight %v is not a positive number", r.Number, *w))
		}
	}
	return errors.Join(problems...)
}
