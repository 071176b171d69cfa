// Package registry provides the lookup table for chemical elements.
//
// A [Registry] holds the seeded elements densely, indexed by atomic number,
// and keeps every other element in an overflow store. Looking up a number
// past the seed synthesizes a theoretical element on first access and
// returns the same instance from then on:
//
//	reg, err := registry.Default()
//	if err != nil {
//	    return err
//	}
//	fe := reg.Get(periodic.Iron)
//	uue := reg.Get(119) // Ununennium, synthesized once
//
// A Registry is not safe for concurrent use. Callers that share one across
// goroutines must synchronize access themselves.
package registry

import (
	"strconv"
	"strings"

	"github.com/12dlabs/chemistry/pkg/dataset"
	"github.com/12dlabs/chemistry/pkg/observability"
	"github.com/12dlabs/chemistry/pkg/periodic"
)

// MaxNumber is the largest atomic number a Registry will synthesize.
const MaxNumber = 1<<53 - 1

// Registry resolves elements by atomic number or symbol.
type Registry struct {
	dense    []*periodic.Element
	seeded   int
	overflow map[int]*periodic.Element
	order    []int
	hooks    observability.RegistryHooks
}

// Option configures a Registry.
type Option func(*Registry)

// WithHooks routes registry events to h instead of the process-wide hooks.
func WithHooks(h observability.RegistryHooks) Option {
	return func(r *Registry) {
		if h != nil {
			r.hooks = h
		}
	}
}

// New creates a registry seeded with seed. Entries are registered in order,
// so a seed sorted by atomic number from 1 fills the dense store; nil entries
// are skipped.
func New(seed []*periodic.Element, opts ...Option) *Registry {
	r := &Registry{
		overflow: make(map[int]*periodic.Element),
		hooks:    observability.Registry(),
	}
	for _, opt := range opts {
		opt(r)
	}
	for _, e := range seed {
		r.put(e)
	}
	r.seeded = len(r.dense)
	return r
}

// Default creates a registry seeded with the embedded dataset.
func Default(opts ...Option) (*Registry, error) {
	records, err := dataset.Default()
	if err != nil {
		return nil, err
	}
	return New(dataset.Elements(records), opts...), nil
}

// Get returns the element with the given atomic number. Numbers past the
// stored range are synthesized and cached. Get returns nil for numbers below
// 1 or above MaxNumber.
func (r *Registry) Get(number int) *periodic.Element {
	if number < 1 {
		r.hooks.OnLookup(number, false)
		return nil
	}
	if number <= len(r.dense) {
		r.hooks.OnLookup(number, true)
		return r.dense[number-1]
	}
	if e, ok := r.overflow[number]; ok {
		r.hooks.OnLookup(number, true)
		return e
	}
	r.hooks.OnLookup(number, false)
	if number > MaxNumber {
		return nil
	}

	e := periodic.NewElement(number, "", "")
	r.overflow[number] = e
	r.order = append(r.order, number)
	r.hooks.OnSynthesize(number, e.Symbol())
	return e
}

// Symbol returns the first stored element with exactly the given symbol.
// Only the dense store is searched; synthesized symbols are not unique.
func (r *Registry) Symbol(symbol string) *periodic.Element {
	for _, e := range r.dense {
		if e.Symbol() == symbol {
			return e
		}
	}
	return nil
}

// Resolve looks up key as an atomic number when it parses as one, rounding
// fractional values, and as a symbol otherwise.
func (r *Registry) Resolve(key string) *periodic.Element {
	key = strings.TrimSpace(key)
	if f, err := strconv.ParseFloat(key, 64); err == nil {
		return r.Get(periodic.Round(f))
	}
	return r.Symbol(key)
}

// Exist reports whether an element with the given number is stored. Unlike
// Get it never synthesizes.
func (r *Registry) Exist(number int) bool {
	if number >= 1 && number <= len(r.dense) {
		return true
	}
	_, ok := r.overflow[number]
	return ok
}

// ExistSymbol reports whether any stored element carries symbol.
func (r *Registry) ExistSymbol(symbol string) bool {
	return r.Find(func(e *periodic.Element) bool { return e.Symbol() == symbol }) != nil
}

// Contains reports whether e itself, not merely an element with the same
// number, is stored.
func (r *Registry) Contains(e *periodic.Element) bool {
	if e == nil {
		return false
	}
	return r.Find(func(x *periodic.Element) bool { return x == e }) != nil
}

// Filter returns the stored elements matching pred: the dense store in
// atomic-number order, then the overflow store in insertion order.
func (r *Registry) Filter(pred func(*periodic.Element) bool) []*periodic.Element {
	var out []*periodic.Element
	r.each(func(e *periodic.Element) bool {
		if pred(e) {
			out = append(out, e)
		}
		return true
	})
	return out
}

// Find returns the first stored element matching pred, in Filter order.
func (r *Registry) Find(pred func(*periodic.Element) bool) *periodic.Element {
	var found *periodic.Element
	r.each(func(e *periodic.Element) bool {
		if pred(e) {
			found = e
			return false
		}
		return true
	})
	return found
}

// All returns every stored element in Filter order.
func (r *Registry) All() []*periodic.Element {
	return r.Filter(func(*periodic.Element) bool { return true })
}

// Reg stores e, replacing any element with the same number. An element
// numbered one past the dense store extends it. Nil elements and numbers
// below 1 are ignored.
func (r *Registry) Reg(e *periodic.Element) {
	if e == nil || e.Number() < 1 {
		return
	}
	dense := r.put(e)
	r.hooks.OnRegister(e.Number(), dense)
}

// Remove evicts the element with the given number from the overflow store.
// Seeded elements cannot be removed. Remove reports whether anything was
// evicted.
func (r *Registry) Remove(number int) bool {
	if _, ok := r.overflow[number]; !ok {
		return false
	}
	r.dropOverflow(number)
	r.hooks.OnRemove(number)
	return true
}

// Len returns the number of stored elements.
func (r *Registry) Len() int { return len(r.dense) + len(r.overflow) }

// SeededLen returns the number of elements the registry was seeded with.
func (r *Registry) SeededLen() int { return r.seeded }

func (r *Registry) put(e *periodic.Element) (dense bool) {
	if e == nil || e.Number() < 1 {
		return false
	}
	n := e.Number()
	switch {
	case n <= len(r.dense):
		r.dense[n-1] = e
		return true
	case n == len(r.dense)+1:
		r.dense = append(r.dense, e)
		if _, ok := r.overflow[n]; ok {
			r.dropOverflow(n)
		}
		return true
	}
	if _, ok := r.overflow[n]; !ok {
		r.order = append(r.order, n)
	}
	r.overflow[n] = e
	return false
}

func (r *Registry) dropOverflow(number int) {
	delete(r.overflow, number)
	for i, n := range r.order {
		if n == number {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

func (r *Registry) each(fn func(*periodic.Element) bool) {
	for _, e := range r.dense {
		if !fn(e) {
			return
		}
	}
	for _, n := range r.order {
		if !fn(r.overflow[n]) {
			return
		}
	}
}
