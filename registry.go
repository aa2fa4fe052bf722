package money

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// isoEntry is a row of the generated ISO 4217 table.
type isoEntry struct {
	curr Currency
	num  string
}

// Registry is an immutable lookup table of currencies, keyed by code.
// It is safe for concurrent use.
//
// A registry is built once, usually at program start, and passed to the
// code that resolves currency codes, such as configuration loaders.
// [ISORegistry] holds the static ISO 4217 table.
type Registry struct {
	codes map[string]Currency
	nums  map[string]string // code -> ISO numeric code
	isos  map[string]string // ISO numeric code -> code
}

// NewRegistry returns a registry containing the given currencies.
// It returns an error if two currencies share a code.
func NewRegistry(currs ...Currency) (*Registry, error) {
	r := &Registry{
		codes: make(map[string]Currency, len(currs)),
		nums:  map[string]string{},
		isos:  map[string]string{},
	}
	if err := r.add(currs); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Registry) add(currs []Currency) error {
	for _, c := range currs {
		if _, ok := r.codes[c.Code()]; ok {
			return fmt.Errorf("registering %v: %w", c, errDuplicateCurrency)
		}
		r.codes[c.Code()] = c
	}
	return nil
}

var isoRegistry = sync.OnceValue(func() *Registry {
	r := &Registry{
		codes: make(map[string]Currency, len(isoCurrencies)),
		nums:  make(map[string]string, len(isoCurrencies)),
		isos:  make(map[string]string, len(isoCurrencies)),
	}
	for _, e := range isoCurrencies {
		r.codes[e.curr.Code()] = e.curr
		r.nums[e.curr.Code()] = e.num
		r.isos[e.num] = e.curr.Code()
	}
	return r
})

// ISORegistry returns the registry of ISO 4217 currencies.
// The registry is built on first use and shared afterwards.
func ISORegistry() *Registry {
	return isoRegistry()
}

// With returns a copy of the registry extended with the given currencies.
// The receiver is not modified.
// With returns an error if a currency code is already registered.
func (r *Registry) With(currs ...Currency) (*Registry, error) {
	s := &Registry{
		codes: make(map[string]Currency, len(r.codes)+len(currs)),
		nums:  r.nums,
		isos:  r.isos,
	}
	for code, c := range r.codes {
		s.codes[code] = c
	}
	if err := s.add(currs); err != nil {
		return nil, err
	}
	return s, nil
}

// Lookup returns the currency with the given code.
// Letter codes are matched in any case. ISO 4217 numeric codes, such as "840",
// are accepted as well.
func (r *Registry) Lookup(code string) (Currency, bool) {
	if c, ok := r.isos[code]; ok {
		code = c
	}
	c, ok := r.codes[strings.ToUpper(code)]
	return c, ok
}

// Len returns the number of currencies in the registry.
func (r *Registry) Len() int {
	return len(r.codes)
}

// Currencies returns the currencies of the registry sorted by code.
func (r *Registry) Currencies() []Currency {
	currs := make([]Currency, 0, len(r.codes))
	for _, c := range r.codes {
		currs = append(currs, c)
	}
	slices.SortFunc(currs, func(a, b Currency) int {
		return strings.Compare(a.Code(), b.Code())
	})
	return currs
}

// num returns the ISO numeric code of c, or an empty string if c is not
// an ISO descriptor.
func (r *Registry) num(c Currency) string {
	num, ok := r.nums[c.Code()]
	if !ok || r.codes[c.Code()] != c {
		return ""
	}
	return num
}
