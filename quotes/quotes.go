// Package quotes provides sources of exchange quotes for the money package.
//
// A [Source] is asked for the quote of a currency pair every time an amount
// is exchanged. Sources may block, for example on a network call, so they
// take a context and may fail. The package ships [Table], an immutable
// in-memory source suitable for configuration-driven quotes and tests.
package quotes

//go:generate mockgen -source=quotes.go -destination=quotesmock/source.go -package=quotesmock

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/moneyfx/money"
)

var (
	// ErrRateNotFound is returned when a source has no quote for a pair.
	ErrRateNotFound = errors.New("rate not found")
	// ErrInvalidQuoteData is returned when quote records cannot be turned into quotes.
	ErrInvalidQuoteData = errors.New("invalid quote data")
)

// Source produces the exchange quote from the base currency to the counter currency.
type Source interface {
	Quote(ctx context.Context, base, counter money.Currency) (money.ExchangeQuote, error)
}

// SourceFunc adapts an ordinary function to the [Source] interface.
type SourceFunc func(ctx context.Context, base, counter money.Currency) (money.ExchangeQuote, error)

// Quote calls f(ctx, base, counter).
func (f SourceFunc) Quote(ctx context.Context, base, counter money.Currency) (money.ExchangeQuote, error) {
	return f(ctx, base, counter)
}

// Entry is a quote record, as found in configuration files.
// Rate and Commission are decimal strings; Commission is a percentage and
// may be empty.
type Entry struct {
	Base       string `mapstructure:"base"       json:"base"       validate:"required,len=3"`
	Counter    string `mapstructure:"counter"    json:"counter"    validate:"required,len=3,nefield=Base"`
	Rate       string `mapstructure:"rate"       json:"rate"       validate:"required,numeric"`
	Commission string `mapstructure:"commission" json:"commission" validate:"omitempty,numeric"`
}

var (
	validate = validator.New(validator.WithRequiredStructEnabled())
	identity = money.MustParseQuote("1", "")
)

type pair struct {
	base, counter money.Currency
}

// Table is an immutable in-memory [Source].
// It is safe for concurrent use by multiple goroutines.
//
// A table answers the pair of identical currencies with rate 1 and
// no commission. When a pair is missing, the table falls back to the
// inverse of the reverse pair.
type Table struct {
	quotes map[pair]money.ExchangeQuote
}

// NewTable returns a table holding the given entries.
// Currency codes are resolved through reg. It returns an error wrapping
// [ErrInvalidQuoteData] if an entry is malformed, names an unknown currency,
// or repeats a pair.
func NewTable(reg *money.Registry, entries ...Entry) (*Table, error) {
	t := &Table{quotes: make(map[pair]money.ExchangeQuote, len(entries))}
	for i, e := range entries {
		p, q, err := parseEntry(reg, e)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if _, ok := t.quotes[p]; ok {
			return nil, fmt.Errorf("entry %d: %w: duplicate pair %v/%v", i, ErrInvalidQuoteData, p.base, p.counter)
		}
		t.quotes[p] = q
	}
	return t, nil
}

func parseEntry(reg *money.Registry, e Entry) (pair, money.ExchangeQuote, error) {
	if err := validate.Struct(e); err != nil {
		return pair{}, money.ExchangeQuote{}, fmt.Errorf("%w: %w", ErrInvalidQuoteData, err)
	}
	base, ok := reg.Lookup(e.Base)
	if !ok {
		return pair{}, money.ExchangeQuote{}, fmt.Errorf("%w: unknown currency %q", ErrInvalidQuoteData, e.Base)
	}
	counter, ok := reg.Lookup(e.Counter)
	if !ok {
		return pair{}, money.ExchangeQuote{}, fmt.Errorf("%w: unknown currency %q", ErrInvalidQuoteData, e.Counter)
	}
	if base == counter {
		return pair{}, money.ExchangeQuote{}, fmt.Errorf("%w: pair %v/%v has identical currencies", ErrInvalidQuoteData, base, counter)
	}
	q, err := money.ParseQuote(e.Rate, e.Commission)
	if err != nil {
		return pair{}, money.ExchangeQuote{}, fmt.Errorf("%w: %w", ErrInvalidQuoteData, err)
	}
	return pair{base, counter}, q, nil
}

// Quote implements the [Source] interface.
func (t *Table) Quote(ctx context.Context, base, counter money.Currency) (money.ExchangeQuote, error) {
	if err := ctx.Err(); err != nil {
		return money.ExchangeQuote{}, err
	}
	if base == counter {
		return identity, nil
	}
	if q, ok := t.quotes[pair{base, counter}]; ok {
		return q, nil
	}
	if q, ok := t.quotes[pair{counter, base}]; ok {
		inv, err := q.Inv()
		if err != nil {
			return money.ExchangeQuote{}, fmt.Errorf("inverting %v/%v: %w", counter, base, err)
		}
		return inv, nil
	}
	return money.ExchangeQuote{}, fmt.Errorf("quoting %v/%v: %w", base, counter, ErrRateNotFound)
}

// Len returns the number of pairs stored in the table, not counting
// the inverse pairs it derives.
func (t *Table) Len() int {
	return len(t.quotes)
}

// Convert asks src for the quote from B to Q and exchanges base with it.
func Convert[Q, B money.Unit](ctx context.Context, src Source, base money.Money[B]) (money.Conversion[B, Q], error) {
	from, to := money.CurrencyOf[B](), money.CurrencyOf[Q]()
	q, err := src.Quote(ctx, from, to)
	if err != nil {
		return money.Conversion[B, Q]{}, fmt.Errorf("converting %v to %v: %w", base, to, err)
	}
	c, err := money.Exchange[Q](q, base)
	if err != nil {
		return money.Conversion[B, Q]{}, fmt.Errorf("converting %v to %v: %w", base, to, err)
	}
	return c, nil
}
