package money

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/moneyfx/money/decimal"
)

var errInvalidQuote = errors.New("invalid quote")

// ExchangeQuote represents a unidirectional exchange rate from a base currency
// to a counter currency, together with a commission charged on the base amount.
// The rate is the number of counter units obtained for one base unit.
// The commission is a percentage between 0 and 100.
//
// The zero value is not a valid quote: use [NewQuote] or [ParseQuote].
// ExchangeQuote is immutable and is safe for concurrent use by multiple goroutines.
//
// A quote does not know its currencies: they are supplied by the caller
// through the type parameters of [Exchange], [TransactionValue] and [Commission].
type ExchangeQuote struct {
	rate Decimal
	pct  Decimal
}

// NewQuote returns a quote with the given rate and commission percentage.
// It returns an error if the rate is not positive or the percentage is
// outside the range [0, 100].
func NewQuote(rate, commissionPercent Decimal) (ExchangeQuote, error) {
	if !rate.IsPos() {
		return ExchangeQuote{}, fmt.Errorf("rate %v: %w: rate must be positive", rate, errInvalidQuote)
	}
	if commissionPercent.IsNeg() || commissionPercent.Cmp(hundred) > 0 {
		return ExchangeQuote{}, fmt.Errorf("commission %v%%: %w: percentage must be between 0 and 100", commissionPercent, errInvalidQuote)
	}
	return ExchangeQuote{rate: rate, pct: commissionPercent}, nil
}

var hundred = decimal.NewFromInt64[decimal.Bankers](100)

// ParseQuote converts decimal strings to a quote.
// An empty commission string stands for no commission.
// See also function [decimal.Parse].
func ParseQuote(rate, commissionPercent string) (ExchangeQuote, error) {
	r, err := decimal.Parse[decimal.Bankers](rate)
	if err != nil {
		return ExchangeQuote{}, fmt.Errorf("parsing rate: %w", err)
	}
	var p Decimal
	if commissionPercent != "" {
		p, err = decimal.Parse[decimal.Bankers](commissionPercent)
		if err != nil {
			return ExchangeQuote{}, fmt.Errorf("parsing commission: %w", err)
		}
	}
	q, err := NewQuote(r, p)
	if err != nil {
		return ExchangeQuote{}, fmt.Errorf("constructing quote: %w", err)
	}
	return q, nil
}

// MustParseQuote is like [ParseQuote] but panics if any of the strings cannot be parsed.
// It simplifies safe initialization of global variables holding quotes.
func MustParseQuote(rate, commissionPercent string) ExchangeQuote {
	q, err := ParseQuote(rate, commissionPercent)
	if err != nil {
		panic(fmt.Sprintf("ParseQuote(%q, %q) failed: %v", rate, commissionPercent, err))
	}
	return q
}

// Rate returns the number of counter currency units obtained for one unit
// of the base currency.
func (q ExchangeQuote) Rate() Decimal {
	return q.rate
}

// CommissionPercent returns the commission as a percentage of the base amount.
func (q ExchangeQuote) CommissionPercent() Decimal {
	return q.pct
}

// Inv returns the quote of the opposite direction: the rate is inverted
// and the commission is kept.
func (q ExchangeQuote) Inv() (ExchangeQuote, error) {
	r, err := q.rate.Inv()
	if err != nil {
		return ExchangeQuote{}, fmt.Errorf("inverting %v: %w", q, err)
	}
	return ExchangeQuote{rate: r, pct: q.pct}, nil
}

// fraction returns the commission as a fraction of one.
func (q ExchangeQuote) fraction() (Decimal, error) {
	return q.pct.MulPow10(-2)
}

// Commission returns the commission charged on the base amount,
// computed as commissionPercent / 100 * base.
func (q ExchangeQuote) Commission(base Decimal) (Decimal, error) {
	f, err := q.fraction()
	if err != nil {
		return Decimal{}, fmt.Errorf("computing commission of %v on %v: %w", q, base, err)
	}
	c, err := f.Mul(base)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing commission of %v on %v: %w", q, base, err)
	}
	return c, nil
}

// CounterValue returns the value received in the counter currency for
// the base amount, computed as ((1 - commissionPercent / 100) * base) * rate.
func (q ExchangeQuote) CounterValue(base Decimal) (Decimal, error) {
	d, err := q.counterValue(base)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing counter value of %v for %v: %w", q, base, err)
	}
	return d, nil
}

func (q ExchangeQuote) counterValue(base Decimal) (Decimal, error) {
	f, err := q.fraction()
	if err != nil {
		return Decimal{}, err
	}
	net, err := decimal.One[decimal.Bankers]().Sub(f)
	if err != nil {
		return Decimal{}, err
	}
	net, err = net.Mul(base)
	if err != nil {
		return Decimal{}, err
	}
	return net.Mul(q.rate)
}

// String implements the [fmt.Stringer] interface and returns the rate
// followed by the commission, for example "1.2 (0.2%)".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (q ExchangeQuote) String() string {
	return q.rate.String() + " (" + q.pct.String() + "%)"
}

// quoteJSON is the persisted form of a quote.
type quoteJSON struct {
	Rate              Decimal  `json:"rate"`
	CommissionPercent *Decimal `json:"commissionPercent,omitempty"`
}

// MarshalJSON implements the [json.Marshaler] interface.
// The quote is encoded as {"rate":"1.2","commissionPercent":"0.2"}.
// A zero commission is omitted.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (q ExchangeQuote) MarshalJSON() ([]byte, error) {
	v := quoteJSON{Rate: q.rate}
	if !q.pct.IsZero() {
		pct := q.pct
		v.CommissionPercent = &pct
	}
	return json.Marshal(v)
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// A missing commission stands for no commission.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (q *ExchangeQuote) UnmarshalJSON(data []byte) error {
	var v quoteJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshaling quote: %w", err)
	}
	var pct Decimal
	if v.CommissionPercent != nil {
		pct = *v.CommissionPercent
	}
	r, err := NewQuote(v.Rate, pct)
	if err != nil {
		return fmt.Errorf("unmarshaling quote: %w", err)
	}
	*q = r
	return nil
}

// Commission returns the commission charged by the quote on the base amount.
// The commission is in the base currency.
func Commission[B Unit](q ExchangeQuote, base Money[B]) (Money[B], error) {
	d, err := q.Commission(base.value)
	if err != nil {
		return Money[B]{}, err
	}
	return NewMoney[B](d), nil
}

// TransactionValue returns the amount in counter currency Q received for
// the base amount, after the commission is deducted.
func TransactionValue[Q, B Unit](q ExchangeQuote, base Money[B]) (Money[Q], error) {
	d, err := q.CounterValue(base.value)
	if err != nil {
		return Money[Q]{}, err
	}
	return NewMoney[Q](d), nil
}

// Conversion is the outcome of exchanging an amount in base currency B
// for counter currency Q.
type Conversion[B, Q Unit] struct {
	Base       Money[B] // amount exchanged
	Commission Money[B] // part of Base retained as commission
	Rate       Decimal  // counter units per base unit
	Counter    Money[Q] // amount received
}

// Exchange applies the quote to the base amount.
// The result is determined by the quote and the amount alone.
func Exchange[Q, B Unit](q ExchangeQuote, base Money[B]) (Conversion[B, Q], error) {
	c, err := Commission(q, base)
	if err != nil {
		return Conversion[B, Q]{}, err
	}
	v, err := TransactionValue[Q](q, base)
	if err != nil {
		return Conversion[B, Q]{}, err
	}
	return Conversion[B, Q]{Base: base, Commission: c, Rate: q.rate, Counter: v}, nil
}

// String implements the [fmt.Stringer] interface, for example
// "GBP 100.00 -> EUR 119.7600 (rate 1.2, commission GBP 0.200)".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Conversion[B, Q]) String() string {
	return fmt.Sprintf("%v -> %v (rate %v, commission %v)", c.Base, c.Counter, c.Rate, c.Commission)
}
