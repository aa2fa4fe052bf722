package money

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/moneyfx/money/decimal"
)

// Decimal is the decimal type of monetary values, exchange rates and
// commission percentages. It rounds half to even to 38 significant digits.
type Decimal = decimal.Decimal[decimal.Bankers]

var errInvalidParts = errors.New("number of parts must be positive")

// Money represents a monetary value in the currency tagged by C.
// Its zero value is 0 in currency C.
//
// The currency is part of the type: Money[USD] and Money[EUR] are different
// types, and adding them does not compile. Conversion between currencies
// requires an explicit exchange rate, see [Convert] and [ExchangeQuote].
//
// Money is immutable and is safe for concurrent use by multiple goroutines.
// Money values are not comparable with ==, use [Money.Equal] instead.
type Money[C Unit] struct {
	value Decimal
}

// NewMoney returns a monetary value in currency C equal to d.
// The value is kept as is: values with more digits than the scale of the
// currency are only rounded when formatted or converted to minor units.
func NewMoney[C Unit](d Decimal) Money[C] {
	return Money[C]{value: d}
}

// FromInt64 returns a monetary value in currency C equal to v.
func FromInt64[C Unit](v int64) Money[C] {
	return NewMoney[C](decimal.NewFromInt64[decimal.Bankers](v))
}

// FromFloat64 converts a float to a monetary value in currency C.
// See also [decimal.NewFromFloat64].
func FromFloat64[C Unit](f float64) (Money[C], error) {
	d, err := decimal.NewFromFloat64[decimal.Bankers](f)
	if err != nil {
		return Money[C]{}, fmt.Errorf("converting %v: %w", CurrencyOf[C](), err)
	}
	return NewMoney[C](d), nil
}

// FromMinorUnits returns a monetary value in currency C equal to
// units / 10^scale, where scale is the scale of the currency:
//
//	FromMinorUnits[USD](3250)  // USD 32.50
//	FromMinorUnits[JPY](2170)  // JPY 2170
//
// The result is exact.
func FromMinorUnits[C Unit](units int64) Money[C] {
	return NewMoney[C](decimal.MustNew[decimal.Bankers](units, CurrencyOf[C]().Scale()))
}

// Parse converts a string to a monetary value in currency C.
// The string contains the number only, for example "-123.45".
func Parse[C Unit](s string) (Money[C], error) {
	d, err := decimal.Parse[decimal.Bankers](s)
	if err != nil {
		return Money[C]{}, fmt.Errorf("parsing %v amount: %w", CurrencyOf[C](), err)
	}
	return NewMoney[C](d), nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding amounts.
func MustParse[C Unit](s string) Money[C] {
	m, err := Parse[C](s)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", s, err))
	}
	return m
}

// Zero returns 0 in currency C.
func Zero[C Unit]() Money[C] {
	return Money[C]{}
}

// Convert returns the value of m in currency To, computed as m * rate.
// The rate must be supplied by the caller: it is never looked up.
//
// Convert returns an error if the product overflows.
// See also [ExchangeQuote.CounterValue].
func Convert[To, From Unit](m Money[From], rate Decimal) (Money[To], error) {
	d, err := m.value.Mul(rate)
	if err != nil {
		return Money[To]{}, fmt.Errorf("converting %v to %v: %w", m, CurrencyOf[To](), err)
	}
	return NewMoney[To](d), nil
}

// Curr returns the currency of the value.
func (m Money[C]) Curr() Currency {
	return CurrencyOf[C]()
}

// Decimal returns the decimal representation of the value.
func (m Money[C]) Decimal() Decimal {
	return m.value
}

// MinorUnits returns the value in minor units of the currency, rounded half
// to even to the scale of the currency:
//
//	USD 32.505 -> 3250
//	JPY 2170   -> 2170
//
// It returns false if the result does not fit in int64.
func (m Money[C]) MinorUnits() (units int64, ok bool) {
	scale := m.Curr().Scale()
	d, err := m.value.Round(scale).MulPow10(scale)
	if err != nil {
		return 0, false
	}
	return d.Int64()
}

// Sign returns:
//
//	-1 if m < 0
//	 0 if m = 0
//	+1 if m > 0
func (m Money[C]) Sign() int {
	return m.value.Sign()
}

// IsNeg returns true if m < 0.
func (m Money[C]) IsNeg() bool {
	return m.value.IsNeg()
}

// IsPos returns true if m > 0.
func (m Money[C]) IsPos() bool {
	return m.value.IsPos()
}

// IsZero returns true if m = 0.
func (m Money[C]) IsZero() bool {
	return m.value.IsZero()
}

// Abs returns the absolute value of m.
func (m Money[C]) Abs() Money[C] {
	return NewMoney[C](m.value.Abs())
}

// Neg returns m with the opposite sign.
func (m Money[C]) Neg() Money[C] {
	return NewMoney[C](m.value.Neg())
}

// Add returns the (possibly rounded) sum of m and b.
//
// Add returns an error if the result overflows.
func (m Money[C]) Add(b Money[C]) (Money[C], error) {
	d, err := m.value.Add(b.value)
	if err != nil {
		return Money[C]{}, fmt.Errorf("computing [%v + %v]: %w", m, b, errors.Unwrap(err))
	}
	return NewMoney[C](d), nil
}

// Sub returns the (possibly rounded) difference between m and b.
//
// Sub returns an error if the result overflows.
func (m Money[C]) Sub(b Money[C]) (Money[C], error) {
	d, err := m.value.Sub(b.value)
	if err != nil {
		return Money[C]{}, fmt.Errorf("computing [%v - %v]: %w", m, b, errors.Unwrap(err))
	}
	return NewMoney[C](d), nil
}

// Mul returns the (possibly rounded) product of m and the factor e.
//
// Mul returns an error if the result overflows or underflows.
func (m Money[C]) Mul(e Decimal) (Money[C], error) {
	d, err := m.value.Mul(e)
	if err != nil {
		return Money[C]{}, fmt.Errorf("computing [%v * %v]: %w", m, e, errors.Unwrap(err))
	}
	return NewMoney[C](d), nil
}

// Quo returns the (possibly rounded) quotient of m and the divisor e.
//
// Quo returns an error if e is 0 or the result overflows or underflows.
func (m Money[C]) Quo(e Decimal) (Money[C], error) {
	d, err := m.value.Quo(e)
	if err != nil {
		return Money[C]{}, fmt.Errorf("computing [%v / %v]: %w", m, e, errors.Unwrap(err))
	}
	return NewMoney[C](d), nil
}

// Rem returns the remainder of m divided by b.
// The remainder has the sign of m, see [decimal.Decimal.Rem].
//
// Rem returns an error if b is 0.
func (m Money[C]) Rem(b Money[C]) (Money[C], error) {
	d, err := m.value.Rem(b.value)
	if err != nil {
		return Money[C]{}, fmt.Errorf("computing [%v %% %v]: %w", m, b, errors.Unwrap(err))
	}
	return NewMoney[C](d), nil
}

// Rat returns the (possibly rounded) ratio between m and b.
// The ratio has no currency.
//
// Rat returns an error if b is 0.
func (m Money[C]) Rat(b Money[C]) (Decimal, error) {
	d, err := m.value.Quo(b.value)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v / %v]: %w", m, b, errors.Unwrap(err))
	}
	return d, nil
}

// Split returns a slice of values that sum up to m and differ from each other
// by at most one minor unit:
//
//	USD 10.00 split into 3 parts -> USD 3.34, USD 3.33, USD 3.33
//
// Values with more digits than the scale of the currency are split at their
// own scale. Split returns an error if parts is not positive.
func (m Money[C]) Split(parts int) ([]Money[C], error) {
	res, err := m.split(parts)
	if err != nil {
		return nil, fmt.Errorf("splitting %v into %v parts: %w", m, parts, err)
	}
	return res, nil
}

func (m Money[C]) split(parts int) ([]Money[C], error) {
	if parts <= 0 {
		return nil, errInvalidParts
	}
	scale := max(m.value.Scale(), m.Curr().Scale())
	par := decimal.NewFromInt64[decimal.Bankers](int64(parts))

	// Quotient
	quo, err := m.value.Quo(par)
	if err != nil {
		return nil, err
	}
	quo = quo.Trunc(scale).Pad(scale)

	// Remainder
	rem, err := quo.Mul(par)
	if err != nil {
		return nil, err
	}
	rem, err = m.value.Sub(rem)
	if err != nil {
		return nil, err
	}
	ulp := decimal.MustNew[decimal.Bankers](1, scale).CopySign(rem)

	res := make([]Money[C], parts)
	for i := range res {
		part := quo
		// Remainder distribution
		if !rem.IsZero() {
			rem = rem.MustSub(ulp)
			part = part.MustAdd(ulp)
		}
		res[i] = NewMoney[C](part)
	}
	return res, nil
}

// Round returns m rounded half to even to the specified number of digits
// after the decimal point.
// See also method [Money.RoundToCurr].
func (m Money[C]) Round(scale int) Money[C] {
	return NewMoney[C](m.value.Round(scale))
}

// RoundToCurr returns m rounded half to even to the scale of its currency.
func (m Money[C]) RoundToCurr() Money[C] {
	return m.Round(m.Curr().Scale())
}

// Ceil returns m rounded up to the specified number of digits after
// the decimal point.
func (m Money[C]) Ceil(scale int) Money[C] {
	return NewMoney[C](m.value.Ceil(scale))
}

// Floor returns m rounded down to the specified number of digits after
// the decimal point.
func (m Money[C]) Floor(scale int) Money[C] {
	return NewMoney[C](m.value.Floor(scale))
}

// Trunc returns m truncated to the specified number of digits after
// the decimal point.
func (m Money[C]) Trunc(scale int) Money[C] {
	return NewMoney[C](m.value.Trunc(scale))
}

// Cmp compares m and b numerically and returns:
//
//	-1 if m < b
//	 0 if m = b
//	+1 if m > b
func (m Money[C]) Cmp(b Money[C]) int {
	return m.value.Cmp(b.value)
}

// Equal returns true if m and b are numerically equal.
// USD 1.5 and USD 1.50 are equal.
func (m Money[C]) Equal(b Money[C]) bool {
	return m.value.Equal(b.value)
}

// Min returns the smaller value.
// See also method [decimal.Decimal.Min].
func (m Money[C]) Min(b Money[C]) Money[C] {
	return NewMoney[C](m.value.Min(b.value))
}

// Max returns the larger value.
// See also method [decimal.Decimal.Max].
func (m Money[C]) Max(b Money[C]) Money[C] {
	return NewMoney[C](m.value.Max(b.value))
}

// Clamp compares m to the range [lo, hi] and returns:
//
//	lo if m < lo
//	hi if m > hi
//	 m otherwise
//
// Clamp returns an error if lo > hi.
func (m Money[C]) Clamp(lo, hi Money[C]) (Money[C], error) {
	if lo.Cmp(hi) > 0 {
		return Money[C]{}, fmt.Errorf("clamping %v: invalid range [%v, %v]", m, lo, hi)
	}
	if lo.value.CmpTotal(hi.value) > 0 {
		// Numerically equal bounds with different scales.
		lo, hi = hi, lo
	}
	switch {
	case m.value.CmpTotal(lo.value) < 0:
		return lo, nil
	case m.value.CmpTotal(hi.value) > 0:
		return hi, nil
	}
	return m, nil
}

// Formatted renders m for the locale in the given style.
// See also method [Currency.NumberFormatter].
func (m Money[C]) Formatted(style Style, tag language.Tag) string {
	return m.Curr().NumberFormatter(style, tag)(m.value)
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the value: the currency code followed by the number
// zero-padded to the scale of the currency, for example "USD 32.50".
// Digits beyond the scale of the currency are kept.
// See also methods [Money.Format] and [Money.Formatted].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m Money[C]) String() string {
	return m.Curr().Code() + " " + m.value.Pad(m.Curr().Scale()).String()
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example     | Description                |
//	| ------ | ----------- | -------------------------- |
//	| %s, %v | USD 5.678   | Currency and amount        |
//	| %q     | "USD 5.678" | Quoted currency and amount |
//	| %f     | 5.678       | Amount                     |
//	| %d     | 568         | Amount in minor units      |
//	| %c     | USD         | Currency                   |
//
// The '-', '+', ' ' and '0' format flags can be used with all verbs
// except %c. Precision is only supported for %f; it is never below the
// scale of the currency.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (m Money[C]) Format(state fmt.State, verb rune) {
	c, d := m.Curr(), m.value

	// Rescaling
	switch verb {
	case 'f', 'F':
		scale := d.Scale()
		if p, ok := state.Precision(); ok {
			scale = p
		}
		scale = max(scale, c.Scale())
		d = d.Round(scale).Pad(scale)
	case 'd', 'D':
		d = d.Round(c.Scale()).Pad(c.Scale())
		if u, err := d.MulPow10(c.Scale()); err == nil {
			d = u
		}
	default:
		d = d.Pad(c.Scale())
	}

	var body strings.Builder
	switch verb {
	case 'c', 'C':
		body.WriteString(c.Code())
	case 's', 'S', 'v', 'V', 'q', 'Q':
		body.WriteString(c.Code())
		body.WriteByte(' ')
		fallthrough
	default:
		switch {
		case d.IsNeg():
			body.WriteByte('-')
		case state.Flag('+'):
			body.WriteByte('+')
		case state.Flag(' '):
			body.WriteByte(' ')
		}
	}
	num := ""
	if verb != 'c' && verb != 'C' {
		num = d.Abs().String()
	}

	lquote, tquote := "", ""
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = `"`, `"`
	}

	width := len(lquote) + body.Len() + len(num) + len(tquote)
	lspaces, lzeros, tspaces := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0') && verb != 'c' && verb != 'C':
			lzeros = w - width
		default:
			lspaces = w - width
		}
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", lspaces))
	b.WriteString(lquote)
	b.WriteString(body.String())
	b.WriteString(strings.Repeat("0", lzeros))
	b.WriteString(num)
	b.WriteString(tquote)
	b.WriteString(strings.Repeat(" ", tspaces))

	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F', 'd', 'D', 'c', 'C':
		state.Write([]byte(b.String()))
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(money.Money="))
		state.Write([]byte(b.String()))
		state.Write([]byte(")"))
	}
}

// moneyJSON is the persisted form of a monetary value.
type moneyJSON struct {
	Decimal Decimal `json:"decimal"`
}

// MarshalJSON implements the [json.Marshaler] interface.
// The value is encoded as {"decimal":"32.50"}; the currency is part of the type.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (m Money[C]) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{Decimal: m.value})
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (m *Money[C]) UnmarshalJSON(data []byte) error {
	var v moneyJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshaling %v amount: %w", CurrencyOf[C](), err)
	}
	m.value = v.Decimal
	return nil
}

// Scan implements the [sql.Scanner] interface.
// See also method [decimal.Decimal.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (m *Money[C]) Scan(value any) error {
	return m.value.Scan(value)
}

// Value implements the [driver.Valuer] interface.
// Only the decimal is stored: the currency is part of the type.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (m Money[C]) Value() (driver.Value, error) {
	return m.value.Value()
}
