package money

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

//go:generate go run scripts/currency/codegen.go

// Currency describes a currency: its alphabetic code, the number of digits
// of its minor unit and an optional symbol.
// The zero value is the descriptor of [XXX], which indicates an unknown currency.
//
// Currency is an immutable value and is safe for concurrent use.
// Two currencies are equal (==) if their codes, scales and symbols match.
//
// Descriptors of [ISO 4217] currencies are obtained from their tags, for example
// USD{}.Currency(), or looked up in [ISORegistry].
// Other currencies are defined with [NewCurrency].
//
// Codecs persist the code only, so decoding recognizes ISO currencies alone.
//
// [ISO 4217]: https://en.wikipedia.org/wiki/ISO_4217
type Currency struct {
	code   string
	scale  uint8
	symbol string
}

// Unit is implemented by currency tags.
// A tag is a zero-size type that binds a [Money] value to its currency
// at compile time, so that amounts in different currencies cannot be mixed.
// Tags of ISO 4217 currencies, such as [USD] or [JPY], are provided by the package.
type Unit interface {
	Currency() Currency
}

// CurrencyOf returns the descriptor of the currency tagged by C.
func CurrencyOf[C Unit]() Currency {
	var c C
	return c.Currency()
}

var (
	errInvalidCurrency   = errors.New("invalid currency")
	errDuplicateCurrency = errors.New("duplicate currency")
)

// currencyDef holds the validation rules of a currency definition.
type currencyDef struct {
	Code   string `validate:"len=3,alpha,uppercase"`
	Scale  int    `validate:"min=0,max=18"`
	Symbol string `validate:"max=8"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// NewCurrency returns a currency descriptor with the given code, scale and symbol.
// The code must consist of 3 upper-case letters, the scale must be between 0 and 18,
// and the symbol, which may be empty, must not be longer than 8 characters.
//
// NewCurrency does not check the code against the ISO 4217 table:
// it is intended for currencies that are not part of it, such as
// cryptocurrencies.
func NewCurrency(code string, scale int, symbol string) (Currency, error) {
	def := currencyDef{Code: code, Scale: scale, Symbol: symbol}
	if err := validate.Struct(def); err != nil {
		return Currency{}, fmt.Errorf("defining currency %q: %w: %w", code, errInvalidCurrency, err)
	}
	c := Currency{code: code, scale: uint8(scale), symbol: symbol} //nolint:gosec
	if c == (Currency{code: "XXX"}) {
		return Currency{}, nil
	}
	return c, nil
}

// MustNewCurrency is like [NewCurrency] but panics if the definition is invalid.
// It simplifies safe initialization of global variables holding currencies.
func MustNewCurrency(code string, scale int, symbol string) Currency {
	c, err := NewCurrency(code, scale, symbol)
	if err != nil {
		panic(fmt.Sprintf("NewCurrency(%q, %v, %q) failed: %v", code, scale, symbol, err))
	}
	return c
}

// ParseCurr resolves an ISO 4217 currency from its letter code, in any case,
// or from its numeric code, such as "840".
// Custom currencies are unknown to ParseCurr: resolve them with a [Registry].
func ParseCurr(curr string) (Currency, error) {
	c, ok := ISORegistry().Lookup(curr)
	if !ok {
		return Currency{}, fmt.Errorf("parsing currency %q: %w", curr, errInvalidCurrency)
	}
	return c, nil
}

// MustParseCurr is like [ParseCurr] but panics on unknown codes.
func MustParseCurr(curr string) Currency {
	c, err := ParseCurr(curr)
	if err != nil {
		panic(fmt.Sprintf("ParseCurr(%q) failed: %v", curr, err))
	}
	return c
}

// Code returns the alphabetic code, "XXX" for the zero value.
func (c Currency) Code() string {
	if c.code == "" {
		return "XXX"
	}
	return c.code
}

// Scale returns the number of fractional digits of the minor unit:
// 0 for the yen, 2 for the dollar (1 cent = 0.01), 3 for the Omani rial.
// Custom currencies may use up to 18, for example 8 for bitcoin.
func (c Currency) Scale() int {
	return int(c.scale)
}

// Symbol returns the symbol of the currency, if one was defined.
// ISO descriptors carry no symbol: formatting uses the symbol of the locale instead.
func (c Currency) Symbol() (string, bool) {
	return c.symbol, c.symbol != ""
}

// Num returns the ISO 4217 numeric code, such as "840" for USD.
// It is empty for currencies that are not descriptors of the ISO table.
func (c Currency) Num() string {
	return ISORegistry().num(c)
}

// IsISO returns true if the currency is a descriptor from the ISO 4217 table.
func (c Currency) IsISO() bool {
	return c.Num() != ""
}

// String returns the code of the currency.
func (c Currency) String() string {
	return c.Code()
}
