package decimal

import (
	"fmt"

	gvdecimal "github.com/govalues/decimal"
	"github.com/jackc/pgx/v5/pgtype"
	ssdecimal "github.com/shopspring/decimal"
)

var (
	_ pgtype.NumericScanner = (*Decimal[Bankers])(nil)
	_ pgtype.NumericValuer  = Decimal[Bankers]{}
)

// FromShopspring converts a [shopspring decimal] to a decimal rounded
// according to policy P.
//
// [shopspring decimal]: https://pkg.go.dev/github.com/shopspring/decimal
func FromShopspring[P Policy](s ssdecimal.Decimal) (Decimal[P], error) {
	d, err := NewFromBigInt[P](s.Coefficient(), -int(s.Exponent()))
	if err != nil {
		return Decimal[P]{}, fmt.Errorf("converting from shopspring: %w", err)
	}
	return d, nil
}

// Shopspring returns the decimal as a [shopspring decimal].
// The conversion is exact.
//
// [shopspring decimal]: https://pkg.go.dev/github.com/shopspring/decimal
func (d Decimal[P]) Shopspring() ssdecimal.Decimal {
	return ssdecimal.NewFromBigInt(d.Coef(), d.val.Exponent)
}

// FromGovalues converts a [govalues decimal] to a decimal.
// The conversion is exact: govalues decimals have at most 19 digits.
//
// [govalues decimal]: https://pkg.go.dev/github.com/govalues/decimal
func FromGovalues[P Policy](g gvdecimal.Decimal) Decimal[P] {
	return MustParse[P](g.String())
}

// Govalues returns the decimal as a [govalues decimal].
// Fractional digits beyond the govalues precision are rounded half to even.
//
// Govalues returns an error if the integer part of the decimal has more
// than 19 digits.
//
// [govalues decimal]: https://pkg.go.dev/github.com/govalues/decimal
func (d Decimal[P]) Govalues() (gvdecimal.Decimal, error) {
	g, err := gvdecimal.Parse(d.String())
	if err != nil {
		return gvdecimal.Decimal{}, fmt.Errorf("converting %v to govalues: %w", d, err)
	}
	return g, nil
}

// ScanNumeric implements the [pgtype.NumericScanner] interface,
// so decimals can be read from PostgreSQL numeric columns by pgx.
//
// [pgtype.NumericScanner]: https://pkg.go.dev/github.com/jackc/pgx/v5/pgtype#NumericScanner
func (d *Decimal[P]) ScanNumeric(v pgtype.Numeric) error {
	switch {
	case !v.Valid:
		return fmt.Errorf("%T does not support null values", d)
	case v.NaN:
		return fmt.Errorf("scanning numeric: %w: NaN", ErrInvalidDecimal)
	case v.InfinityModifier != pgtype.Finite:
		return fmt.Errorf("scanning numeric: %w: infinity", ErrInvalidDecimal)
	case v.Int == nil:
		*d = Decimal[P]{}
		return nil
	}
	e, err := NewFromBigInt[P](v.Int, -int(v.Exp))
	if err != nil {
		return fmt.Errorf("scanning numeric: %w", err)
	}
	*d = e
	return nil
}

// NumericValue implements the [pgtype.NumericValuer] interface.
// The coefficient and exponent are passed through unchanged.
//
// [pgtype.NumericValuer]: https://pkg.go.dev/github.com/jackc/pgx/v5/pgtype#NumericValuer
func (d Decimal[P]) NumericValue() (pgtype.Numeric, error) {
	return pgtype.Numeric{
		Int:   d.Coef(),
		Exp:   d.val.Exponent,
		Valid: true,
	}, nil
}
