package decimal

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd"
)

var (
	// ErrDivideByZero is returned when the divisor is zero.
	ErrDivideByZero = errors.New("division by zero")
	// ErrOverflow is returned when the adjusted exponent of a result exceeds [MaxExp]
	// or an integer quotient does not fit in [MaxPrec] digits.
	ErrOverflow = errors.New("decimal overflow")
	// ErrUnderflow is returned when a result is too small to be represented without loss.
	ErrUnderflow = errors.New("decimal underflow")
	// ErrInvalidDecimal is returned for malformed input and special values.
	ErrInvalidDecimal = errors.New("invalid decimal")
)

// Decimal is an immutable decimal number rounded according to policy P.
// It consists of a sign, an arbitrary-size coefficient and a base-10 exponent.
// Its zero value is 0.
//
// Arithmetic results never have more than P.Precision() significant digits:
// each operation computes the exact result and then rounds it with P.Mode().
//
// Decimal values are not comparable with ==, use [Decimal.Equal] or
// [Decimal.CmpTotal] instead.
type Decimal[P Policy] struct {
	val apd.Decimal
}

// wrap takes ownership of v. Negative zeros are normalized.
func wrap[P Policy](v *apd.Decimal) Decimal[P] {
	if v.Sign() == 0 {
		v.Negative = false
	}
	return Decimal[P]{val: *v}
}

// condError converts a trapped condition into one of the package errors.
func condError(c apd.Condition, err error) error {
	switch {
	case c&apd.DivisionByZero != 0:
		return ErrDivideByZero
	case c&(apd.Overflow|apd.SystemOverflow|apd.DivisionImpossible) != 0:
		return ErrOverflow
	case c&(apd.Underflow|apd.SystemUnderflow) != 0:
		return ErrUnderflow
	}
	return fmt.Errorf("%w: %v", ErrInvalidDecimal, err)
}

// round rounds v to the precision of policy P and checks the exponent range.
func round[P Policy](v *apd.Decimal) (Decimal[P], error) {
	var f apd.Decimal
	c, err := contextOf[P]().Round(&f, v)
	if err != nil {
		return Decimal[P]{}, condError(c, err)
	}
	return wrap[P](&f), nil
}

// New returns a decimal equal to coef / 10^scale.
// The result is exact: an int64 never exceeds [MaxPrec] digits.
//
// New returns an error if the result is outside of the exponent range.
func New[P Policy](coef int64, scale int) (Decimal[P], error) {
	if scale < -math.MaxInt32/2 || scale > math.MaxInt32/2 {
		return Decimal[P]{}, fmt.Errorf("converting coefficient: %w", ErrOverflow)
	}
	d, err := round[P](apd.New(coef, int32(-scale))) //nolint:gosec
	if err != nil {
		return Decimal[P]{}, fmt.Errorf("converting coefficient: %w", err)
	}
	return d, nil
}

// MustNew is like [New] but panics if the decimal cannot be constructed.
// It simplifies safe initialization of global variables holding decimals.
func MustNew[P Policy](coef int64, scale int) Decimal[P] {
	d, err := New[P](coef, scale)
	if err != nil {
		panic(fmt.Sprintf("New(%v, %v) failed: %v", coef, scale, err))
	}
	return d
}

// NewFromInt64 converts an integer to a decimal with scale 0.
func NewFromInt64[P Policy](v int64) Decimal[P] {
	return wrap[P](apd.New(v, 0))
}

// NewFromBigInt returns a decimal equal to coef / 10^scale, rounded
// according to policy P. It is the inverse of [Decimal.Coef] and [Decimal.Scale]
// and is used to restore decimals from persisted storage.
//
// NewFromBigInt returns an error if coef is nil or the result is
// outside of the exponent range.
func NewFromBigInt[P Policy](coef *big.Int, scale int) (Decimal[P], error) {
	if coef == nil {
		return Decimal[P]{}, fmt.Errorf("converting coefficient: %w: nil coefficient", ErrInvalidDecimal)
	}
	if scale < -math.MaxInt32/2 || scale > math.MaxInt32/2 {
		return Decimal[P]{}, fmt.Errorf("converting coefficient: %w", ErrOverflow)
	}
	var v apd.Decimal
	v.Coeff.Abs(coef)
	v.Negative = coef.Sign() < 0
	v.Exponent = int32(-scale) //nolint:gosec
	d, err := round[P](&v)
	if err != nil {
		return Decimal[P]{}, fmt.Errorf("converting coefficient: %w", err)
	}
	return d, nil
}

// NewFromFloat64 converts a float to a decimal.
// The shortest decimal representation of f is rounded according to policy P.
//
// NewFromFloat64 returns an error if f is NaN or infinite.
func NewFromFloat64[P Policy](f float64) (Decimal[P], error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Decimal[P]{}, fmt.Errorf("converting float: %w: special value %v", ErrInvalidDecimal, f)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	d, err := Parse[P](s)
	if err != nil {
		return Decimal[P]{}, fmt.Errorf("converting float: %w", err)
	}
	return d, nil
}

// Parse converts a string to a decimal rounded according to policy P.
// The input may use scientific notation:
//
//	-123.45
//	0.0001
//	1.5e-3
//
// Parse returns an error for malformed strings, NaN and infinities.
func Parse[P Policy](s string) (Decimal[P], error) {
	v, _, err := apd.NewFromString(s)
	if err != nil {
		return Decimal[P]{}, fmt.Errorf("parsing decimal %q: %w", s, ErrInvalidDecimal)
	}
	if v.Form != apd.Finite {
		return Decimal[P]{}, fmt.Errorf("parsing decimal %q: %w: special value", s, ErrInvalidDecimal)
	}
	d, err := round[P](v)
	if err != nil {
		return Decimal[P]{}, fmt.Errorf("parsing decimal %q: %w", s, err)
	}
	return d, nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse[P Policy](s string) Decimal[P] {
	d, err := Parse[P](s)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", s, err))
	}
	return d
}

// Zero returns 0.
func Zero[P Policy]() Decimal[P] {
	return Decimal[P]{}
}

// One returns 1.
func One[P Policy]() Decimal[P] {
	return NewFromInt64[P](1)
}

// Convert returns d rounded according to policy Q.
func Convert[Q, P Policy](d Decimal[P]) (Decimal[Q], error) {
	return round[Q](&d.val)
}

// Coef returns the signed coefficient of the decimal.
// The value of the decimal equals Coef / 10^Scale.
func (d Decimal[P]) Coef() *big.Int {
	c := new(big.Int).Set(&d.val.Coeff)
	if d.val.Negative {
		c.Neg(c)
	}
	return c
}

// Scale returns the number of digits after the decimal point.
// A negative scale means the coefficient is multiplied by a power of ten.
func (d Decimal[P]) Scale() int {
	return -int(d.val.Exponent)
}

// Prec returns the number of digits in the coefficient.
// The precision of 0 is 0.
func (d Decimal[P]) Prec() int {
	if d.IsZero() {
		return 0
	}
	return len(d.val.Coeff.String())
}

// Policy returns the rounding policy of the decimal.
func (d Decimal[P]) Policy() P {
	var p P
	return p
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d = 0
//	+1 if d > 0
func (d Decimal[P]) Sign() int {
	return d.val.Sign()
}

// IsNeg returns true if d < 0.
func (d Decimal[P]) IsNeg() bool {
	return d.Sign() < 0
}

// IsPos returns true if d > 0.
func (d Decimal[P]) IsPos() bool {
	return d.Sign() > 0
}

// IsZero returns true if d = 0.
func (d Decimal[P]) IsZero() bool {
	return d.Sign() == 0
}

// IsOne returns true if d = 1.
func (d Decimal[P]) IsOne() bool {
	return d.val.Cmp(apd.New(1, 0)) == 0
}

// IsInt returns true if there are no significant digits after the decimal point.
func (d Decimal[P]) IsInt() bool {
	if d.val.Exponent >= 0 || d.IsZero() {
		return true
	}
	return d.MinScale() <= 0
}

// MinScale returns the smallest scale that the decimal can be rescaled to
// without rounding.
func (d Decimal[P]) MinScale() int {
	if d.IsZero() {
		return 0
	}
	scale := d.Scale()
	if scale <= 0 {
		return scale
	}
	digits := d.val.Coeff.String()
	for scale > 0 && digits[len(digits)-1] == '0' {
		digits = digits[:len(digits)-1]
		scale--
	}
	return scale
}

// Neg returns a decimal with the opposite sign.
func (d Decimal[P]) Neg() Decimal[P] {
	var f apd.Decimal
	f.Set(&d.val)
	f.Negative = !d.val.Negative
	return wrap[P](&f)
}

// Abs returns the absolute value of the decimal.
func (d Decimal[P]) Abs() Decimal[P] {
	var f apd.Decimal
	f.Set(&d.val)
	f.Negative = false
	return wrap[P](&f)
}

// CopySign returns a decimal with the same sign as e.
// Zero is treated as positive.
func (d Decimal[P]) CopySign(e Decimal[P]) Decimal[P] {
	if d.IsNeg() == e.IsNeg() {
		return d
	}
	return d.Neg()
}

// Add returns the (possibly rounded) sum of decimals d and e.
//
// Add returns an error if the result overflows.
func (d Decimal[P]) Add(e Decimal[P]) (Decimal[P], error) {
	f, err := d.add(e)
	if err != nil {
		return Decimal[P]{}, fmt.Errorf("computing [%v + %v]: %w", d, e, err)
	}
	return f, nil
}

func (d Decimal[P]) add(e Decimal[P]) (Decimal[P], error) {
	var f apd.Decimal
	c, err := contextOf[P]().Add(&f, &d.val, &e.val)
	if err != nil {
		return Decimal[P]{}, condError(c, err)
	}
	return wrap[P](&f), nil
}

// Sub returns the (possibly rounded) difference between decimals d and e.
//
// Sub returns an error if the result overflows.
func (d Decimal[P]) Sub(e Decimal[P]) (Decimal[P], error) {
	f, err := d.sub(e)
	if err != nil {
		return Decimal[P]{}, fmt.Errorf("computing [%v - %v]: %w", d, e, err)
	}
	return f, nil
}

func (d Decimal[P]) sub(e Decimal[P]) (Decimal[P], error) {
	var f apd.Decimal
	c, err := contextOf[P]().Sub(&f, &d.val, &e.val)
	if err != nil {
		return Decimal[P]{}, condError(c, err)
	}
	return wrap[P](&f), nil
}

// Mul returns the (possibly rounded) product of decimals d and e.
// Coefficients are multiplied and exponents are added before rounding.
//
// Mul returns an error if the result overflows or underflows.
func (d Decimal[P]) Mul(e Decimal[P]) (Decimal[P], error) {
	f, err := d.mul(e)
	if err != nil {
		return Decimal[P]{}, fmt.Errorf("computing [%v * %v]: %w", d, e, err)
	}
	return f, nil
}

func (d Decimal[P]) mul(e Decimal[P]) (Decimal[P], error) {
	var f apd.Decimal
	c, err := contextOf[P]().Mul(&f, &d.val, &e.val)
	if err != nil {
		return Decimal[P]{}, condError(c, err)
	}
	return wrap[P](&f), nil
}

// MulPow10 returns d * 10^n.
// Only the exponent is changed, so the result is exact unless it falls outside
// of the exponent range.
//
// MulPow10 returns an error if the result overflows or underflows.
func (d Decimal[P]) MulPow10(n int) (Decimal[P], error) {
	exp := int64(d.val.Exponent) + int64(n)
	if exp < math.MinInt32/2 || exp > math.MaxInt32/2 {
		if n > 0 && !d.IsZero() {
			return Decimal[P]{}, fmt.Errorf("computing [%v * 10^%v]: %w", d, n, ErrOverflow)
		}
		return Decimal[P]{}, fmt.Errorf("computing [%v * 10^%v]: %w", d, n, ErrUnderflow)
	}
	var v apd.Decimal
	v.Set(&d.val)
	v.Exponent = int32(exp)
	f, err := round[P](&v)
	if err != nil {
		return Decimal[P]{}, fmt.Errorf("computing [%v * 10^%v]: %w", d, n, err)
	}
	return f, nil
}

// Quo returns the (possibly rounded) quotient of decimals d and e.
//
// Quo returns an error if:
//   - the divisor is 0;
//   - the result overflows or underflows.
func (d Decimal[P]) Quo(e Decimal[P]) (Decimal[P], error) {
	f, err := d.quo(e)
	if err != nil {
		return Decimal[P]{}, fmt.Errorf("computing [%v / %v]: %w", d, e, err)
	}
	return f, nil
}

func (d Decimal[P]) quo(e Decimal[P]) (Decimal[P], error) {
	if e.IsZero() {
		return Decimal[P]{}, ErrDivideByZero
	}
	// The engine rounds the quotient before applying its sign,
	// so the magnitudes are divided and directed modes are mirrored.
	var p P
	m := p.Mode()
	neg := d.IsNeg() != e.IsNeg()
	if neg {
		m = m.mirror()
	}
	x, y := d.Abs(), e.Abs()
	var f apd.Decimal
	c, err := newContext(m, p.Precision()).Quo(&f, &x.val, &y.val)
	if err != nil {
		return Decimal[P]{}, condError(c, err)
	}
	f.Negative = neg
	return wrap[P](&f), nil
}

// Rem returns the remainder of decimals d and e:
//
//	d - q * e
//
// where q is the quotient d / e rounded to an integer with [RoundDown] when
// d and e have the same sign and with [RoundUp] when their signs differ.
// The integer quotient is computed exactly, so the remainder is always
// smaller than the divisor in magnitude and has the sign of the dividend:
//
//	 37.50 %  5 =  2.50
//	-37.50 % -5 = -2.50
//	 37.50 % -5 =  2.50
//	-37.50 %  5 = -2.50
//
// Rem returns an error if:
//   - the divisor is 0;
//   - the integer quotient has more than [MaxPrec] digits.
func (d Decimal[P]) Rem(e Decimal[P]) (Decimal[P], error) {
	f, err := d.rem(e)
	if err != nil {
		return Decimal[P]{}, fmt.Errorf("computing [%v %% %v]: %w", d, e, err)
	}
	return f, nil
}

func (d Decimal[P]) rem(e Decimal[P]) (Decimal[P], error) {
	if e.IsZero() {
		return Decimal[P]{}, ErrDivideByZero
	}
	var f apd.Decimal
	c, err := contextOf[P]().Rem(&f, &d.val, &e.val)
	if err != nil {
		return Decimal[P]{}, condError(c, err)
	}
	return wrap[P](&f), nil
}

// Inv returns the (possibly rounded) reciprocal 1 / d.
//
// Inv returns an error if d is 0.
func (d Decimal[P]) Inv() (Decimal[P], error) {
	f, err := One[P]().quo(d)
	if err != nil {
		return Decimal[P]{}, fmt.Errorf("inverting %v: %w", d, err)
	}
	return f, nil
}

// MulWith returns the (possibly rounded) product of d and e.
// The operands may have different policies; the result has the policy of e.
func MulWith[Q, P Policy](d Decimal[P], e Decimal[Q]) (Decimal[Q], error) {
	f, err := Convert[Q](d)
	if err != nil {
		return Decimal[Q]{}, fmt.Errorf("computing [%v * %v]: %w", d, e, err)
	}
	return f.Mul(e)
}

// QuoWith returns the (possibly rounded) quotient of d and e.
// The operands may have different policies; the result has the policy of e.
func QuoWith[Q, P Policy](d Decimal[P], e Decimal[Q]) (Decimal[Q], error) {
	f, err := Convert[Q](d)
	if err != nil {
		return Decimal[Q]{}, fmt.Errorf("computing [%v / %v]: %w", d, e, err)
	}
	return f.Quo(e)
}

// Round returns a decimal rounded to the specified number of digits after
// the decimal point using the rounding mode of policy P.
// If the scale of the decimal is already less than or equal to the specified
// scale, the decimal is returned unchanged. See also method [Decimal.Pad].
func (d Decimal[P]) Round(scale int) Decimal[P] {
	return d.RoundMode(scale, modeOf[P]())
}

// RoundMode is like [Decimal.Round] but uses rounding mode m.
func (d Decimal[P]) RoundMode(scale int, m Mode) Decimal[P] {
	return d.quantize(scale, rounder(m))
}

// Ceil returns a decimal rounded up to the specified number of digits after
// the decimal point.
func (d Decimal[P]) Ceil(scale int) Decimal[P] {
	return d.quantize(scale, apd.RoundCeiling)
}

// Floor returns a decimal rounded down to the specified number of digits after
// the decimal point.
func (d Decimal[P]) Floor(scale int) Decimal[P] {
	return d.quantize(scale, apd.RoundFloor)
}

// Trunc returns a decimal truncated to the specified number of digits after
// the decimal point using rounding toward zero.
func (d Decimal[P]) Trunc(scale int) Decimal[P] {
	return d.quantize(scale, apd.RoundDown)
}

func (d Decimal[P]) quantize(scale int, r string) Decimal[P] {
	scale = max(scale, -MaxExp)
	if d.Scale() <= scale {
		return d
	}
	ctx := newContext(RoundBankers, MaxPrec)
	ctx.Rounding = r
	var f apd.Decimal
	if _, err := ctx.Quantize(&f, &d.val, int32(-scale)); err != nil { //nolint:gosec
		// Reducing the number of digits cannot exceed the precision.
		panic(fmt.Sprintf("%v.Round(%v) failed: %v", d, scale, err))
	}
	return wrap[P](&f)
}

// Pad returns a decimal zero-padded to the specified number of digits after
// the decimal point. The total number of digits never exceeds [MaxPrec]:
// if needed, fewer zeros are added.
func (d Decimal[P]) Pad(scale int) Decimal[P] {
	if d.Scale() >= scale {
		return d
	}
	prec := max(d.Prec(), 1)
	if prec+scale-d.Scale() > MaxPrec {
		scale = MaxPrec - prec + d.Scale()
	}
	if d.Scale() >= scale {
		return d
	}
	var f apd.Decimal
	f.Set(&d.val)
	shift := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(scale-d.Scale())), nil)
	f.Coeff.Mul(&f.Coeff, shift)
	f.Exponent = int32(-scale) //nolint:gosec
	return wrap[P](&f)
}

// Trim returns a decimal with trailing zeros removed up to the given scale.
func (d Decimal[P]) Trim(scale int) Decimal[P] {
	target := max(d.MinScale(), scale)
	if target >= d.Scale() {
		return d
	}
	var f apd.Decimal
	f.Set(&d.val)
	shift := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(d.Scale()-target)), nil)
	f.Coeff.Quo(&f.Coeff, shift)
	f.Exponent = int32(-target) //nolint:gosec
	return wrap[P](&f)
}

// Cmp compares decimals and returns:
//
//	-1 if d < e
//	 0 if d = e
//	+1 if d > e
func (d Decimal[P]) Cmp(e Decimal[P]) int {
	return d.val.Cmp(&e.val)
}

// CmpAbs compares absolute values of decimals.
func (d Decimal[P]) CmpAbs(e Decimal[P]) int {
	return d.Abs().Cmp(e.Abs())
}

// CmpTotal compares the representation of decimals and returns:
//
//	-1 if d < e
//	-1 if d = e and d.scale > e.scale
//	 0 if d = e and d.scale = e.scale
//	+1 if d = e and d.scale < e.scale
//	+1 if d > e
func (d Decimal[P]) CmpTotal(e Decimal[P]) int {
	switch d.Cmp(e) {
	case -1:
		return -1
	case 1:
		return 1
	}
	switch {
	case d.Scale() > e.Scale():
		return -1
	case d.Scale() < e.Scale():
		return 1
	}
	return 0
}

// Equal returns true if decimals are numerically equal.
// 1.0 and 1.00 are equal.
func (d Decimal[P]) Equal(e Decimal[P]) bool {
	return d.Cmp(e) == 0
}

// Min returns the smaller decimal.
func (d Decimal[P]) Min(e Decimal[P]) Decimal[P] {
	if d.CmpTotal(e) <= 0 {
		return d
	}
	return e
}

// Max returns the larger decimal.
func (d Decimal[P]) Max(e Decimal[P]) Decimal[P] {
	if d.CmpTotal(e) >= 0 {
		return d
	}
	return e
}

// Float64 returns the nearest binary floating-point number.
// It returns false if the decimal is too large for a float64.
func (d Decimal[P]) Float64() (f float64, ok bool) {
	f, err := strconv.ParseFloat(d.String(), 64)
	if err != nil || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Int64 returns the integer value of the decimal.
// It returns false if the decimal has a fractional part or does not fit in int64.
func (d Decimal[P]) Int64() (int64, bool) {
	if !d.IsInt() {
		return 0, false
	}
	i := d.Coef()
	switch {
	case d.Scale() > 0:
		i.Quo(i, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(d.Scale())), nil))
	case d.Scale() < 0:
		i.Mul(i, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-d.Scale())), nil))
	}
	if !i.IsInt64() {
		return 0, false
	}
	return i.Int64(), true
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the decimal in plain notation, without exponent.
func (d Decimal[P]) String() string {
	digits := d.val.Coeff.String()
	exp := int(d.val.Exponent)

	var b strings.Builder
	if d.IsNeg() {
		b.WriteByte('-')
	}
	switch {
	case exp >= 0:
		b.WriteString(digits)
		if digits != "0" {
			b.WriteString(strings.Repeat("0", exp))
		}
	case len(digits) > -exp:
		b.WriteString(digits[:len(digits)+exp])
		b.WriteByte('.')
		b.WriteString(digits[len(digits)+exp:])
	default:
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", -exp-len(digits)))
		b.WriteString(digits)
	}
	return b.String()
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example | Description     |
//	| ------ | ------- | --------------- |
//	| %s, %v | 5.67    | Decimal         |
//	| %q     | "5.67"  | Quoted decimal  |
//	| %f     | 5.67    | Decimal         |
//	| %k     | 567%    | Percentage      |
//
// The '-', '+', ' ' and '0' format flags can be used with all verbs.
// Precision is supported for %f and %k; the value is rounded with the
// policy's rounding mode and zero-padded.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (d Decimal[P]) Format(state fmt.State, verb rune) {
	suffix := ""
	switch verb {
	case 'k', 'K':
		if e, err := d.MulPow10(2); err == nil {
			d = e
		}
		suffix = "%"
	}
	if verb == 'f' || verb == 'F' || verb == 'k' || verb == 'K' {
		if p, ok := state.Precision(); ok {
			d = d.Round(p).Pad(p)
		}
	}

	body := d.Abs().String() + suffix
	sign := ""
	switch {
	case d.IsNeg():
		sign = "-"
	case state.Flag('+'):
		sign = "+"
	case state.Flag(' '):
		sign = " "
	}

	lquote, tquote := "", ""
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = `"`, `"`
	}

	width := len(lquote) + len(sign) + len(body) + len(tquote)
	lspaces, lzeros, tspaces := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0'):
			lzeros = w - width
		default:
			lspaces = w - width
		}
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", lspaces))
	b.WriteString(lquote)
	b.WriteString(sign)
	b.WriteString(strings.Repeat("0", lzeros))
	b.WriteString(body)
	b.WriteString(tquote)
	b.WriteString(strings.Repeat(" ", tspaces))

	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F', 'k', 'K':
		state.Write([]byte(b.String()))
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(decimal.Decimal="))
		state.Write([]byte(b.String()))
		state.Write([]byte(")"))
	}
}
