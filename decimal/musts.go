package decimal

import "fmt"

// MustAdd is like [Decimal.Add] but panics if computing error.
func (d Decimal[P]) MustAdd(e Decimal[P]) Decimal[P] {
	f, err := d.Add(e)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", d, err))
	}
	return f
}

// MustSub is like [Decimal.Sub] but panics if computing error.
func (d Decimal[P]) MustSub(e Decimal[P]) Decimal[P] {
	f, err := d.Sub(e)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", d, err))
	}
	return f
}

// MustMul is like [Decimal.Mul] but panics if computing error.
func (d Decimal[P]) MustMul(e Decimal[P]) Decimal[P] {
	f, err := d.Mul(e)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", d, err))
	}
	return f
}

// MustQuo is like [Decimal.Quo] but panics if computing error.
func (d Decimal[P]) MustQuo(e Decimal[P]) Decimal[P] {
	f, err := d.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", d, err))
	}
	return f
}

// MustRem is like [Decimal.Rem] but panics if computing error.
func (d Decimal[P]) MustRem(e Decimal[P]) Decimal[P] {
	f, err := d.Rem(e)
	if err != nil {
		panic(fmt.Sprintf("MustRem(%v) failed: %v", d, err))
	}
	return f
}

// MustMulPow10 is like [Decimal.MulPow10] but panics if computing error.
func (d Decimal[P]) MustMulPow10(n int) Decimal[P] {
	f, err := d.MulPow10(n)
	if err != nil {
		panic(fmt.Sprintf("MustMulPow10(%v) failed: %v", d, err))
	}
	return f
}
