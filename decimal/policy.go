package decimal

import (
	"fmt"

	"github.com/cockroachdb/apd"
)

// MaxPrec is the number of significant digits kept by every policy.
const MaxPrec = 38

// Exponent limits of the arithmetic context.
// A finite non-zero result must satisfy MinExp <= adjusted exponent <= MaxExp,
// where the adjusted exponent is the exponent of the most significant digit.
const (
	MaxExp = 164
	MinExp = -128
)

// Mode is a rounding method applied after every arithmetic operation.
type Mode uint8

const (
	// RoundPlain rounds to the nearest value, halfway cases away from zero.
	RoundPlain Mode = iota
	// RoundDown rounds toward negative infinity.
	RoundDown
	// RoundUp rounds toward positive infinity.
	RoundUp
	// RoundBankers rounds to the nearest value, halfway cases to the even digit.
	RoundBankers
)

// String implements the [fmt.Stringer] interface.
func (m Mode) String() string {
	switch m {
	case RoundPlain:
		return "plain"
	case RoundDown:
		return "down"
	case RoundUp:
		return "up"
	case RoundBankers:
		return "bankers"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// Policy describes how a [Decimal] is rounded.
// Implementations must be zero-size comparable types: the policy of a decimal
// is part of its type and never changes during its lifetime.
type Policy interface {
	Mode() Mode
	Precision() int
}

// Plain rounds half away from zero.
type Plain struct{}

func (Plain) Mode() Mode { return RoundPlain }
func (Plain) Precision() int { return MaxPrec }

// Down rounds toward negative infinity.
type Down struct{}

func (Down) Mode() Mode { return RoundDown }
func (Down) Precision() int { return MaxPrec }

// Up rounds toward positive infinity.
type Up struct{}

func (Up) Mode() Mode { return RoundUp }
func (Up) Precision() int { return MaxPrec }

// Bankers rounds half to even.
// It is the policy of monetary amounts and exchange quotes.
type Bankers struct{}

func (Bankers) Mode() Mode { return RoundBankers }
func (Bankers) Precision() int { return MaxPrec }

// traps lists the conditions that abort an operation.
// Inexact and Rounded are expected on every division and are not trapped.
const traps = apd.Overflow |
	apd.Underflow |
	apd.DivisionByZero |
	apd.DivisionUndefined |
	apd.DivisionImpossible |
	apd.InvalidOperation |
	apd.SystemOverflow |
	apd.SystemUnderflow

// rounder maps a mode to the name of the engine's rounding function.
func rounder(m Mode) string {
	switch m {
	case RoundPlain:
		return apd.RoundHalfUp
	case RoundDown:
		return apd.RoundFloor
	case RoundUp:
		return apd.RoundCeiling
	default:
		return apd.RoundHalfEven
	}
}

// newContext returns an arithmetic context for the given mode and precision.
func newContext(m Mode, prec int) *apd.Context {
	return &apd.Context{
		Precision:   uint32(prec), //nolint:gosec
		MaxExponent: MaxExp,
		MinExponent: MinExp,
		Traps:       traps,
		Rounding:    rounder(m),
	}
}

// contextOf returns the arithmetic context of policy P.
func contextOf[P Policy]() *apd.Context {
	var p P
	return newContext(p.Mode(), p.Precision())
}

// modeOf returns the rounding mode of policy P.
func modeOf[P Policy]() Mode {
	var p P
	return p.Mode()
}

// mirror returns the mode that rounds a magnitude the way m rounds the
// corresponding negative number.
func (m Mode) mirror() Mode {
	switch m {
	case RoundDown:
		return RoundUp
	case RoundUp:
		return RoundDown
	}
	return m
}
