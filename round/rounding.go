// Package round implements the IEEE 754-2008 rounding-direction
// attributes shared by the binary and decimal codecs.
package round

import (
	"fmt"
	"math/big"
	"sync/atomic"

	"github.com/ericlagergren/decimal"

	"github.com/Synt4xErr0r4/ieee754-go/bigdec"
	"github.com/Synt4xErr0r4/ieee754-go/bigfrac"
)

// Mode is one of the five rounding-direction attributes defined by
// IEEE 754-2008.
type Mode int8

const (
	// ToNearestEven rounds to the nearest representable value; ties round
	// to the value whose least significant digit (bit or decimal digit)
	// is even. This is the IEEE 754-2008 default.
	ToNearestEven Mode = iota
	// ToNearestAway rounds to the nearest representable value; ties round
	// away from zero.
	ToNearestAway
	// TowardZero truncates.
	TowardZero
	// TowardPositive rounds toward positive infinity ("ceiling").
	TowardPositive
	// TowardNegative rounds toward negative infinity ("floor").
	TowardNegative
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ToNearestEven:
		return "ToNearestEven"
	case ToNearestAway:
		return "ToNearestAway"
	case TowardZero:
		return "TowardZero"
	case TowardPositive:
		return "TowardPositive"
	case TowardNegative:
		return "TowardNegative"
	default:
		return fmt.Sprintf("Mode(%d)", int8(m))
	}
}

// Valid reports whether m is one of the five defined modes.
func (m Mode) Valid() bool {
	return m >= ToNearestEven && m <= TowardNegative
}

// RoundBinary implements the truth table of spec §4.1: given the sign of
// the value being rounded and its guard/round/sticky bits, it reports
// whether the kept significand must be incremented by one ulp.
//
//	Mode            Formula
//	ToNearestEven    (G∧R) ∨ (R∧S)
//	ToNearestAway    R
//	TowardZero       false
//	TowardPositive   ¬N ∧ (R∨S)
//	TowardNegative    N ∧ (R∨S)
func RoundBinary(mode Mode, negative, guard, r, sticky bool) bool {
	switch mode {
	case ToNearestEven:
		return (guard && r) || (r && sticky)
	case ToNearestAway:
		return r
	case TowardZero:
		return false
	case TowardPositive:
		return !negative && (r || sticky)
	case TowardNegative:
		return negative && (r || sticky)
	default:
		return (guard && r) || (r && sticky)
	}
}

// RoundDecimal rounds x to an integer (scale 0) according to mode and
// returns the result; x is not mutated. It is implemented directly over
// the unscaled coefficient and scale rather than delegating to
// decimal.Big.Round, because that method rounds to a target number of
// significant digits, not to a target scale, and cannot express
// "round to integer" for a magnitude below 1 without extra bookkeeping.
func RoundDecimal(mode Mode, x *decimal.Big) *decimal.Big {
	coeff, scale, neg := bigdec.Decompose(x)
	if scale <= 0 {
		// Already an integer (or has only trailing zeros); widening it
		// is not rounding.
		return new(decimal.Big).Copy(x)
	}

	divisor := bigfrac.Pow10(scale)
	var quotient, remainder big.Int
	quotient.QuoRem(coeff, divisor, &remainder)

	if remainder.Sign() != 0 {
		twiceRemainder := new(big.Int).Lsh(&remainder, 1)
		cmp := twiceRemainder.Cmp(divisor)

		roundUp := false
		switch mode {
		case ToNearestEven:
			roundUp = cmp > 0 || (cmp == 0 && quotient.Bit(0) == 1)
		case ToNearestAway:
			roundUp = cmp >= 0
		case TowardZero:
			roundUp = false
		case TowardPositive:
			roundUp = !neg
		case TowardNegative:
			roundUp = neg
		}

		if roundUp {
			quotient.Add(&quotient, big.NewInt(1))
		}
	}

	result := new(decimal.Big).SetBigMantScale(&quotient, 0)
	if neg && quotient.Sign() != 0 {
		result.Neg(result)
	}
	return result
}

// defaultMode is the process-wide default rounding mode (spec §5),
// stored as an int32 so reads/writes are atomic with respect to each
// other without a mutex.
var defaultMode atomic.Int32

// Default returns the current process-wide default rounding mode.
// The zero value of the atomic is ToNearestEven, matching spec §4.1's
// "A process-wide default rounding mode (ties-to-even) is selectable".
func Default() Mode {
	return Mode(defaultMode.Load())
}

// SetDefault installs mode as the process-wide default rounding mode.
// It has no effect on encodes already in flight; spec §5 explicitly
// allows a concurrent change to yield either mode's well-formed result.
func SetDefault(mode Mode) {
	defaultMode.Store(int32(mode))
}
