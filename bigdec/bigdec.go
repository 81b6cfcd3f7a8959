// Package bigdec bridges github.com/ericlagergren/decimal's Big — the
// arbitrary-precision decimal primitive spec.md §3 calls for — and the
// math/big types the codecs build bit patterns out of.
//
// decimal.Big deliberately keeps its internal coefficient
// representation (compact int64 vs. inflated *big.Int) unexported, so
// rather than reach past the API, Decompose pulls the exact coefficient
// and scale out through the package's own plain ('%f') formatter — the
// same string-splitting technique the teacher's
// fixedpoint.getDigitString uses to separate a decimal string's integer
// and fractional digit runs.
package bigdec

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ericlagergren/decimal"

	"github.com/Synt4xErr0r4/ieee754-go/bigfrac"
)

// Decompose extracts the exact (coefficient, scale, sign) triple for a
// finite x, such that x == (negative ? -1 : 1) * coefficient * 10^-scale
// and coefficient >= 0, scale >= 0.
func Decompose(x *decimal.Big) (coefficient *big.Int, scale int, negative bool) {
	scale = int(x.Scale())
	if scale < 0 {
		scale = 0
	}

	s := fmt.Sprintf("%.*f", scale, x)
	negative = strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i] + s[i+1:]
	}

	coefficient = new(big.Int)
	if _, ok := coefficient.SetString(s, 10); !ok {
		coefficient = new(big.Int)
	}
	if coefficient.Sign() == 0 {
		negative = false
	}
	return coefficient, scale, negative
}

// FromParts builds the decimal.Big equal to
// (negative ? -1 : 1) * coefficient * 10^-scale.
func FromParts(negative bool, coefficient *big.Int, scale int) *decimal.Big {
	z := new(decimal.Big).SetBigMantScale(new(big.Int).Set(coefficient), int32(scale))
	if negative && z.Sign() != 0 {
		z.Neg(z)
	}
	return z
}

// MulPow2 returns the exact decimal value of coefficient * 2^exp. It
// never calls into decimal.Big's own arithmetic (whose rounding depends
// on the receiver's Context): for exp >= 0 the result is an exact
// integer; for exp < 0, 2^-n = 5^n * 10^-n, so the result is built
// directly as a (coefficient*5^n, scale=n) pair.
func MulPow2(coefficient *big.Int, exp int) *decimal.Big {
	if exp >= 0 {
		shifted := new(big.Int).Lsh(coefficient, uint(exp))
		return FromParts(false, shifted, 0)
	}
	n := uint(-exp)
	five := new(big.Int).Exp(big.NewInt(5), new(big.Int).SetUint64(uint64(n)), nil)
	scaled := new(big.Int).Mul(coefficient, five)
	return FromParts(false, scaled, int(n))
}

// IntegerAndFraction splits the absolute value of x into its integer
// part and an exact bigfrac.Frac holding the remaining fractional part
// (spec §4.2 step 1).
func IntegerAndFraction(x *decimal.Big) (integer *big.Int, fraction *bigfrac.Frac) {
	coefficient, scale, _ := Decompose(x)
	den := bigfrac.Pow10(scale)

	integer = new(big.Int)
	remainder := new(big.Int)
	integer.QuoRem(coefficient, den, remainder)

	return integer, &bigfrac.Frac{Num: remainder, Den: den}
}
