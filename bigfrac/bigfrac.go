// Package bigfrac provides the small arbitrary-precision rational and
// power-of-ten helpers the binary and decimal codecs share: an exact
// numerator/denominator fraction, which the binary encoder uses to count
// the leading zero bits of a magnitude below 1, and a memoized table of
// *big.Int powers of ten used to move between a decimal
// coefficient/scale pair and an integer/fraction split.
//
// Using a rational (numerator/denominator) fraction for the
// fractional part, rather than a decimal with ever-growing
// precision, keeps every step exact and avoids the need to
// pick an arbitrary working precision for a transcendental-free
// computation (spec design note: "a rewrite should use rational
// arithmetic ... rather than decimal arithmetic with unbounded
// precision — this is faster and cannot incur residual rounding").
package bigfrac

import (
	"math/big"
	"sync"
)

var (
	pow10Mu    sync.Mutex
	pow10Cache = []*big.Int{big.NewInt(1)}
)

// Pow10 returns 10^n as a *big.Int. The result must not be mutated by
// the caller; it is shared from an internal cache.
func Pow10(n int) *big.Int {
	if n < 0 {
		panic("bigfrac: negative exponent")
	}

	pow10Mu.Lock()
	defer pow10Mu.Unlock()

	for len(pow10Cache) <= n {
		next := new(big.Int).Mul(pow10Cache[len(pow10Cache)-1], big.NewInt(10))
		pow10Cache = append(pow10Cache, next)
	}
	return pow10Cache[n]
}

// Frac is an exact non-negative rational number num/den, den > 0. It
// represents the fractional remainder of a magnitude; Double extracts
// its binary expansion one bit at a time.
type Frac struct {
	Num *big.Int
	Den *big.Int
}

// NewFromScaledCoefficient builds the fraction coef / 10^scale without
// reducing it: callers pass the coefficient that remains after the
// integer part has been removed, so coef < 10^scale holds (but is not
// required).
func NewFromScaledCoefficient(coef *big.Int, scale int) *Frac {
	return &Frac{
		Num: new(big.Int).Set(coef),
		Den: Pow10(scale),
	}
}

// IsZero reports whether the fraction is exactly zero.
func (f *Frac) IsZero() bool {
	return f.Num.Sign() == 0
}

// Double multiplies f by two in place and extracts the new integer part
// (0 or 1), leaving f holding the remaining fractional part (num < den
// still holds afterward). It is the single primitive the bit-producing
// loop of spec §4.2 step 4 needs.
func (f *Frac) Double() (bit int) {
	f.Num.Lsh(f.Num, 1)
	if f.Num.Cmp(f.Den) >= 0 {
		f.Num.Sub(f.Num, f.Den)
		return 1
	}
	return 0
}

// LeadingZeroShift implements spec §4.2 step 3's "fast leading-zero
// skip": it returns k = ceil(log2(1/f)) - 1, the number of leading zero
// bits in f's binary expansion, computed via a bit-length comparison
// rather than a per-bit loop. The binary encoder uses it to find the
// exponent of a magnitude below 1.
func (f *Frac) LeadingZeroShift() int {
	if f.IsZero() {
		return 0
	}
	// f = Num/Den < 1. k is the largest count with Num * 2^k < Den. The
	// bit-length estimate bitlen(Den) - bitlen(Num) - 1 always satisfies
	// that inequality and is at most one below the true k, so a single
	// comparison at k+1 settles it.
	k := f.Den.BitLen() - f.Num.BitLen() - 1
	if k < 0 {
		return 0
	}
	// Check 2^(k+1) * Num < Den (i.e. the (k+1)-th doubling still yields 0).
	shifted := new(big.Int).Lsh(f.Num, uint(k+1))
	if shifted.Cmp(f.Den) < 0 {
		k++
	}
	return k
}

// Scale multiplies f by 2^k in place without reducing (k <= 0 leaves f
// unchanged). Scaling by the k that LeadingZeroShift returns skips that
// many leading zero bits in one step and leaves f in [1/2, 1).
func (f *Frac) Scale(k int) {
	if k <= 0 {
		return
	}
	f.Num.Lsh(f.Num, uint(k))
}
