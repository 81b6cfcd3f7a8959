package ieee754

import (
	"math/big"

	"github.com/pkg/errors"
)

// BinaryParams configures a BinaryCodec: E exponent bits, P significand
// bits, and whether the leading significand bit is implicit (I=true,
// the common case) or stored explicitly (I=false, binary80).
type BinaryParams struct {
	E int
	P int
	I bool
}

// Validate reports ErrInvalidParameter if the parameter set falls
// outside the bounds spec'd for binary interchange formats.
func (p BinaryParams) Validate() error {
	if p.E < 1 || p.E > 31 {
		return errors.Wrapf(ErrInvalidParameter, "E=%d out of range [1,31]", p.E)
	}
	if p.P < 1 {
		return errors.Wrapf(ErrInvalidParameter, "P=%d must be >= 1", p.P)
	}
	return nil
}

// Width returns the total bit width of the encoded pattern:
// sign (1) + exponent (E) + explicit leading bit (0 or 1) + significand (P).
func (p BinaryParams) Width() int {
	w := 1 + p.E + p.P
	if !p.I {
		w++
	}
	return w
}

// Bias is 2^(E-1) - 1.
func (p BinaryParams) Bias() int {
	return 1<<(uint(p.E)-1) - 1
}

// DecimalParams configures a DecimalCodec: C combination-field bits, T
// trailing-significand bits (a multiple of 10, one declet per 10 bits
// under DPD).
type DecimalParams struct {
	C int
	T int
}

// Validate reports ErrInvalidParameter if the parameter set falls
// outside the bounds spec'd for decimal interchange formats.
func (p DecimalParams) Validate() error {
	if p.C < 6 || p.C > 31 {
		return errors.Wrapf(ErrInvalidParameter, "C=%d out of range [6,31]", p.C)
	}
	if p.T < 1 {
		return errors.Wrapf(ErrInvalidParameter, "T=%d must be >= 1", p.T)
	}
	if p.T%10 != 0 {
		return errors.Wrapf(ErrInvalidParameter, "T=%d must be a multiple of 10", p.T)
	}
	return nil
}

// Width returns the total bit width: sign (1) + combination field (C) +
// trailing significand (T).
func (p DecimalParams) Width() int {
	return 1 + p.C + p.T
}

// Digits returns D, the number of representable decimal digits:
// 1 + (T/10)*3.
func (p DecimalParams) Digits() int {
	return 1 + (p.T/10)*3
}

// ExponentSpan returns 3 * 2^(C-5).
func (p DecimalParams) ExponentSpan() *big.Int {
	span := new(big.Int).Lsh(big.NewInt(1), uint(p.C-5))
	return span.Mul(span, big.NewInt(3))
}

// Bias returns D - 2 + exponentSpan/2.
func (p DecimalParams) Bias() *big.Int {
	half := new(big.Int).Rsh(p.ExponentSpan(), 1)
	return half.Add(half, big.NewInt(int64(p.Digits()-2)))
}
