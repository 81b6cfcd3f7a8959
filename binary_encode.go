package ieee754

import (
	"math/big"

	"github.com/ericlagergren/decimal"

	"github.com/Synt4xErr0r4/ieee754-go/bigdec"
	"github.com/Synt4xErr0r4/ieee754-go/bigfrac"
	"github.com/Synt4xErr0r4/ieee754-go/round"
)

// Encode converts v to its c.Width()-bit binary interchange bit pattern
// under ctx's active rounding mode. Encoding never fails for a
// well-formed Value: overflow silently produces signed infinity and
// underflow silently produces signed zero.
func (c *BinaryCodec) Encode(ctx Context, v *Value) (*big.Int, error) {
	switch v.Category() {
	case Infinity:
		if v.Sign() == 1 {
			return c.PositiveInfinityPattern(), nil
		}
		return c.NegativeInfinityPattern(), nil
	case QuietNaN:
		return c.encodeNaNPattern(v, true), nil
	case SignalingNaN:
		return c.encodeNaNPattern(v, false), nil
	}

	mag, err := v.Magnitude()
	if err != nil {
		return nil, err
	}
	sign := v.Sign()
	if mag.Sign() == 0 {
		return c.ZeroPattern(sign), nil
	}

	return c.encodeFinite(ctx, sign, mag)
}

func (c *BinaryCodec) encodeFinite(ctx Context, sign int8, mag *decimal.Big) (*big.Int, error) {
	abs := new(decimal.Big).Abs(mag)
	coefficient, scale, _ := bigdec.Decompose(abs)
	den := bigfrac.Pow10(scale)

	integerPart := new(big.Int)
	remainder := new(big.Int)
	integerPart.QuoRem(coefficient, den, remainder)
	fraction := &bigfrac.Frac{Num: remainder, Den: den}

	var e int
	if integerPart.Sign() != 0 {
		e = integerPart.BitLen() - 1
	} else {
		// Fast leading-zero skip (spec's subnormal-performance design
		// note): discover e without a per-bit scan of the fraction.
		k := fraction.LeadingZeroShift()
		e = -(k + 1)
	}

	eMinActual := 1 - c.bias
	normalBranch := e >= eMinActual
	align := e
	if !normalBranch {
		align = eMinActual
	}

	pWidth := c.trailingWidth()
	shift := pWidth - align

	var sigNum, sigDen *big.Int
	if shift >= 0 {
		sigNum = new(big.Int).Lsh(coefficient, uint(shift))
		sigDen = den
	} else {
		sigNum = coefficient
		sigDen = new(big.Int).Lsh(den, uint(-shift))
	}

	quotient := new(big.Int)
	rem := new(big.Int)
	quotient.QuoRem(sigNum, sigDen, rem)

	guard := quotient.Bit(0) == 1
	r2 := new(big.Int).Lsh(rem, 1)
	roundBit := r2.Cmp(sigDen) >= 0
	if roundBit {
		r2.Sub(r2, sigDen)
	}
	sticky := r2.Sign() != 0

	if round.RoundBinary(ctx.Rounding, sign == -1, guard, roundBit, sticky) {
		quotient.Add(quotient, big.NewInt(1))
	}
	sig := quotient

	fullMask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(pWidth)), big.NewInt(1))
	explicitBit := uint(0)
	if !c.params.I {
		explicitBit = 1
	}

	if normalBranch {
		if sig.BitLen() > pWidth+1 {
			sig = new(big.Int).Rsh(sig, 1)
			e++
		}
		biasedExp := e + c.bias
		if uint64(biasedExp) >= c.allOnesExponent() {
			if sign == 1 {
				return c.PositiveInfinityPattern(), nil
			}
			return c.NegativeInfinityPattern(), nil
		}
		trailing := new(big.Int).And(sig, fullMask)
		return c.pattern(sign, uint64(biasedExp), explicitBit, trailing), nil
	}

	// Subnormal branch: sig has at most pWidth bits unless it rounded
	// up exactly to 2^pWidth, promoting to the smallest normal value.
	if sig.BitLen() > pWidth {
		return c.pattern(sign, 1, explicitBit, new(big.Int)), nil
	}
	if sig.Sign() == 0 {
		return c.ZeroPattern(sign), nil
	}
	return c.pattern(sign, 0, 0, sig), nil
}

// encodeNaNPattern builds the bit pattern for a (non-canonical-payload)
// NaN: exponent all ones, MSB of the trailing significand set iff
// quiet, and the lowest bit always set so the pattern is distinguished
// from infinity even with a zero payload.
func (c *BinaryCodec) encodeNaNPattern(v *Value, quiet bool) *big.Int {
	width := c.trailingWidth()
	trailing := new(big.Int)
	if payload := v.NaNPayload(); payload != nil {
		mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(width-1)), big.NewInt(1))
		trailing.And(payload, mask)
	}
	if quiet {
		trailing.SetBit(trailing, width-1, 1)
	}
	trailing.SetBit(trailing, 0, 1)
	return c.pattern(v.Sign(), c.allOnesExponent(), 0, trailing)
}
