package ieee754

import (
	"math/big"

	"github.com/ericlagergren/decimal"

	"github.com/Synt4xErr0r4/ieee754-go/bigdec"
)

// Decode interprets pattern as a c.Width()-bit binary interchange bit
// pattern (unsigned, big-endian, top bit = sign) and returns the Value
// it represents. Decode never returns an error for a well-formed
// pattern; every bit pattern decodes to something.
func (c *BinaryCodec) Decode(pattern *big.Int) (*Value, error) {
	p := c.params
	trailingWidth := c.trailingWidth()
	explicitW := c.explicitWidth()

	sign := int8(1)
	if pattern.Bit(c.width-1) == 1 {
		sign = -1
	}

	expShift := trailingWidth + explicitW
	expMask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(p.E)), big.NewInt(1))
	biasedExp := new(big.Int).And(new(big.Int).Rsh(pattern, uint(expShift)), expMask)

	trailingMask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(trailingWidth)), big.NewInt(1))
	trailing := new(big.Int).And(pattern, trailingMask)

	explicitBit := uint(0)
	if explicitW == 1 {
		explicitBit = pattern.Bit(trailingWidth)
	}

	allOnes := c.allOnesExponent()
	biasedU := biasedExp.Uint64()

	switch {
	case biasedExp.Sign() == 0 && trailing.Sign() == 0:
		return &Value{sign: sign, category: Finite, magnitude: bigdec.FromParts(false, big.NewInt(0), 0)}, nil

	case biasedExp.Sign() == 0:
		mag := c.significandMagnitude(trailing, trailingWidth, false, 1-c.bias)
		v, err := NewFinite(sign, signedZeroSafe(sign, mag))
		return v, err

	case biasedU == allOnes && trailing.Sign() == 0:
		return &Value{sign: sign, category: Infinity}, nil

	case biasedU == allOnes:
		quiet := trailing.Bit(trailingWidth-1) == 1
		cat := SignalingNaN
		if quiet {
			cat = QuietNaN
		}
		return &Value{sign: sign, category: cat, magnitude: diagnosticPayload(trailing, trailingWidth)}, nil

	default:
		leadingOne := p.I || explicitBit == 1
		unbiased := int(biasedU) - c.bias
		mag := c.significandMagnitude(trailing, trailingWidth, leadingOne, unbiased)
		v, err := NewFinite(sign, signedZeroSafe(sign, mag))
		return v, err
	}
}

// significandMagnitude reconstructs |value| = sigInt * 2^(exp-width)
// where sigInt is trailing, optionally with an implicit/explicit
// leading 1 bit set at position width.
func (c *BinaryCodec) significandMagnitude(trailing *big.Int, width int, leadingOne bool, exp int) *decimal.Big {
	sigInt := new(big.Int).Set(trailing)
	if leadingOne {
		sigInt.SetBit(sigInt, width, 1)
	}
	return bigdec.MulPow2(sigInt, exp-width)
}

// signedZeroSafe applies sign to the non-negative mag, so a
// negative-sign pattern decodes to a negative magnitude as NewFinite
// requires, and a negative-sign zero decodes as -0 rather than +0
// (decimal.Big's zero value does not otherwise carry a sign).
func signedZeroSafe(sign int8, mag *decimal.Big) *decimal.Big {
	if sign == -1 {
		mag.Neg(mag)
	}
	return mag
}
