package ieee754

import (
	"math/big"

	"github.com/Synt4xErr0r4/ieee754-go/declet"
)

// EncodeDPD converts v to its densely-packed-decimal (DPD) bit pattern
// under ctx's active rounding mode.
func (c *DecimalCodec) EncodeDPD(ctx Context, v *Value) (*big.Int, error) {
	sign, special, leadingDigit, biasedExp, low, err := c.reduce(ctx, v)
	if err != nil {
		return nil, err
	}

	switch special {
	case decimalInfinity:
		if sign == 1 {
			return c.PositiveInfinityPattern(), nil
		}
		return c.NegativeInfinityPattern(), nil
	case decimalZero:
		return c.ZeroPattern(sign), nil
	case decimalQuietNaN:
		return c.nanPattern(sign, false, low), nil
	case decimalSignalingNaN:
		return c.nanPattern(sign, true, low), nil
	}

	comb := c.buildCombination(leadingDigit, biasedExp)

	decletCount := c.params.T / 10
	groups := digitTriples(low, decletCount)
	trailing := new(big.Int)
	for _, g := range groups {
		a, b, d0 := g/100, (g/10)%10, g%10
		trailing.Lsh(trailing, 10)
		trailing.Or(trailing, big.NewInt(int64(declet.Encode(a, b, d0))))
	}

	return c.assemble(sign, comb, trailing), nil
}

// DecodeDPD interprets pattern as a DPD bit pattern.
func (c *DecimalCodec) DecodeDPD(pattern *big.Int) (*Value, error) {
	sign, comb, trailing := c.splitPattern(pattern)

	kind, leadingDigit, biasedExp := c.parseCombination(comb)
	switch kind {
	case combinationInfinity:
		return &Value{sign: sign, category: Infinity}, nil
	case combinationNaN:
		if comb.Bit(c.params.C-6) == 1 {
			return SignalingNaNWithPayload(sign, trailing)
		}
		return QuietNaNWithPayload(sign, trailing)
	default:
		decletCount := c.params.T / 10
		mask10 := big.NewInt(0x3FF)
		tmp := new(big.Int).Set(trailing)
		declets := make([]uint16, decletCount)
		for i := decletCount - 1; i >= 0; i-- {
			part := new(big.Int).And(tmp, mask10)
			declets[i] = uint16(part.Uint64())
			tmp.Rsh(tmp, 10)
		}

		low := new(big.Int)
		thousand := big.NewInt(1000)
		for _, dec := range declets {
			a, b, d0 := declet.Decode(dec)
			low.Mul(low, thousand)
			low.Add(low, big.NewInt(int64(a*100+b*10+d0)))
		}

		magnitude := c.reconstructMagnitude(leadingDigit, biasedExp, low)
		return NewFinite(sign, signedZeroSafe(sign, magnitude))
	}
}
