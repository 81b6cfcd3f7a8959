package ieee754

import "math/big"

// EncodeBID converts v to its binary integer decimal (BID) bit pattern
// under ctx's active rounding mode.
func (c *DecimalCodec) EncodeBID(ctx Context, v *Value) (*big.Int, error) {
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
	trailing := new(big.Int).Set(low)
	if trailing.BitLen() > c.params.T {
		// Out-of-range low part (spec §4.3 step 7): T is too narrow for
		// this D, so the low part is dropped rather than corrupting the
		// combination field.
		trailing = new(big.Int)
	}
	return c.assemble(sign, comb, trailing), nil
}

// DecodeBID interprets pattern as a BID bit pattern.
func (c *DecimalCodec) DecodeBID(pattern *big.Int) (*Value, error) {
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
		magnitude := c.reconstructMagnitude(leadingDigit, biasedExp, trailing)
		return NewFinite(sign, signedZeroSafe(sign, magnitude))
	}
}

// splitPattern extracts sign, the C-bit combination field, and the
// T-bit trailing significand from a full-width bit pattern. Shared by
// both BID and DPD decoders.
func (c *DecimalCodec) splitPattern(pattern *big.Int) (sign int8, comb, trailing *big.Int) {
	sign = 1
	if pattern.Bit(c.params.C+c.params.T) == 1 {
		sign = -1
	}
	combMask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(c.params.C)), big.NewInt(1))
	comb = new(big.Int).Rsh(pattern, uint(c.params.T))
	comb.And(comb, combMask)

	trailingMask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(c.params.T)), big.NewInt(1))
	trailing = new(big.Int).And(pattern, trailingMask)
	return sign, comb, trailing
}
