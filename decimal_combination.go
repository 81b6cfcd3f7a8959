package ieee754

import "math/big"

// Combination-field top-5-bit discriminator values (spec §4.3).
const (
	combTop5Infinity = 0x1E // 11110
	combTop5NaN      = 0x1F // 11111
)

// combinationKind classifies a parsed combination field.
type combinationKind uint8

const (
	combinationFinite combinationKind = iota
	combinationInfinity
	combinationNaN
)

// buildCombination assembles the C-bit combination field for a finite
// value from its leading significand digit (0-9) and full biased
// exponent. This packing is identical for BID and DPD — only the
// trailing-significand packing differs between the two forms.
func (c *DecimalCodec) buildCombination(leadingDigit int, biasedExp *big.Int) *big.Int {
	qloWidth := uint(c.params.C - 5)
	qlo := new(big.Int).And(biasedExp, c.qloMask)
	qhi := new(big.Int).Rsh(biasedExp, qloWidth).Int64()

	var top5 int64
	if leadingDigit > 7 {
		bit := int64(leadingDigit - 8)
		top5 = 0b11000 | (bit << 2) | qhi
	} else {
		top5 = (qhi << 3) | int64(leadingDigit)
	}

	comb := big.NewInt(top5)
	comb.Lsh(comb, qloWidth)
	comb.Or(comb, qlo)
	return comb
}

// parseCombination reverses buildCombination, also recognizing the
// reserved infinity/NaN discriminators.
func (c *DecimalCodec) parseCombination(comb *big.Int) (kind combinationKind, leadingDigit int, biasedExp *big.Int) {
	qloWidth := uint(c.params.C - 5)
	top5 := new(big.Int).Rsh(comb, qloWidth).Int64() & 0x1F
	qlo := new(big.Int).And(comb, c.qloMask)

	switch {
	case top5 == combTop5Infinity:
		return combinationInfinity, 0, nil
	case top5 == combTop5NaN:
		return combinationNaN, 0, nil
	case top5>>3 == 0b11:
		bit := (top5 >> 2) & 1
		qhi := top5 & 0b11
		leadingDigit = 8 + int(bit)
		biasedExp = new(big.Int).Lsh(big.NewInt(qhi), qloWidth)
		biasedExp.Or(biasedExp, qlo)
		return combinationFinite, leadingDigit, biasedExp
	default:
		qhi := top5 >> 3
		leadingDigit = int(top5 & 0b111)
		biasedExp = new(big.Int).Lsh(big.NewInt(qhi), qloWidth)
		biasedExp.Or(biasedExp, qlo)
		return combinationFinite, leadingDigit, biasedExp
	}
}

// infinityCombination returns the fixed ±∞ combination field.
func (c *DecimalCodec) infinityCombination() *big.Int {
	return new(big.Int).Lsh(big.NewInt(combTop5Infinity), uint(c.params.C-5))
}

// nanCombination returns the NaN combination field, with the signaling
// flag set at bit C-6 when signaling is true (spec §4.3).
func (c *DecimalCodec) nanCombination(signaling bool) *big.Int {
	comb := new(big.Int).Lsh(big.NewInt(combTop5NaN), uint(c.params.C-5))
	if signaling {
		comb.SetBit(comb, c.params.C-6, 1)
	}
	return comb
}

// assemble packs sign, a pre-built C-bit combination field, and a
// T-bit trailing significand into the full width-bit pattern.
func (c *DecimalCodec) assemble(sign int8, comb, trailing *big.Int) *big.Int {
	result := new(big.Int).Set(trailing)
	result.Or(result, new(big.Int).Lsh(comb, uint(c.params.T)))
	if sign == -1 {
		result.SetBit(result, c.params.C+c.params.T, 1)
	}
	return result
}

// PositiveInfinityPattern returns the +∞ bit pattern.
func (c *DecimalCodec) PositiveInfinityPattern() *big.Int {
	return c.assemble(1, c.infinityCombination(), new(big.Int))
}

// NegativeInfinityPattern returns the -∞ bit pattern.
func (c *DecimalCodec) NegativeInfinityPattern() *big.Int {
	return c.assemble(-1, c.infinityCombination(), new(big.Int))
}

// ZeroPattern returns the signed-zero bit pattern. It is identical
// under BID and DPD: leading digit 0, biased exponent 0, all-zero
// trailing significand (the all-zero declet is 0 under DPD too).
func (c *DecimalCodec) ZeroPattern(sign int8) *big.Int {
	return c.assemble(sign, c.buildCombination(0, new(big.Int)), new(big.Int))
}

// QuietNaNPattern returns a canonical quiet-NaN pattern with no payload.
func (c *DecimalCodec) QuietNaNPattern(sign int8) *big.Int {
	return c.nanPattern(sign, false, nil)
}

// SignalingNaNPattern returns a canonical signaling-NaN pattern with no payload.
func (c *DecimalCodec) SignalingNaNPattern(sign int8) *big.Int {
	return c.nanPattern(sign, true, nil)
}

// nanPattern builds a NaN bit pattern carrying payload (raw bits,
// independent of BID/DPD) in the trailing significand.
func (c *DecimalCodec) nanPattern(sign int8, signaling bool, payload *big.Int) *big.Int {
	trailing := new(big.Int)
	if payload != nil {
		mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(c.params.T)), big.NewInt(1))
		trailing.And(payload, mask)
	}
	return c.assemble(sign, c.nanCombination(signaling), trailing)
}
