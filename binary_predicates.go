package ieee754

import "math/big"

// These mirror Value's category predicates, but operate directly on an
// encoded pattern so a caller can classify a bit pattern without paying
// for a full Decode. Grounded on the same switch-on-exponent-field
// shape Decode itself uses.

// IsPositive reports whether pattern's sign bit is clear.
func (c *BinaryCodec) IsPositive(pattern *big.Int) bool {
	return pattern.Bit(c.width-1) == 0
}

// IsNegative reports whether pattern's sign bit is set.
func (c *BinaryCodec) IsNegative(pattern *big.Int) bool {
	return pattern.Bit(c.width-1) == 1
}

func (c *BinaryCodec) biasedExponentAndTrailing(pattern *big.Int) (biasedU uint64, trailing *big.Int) {
	trailingWidth := c.trailingWidth()
	expShift := trailingWidth + c.explicitWidth()
	expMask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(c.params.E)), big.NewInt(1))
	biasedExp := new(big.Int).And(new(big.Int).Rsh(pattern, uint(expShift)), expMask)

	trailingMask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(trailingWidth)), big.NewInt(1))
	trailing = new(big.Int).And(pattern, trailingMask)
	return biasedExp.Uint64(), trailing
}

// IsInfinity reports whether pattern encodes +∞ or -∞.
func (c *BinaryCodec) IsInfinity(pattern *big.Int) bool {
	biasedU, trailing := c.biasedExponentAndTrailing(pattern)
	return biasedU == c.allOnesExponent() && trailing.Sign() == 0
}

// IsPositiveInfinity reports whether pattern encodes +∞.
func (c *BinaryCodec) IsPositiveInfinity(pattern *big.Int) bool {
	return c.IsInfinity(pattern) && c.IsPositive(pattern)
}

// IsNegativeInfinity reports whether pattern encodes -∞.
func (c *BinaryCodec) IsNegativeInfinity(pattern *big.Int) bool {
	return c.IsInfinity(pattern) && c.IsNegative(pattern)
}

// IsNaN reports whether pattern encodes a quiet or signaling NaN.
func (c *BinaryCodec) IsNaN(pattern *big.Int) bool {
	biasedU, trailing := c.biasedExponentAndTrailing(pattern)
	return biasedU == c.allOnesExponent() && trailing.Sign() != 0
}

// IsQuietNaN reports whether pattern encodes a quiet NaN.
func (c *BinaryCodec) IsQuietNaN(pattern *big.Int) bool {
	if !c.IsNaN(pattern) {
		return false
	}
	return pattern.Bit(c.trailingWidth()-1) == 1
}

// IsSignalingNaN reports whether pattern encodes a signaling NaN.
func (c *BinaryCodec) IsSignalingNaN(pattern *big.Int) bool {
	return c.IsNaN(pattern) && !c.IsQuietNaN(pattern)
}
