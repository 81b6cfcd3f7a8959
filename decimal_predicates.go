package ieee754

import "math/big"

// These mirror Value's category predicates, but operate directly on an
// encoded pattern (BID or DPD — the combination field is identical
// under both) so a caller can classify a bit pattern without decoding
// its full magnitude.

// IsPositive reports whether pattern's sign bit is clear.
func (c *DecimalCodec) IsPositive(pattern *big.Int) bool {
	return pattern.Bit(c.params.C+c.params.T) == 0
}

// IsNegative reports whether pattern's sign bit is set.
func (c *DecimalCodec) IsNegative(pattern *big.Int) bool {
	return pattern.Bit(c.params.C+c.params.T) == 1
}

// IsInfinity reports whether pattern encodes +∞ or -∞.
func (c *DecimalCodec) IsInfinity(pattern *big.Int) bool {
	_, comb, _ := c.splitPattern(pattern)
	kind, _, _ := c.parseCombination(comb)
	return kind == combinationInfinity
}

// IsPositiveInfinity reports whether pattern encodes +∞.
func (c *DecimalCodec) IsPositiveInfinity(pattern *big.Int) bool {
	return c.IsInfinity(pattern) && c.IsPositive(pattern)
}

// IsNegativeInfinity reports whether pattern encodes -∞.
func (c *DecimalCodec) IsNegativeInfinity(pattern *big.Int) bool {
	return c.IsInfinity(pattern) && c.IsNegative(pattern)
}

// IsNaN reports whether pattern encodes a quiet or signaling NaN.
func (c *DecimalCodec) IsNaN(pattern *big.Int) bool {
	_, comb, _ := c.splitPattern(pattern)
	kind, _, _ := c.parseCombination(comb)
	return kind == combinationNaN
}

// IsQuietNaN reports whether pattern encodes a quiet NaN.
func (c *DecimalCodec) IsQuietNaN(pattern *big.Int) bool {
	if !c.IsNaN(pattern) {
		return false
	}
	return pattern.Bit(c.params.T+c.params.C-6) == 0
}

// IsSignalingNaN reports whether pattern encodes a signaling NaN.
func (c *DecimalCodec) IsSignalingNaN(pattern *big.Int) bool {
	return c.IsNaN(pattern) && !c.IsQuietNaN(pattern)
}
