package ieee754

import (
	"math/big"

	"github.com/ericlagergren/decimal"

	"github.com/Synt4xErr0r4/ieee754-go/bigdec"
)

// BinaryCodec losslessly maps between Values and the IEEE 754-2008
// binary interchange encoding described by params: sign (1 bit),
// biased exponent (E bits), an explicit leading bit when !I, and a
// P-bit trailing significand.
//
// A BinaryCodec is immutable after NewBinaryCodec returns: every
// memoized constant is computed eagerly in the constructor (spec's
// recommended option for the "compute max before constructing max"
// bootstrap hazard), so an instance is safe for concurrent read from
// the moment it is constructed.
type BinaryCodec struct {
	params BinaryParams
	bias   int
	width  int

	maxValue     *decimal.Big
	minNormal    *decimal.Big
	minSubnormal *decimal.Big
	epsilon      *decimal.Big
}

// NewBinaryCodec validates params and constructs a BinaryCodec with all
// derived constants precomputed.
func NewBinaryCodec(params BinaryParams) (*BinaryCodec, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	c := &BinaryCodec{
		params: params,
		bias:   params.Bias(),
		width:  params.Width(),
	}
	if err := c.initConstants(); err != nil {
		return nil, err
	}
	return c, nil
}

// Params returns the codec's configuration.
func (c *BinaryCodec) Params() BinaryParams { return c.params }

// Width returns the total encoded bit width.
func (c *BinaryCodec) Width() int { return c.width }

// Bias returns the exponent bias.
func (c *BinaryCodec) Bias() int { return c.bias }

// ExponentRange returns (e_min, e_max): e_min = 2-bias, e_max = bias+1.
func (c *BinaryCodec) ExponentRange() (min, max int) {
	return 2 - c.bias, c.bias + 1
}

// EquivalentDecimalDigits returns floor((P - 1 + (I?0:1)) * log10(2)),
// the number of decimal digits this format's precision is equivalent to.
func (c *BinaryCodec) EquivalentDecimalDigits() int {
	const log10_2 = 0.3010299956639812
	bits := c.params.P - 1
	if !c.params.I {
		bits++
	}
	return int(float64(bits) * log10_2)
}

// MaxValue returns the largest finite magnitude representable by this
// format.
func (c *BinaryCodec) MaxValue() *decimal.Big { return new(decimal.Big).Copy(c.maxValue) }

// MinNormal returns the smallest positive normal magnitude.
func (c *BinaryCodec) MinNormal() *decimal.Big { return new(decimal.Big).Copy(c.minNormal) }

// MinSubnormal returns the smallest positive subnormal magnitude.
func (c *BinaryCodec) MinSubnormal() *decimal.Big { return new(decimal.Big).Copy(c.minSubnormal) }

// Epsilon returns the smallest positive epsilon such that 1+epsilon is
// the next representable value above 1 in this format.
func (c *BinaryCodec) Epsilon() *decimal.Big { return new(decimal.Big).Copy(c.epsilon) }

// NewValue constructs a finite Value for this format, converting to
// signed infinity if the magnitude exceeds MaxValue, per spec §4.4.
func (c *BinaryCodec) NewValue(sign int8, magnitude *decimal.Big) (*Value, error) {
	if err := validateSign(sign); err != nil {
		return nil, err
	}
	abs := new(decimal.Big).Abs(magnitude)
	if abs.Cmp(c.maxValue) > 0 {
		return NewInfinity(sign)
	}
	return NewFinite(sign, magnitude)
}

func (c *BinaryCodec) trailingWidth() int { return c.params.P }

func (c *BinaryCodec) explicitWidth() int {
	if c.params.I {
		return 0
	}
	return 1
}

// pattern assembles a full bit pattern from its fields. trailing must
// already be masked to trailingWidth() bits.
func (c *BinaryCodec) pattern(sign int8, biasedExp uint64, explicitBit uint, trailing *big.Int) *big.Int {
	result := new(big.Int).Set(trailing)
	shift := uint(c.trailingWidth())

	if c.explicitWidth() == 1 {
		if explicitBit == 1 {
			result.SetBit(result, int(shift), 1)
		}
		shift++
	}

	expField := new(big.Int).SetUint64(biasedExp)
	expField.Lsh(expField, shift)
	result.Or(result, expField)
	shift += uint(c.params.E)

	if sign == -1 {
		result.SetBit(result, int(shift), 1)
	}
	return result
}

// allOnesExponent is the reserved biased-exponent value (2^E - 1)
// marking infinities and NaNs.
func (c *BinaryCodec) allOnesExponent() uint64 {
	return uint64(1)<<uint(c.params.E) - 1
}

// PositiveInfinityPattern returns the +∞ bit pattern.
func (c *BinaryCodec) PositiveInfinityPattern() *big.Int {
	return c.pattern(1, c.allOnesExponent(), 0, new(big.Int))
}

// NegativeInfinityPattern returns the -∞ bit pattern.
func (c *BinaryCodec) NegativeInfinityPattern() *big.Int {
	return c.pattern(-1, c.allOnesExponent(), 0, new(big.Int))
}

// ZeroPattern returns the signed-zero bit pattern.
func (c *BinaryCodec) ZeroPattern(sign int8) *big.Int {
	return c.pattern(sign, 0, 0, new(big.Int))
}

// QuietNaNPattern returns a canonical quiet-NaN pattern: MSB of the
// trailing significand set, LSB set (spec's disambiguation from ∞).
func (c *BinaryCodec) QuietNaNPattern(sign int8) *big.Int {
	trailing := new(big.Int)
	trailing.SetBit(trailing, c.trailingWidth()-1, 1)
	trailing.SetBit(trailing, 0, 1)
	return c.pattern(sign, c.allOnesExponent(), 0, trailing)
}

// SignalingNaNPattern returns a canonical signaling-NaN pattern: MSB of
// the trailing significand clear, LSB set (nonzero payload required).
func (c *BinaryCodec) SignalingNaNPattern(sign int8) *big.Int {
	trailing := new(big.Int)
	trailing.SetBit(trailing, 0, 1)
	return c.pattern(sign, c.allOnesExponent(), 0, trailing)
}

func (c *BinaryCodec) initConstants() error {
	p := c.params
	trailingWidth := p.P

	allOnesTrailing := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(trailingWidth)), big.NewInt(1))
	maxPattern := c.pattern(1, c.allOnesExponent()-1, 1, allOnesTrailing)

	minNormalPattern := c.pattern(1, 1, 1, new(big.Int))

	minSubnormalTrailing := big.NewInt(1)
	minSubnormalPattern := c.pattern(1, 0, 0, minSubnormalTrailing)

	maxValue, err := c.Decode(maxPattern)
	if err != nil {
		return err
	}
	minNormal, err := c.Decode(minNormalPattern)
	if err != nil {
		return err
	}
	minSubnormal, err := c.Decode(minSubnormalPattern)
	if err != nil {
		return err
	}

	c.maxValue, _ = maxValue.Magnitude()
	c.minNormal, _ = minNormal.Magnitude()
	c.minSubnormal, _ = minSubnormal.Magnitude()

	onePattern := c.pattern(1, uint64(c.bias), 1, new(big.Int))
	nextPattern := new(big.Int).Add(onePattern, big.NewInt(1))
	next, err := c.Decode(nextPattern)
	if err != nil {
		return err
	}
	nextMag, _ := next.Magnitude()
	one := bigdec.FromParts(false, big.NewInt(1), 0)
	c.epsilon = new(decimal.Big).Sub(nextMag, one)

	return nil
}
