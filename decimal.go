package ieee754

import (
	"math/big"

	"github.com/ericlagergren/decimal"

	"github.com/Synt4xErr0r4/ieee754-go/bigdec"
)

// DecimalCodec losslessly maps between Values and the IEEE 754-2008
// decimal interchange encoding described by params: sign (1 bit),
// combination field (C bits, packing the leading significand digit
// with the top exponent bits), and a T-bit trailing significand,
// packed either as a plain binary integer (BID) or as densely packed
// decimal declets (DPD, see package declet).
//
// Like BinaryCodec, every derived constant is computed eagerly in the
// constructor; an instance is immutable and safe for concurrent read
// once constructed.
type DecimalCodec struct {
	params DecimalParams

	digits   int
	bias     int64
	eMax     int64
	minScale int64
	qloMask  *big.Int

	maxValue     *decimal.Big
	minNormal    *decimal.Big
	minSubnormal *decimal.Big
	epsilon      *decimal.Big
}

// NewDecimalCodec validates params and constructs a DecimalCodec with
// all derived constants precomputed.
func NewDecimalCodec(params DecimalParams) (*DecimalCodec, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	c := &DecimalCodec{params: params}
	c.digits = params.Digits()
	c.bias = params.Bias().Int64()
	c.eMax = params.ExponentSpan().Int64() / 2
	c.minScale = 2 - c.eMax - int64(c.digits)
	c.qloMask = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(params.C-5)), big.NewInt(1))
	c.initConstants()
	return c, nil
}

// Params returns the codec's configuration.
func (c *DecimalCodec) Params() DecimalParams { return c.params }

// Width returns the total encoded bit width.
func (c *DecimalCodec) Width() int { return c.params.Width() }

// Digits returns D, the number of representable decimal digits.
func (c *DecimalCodec) Digits() int { return c.digits }

// Bias returns the exponent bias.
func (c *DecimalCodec) Bias() int64 { return c.bias }

// ExponentRange returns the valid range of the coefficient-scaling
// exponent q (v = s * 10^q): (min-scale, e_max).
func (c *DecimalCodec) ExponentRange() (min, max int64) {
	return c.minScale, c.eMax
}

// MaxValue returns the largest finite magnitude representable by this
// format: D nines at the maximum exponent.
func (c *DecimalCodec) MaxValue() *decimal.Big { return new(decimal.Big).Copy(c.maxValue) }

// MinNormal returns the smallest magnitude with a full D-digit
// coefficient at the minimum exponent.
func (c *DecimalCodec) MinNormal() *decimal.Big { return new(decimal.Big).Copy(c.minNormal) }

// MinSubnormal returns the smallest positive magnitude representable at
// all: a single significant digit at the minimum exponent.
func (c *DecimalCodec) MinSubnormal() *decimal.Big { return new(decimal.Big).Copy(c.minSubnormal) }

// Epsilon returns the smallest positive epsilon such that 1+epsilon is
// the next representable value above 1 in this format: 10^-(D-1).
func (c *DecimalCodec) Epsilon() *decimal.Big { return new(decimal.Big).Copy(c.epsilon) }

// NewValue constructs a finite Value for this format, converting to
// signed infinity if the magnitude exceeds MaxValue, per spec §4.4.
func (c *DecimalCodec) NewValue(sign int8, magnitude *decimal.Big) (*Value, error) {
	if err := validateSign(sign); err != nil {
		return nil, err
	}
	abs := new(decimal.Big).Abs(magnitude)
	if abs.Cmp(c.maxValue) > 0 {
		return NewInfinity(sign)
	}
	return NewFinite(sign, magnitude)
}

func (c *DecimalCodec) initConstants() {
	d := c.digits

	nines := new(big.Int).Sub(pow10(d), big.NewInt(1))
	c.maxValue = bigdec.FromParts(false, nines, int(-c.eMax))

	c.minSubnormal = bigdec.FromParts(false, big.NewInt(1), int(-c.minScale))

	fullCoefficient := pow10(d - 1)
	c.minNormal = bigdec.FromParts(false, fullCoefficient, int(-c.minScale))

	c.epsilon = bigdec.FromParts(false, big.NewInt(1), d-1)
}

func pow10(n int) *big.Int {
	if n <= 0 {
		return big.NewInt(1)
	}
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}
