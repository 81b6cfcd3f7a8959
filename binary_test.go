package ieee754_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Synt4xErr0r4/ieee754-go"
	"github.com/Synt4xErr0r4/ieee754-go/bigdec"
)

func mustBinaryCodec(t *testing.T, e, p int, implicit bool) *ieee754.BinaryCodec {
	t.Helper()
	c, err := ieee754.NewBinaryCodec(ieee754.BinaryParams{E: e, P: p, I: implicit})
	require.NoError(t, err)
	return c
}

func TestBinaryCodecRejectsInvalidParams(t *testing.T) {
	_, err := ieee754.NewBinaryCodec(ieee754.BinaryParams{E: 0, P: 10, I: true})
	require.ErrorIs(t, err, ieee754.ErrInvalidParameter)

	_, err = ieee754.NewBinaryCodec(ieee754.BinaryParams{E: 8, P: 0, I: true})
	require.ErrorIs(t, err, ieee754.ErrInvalidParameter)
}

func TestBinaryCodecWidth(t *testing.T) {
	c := mustBinaryCodec(t, 11, 52, true)
	require.Equal(t, 64, c.Width())

	c80 := mustBinaryCodec(t, 15, 63, false)
	require.Equal(t, 80, c80.Width())
}

func TestBinaryCodecFiniteRoundTrip(t *testing.T) {
	c := mustBinaryCodec(t, 11, 52, true)
	ctx := ieee754.DefaultContext()

	cases := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(2),
		big.NewInt(3),
		big.NewInt(1000000),
		big.NewInt(7),
	}
	for _, coeff := range cases {
		mag := bigdec.FromParts(false, coeff, 0)
		sign := int8(1)
		v, err := ieee754.NewFinite(sign, mag)
		require.NoError(t, err)

		pattern, err := c.Encode(ctx, v)
		require.NoError(t, err)

		decoded, err := c.Decode(pattern)
		require.NoError(t, err)
		require.True(t, decoded.Equals(v), "round trip mismatch for %v: got %v", coeff, decoded)
	}
}

func TestBinaryCodecSignedZero(t *testing.T) {
	c := mustBinaryCodec(t, 8, 23, true)
	ctx := ieee754.DefaultContext()

	neg, err := ieee754.NewFinite(-1, bigdec.FromParts(true, big.NewInt(0), 0))
	require.NoError(t, err)

	pattern, err := c.Encode(ctx, neg)
	require.NoError(t, err)
	require.True(t, c.IsNegative(pattern))

	decoded, err := c.Decode(pattern)
	require.NoError(t, err)
	require.True(t, decoded.IsZero())
	require.Equal(t, int8(-1), decoded.Sign())
}

func TestBinaryCodecInfinityAndNaNPatterns(t *testing.T) {
	c := mustBinaryCodec(t, 8, 23, true)

	require.True(t, c.IsPositiveInfinity(c.PositiveInfinityPattern()))
	require.True(t, c.IsNegativeInfinity(c.NegativeInfinityPattern()))
	require.True(t, c.IsQuietNaN(c.QuietNaNPattern(1)))
	require.True(t, c.IsSignalingNaN(c.SignalingNaNPattern(1)))
	require.False(t, c.IsInfinity(c.QuietNaNPattern(1)))
}

func TestBinaryCodecEpsilon(t *testing.T) {
	c64 := mustBinaryCodec(t, 11, 52, true)
	want64 := bigdec.MulPow2(big.NewInt(1), -52)
	require.Equal(t, 0, c64.Epsilon().Cmp(want64), "binary64 epsilon must be 2^-52")
	require.Equal(t, 1, c64.Epsilon().Sign(), "epsilon must be positive")

	// binary80 is the only mandated format with an explicit (non-implicit)
	// leading significand bit; its bootstrap "one" pattern must actually
	// decode to 1.0 or Epsilon silently goes negative.
	c80 := mustBinaryCodec(t, 15, 63, false)
	want80 := bigdec.MulPow2(big.NewInt(1), -63)
	require.Equal(t, 1, c80.Epsilon().Sign(), "epsilon must be positive for an explicit-leading-bit format")
	require.Equal(t, 0, c80.Epsilon().Cmp(want80), "binary80 epsilon must be 2^-63")
}

func TestBinaryCodecOverflowSaturatesToInfinity(t *testing.T) {
	c := mustBinaryCodec(t, 5, 10, true) // binary16 shape
	ctx := ieee754.DefaultContext()

	huge, err := ieee754.NewFinite(1, bigdec.FromParts(false, big.NewInt(1), -100))
	require.NoError(t, err)

	pattern, err := c.Encode(ctx, huge)
	require.NoError(t, err)
	require.True(t, c.IsPositiveInfinity(pattern))
}
