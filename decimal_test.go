package ieee754_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Synt4xErr0r4/ieee754-go"
	"github.com/Synt4xErr0r4/ieee754-go/bigdec"
)

func mustDecimalCodec(t *testing.T, c, tr int) *ieee754.DecimalCodec {
	t.Helper()
	codec, err := ieee754.NewDecimalCodec(ieee754.DecimalParams{C: c, T: tr})
	require.NoError(t, err)
	return codec
}

func TestDecimalCodecRejectsInvalidParams(t *testing.T) {
	_, err := ieee754.NewDecimalCodec(ieee754.DecimalParams{C: 1, T: 20})
	require.ErrorIs(t, err, ieee754.ErrInvalidParameter)

	_, err = ieee754.NewDecimalCodec(ieee754.DecimalParams{C: 11, T: 7})
	require.ErrorIs(t, err, ieee754.ErrInvalidParameter)
}

func TestDecimalCodecDigitsAndWidth(t *testing.T) {
	c := mustDecimalCodec(t, 11, 20)
	require.Equal(t, 7, c.Digits())
	require.Equal(t, 32, c.Width())
}

func TestDecimalCodecFiniteRoundTripBothEncodings(t *testing.T) {
	c := mustDecimalCodec(t, 13, 50) // decimal64 shape

	cases := []struct {
		coefficient int64
		scale       int
	}{
		{0, 0},
		{1, 0},
		{100, 2},
		{123456789012345, 5},
		{7, -3},
	}

	for _, enc := range []ieee754.Encoding{ieee754.BID, ieee754.DPD} {
		ctx := ieee754.Context{Rounding: ieee754.DefaultContext().Rounding, DecimalEncoding: enc}
		for _, tc := range cases {
			mag := bigdec.FromParts(false, big.NewInt(tc.coefficient), tc.scale)
			v, err := ieee754.NewFinite(1, mag)
			require.NoError(t, err)

			pattern, err := c.Encode(ctx, v)
			require.NoError(t, err)

			decoded, err := c.Decode(ctx, pattern)
			require.NoError(t, err)
			require.True(t, decoded.Equals(v), "encoding=%v: round trip mismatch for %d*10^-%d: got %v", enc, tc.coefficient, tc.scale, decoded)
		}
	}
}

func TestDecimalCodecNegativeZero(t *testing.T) {
	c := mustDecimalCodec(t, 11, 20)
	ctx := ieee754.DefaultContext()

	neg, err := ieee754.NewFinite(-1, bigdec.FromParts(true, big.NewInt(0), 0))
	require.NoError(t, err)

	pattern, err := c.Encode(ctx, neg)
	require.NoError(t, err)
	require.True(t, c.IsNegative(pattern))

	decoded, err := c.Decode(ctx, pattern)
	require.NoError(t, err)
	require.True(t, decoded.IsZero())
	require.Equal(t, int8(-1), decoded.Sign())
}

func TestDecimalCodecInfinityAndNaNPatterns(t *testing.T) {
	c := mustDecimalCodec(t, 11, 20)

	require.True(t, c.IsPositiveInfinity(c.PositiveInfinityPattern()))
	require.True(t, c.IsNegativeInfinity(c.NegativeInfinityPattern()))
	require.True(t, c.IsQuietNaN(c.QuietNaNPattern(1)))
	require.True(t, c.IsSignalingNaN(c.SignalingNaNPattern(1)))
	require.False(t, c.IsInfinity(c.QuietNaNPattern(1)))
}

func TestDecimalCodecOverflowSaturatesToInfinity(t *testing.T) {
	c := mustDecimalCodec(t, 11, 20) // decimal32 shape, eMax small
	ctx := ieee754.DefaultContext()

	huge, err := ieee754.NewFinite(1, bigdec.FromParts(false, big.NewInt(1), -1000))
	require.NoError(t, err)

	pattern, err := c.Encode(ctx, huge)
	require.NoError(t, err)
	require.True(t, c.IsPositiveInfinity(pattern))
}

func TestDecimalCodecBIDAndDPDAgreeOnCombinationField(t *testing.T) {
	c := mustDecimalCodec(t, 13, 50)
	ctxBID := ieee754.Context{Rounding: ieee754.DefaultContext().Rounding, DecimalEncoding: ieee754.BID}
	ctxDPD := ieee754.Context{Rounding: ieee754.DefaultContext().Rounding, DecimalEncoding: ieee754.DPD}

	mag := bigdec.FromParts(false, big.NewInt(42), 1)
	v, err := ieee754.NewFinite(1, mag)
	require.NoError(t, err)

	bidPattern, err := c.Encode(ctxBID, v)
	require.NoError(t, err)
	dpdPattern, err := c.Encode(ctxDPD, v)
	require.NoError(t, err)

	combMask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 13), big.NewInt(1))
	bidComb := new(big.Int).And(new(big.Int).Rsh(bidPattern, 50), combMask)
	dpdComb := new(big.Int).And(new(big.Int).Rsh(dpdPattern, 50), combMask)
	require.Equal(t, 0, bidComb.Cmp(dpdComb), "combination field must match between BID and DPD for the same value")
}
