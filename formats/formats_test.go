package formats_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Synt4xErr0r4/ieee754-go"
	"github.com/Synt4xErr0r4/ieee754-go/bigdec"
	"github.com/Synt4xErr0r4/ieee754-go/formats"
)

// spotCheck is one row of spec.md §6's literal conformance table.
type spotCheck struct {
	name         string
	posInfinity  string
	quietNaNPos  string
	negativeZero string
}

func hexBig(t *testing.T, s string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(s[2:], 16)
	require.True(t, ok, "invalid hex literal %q", s)
	return n
}

func TestBinarySpotCheckPatterns(t *testing.T) {
	cases := []struct {
		spotCheck
		codec *ieee754.BinaryCodec
	}{
		{spotCheck{"binary16", "0x7C00", "0x7E01", "0x8000"}, formats.Binary16()},
		{spotCheck{"binary32", "0x7F800000", "0x7FC00001", "0x80000000"}, formats.Binary32()},
		{spotCheck{"binary64", "0x7FF0000000000000", "0x7FF8000000000001", "0x8000000000000000"}, formats.Binary64()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, 0, hexBig(t, tc.posInfinity).Cmp(tc.codec.PositiveInfinityPattern()))
			require.Equal(t, 0, hexBig(t, tc.quietNaNPos).Cmp(tc.codec.QuietNaNPattern(1)))
			require.Equal(t, 0, hexBig(t, tc.negativeZero).Cmp(tc.codec.ZeroPattern(-1)))
		})
	}
}

func TestDecimalSpotCheckPatterns(t *testing.T) {
	cases := []struct {
		spotCheck
		codec *ieee754.DecimalCodec
	}{
		{spotCheck{"decimal32", "0x78000000", "0x7C000000", "0x80000000"}, formats.Decimal32()},
		{spotCheck{"decimal64", "0x7800000000000000", "0x7C00000000000000", "0x8000000000000000"}, formats.Decimal64()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, 0, hexBig(t, tc.posInfinity).Cmp(tc.codec.PositiveInfinityPattern()))
			require.Equal(t, 0, hexBig(t, tc.quietNaNPos).Cmp(tc.codec.QuietNaNPattern(1)))
			require.Equal(t, 0, hexBig(t, tc.negativeZero).Cmp(tc.codec.ZeroPattern(-1)))
		})
	}
}

func TestBinaryValueRoundTrip(t *testing.T) {
	codec := formats.Binary64()
	ctx := ieee754.DefaultContext()

	one, err := ieee754.NewFinite(1, bigdec.FromParts(false, big.NewInt(1), 0))
	require.NoError(t, err)

	pattern, err := codec.Encode(ctx, one)
	require.NoError(t, err)

	decoded, err := codec.Decode(pattern)
	require.NoError(t, err)
	require.True(t, decoded.Equals(one))
}
