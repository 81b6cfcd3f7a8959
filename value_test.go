package ieee754_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Synt4xErr0r4/ieee754-go"
	"github.com/Synt4xErr0r4/ieee754-go/bigdec"
)

func TestNewFiniteRejectsSignMismatch(t *testing.T) {
	mag := bigdec.FromParts(true, big.NewInt(5), 0)
	_, err := ieee754.NewFinite(1, mag)
	require.ErrorIs(t, err, ieee754.ErrInvalidSign)
}

func TestNewFiniteRejectsBadSign(t *testing.T) {
	mag := bigdec.FromParts(false, big.NewInt(5), 0)
	_, err := ieee754.NewFinite(0, mag)
	require.ErrorIs(t, err, ieee754.ErrInvalidSign)
}

func TestNewFiniteRejectsNilMagnitude(t *testing.T) {
	_, err := ieee754.NewFinite(1, nil)
	require.ErrorIs(t, err, ieee754.ErrCategoryMismatch)
}

func TestValueNegate(t *testing.T) {
	mag := bigdec.FromParts(false, big.NewInt(7), 0)
	v, err := ieee754.NewFinite(1, mag)
	require.NoError(t, err)

	neg := v.Negate()
	require.Equal(t, int8(-1), neg.Sign())
	require.True(t, neg.IsFinite())

	negMag, err := neg.Magnitude()
	require.NoError(t, err)
	require.Equal(t, -1, negMag.Sign())
}

func TestValueEqualsDistinguishesSignedZero(t *testing.T) {
	pos, err := ieee754.NewFinite(1, bigdec.FromParts(false, big.NewInt(0), 0))
	require.NoError(t, err)
	neg, err := ieee754.NewFinite(-1, bigdec.FromParts(true, big.NewInt(0), 0))
	require.NoError(t, err)

	require.True(t, pos.IsZero())
	require.True(t, neg.IsZero())
	require.False(t, pos.Equals(neg))
}

func TestValueMagnitudeErrorsOnNonFinite(t *testing.T) {
	inf, err := ieee754.NewInfinity(1)
	require.NoError(t, err)

	_, err = inf.Magnitude()
	require.ErrorIs(t, err, ieee754.ErrNotFinite)
}

func TestNaNPayloadRoundTrip(t *testing.T) {
	payload := big.NewInt(42)
	v, err := ieee754.QuietNaNWithPayload(1, payload)
	require.NoError(t, err)

	require.True(t, v.IsQuietNaN())
	require.Equal(t, 0, v.NaNPayload().Cmp(payload))
}

func TestContextDefaults(t *testing.T) {
	ctx := ieee754.DefaultContext()
	require.Equal(t, ieee754.DefaultEncoding(), ctx.DecimalEncoding)

	ieee754.SetDefaultEncoding(ieee754.DPD)
	require.Equal(t, ieee754.DPD, ieee754.DefaultEncoding())
	ieee754.SetDefaultEncoding(ieee754.BID)
	require.Equal(t, ieee754.BID, ieee754.DefaultEncoding())
}
