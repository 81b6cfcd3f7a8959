package ieee754

import (
	"math/big"

	"github.com/ericlagergren/decimal"

	"github.com/Synt4xErr0r4/ieee754-go/bigdec"
	"github.com/Synt4xErr0r4/ieee754-go/round"
)

// decimalSpecial tags the outcome of reduce: either a fully-reduced
// finite coefficient/exponent pair (decimalNone) or a special pattern
// the caller should emit directly.
type decimalSpecial uint8

const (
	decimalNone decimalSpecial = iota
	decimalInfinity
	decimalZero
	decimalQuietNaN
	decimalSignalingNaN
)

var ten = big.NewInt(10)

// reduce implements spec §4.3 steps 1-6, shared verbatim by EncodeBID
// and EncodeDPD (the two encoders differ only in how the leading digit
// and low part get packed into bits, never in how the magnitude gets
// reduced to fit D digits and the valid exponent range).
func (c *DecimalCodec) reduce(ctx Context, v *Value) (sign int8, special decimalSpecial, leadingDigit int, biasedExp *big.Int, low *big.Int, err error) {
	sign = v.Sign()

	switch v.Category() {
	case Infinity:
		return sign, decimalInfinity, 0, nil, nil, nil
	case QuietNaN:
		return sign, decimalQuietNaN, 0, nil, v.NaNPayload(), nil
	case SignalingNaN:
		return sign, decimalSignalingNaN, 0, nil, v.NaNPayload(), nil
	}

	mag, magErr := v.Magnitude()
	if magErr != nil {
		return sign, decimalNone, 0, nil, nil, magErr
	}
	if mag.Sign() == 0 {
		return sign, decimalZero, 0, nil, nil, nil
	}

	abs := new(decimal.Big).Abs(mag)
	coefficient, scale, _ := bigdec.Decompose(abs)
	q := int64(-scale)

	for coefficient.Sign() != 0 {
		div := new(big.Int)
		rem := new(big.Int)
		div.QuoRem(coefficient, ten, rem)
		if rem.Sign() != 0 {
			break
		}
		coefficient = div
		q++
	}

	if digits := decimalDigitCount(coefficient); digits > c.digits {
		extra := digits - c.digits
		var carry int64
		coefficient, carry = c.roundAwayDigits(ctx.Rounding, sign == -1, coefficient, extra)
		q += int64(extra) + carry
	}

	if q > c.eMax {
		return sign, decimalInfinity, 0, nil, nil, nil
	}

	for q < c.minScale && coefficient.Sign() != 0 {
		var carry int64
		coefficient, carry = c.roundAwayDigits(ctx.Rounding, sign == -1, coefficient, 1)
		q += 1 + carry
	}

	if coefficient.Sign() == 0 {
		return sign, decimalZero, 0, nil, nil, nil
	}

	biasedExp = big.NewInt(q + c.bias)
	leadingDigit, low = c.splitLeadingDigit(coefficient)
	return sign, decimalNone, leadingDigit, biasedExp, low, nil
}

// roundAwayDigits removes exactly `extra` decimal digits from
// coefficient under mode, reporting back how many additional digits a
// rounding carry removed (0 or 1) — e.g. rounding 999 down to 2 digits
// can carry to 1000, which is really a 1-digit result once the carry's
// extra zero is accounted for.
func (c *DecimalCodec) roundAwayDigits(mode round.Mode, negative bool, coefficient *big.Int, extra int) (*big.Int, int64) {
	before := decimalDigitCount(coefficient)
	x := bigdec.FromParts(negative, coefficient, extra)
	rounded := round.RoundDecimal(mode, x)
	result, _, _ := bigdec.Decompose(rounded)

	if decimalDigitCount(result) > before-extra {
		result = new(big.Int).Quo(result, ten)
		return result, 1
	}
	return result, 0
}

// decimalDigitCount returns the number of decimal digits in |n|, with
// zero counted as one digit.
func decimalDigitCount(n *big.Int) int {
	if n.Sign() == 0 {
		return 1
	}
	return len(new(big.Int).Abs(n).String())
}

// splitLeadingDigit divides s into its leading digit and the remaining
// D-1 digits, treating s as if zero-padded to exactly c.digits digits:
// d = s / 10^(D-1), low = s mod 10^(D-1). This is what lets a
// value whose significant-digit count is below D round-trip through a
// fixed-width combination/trailing-significand split.
func (c *DecimalCodec) splitLeadingDigit(s *big.Int) (int, *big.Int) {
	pow := pow10(c.digits - 1)
	d := new(big.Int)
	low := new(big.Int)
	d.QuoRem(s, pow, low)
	return int(d.Int64()), low
}
