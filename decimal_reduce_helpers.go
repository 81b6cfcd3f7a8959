package ieee754

import (
	"math/big"

	"github.com/ericlagergren/decimal"

	"github.com/Synt4xErr0r4/ieee754-go/bigdec"
)

// reconstructMagnitude rebuilds |value| = (leadingDigit * 10^(D-1) + low) * 10^(biasedExp-bias),
// the inverse of reduce + splitLeadingDigit, shared by DecodeBID and DecodeDPD.
func (c *DecimalCodec) reconstructMagnitude(leadingDigit int, biasedExp *big.Int, low *big.Int) *decimal.Big {
	pow := pow10(c.digits - 1)
	s := new(big.Int).Mul(big.NewInt(int64(leadingDigit)), pow)
	s.Add(s, low)

	q := new(big.Int).Sub(biasedExp, big.NewInt(c.bias))
	return bigdec.FromParts(false, s, -int(q.Int64()))
}

// digitTriples splits l (assumed < 1000^count) into count base-1000
// groups, most-significant first, zero-padding as needed.
func digitTriples(l *big.Int, count int) []int {
	groups := make([]int, count)
	cur := new(big.Int).Set(l)
	thousand := big.NewInt(1000)
	rem := new(big.Int)
	for i := count - 1; i >= 0; i-- {
		cur.QuoRem(cur, thousand, rem)
		groups[i] = int(rem.Int64())
	}
	return groups
}
