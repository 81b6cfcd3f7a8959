package ieee754

import "math/big"

// Encode converts v to this codec's bit pattern using ctx.DecimalEncoding
// to choose between the BID and DPD interchange forms.
func (c *DecimalCodec) Encode(ctx Context, v *Value) (*big.Int, error) {
	if ctx.DecimalEncoding == DPD {
		return c.EncodeDPD(ctx, v)
	}
	return c.EncodeBID(ctx, v)
}

// Decode interprets pattern using ctx.DecimalEncoding to choose between
// the BID and DPD interchange forms.
func (c *DecimalCodec) Decode(ctx Context, pattern *big.Int) (*Value, error) {
	if ctx.DecimalEncoding == DPD {
		return c.DecodeDPD(pattern)
	}
	return c.DecodeBID(pattern)
}
