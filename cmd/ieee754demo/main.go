// Command ieee754demo exercises the standard binary and decimal
// interchange formats end to end: encode a handful of representative
// values, print their bit patterns, and decode them back.
package main

import (
	"fmt"
	"math/big"

	"github.com/Synt4xErr0r4/ieee754-go"
	"github.com/Synt4xErr0r4/ieee754-go/bigdec"
	"github.com/Synt4xErr0r4/ieee754-go/formats"
)

func main() {
	format := "%-10s\t%-20s\t%s\n"
	sep := "-------------------------------------"

	ctx := ieee754.DefaultContext()

	fmt.Println("binary64")
	binary64 := formats.Binary64()
	for _, v := range binarySamples() {
		showBinary(format, binary64, ctx, v)
	}
	println(sep)

	fmt.Println("decimal64 (BID)")
	decimal64 := formats.Decimal64()
	bidCtx := ieee754.Context{Rounding: ctx.Rounding, DecimalEncoding: ieee754.BID}
	for _, v := range decimalSamples() {
		showDecimal(format, decimal64, bidCtx, v)
	}
	println(sep)

	fmt.Println("decimal64 (DPD)")
	dpdCtx := ieee754.Context{Rounding: ctx.Rounding, DecimalEncoding: ieee754.DPD}
	for _, v := range decimalSamples() {
		showDecimal(format, decimal64, dpdCtx, v)
	}
}

func binarySamples() []*ieee754.Value {
	values := make([]*ieee754.Value, 0, 4)
	for _, coeff := range []int64{0, 1, -2, 314159} {
		sign := int8(1)
		if coeff < 0 {
			sign = -1
			coeff = -coeff
		}
		mag := bigdec.FromParts(sign == -1, big.NewInt(coeff), 2)
		v, err := ieee754.NewFinite(sign, mag)
		if err != nil {
			panic(err)
		}
		values = append(values, v)
	}
	if inf, err := ieee754.NewInfinity(1); err == nil {
		values = append(values, inf)
	}
	if nan, err := ieee754.NewQuietNaN(1); err == nil {
		values = append(values, nan)
	}
	return values
}

func decimalSamples() []*ieee754.Value {
	values := make([]*ieee754.Value, 0, 4)
	for _, coeff := range []int64{0, 1, 12345, 999999999} {
		mag := bigdec.FromParts(false, big.NewInt(coeff), 2)
		v, err := ieee754.NewFinite(1, mag)
		if err != nil {
			panic(err)
		}
		values = append(values, v)
	}
	return values
}

func showBinary(format string, codec *ieee754.BinaryCodec, ctx ieee754.Context, v *ieee754.Value) {
	pattern, err := codec.Encode(ctx, v)
	if err != nil {
		fmt.Printf(format, describe(v), "error", err)
		return
	}
	decoded, err := codec.Decode(pattern)
	if err != nil {
		fmt.Printf(format, describe(v), hexString(pattern, codec.Width()), err)
		return
	}
	fmt.Printf(format, describe(v), hexString(pattern, codec.Width()), describe(decoded))
}

func showDecimal(format string, codec *ieee754.DecimalCodec, ctx ieee754.Context, v *ieee754.Value) {
	pattern, err := codec.Encode(ctx, v)
	if err != nil {
		fmt.Printf(format, describe(v), "error", err)
		return
	}
	decoded, err := codec.Decode(ctx, pattern)
	if err != nil {
		fmt.Printf(format, describe(v), hexString(pattern, codec.Width()), err)
		return
	}
	fmt.Printf(format, describe(v), hexString(pattern, codec.Width()), describe(decoded))
}

func describe(v *ieee754.Value) string {
	switch v.Category() {
	case ieee754.Finite:
		mag, _ := v.Magnitude()
		sign := ""
		if v.Sign() == -1 {
			sign = "-"
		}
		return sign + mag.String()
	default:
		return v.Category().String()
	}
}

func hexString(pattern *big.Int, width int) string {
	hexDigits := (width + 3) / 4
	return fmt.Sprintf("0x%0*X", hexDigits, pattern)
}
