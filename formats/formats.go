// Package formats provides ready-made codecs for the standard IEEE
// 754-2008 interchange formats named in spec.md §6's parameter table,
// so a caller doesn't have to hand-assemble a BinaryParams/DecimalParams
// pair for the common cases. Each accessor lazily builds and memoizes
// its codec the first time it's called — mirroring the teacher's
// currency.Amount[C] pattern of a package-level constructor handing
// back a ready-to-use value, adapted here to a lazily-initialized
// singleton since a codec carries real precomputed state rather than
// being a zero-size phantom type.
package formats

import (
	"sync"

	"github.com/Synt4xErr0r4/ieee754-go"
)

func memoizedBinary(params ieee754.BinaryParams) func() *ieee754.BinaryCodec {
	var once sync.Once
	var codec *ieee754.BinaryCodec
	return func() *ieee754.BinaryCodec {
		once.Do(func() {
			c, err := ieee754.NewBinaryCodec(params)
			if err != nil {
				panic("formats: " + err.Error())
			}
			codec = c
		})
		return codec
	}
}

func memoizedDecimal(params ieee754.DecimalParams) func() *ieee754.DecimalCodec {
	var once sync.Once
	var codec *ieee754.DecimalCodec
	return func() *ieee754.DecimalCodec {
		once.Do(func() {
			c, err := ieee754.NewDecimalCodec(params)
			if err != nil {
				panic("formats: " + err.Error())
			}
			codec = c
		})
		return codec
	}
}

var (
	binary16  = memoizedBinary(ieee754.BinaryParams{E: 5, P: 10, I: true})
	binary32  = memoizedBinary(ieee754.BinaryParams{E: 8, P: 23, I: true})
	binary64  = memoizedBinary(ieee754.BinaryParams{E: 11, P: 52, I: true})
	binary80  = memoizedBinary(ieee754.BinaryParams{E: 15, P: 63, I: false})
	binary128 = memoizedBinary(ieee754.BinaryParams{E: 15, P: 112, I: true})
	binary256 = memoizedBinary(ieee754.BinaryParams{E: 19, P: 236, I: true})

	decimal32  = memoizedDecimal(ieee754.DecimalParams{C: 11, T: 20})
	decimal64  = memoizedDecimal(ieee754.DecimalParams{C: 13, T: 50})
	decimal128 = memoizedDecimal(ieee754.DecimalParams{C: 17, T: 110})
)

// Binary16 returns the half-precision binary codec (E=5, P=10, implicit leading bit).
func Binary16() *ieee754.BinaryCodec { return binary16() }

// Binary32 returns the single-precision binary codec (E=8, P=23, implicit leading bit).
func Binary32() *ieee754.BinaryCodec { return binary32() }

// Binary64 returns the double-precision binary codec (E=11, P=52, implicit leading bit).
func Binary64() *ieee754.BinaryCodec { return binary64() }

// Binary80 returns the extended-precision binary codec (E=15, P=63, explicit leading bit).
func Binary80() *ieee754.BinaryCodec { return binary80() }

// Binary128 returns the quadruple-precision binary codec (E=15, P=112, implicit leading bit).
func Binary128() *ieee754.BinaryCodec { return binary128() }

// Binary256 returns the octuple-precision binary codec (E=19, P=236, implicit leading bit).
func Binary256() *ieee754.BinaryCodec { return binary256() }

// Decimal32 returns the decimal32 codec (C=11, T=20).
func Decimal32() *ieee754.DecimalCodec { return decimal32() }

// Decimal64 returns the decimal64 codec (C=13, T=50).
func Decimal64() *ieee754.DecimalCodec { return decimal64() }

// Decimal128 returns the decimal128 codec (C=17, T=110).
func Decimal128() *ieee754.DecimalCodec { return decimal128() }
