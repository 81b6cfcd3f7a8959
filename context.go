package ieee754

import (
	"sync/atomic"

	"github.com/Synt4xErr0r4/ieee754-go/round"
)

// Encoding selects between the two interchange forms a DecimalCodec can
// produce for the same abstract value: binary integer decimal (BID),
// where the coefficient is a plain base-2 integer, and densely packed
// decimal (DPD), where the coefficient is grouped into base-1000
// declets (see package declet).
type Encoding uint8

const (
	// BID packs the coefficient as a plain binary integer.
	BID Encoding = iota
	// DPD packs the coefficient three decimal digits at a time using
	// the declet package's densely-packed-decimal scheme.
	DPD
)

// String implements fmt.Stringer.
func (e Encoding) String() string {
	switch e {
	case BID:
		return "BID"
	case DPD:
		return "DPD"
	default:
		return "Encoding(unknown)"
	}
}

// Context carries the per-call settings an Encode/Decode invocation
// needs beyond the Value and the codec's own fixed parameters: the
// rounding-direction attribute to apply when a magnitude doesn't fit
// exactly, and (for decimal codecs only) which interchange form to use.
//
// A Context is a plain value, not a pointer: callers build one with
// DefaultContext and override only the fields they care about, then
// thread it explicitly through every Encode/Decode call (spec's
// explicit design choice over a hidden package-global, mirrored by the
// package-wide round.Default()/SetDefault() escape hatch for callers
// who do want a process-wide setting).
type Context struct {
	Rounding        round.Mode
	DecimalEncoding Encoding
}

// DefaultContext returns a Context using the process-wide default
// rounding mode (round.Default()) and the process-wide default decimal
// encoding (DefaultEncoding()).
func DefaultContext() Context {
	return Context{
		Rounding:        round.Default(),
		DecimalEncoding: DefaultEncoding(),
	}
}

// defaultEncoding is the process-wide default decimal interchange form,
// stored the same way round.defaultMode is: an atomic int32 so reads
// and writes need no mutex.
var defaultEncoding atomic.Int32

// DefaultEncoding returns the current process-wide default decimal
// interchange form. The zero value is BID.
func DefaultEncoding() Encoding {
	return Encoding(defaultEncoding.Load())
}

// SetDefaultEncoding installs enc as the process-wide default decimal
// interchange form.
func SetDefaultEncoding(enc Encoding) {
	defaultEncoding.Store(int32(enc))
}
