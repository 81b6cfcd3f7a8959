package ieee754

import (
	"github.com/ericlagergren/decimal"
	"github.com/pkg/errors"
)

// Category is the tag of a Value's tagged-sum representation.
type Category uint8

const (
	// Finite values carry a magnitude.
	Finite Category = iota
	// Infinity values carry no magnitude; Sign distinguishes +∞/-∞.
	Infinity
	// QuietNaN carries no magnitude; encodes with the trailing
	// significand's MSB set.
	QuietNaN
	// SignalingNaN carries no magnitude; encodes with the trailing
	// significand's MSB clear and a nonzero payload elsewhere.
	SignalingNaN
)

// String implements fmt.Stringer.
func (c Category) String() string {
	switch c {
	case Finite:
		return "Finite"
	case Infinity:
		return "Infinity"
	case QuietNaN:
		return "QuietNaN"
	case SignalingNaN:
		return "SignalingNaN"
	default:
		return "Category(?)"
	}
}

// Value is the abstract IEEE 754-2008 floating-point value: a tagged sum
// of finite(sign, magnitude), signed infinity, quiet NaN, and signaling
// NaN. Values are immutable after construction — every mutating-looking
// operation here returns a new Value.
type Value struct {
	sign     int8
	category Category
	// magnitude holds a decimal payload to ride with a NaN: for a
	// finite value this is the value's magnitude; for QuietNaN/
	// SignalingNaN this is an optional diagnostic payload (spec.md's
	// NaN carries none; the payload is a supplemental feature — see
	// NaNPayload in nanpayload.go) and is nil for Infinity.
	magnitude *decimal.Big
}

func validateSign(sign int8) error {
	if sign != 1 && sign != -1 {
		return errors.Wrapf(ErrInvalidSign, "sign=%d, want +1 or -1", sign)
	}
	return nil
}

// NewFinite constructs a finite Value with the given sign and magnitude.
// If magnitude is nonzero its sign must agree with sign.
func NewFinite(sign int8, magnitude *decimal.Big) (*Value, error) {
	if err := validateSign(sign); err != nil {
		return nil, err
	}
	if magnitude == nil {
		return nil, errors.Wrap(ErrCategoryMismatch, "finite value requires a magnitude")
	}
	if magnitude.Sign() != 0 {
		magSign := int8(1)
		if magnitude.Signbit() {
			magSign = -1
		}
		if magSign != sign {
			return nil, errors.Wrapf(ErrInvalidSign, "sign=%d disagrees with nonzero magnitude sign %d", sign, magSign)
		}
	}
	return &Value{sign: sign, category: Finite, magnitude: new(decimal.Big).Copy(magnitude)}, nil
}

// NewInfinity constructs a signed infinity.
func NewInfinity(sign int8) (*Value, error) {
	if err := validateSign(sign); err != nil {
		return nil, err
	}
	return &Value{sign: sign, category: Infinity}, nil
}

// NewQuietNaN constructs a quiet NaN with the given sign bit.
func NewQuietNaN(sign int8) (*Value, error) {
	if err := validateSign(sign); err != nil {
		return nil, err
	}
	return &Value{sign: sign, category: QuietNaN}, nil
}

// NewSignalingNaN constructs a signaling NaN with the given sign bit.
func NewSignalingNaN(sign int8) (*Value, error) {
	if err := validateSign(sign); err != nil {
		return nil, err
	}
	return &Value{sign: sign, category: SignalingNaN}, nil
}

// Sign returns the value's sign bit as +1 or -1, regardless of category.
func (v *Value) Sign() int8 { return v.sign }

// Category returns the value's tag.
func (v *Value) Category() Category { return v.category }

// IsFinite reports whether v is a finite value (including signed zero).
func (v *Value) IsFinite() bool { return v.category == Finite }

// IsZero reports whether v is finite with a zero magnitude.
func (v *Value) IsZero() bool {
	return v.category == Finite && v.magnitude.Sign() == 0
}

// IsInfinite reports whether v is +∞ or -∞.
func (v *Value) IsInfinite() bool { return v.category == Infinity }

// IsPositiveInfinity reports whether v is +∞.
func (v *Value) IsPositiveInfinity() bool { return v.category == Infinity && v.sign == 1 }

// IsNegativeInfinity reports whether v is -∞.
func (v *Value) IsNegativeInfinity() bool { return v.category == Infinity && v.sign == -1 }

// IsNaN reports whether v is a quiet or signaling NaN.
func (v *Value) IsNaN() bool { return v.category == QuietNaN || v.category == SignalingNaN }

// IsQuietNaN reports whether v is a quiet NaN.
func (v *Value) IsQuietNaN() bool { return v.category == QuietNaN }

// IsSignalingNaN reports whether v is a signaling NaN.
func (v *Value) IsSignalingNaN() bool { return v.category == SignalingNaN }

// Magnitude returns the value's decimal magnitude. It returns
// ErrNotFinite if v is not finite.
func (v *Value) Magnitude() (*decimal.Big, error) {
	if v.category != Finite {
		return nil, errors.Wrapf(ErrNotFinite, "category=%s", v.category)
	}
	return new(decimal.Big).Copy(v.magnitude), nil
}

// Negate returns a Value with the opposite sign and the same category
// and magnitude. It does not mutate v.
func (v *Value) Negate() *Value {
	out := &Value{sign: -v.sign, category: v.category}
	if v.magnitude != nil {
		out.magnitude = new(decimal.Big).Neg(v.magnitude)
	}
	return out
}

// Equals reports whether v and other represent the same Value,
// including signed-zero and NaN-kind discrimination.
func (v *Value) Equals(other *Value) bool {
	if other == nil {
		return false
	}
	if v.category != other.category || v.sign != other.sign {
		return false
	}
	if v.category != Finite {
		return true
	}
	return v.magnitude.Cmp(other.magnitude) == 0
}
