// Package fp implements the signed Q16.16 fixed-point scalar that the
// fixgeom types are built on.
//
// All arithmetic is integer-only, so results are bit-identical across
// platforms and compilers. Because Fp is a defined int32 type, addition,
// subtraction, unary negation, comparison, and equality are the native
// operators; only the operations that need rescaling (Mul, Div) or
// approximation (Sqrt, Sin, Cos) are methods.
package fp

import (
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Fp is a Q16.16 fixed-point number: the raw int32 holds the value
// multiplied by 2^16.
type Fp int32

const fracBits = 16

const (
	Zero   Fp = 0
	One    Fp = 1 << fracBits
	NegOne Fp = -One
	Half   Fp = One / 2

	// Round-to-nearest Q16.16 renderings of the circle constants. Sin
	// is exact at angles that reduce modulo Tau to Zero, FracPi2, Pi,
	// or Pi+FracPi2, so rotating by Zero is the exact identity.
	Pi      Fp = 205887
	FracPi2 Fp = 102944
	Tau     Fp = 2 * Pi
)

// FromInt converts an integer to its fixed-point representation.
// Values outside [-32768, 32767] wrap.
func FromInt[T constraints.Integer](v T) Fp {
	return Fp(v) << fracBits
}

// FromFloat converts a float to the nearest representable fixed-point
// value. This is a construction-boundary convenience: no arithmetic
// inside the package touches floating point.
func FromFloat(v float64) Fp {
	return Fp(math.Round(v * (1 << fracBits)))
}

// Float returns the value as a float64. Every Fp is exactly
// representable.
func (x Fp) Float() float64 {
	return float64(x) / (1 << fracBits)
}

// Int returns the value rounded toward negative infinity.
func (x Fp) Int() int {
	return int(x >> fracBits)
}

// IsZero reports whether x is exactly zero.
func (x Fp) IsZero() bool {
	return x == 0
}

// Mul returns x*y. The intermediate product is widened to int64, so it
// cannot overflow before the rescale; the truncated result wraps on
// overflow like any int32 operation.
func (x Fp) Mul(y Fp) Fp {
	return Fp(int64(x) * int64(y) >> fracBits)
}

// Div returns x/y, truncated toward zero. Division by Zero panics with
// the runtime's integer-division panic; callers that need a guard must
// add their own.
func (x Fp) Div(y Fp) Fp {
	return Fp((int64(x) << fracBits) / int64(y))
}

// Abs returns the absolute value of x.
func (x Fp) Abs() Fp {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of a and b.
func Min(a, b Fp) Fp {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b Fp) Fp {
	if a > b {
		return a
	}
	return b
}

// Sqrt returns the square root of x, truncated to the representation.
// It panics if x is negative.
func (x Fp) Sqrt() Fp {
	if x < 0 {
		panic("fp: Sqrt of negative value")
	}
	return Fp(isqrt(uint64(x) << fracBits))
}

// isqrt is the classic bit-by-bit integer square root.
func isqrt(n uint64) uint64 {
	var x uint64
	b := uint64(1) << 62
	for b > n {
		b >>= 2
	}
	for b != 0 {
		if n >= x+b {
			n -= x + b
			x = x>>1 + b
		} else {
			x >>= 1
		}
		b >>= 2
	}
	return x
}

const piSq = int64(Pi) * int64(Pi) >> fracBits

// Sin returns the sine of x radians.
//
// The angle is reduced modulo Tau and evaluated with Bhaskara I's
// rational approximation (error below 0.002). Angles that reduce to
// exactly 0, FracPi2, Pi, or Pi+FracPi2 are special-cased to the
// exact unit values, so Rotate(Zero) is a true identity. Other
// cardinal spellings, such as 4*FracPi2, reduce a raw unit or two off
// those values and go through the approximation.
func (x Fp) Sin() Fp {
	r := x % Tau
	if r < 0 {
		r += Tau
	}
	switch r {
	case 0, Pi:
		return Zero
	case FracPi2:
		return One
	case Pi + FracPi2:
		return NegOne
	}
	if r <= Pi {
		return halfSin(r)
	}
	return -halfSin(r - Pi)
}

// Cos returns the cosine of x radians.
func (x Fp) Cos() Fp {
	return (x + FracPi2).Sin()
}

// halfSin evaluates sin on [0, Pi] as 16t(π-t) / (5π² - 4t(π-t)).
func halfSin(t Fp) Fp {
	a := int64(t) * int64(Pi-t) >> fracBits
	num := a << 4
	den := 5*piSq - 4*a
	return Fp((num << fracBits) / den)
}

// String renders the value as its shortest float32 decimal form.
func (x Fp) String() string {
	return strconv.FormatFloat(x.Float(), 'g', -1, 32)
}
