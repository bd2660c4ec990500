// Package fixgeom provides deterministic 2D vector and axis-aligned
// rectangle math over Q16.16 fixed-point scalars.
//
// Every operation is a pure function of integer arithmetic, so results
// are bit-identical across platforms. That makes the package suitable
// for lockstep simulations, replays, and anything else where two peers
// must compute exactly the same geometry.
package fixgeom

import (
	"fmt"

	"lockstep.dev/fixgeom/fp"
)

// Vector is a 2D fixed-point coordinate or direction. It is a value
// type: methods never mutate the receiver, they return new vectors.
// Equality is exact component-wise comparison with ==.
type Vector struct {
	X, Y fp.Fp
}

// Vec returns the vector (x, y).
func Vec(x, y fp.Fp) Vector {
	return Vector{X: x, Y: y}
}

// VecInt returns the vector (x, y) converted from integers.
func VecInt(x, y int) Vector {
	return Vec(fp.FromInt(x), fp.FromInt(y))
}

// VecFloat returns the vector (x, y) converted from floats.
func VecFloat(x, y float64) Vector {
	return Vec(fp.FromFloat(x), fp.FromFloat(y))
}

// Left returns the unit vector pointing along the negative x-axis.
func Left() Vector { return Vec(fp.NegOne, fp.Zero) }

// Right returns the unit vector pointing along the positive x-axis.
func Right() Vector { return Vec(fp.One, fp.Zero) }

// Up returns the unit vector pointing along the positive y-axis.
func Up() Vector { return Vec(fp.Zero, fp.One) }

// Down returns the unit vector pointing along the negative y-axis.
func Down() Vector { return Vec(fp.Zero, fp.NegOne) }

// SqrLen returns the squared length x*x + y*y. It is cheaper than Len
// and sufficient for comparing magnitudes.
func (v Vector) SqrLen() fp.Fp {
	return v.X.Mul(v.X) + v.Y.Mul(v.Y)
}

// Len returns the length of the vector. Rounding follows fp.Sqrt.
func (v Vector) Len() fp.Fp {
	return v.SqrLen().Sqrt()
}

// Normalize returns the vector scaled to length one. The second return
// value is false if the vector has zero length, in which case there is
// no direction to preserve and the zero Vector is returned.
func (v Vector) Normalize() (Vector, bool) {
	l := v.Len()
	if l.IsZero() {
		return Vector{}, false
	}
	return Vec(v.X.Div(l), v.Y.Div(l)), true
}

// Dot returns the dot product of v and w.
func (v Vector) Dot(w Vector) fp.Fp {
	return v.X.Mul(w.X) + v.Y.Mul(w.Y)
}

// Cross returns the scalar 2D cross product x*w.y - y*w.x. The sign is
// positive when w is counter-clockwise from v.
func (v Vector) Cross(w Vector) fp.Fp {
	return v.X.Mul(w.Y) - v.Y.Mul(w.X)
}

// Scale multiplies the vectors component-wise.
func (v Vector) Scale(factor Vector) Vector {
	return Vec(v.X.Mul(factor.X), v.Y.Mul(factor.Y))
}

// Rotate returns v rotated counter-clockwise by angle radians.
// Precision is bounded by the fixed-point trig approximation; avoid
// long chains of small rotations.
func (v Vector) Rotate(angle fp.Fp) Vector {
	cos := angle.Cos()
	sin := angle.Sin()
	return Vec(
		v.X.Mul(cos)-v.Y.Mul(sin),
		v.X.Mul(sin)+v.Y.Mul(cos),
	)
}

// Abs returns the component-wise absolute value.
func (v Vector) Abs() Vector {
	return Vec(v.X.Abs(), v.Y.Abs())
}

// Add returns v + w.
func (v Vector) Add(w Vector) Vector {
	return Vec(v.X+w.X, v.Y+w.Y)
}

// Sub returns v - w.
func (v Vector) Sub(w Vector) Vector {
	return Vec(v.X-w.X, v.Y-w.Y)
}

// Neg returns the vector with both components negated.
func (v Vector) Neg() Vector {
	return Vec(-v.X, -v.Y)
}

// Mul multiplies the vectors component-wise.
func (v Vector) Mul(w Vector) Vector {
	return Vec(v.X.Mul(w.X), v.Y.Mul(w.Y))
}

// Div divides the vectors component-wise. A zero component in w panics
// per fp.Div.
func (v Vector) Div(w Vector) Vector {
	return Vec(v.X.Div(w.X), v.Y.Div(w.Y))
}

// MulScalar returns v with both components multiplied by k.
func (v Vector) MulScalar(k fp.Fp) Vector {
	return Vec(v.X.Mul(k), v.Y.Mul(k))
}

// DivScalar returns v with both components divided by k.
func (v Vector) DivScalar(k fp.Fp) Vector {
	return Vec(v.X.Div(k), v.Y.Div(k))
}

// MulInt returns v with both components multiplied by n.
func (v Vector) MulInt(n int) Vector {
	return v.MulScalar(fp.FromInt(n))
}

// DivInt returns v with both components divided by n.
func (v Vector) DivInt(n int) Vector {
	return v.DivScalar(fp.FromInt(n))
}

// ScalarMul returns k*v. It is the commuted form of
// [Vector.MulScalar]; both spellings compute the same value.
func ScalarMul(k fp.Fp, v Vector) Vector {
	return v.MulScalar(k)
}

// IntMul returns n*v, the commuted form of [Vector.MulInt].
func IntMul(n int, v Vector) Vector {
	return v.MulInt(n)
}

// IntDiv divides n by each component of v, returning (n/v.x, n/v.y).
// Note the asymmetry with [Vector.DivInt]: here the integer is the
// dividend.
func IntDiv(n int, v Vector) Vector {
	k := fp.FromInt(n)
	return Vec(k.Div(v.X), k.Div(v.Y))
}

// String renders the vector as "vec:<x>,<y>".
func (v Vector) String() string {
	return fmt.Sprintf("vec:%v,%v", v.X, v.Y)
}
