package fixgeom

import (
	"fmt"

	"lockstep.dev/fixgeom/fp"
)

// Rect is an axis-aligned rectangle described by Pos, its
// minimum-coordinate corner, and Size, its width and height.
//
// The type itself does not enforce non-negative sizes, but Right, Top,
// containment, and overlap are only meaningful when Size.X >= 0 and
// Size.Y >= 0. Operations that can produce a negative size, such as
// Contracted with a large offset, say so.
type Rect struct {
	Pos, Size Vector
}

// Rct returns the rectangle with the given corner and size.
func Rct(pos, size Vector) Rect {
	return Rect{Pos: pos, Size: size}
}

// RctInt returns the rectangle at integer corner (x, y) with integer
// size (w, h).
func RctInt(x, y, w, h int) Rect {
	return Rct(VecInt(x, y), VecInt(w, h))
}

// RctFloat returns the rectangle at corner (x, y) with size (w, h),
// converted from floats.
func RctFloat(x, y, w, h float64) Rect {
	return Rct(VecFloat(x, y), VecFloat(w, h))
}

// Left returns the x coordinate of the stored corner.
func (r Rect) Left() fp.Fp { return r.Pos.X }

// Bottom returns the y coordinate of the stored corner.
func (r Rect) Bottom() fp.Fp { return r.Pos.Y }

// Right returns Pos.X + Size.X.
func (r Rect) Right() fp.Fp { return r.Pos.X + r.Size.X }

// Top returns Pos.Y + Size.Y.
func (r Rect) Top() fp.Fp { return r.Pos.Y + r.Size.Y }

// MoveBy returns the rectangle translated by offset. The size is
// unchanged.
func (r Rect) MoveBy(offset Vector) Rect {
	return Rct(r.Pos.Add(offset), r.Size)
}

// Area returns Size.X * Size.Y.
func (r Rect) Area() fp.Fp {
	return r.Size.X.Mul(r.Size.Y)
}

// Perimeter returns 2 * (Size.X + Size.Y).
func (r Rect) Perimeter() fp.Fp {
	return 2 * (r.Size.X + r.Size.Y)
}

// AspectRatio returns Size.X / Size.Y. A zero height panics per
// fp.Div.
func (r Rect) AspectRatio() fp.Fp {
	return r.Size.X.Div(r.Size.Y)
}

// ContainsPoint reports whether pt lies inside the rectangle. The
// lower bounds are inclusive and the upper bounds are exclusive, the
// usual half-open convention for pixel and tile containment.
func (r Rect) ContainsPoint(pt Vector) bool {
	return pt.X >= r.Pos.X && pt.X < r.Pos.X+r.Size.X &&
		pt.Y >= r.Pos.Y && pt.Y < r.Pos.Y+r.Size.Y
}

// ContainsRect reports whether other lies completely inside r. Both
// other's corner and its far corner must pass the half-open
// ContainsPoint test, so a far corner landing exactly on r's right or
// top edge does not count as contained.
func (r Rect) ContainsRect(other Rect) bool {
	return r.ContainsPoint(other.Pos) && r.ContainsPoint(other.Pos.Add(other.Size))
}

// Overlaps reports whether the rectangles overlap. Rectangles that
// merely touch along an edge count as overlapping; contrast with
// Intersection, which requires a non-degenerate shared region.
func (r Rect) Overlaps(other Rect) bool {
	return !(r.Right() < other.Left() ||
		r.Left() > other.Right() ||
		r.Bottom() > other.Top() ||
		r.Top() < other.Bottom())
}

// Intersection returns the overlap of the two rectangles. The second
// return value is false when the overlap is empty on either axis;
// rectangles that only touch along an edge have a zero-width overlap
// and therefore no intersection, even though Overlaps reports true for
// them.
func (r Rect) Intersection(other Rect) (Rect, bool) {
	x0 := fp.Max(r.Left(), other.Left())
	x1 := fp.Min(r.Right(), other.Right())
	y0 := fp.Max(r.Bottom(), other.Bottom())
	y1 := fp.Min(r.Top(), other.Top())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}, false
	}
	return Rct(Vec(x0, y0), Vec(x1-x0, y1-y0)), true
}

// Union returns the smallest rectangle containing both r and other. It
// is defined for any pair, overlapping or not.
func (r Rect) Union(other Rect) Rect {
	x0 := fp.Min(r.Left(), other.Left())
	y0 := fp.Min(r.Bottom(), other.Bottom())
	x1 := fp.Max(r.Right(), other.Right())
	y1 := fp.Max(r.Top(), other.Top())
	return Rct(Vec(x0, y0), Vec(x1-x0, y1-y0))
}

// Expanded grows the rectangle symmetrically: the corner moves by
// -offset and the size grows by 2*offset. A negative offset shrinks
// it.
func (r Rect) Expanded(offset Vector) Rect {
	return Rct(r.Pos.Sub(offset), r.Size.Add(offset.MulInt(2)))
}

// Contracted shrinks the rectangle symmetrically, the inverse of
// Expanded. An offset larger than half the size produces a
// negative-size rectangle; no clamping is applied.
func (r Rect) Contracted(offset Vector) Rect {
	return Rct(r.Pos.Add(offset), r.Size.Sub(offset.MulInt(2)))
}

// String renders the rectangle as "(<pos.x>, <pos.y>, <size.x>, <size.y>)".
func (r Rect) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", r.Pos.X, r.Pos.Y, r.Size.X, r.Size.Y)
}
