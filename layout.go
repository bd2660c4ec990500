package fixgeom

import (
	"iter"

	"deedles.dev/xiter"
	"lockstep.dev/fixgeom/fp"
)

// Splitting and tiling below divide sizes by plain integers. Dividing
// the raw Q16.16 value by an integer divides the represented value, so
// native / is exact here.

// hsplit splits a rectangle into two rectangles arranged
// horizontally.
func hsplit(r Rect, w fp.Fp) (left, right Rect) {
	left = Rct(r.Pos, Vec(w, r.Size.Y))
	right = Rct(r.Pos.Add(Vec(w, fp.Zero)), Vec(r.Size.X-w, r.Size.Y))
	return left, right
}

func hsplitHalf(r Rect) (left, right Rect) {
	return hsplit(r, r.Size.X/2)
}

// vsplit splits a rectangle into two rectangles stacked vertically,
// the first on top.
func vsplit(r Rect, h fp.Fp) (top, bottom Rect) {
	top = Rct(r.Pos.Add(Vec(fp.Zero, r.Size.Y-h)), Vec(r.Size.X, h))
	bottom = Rct(r.Pos, Vec(r.Size.X, r.Size.Y-h))
	return top, bottom
}

func vsplitHalf(r Rect) (top, bottom Rect) {
	return vsplit(r, r.Size.Y/2)
}

// TileRightThenDown arranges and resizes the elements of tiles in
// order to split r into a series of rectangles that recursively split
// each section halfway to the right and then downwards. In other
// words,
//
//	tiles := make([]fixgeom.Rect, 4)
//	fixgeom.TileRightThenDown(tiles, r)
//
// will produce
//
//	------------
//	|    |     |
//	|    -------
//	|    |  |  |
//	------------
func TileRightThenDown(tiles []Rect, r Rect) {
	insertTilesFromSeq(tiles, TiledRightThenDown(len(tiles), r))
}

// TiledRightThenDown is the same as [TileRightThenDown] but yields the
// successive tiles from an iterator instead of inserting them into a
// slice.
func TiledRightThenDown(numtiles int, r Rect) iter.Seq[Rect] {
	return func(yield func(Rect) bool) {
		split, next := hsplitHalf, vsplitHalf

		// Split only between yields: the final yield must emit the
		// untouched complement of the last yielded tile.
		c, n := split(r)
		for i := range numtiles - 1 {
			if i > 0 {
				split, next = next, split
				c, n = split(n)
			}
			if !yield(c) {
				return
			}
		}

		yield(n)
	}
}

// TileEvenVertically arranges and resizes the elements of tiles so
// that the result is an even, vertical splitting of r from top to
// bottom.
func TileEvenVertically(tiles []Rect, r Rect) {
	insertTilesFromSeq(tiles, TiledEvenVertically(len(tiles), r))
}

// TiledEvenVertically is the same as [TileEvenVertically] except that
// it yields the tiles from an iterator.
func TiledEvenVertically(numtiles int, r Rect) iter.Seq[Rect] {
	return func(yield func(Rect) bool) {
		shift := Vec(fp.Zero, -r.Size.Y/fp.Fp(numtiles))
		c, _ := vsplit(r, -shift.Y)
		for range numtiles {
			if !yield(c) {
				return
			}
			c = c.MoveBy(shift)
		}
	}
}

// TileEvenHorizontally arranges and resizes the elements of tiles so
// that the result is an even, horizontal splitting of r from left to
// right.
func TileEvenHorizontally(tiles []Rect, r Rect) {
	insertTilesFromSeq(tiles, TiledEvenHorizontally(len(tiles), r))
}

// TiledEvenHorizontally is the same as [TileEvenHorizontally] except
// that it yields the tiles from an iterator.
func TiledEvenHorizontally(numtiles int, r Rect) iter.Seq[Rect] {
	return func(yield func(Rect) bool) {
		shift := Vec(r.Size.X/fp.Fp(numtiles), fp.Zero)
		c, _ := hsplit(r, shift.X)
		for range numtiles {
			if !yield(c) {
				return
			}
			c = c.MoveBy(shift)
		}
	}
}

func insertTilesFromSeq(tiles []Rect, s iter.Seq[Rect]) {
	for i, t := range xiter.Enumerate(s) {
		tiles[i] = t
	}
}
