package geometry

import "math"

// Length returns the euclidean length of the segment centre line.
func (s Segment) Length() float64 {
	return math.Hypot(s.End.X-s.Start.X, s.End.Y-s.Start.Y)
}

// BoundingBox is an axis-aligned rectangle.
type BoundingBox struct {
	Min Point
	Max Point
}

// NewBoundingBox creates an empty bounding box that any Expand call will replace.
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Point{X: math.Inf(1), Y: math.Inf(1)},
		Max: Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// Empty reports whether nothing has been added to the box yet.
func (bb BoundingBox) Empty() bool {
	return bb.Min.X > bb.Max.X || bb.Min.Y > bb.Max.Y
}

func (bb *BoundingBox) Expand(p Point) {
	bb.Min.X = math.Min(bb.Min.X, p.X)
	bb.Min.Y = math.Min(bb.Min.Y, p.Y)
	bb.Max.X = math.Max(bb.Max.X, p.X)
	bb.Max.Y = math.Max(bb.Max.Y, p.Y)
}

func (bb BoundingBox) Width() float64  { return bb.Max.X - bb.Min.X }
func (bb BoundingBox) Height() float64 { return bb.Max.Y - bb.Min.Y }

// Contains checks if a point lies within the box, edges included.
func (bb BoundingBox) Contains(p Point) bool {
	return p.X >= bb.Min.X && p.X <= bb.Max.X &&
		p.Y >= bb.Min.Y && p.Y <= bb.Max.Y
}

// Bounds returns the box spanned by the centre lines of all segments.
// Trace width is not included.
func (r *Result) Bounds() BoundingBox {
	bb := NewBoundingBox()
	for _, s := range r.Segments {
		bb.Expand(s.Start)
		bb.Expand(s.End)
	}
	return bb
}
