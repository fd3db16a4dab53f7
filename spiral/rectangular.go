package spiral

import "github.com/Alia5/antennagen/geometry"

// Rectangular traces nested rectangles, walking inward by TraceSpacing after
// every side. The path starts at the top centre (0, Length/2) and ends on the
// vertical centre line inside the innermost turn.
type Rectangular struct {
	Length       float64
	Width        float64
	Turns        int
	TraceWidth   float64
	TraceSpacing float64
}

func (r Rectangular) Style() Style { return StyleRectangular }

// Trace emits 4*Turns+1 segments.
func (r Rectangular) Trace() Path {
	start := geometry.Point{X: 0, Y: r.Length / 2}

	posX, negX := r.Width/2, -r.Width/2
	posY, negY := r.Length/2, -r.Length/2

	b := newPathBuilder(start, r.TraceWidth, 4*r.Turns+1)
	for range r.Turns {
		b.lineTo(negX, b.pos.Y)
		negX += r.TraceSpacing

		b.lineTo(b.pos.X, negY)
		negY += r.TraceSpacing

		b.lineTo(posX, b.pos.Y)
		posX -= r.TraceSpacing

		// stop one pitch short so the next turn starts inside this one
		b.lineTo(b.pos.X, posY-r.TraceSpacing)
		posY -= r.TraceSpacing
	}
	b.lineTo(0, b.pos.Y)

	return Path{
		Segments: b.segments,
		Anchors:  [2]geometry.Point{start, b.pos},
	}
}
