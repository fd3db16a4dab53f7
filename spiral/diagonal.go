package spiral

import (
	"math"

	"github.com/Alia5/antennagen/geometry"
)

// Diagonal traces the same bounding box as Rectangular, but steps between
// nesting levels with a 45° connector on the start edge instead of cutting
// the last side short.
//
// Every turn is six segments, selected by seg%6:
//
//	0  left to the left edge
//	1  along the left edge to the far edge
//	2  right to the right edge
//	3  back along the right edge to the start edge
//	4  left again, stopping at this turn's connector
//	5  45° connector one pitch inward, both axes
//
// The pitch is TraceWidth+TraceSpacing. Connectors of consecutive turns are
// parallel and must stay one pitch apart measured perpendicular to them,
// which means √2 pitches apart horizontally. Each connector therefore starts
// (√2-1) pitches right of where the previous one ended. These offsets
// depend only on the pitch, not on the turn count.
//
// The final segment (seg == 6*Turns) runs left onto x = 0.
type Diagonal struct {
	Length       float64
	Width        float64
	Turns        int
	TraceWidth   float64
	TraceSpacing float64
}

func (g Diagonal) Style() Style { return StyleDiagonal }

// Offsets returns the connector geometry shared by every turn: dx1 is the
// per-turn drift of the connector start, dx2 the first connector's distance
// from the centre line and dy the inward step of each connector.
func (g Diagonal) Offsets() (dx1, dx2, dy float64) {
	pitch := g.TraceWidth + g.TraceSpacing
	return pitch * (math.Sqrt2 - 1), pitch * math.Sqrt2, pitch
}

// Trace emits 6*Turns+1 segments.
func (g Diagonal) Trace() Path {
	dx1, dx2, dy := g.Offsets()
	pitch := g.TraceWidth + g.TraceSpacing
	halfW, halfL := g.Width/2, g.Length/2

	start := geometry.Point{X: 0, Y: halfL}
	last := g.Turns * 6

	b := newPathBuilder(start, g.TraceWidth, last+1)
	var d float64
	connector := dx2
	for seg := 0; seg <= last; seg++ {
		switch seg % 6 {
		case 0:
			if seg == last {
				b.lineTo(0, b.pos.Y)
			} else {
				b.lineTo(-halfW+d, b.pos.Y)
			}
		case 1:
			b.lineTo(b.pos.X, -halfL+d)
		case 2:
			b.lineTo(halfW-d, b.pos.Y)
		case 3:
			b.lineTo(b.pos.X, halfL-d)
		case 4:
			b.lineTo(connector, b.pos.Y)
		case 5:
			b.lineTo(b.pos.X-dy, b.pos.Y-dy)
			d += pitch
			connector += dx1
		}
	}

	return Path{
		Segments: b.segments,
		Anchors:  [2]geometry.Point{start, b.pos},
	}
}

// LastConnector returns the x coordinate where the innermost connector starts.
func (g Diagonal) LastConnector() float64 {
	dx1, dx2, _ := g.Offsets()
	return dx2 + float64(g.Turns-1)*dx1
}
