package spiral

import (
	"math"

	"github.com/Alia5/antennagen/geometry"
)

// Circular approximates an Archimedean spiral with straight segments,
// winding counter-clockwise from RadiusOuter at angle 0 down to RadiusInner.
//
// RadiusOuter >= RadiusInner is a precondition and is not checked here.
//
// The anchors are the nominal radii (RadiusInner, 0) and (RadiusOuter, 0),
// not the traced end points. After Turns full turns the trace does return to
// angle 0 at RadiusInner, but accumulated rounding can leave the last point a
// hair away from the anchor. Consumers rely on the nominal values, so they
// are kept as is.
type Circular struct {
	RadiusOuter     float64
	RadiusInner     float64
	Turns           int
	SegmentsPerTurn int
	TraceWidth      float64
}

func (c Circular) Style() Style { return StyleCircular }

// Steps returns the radius decrement and angle increment of one segment.
func (c Circular) Steps() (dr, dtheta float64) {
	total := c.Turns * c.SegmentsPerTurn
	return (c.RadiusOuter - c.RadiusInner) / float64(total), 2 * math.Pi / float64(c.SegmentsPerTurn)
}

// Trace emits Turns*SegmentsPerTurn segments.
func (c Circular) Trace() Path {
	total := c.Turns * c.SegmentsPerTurn
	dr, dtheta := c.Steps()

	radius := c.RadiusOuter
	angle := 0.0

	b := newPathBuilder(geometry.Point{X: radius, Y: 0}, c.TraceWidth, total)
	for range total {
		start := polar(radius, angle)
		radius -= dr
		angle += dtheta
		b.segment(start, polar(radius, angle))
	}

	return Path{
		Segments: b.segments,
		Anchors: [2]geometry.Point{
			{X: c.RadiusInner, Y: 0},
			{X: c.RadiusOuter, Y: 0},
		},
	}
}

func polar(r, theta float64) geometry.Point {
	return geometry.Point{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
}
