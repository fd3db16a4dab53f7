// Package geometry holds the primitives an antenna footprint is built from.
//
// All coordinates are millimetres in a single planar frame with the origin at
// the antenna centre. Nothing in this package converts units.
package geometry

import "fmt"

// Layer tags a primitive with the board layer it belongs to.
type Layer string

const (
	LayerCopper     Layer = "F.Cu"
	LayerSilkscreen Layer = "F.SilkS"
)

// OutlineStroke is the silkscreen stroke width of every outline.
const OutlineStroke = 0.15

// ReferenceDesignator is the placeholder reference set on every generated footprint.
const ReferenceDesignator = "REF**"

type Point struct {
	X float64
	Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Segment is a straight copper trace.
type Segment struct {
	Start Point
	End   Point
	Width float64
	Layer Layer
}

// PadShape is the copper shape of a pad.
type PadShape string

const PadShapeCircle PadShape = "circle"

// Pad is a through-hole terminal.
type Pad struct {
	Name     string // "1" or "2"
	Position Point
	Diameter float64
	Drill    float64
	Shape    PadShape
}

// OutlineKind selects which fields of an Outline are meaningful.
type OutlineKind string

const (
	OutlineRect   OutlineKind = "rect"
	OutlineCircle OutlineKind = "circle"
)

// Outline is the silkscreen shape drawn around the antenna.
// Rectangles use Min/Max, circles use Center/Radius.
type Outline struct {
	Kind   OutlineKind
	Min    Point
	Max    Point
	Center Point
	Radius float64
	Layer  Layer
	Stroke float64
}

// Result is everything one generation run produces.
type Result struct {
	Reference string
	Value     string
	Label     string
	Segments  []Segment
	Pads      [2]Pad
	Outline   *Outline
}

// Start returns the first point of the trace path.
func (r *Result) Start() Point {
	if len(r.Segments) == 0 {
		return r.Pads[0].Position
	}
	return r.Segments[0].Start
}

// End returns the last point of the trace path.
func (r *Result) End() Point {
	if len(r.Segments) == 0 {
		return r.Pads[1].Position
	}
	return r.Segments[len(r.Segments)-1].End
}

// TraceLength sums the lengths of all segments.
func (r *Result) TraceLength() float64 {
	var total float64
	for _, s := range r.Segments {
		total += s.Length()
	}
	return total
}
