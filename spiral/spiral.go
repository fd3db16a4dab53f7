// Package spiral turns antenna dimensions into an ordered trace path.
//
// Each style is its own Generator implementation; the style is picked once
// when the generator is constructed and never re-examined while tracing.
// Generators are plain values: Trace allocates everything it returns and
// keeps no state between calls, so one value may be traced from many
// goroutines at once.
package spiral

import (
	"fmt"

	"github.com/Alia5/antennagen/geometry"
)

// Style identifies a path recurrence.
type Style int

const (
	StyleRectangular Style = iota
	StyleDiagonal
	StyleCircular
)

func (s Style) String() string {
	switch s {
	case StyleRectangular:
		return "rectangular"
	case StyleDiagonal:
		return "diagonal"
	case StyleCircular:
		return "circular"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// Path is the output of a Generator.
//
// Anchors are where the terminal pads go. For the rectangular and diagonal
// styles they coincide with the first and last path points. The circular
// style reports its nominal design radii instead, see Circular.
type Path struct {
	Segments []geometry.Segment
	Anchors  [2]geometry.Point
}

// Generator produces a trace path from already validated dimensions.
type Generator interface {
	Style() Style
	Trace() Path
}

// pathBuilder appends connected copper segments, each starting where the
// previous one ended.
type pathBuilder struct {
	pos      geometry.Point
	width    float64
	segments []geometry.Segment
}

func newPathBuilder(start geometry.Point, width float64, capacity int) *pathBuilder {
	return &pathBuilder{
		pos:      start,
		width:    width,
		segments: make([]geometry.Segment, 0, capacity),
	}
}

func (b *pathBuilder) lineTo(x, y float64) {
	end := geometry.Point{X: x, Y: y}
	b.segment(b.pos, end)
	b.pos = end
}

func (b *pathBuilder) segment(start, end geometry.Point) {
	b.segments = append(b.segments, geometry.Segment{
		Start: start,
		End:   end,
		Width: b.width,
		Layer: geometry.LayerCopper,
	})
}
