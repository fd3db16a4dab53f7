package footprint

import (
	"errors"
	"math"

	"github.com/Alia5/antennagen/geometry"
	"github.com/Alia5/antennagen/params"
	"github.com/Alia5/antennagen/spiral"
)

const (
	KeyLength       = "antenna.length"
	KeyWidth        = "antenna.width"
	KeyTraceSpacing = "antenna.trace_spacing"
	KeyStyle        = "antenna.style"
)

// Style selector values of the rectangular wizard.
const (
	StyleSelectRectangular = 0
	StyleSelectDiagonal    = 1
)

func init() {
	RegisterWizard(Rectangular)
}

// Rectangular generates nested rectangle antennas, either with square
// corners or with 45° connectors between turns (antenna.style = 1).
var Rectangular = &Wizard{
	Name:        "rectangular",
	Description: "Rectangular spiral antenna",
	Params: append(params.Defs{
		{Page: "Antenna", Name: "length", Unit: params.UnitMM, Default: 50.0, Min: 1, Max: 500, Help: "Outer extent along Y"},
		{Page: "Antenna", Name: "width", Unit: params.UnitMM, Default: 30.0, Min: 1, Max: 500, Help: "Outer extent along X"},
		{Page: "Antenna", Name: "turns", Unit: params.UnitInteger, Default: 5, Min: 1, Max: 100, Help: "Number of turns"},
		{Page: "Antenna", Name: "trace_width", Unit: params.UnitMM, Default: 0.6, Min: 0.000001, Max: 1, Help: "Copper trace width"},
		{Page: "Antenna", Name: "trace_spacing", Unit: params.UnitMM, Default: 1.0, Min: 0.1, Max: 50, Help: "Distance between turns"},
		{Page: "Antenna", Name: "silk_margin", Unit: params.UnitMM, Default: 1.0, Min: -1, Max: 10, Help: "Outline margin, negative disables the outline"},
		{Page: "Antenna", Name: "style", Unit: params.UnitInteger, Default: StyleSelectRectangular, Choices: []int{StyleSelectRectangular, StyleSelectDiagonal}, Help: "0 square corners, 1 diagonal connectors"},
		{Page: "Antenna", Name: "name", Unit: params.UnitString, Default: "rectangle", Help: "Footprint value"},
	}, padParams()...),
	Check:     checkRectangular,
	Generator: rectangularGenerator,
	Outline: func(s params.Set) *geometry.Outline {
		return RectOutline(s.Float(KeyWidth), s.Float(KeyLength), s.Float(KeySilkMargin))
	},
	Label: func(s params.Set) string {
		return Label(s.Float(KeyLength), s.Float(KeyWidth))
	},
}

func rectangularGenerator(s params.Set) spiral.Generator {
	length, width := s.Float(KeyLength), s.Float(KeyWidth)
	turns := s.Int(KeyTurns)
	traceWidth, spacing := s.Float(KeyTraceWidth), s.Float(KeyTraceSpacing)

	if s.Int(KeyStyle) == StyleSelectDiagonal {
		return spiral.Diagonal{Length: length, Width: width, Turns: turns, TraceWidth: traceWidth, TraceSpacing: spacing}
	}
	return spiral.Rectangular{Length: length, Width: width, Turns: turns, TraceWidth: traceWidth, TraceSpacing: spacing}
}

// checkRectangular rejects spirals whose innermost turn would collapse or
// cross itself.
func checkRectangular(s params.Set) error {
	var errs []error
	if err := checkPads(s); err != nil {
		errs = append(errs, err)
	}

	half := math.Min(s.Float(KeyWidth), s.Float(KeyLength)) / 2
	turns := s.Int(KeyTurns)

	switch g := rectangularGenerator(s).(type) {
	case spiral.Rectangular:
		// the innermost turn runs at (turns-1) spacings from the outer edge
		if inset := float64(turns-1) * g.TraceSpacing; inset >= half {
			errs = append(errs, params.Errorf(KeyTurns, "%d turns at %g mm spacing collapse %g mm from the edge", turns, g.TraceSpacing, inset))
		}
	case spiral.Diagonal:
		pitch := g.TraceWidth + g.TraceSpacing
		// the last connector lands one pitch inside the innermost turn
		if inset := float64(turns) * pitch; inset >= half {
			errs = append(errs, params.Errorf(KeyTurns, "%d turns at %g mm pitch need more than %g mm from the centre", turns, pitch, half))
		} else if edge := g.Width/2 - float64(turns-1)*pitch; g.LastConnector() >= edge {
			errs = append(errs, params.Errorf(KeyWidth, "innermost connector at x=%g does not fit inside x=%g", g.LastConnector(), edge))
		}
	}
	return errors.Join(errs...)
}
