package footprint

import (
	"errors"

	"github.com/Alia5/antennagen/geometry"
	"github.com/Alia5/antennagen/params"
	"github.com/Alia5/antennagen/spiral"
)

const (
	KeyRadiusOuter     = "antenna.radius_outer"
	KeyRadiusInner     = "antenna.radius_inner"
	KeySegmentsPerTurn = "antenna.segments_per_turn"
)

func init() {
	RegisterWizard(Spiral)
}

// Spiral generates circular spiral antennas.
var Spiral = &Wizard{
	Name:        "spiral",
	Description: "Circular spiral antenna",
	Params: append(params.Defs{
		{Page: "Antenna", Name: "radius_outer", Unit: params.UnitMM, Default: 50.0, Min: 1, Max: 500, Help: "Radius where the spiral starts"},
		{Page: "Antenna", Name: "radius_inner", Unit: params.UnitMM, Default: 35.0, Min: 1, Max: 500, Help: "Radius where the spiral ends"},
		{Page: "Antenna", Name: "turns", Unit: params.UnitInteger, Default: 5, Min: 1, Max: 500, Help: "Number of turns"},
		{Page: "Antenna", Name: "segments_per_turn", Unit: params.UnitInteger, Default: 36, Min: 3, Max: 10000, Help: "Straight segments per turn"},
		{Page: "Antenna", Name: "trace_width", Unit: params.UnitMM, Default: 0.6, Min: 0.000001, Max: 1, Help: "Copper trace width"},
		{Page: "Antenna", Name: "silk_margin", Unit: params.UnitMM, Default: 1.0, Min: -1, Max: 10, Help: "Outline margin, negative disables the outline"},
		{Page: "Antenna", Name: "name", Unit: params.UnitString, Default: "spiral", Help: "Footprint value"},
	}, padParams()...),
	Check: func(s params.Set) error {
		var errs []error
		if err := checkPads(s); err != nil {
			errs = append(errs, err)
		}
		if outer, inner := s.Float(KeyRadiusOuter), s.Float(KeyRadiusInner); outer < inner {
			errs = append(errs, params.Errorf(KeyRadiusOuter, "%g must not be smaller than inner radius %g", outer, inner))
		}
		return errors.Join(errs...)
	},
	Generator: func(s params.Set) spiral.Generator {
		return spiral.Circular{
			RadiusOuter:     s.Float(KeyRadiusOuter),
			RadiusInner:     s.Float(KeyRadiusInner),
			Turns:           s.Int(KeyTurns),
			SegmentsPerTurn: s.Int(KeySegmentsPerTurn),
			TraceWidth:      s.Float(KeyTraceWidth),
		}
	},
	Outline: func(s params.Set) *geometry.Outline {
		return CircleOutline(s.Float(KeyRadiusOuter), s.Float(KeySilkMargin))
	},
	Label: func(s params.Set) string {
		return Label(s.Float(KeyRadiusOuter), s.Float(KeyRadiusInner))
	},
}
