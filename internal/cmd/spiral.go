package cmd

import (
	"log/slog"
	"os"

	"github.com/Alia5/antennagen/footprint"
	"github.com/Alia5/antennagen/internal/log"
)

type Spiral struct {
	Antenna SpiralAntenna `embed:"" prefix:"antenna."`
	Pads    Pads          `embed:"" prefix:"pads."`
	Output  Output        `embed:"" prefix:"output."`
}

// SpiralAntenna is the antenna parameter page of the circular wizard.
type SpiralAntenna struct {
	RadiusOuter     float64 `help:"Radius where the spiral starts, in mm" default:"50" env:"ANTENNAGEN_RADIUS_OUTER"`
	RadiusInner     float64 `help:"Radius where the spiral ends, in mm" default:"35" env:"ANTENNAGEN_RADIUS_INNER"`
	Turns           int     `help:"Number of turns" default:"5" env:"ANTENNAGEN_TURNS"`
	SegmentsPerTurn int     `help:"Straight segments per turn" default:"36" env:"ANTENNAGEN_SEGMENTS_PER_TURN"`
	TraceWidth      float64 `help:"Copper trace width in mm" default:"0.6" env:"ANTENNAGEN_TRACE_WIDTH"`
	SilkMargin      float64 `help:"Silkscreen outline margin in mm; negative disables the outline" default:"1.0" env:"ANTENNAGEN_SILK_MARGIN"`
	Name            string  `help:"Footprint value" default:"spiral" env:"ANTENNAGEN_NAME"`
}

// Run is called by Kong when the spiral command is executed.
func (s *Spiral) Run(logger *slog.Logger, dump log.PathDump) error {
	return generate(os.Stdout, footprint.Spiral, s.raw(), s.Output, logger, dump)
}

func (s *Spiral) raw() map[string]any {
	a := s.Antenna
	raw := map[string]any{
		footprint.KeyRadiusOuter:     a.RadiusOuter,
		footprint.KeyRadiusInner:     a.RadiusInner,
		footprint.KeyTurns:           a.Turns,
		footprint.KeySegmentsPerTurn: a.SegmentsPerTurn,
		footprint.KeyTraceWidth:      a.TraceWidth,
		footprint.KeySilkMargin:      a.SilkMargin,
		footprint.KeyName:            a.Name,
	}
	s.Pads.raw(raw)
	return raw
}
