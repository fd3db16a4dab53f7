package cmd

import (
	"log/slog"
	"os"

	"github.com/Alia5/antennagen/footprint"
	"github.com/Alia5/antennagen/internal/log"
)

type Rectangular struct {
	Antenna RectangularAntenna `embed:"" prefix:"antenna."`
	Pads    Pads               `embed:"" prefix:"pads."`
	Output  Output             `embed:"" prefix:"output."`
}

// RectangularAntenna is the antenna parameter page of the rectangular wizard.
type RectangularAntenna struct {
	Length       float64 `help:"Outer extent along Y in mm" default:"50" env:"ANTENNAGEN_LENGTH"`
	Width        float64 `help:"Outer extent along X in mm" default:"30" env:"ANTENNAGEN_WIDTH"`
	Turns        int     `help:"Number of turns" default:"5" env:"ANTENNAGEN_TURNS"`
	TraceWidth   float64 `help:"Copper trace width in mm" default:"0.6" env:"ANTENNAGEN_TRACE_WIDTH"`
	TraceSpacing float64 `help:"Distance between turns in mm" default:"1.0" env:"ANTENNAGEN_TRACE_SPACING"`
	SilkMargin   float64 `help:"Silkscreen outline margin in mm; negative disables the outline" default:"1.0" env:"ANTENNAGEN_SILK_MARGIN"`
	Style        int     `help:"0 for square corners, 1 for diagonal connectors" default:"0" env:"ANTENNAGEN_STYLE"`
	Name         string  `help:"Footprint value" default:"rectangle" env:"ANTENNAGEN_NAME"`
}

// Run is called by Kong when the rectangular command is executed.
func (r *Rectangular) Run(logger *slog.Logger, dump log.PathDump) error {
	return generate(os.Stdout, footprint.Rectangular, r.raw(), r.Output, logger, dump)
}

func (r *Rectangular) raw() map[string]any {
	a := r.Antenna
	raw := map[string]any{
		footprint.KeyLength:       a.Length,
		footprint.KeyWidth:        a.Width,
		footprint.KeyTurns:        a.Turns,
		footprint.KeyTraceWidth:   a.TraceWidth,
		footprint.KeyTraceSpacing: a.TraceSpacing,
		footprint.KeySilkMargin:   a.SilkMargin,
		footprint.KeyStyle:        a.Style,
		footprint.KeyName:         a.Name,
	}
	r.Pads.raw(raw)
	return raw
}
