package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/Alia5/antennagen/footprint"
	"github.com/Alia5/antennagen/internal/export"
	"github.com/Alia5/antennagen/internal/log"
	"github.com/Alia5/antennagen/params"
)

// Pads is the pad parameter page shared by every wizard.
type Pads struct {
	PadDiameter float64 `help:"Terminal pad diameter in mm" default:"1.0" env:"ANTENNAGEN_PAD_DIAMETER"`
	DrillSize   float64 `help:"Terminal pad drill diameter in mm" default:"0.35" env:"ANTENNAGEN_DRILL_SIZE"`
}

func (p Pads) raw(into map[string]any) {
	into[footprint.KeyPadDiameter] = p.PadDiameter
	into[footprint.KeyDrillSize] = p.DrillSize
}

// Output selects how the footprint is printed.
type Output struct {
	Format string `help:"Output format; auto prints a summary on a terminal and json otherwise" default:"auto" enum:"auto,json,yaml,toml,summary" env:"ANTENNAGEN_FORMAT"`
}

func (o Output) resolve(w io.Writer) string {
	if o.Format != "auto" {
		return o.Format
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return export.FormatSummary
	}
	return export.FormatJSON
}

// generate validates raw against the wizard, builds the footprint and writes it to w.
func generate(w io.Writer, wiz *footprint.Wizard, raw map[string]any, out Output, logger *slog.Logger, dump log.PathDump) error {
	set, err := wiz.Validate(raw)
	if err != nil {
		for _, p := range params.Problems(err) {
			logger.Error("invalid parameter", "wizard", wiz.Name, "param", p.Param, "detail", p.Detail)
		}
		return fmt.Errorf("%s: %w", wiz.Name, err)
	}

	values := set.Raw()
	for _, key := range set.Keys() {
		logger.Debug("parameter", "wizard", wiz.Name, "key", key, "value", values[key])
	}
	logger.Debug("generating footprint", "wizard", wiz.Name, "style", wiz.Generator(set).Style())
	res := wiz.Generate(set)
	dump.Dump(res.Label, res.Segments)
	logger.Info("generated footprint",
		"label", res.Label,
		"segments", len(res.Segments),
		"trace_length_mm", res.TraceLength(),
		"outline", res.Outline != nil,
	)

	if err := export.Encode(w, out.resolve(w), res); err != nil {
		return fmt.Errorf("failed to write footprint: %w", err)
	}
	return nil
}
