// Package footprint assembles a complete antenna footprint: trace path,
// terminal pads and silkscreen outline.
package footprint

import (
	"github.com/Alia5/antennagen/geometry"
	"github.com/Alia5/antennagen/params"
	"github.com/Alia5/antennagen/spiral"
)

// Wizard describes one family of antenna footprints and how its parameters
// map onto a generator.
type Wizard struct {
	Name        string
	Description string
	Params      params.Defs

	// Check validates relations between parameters that single ranges can't
	// express. It runs after every parameter passed its own range check.
	Check func(s params.Set) error
	// Generator selects and configures the path generator.
	Generator func(s params.Set) spiral.Generator
	// Outline returns the silkscreen outline, or nil for none.
	Outline func(s params.Set) *geometry.Outline
	// Label returns the display label.
	Label func(s params.Set) string
}

// Validate builds a Set from raw values and runs the wizard's checks.
// Any returned error is a configuration error composed of *params.Error.
func (w *Wizard) Validate(raw map[string]any) (params.Set, error) {
	set, err := params.Build(w.Params, raw)
	if err != nil {
		return params.Set{}, err
	}
	if w.Check != nil {
		if err := w.Check(set); err != nil {
			return params.Set{}, err
		}
	}
	return set, nil
}

// Generate produces the footprint for a Set returned by Validate. Wizards
// without an antenna.name parameter use their own name as the value.
func (w *Wizard) Generate(set params.Set) *geometry.Result {
	path := w.Generator(set).Trace()
	pads := PlacePads(path.Anchors, set.Float(KeyPadDiameter), set.Float(KeyDrillSize))

	var outline *geometry.Outline
	if w.Outline != nil {
		outline = w.Outline(set)
	}
	value := w.Name
	if set.Has(KeyName) {
		value = set.String(KeyName)
	}
	return Assemble(path, pads, outline, w.Label(set), value)
}

// Build validates raw and generates the footprint in one go.
func (w *Wizard) Build(raw map[string]any) (*geometry.Result, error) {
	set, err := w.Validate(raw)
	if err != nil {
		return nil, err
	}
	return w.Generate(set), nil
}

// Keys shared by every wizard.
const (
	KeyTurns       = "antenna.turns"
	KeyTraceWidth  = "antenna.trace_width"
	KeySilkMargin  = "antenna.silk_margin"
	KeyName        = "antenna.name"
	KeyPadDiameter = "pads.pad_diameter"
	KeyDrillSize   = "pads.drill_size"
)

func padParams() params.Defs {
	return params.Defs{
		{Page: "Pads", Name: "pad_diameter", Unit: params.UnitMM, Default: 1.0, Min: 0.1, Max: 5.0, Help: "Terminal pad diameter"},
		{Page: "Pads", Name: "drill_size", Unit: params.UnitMM, Default: 0.35, Min: 0.1, Max: 2.0, Help: "Terminal pad drill diameter"},
	}
}

func checkPads(s params.Set) error {
	if d, drill := s.Float(KeyPadDiameter), s.Float(KeyDrillSize); d <= drill {
		return params.Errorf(KeyPadDiameter, "%g must be larger than drill size %g", d, drill)
	}
	return nil
}
