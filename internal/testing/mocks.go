package testing

import (
	"testing"

	"github.com/Alia5/antennagen/footprint"
	"github.com/Alia5/antennagen/geometry"
	"github.com/Alia5/antennagen/params"
	"github.com/Alia5/antennagen/spiral"
)

// fixedGenerator returns a canned path.
type fixedGenerator struct {
	path spiral.Path
}

func (g fixedGenerator) Style() spiral.Style { return spiral.StyleRectangular }
func (g fixedGenerator) Trace() spiral.Path  { return g.path }

// CreateMockWizard builds a wizard with a single "antenna.size" parameter
// plus the pad and name parameters every wizard carries. Its generator always
// returns path.
func CreateMockWizard(t *testing.T, name string, path spiral.Path) *footprint.Wizard {
	t.Helper()
	return &footprint.Wizard{
		Name:        name,
		Description: "mock " + name,
		Params: params.Defs{
			{Page: "Antenna", Name: "size", Unit: params.UnitMM, Default: 10.0, Min: 1, Max: 100},
			{Page: "Antenna", Name: "name", Unit: params.UnitString, Default: name},
			{Page: "Pads", Name: "pad_diameter", Unit: params.UnitMM, Default: 1.0, Min: 0.1, Max: 5},
			{Page: "Pads", Name: "drill_size", Unit: params.UnitMM, Default: 0.35, Min: 0.1, Max: 2},
		},
		Generator: func(params.Set) spiral.Generator { return fixedGenerator{path: path} },
		Outline: func(s params.Set) *geometry.Outline {
			size := s.Float("antenna.size")
			return footprint.RectOutline(size, size, 0)
		},
		Label: func(s params.Set) string {
			size := s.Float("antenna.size")
			return footprint.Label(size, size)
		},
	}
}
