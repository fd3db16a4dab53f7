package footprint_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/antennagen/footprint"
	"github.com/Alia5/antennagen/geometry"
	th "github.com/Alia5/antennagen/internal/testing"
	"github.com/Alia5/antennagen/spiral"
)

func TestWizardRegistry(t *testing.T) {
	tests := []struct {
		name         string
		registerName string
		lookupName   string
		shouldFind   bool
	}{
		{name: "exact match", registerName: "testwizard", lookupName: "testwizard", shouldFind: true},
		{name: "case insensitive lookup", registerName: "TestWizard2", lookupName: "testwizard2", shouldFind: true},
		{name: "case insensitive lookup uppercase", registerName: "mywizard", lookupName: "MYWIZARD", shouldFind: true},
		{name: "lookup non-existent wizard", registerName: "", lookupName: "nonexistent", shouldFind: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w *footprint.Wizard
			if tt.registerName != "" {
				w = th.CreateMockWizard(t, tt.registerName, spiral.Path{})
				footprint.RegisterWizard(w)
			}

			got := footprint.GetWizard(tt.lookupName)
			if !tt.shouldFind {
				assert.Nil(t, got)
				return
			}
			assert.Same(t, w, got)
			assert.Contains(t, footprint.ListWizards(), strings.ToLower(tt.lookupName))
		})
	}
}

func TestBuiltinWizardsRegistered(t *testing.T) {
	assert.Same(t, footprint.Rectangular, footprint.GetWizard("rectangular"))
	assert.Same(t, footprint.Spiral, footprint.GetWizard("Spiral"))
}

func TestMockWizardBuild(t *testing.T) {
	path := spiral.Path{
		Segments: []geometry.Segment{{Start: geometry.Point{X: 1}, End: geometry.Point{X: 2}, Width: 0.1, Layer: geometry.LayerCopper}},
		Anchors:  [2]geometry.Point{{X: 1}, {X: 2}},
	}
	w := th.CreateMockWizard(t, "mock", path)

	res, err := w.Build(w.Params.Defaults())
	require.NoError(t, err)
	assert.Equal(t, path.Segments, res.Segments)
	assert.Equal(t, "Antenna_10.0x10.0mm", res.Label)
	assert.Equal(t, "mock", res.Value)
	assert.Equal(t, path.Anchors[0], res.Pads[0].Position)
	assert.Equal(t, path.Anchors[1], res.Pads[1].Position)
	require.NotNil(t, res.Outline)
	assert.Equal(t, geometry.Point{X: 5, Y: 5}, res.Outline.Max)
}
