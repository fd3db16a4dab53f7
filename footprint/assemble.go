package footprint

import (
	"strconv"
	"strings"

	"github.com/Alia5/antennagen/geometry"
	"github.com/Alia5/antennagen/spiral"
)

// Assemble packs an already generated path, its pads and the optional
// outline into a Result. It does not compute any geometry.
func Assemble(path spiral.Path, pads [2]geometry.Pad, outline *geometry.Outline, label, value string) *geometry.Result {
	return &geometry.Result{
		Reference: geometry.ReferenceDesignator,
		Value:     value,
		Label:     label,
		Segments:  path.Segments,
		Pads:      pads,
		Outline:   outline,
	}
}

// Label formats the display label from two characteristic lengths.
func Label(a, b float64) string {
	return "Antenna_" + formatLength(a) + "x" + formatLength(b) + "mm"
}

// formatLength prints the shortest exact form, keeping a trailing ".0" on
// whole numbers so 50 reads as "50.0" like the host CAD tool shows it.
func formatLength(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
