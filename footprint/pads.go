package footprint

import "github.com/Alia5/antennagen/geometry"

// PlacePads puts one round through-hole pad on each anchor. Pad "1" sits on
// the first anchor and pad "2" on the second. diameter > drill is checked
// during parameter validation, not here.
func PlacePads(anchors [2]geometry.Point, diameter, drill float64) [2]geometry.Pad {
	var pads [2]geometry.Pad
	for i, at := range anchors {
		pads[i] = geometry.Pad{
			Name:     padNames[i],
			Position: at,
			Diameter: diameter,
			Drill:    drill,
			Shape:    geometry.PadShapeCircle,
		}
	}
	return pads
}

var padNames = [2]string{"1", "2"}
