package footprint

import "github.com/Alia5/antennagen/geometry"

// RectOutline returns a silkscreen rectangle around a width x length box
// centred on the origin, grown by margin on every side. A negative margin
// means no outline and yields nil; zero is tangent to the box.
func RectOutline(width, length, margin float64) *geometry.Outline {
	if margin < 0 {
		return nil
	}
	return &geometry.Outline{
		Kind:   geometry.OutlineRect,
		Min:    geometry.Point{X: -width/2 - margin, Y: -length/2 - margin},
		Max:    geometry.Point{X: width/2 + margin, Y: length/2 + margin},
		Layer:  geometry.LayerSilkscreen,
		Stroke: geometry.OutlineStroke,
	}
}

// CircleOutline returns a silkscreen circle of radius+margin around the
// origin, or nil when margin is negative.
func CircleOutline(radius, margin float64) *geometry.Outline {
	if margin < 0 {
		return nil
	}
	return &geometry.Outline{
		Kind:   geometry.OutlineCircle,
		Radius: radius + margin,
		Layer:  geometry.LayerSilkscreen,
		Stroke: geometry.OutlineStroke,
	}
}
