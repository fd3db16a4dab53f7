// Package export serializes a generated footprint for consumers outside the
// generator, which place it into their own board or library format.
package export

import (
	"github.com/Alia5/antennagen/geometry"
)

type Point struct {
	X float64 `json:"x" yaml:"x" toml:"x"`
	Y float64 `json:"y" yaml:"y" toml:"y"`
}

type Segment struct {
	Start Point   `json:"start" yaml:"start" toml:"start"`
	End   Point   `json:"end" yaml:"end" toml:"end"`
	Width float64 `json:"width" yaml:"width" toml:"width"`
	Layer string  `json:"layer" yaml:"layer" toml:"layer"`
}

type Pad struct {
	Name     string  `json:"name" yaml:"name" toml:"name"`
	Position Point   `json:"position" yaml:"position" toml:"position"`
	Diameter float64 `json:"diameter" yaml:"diameter" toml:"diameter"`
	Drill    float64 `json:"drill" yaml:"drill" toml:"drill"`
	Shape    string  `json:"shape" yaml:"shape" toml:"shape"`
}

// Outline only fills the fields that apply to its kind.
type Outline struct {
	Kind   string  `json:"kind" yaml:"kind" toml:"kind"`
	Min    *Point  `json:"min,omitempty" yaml:"min,omitempty" toml:"min,omitempty"`
	Max    *Point  `json:"max,omitempty" yaml:"max,omitempty" toml:"max,omitempty"`
	Center *Point  `json:"center,omitempty" yaml:"center,omitempty" toml:"center,omitempty"`
	Radius float64 `json:"radius,omitempty" yaml:"radius,omitempty" toml:"radius,omitempty"`
	Layer  string  `json:"layer" yaml:"layer" toml:"layer"`
	Stroke float64 `json:"stroke" yaml:"stroke" toml:"stroke"`
}

// Document is the serialized form of a geometry.Result.
type Document struct {
	Reference   string    `json:"reference" yaml:"reference" toml:"reference"`
	Value       string    `json:"value" yaml:"value" toml:"value"`
	Label       string    `json:"label" yaml:"label" toml:"label"`
	Fingerprint string    `json:"fingerprint" yaml:"fingerprint" toml:"fingerprint"`
	Outline     *Outline  `json:"outline,omitempty" yaml:"outline,omitempty" toml:"outline,omitempty"`
	Pads        []Pad     `json:"pads" yaml:"pads" toml:"pads"`
	Segments    []Segment `json:"segments" yaml:"segments" toml:"segments"`
}

// NewDocument converts r. Segment order is preserved.
func NewDocument(r *geometry.Result) Document {
	doc := Document{
		Reference:   r.Reference,
		Value:       r.Value,
		Label:       r.Label,
		Fingerprint: Fingerprint(r),
		Pads:        make([]Pad, 0, len(r.Pads)),
		Segments:    make([]Segment, 0, len(r.Segments)),
	}
	for _, p := range r.Pads {
		doc.Pads = append(doc.Pads, Pad{
			Name:     p.Name,
			Position: point(p.Position),
			Diameter: p.Diameter,
			Drill:    p.Drill,
			Shape:    string(p.Shape),
		})
	}
	for _, s := range r.Segments {
		doc.Segments = append(doc.Segments, Segment{
			Start: point(s.Start),
			End:   point(s.End),
			Width: s.Width,
			Layer: string(s.Layer),
		})
	}
	if o := r.Outline; o != nil {
		out := &Outline{Kind: string(o.Kind), Layer: string(o.Layer), Stroke: o.Stroke}
		switch o.Kind {
		case geometry.OutlineCircle:
			c := point(o.Center)
			out.Center = &c
			out.Radius = o.Radius
		default:
			lo, hi := point(o.Min), point(o.Max)
			out.Min, out.Max = &lo, &hi
		}
		doc.Outline = out
	}
	return doc
}

func point(p geometry.Point) Point {
	return Point{X: p.X, Y: p.Y}
}
