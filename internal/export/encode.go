package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/Alia5/antennagen/geometry"
)

// Formats accepted by Encode.
const (
	FormatJSON    = "json"
	FormatYAML    = "yaml"
	FormatTOML    = "toml"
	FormatSummary = "summary"
)

// NormalizeFormat maps user spellings onto a format constant, or "" if unknown.
func NormalizeFormat(f string) string {
	switch strings.ToLower(f) {
	case "json":
		return FormatJSON
	case "yaml", "yml":
		return FormatYAML
	case "toml":
		return FormatTOML
	case "summary", "text", "txt":
		return FormatSummary
	default:
		return ""
	}
}

// Encode writes r to w in the given format.
func Encode(w io.Writer, format string, r *geometry.Result) error {
	f := NormalizeFormat(format)
	if f == FormatSummary {
		return writeSummary(w, r)
	}

	doc := NewDocument(r)
	var data []byte
	var err error
	switch f {
	case FormatJSON:
		data, err = json.MarshalIndent(doc, "", "  ")
		data = append(data, '\n')
	case FormatYAML:
		data, err = yaml.Marshal(doc)
	case FormatTOML:
		data, err = toml.Marshal(doc)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", f, err)
	}
	_, err = w.Write(data)
	return err
}

func writeSummary(w io.Writer, r *geometry.Result) error {
	bb := r.Bounds()
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s  %s\n", r.Reference, r.Value, r.Label)
	fmt.Fprintf(&b, "  segments:     %d\n", len(r.Segments))
	fmt.Fprintf(&b, "  trace length: %.3f mm\n", r.TraceLength())
	if !bb.Empty() {
		fmt.Fprintf(&b, "  extent:       %.3f x %.3f mm\n", bb.Width(), bb.Height())
	}
	fmt.Fprintf(&b, "  path:         %v -> %v\n", r.Start(), r.End())
	for _, p := range r.Pads {
		fmt.Fprintf(&b, "  pad %s:        %v  d=%g drill=%g\n", p.Name, p.Position, p.Diameter, p.Drill)
	}
	switch o := r.Outline; {
	case o == nil:
		fmt.Fprintf(&b, "  outline:      none\n")
	case o.Kind == geometry.OutlineCircle:
		fmt.Fprintf(&b, "  outline:      circle r=%g on %s\n", o.Radius, o.Layer)
	default:
		box := geometry.BoundingBox{Min: o.Min, Max: o.Max}
		encloses := bb.Empty() || (box.Contains(bb.Min) && box.Contains(bb.Max))
		fmt.Fprintf(&b, "  outline:      rect %v .. %v on %s, encloses trace: %t\n", o.Min, o.Max, o.Layer, encloses)
	}
	fmt.Fprintf(&b, "  fingerprint:  %s\n", Fingerprint(r))
	_, err := io.WriteString(w, b.String())
	return err
}
