package log

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/Alia5/antennagen/geometry"
)

// PathDump writes a generated trace path one segment per line, for checking
// a spiral by eye or diffing two runs.
type PathDump interface {
	Dump(label string, segments []geometry.Segment)
}

// pathDump implements PathDump with thread-safe writes.
type pathDump struct {
	w  io.Writer
	mu sync.Mutex
}

// NewPathDump creates a new PathDump. If writer is nil, returns a no-op dump.
func NewPathDump(w io.Writer) PathDump {
	return &pathDump{w: w}
}

// Dump emits a header line followed by
//
//	<index> <x1>,<y1> -> <x2>,<y2> w=<width> <layer>
//
// for every segment.
func (p *pathDump) Dump(label string, segments []geometry.Segment) {
	if p.w == nil {
		return
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s: %d segments\n", label, len(segments))
	for i, s := range segments {
		fmt.Fprintf(&buf, "%4d %g,%g -> %g,%g w=%g %s\n",
			i, s.Start.X, s.Start.Y, s.End.X, s.End.Y, s.Width, s.Layer)
	}

	p.mu.Lock()
	_, _ = p.w.Write(buf.Bytes())
	p.mu.Unlock()
}
