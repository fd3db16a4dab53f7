package spiral_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/antennagen/geometry"
	th "github.com/Alia5/antennagen/internal/testing"
	"github.com/Alia5/antennagen/spiral"
)

func pt(x, y float64) geometry.Point { return geometry.Point{X: x, Y: y} }

func TestRectangularExample(t *testing.T) {
	g := spiral.Rectangular{Length: 50, Width: 30, Turns: 2, TraceWidth: 0.6, TraceSpacing: 1}
	path := g.Trace()

	want := []geometry.Point{
		pt(0, 25),
		pt(-15, 25), pt(-15, -25), pt(15, -25), pt(15, 24),
		pt(-14, 24), pt(-14, -24), pt(14, -24), pt(14, 23),
		pt(0, 23),
	}
	require.Len(t, path.Segments, 9)
	for i, s := range path.Segments {
		th.AssertPointInDelta(t, want[i], s.Start, th.Delta, "segment %d start", i)
		th.AssertPointInDelta(t, want[i+1], s.End, th.Delta, "segment %d end", i)
		assert.Equal(t, 0.6, s.Width)
		assert.Equal(t, geometry.LayerCopper, s.Layer)
	}
	assert.Equal(t, pt(0, 25), path.Anchors[0])
	assert.Equal(t, pt(0, 23), path.Anchors[1])
}

func TestRectangularProperties(t *testing.T) {
	tests := []struct {
		name string
		gen  spiral.Rectangular
	}{
		{name: "single turn", gen: spiral.Rectangular{Length: 10, Width: 10, Turns: 1, TraceWidth: 0.2, TraceSpacing: 0.5}},
		{name: "defaults", gen: spiral.Rectangular{Length: 50, Width: 30, Turns: 5, TraceWidth: 0.6, TraceSpacing: 1}},
		{name: "many turns", gen: spiral.Rectangular{Length: 200, Width: 120, Turns: 40, TraceWidth: 0.3, TraceSpacing: 1.2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.gen.Trace()

			assert.Len(t, path.Segments, 4*tt.gen.Turns+1)
			assert.Equal(t, path.Segments[0].Start, path.Anchors[0])
			assert.Equal(t, path.Segments[len(path.Segments)-1].End, path.Anchors[1])
			assert.Equal(t, 0.0, path.Anchors[1].X)
			th.AssertConnected(t, path.Segments)
			for i, s := range path.Segments {
				th.AssertAxisAligned(t, s, "segment %d", i)
			}
		})
	}
}

func TestDiagonalExample(t *testing.T) {
	g := spiral.Diagonal{Length: 50, Width: 30, Turns: 2, TraceWidth: 0.5, TraceSpacing: 0.5}
	path := g.Trace()

	r2 := math.Sqrt2
	want := []geometry.Point{
		pt(0, 25),
		pt(-15, 25), pt(-15, -25), pt(15, -25), pt(15, 25), pt(r2, 25), pt(r2-1, 24),
		pt(-14, 24), pt(-14, -24), pt(14, -24), pt(14, 24), pt(2*r2-1, 24), pt(2*r2-2, 23),
		pt(0, 23),
	}
	require.Len(t, path.Segments, 13)
	for i, s := range path.Segments {
		th.AssertPointInDelta(t, want[i], s.Start, th.Delta, "segment %d start", i)
		th.AssertPointInDelta(t, want[i+1], s.End, th.Delta, "segment %d end", i)
	}
	assert.Equal(t, pt(0, 25), path.Anchors[0])
	assert.Equal(t, path.Segments[12].End, path.Anchors[1])
}

func TestDiagonalOffsets(t *testing.T) {
	g := spiral.Diagonal{TraceWidth: 0.6, TraceSpacing: 1.4}
	dx1, dx2, dy := g.Offsets()

	assert.InDelta(t, 2*(math.Sqrt2-1), dx1, th.Delta)
	assert.InDelta(t, 2*math.Sqrt2, dx2, th.Delta)
	assert.Equal(t, 2.0, dy)

	for _, turns := range []int{1, 3, 12} {
		g.Turns = turns
		a, b, c := g.Offsets()
		assert.Equal(t, [3]float64{dx1, dx2, dy}, [3]float64{a, b, c}, "turns=%d", turns)
	}
}

func TestDiagonalProperties(t *testing.T) {
	tests := []struct {
		name string
		gen  spiral.Diagonal
	}{
		{name: "single turn", gen: spiral.Diagonal{Length: 20, Width: 20, Turns: 1, TraceWidth: 0.5, TraceSpacing: 0.5}},
		{name: "defaults", gen: spiral.Diagonal{Length: 50, Width: 30, Turns: 5, TraceWidth: 0.6, TraceSpacing: 1}},
		{name: "dense", gen: spiral.Diagonal{Length: 80, Width: 60, Turns: 12, TraceWidth: 0.25, TraceSpacing: 0.3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.gen.Trace()
			last := tt.gen.Turns * 6
			pitch := tt.gen.TraceWidth + tt.gen.TraceSpacing

			require.Len(t, path.Segments, last+1)
			assert.Equal(t, 0.0, path.Segments[last].End.X)
			assert.Less(t, path.Segments[last].End.X, path.Segments[last].Start.X, "final segment runs left")
			assert.Equal(t, path.Segments[last].End, path.Anchors[1])
			assert.Equal(t, pt(0, tt.gen.Length/2), path.Anchors[0])
			th.AssertConnected(t, path.Segments)

			for i, s := range path.Segments {
				if i%6 == 5 {
					assert.InDelta(t, -pitch, s.End.X-s.Start.X, th.Delta, "connector %d", i)
					assert.InDelta(t, -pitch, s.End.Y-s.Start.Y, th.Delta, "connector %d", i)
					continue
				}
				th.AssertAxisAligned(t, s, "segment %d", i)
			}
			assert.InDelta(t, tt.gen.LastConnector(), path.Segments[last-2].End.X, th.Delta)
		})
	}
}

func TestDiagonalConnectorsKeepOnePitch(t *testing.T) {
	g := spiral.Diagonal{Length: 50, Width: 30, Turns: 4, TraceWidth: 0.6, TraceSpacing: 1}
	path := g.Trace()
	pitch := g.TraceWidth + g.TraceSpacing

	// distance from a point to the 45° line x - y = c is |x - y - c| / √2
	for turn := 1; turn < g.Turns; turn++ {
		prev := path.Segments[turn*6-1]
		cur := path.Segments[turn*6+5]
		c := prev.Start.X - prev.Start.Y
		dist := math.Abs(cur.Start.X-cur.Start.Y-c) / math.Sqrt2
		assert.InDelta(t, pitch, dist, 1e-9, "turn %d", turn)
	}
}

func TestCircularExample(t *testing.T) {
	g := spiral.Circular{RadiusOuter: 50, RadiusInner: 35, Turns: 1, SegmentsPerTurn: 4, TraceWidth: 0.6}
	path := g.Trace()

	dr, dtheta := g.Steps()
	assert.InDelta(t, 3.75, dr, th.Delta)
	assert.InDelta(t, math.Pi/2, dtheta, th.Delta)

	want := []geometry.Point{pt(50, 0), pt(0, 46.25), pt(-42.5, 0), pt(0, -38.75), pt(35, 0)}
	require.Len(t, path.Segments, 4)
	for i, s := range path.Segments {
		th.AssertPointInDelta(t, want[i], s.Start, 1e-9, "segment %d start", i)
		th.AssertPointInDelta(t, want[i+1], s.End, 1e-9, "segment %d end", i)
	}
	assert.Equal(t, pt(35, 0), path.Anchors[0])
	assert.Equal(t, pt(50, 0), path.Anchors[1])
}

func TestCircularProperties(t *testing.T) {
	tests := []struct {
		name string
		gen  spiral.Circular
	}{
		{name: "triangle facets", gen: spiral.Circular{RadiusOuter: 10, RadiusInner: 5, Turns: 2, SegmentsPerTurn: 3, TraceWidth: 0.2}},
		{name: "defaults", gen: spiral.Circular{RadiusOuter: 50, RadiusInner: 35, Turns: 5, SegmentsPerTurn: 36, TraceWidth: 0.6}},
		{name: "equal radii", gen: spiral.Circular{RadiusOuter: 20, RadiusInner: 20, Turns: 3, SegmentsPerTurn: 12, TraceWidth: 0.6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.gen.Trace()
			require.Len(t, path.Segments, tt.gen.Turns*tt.gen.SegmentsPerTurn)

			var sweep float64
			for _, s := range path.Segments {
				step := math.Atan2(s.End.Y, s.End.X) - math.Atan2(s.Start.Y, s.Start.X)
				if step <= 0 {
					step += 2 * math.Pi
				}
				sweep += step
			}
			assert.InDelta(t, float64(tt.gen.Turns)*2*math.Pi, sweep, 1e-6)

			th.AssertConnected(t, path.Segments)
			th.AssertPointInDelta(t, pt(tt.gen.RadiusOuter, 0), path.Segments[0].Start, th.Delta)
			// the traced end only approximately meets the nominal inner anchor
			th.AssertPointInDelta(t, path.Anchors[0], path.Segments[len(path.Segments)-1].End, 1e-6)
			assert.Equal(t, pt(tt.gen.RadiusInner, 0), path.Anchors[0])
			assert.Equal(t, pt(tt.gen.RadiusOuter, 0), path.Anchors[1])
		})
	}
}

func TestTraceIsIdempotent(t *testing.T) {
	gens := []spiral.Generator{
		spiral.Rectangular{Length: 50, Width: 30, Turns: 5, TraceWidth: 0.6, TraceSpacing: 1},
		spiral.Diagonal{Length: 50, Width: 30, Turns: 5, TraceWidth: 0.6, TraceSpacing: 1},
		spiral.Circular{RadiusOuter: 50, RadiusInner: 35, Turns: 5, SegmentsPerTurn: 36, TraceWidth: 0.6},
	}
	for _, g := range gens {
		t.Run(g.Style().String(), func(t *testing.T) {
			assert.Equal(t, g.Trace(), g.Trace())
		})
	}
}

func TestTraceConcurrent(t *testing.T) {
	g := spiral.Circular{RadiusOuter: 40, RadiusInner: 10, Turns: 8, SegmentsPerTurn: 64, TraceWidth: 0.4}
	want := g.Trace()

	var wg sync.WaitGroup
	results := make([]spiral.Path, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = g.Trace()
		}()
	}
	wg.Wait()

	for i, got := range results {
		assert.Equal(t, want, got, "run %d", i)
	}
}

func TestStyleString(t *testing.T) {
	assert.Equal(t, "rectangular", spiral.StyleRectangular.String())
	assert.Equal(t, "diagonal", spiral.StyleDiagonal.String())
	assert.Equal(t, "circular", spiral.StyleCircular.String())
	assert.Equal(t, "Style(7)", spiral.Style(7).String())
}
