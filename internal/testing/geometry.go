package testing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Alia5/antennagen/geometry"
)

// Delta is the default tolerance for coordinate comparisons.
const Delta = 1e-9

// AssertPointInDelta checks both coordinates of got against want.
func AssertPointInDelta(t *testing.T, want, got geometry.Point, delta float64, msgAndArgs ...any) bool {
	t.Helper()
	okX := assert.InDelta(t, want.X, got.X, delta, msgAndArgs...)
	okY := assert.InDelta(t, want.Y, got.Y, delta, msgAndArgs...)
	return okX && okY
}

// AssertConnected checks that every segment starts exactly where the
// previous one ended.
func AssertConnected(t *testing.T, segments []geometry.Segment) bool {
	t.Helper()
	ok := true
	for i := 1; i < len(segments); i++ {
		if segments[i].Start != segments[i-1].End {
			ok = assert.Failf(t, "path is not connected",
				"segment %d starts at %v but segment %d ends at %v",
				i, segments[i].Start, i-1, segments[i-1].End)
		}
	}
	return ok
}

// AssertAxisAligned checks that a segment is horizontal or vertical.
func AssertAxisAligned(t *testing.T, s geometry.Segment, msgAndArgs ...any) bool {
	t.Helper()
	return assert.True(t, s.Start.X == s.End.X || s.Start.Y == s.End.Y, msgAndArgs...)
}
