package gcode

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAngle(t *testing.T) {
	center := NewPoint3(0, 0, 0)

	testCases := []struct {
		x        float64
		y        float64
		expected float64
	}{
		{1, 0, 0},
		{1, 1, math.Pi / 4},
		{0, 1, math.Pi / 2},
		{-1, 1, math.Pi * 3 / 4},
		{-1, 0, math.Pi},
		{-1, -1, math.Pi * 5 / 4},
		{0, -1, math.Pi * 3 / 2},
		{1, -1, math.Pi * 7 / 4},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%v,%v", tc.x, tc.y), func(t *testing.T) {
			angle := Angle(center, NewPoint3(tc.x, tc.y, 0))
			require.InDelta(t, tc.expected, angle, 1e-9)
			require.GreaterOrEqual(t, angle, 0.0)
			require.Less(t, angle, 2*math.Pi)
		})
	}
}

func TestAngleOffsetCenter(t *testing.T) {
	angle := Angle(NewPoint3(5, 5, 0), NewPoint3(5, 10, 0))
	require.InDelta(t, math.Pi/2, angle, 1e-9)
}

func TestSweep(t *testing.T) {
	t.Run("full circle", func(t *testing.T) {
		for _, angle := range []float64{0, 1, math.Pi, 5.5} {
			require.Equal(t, 2*math.Pi, Sweep(angle, angle, true))
			require.Equal(t, 2*math.Pi, Sweep(angle, angle, false))
		}
	})

	testCases := []struct {
		name       string
		startAngle float64
		endAngle   float64
		clockwise  bool
		expected   float64
	}{
		{"ccw quarter", 0, math.Pi / 2, false, math.Pi / 2},
		{"cw quarter", math.Pi / 2, 0, true, math.Pi / 2},
		{"ccw wrap", math.Pi * 3 / 2, math.Pi / 2, false, math.Pi},
		{"cw wrap", math.Pi / 2, math.Pi * 3 / 2, true, math.Pi},
		{"ccw to zero", math.Pi * 3 / 2, 0, false, math.Pi / 2},
		{"cw from zero", 0, math.Pi * 3 / 2, true, math.Pi / 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, tc.expected, Sweep(tc.startAngle, tc.endAngle, tc.clockwise), 1e-9)
		})
	}
}

func TestExpandArc(t *testing.T) {
	start := NewPoint3(10, 0, 0)
	end := NewPoint3(0, 10, 0)
	center := NewPoint3(0, 0, 0)

	t.Run("default segment count", func(t *testing.T) {
		points := ExpandArc(start, end, center, false, 0, 0, 0)
		require.Len(t, points, 20)

		// Ends exactly at the end point, not at a recomputed angle.
		require.Equal(t, end, points[len(points)-1])

		// First interpolated point moved a non-zero angle step from start.
		require.NotEqual(t, start, points[0])
		require.InDelta(t, math.Cos(math.Pi/40)*10, points[0].X.Value, 1e-9)
		require.InDelta(t, math.Sin(math.Pi/40)*10, points[0].Y.Value, 1e-9)

		// Every interpolated point stays on the circle.
		for _, p := range points[:len(points)-1] {
			require.InDelta(t, 10.0, center.DistanceXY(p), 1e-9)
		}
	})

	t.Run("clockwise goes the other way", func(t *testing.T) {
		points := ExpandArc(start, end, center, true, 0, 0, 0)
		require.Len(t, points, 20)
		require.Equal(t, end, points[len(points)-1])
		// Going clockwise from angle 0 drops below the X axis.
		require.Less(t, points[0].Y.Value, 0.0)
	})

	t.Run("segment length derives count", func(t *testing.T) {
		// Quarter circle of radius 10 is ~15.7 long.
		points := ExpandArc(start, end, center, false, 0, 0, 1)
		require.Len(t, points, 16)
		require.Equal(t, end, points[len(points)-1])
	})

	t.Run("minimum arc length suppresses short arcs", func(t *testing.T) {
		points := ExpandArc(start, end, center, false, 0, 100, 1)
		require.Empty(t, points)
	})

	t.Run("z interpolates linearly", func(t *testing.T) {
		raisedEnd := NewPoint3(0, 10, 4)
		points := ExpandArc(start, raisedEnd, center, false, 0, 0, 0)
		require.Len(t, points, 20)
		for i, p := range points[:len(points)-1] {
			require.InDelta(t, float64(i+1)*4.0/20.0, p.Z.Value, 1e-9)
		}
		require.Equal(t, raisedEnd, points[len(points)-1])
	})

	t.Run("explicit radius", func(t *testing.T) {
		points := ExpandArc(start, end, center, false, 10, 0, 0)
		require.Len(t, points, 20)
		require.InDelta(t, 10.0, center.DistanceXY(points[0]), 1e-9)
	})

	t.Run("segment length fallback from minimum arc length", func(t *testing.T) {
		// With no segment length configured, the threshold also sets the
		// resolution: arcLength/minArcLength long segments.
		points := ExpandArc(start, end, center, false, 0, 1, 0)
		require.Len(t, points, 1)
		require.Equal(t, end, points[0])
	})
}
