package gcode

import "math"

// Angle returns the angle of the ray from center to point on the XY plane,
// in radians within [0, 2π).
func Angle(center, point Point3) float64 {
	dx := point.X.Value - center.X.Value
	dy := point.Y.Value - center.Y.Value

	if dx == 0 {
		if dy > 0 {
			return math.Pi / 2
		}
		return math.Pi * 3 / 2
	}

	angle := math.Atan2(dy, dx)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle
}

// Sweep returns the angular distance covered when going from startAngle to
// endAngle in the given direction, in (0, 2π]. Equal angles mean a full
// circle.
func Sweep(startAngle, endAngle float64, clockwise bool) float64 {
	if startAngle == endAngle {
		return 2 * math.Pi
	}

	// An end angle of 0 means a full turn back to 2π.
	if endAngle == 0 {
		endAngle = 2 * math.Pi
	}

	if !clockwise && endAngle < startAngle {
		return (2*math.Pi - startAngle) + endAngle
	}
	if clockwise && endAngle > startAngle {
		return (2*math.Pi - endAngle) + startAngle
	}
	return math.Abs(endAngle - startAngle)
}

// ExpandArc approximates the arc from start to end around center with a
// sequence of points. A radius of 0 has it derived from start and center.
// When minArcLength is positive, arcs shorter than it yield no points at
// all, signalling the caller to keep the move unexpanded. When
// segmentLength is positive the segment count is ceil(arcLength /
// segmentLength), otherwise 20 segments are used. The last point is always
// the given end point, so the expanded arc terminates exactly where the
// command did.
func ExpandArc(start, end, center Point3, clockwise bool, radius, minArcLength, segmentLength float64) []Point3 {
	if radius == 0 {
		radius = start.DistanceXY(center)
	}

	startAngle := Angle(center, start)
	endAngle := Angle(center, end)
	sweep := Sweep(startAngle, endAngle, clockwise)

	arcLength := sweep * radius

	if minArcLength > 0 && arcLength < minArcLength {
		return nil
	}

	segments := 20
	if segmentLength <= 0 && minArcLength > 0 {
		segmentLength = arcLength / minArcLength
	}
	if segmentLength > 0 {
		segments = int(math.Ceil(arcLength / segmentLength))
		if segments < 1 {
			segments = 1
		}
	}

	return arcPoints(start, end, center, clockwise, radius, startAngle, sweep, segments)
}

func arcPoints(start, end, center Point3, clockwise bool, radius, startAngle, sweep float64, segments int) []Point3 {
	zIncrement := (end.Z.Value - start.Z.Value) / float64(segments)

	points := make([]Point3, 0, segments)
	for i := 1; i < segments; i++ {
		var angle float64
		if clockwise {
			angle = startAngle - float64(i)*sweep/float64(segments)
		} else {
			angle = startAngle + float64(i)*sweep/float64(segments)
		}
		if angle >= 2*math.Pi {
			angle -= 2 * math.Pi
		}

		points = append(points, Point3{
			X: NewAxis(math.Cos(angle)*radius + center.X.Value),
			Y: NewAxis(math.Sin(angle)*radius + center.Y.Value),
			Z: NewAxis(start.Z.Value + float64(i)*zIncrement),
		})
	}

	return append(points, end)
}
