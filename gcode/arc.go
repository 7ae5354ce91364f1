package gcode

import (
	"errors"
	"math"
)

// ErrArcRadius is returned when a radius form arc cannot be solved: the
// radius is too small for the chord between start and end, or start and end
// coincide.
var ErrArcRadius = errors.New("arc radius does not fit chord")

// ArcCenter resolves the center of an arc command. When any of the I/J/K
// words is given they position the center directly, as absolute coordinates
// or as offsets from start depending on absoluteIJK. Otherwise the R word
// gives the radius and the center is computed from the chord geometry.
func ArcCenter(words []Word, start, end Point3, absoluteIJK, clockwise bool) (Point3, error) {
	i := Coordinate(words, 'I')
	j := Coordinate(words, 'J')
	k := Coordinate(words, 'K')

	if !i.Valid && !j.Valid && !k.Valid {
		radius := Coordinate(words, 'R')
		return CenterFromRadius(start, end, radius.Value, clockwise)
	}

	return updatePoint(start, i, j, k, absoluteIJK), nil
}

// CenterFromRadius computes the absolute arc center from the radius form.
// Of the two arcs that fit a chord, direction and radius sign, a positive
// radius selects the minor arc and a negative radius the major one. A chord
// exactly twice the radius degenerates to a semicircle centered on the
// chord midpoint. The IJK distance mode does not apply here: it governs how
// I/J/K words are read, and the radius form has none.
func CenterFromRadius(start, end Point3, radius float64, clockwise bool) (Point3, error) {
	x := end.X.Value - start.X.Value
	y := end.Y.Value - start.Y.Value

	chord := math.Hypot(x, y)
	if chord == 0 {
		return Point3{}, ErrArcRadius
	}

	h2 := 4*radius*radius - x*x - y*y
	if h2 < 0 {
		return Point3{}, ErrArcRadius
	}
	h := -math.Sqrt(h2) / chord

	if !clockwise {
		h = -h
	}

	if radius < 0 {
		h = -h
	}

	offsetX := 0.5 * (x - y*h)
	offsetY := 0.5 * (y + x*h)

	return Point3{
		X: NewAxis(start.X.Value + offsetX),
		Y: NewAxis(start.Y.Value + offsetY),
	}, nil
}
