package gcode

import "math"

// Axis is an optional coordinate value. The zero Axis is unset: the axis
// was not given on the command and must be inherited from the prior
// position.
type Axis struct {
	Value float64
	Valid bool
}

// NewAxis creates a set Axis with the given value.
func NewAxis(value float64) Axis {
	return Axis{Value: value, Valid: true}
}

// Point3 is a position in machine space. Each axis may be individually
// unset.
type Point3 struct {
	X Axis
	Y Axis
	Z Axis
}

// NewPoint3 creates a point with all three axes set.
func NewPoint3(x, y, z float64) Point3 {
	return Point3{X: NewAxis(x), Y: NewAxis(y), Z: NewAxis(z)}
}

// DistanceXY returns the distance between two points on the XY plane.
func (p Point3) DistanceXY(o Point3) float64 {
	return math.Hypot(o.X.Value-p.X.Value, o.Y.Value-p.Y.Value)
}

// UpdatePoint applies the X/Y/Z words of a command to a prior position. In
// absolute mode given axes are assigned, otherwise they are added to the
// prior axis value. Axes without a word keep the prior value unchanged.
func UpdatePoint(words []Word, initial Point3, absolute bool) Point3 {
	x := Coordinate(words, 'X')
	y := Coordinate(words, 'Y')
	z := Coordinate(words, 'Z')
	return updatePoint(initial, x, y, z, absolute)
}

func updatePoint(initial Point3, x, y, z Axis, absolute bool) Point3 {
	point := initial
	if absolute {
		if x.Valid {
			point.X = x
		}
		if y.Valid {
			point.Y = y
		}
		if z.Valid {
			point.Z = z
		}
	} else {
		if x.Valid {
			point.X = NewAxis(point.X.Value + x.Value)
		}
		if y.Valid {
			point.Y = NewAxis(point.Y.Value + y.Value)
		}
		if z.Valid {
			point.Z = NewAxis(point.Z.Value + z.Value)
		}
	}
	return point
}
