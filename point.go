package sketch

import "math"

// Point represents a 2D point or vector in a profile's local plane.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// XY returns a pointer to a Point, for optional fields in specs.
func XY(x, y float64) *Point {
	p := Pt(x, y)
	return &p
}

// PolarPt creates a Point from a radius and an angle in degrees.
func PolarPt(r, angleDeg float64) Point {
	a := angleDeg * math.Pi / 180
	return Point{X: r * math.Cos(a), Y: r * math.Sin(a)}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Normalize returns a unit vector in the same direction.
func (p Point) Normalize() Point {
	length := p.Length()
	if length == 0 {
		return Point{X: 0, Y: 0}
	}
	return Point{X: p.X / length, Y: p.Y / length}
}

// Angle returns the angle of the vector from the positive X axis,
// in radians in (-pi, pi].
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// AngleAbout returns the angle of p as seen from center c.
func (p Point) AngleAbout(c Point) float64 {
	return p.Sub(c).Angle()
}

// Rotate returns the point rotated by angle radians around the origin.
func (p Point) Rotate(angle float64) Point {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// RotateAbout returns the point rotated by angle radians around center c.
func (p Point) RotateAbout(c Point, angle float64) Point {
	return p.Sub(c).Rotate(angle).Add(c)
}

// Vec3 is a 3D vector, used for placements and extrusion directions handed
// to the geometry kernel.
type Vec3 struct {
	X, Y, Z float64
}

// Mul returns the vector scaled by a scalar.
func (v Vec3) Mul(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Length returns the length of the vector.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}
