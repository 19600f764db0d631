package sketch

import (
	"fmt"
	"math"
)

// CircleSpec describes a canned circle path. Give a radius R or a diameter
// D; At is the center in plane coordinates.
type CircleSpec struct {
	R, D float64
	At   Point
	Hole bool
}

// RectSpec describes a canned axis-aligned rectangle path, centered at At.
// H defaults to W.
type RectSpec struct {
	W, H float64
	At   Point
	Hole bool
}

// PolygonSpec describes a canned regular polygon path centered at At.
// Give a side length or a circumscribed diameter D.
type PolygonSpec struct {
	N       int
	Side, D float64
	At      Point
	Hole    bool
}

// Circle adds a full circle to the profile as a closed path of two
// semicircular arcs. Arcs cannot represent a full circle on their own, so
// the canned form is the only way to get one.
func (s *Section) Circle(spec CircleSpec) *Section {
	if s.err != nil {
		return s
	}
	r := spec.R
	if r == 0 {
		r = spec.D / 2
	}
	if r <= 0 {
		return s.fail(fmt.Errorf("sketch: circle requires a positive radius or diameter"))
	}
	c := s.plane.mapPoint(spec.At)
	east := c.Add(Pt(r, 0))
	west := c.Sub(Pt(r, 0))
	ops := []PathOp{
		MoveTo{Point: east},
		ArcTo{Center: c, Radius: r, From: east, To: west, Sweep: math.Pi, Dir: CCW},
		ArcTo{Center: c, Radius: r, From: west, To: east, Sweep: math.Pi, Dir: CCW},
	}
	return s.addShape(ops, spec.Hole)
}

// Rectangle adds an axis-aligned rectangle to the profile.
func (s *Section) Rectangle(spec RectSpec) *Section {
	if s.err != nil {
		return s
	}
	w := spec.W
	h := spec.H
	if h == 0 {
		h = w
	}
	if w <= 0 || h <= 0 {
		return s.fail(fmt.Errorf("sketch: rectangle requires positive dimensions"))
	}
	c := s.plane.mapPoint(spec.At)
	x0, y0 := c.X-w/2, c.Y-h/2
	corners := []Point{
		Pt(x0, y0),
		Pt(x0+w, y0),
		Pt(x0+w, y0+h),
		Pt(x0, y0+h),
	}
	return s.addShape(polygonOps(corners), spec.Hole)
}

// Polygon adds a regular polygon with N sides.
func (s *Section) Polygon(spec PolygonSpec) *Section {
	if s.err != nil {
		return s
	}
	if spec.N < 3 {
		return s.fail(fmt.Errorf("sketch: polygon requires at least 3 sides, got %d", spec.N))
	}
	var r float64
	switch {
	case spec.D != 0:
		r = spec.D / 2
	case spec.Side != 0:
		r = spec.Side / (2 * math.Sin(math.Pi/float64(spec.N)))
	default:
		r = 1
	}
	if r <= 0 {
		return s.fail(fmt.Errorf("sketch: polygon requires a positive size"))
	}
	c := s.plane.mapPoint(spec.At)
	corners := make([]Point, spec.N)
	for i := range corners {
		a := 2 * math.Pi * float64(i) / float64(spec.N)
		corners[i] = c.Add(Pt(r, 0).Rotate(a))
	}
	return s.addShape(polygonOps(corners), spec.Hole)
}

// polygonOps builds a closed op-list visiting the corners in order.
func polygonOps(corners []Point) []PathOp {
	ops := make([]PathOp, 0, len(corners)+1)
	ops = append(ops, MoveTo{Point: corners[0]})
	for i := range corners {
		from := corners[i]
		to := corners[(i+1)%len(corners)]
		ops = append(ops, LineTo{From: from, To: to})
	}
	return ops
}

// addShape finalizes a canned path directly into the profile. A shape added
// while a hole path is open inherits the hole flag, matching the cursor
// builder's behavior.
func (s *Section) addShape(ops []PathOp, hole bool) *Section {
	if s.open && s.hole {
		hole = true
	}
	if err := s.profile.addPath(&Path{ops: ops}, hole); err != nil {
		return s.fail(err)
	}
	return s
}
