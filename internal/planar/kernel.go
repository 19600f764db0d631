// Package planar is a pure-Go planar geometry kernel implementing the
// sketch.Kernel capability set. It backs the test suite and the CLI; a
// production build would point the same interface at a full B-rep kernel.
//
// Faces carry exact line+arc areas (Green's theorem with circular-segment
// terms); solids are volume records derived from their generating face and
// operation, with sweep volumes approximated as area times path length.
package planar

import (
	"errors"
	"fmt"
	"math"

	"github.com/gocad/sketch"
)

// connectTol is the maximum gap between consecutive wire edges.
const connectTol = 1e-6

// ErrOpenWire is returned when a face is requested from an unclosed wire.
var ErrOpenWire = errors.New("planar: open wire cannot bound a face")

// ErrHoleOutsideFace is returned when a hole is not contained in the face.
var ErrHoleOutsideFace = errors.New("planar: hole not contained in face")

// Kernel implements sketch.Kernel on plain 2D geometry.
type Kernel struct {
	sketches map[string]*SketchObject
}

// New creates an empty kernel.
func New() *Kernel {
	return &Kernel{sketches: make(map[string]*SketchObject)}
}

type edgeKind int

const (
	lineEdge edgeKind = iota
	arcEdge
)

// Edge is a planar line segment or circular arc.
type Edge struct {
	kind   edgeKind
	p0, p1 sketch.Point

	// Arc only.
	center sketch.Point
	radius float64
	sweep  float64 // signed radians, positive counter-clockwise
}

// StartPoint returns the edge's start.
func (e *Edge) StartPoint() sketch.Point { return e.p0 }

// EndPoint returns the edge's end.
func (e *Edge) EndPoint() sketch.Point { return e.p1 }

// IsArc reports whether the edge is a circular arc.
func (e *Edge) IsArc() bool { return e.kind == arcEdge }

// TangentAtStart returns the unit tangent at the edge's start point.
func (e *Edge) TangentAtStart() (sketch.Point, error) {
	if e.kind == lineEdge {
		t := e.p1.Sub(e.p0)
		if t.Length() == 0 {
			return sketch.Point{}, errors.New("planar: zero-length edge has no tangent")
		}
		return t.Normalize(), nil
	}
	radial := e.p0.Sub(e.center).Normalize()
	if e.sweep >= 0 {
		return sketch.Pt(-radial.Y, radial.X), nil
	}
	return sketch.Pt(radial.Y, -radial.X), nil
}

// Length returns the edge's arc length.
func (e *Edge) Length() float64 {
	if e.kind == lineEdge {
		return e.p0.Distance(e.p1)
	}
	return e.radius * math.Abs(e.sweep)
}

// MakeLine builds a straight edge.
func (k *Kernel) MakeLine(p0, p1 sketch.Point) (sketch.Edge, error) {
	if p0.Distance(p1) == 0 {
		return nil, fmt.Errorf("planar: zero-length line at %v", p0)
	}
	return &Edge{kind: lineEdge, p0: p0, p1: p1}, nil
}

// MakeArc builds a circular arc through three points: start, a point on
// the arc, and end. The middle point disambiguates minor versus major.
func (k *Kernel) MakeArc(p0, pm, p1 sketch.Point) (sketch.Edge, error) {
	c, r, err := circumcircle(p0, pm, p1)
	if err != nil {
		return nil, err
	}
	a0 := p0.AngleAbout(c)
	am := pm.AngleAbout(c)
	a1 := p1.AngleAbout(c)
	full := ccwDelta(a0, a1)
	// If the middle point sits on the counter-clockwise route from start
	// to end, the arc winds counter-clockwise; otherwise it is the
	// clockwise complement.
	sweep := full
	if ccwDelta(a0, am) > full {
		sweep = full - 2*math.Pi
	}
	return &Edge{kind: arcEdge, p0: p0, p1: p1, center: c, radius: r, sweep: sweep}, nil
}

// circumcircle returns the center and radius of the circle through three
// points, or an error when they are (nearly) collinear.
func circumcircle(a, b, c sketch.Point) (sketch.Point, float64, error) {
	ab := b.Sub(a)
	ac := c.Sub(a)
	cross := ab.Cross(ac)
	if math.Abs(cross) < 1e-12*(ab.Length()*ac.Length()+1) {
		return sketch.Point{}, 0, fmt.Errorf("planar: collinear arc points %v %v %v", a, b, c)
	}
	d := 2 * cross
	abLen2 := ab.Dot(ab)
	acLen2 := ac.Dot(ac)
	ux := (ac.Y*abLen2 - ab.Y*acLen2) / d
	uy := (ab.X*acLen2 - ac.X*abLen2) / d
	center := a.Add(sketch.Pt(ux, uy))
	return center, center.Distance(a), nil
}

// ccwDelta returns the counter-clockwise angle from a0 to a1 in [0, 2pi).
func ccwDelta(a0, a1 float64) float64 {
	d := math.Mod(a1-a0, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	return d
}

// Wire is an ordered sequence of connected edges.
type Wire struct {
	edges []sketch.Edge
}

// Edges returns the wire's edges.
func (w *Wire) Edges() []sketch.Edge { return w.edges }

// Length returns the total arc length of the wire.
func (w *Wire) Length() float64 {
	var sum float64
	for _, e := range w.edges {
		sum += e.(*Edge).Length()
	}
	return sum
}

// Closed reports whether the wire's last edge ends at its first start.
func (w *Wire) Closed() bool {
	if len(w.edges) == 0 {
		return false
	}
	first := w.edges[0].StartPoint()
	last := w.edges[len(w.edges)-1].EndPoint()
	return first.Distance(last) <= connectTol
}

// MakeWire concatenates edges, validating continuity.
func (k *Kernel) MakeWire(edges []sketch.Edge) (sketch.Wire, error) {
	if len(edges) == 0 {
		return nil, errors.New("planar: wire requires at least one edge")
	}
	for i := 1; i < len(edges); i++ {
		gap := edges[i].StartPoint().Distance(edges[i-1].EndPoint())
		if gap > connectTol {
			return nil, fmt.Errorf("planar: disconnected wire: edge %d starts %g away from previous end", i, gap)
		}
	}
	return &Wire{edges: edges}, nil
}
