package planar

import (
	"math"

	"github.com/gocad/sketch"
)

// Face is a planar region bounded by a closed outer wire minus hole wires.
type Face struct {
	outer *Wire
	holes []*Wire
}

// MakeFace builds a face from a closed wire.
func (k *Kernel) MakeFace(w sketch.Wire) (sketch.Face, error) {
	wire := w.(*Wire)
	if !wire.Closed() {
		return nil, ErrOpenWire
	}
	return &Face{outer: wire}, nil
}

// FaceSubtract removes a hole from a face. The hole must lie fully inside
// the outer boundary; otherwise the subtraction fails and the caller
// decides whether to skip it.
func (k *Kernel) FaceSubtract(outer, hole sketch.Face) (sketch.Face, error) {
	of := outer.(*Face)
	hf := hole.(*Face)
	poly := flattenWire(of.outer)
	for _, p := range flattenWire(hf.outer) {
		if !pointInPolygon(p, poly) {
			return nil, ErrHoleOutsideFace
		}
	}
	holes := make([]*Wire, len(of.holes), len(of.holes)+1)
	copy(holes, of.holes)
	return &Face{outer: of.outer, holes: append(holes, hf.outer)}, nil
}

// Area returns the face area: the outer region minus all holes.
func (f *Face) Area() float64 {
	area := math.Abs(signedArea(f.outer))
	for _, h := range f.holes {
		area -= math.Abs(signedArea(h))
	}
	return area
}

// EdgeCounts returns the number of line and arc edges over the outer
// boundary and all holes.
func (f *Face) EdgeCounts() (lines, arcs int) {
	count := func(w *Wire) {
		for _, e := range w.edges {
			if e.(*Edge).IsArc() {
				arcs++
			} else {
				lines++
			}
		}
	}
	count(f.outer)
	for _, h := range f.holes {
		count(h)
	}
	return lines, arcs
}

// Holes returns the number of holes subtracted from the face.
func (f *Face) Holes() int { return len(f.holes) }

// BBox returns the face's bounding box over flattened boundaries.
func (f *Face) BBox() (min, max sketch.Point) {
	min = sketch.Pt(math.Inf(1), math.Inf(1))
	max = sketch.Pt(math.Inf(-1), math.Inf(-1))
	for _, p := range flattenWire(f.outer) {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}

// Centroid returns the area centroid of the face (holes subtracted).
func (f *Face) Centroid() sketch.Point {
	cx, cy, a := polygonCentroid(flattenWire(f.outer))
	sx, sy, area := cx*a, cy*a, a
	for _, h := range f.holes {
		hx, hy, ha := polygonCentroid(flattenWire(h))
		sx -= hx * ha
		sy -= hy * ha
		area -= ha
	}
	if area == 0 {
		return sketch.Point{}
	}
	return sketch.Pt(sx/area, sy/area)
}

// signedArea computes the exact signed area enclosed by a closed wire:
// the shoelace sum over edge endpoints plus a circular-segment term per
// arc, signed by the arc's sweep.
func signedArea(w *Wire) float64 {
	var area float64
	for _, se := range w.edges {
		e := se.(*Edge)
		area += e.p0.Cross(e.p1) / 2
		if e.kind == arcEdge {
			area += e.radius * e.radius / 2 * (e.sweep - math.Sin(e.sweep))
		}
	}
	return area
}

// arcFlattenStep bounds the angular step when sampling arcs.
const arcFlattenStep = math.Pi / 32

// flattenWire samples a wire into a point sequence, subdividing arcs.
func flattenWire(w *Wire) []sketch.Point {
	var pts []sketch.Point
	for _, se := range w.edges {
		e := se.(*Edge)
		pts = append(pts, e.p0)
		if e.kind != arcEdge {
			continue
		}
		n := int(math.Ceil(math.Abs(e.sweep) / arcFlattenStep))
		a0 := e.p0.AngleAbout(e.center)
		for i := 1; i < n; i++ {
			a := a0 + e.sweep*float64(i)/float64(n)
			pts = append(pts, e.center.Add(sketch.Pt(e.radius, 0).Rotate(a)))
		}
	}
	return pts
}

// pointInPolygon is an even-odd ray-casting test.
func pointInPolygon(p sketch.Point, poly []sketch.Point) bool {
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

// polygonCentroid returns the centroid and absolute area of a flattened
// closed polygon.
func polygonCentroid(poly []sketch.Point) (cx, cy, area float64) {
	n := len(poly)
	if n < 3 {
		return 0, 0, 0
	}
	var a, sx, sy float64
	for i := 0; i < n; i++ {
		p, q := poly[i], poly[(i+1)%n]
		cross := p.Cross(q)
		a += cross
		sx += (p.X + q.X) * cross
		sy += (p.Y + q.Y) * cross
	}
	a /= 2
	if a == 0 {
		return 0, 0, 0
	}
	cx = sx / (6 * a)
	cy = sy / (6 * a)
	return cx, cy, math.Abs(a)
}
