package sketch

import "fmt"

// Kernel is the geometry kernel capability set this package builds against.
// The kernel owns all curve, surface and solid construction; this package
// only compiles op-lists into kernel calls. Implementations live outside
// the core (the in-repo internal/planar kernel serves tests and the CLI).
type Kernel interface {
	MakeLine(p0, p1 Point) (Edge, error)
	// MakeArc builds a circular arc through three points: start, a point
	// on the arc, and end. The three-point form carries no minor/major
	// ambiguity.
	MakeArc(p0, pm, p1 Point) (Edge, error)
	MakeWire(edges []Edge) (Wire, error)
	MakeFace(w Wire) (Face, error)
	// FaceSubtract removes a hole face from an outer face.
	FaceSubtract(outer, hole Face) (Face, error)

	Extrude(f Face, dir Vec3) (Solid, error)
	Revolve(f Face, axis Axis, angleDeg float64) (Solid, error)
	Sweep(f Face, path Wire, orient SweepOrientation) (Solid, error)

	Fuse(a, b Solid) (Solid, error)
	Cut(a, b Solid) (Solid, error)
	Translate(s Solid, by Vec3) (Solid, error)
	Rotate(s Solid, axis Axis, angleDeg float64) (Solid, error)

	// NewSketch creates (or replaces) a persistent, editable sketch
	// object in the host document.
	NewSketch(name string, pl Placement, visible bool) (Sketch, error)
}

// Edge is a kernel curve segment.
type Edge interface {
	StartPoint() Point
	EndPoint() Point
	// TangentAtStart returns the unit tangent at the edge start. It may
	// fail for curves the kernel cannot evaluate analytically.
	TangentAtStart() (Point, error)
}

// Wire is an ordered sequence of connected edges.
type Wire interface {
	Edges() []Edge
}

// Face is a planar region bounded by a closed wire, possibly with holes.
type Face interface {
	Area() float64
}

// Solid is a kernel solid.
type Solid interface {
	Volume() float64
}

// Sketch is a persistent sketch object materialized in the host document.
type Sketch interface {
	ID() string
	Name() string
	AddLine(p0, p1 Point) error
	AddArc(p0, pm, p1 Point) error
}

// SweepOrientation positions a cross-section at the start of a sweep path.
type SweepOrientation struct {
	Start   Point
	Tangent Point
}

// compileWire converts an op-list into a kernel wire. MoveTo ops carry no
// geometry and are skipped; every LineTo/ArcTo becomes one edge, in order.
func compileWire(k Kernel, ops []PathOp) (Wire, error) {
	var edges []Edge
	for _, op := range ops {
		switch o := op.(type) {
		case MoveTo:
			continue
		case LineTo:
			e, err := k.MakeLine(o.From, o.To)
			if err != nil {
				return nil, fmt.Errorf("sketch: line %v -> %v: %w", o.From, o.To, err)
			}
			edges = append(edges, e)
		case ArcTo:
			e, err := k.MakeArc(o.From, o.Midpoint(), o.To)
			if err != nil {
				return nil, fmt.Errorf("sketch: arc %v -> %v: %w", o.From, o.To, err)
			}
			edges = append(edges, e)
		default:
			return nil, fmt.Errorf("sketch: unknown path op %T", op)
		}
	}
	if len(edges) == 0 {
		return nil, ErrEmptyProfile
	}
	return k.MakeWire(edges)
}

// CompileFace converts a profile into a kernel face: the outer path becomes
// the face boundary and each hole is subtracted independently. A hole whose
// subtraction fails is skipped with a warning so that one malformed hole
// does not abort an otherwise valid build; callers relying on hole presence
// must verify the result.
func CompileFace(k Kernel, p *Profile) (Face, error) {
	if p.Outer() == nil {
		return nil, ErrEmptyProfile
	}
	outerWire, err := compileWire(k, p.Outer().Ops())
	if err != nil {
		return nil, err
	}
	face, err := k.MakeFace(outerWire)
	if err != nil {
		return nil, fmt.Errorf("sketch: outer face: %w", err)
	}
	for i, hole := range p.Holes() {
		cut, err := compileHole(k, face, hole)
		if err != nil {
			Logger().Warn("skipping hole that failed to subtract",
				"hole", i, "error", err)
			continue
		}
		face = cut
	}
	return face, nil
}

func compileHole(k Kernel, face Face, hole *Path) (Face, error) {
	w, err := compileWire(k, hole.Ops())
	if err != nil {
		return nil, err
	}
	hf, err := k.MakeFace(w)
	if err != nil {
		return nil, err
	}
	return k.FaceSubtract(face, hf)
}

// sweepOrientation derives the cross-section placement for a sweep from the
// path wire's first edge: its start point and start tangent. When tangent
// evaluation fails, the tangent is approximated from the edge endpoints.
func sweepOrientation(path Wire) (SweepOrientation, error) {
	edges := path.Edges()
	if len(edges) == 0 {
		return SweepOrientation{}, ErrEmptyProfile
	}
	first := edges[0]
	t, err := first.TangentAtStart()
	if err != nil || t.Length() == 0 {
		t = first.EndPoint().Sub(first.StartPoint())
	}
	if t.Length() == 0 {
		return SweepOrientation{}, fmt.Errorf("sketch: sweep path first edge has no direction")
	}
	return SweepOrientation{Start: first.StartPoint(), Tangent: t.Normalize()}, nil
}
