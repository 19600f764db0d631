package sketch

// closeTol is the Euclidean tolerance used to decide whether a path's end
// already coincides with its start.
const closeTol = 1e-6

// PathOp represents a single operation in a path.
// Ops are immutable once appended.
type PathOp interface {
	isPathOp()
}

// MoveTo starts a path at a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathOp() {}

// LineTo draws a straight segment between two points.
type LineTo struct {
	From, To Point
}

func (LineTo) isPathOp() {}

// ArcTo draws a circular arc. It is fully determined: center, radius, both
// endpoints, the signed sweep in radians (positive counter-clockwise) and
// the direction are all resolved before the op is appended.
type ArcTo struct {
	Center   Point
	Radius   float64
	From, To Point
	Sweep    float64
	Dir      Direction
}

func (ArcTo) isPathOp() {}

// Midpoint returns the point on the arc halfway along its sweep. Together
// with the endpoints it forms the canonical three-point representation
// handed to the kernel.
func (a ArcTo) Midpoint() Point {
	mid := a.From.AngleAbout(a.Center) + a.Sweep/2
	return a.Center.Add(Pt(a.Radius, 0).Rotate(mid))
}

// Path is an ordered op sequence: exactly one leading MoveTo followed by
// zero or more LineTo/ArcTo ops. Each op starts where the previous one
// ended.
type Path struct {
	ops []PathOp
}

// Ops returns the path's operations.
func (p *Path) Ops() []PathOp {
	return p.ops
}

// Start returns the path's starting point (the MoveTo point).
func (p *Path) Start() Point {
	if len(p.ops) == 0 {
		return Point{}
	}
	if m, ok := p.ops[0].(MoveTo); ok {
		return m.Point
	}
	return Point{}
}

// End returns the end point of the last op.
func (p *Path) End() Point {
	for i := len(p.ops) - 1; i >= 0; i-- {
		switch op := p.ops[i].(type) {
		case LineTo:
			return op.To
		case ArcTo:
			return op.To
		case MoveTo:
			return op.Point
		}
	}
	return Point{}
}

// IsClosed reports whether the path's end point coincides with its start.
func (p *Path) IsClosed() bool {
	return len(p.ops) > 1 && p.End().Distance(p.Start()) <= closeTol
}

// Segments returns the number of drawn segments (MoveTo excluded).
func (p *Path) Segments() int {
	n := 0
	for _, op := range p.ops {
		if _, ok := op.(MoveTo); !ok {
			n++
		}
	}
	return n
}

// Profile owns at most one outer path and any number of hole paths.
type Profile struct {
	outer *Path
	holes []*Path
}

// Outer returns the outer path, or nil if none has been closed yet.
func (pr *Profile) Outer() *Path {
	return pr.outer
}

// Holes returns the hole paths.
func (pr *Profile) Holes() []*Path {
	return pr.holes
}

// addPath finalizes a path into the profile. A second outer path is an
// error; holes accumulate freely, before or after the outer path.
func (pr *Profile) addPath(p *Path, hole bool) error {
	if hole {
		pr.holes = append(pr.holes, p)
		return nil
	}
	if pr.outer != nil {
		return ErrDuplicateOuterPath
	}
	pr.outer = p
	return nil
}
