package sketch

// Section accumulates 2D profile operations (lines and arcs) through a
// cursor-based builder and hands the result to a backend for 3D
// construction. It is single-owner mutable state scoped to one build: do
// not share a Section across concurrent builds.
//
// The cursor is a small state machine: Idle (no path in progress) until
// From, then Open while ops accumulate, back to Idle on Close. Calling an
// op out of sequence is an input error.
//
// All path methods return the Section for chaining. The first error latches
// and turns subsequent calls into no-ops; it resurfaces from Err and from
// the 3D operations.
type Section struct {
	name    string
	plane   Plane
	origin  Vec3
	visible bool
	kernel  Kernel
	backend Backend

	profile Profile

	open  bool
	hole  bool
	cur   Point
	first Point
	ops   []PathOp

	err error
}

// SectionOption configures a Section during creation.
type SectionOption func(*Section)

// WithName labels the section; materialized sketch objects inherit it.
func WithName(name string) SectionOption {
	return func(s *Section) { s.name = name }
}

// OnPlane selects the working plane (PlaneXY by default).
func OnPlane(pl Plane) SectionOption {
	return func(s *Section) { s.plane = pl }
}

// At offsets the section's plane origin in world coordinates.
func At(x, y, z float64) SectionOption {
	return func(s *Section) { s.origin = Vec3{X: x, Y: y, Z: z} }
}

// Hidden marks a materialized sketch as not visible in the host document.
func Hidden() SectionOption {
	return func(s *Section) { s.visible = false }
}

// WithBackend injects a custom backend, overriding the constructor default.
func WithBackend(b Backend) SectionOption {
	return func(s *Section) { s.backend = b }
}

// NewSection creates a section on the immediate backend: boundaries are
// built transiently and only the solid result is kept.
func NewSection(k Kernel, opts ...SectionOption) *Section {
	s := &Section{name: "Sketch", kernel: k, visible: true}
	for _, opt := range opts {
		opt(s)
	}
	if s.backend == nil {
		s.backend = &ImmediateBackend{Kernel: k}
	}
	return s
}

// NewSketch creates a section on the materializing backend: in addition to
// the immediate build, the op-list is replayed into a persistent, editable
// sketch object in the host document.
func NewSketch(k Kernel, opts ...SectionOption) *Section {
	s := &Section{name: "Sketch", kernel: k, visible: true}
	for _, opt := range opts {
		opt(s)
	}
	if s.backend == nil {
		s.backend = &MaterializingBackend{Kernel: k}
	}
	return s
}

// Name returns the section's label.
func (s *Section) Name() string { return s.name }

// Plane returns the section's working plane.
func (s *Section) Plane() Plane { return s.plane }

// Placement returns the section's plane placement in the world.
func (s *Section) Placement() Placement {
	return Placement{Plane: s.plane, Origin: s.origin}
}

// Profile returns the profile accumulated so far.
func (s *Section) Profile() *Profile { return &s.profile }

// Err returns the first error recorded by a builder call, or nil.
func (s *Section) Err() error { return s.err }

func (s *Section) fail(err error) *Section {
	if s.err == nil {
		s.err = err
	}
	return s
}

// From starts a new outer path at (x, y).
func (s *Section) From(x, y float64) *Section {
	return s.from(x, y, false)
}

// FromHole starts a new hole path at (x, y).
func (s *Section) FromHole(x, y float64) *Section {
	return s.from(x, y, true)
}

func (s *Section) from(x, y float64, hole bool) *Section {
	if s.err != nil {
		return s
	}
	if s.open {
		return s.fail(ErrPathOpen)
	}
	mx, my := s.plane.mapXY(x, y)
	p := Pt(mx, my)
	s.open = true
	s.hole = hole
	s.cur = p
	s.first = p
	s.ops = []PathOp{MoveTo{Point: p}}
	return s
}

// To draws a straight line from the cursor to (x, y).
func (s *Section) To(x, y float64) *Section {
	if s.err != nil {
		return s
	}
	if !s.open {
		return s.fail(ErrNoActivePath)
	}
	mx, my := s.plane.mapXY(x, y)
	return s.lineTo(Pt(mx, my))
}

// Go draws a relative line: the cursor moves by (dx, dy).
func (s *Section) Go(dx, dy float64) *Section {
	if s.err != nil {
		return s
	}
	if !s.open {
		return s.fail(ErrNoActivePath)
	}
	return s.lineTo(s.cur.Add(s.plane.mapPoint(Pt(dx, dy))))
}

// GoPolar draws a relative line by polar delta: r units at angleDeg.
func (s *Section) GoPolar(r, angleDeg float64) *Section {
	if s.err != nil {
		return s
	}
	if !s.open {
		return s.fail(ErrNoActivePath)
	}
	return s.lineTo(s.cur.Add(s.plane.mapPoint(PolarPt(r, angleDeg))))
}

func (s *Section) lineTo(to Point) *Section {
	s.ops = append(s.ops, LineTo{From: s.cur, To: to})
	s.cur = to
	return s
}

// Arc resolves the partial spec against the current cursor and appends the
// resulting arc. Center/End offsets and absolute points are interpreted in
// the section's plane coordinates.
func (s *Section) Arc(spec ArcSpec) *Section {
	if s.err != nil {
		return s
	}
	if !s.open {
		return s.fail(ErrNoActivePath)
	}
	spec.Center = mapOpt(s.plane, spec.Center)
	spec.CenterAt = mapOpt(s.plane, spec.CenterAt)
	spec.End = mapOpt(s.plane, spec.End)
	spec.EndAt = mapOpt(s.plane, spec.EndAt)
	arc, err := resolveArc(s.cur, spec)
	if err != nil {
		return s.fail(err)
	}
	s.ops = append(s.ops, arc)
	s.cur = arc.To
	return s
}

func mapOpt(pl Plane, p *Point) *Point {
	if p == nil {
		return nil
	}
	m := pl.mapPoint(*p)
	return &m
}

// Close finalizes the in-progress path into the profile, appending a
// closing line first when the cursor is not already on the start point.
// Calling Close with no path in progress is a no-op.
func (s *Section) Close() *Section {
	if s.err != nil || !s.open {
		return s
	}
	if s.cur.Distance(s.first) > closeTol {
		s.lineTo(s.first)
	}
	path := &Path{ops: s.ops}
	hole := s.hole
	s.open = false
	s.hole = false
	s.ops = nil
	if err := s.profile.addPath(path, hole); err != nil {
		return s.fail(err)
	}
	return s
}

// openOps returns the op-list used for open-wire compilation: the finalized
// outer path when present, else the in-progress path.
func (s *Section) openOps() []PathOp {
	if s.profile.outer != nil {
		return s.profile.outer.ops
	}
	return s.ops
}

// Face compiles the profile into a kernel face with holes subtracted.
func (s *Section) Face() (Face, error) {
	if s.err != nil {
		return nil, s.err
	}
	return CompileFace(s.kernel, &s.profile)
}

// OpenWire compiles the outer (or in-progress) path into an open kernel
// wire, ignoring holes. Used for sweep paths and debugging.
func (s *Section) OpenWire() (Wire, error) {
	if s.err != nil {
		return nil, s.err
	}
	return compileWire(s.kernel, s.openOps())
}

// Pad extrudes the profile by dist along the plane normal. A negative dist
// extrudes in the opposite direction.
func (s *Section) Pad(dist float64) (*Feature, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.backend.Pad(s, dist)
}

// Revolve rotates the profile about a world axis through the origin by
// angleDeg degrees.
func (s *Section) Revolve(angleDeg float64, axis Axis) (*Feature, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.backend.Revolve(s, angleDeg, axis)
}

// Sweep extrudes the profile along the open path of another section. The
// cross-section is oriented by the path's first segment: its start point
// and start tangent.
func (s *Section) Sweep(path *Section) (*Feature, error) {
	if s.err != nil {
		return nil, s.err
	}
	if path.err != nil {
		return nil, path.err
	}
	return s.backend.Sweep(s, path)
}
