package sketch

// Backend builds solids from a section's compiled boundary. The two
// variants differ only in side effects: the materializing backend also
// replays the op-list into a persistent sketch object. Both must produce
// geometrically identical boundaries from the same op-list.
type Backend interface {
	Pad(s *Section, dist float64) (*Feature, error)
	Revolve(s *Section, angleDeg float64, axis Axis) (*Feature, error)
	Sweep(s *Section, path *Section) (*Feature, error)
}

// ImmediateBackend compiles a transient boundary and discards it once the
// solid is built.
type ImmediateBackend struct {
	Kernel Kernel
}

// Pad extrudes the section's face along its plane normal.
func (b *ImmediateBackend) Pad(s *Section, dist float64) (*Feature, error) {
	face, err := CompileFace(b.Kernel, s.Profile())
	if err != nil {
		return nil, err
	}
	solid, err := b.Kernel.Extrude(face, s.Plane().Normal().Mul(dist))
	if err != nil {
		return nil, err
	}
	return newFeature(b.Kernel, solid), nil
}

// Revolve rotates the section's face about a world axis.
func (b *ImmediateBackend) Revolve(s *Section, angleDeg float64, axis Axis) (*Feature, error) {
	face, err := CompileFace(b.Kernel, s.Profile())
	if err != nil {
		return nil, err
	}
	solid, err := b.Kernel.Revolve(face, axis, angleDeg)
	if err != nil {
		return nil, err
	}
	return newFeature(b.Kernel, solid), nil
}

// Sweep extrudes the section's face along another section's open path,
// orienting the cross-section at the path start.
func (b *ImmediateBackend) Sweep(s *Section, path *Section) (*Feature, error) {
	face, err := CompileFace(b.Kernel, s.Profile())
	if err != nil {
		return nil, err
	}
	wire, err := compileWire(b.Kernel, path.openOps())
	if err != nil {
		return nil, err
	}
	orient, err := sweepOrientation(wire)
	if err != nil {
		return nil, err
	}
	solid, err := b.Kernel.Sweep(face, wire, orient)
	if err != nil {
		return nil, err
	}
	return newFeature(b.Kernel, solid), nil
}

// MaterializingBackend behaves like ImmediateBackend and additionally
// replays the section's op-lists into a persistent sketch object with the
// section's placement. Replay is best-effort: a failure is logged and the
// immediate build proceeds, so the solid result is unaffected.
type MaterializingBackend struct {
	Kernel Kernel

	// LastSketch holds the most recently materialized sketch, for
	// inspection. Nil when the last replay failed.
	LastSketch Sketch
}

// Pad materializes the sketch, then pads via the immediate build.
func (b *MaterializingBackend) Pad(s *Section, dist float64) (*Feature, error) {
	b.materialize(s, s.Name())
	return (&ImmediateBackend{Kernel: b.Kernel}).Pad(s, dist)
}

// Revolve materializes the sketch, then revolves via the immediate build.
func (b *MaterializingBackend) Revolve(s *Section, angleDeg float64, axis Axis) (*Feature, error) {
	b.materialize(s, s.Name())
	return (&ImmediateBackend{Kernel: b.Kernel}).Revolve(s, angleDeg, axis)
}

// Sweep materializes both the profile and the path sketches, then sweeps
// via the immediate build.
func (b *MaterializingBackend) Sweep(s *Section, path *Section) (*Feature, error) {
	b.materialize(s, s.Name())
	name := path.Name()
	if name == "" || name == "Sketch" {
		name = "Path"
	}
	b.materialize(path, name)
	return (&ImmediateBackend{Kernel: b.Kernel}).Sweep(s, path)
}

// materialize replays the section's paths into a kernel sketch object.
// Errors are reported through the package logger and never propagated.
func (b *MaterializingBackend) materialize(s *Section, name string) {
	sk, err := replaySketch(b.Kernel, s, name)
	if err != nil {
		Logger().Warn("sketch materialization failed", "section", name, "error", err)
		b.LastSketch = nil
		return
	}
	b.LastSketch = sk
}

// replaySketch builds the persistent sketch: outer path first (or the
// in-progress path when nothing is closed yet), then each hole.
func replaySketch(k Kernel, s *Section, name string) (Sketch, error) {
	sk, err := k.NewSketch(name, s.Placement(), s.visible)
	if err != nil {
		return nil, err
	}
	if err := replayOps(sk, s.openOps()); err != nil {
		return nil, err
	}
	for _, hole := range s.Profile().Holes() {
		if err := replayOps(sk, hole.Ops()); err != nil {
			return nil, err
		}
	}
	return sk, nil
}

func replayOps(sk Sketch, ops []PathOp) error {
	for _, op := range ops {
		switch o := op.(type) {
		case LineTo:
			if err := sk.AddLine(o.From, o.To); err != nil {
				return err
			}
		case ArcTo:
			if err := sk.AddArc(o.From, o.Midpoint(), o.To); err != nil {
				return err
			}
		}
	}
	return nil
}
