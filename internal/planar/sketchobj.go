package planar

import (
	"github.com/google/uuid"

	"github.com/gocad/sketch"
)

// SketchObject is a persistent, editable sketch materialized in the
// kernel's document. Objects are keyed by name: re-materializing under the
// same name clears and repopulates the existing object, mirroring how a
// host document avoids duplicates on rebuild.
type SketchObject struct {
	id        string
	name      string
	placement sketch.Placement
	visible   bool

	lines [][2]sketch.Point
	arcs  [][3]sketch.Point
}

// ID returns the object's stable identifier.
func (s *SketchObject) ID() string { return s.id }

// Name returns the object's document name.
func (s *SketchObject) Name() string { return s.name }

// Placement returns the sketch placement.
func (s *SketchObject) Placement() sketch.Placement { return s.placement }

// Visible reports whether the sketch is shown in the document tree.
func (s *SketchObject) Visible() bool { return s.visible }

// Lines returns the replayed line segments.
func (s *SketchObject) Lines() [][2]sketch.Point { return s.lines }

// Arcs returns the replayed three-point arcs.
func (s *SketchObject) Arcs() [][3]sketch.Point { return s.arcs }

// AddLine appends a line segment to the sketch.
func (s *SketchObject) AddLine(p0, p1 sketch.Point) error {
	if _, err := (&Kernel{}).MakeLine(p0, p1); err != nil {
		return err
	}
	s.lines = append(s.lines, [2]sketch.Point{p0, p1})
	return nil
}

// AddArc appends a three-point arc to the sketch.
func (s *SketchObject) AddArc(p0, pm, p1 sketch.Point) error {
	if _, _, err := circumcircle(p0, pm, p1); err != nil {
		return err
	}
	s.arcs = append(s.arcs, [3]sketch.Point{p0, pm, p1})
	return nil
}

// NewSketch creates a sketch object, or resets the existing one with the
// same name.
func (k *Kernel) NewSketch(name string, pl sketch.Placement, visible bool) (sketch.Sketch, error) {
	if sk, ok := k.sketches[name]; ok {
		sk.placement = pl
		sk.visible = visible
		sk.lines = nil
		sk.arcs = nil
		return sk, nil
	}
	sk := &SketchObject{
		id:        uuid.NewString(),
		name:      name,
		placement: pl,
		visible:   visible,
	}
	k.sketches[name] = sk
	return sk, nil
}

// SketchByName returns a materialized sketch, or nil.
func (k *Kernel) SketchByName(name string) *SketchObject {
	return k.sketches[name]
}

// SketchCount returns the number of materialized sketches.
func (k *Kernel) SketchCount() int { return len(k.sketches) }
