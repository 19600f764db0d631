package sketch

import "fmt"

// Feature wraps a kernel solid produced by a 3D operation and offers
// fluent placement transforms. Transform errors latch like builder errors.
type Feature struct {
	kernel Kernel
	solid  Solid
	err    error
}

func newFeature(k Kernel, s Solid) *Feature {
	return &Feature{kernel: k, solid: s}
}

// Solid returns the underlying kernel solid.
func (f *Feature) Solid() Solid { return f.solid }

// Err returns the first transform error, or nil.
func (f *Feature) Err() error { return f.err }

// Translate moves the solid by the given world offset.
func (f *Feature) Translate(by Vec3) *Feature {
	if f.err != nil {
		return f
	}
	s, err := f.kernel.Translate(f.solid, by)
	if err != nil {
		f.err = err
		return f
	}
	f.solid = s
	return f
}

// MoveTo places the solid at the given world position (alias for a
// translate from the origin).
func (f *Feature) MoveTo(x, y, z float64) *Feature {
	return f.Translate(Vec3{X: x, Y: y, Z: z})
}

// Rotate rotates the solid about a world axis through the origin.
func (f *Feature) Rotate(axis Axis, angleDeg float64) *Feature {
	if f.err != nil {
		return f
	}
	s, err := f.kernel.Rotate(f.solid, axis, angleDeg)
	if err != nil {
		f.err = err
		return f
	}
	f.solid = s
	return f
}

// Part accumulates features into a single solid by fusing and cutting.
// It mirrors the additive/subtractive build style of the scripting layer:
// start with an additive feature, then add or cut further features.
type Part struct {
	kernel Kernel
	base   Solid
}

// NewPart creates an empty part.
func NewPart(k Kernel) *Part {
	return &Part{kernel: k}
}

// Solid returns the current combined solid, or nil for an empty part.
func (p *Part) Solid() Solid { return p.base }

// Add fuses a feature into the part. The first added feature becomes the
// base solid.
func (p *Part) Add(f *Feature) error {
	if f.err != nil {
		return f.err
	}
	if p.base == nil {
		p.base = f.solid
		return nil
	}
	fused, err := p.kernel.Fuse(p.base, f.solid)
	if err != nil {
		return err
	}
	p.base = fused
	return nil
}

// Cut subtracts a feature from the part. Cutting from an empty part is an
// error: start with an additive feature.
func (p *Part) Cut(f *Feature) error {
	if f.err != nil {
		return f.err
	}
	if p.base == nil {
		return fmt.Errorf("sketch: no base solid yet; add a feature before Cut")
	}
	cut, err := p.kernel.Cut(p.base, f.solid)
	if err != nil {
		return err
	}
	p.base = cut
	return nil
}
