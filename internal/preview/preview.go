// Package preview rasterizes a compiled profile to a PNG for quick visual
// inspection. It is a debugging aid, not part of the geometry pipeline:
// arcs are flattened and the fill is approximate at the pixel level.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/vector"

	"github.com/gocad/sketch"
)

// flattenStep bounds the angular step when sampling arcs.
const flattenStep = math.Pi / 32

// Render draws the profile's outer path and holes into a square image.
// Holes are traced in reverse so their winding cancels the outer fill.
func Render(p *sketch.Profile, size int) (image.Image, error) {
	if p.Outer() == nil {
		return nil, fmt.Errorf("preview: profile has no outer path")
	}
	if size <= 0 {
		return nil, fmt.Errorf("preview: size must be positive, got %d", size)
	}

	contours := [][]sketch.Point{flattenOps(p.Outer().Ops())}
	for _, h := range p.Holes() {
		contours = append(contours, reversed(flattenOps(h.Ops())))
	}

	min, max := bounds(contours)
	span := math.Max(max.X-min.X, max.Y-min.Y)
	if span == 0 {
		return nil, fmt.Errorf("preview: profile has no extent")
	}
	margin := float64(size) * 0.05
	scale := (float64(size) - 2*margin) / span

	// Flip Y so the profile reads in the usual math orientation.
	toPx := func(p sketch.Point) (float32, float32) {
		x := margin + (p.X-min.X)*scale
		y := float64(size) - margin - (p.Y-min.Y)*scale
		return float32(x), float32(y)
	}

	r := vector.NewRasterizer(size, size)
	for _, c := range contours {
		if len(c) == 0 {
			continue
		}
		x, y := toPx(c[0])
		r.MoveTo(x, y)
		for _, pt := range c[1:] {
			x, y := toPx(pt)
			r.LineTo(x, y)
		}
		r.ClosePath()
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	r.Draw(dst, dst.Bounds(), image.NewUniform(color.Black), image.Point{})
	return dst, nil
}

// WritePNG renders the profile and writes it to path.
func WritePNG(path string, p *sketch.Profile, size int) error {
	img, err := Render(p, size)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// flattenOps samples a path op-list into a point contour.
func flattenOps(ops []sketch.PathOp) []sketch.Point {
	var pts []sketch.Point
	for _, op := range ops {
		switch o := op.(type) {
		case sketch.MoveTo:
			pts = append(pts, o.Point)
		case sketch.LineTo:
			pts = append(pts, o.To)
		case sketch.ArcTo:
			n := int(math.Ceil(math.Abs(o.Sweep) / flattenStep))
			a0 := o.From.AngleAbout(o.Center)
			for i := 1; i <= n; i++ {
				a := a0 + o.Sweep*float64(i)/float64(n)
				pts = append(pts, o.Center.Add(sketch.Pt(o.Radius, 0).Rotate(a)))
			}
		}
	}
	return pts
}

func reversed(pts []sketch.Point) []sketch.Point {
	out := make([]sketch.Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

func bounds(contours [][]sketch.Point) (min, max sketch.Point) {
	min = sketch.Pt(math.Inf(1), math.Inf(1))
	max = sketch.Pt(math.Inf(-1), math.Inf(-1))
	for _, c := range contours {
		for _, p := range c {
			min.X = math.Min(min.X, p.X)
			min.Y = math.Min(min.Y, p.Y)
			max.X = math.Max(max.X, p.X)
			max.Y = math.Max(max.Y, p.Y)
		}
	}
	return min, max
}
