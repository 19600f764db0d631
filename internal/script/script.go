// Package script executes declarative YAML part scripts against the
// profile builder. A script names a working plane, a parameter set, a
// profile op sequence and an optional 3D operation; numbers anywhere in
// the geometry may be "="-prefixed expressions over the parameters.
package script

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/gocad/sketch"
	"github.com/gocad/sketch/internal/config"
	"github.com/gocad/sketch/internal/planar"
)

// Num is a YAML scalar that resolves to a float: a number, a numeric
// string, or an "=" expression over the script parameters.
type Num struct {
	raw any
}

// UnmarshalYAML captures the raw scalar.
func (n *Num) UnmarshalYAML(b []byte) error {
	return yaml.Unmarshal(b, &n.raw)
}

// Resolve evaluates the scalar against the parameter set.
func (n *Num) Resolve(p config.Params) (float64, error) {
	return p.Value(n.raw)
}

// Pair is a 2D point whose components are Nums.
type Pair [2]Num

// Resolve evaluates both components.
func (pr *Pair) Resolve(p config.Params) (sketch.Point, error) {
	x, err := pr[0].Resolve(p)
	if err != nil {
		return sketch.Point{}, err
	}
	y, err := pr[1].Resolve(p)
	if err != nil {
		return sketch.Point{}, err
	}
	return sketch.Pt(x, y), nil
}

// Script is a parsed part script.
type Script struct {
	Name        string        `yaml:"name"`
	Plane       string        `yaml:"plane"`
	At          [3]float64    `yaml:"at"`
	Materialize bool          `yaml:"materialize"`
	Params      config.Params `yaml:"params"`
	Profile     []Step        `yaml:"profile"`

	Pad     *Num       `yaml:"pad"`
	Revolve *RevolveOp `yaml:"revolve"`
}

// Step is one profile operation. Exactly one field should be set.
type Step struct {
	From     *Pair      `yaml:"from"`
	FromHole *Pair      `yaml:"fromHole"`
	To       *Pair      `yaml:"to"`
	Go       *GoOp      `yaml:"go"`
	Arc      *ArcOp     `yaml:"arc"`
	Close    bool       `yaml:"close"`
	Circle   *CircleOp  `yaml:"circle"`
	Rect     *RectOp    `yaml:"rectangle"`
	Polygon  *PolygonOp `yaml:"polygon"`
}

// GoOp is a relative line: cartesian (dx, dy) or polar (r, angle degrees).
type GoOp struct {
	Dx    *Num `yaml:"dx"`
	Dy    *Num `yaml:"dy"`
	R     *Num `yaml:"r"`
	Angle *Num `yaml:"angle"`
}

// ArcOp mirrors sketch.ArcSpec.
type ArcOp struct {
	Radius   *Num   `yaml:"radius"`
	Dir      string `yaml:"dir"`
	Sweep    *Num   `yaml:"sweep"`
	Center   *Pair  `yaml:"center"`
	CenterAt *Pair  `yaml:"centerAt"`
	End      *Pair  `yaml:"end"`
	EndAt    *Pair  `yaml:"endAt"`
}

// CircleOp is a canned circle.
type CircleOp struct {
	R    *Num  `yaml:"r"`
	D    *Num  `yaml:"d"`
	At   *Pair `yaml:"at"`
	Hole bool  `yaml:"hole"`
}

// RectOp is a canned rectangle.
type RectOp struct {
	W    *Num  `yaml:"w"`
	H    *Num  `yaml:"h"`
	At   *Pair `yaml:"at"`
	Hole bool  `yaml:"hole"`
}

// PolygonOp is a canned regular polygon.
type PolygonOp struct {
	N    int   `yaml:"n"`
	Side *Num  `yaml:"side"`
	D    *Num  `yaml:"d"`
	At   *Pair `yaml:"at"`
	Hole bool  `yaml:"hole"`
}

// RevolveOp revolves the profile about a world axis.
type RevolveOp struct {
	Angle *Num   `yaml:"angle"`
	Axis  string `yaml:"axis"`
}

// Load parses a script file. The script name defaults to the file stem.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("script: %s: %w", path, err)
	}
	if sc.Name == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if sc.Params == nil {
		sc.Params = config.Params{}
	}
	return &sc, nil
}

// Result is the outcome of running a script.
type Result struct {
	Name    string
	Section *sketch.Section
	Face    sketch.Face
	Solid   sketch.Solid
	Summary planar.Summary
}

// WriteJSON writes the result summary as compact JSON.
func (r *Result) WriteJSON(w io.Writer) error {
	data, err := json.Marshal(r.Summary)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// Run executes the script against a kernel. Project-level params are
// overridden by the script's own params block.
func (sc *Script) Run(k *planar.Kernel, project config.Params) (*Result, error) {
	params := config.Merge(project, sc.Params)

	plane, err := parsePlane(sc.Plane)
	if err != nil {
		return nil, err
	}
	opts := []sketch.SectionOption{
		sketch.WithName(sc.Name),
		sketch.OnPlane(plane),
		sketch.At(sc.At[0], sc.At[1], sc.At[2]),
	}
	var s *sketch.Section
	if sc.Materialize {
		s = sketch.NewSketch(k, opts...)
	} else {
		s = sketch.NewSection(k, opts...)
	}

	for i, step := range sc.Profile {
		if err := applyStep(s, &step, params); err != nil {
			return nil, fmt.Errorf("script: %s: step %d: %w", sc.Name, i+1, err)
		}
		if err := s.Err(); err != nil {
			return nil, fmt.Errorf("script: %s: step %d: %w", sc.Name, i+1, err)
		}
	}

	res := &Result{Name: sc.Name, Section: s}
	switch {
	case sc.Pad != nil:
		dist, err := sc.Pad.Resolve(params)
		if err != nil {
			return nil, fmt.Errorf("script: %s: pad: %w", sc.Name, err)
		}
		feat, err := s.Pad(dist)
		if err != nil {
			return nil, fmt.Errorf("script: %s: pad: %w", sc.Name, err)
		}
		res.Solid = feat.Solid()
	case sc.Revolve != nil:
		angle := 360.0
		if sc.Revolve.Angle != nil {
			angle, err = sc.Revolve.Angle.Resolve(params)
			if err != nil {
				return nil, fmt.Errorf("script: %s: revolve: %w", sc.Name, err)
			}
		}
		axis, err := parseAxis(sc.Revolve.Axis)
		if err != nil {
			return nil, fmt.Errorf("script: %s: revolve: %w", sc.Name, err)
		}
		feat, err := s.Revolve(angle, axis)
		if err != nil {
			return nil, fmt.Errorf("script: %s: revolve: %w", sc.Name, err)
		}
		res.Solid = feat.Solid()
	}

	face, err := s.Face()
	if err != nil {
		if res.Solid == nil {
			return nil, fmt.Errorf("script: %s: %w", sc.Name, err)
		}
	} else {
		res.Face = face
	}
	res.Summary = planar.Summarize(res.Face, res.Solid)
	return res, nil
}

func applyStep(s *sketch.Section, step *Step, params config.Params) error {
	switch {
	case step.From != nil:
		p, err := step.From.Resolve(params)
		if err != nil {
			return err
		}
		s.From(p.X, p.Y)
	case step.FromHole != nil:
		p, err := step.FromHole.Resolve(params)
		if err != nil {
			return err
		}
		s.FromHole(p.X, p.Y)
	case step.To != nil:
		p, err := step.To.Resolve(params)
		if err != nil {
			return err
		}
		s.To(p.X, p.Y)
	case step.Go != nil:
		return applyGo(s, step.Go, params)
	case step.Arc != nil:
		return applyArc(s, step.Arc, params)
	case step.Close:
		s.Close()
	case step.Circle != nil:
		return applyCircle(s, step.Circle, params)
	case step.Rect != nil:
		return applyRect(s, step.Rect, params)
	case step.Polygon != nil:
		return applyPolygon(s, step.Polygon, params)
	default:
		return fmt.Errorf("empty step")
	}
	return nil
}

func applyGo(s *sketch.Section, op *GoOp, params config.Params) error {
	if op.R != nil && op.Angle != nil {
		r, err := op.R.Resolve(params)
		if err != nil {
			return err
		}
		a, err := op.Angle.Resolve(params)
		if err != nil {
			return err
		}
		s.GoPolar(r, a)
		return nil
	}
	var dx, dy float64
	var err error
	if op.Dx != nil {
		if dx, err = op.Dx.Resolve(params); err != nil {
			return err
		}
	}
	if op.Dy != nil {
		if dy, err = op.Dy.Resolve(params); err != nil {
			return err
		}
	}
	s.Go(dx, dy)
	return nil
}

func applyArc(s *sketch.Section, op *ArcOp, params config.Params) error {
	var spec sketch.ArcSpec
	var err error
	if op.Radius != nil {
		if spec.Radius, err = op.Radius.Resolve(params); err != nil {
			return err
		}
	}
	if op.Sweep != nil {
		if spec.Sweep, err = op.Sweep.Resolve(params); err != nil {
			return err
		}
	}
	switch strings.ToLower(op.Dir) {
	case "", "ccw":
		spec.Dir = sketch.CCW
	case "cw":
		spec.Dir = sketch.CW
	default:
		return fmt.Errorf("arc dir must be ccw or cw, got %q", op.Dir)
	}
	if spec.Center, err = resolveOpt(op.Center, params); err != nil {
		return err
	}
	if spec.CenterAt, err = resolveOpt(op.CenterAt, params); err != nil {
		return err
	}
	if spec.End, err = resolveOpt(op.End, params); err != nil {
		return err
	}
	if spec.EndAt, err = resolveOpt(op.EndAt, params); err != nil {
		return err
	}
	s.Arc(spec)
	return nil
}

func applyCircle(s *sketch.Section, op *CircleOp, params config.Params) error {
	spec := sketch.CircleSpec{Hole: op.Hole}
	var err error
	if op.R != nil {
		if spec.R, err = op.R.Resolve(params); err != nil {
			return err
		}
	}
	if op.D != nil {
		if spec.D, err = op.D.Resolve(params); err != nil {
			return err
		}
	}
	if op.At != nil {
		if spec.At, err = op.At.Resolve(params); err != nil {
			return err
		}
	}
	s.Circle(spec)
	return nil
}

func applyRect(s *sketch.Section, op *RectOp, params config.Params) error {
	spec := sketch.RectSpec{Hole: op.Hole}
	var err error
	if op.W != nil {
		if spec.W, err = op.W.Resolve(params); err != nil {
			return err
		}
	}
	if op.H != nil {
		if spec.H, err = op.H.Resolve(params); err != nil {
			return err
		}
	}
	if op.At != nil {
		if spec.At, err = op.At.Resolve(params); err != nil {
			return err
		}
	}
	s.Rectangle(spec)
	return nil
}

func applyPolygon(s *sketch.Section, op *PolygonOp, params config.Params) error {
	spec := sketch.PolygonSpec{N: op.N, Hole: op.Hole}
	var err error
	if op.Side != nil {
		if spec.Side, err = op.Side.Resolve(params); err != nil {
			return err
		}
	}
	if op.D != nil {
		if spec.D, err = op.D.Resolve(params); err != nil {
			return err
		}
	}
	if op.At != nil {
		if spec.At, err = op.At.Resolve(params); err != nil {
			return err
		}
	}
	s.Polygon(spec)
	return nil
}

func resolveOpt(pr *Pair, params config.Params) (*sketch.Point, error) {
	if pr == nil {
		return nil, nil
	}
	p, err := pr.Resolve(params)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func parsePlane(s string) (sketch.Plane, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "XY":
		return sketch.PlaneXY, nil
	case "XZ":
		return sketch.PlaneXZ, nil
	case "YZ":
		return sketch.PlaneYZ, nil
	}
	return sketch.PlaneXY, fmt.Errorf("script: unknown plane %q", s)
}

func parseAxis(s string) (sketch.Axis, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return sketch.AxisX, nil
	case "", "Y":
		return sketch.AxisY, nil
	case "Z":
		return sketch.AxisZ, nil
	}
	return sketch.AxisY, fmt.Errorf("script: axis must be X, Y or Z, got %q", s)
}
