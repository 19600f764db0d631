package sketch

import (
	"fmt"
	"math"
)

// Direction selects the winding of an arc when no signed sweep is given.
type Direction int

const (
	// CCW winds counter-clockwise (positive sweep).
	CCW Direction = iota
	// CW winds clockwise (negative sweep).
	CW
)

// String returns "ccw" or "cw".
func (d Direction) String() string {
	if d == CW {
		return "cw"
	}
	return "ccw"
}

// Tolerances of the arc resolver.
const (
	// arcOnCircleTol is the combined relative+absolute tolerance for
	// validating that an explicit endpoint lies on the circle.
	arcOnCircleTol = 1e-4
	// arcAntipodalTol detects the diametrically-opposite case, where
	// atan2-based sweep normalization is ambiguous.
	arcAntipodalTol = 1e-8
	// arcSweepTol rejects zero sweeps and full circles.
	arcSweepTol = 1e-6
)

// ArcSpec is a partial arc specification. Exactly which fields are required
// depends on the resolution mode:
//
//   - Center (+Radius) + End: endpoint validated against the circle.
//   - Center (+Radius) + Sweep: end inferred by rotating the start.
//   - Radius + End + Dir: center inferred, minor arc on the chosen side.
//   - Radius + End + Sweep: center inferred, sweep sign picks the side.
//
// Center/End are offsets from the current cursor; CenterAt/EndAt are
// absolute. Sweep is in signed degrees, positive counter-clockwise; zero
// means unset. A zero Radius means unset (inferred from the center when
// possible).
type ArcSpec struct {
	Radius float64
	Dir    Direction
	Sweep  float64

	Center   *Point // relative to the arc's start
	CenterAt *Point // absolute
	End      *Point // relative to the arc's start
	EndAt    *Point // absolute

	// Tangent is reserved for tangency-based inference. Accepted and
	// currently ignored.
	Tangent bool
}

// resolveArc turns a partial spec into a fully determined arc starting at
// start, or fails with one of the Arc* input errors.
func resolveArc(start Point, spec ArcSpec) (ArcTo, error) {
	center, haveCenter := resolveAnchor(start, spec.CenterAt, spec.Center)
	end, haveEnd := resolveAnchor(start, spec.EndAt, spec.End)
	radius := spec.Radius
	haveSweep := spec.Sweep != 0

	// Coincident endpoints are degenerate no matter how the rest of the
	// spec reads.
	if haveEnd && start.Distance(end) <= arcOnCircleTol {
		return ArcTo{}, fmt.Errorf("%w: start %v equals end", ErrArcDegenerate, start)
	}

	if haveCenter {
		if radius == 0 {
			radius = start.Distance(center)
		}
		if radius <= 0 {
			return ArcTo{}, fmt.Errorf("%w: radius %v", ErrArcRadiusTooSmall, radius)
		}
		if !haveEnd {
			if !haveSweep {
				return ArcTo{}, fmt.Errorf("%w (center given)", ErrArcUnderspecified)
			}
			// Rotate the start about the center by the sweep.
			a := start.AngleAbout(center) + spec.Sweep*math.Pi/180
			end = center.Add(Pt(radius, 0).Rotate(a))
		} else {
			if !onCircle(start, center, radius) || !onCircle(end, center, radius) {
				return ArcTo{}, fmt.Errorf("%w: center=%v radius=%v start=%v end=%v",
					ErrArcInconsistent, center, radius, start, end)
			}
		}
	} else {
		if !haveEnd {
			return ArcTo{}, fmt.Errorf("%w (no center)", ErrArcMissingCenter)
		}
		if radius == 0 {
			return ArcTo{}, fmt.Errorf("%w: radius required when center is omitted", ErrArcUnderspecified)
		}
		chord := end.Distance(start)
		if radius < chord/2-arcAntipodalTol {
			return ArcTo{}, fmt.Errorf("%w: radius %v, chord %v", ErrArcRadiusTooSmall, radius, chord)
		}
		wantCCW := spec.Dir == CCW
		if haveSweep {
			wantCCW = spec.Sweep > 0
		}
		center = chooseCenter(start, end, radius, wantCCW)
	}

	var sweep float64
	if haveSweep {
		sweep = spec.Sweep * math.Pi / 180
	} else {
		sweep = sweepBetween(start, end, center, spec.Dir)
	}
	if math.Abs(sweep) < arcSweepTol {
		return ArcTo{}, fmt.Errorf("%w: sweep %v", ErrArcDegenerate, sweep)
	}
	if math.Abs(math.Abs(sweep)-2*math.Pi) < arcSweepTol {
		return ArcTo{}, ErrArcFullCircle
	}

	dir := CCW
	if sweep < 0 {
		dir = CW
	}
	return ArcTo{
		Center: center,
		Radius: radius,
		From:   start,
		To:     end,
		Sweep:  sweep,
		Dir:    dir,
	}, nil
}

// resolveAnchor maps an absolute/relative optional point pair into an
// absolute point. Absolute wins when both are set.
func resolveAnchor(start Point, abs, rel *Point) (Point, bool) {
	switch {
	case abs != nil:
		return *abs, true
	case rel != nil:
		return start.Add(*rel), true
	}
	return Point{}, false
}

// onCircle reports whether p lies on the circle around c with radius r,
// within combined relative and absolute tolerance.
func onCircle(p, c Point, r float64) bool {
	d := p.Distance(c)
	tol := arcOnCircleTol * math.Max(1, math.Max(math.Abs(d), math.Abs(r)))
	return math.Abs(d-r) <= tol
}

// chooseCenter picks the arc center among the two candidates equidistant
// from s and e at radius r. The candidate whose counter-clockwise s->e
// sweep is minor (<= pi) matches wantCCW; the other yields the complement.
// Pure function: same inputs always give the same center.
func chooseCenter(s, e Point, r float64, wantCCW bool) Point {
	chord := e.Sub(s)
	d := chord.Length()
	m := s.Add(e).Mul(0.5)
	h := math.Sqrt(math.Max(r*r-(d/2)*(d/2), 0))
	n := Pt(-chord.Y/d, chord.X/d)

	c1 := m.Add(n.Mul(h))
	c2 := m.Sub(n.Mul(h))
	if (ccwMinor(s, e, c1)) == wantCCW {
		return c1
	}
	return c2
}

// ccwMinor reports whether the counter-clockwise sweep from s to e about c
// is the minor arc (<= pi).
func ccwMinor(s, e, c Point) bool {
	delta := normAngle(e.AngleAbout(c)) - normAngle(s.AngleAbout(c))
	if delta < 0 {
		delta += 2 * math.Pi
	}
	return delta <= math.Pi
}

// sweepBetween computes the signed sweep from s to e about c for the given
// direction: positive in (0, 2pi) for CCW, negative in (-2pi, 0) for CW.
// The diametrically-opposite case is forced to +/-pi, since normalization
// at exactly 180 degrees is ambiguous.
func sweepBetween(s, e, c Point, dir Direction) float64 {
	a0 := normAngle(s.AngleAbout(c))
	a1 := normAngle(e.AngleAbout(c))
	delta := a1 - a0
	if dir == CCW {
		if delta < 0 {
			delta += 2 * math.Pi
		}
	} else {
		if delta > 0 {
			delta -= 2 * math.Pi
		}
	}
	diff := math.Abs(a1 - a0)
	diff = math.Min(diff, 2*math.Pi-diff)
	if math.Abs(diff-math.Pi) < arcAntipodalTol {
		if dir == CCW {
			return math.Pi
		}
		return -math.Pi
	}
	return delta
}

// normAngle folds an angle into [0, 2pi).
func normAngle(a float64) float64 {
	for a < 0 {
		a += 2 * math.Pi
	}
	for a >= 2*math.Pi {
		a -= 2 * math.Pi
	}
	return a
}
