package sketch

import (
	"errors"
	"math"
	"testing"
)

const arcTestEps = 1e-9

func pointsClose(a, b Point, eps float64) bool {
	return a.Distance(b) <= eps
}

func TestResolveArcCenterAndSweep(t *testing.T) {
	tests := []struct {
		name    string
		start   Point
		spec    ArcSpec
		wantEnd Point
		// wantSweep in radians.
		wantSweep float64
		wantDir   Direction
	}{
		{
			name:      "quarter ccw from east",
			start:     Pt(5, 0),
			spec:      ArcSpec{CenterAt: XY(0, 0), Sweep: 90},
			wantEnd:   Pt(0, 5),
			wantSweep: math.Pi / 2,
			wantDir:   CCW,
		},
		{
			name:      "quarter cw from east",
			start:     Pt(5, 0),
			spec:      ArcSpec{CenterAt: XY(0, 0), Sweep: -90},
			wantEnd:   Pt(0, -5),
			wantSweep: -math.Pi / 2,
			wantDir:   CW,
		},
		{
			name:      "relative center",
			start:     Pt(5, 0),
			spec:      ArcSpec{Center: XY(-5, 0), Sweep: 90},
			wantEnd:   Pt(0, 5),
			wantSweep: math.Pi / 2,
			wantDir:   CCW,
		},
		{
			name:      "explicit radius with center",
			start:     Pt(3, 0),
			spec:      ArcSpec{CenterAt: XY(0, 0), Radius: 3, Sweep: 180},
			wantEnd:   Pt(-3, 0),
			wantSweep: math.Pi,
			wantDir:   CCW,
		},
		{
			name:      "270 degree major arc",
			start:     Pt(2, 0),
			spec:      ArcSpec{CenterAt: XY(0, 0), Sweep: 270},
			wantEnd:   Pt(0, -2),
			wantSweep: 3 * math.Pi / 2,
			wantDir:   CCW,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arc, err := resolveArc(tt.start, tt.spec)
			if err != nil {
				t.Fatalf("resolveArc() error = %v", err)
			}
			if !pointsClose(arc.To, tt.wantEnd, arcTestEps) {
				t.Errorf("end = %v, want %v", arc.To, tt.wantEnd)
			}
			if math.Abs(arc.Sweep-tt.wantSweep) > arcTestEps {
				t.Errorf("sweep = %v, want %v", arc.Sweep, tt.wantSweep)
			}
			if arc.Dir != tt.wantDir {
				t.Errorf("dir = %v, want %v", arc.Dir, tt.wantDir)
			}
			if arc.From != tt.start {
				t.Errorf("from = %v, want %v", arc.From, tt.start)
			}
		})
	}
}

func TestResolveArcCenterAndEnd(t *testing.T) {
	// Center plus end: endpoints must sit on the circle and the sweep is
	// derived from the direction.
	arc, err := resolveArc(Pt(5, 0), ArcSpec{CenterAt: XY(0, 0), EndAt: XY(0, 5)})
	if err != nil {
		t.Fatalf("resolveArc() error = %v", err)
	}
	if math.Abs(arc.Radius-5) > arcTestEps {
		t.Errorf("radius = %v, want 5", arc.Radius)
	}
	if math.Abs(arc.Sweep-math.Pi/2) > arcTestEps {
		t.Errorf("sweep = %v, want %v", arc.Sweep, math.Pi/2)
	}

	// Same endpoints, clockwise: the complementary 270 degree sweep.
	arc, err = resolveArc(Pt(5, 0), ArcSpec{CenterAt: XY(0, 0), EndAt: XY(0, 5), Dir: CW})
	if err != nil {
		t.Fatalf("resolveArc(cw) error = %v", err)
	}
	if math.Abs(arc.Sweep+3*math.Pi/2) > arcTestEps {
		t.Errorf("cw sweep = %v, want %v", arc.Sweep, -3*math.Pi/2)
	}
}

func TestResolveArcInputErrors(t *testing.T) {
	tests := []struct {
		name  string
		start Point
		spec  ArcSpec
		want  error
	}{
		{
			name:  "end off circle",
			start: Pt(5, 0),
			spec:  ArcSpec{CenterAt: XY(0, 0), EndAt: XY(0, 6)},
			want:  ErrArcInconsistent,
		},
		{
			name:  "explicit radius excludes start",
			start: Pt(5, 0),
			spec:  ArcSpec{CenterAt: XY(0, 0), Radius: 4, EndAt: XY(0, 4)},
			want:  ErrArcInconsistent,
		},
		{
			name:  "coincident endpoints",
			start: Pt(5, 0),
			spec:  ArcSpec{CenterAt: XY(0, 0), EndAt: XY(5, 0)},
			want:  ErrArcDegenerate,
		},
		{
			name:  "coincident endpoints without center",
			start: Pt(5, 0),
			spec:  ArcSpec{EndAt: XY(5, 0), Radius: 3},
			want:  ErrArcDegenerate,
		},
		{
			name:  "coincident endpoints with sweep",
			start: Pt(5, 0),
			spec:  ArcSpec{CenterAt: XY(0, 0), EndAt: XY(5, 0), Sweep: 90},
			want:  ErrArcDegenerate,
		},
		{
			name:  "full circle sweep",
			start: Pt(5, 0),
			spec:  ArcSpec{CenterAt: XY(0, 0), Sweep: 360},
			want:  ErrArcFullCircle,
		},
		{
			name:  "vanishing sweep",
			start: Pt(5, 0),
			spec:  ArcSpec{CenterAt: XY(0, 0), Sweep: 1e-10},
			want:  ErrArcDegenerate,
		},
		{
			name:  "center without end or sweep",
			start: Pt(5, 0),
			spec:  ArcSpec{CenterAt: XY(0, 0)},
			want:  ErrArcUnderspecified,
		},
		{
			name:  "no center and no end",
			start: Pt(5, 0),
			spec:  ArcSpec{Radius: 3, Sweep: 90},
			want:  ErrArcMissingCenter,
		},
		{
			name:  "no center and no radius",
			start: Pt(0, 0),
			spec:  ArcSpec{EndAt: XY(10, 0)},
			want:  ErrArcUnderspecified,
		},
		{
			name:  "radius smaller than half chord",
			start: Pt(0, 0),
			spec:  ArcSpec{EndAt: XY(10, 0), Radius: 2},
			want:  ErrArcRadiusTooSmall,
		},
		{
			name:  "zero radius with center at start",
			start: Pt(0, 0),
			spec:  ArcSpec{CenterAt: XY(0, 0), Sweep: 90},
			want:  ErrArcRadiusTooSmall,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolveArc(tt.start, tt.spec)
			if !errors.Is(err, tt.want) {
				t.Errorf("resolveArc() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestResolveArcInferredCenter(t *testing.T) {
	// No center: the side is picked so the counter-clockwise minor arc
	// matches the requested direction.
	s := Pt(0, 0)
	e := Pt(10, 0)

	arc, err := resolveArc(s, ArcSpec{EndAt: &e, Radius: 13})
	if err != nil {
		t.Fatalf("resolveArc(ccw) error = %v", err)
	}
	if math.Abs(arc.Center.Distance(s)-13) > arcTestEps ||
		math.Abs(arc.Center.Distance(e)-13) > arcTestEps {
		t.Errorf("center %v not equidistant from endpoints at r=13", arc.Center)
	}
	if arc.Sweep <= 0 || arc.Sweep > math.Pi+arcTestEps {
		t.Errorf("ccw sweep = %v, want minor positive", arc.Sweep)
	}

	cw, err := resolveArc(s, ArcSpec{EndAt: &e, Radius: 13, Dir: CW})
	if err != nil {
		t.Fatalf("resolveArc(cw) error = %v", err)
	}
	if cw.Sweep >= 0 || cw.Sweep < -math.Pi-arcTestEps {
		t.Errorf("cw sweep = %v, want minor negative", cw.Sweep)
	}
	// The two directions must land on mirrored centers.
	if math.Abs(arc.Center.Y+cw.Center.Y) > arcTestEps {
		t.Errorf("centers %v and %v are not mirrored across the chord", arc.Center, cw.Center)
	}

	// A signed sweep overrides Dir when choosing the side.
	neg, err := resolveArc(s, ArcSpec{EndAt: &e, Radius: 13, Sweep: -45.2397})
	if err != nil {
		t.Fatalf("resolveArc(signed sweep) error = %v", err)
	}
	if !pointsClose(neg.Center, cw.Center, arcTestEps) {
		t.Errorf("negative sweep center = %v, want %v", neg.Center, cw.Center)
	}
}

func TestChooseCenterDeterministic(t *testing.T) {
	s := Pt(1.5, -2)
	e := Pt(7, 3)
	r := 6.25
	for _, wantCCW := range []bool{true, false} {
		c1 := chooseCenter(s, e, r, wantCCW)
		c2 := chooseCenter(s, e, r, wantCCW)
		if c1 != c2 {
			t.Errorf("chooseCenter(ccw=%v) not deterministic: %v vs %v", wantCCW, c1, c2)
		}
		if math.Abs(c1.Distance(s)-r) > arcTestEps || math.Abs(c1.Distance(e)-r) > arcTestEps {
			t.Errorf("chooseCenter(ccw=%v) = %v, not at radius %v from both endpoints", wantCCW, c1, r)
		}
	}
	if chooseCenter(s, e, r, true) == chooseCenter(s, e, r, false) {
		t.Error("ccw and cw selected the same center for a non-antipodal chord")
	}
}

func TestResolveArcAntipodal(t *testing.T) {
	// Radius exactly half the chord: both endpoints are diametrically
	// opposite and the sweep is forced to half a turn.
	s := Pt(0, 0)
	e := Pt(10, 0)

	arc, err := resolveArc(s, ArcSpec{EndAt: &e, Radius: 5})
	if err != nil {
		t.Fatalf("resolveArc(ccw) error = %v", err)
	}
	if !pointsClose(arc.Center, Pt(5, 0), arcTestEps) {
		t.Errorf("center = %v, want (5,0)", arc.Center)
	}
	if math.Abs(arc.Sweep-math.Pi) > arcTestEps {
		t.Errorf("ccw sweep = %v, want pi", arc.Sweep)
	}

	cw, err := resolveArc(s, ArcSpec{EndAt: &e, Radius: 5, Dir: CW})
	if err != nil {
		t.Fatalf("resolveArc(cw) error = %v", err)
	}
	if math.Abs(cw.Sweep+math.Pi) > arcTestEps {
		t.Errorf("cw sweep = %v, want -pi", cw.Sweep)
	}
}

func TestOnCircleTolerance(t *testing.T) {
	// Endpoints within the combined relative+absolute tolerance pass.
	r := 1000.0
	if !onCircle(Pt(r+0.05, 0), Pt(0, 0), r) {
		t.Error("point within relative tolerance rejected")
	}
	if onCircle(Pt(r+1, 0), Pt(0, 0), r) {
		t.Error("point well off the circle accepted")
	}
	if !onCircle(Pt(1+5e-5, 0), Pt(0, 0), 1) {
		t.Error("point within absolute tolerance rejected")
	}
}

func TestNormAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
		{2 * math.Pi, 0},
	}
	for _, tt := range tests {
		if got := normAngle(tt.in); math.Abs(got-tt.want) > arcTestEps {
			t.Errorf("normAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
