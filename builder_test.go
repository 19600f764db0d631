package sketch

import (
	"errors"
	"math"
	"testing"
)

func TestBuilderSequencingErrors(t *testing.T) {
	tests := []struct {
		name  string
		build func(s *Section)
		want  error
	}{
		{
			name:  "To before From",
			build: func(s *Section) { s.To(1, 1) },
			want:  ErrNoActivePath,
		},
		{
			name:  "Go before From",
			build: func(s *Section) { s.Go(1, 0) },
			want:  ErrNoActivePath,
		},
		{
			name:  "GoPolar before From",
			build: func(s *Section) { s.GoPolar(1, 45) },
			want:  ErrNoActivePath,
		},
		{
			name:  "Arc before From",
			build: func(s *Section) { s.Arc(ArcSpec{CenterAt: XY(0, 0), Sweep: 90}) },
			want:  ErrNoActivePath,
		},
		{
			name:  "From while open",
			build: func(s *Section) { s.From(0, 0).From(1, 1) },
			want:  ErrPathOpen,
		},
		{
			name:  "FromHole while open",
			build: func(s *Section) { s.From(0, 0).FromHole(1, 1) },
			want:  ErrPathOpen,
		},
		{
			name: "second outer path",
			build: func(s *Section) {
				s.From(0, 0).To(1, 0).To(0, 1).Close()
				s.From(5, 5).To(6, 5).To(5, 6).Close()
			},
			want: ErrDuplicateOuterPath,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSection(nil)
			tt.build(s)
			if !errors.Is(s.Err(), tt.want) {
				t.Errorf("Err() = %v, want %v", s.Err(), tt.want)
			}
		})
	}
}

func TestBuilderErrorLatches(t *testing.T) {
	s := NewSection(nil)
	s.To(1, 1) // fails: no active path
	first := s.Err()
	if first == nil {
		t.Fatal("expected an error from To without From")
	}

	// Every subsequent call is a no-op and the first error sticks.
	s.From(0, 0).To(5, 0).Arc(ArcSpec{CenterAt: XY(0, 0), Sweep: 90}).Close()
	if s.Err() != first {
		t.Errorf("Err() = %v, want first error %v", s.Err(), first)
	}
	if s.Profile().Outer() != nil {
		t.Error("profile gained an outer path after the error latched")
	}

	// The latched error resurfaces from the 3D entry points.
	if _, err := s.Face(); err != first {
		t.Errorf("Face() error = %v, want %v", err, first)
	}
	if _, err := s.Pad(1); err != first {
		t.Errorf("Pad() error = %v, want %v", err, first)
	}
	if _, err := s.Revolve(90, AxisY); err != first {
		t.Errorf("Revolve() error = %v, want %v", err, first)
	}
}

func TestBuilderArcErrorLatches(t *testing.T) {
	s := NewSection(nil)
	s.From(5, 0).Arc(ArcSpec{CenterAt: XY(0, 0), EndAt: XY(0, 6)}).Close()
	if !errors.Is(s.Err(), ErrArcInconsistent) {
		t.Fatalf("Err() = %v, want %v", s.Err(), ErrArcInconsistent)
	}
	if s.Profile().Outer() != nil {
		t.Error("Close finalized a path after the arc failed")
	}
}

func TestCloseAppendsClosingLine(t *testing.T) {
	s := NewSection(nil)
	s.From(0, 0).To(10, 0).To(10, 10).Close()
	if err := s.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	outer := s.Profile().Outer()
	if outer == nil {
		t.Fatal("no outer path after Close")
	}
	if got := outer.Segments(); got != 3 {
		t.Errorf("Segments() = %d, want 3 (closing line appended)", got)
	}
	if !outer.IsClosed() {
		t.Error("outer path not closed")
	}
}

func TestCloseSkipsRedundantClosingLine(t *testing.T) {
	s := NewSection(nil)
	s.From(0, 0).To(10, 0).To(5, 5).To(0, 0).Close()
	outer := s.Profile().Outer()
	if outer == nil {
		t.Fatal("no outer path after Close")
	}
	if got := outer.Segments(); got != 3 {
		t.Errorf("Segments() = %d, want 3 (cursor already on start)", got)
	}
}

func TestCloseIdempotent(t *testing.T) {
	s := NewSection(nil)
	// Close with nothing open is a no-op.
	s.Close()
	if s.Err() != nil {
		t.Fatalf("Close on idle section errored: %v", s.Err())
	}

	s.From(0, 0).To(1, 0).To(0, 1).Close().Close()
	if s.Err() != nil {
		t.Fatalf("double Close errored: %v", s.Err())
	}
	if s.Profile().Outer() == nil {
		t.Fatal("no outer path")
	}
	if len(s.Profile().Holes()) != 0 {
		t.Error("double Close duplicated the path as a hole")
	}
}

func TestFromHoleBuildsHolePath(t *testing.T) {
	s := NewSection(nil)
	s.FromHole(1, 1).To(2, 1).To(1, 2).Close()
	if s.Err() != nil {
		t.Fatalf("Err() = %v", s.Err())
	}
	if s.Profile().Outer() != nil {
		t.Error("hole path landed as the outer path")
	}
	if got := len(s.Profile().Holes()); got != 1 {
		t.Errorf("holes = %d, want 1", got)
	}
}

func TestHolesAcceptedBeforeOuter(t *testing.T) {
	s := NewSection(nil)
	s.FromHole(1, 1).To(2, 1).To(1, 2).Close()
	s.From(0, 0).To(10, 0).To(10, 10).To(0, 10).Close()
	if s.Err() != nil {
		t.Fatalf("Err() = %v", s.Err())
	}
	if s.Profile().Outer() == nil || len(s.Profile().Holes()) != 1 {
		t.Errorf("profile = outer %v, %d holes; want outer plus 1 hole",
			s.Profile().Outer(), len(s.Profile().Holes()))
	}
}

func TestGoAndGoPolar(t *testing.T) {
	s := NewSection(nil)
	s.From(1, 1).Go(2, 0).GoPolar(2, 90).Close()
	if s.Err() != nil {
		t.Fatalf("Err() = %v", s.Err())
	}
	ops := s.Profile().Outer().Ops()
	want := []Point{Pt(3, 1), Pt(3, 3)}
	for i, w := range want {
		line, ok := ops[i+1].(LineTo)
		if !ok {
			t.Fatalf("op %d = %T, want LineTo", i+1, ops[i+1])
		}
		if !pointsClose(line.To, w, arcTestEps) {
			t.Errorf("op %d ends at %v, want %v", i+1, line.To, w)
		}
	}
}

func TestArcChainsFromCursor(t *testing.T) {
	s := NewSection(nil)
	s.From(5, 0).
		Arc(ArcSpec{CenterAt: XY(0, 0), Sweep: 90}).
		Arc(ArcSpec{CenterAt: XY(0, 0), Sweep: 90})
	if s.Err() != nil {
		t.Fatalf("Err() = %v", s.Err())
	}
	s.Close()
	ops := s.Profile().Outer().Ops()
	second, ok := ops[2].(ArcTo)
	if !ok {
		t.Fatalf("op 2 = %T, want ArcTo", ops[2])
	}
	if !pointsClose(second.From, Pt(0, 5), arcTestEps) {
		t.Errorf("second arc starts at %v, want (0,5)", second.From)
	}
	if !pointsClose(second.To, Pt(-5, 0), arcTestEps) {
		t.Errorf("second arc ends at %v, want (-5,0)", second.To)
	}
	if math.Abs(second.Sweep-math.Pi/2) > arcTestEps {
		t.Errorf("second arc sweep = %v, want %v", second.Sweep, math.Pi/2)
	}
}

func TestSectionOptions(t *testing.T) {
	s := NewSection(nil, WithName("Bracket"), OnPlane(PlaneXZ), At(1, 2, 3), Hidden())
	if s.Name() != "Bracket" {
		t.Errorf("Name() = %q, want Bracket", s.Name())
	}
	if s.Plane() != PlaneXZ {
		t.Errorf("Plane() = %v, want XZ", s.Plane())
	}
	pl := s.Placement()
	if pl.Origin != (Vec3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("Placement().Origin = %v", pl.Origin)
	}
	if s.visible {
		t.Error("Hidden() left the section visible")
	}
}
