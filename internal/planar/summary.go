package planar

import "github.com/gocad/sketch"

// Summary is a compact, deterministic description of a build result, used
// by tests and the CLI's JSON export.
type Summary struct {
	Volume float64    `json:"volume"`
	Area   float64    `json:"area"`
	BBox   []float64  `json:"bbox,omitempty"` // xmin, ymin, xmax, ymax of the profile
	Counts EdgeCounts `json:"counts"`

	Version int `json:"version"`
}

// EdgeCounts breaks the profile boundary down by edge kind.
type EdgeCounts struct {
	Lines int `json:"lines"`
	Arcs  int `json:"arcs"`
	Holes int `json:"holes"`
}

// Summarize describes a face and, when present, the solid built from it.
func Summarize(f sketch.Face, s sketch.Solid) Summary {
	sum := Summary{Version: 1}
	if f != nil {
		face := f.(*Face)
		sum.Area = face.Area()
		lines, arcs := face.EdgeCounts()
		sum.Counts = EdgeCounts{Lines: lines, Arcs: arcs, Holes: face.Holes()}
		min, max := face.BBox()
		sum.BBox = []float64{min.X, min.Y, max.X, max.Y}
	}
	if s != nil {
		sum.Volume = s.Volume()
	}
	return sum
}
