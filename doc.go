// Package sketch is a scripting layer for describing 3D solids by chaining
// 2D profile operations against a host geometry kernel.
//
// # Overview
//
// A [Section] accumulates lines and circular arcs through a cursor-based
// builder (From/To/Go/Arc/Close) into a profile of one outer path and any
// number of hole paths. Partially specified arcs are resolved by a
// geometric solver that infers the missing center, radius, endpoint or
// sweep. The boundary compiler turns the finished profile into kernel
// curves, faces and solids; the kernel itself (wires, faces, booleans,
// extrusions) is an external collaborator behind the [Kernel] interface.
//
// # Quick start
//
//	k := planar.New() // or any other Kernel implementation
//	s := sketch.NewSection(k)
//	s.From(5, 0).
//		Arc(sketch.ArcSpec{Radius: 5, Dir: sketch.CCW, CenterAt: sketch.XY(0, 0), EndAt: sketch.XY(-5, 0)}).
//		To(-5, -5).
//		To(5, -5).
//		Arc(sketch.ArcSpec{Radius: 5, Dir: sketch.CCW, EndAt: sketch.XY(5, 0)}).
//		Close()
//	feat, err := s.Pad(10)
//
// # Backends
//
// [NewSection] builds boundaries transiently. [NewSketch] additionally
// replays the op-list into a persistent, editable sketch object in the
// host document; that replay is best-effort and never affects the solid
// result.
//
// # Errors
//
// Malformed input (an underdetermined arc, a second outer path, ops out of
// sequence) fails immediately. The fluent builder latches the first error;
// check [Section.Err] or the error returned by the 3D operations.
package sketch
