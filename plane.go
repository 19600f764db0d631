package sketch

// Plane is a principal working plane for a section. Coordinates supplied by
// the caller are interpreted in the plane's own axes.
type Plane int

const (
	// PlaneXY maps caller (x, y) directly.
	PlaneXY Plane = iota
	// PlaneXZ maps caller (x, z) directly onto the local axes.
	PlaneXZ
	// PlaneYZ swaps the caller's two coordinates before recording them.
	//
	// The swap mirrors the plane, so the effective winding of a CCW arc is
	// reversed when the result is viewed in the standard YZ orientation.
	// This matches the long-standing behavior of the scripting layer and
	// is kept as-is; see TestPlaneYZ_WindingPreserved.
	PlaneYZ
)

// String returns "XY", "XZ" or "YZ".
func (pl Plane) String() string {
	switch pl {
	case PlaneXZ:
		return "XZ"
	case PlaneYZ:
		return "YZ"
	}
	return "XY"
}

// mapXY maps caller-supplied plane coordinates into local path coordinates.
func (pl Plane) mapXY(x, y float64) (float64, float64) {
	if pl == PlaneYZ {
		return y, x
	}
	return x, y
}

// mapPoint maps a caller-supplied point into local path coordinates.
func (pl Plane) mapPoint(p Point) Point {
	x, y := pl.mapXY(p.X, p.Y)
	return Pt(x, y)
}

// Normal returns the plane's world normal, used to orient extrusions.
func (pl Plane) Normal() Vec3 {
	switch pl {
	case PlaneXZ:
		return Vec3{Y: 1}
	case PlaneYZ:
		return Vec3{X: 1}
	}
	return Vec3{Z: 1}
}

// Axis names a world axis for revolutions.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns "X", "Y" or "Z".
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisZ:
		return "Z"
	}
	return "Y"
}

// Placement positions a section's local plane in the world: the plane
// orientation plus a translation.
type Placement struct {
	Plane  Plane
	Origin Vec3
}
