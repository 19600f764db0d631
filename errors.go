package sketch

import "errors"

// Arc resolution errors. All are input errors: they indicate a malformed or
// underdetermined arc specification and are returned synchronously, never
// retried.
var (
	// ErrArcMissingCenter is returned when the center cannot be inferred:
	// with no center given, an end point is required (a sweep alone does
	// not determine the circle).
	ErrArcMissingCenter = errors.New("sketch: arc center cannot be inferred; provide a center or an end point")

	// ErrArcInconsistent is returned when an explicit end (or start) point
	// does not lie on the circle defined by the center and radius.
	ErrArcInconsistent = errors.New("sketch: arc start/end not on circle defined by center and radius")

	// ErrArcDegenerate is returned when start and end coincide or the
	// resolved sweep is zero.
	ErrArcDegenerate = errors.New("sketch: degenerate arc; start and end coincide or sweep is zero")

	// ErrArcRadiusTooSmall is returned when the radius is not positive or
	// no circle of the given radius passes through both endpoints.
	ErrArcRadiusTooSmall = errors.New("sketch: arc radius too small for given endpoints")

	// ErrArcFullCircle is returned for a 360 degree sweep. Use Circle for
	// full circles; an arc cannot represent one unambiguously.
	ErrArcFullCircle = errors.New("sketch: full-circle arc not supported; use Circle")

	// ErrArcUnderspecified is returned when a center is known but neither
	// an end point nor a sweep was given, or when the center is omitted
	// together with the radius.
	ErrArcUnderspecified = errors.New("sketch: arc requires an end point or sweep")
)

// Builder sequencing errors.
var (
	// ErrNoActivePath is returned by To, Go, Arc or similar when no path
	// has been started with From.
	ErrNoActivePath = errors.New("sketch: no active path; call From first")

	// ErrPathOpen is returned by From when a path is already in progress.
	ErrPathOpen = errors.New("sketch: path already open; call Close first")

	// ErrDuplicateOuterPath is returned when a second outer (non-hole)
	// path is added to a profile.
	ErrDuplicateOuterPath = errors.New("sketch: profile already has an outer path")

	// ErrEmptyProfile is returned when compiling a profile that has no
	// outer path.
	ErrEmptyProfile = errors.New("sketch: profile has no outer path")
)
