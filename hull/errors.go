package hull

// EmptyRegionError reports that a set of boundaries was given to
// FromBoundaries but their intersection is provably empty — no point
// satisfies every one of them.
type EmptyRegionError struct{}

func (e *EmptyRegionError) Error() string {
	return "hull: intersection of the given boundaries is empty"
}
