package timeline

// Boundary markers are sentinel records that fence off the navigable span of
// the timeline. A record set normally holds at most one of each; if several
// exist the earliest start boundary and the latest end boundary win, so the
// resolution is deterministic regardless of slice order.

// Boundaries locates the effective start and end boundary records. Either
// result may be nil when the set carries no such marker.
func Boundaries(items []Record) (start, end *Record) {
	for i := range items {
		r := &items[i]
		switch r.Kind {
		case KindStartBoundary:
			if start == nil || timeLess(r.Year, r.Subtick, start.Year, start.Subtick) {
				start = r
			}
		case KindEndBoundary:
			if end == nil || timeLess(end.Year, end.Subtick, r.Year, r.Subtick) {
				end = r
			}
		}
	}
	return start, end
}

// IsWithinBoundaries reports whether the given instant lies inside the
// navigable span. An absent boundary imposes no constraint on its side. Any
// UI affordance that resolves a pointer position to a time must gate on this
// before acting.
func IsWithinBoundaries(year, subtick float64, items []Record) bool {
	start, end := Boundaries(items)
	if start != nil && timeLess(year, subtick, start.Year, start.Subtick) {
		return false
	}
	if end != nil && timeLess(end.Year, end.Subtick, year, subtick) {
		return false
	}
	return true
}

// ClampedJump moves the focus to targetYear if the target lies within the
// boundaries. An out-of-range jump is rejected outright, leaving the focus
// unchanged, rather than being clamped to the nearest boundary. The resulting
// focus year is returned either way.
func (v *ViewState) ClampedJump(targetYear float64) float64 {
	if !IsWithinBoundaries(targetYear, 0, v.items) {
		return v.focusYear
	}
	v.SetFocusYear(targetYear)
	return v.focusYear
}
