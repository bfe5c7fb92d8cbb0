package timeline

// OverviewSync keeps the overview's "now" indicator aligned with the primary
// view's marker. The two views use independent pixel math: the primary maps
// its visible window around the focus year, the overview maps the full record
// span. Rather than share a formula, the synchronizer takes the marker's
// fractional position inside the primary container and re-projects that
// fraction onto the overview surface width.
//
// The primary view pushes marker movements through PrimaryMarkerMoved via a
// registered callback; there is no polling.
type OverviewSync struct {
	overviewWidth float64
	fraction      float64
	haveFraction  bool

	place func(x float64)
}

// NewOverviewSync wires the synchronizer to the function that positions the
// overview indicator.
func NewOverviewSync(place func(x float64)) *OverviewSync {
	return &OverviewSync{place: place}
}

// SetOverviewWidth records the overview surface width and re-projects the
// last known marker position, covering the overview-resize case.
func (s *OverviewSync) SetOverviewWidth(w float64) {
	s.overviewWidth = w
	s.project()
}

// PrimaryMarkerMoved re-projects the primary marker position given the
// marker's left edge and its container's left edge and width, all in the
// primary view's own pixel space. A degenerate container width maps to
// fraction 0.
func (s *OverviewSync) PrimaryMarkerMoved(markerLeft, containerLeft, containerWidth float64) {
	frac := 0.0
	if containerWidth > 0 {
		frac = (markerLeft - containerLeft) / containerWidth
	}
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	s.fraction = frac
	s.haveFraction = true
	s.project()
}

// IndicatorX returns the current overview-space indicator position.
func (s *OverviewSync) IndicatorX() float64 {
	return s.fraction * s.overviewWidth
}

func (s *OverviewSync) project() {
	if !s.haveFraction || s.place == nil {
		return
	}
	s.place(s.IndicatorX())
}
