package timeline

import "math"

// NearestBookmark finds the bookmark record whose overview marker, drawn at
// axis height, lies within radius pixels of the pointer at (x, y). Markers are
// projected from the record's full instant, year plus subtick over
// granularity, so hit-testing matches where the marker is drawn. When several
// qualify, the closest wins. Returns nil when no bookmark is in range,
// including for an empty record set.
func NearestBookmark(items []Record, granularity int, x, y, axisY, surfaceWidth, radius float64) *Record {
	minYear, maxYear, ok := TimeRange(items)
	if !ok {
		return nil
	}
	if granularity < 1 {
		granularity = 1
	}
	g := float64(granularity)

	var best *Record
	bestDist := radius
	for i := range items {
		r := &items[i]
		if r.Kind != KindBookmark {
			continue
		}
		px := OverviewPixelAtYear(r.Year+r.Subtick/g, minYear, maxYear, surfaceWidth)
		dist := math.Hypot(x-px, y-axisY)
		if dist <= bestDist {
			best = r
			bestDist = dist
		}
	}
	return best
}
