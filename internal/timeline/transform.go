package timeline

import "math"

// Transform functions between the continuous year/subtick axis and pixel
// positions. The primary view maps time relative to the focus year at the
// container centre; the overview maps the full observed record span onto a
// fixed surface width. The two deliberately do not share a formula.

// YearAtPixel converts an x position in the primary view to a (fractional)
// year, given the container width.
func (v *ViewState) YearAtPixel(x, containerWidth float64) float64 {
	centerX := containerWidth / 2
	return v.focusYear + (x-centerX-v.offsetPx)/(v.pixelsPerSubtick*float64(v.granularity))
}

// SubtickAtPixel converts an x position in the primary view to the subtick
// within its year, floor-rounded and wrapped into [0, granularity).
func (v *ViewState) SubtickAtPixel(x, containerWidth float64) float64 {
	centerX := containerWidth / 2
	subticks := (x - centerX - v.offsetPx) / v.pixelsPerSubtick
	g := float64(v.granularity)
	wrapped := math.Mod(math.Floor(subticks), g)
	if wrapped < 0 {
		wrapped += g
	}
	return wrapped
}

// PixelAtYear is the inverse of YearAtPixel for the primary view.
func (v *ViewState) PixelAtYear(year, containerWidth float64) float64 {
	centerX := containerWidth / 2
	return centerX + v.offsetPx + (year-v.focusYear)*v.pixelsPerSubtick*float64(v.granularity)
}

// OverviewPixelAtYear linearly maps a year into [0, surfaceWidth] across the
// observed [minYear, maxYear] span. A degenerate span (all records at one
// instant, or none) maps to 0 rather than dividing by zero.
func OverviewPixelAtYear(year, minYear, maxYear, surfaceWidth float64) float64 {
	if maxYear == minYear {
		return 0
	}
	x := (year - minYear) / (maxYear - minYear) * surfaceWidth
	if x < 0 {
		return 0
	}
	if x > surfaceWidth {
		return surfaceWidth
	}
	return x
}
