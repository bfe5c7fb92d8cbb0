package timeline

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestState(focus float64, granularity int, pps, offset float64) *ViewState {
	v := NewViewState()
	v.SetGranularity(granularity)
	v.SetPixelsPerSubtick(pps)
	v.SetFocusYear(focus)
	v.SetOffsetPx(offset)
	return v
}

func TestYearAtPixel_OneYearRightOfCenter(t *testing.T) {
	// granularity 22 at 1px per subtick: 22px right of center is exactly
	// one year ahead, landing on subtick 0.
	v := newTestState(0, 22, 1, 0)
	const width = 800.0

	year := v.YearAtPixel(width/2+22, width)
	require.InDelta(t, 1.0, year, 1e-9)
	require.Equal(t, 0.0, v.SubtickAtPixel(width/2+22, width))
}

func TestTransform_RoundTripSymmetry(t *testing.T) {
	states := []*ViewState{
		newTestState(0, 1, 1, 0),
		newTestState(312, 12, 6, -140),
		newTestState(-50, 22, 0.5, 33.25),
	}
	years := []float64{-120.5, -1, 0, 0.25, 7, 312, 9999}

	for _, v := range states {
		for _, y := range years {
			px := v.PixelAtYear(y, 1024)
			require.InDelta(t, y, v.YearAtPixel(px, 1024), 1e-9)
		}
	}
}

func TestSubtickAtPixel_WrapsIntoGranularity(t *testing.T) {
	v := newTestState(0, 10, 1, 0)
	const width = 200.0

	// One subtick left of center is the last subtick of the previous year.
	require.Equal(t, 9.0, v.SubtickAtPixel(width/2-1, width))
	// Half a year right of center.
	require.Equal(t, 5.0, v.SubtickAtPixel(width/2+5, width))
}

func TestOverviewPixelAtYear_LinearAndClamped(t *testing.T) {
	require.InDelta(t, 250.0, OverviewPixelAtYear(25, 0, 100, 1000), 1e-9)
	require.Equal(t, 0.0, OverviewPixelAtYear(-5, 0, 100, 1000))
	require.Equal(t, 1000.0, OverviewPixelAtYear(105, 0, 100, 1000))
}

func TestOverviewPixelAtYear_DegenerateSpan(t *testing.T) {
	require.Equal(t, 0.0, OverviewPixelAtYear(42, 42, 42, 1000))
}
