package timeline

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOverviewSync_ReprojectsFraction(t *testing.T) {
	var placed []float64
	s := NewOverviewSync(func(x float64) { placed = append(placed, x) })
	s.SetOverviewWidth(400)

	// Marker a quarter of the way into an 800px primary container.
	s.PrimaryMarkerMoved(200, 0, 800)
	require.Equal(t, []float64{100}, placed)
	require.Equal(t, 100.0, s.IndicatorX())

	// Non-zero container origin.
	s.PrimaryMarkerMoved(500, 100, 800)
	require.Equal(t, 200.0, s.IndicatorX())
}

func TestOverviewSync_ResizeReprojectsLastPosition(t *testing.T) {
	var last float64
	s := NewOverviewSync(func(x float64) { last = x })
	s.SetOverviewWidth(400)
	s.PrimaryMarkerMoved(400, 0, 800)
	require.Equal(t, 200.0, last)

	// Overview resize re-projects without a new marker event.
	s.SetOverviewWidth(1000)
	require.Equal(t, 500.0, last)
}

func TestOverviewSync_ClampsAndDegenerates(t *testing.T) {
	s := NewOverviewSync(nil)
	s.SetOverviewWidth(400)

	s.PrimaryMarkerMoved(-50, 0, 800)
	require.Equal(t, 0.0, s.IndicatorX())

	s.PrimaryMarkerMoved(900, 0, 800)
	require.Equal(t, 400.0, s.IndicatorX())

	s.PrimaryMarkerMoved(123, 0, 0)
	require.Equal(t, 0.0, s.IndicatorX())
}

func TestOverviewSync_NoCallbackBeforeFirstMarker(t *testing.T) {
	called := false
	s := NewOverviewSync(func(float64) { called = true })
	s.SetOverviewWidth(400)
	require.False(t, called, "resize alone must not project an unknown marker")
}
