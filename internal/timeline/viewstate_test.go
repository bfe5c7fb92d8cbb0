package timeline

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestViewState_PixelsPerYearRecomputed(t *testing.T) {
	v := NewViewState()
	v.SetGranularity(12)
	v.SetPixelsPerSubtick(6)
	require.Equal(t, 72.0, v.PixelsPerYear())

	v.SetGranularity(24)
	require.Equal(t, 144.0, v.PixelsPerYear())

	v.SetPixelsPerSubtick(0.5)
	require.Equal(t, 12.0, v.PixelsPerYear())
}

func TestViewState_ClampsInvalidInput(t *testing.T) {
	v := NewViewState()
	v.SetGranularity(0)
	require.Equal(t, 1, v.Granularity())

	v.SetPixelsPerSubtick(4)
	v.SetPixelsPerSubtick(0)
	v.SetPixelsPerSubtick(-3)
	require.Equal(t, 4.0, v.PixelsPerSubtick())
}

func TestViewState_ChangeHookFiresPerMutation(t *testing.T) {
	v := NewViewState()
	changes := 0
	v.OnChange(func() { changes++ })

	v.SetFocusYear(10)
	v.SetOffsetPx(-4)
	v.SetGranularity(6)
	v.SetPixelsPerSubtick(2)
	v.SetItems(nil)
	require.Equal(t, 5, changes)
}

func TestViewState_GenerationBumpsOnlyOnSetItems(t *testing.T) {
	v := NewViewState()
	gen := v.Generation()

	v.SetFocusYear(3)
	v.SetOffsetPx(9)
	require.Equal(t, gen, v.Generation())

	v.SetItems([]Record{NewRecord(KindEvent, "e", 1, 0)})
	require.Equal(t, gen+1, v.Generation())
}
