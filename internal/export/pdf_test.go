package export

import (
	"os"
	"path/filepath"
	"testing"

	"Chronoline/internal/config"
	"Chronoline/internal/timeline"

	"github.com/stretchr/testify/require"
)

func TestWritePDF_ProducesFile(t *testing.T) {
	state := timeline.NewViewState()
	state.SetGranularity(12)
	state.SetItems([]timeline.Record{
		timeline.NewRecord(timeline.KindStartBoundary, "start", 0, 0),
		timeline.NewRecord(timeline.KindEndBoundary, "end", 100, 0),
		timeline.NewRangeRecord(timeline.KindPeriod, "p1", 10, 0, 40, 0),
		timeline.NewRangeRecord(timeline.KindPeriod, "p2", 30, 0, 60, 0),
		timeline.NewRangeRecord(timeline.KindAge, "age", 0, 0, 100, 0),
		timeline.NewRecord(timeline.KindEvent, "e", 55, 3),
		timeline.NewRecord(timeline.KindBookmark, "bm", 70, 0),
	})

	path := filepath.Join(t.TempDir(), "overview.pdf")
	require.NoError(t, WritePDF(path, state, config.Default(), 842, 400))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Positive(t, info.Size())
}

func TestWritePDF_EmptySet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	require.NoError(t, WritePDF(path, timeline.NewViewState(), config.Default(), 842, 400))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Positive(t, info.Size())
}

func TestWritePDF_RejectsInvalidSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.pdf")
	require.Error(t, WritePDF(path, timeline.NewViewState(), config.Default(), 0, 400))
}
