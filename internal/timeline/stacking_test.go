package timeline

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// yearPx maps years straight to pixels, which is all the stacking cares
// about in these tests.
func yearPx(year, subtick float64) float64 { return year }

func TestStackPeriods_OverlapGetsNextLevel(t *testing.T) {
	items := []Record{
		NewRecord(KindEvent, "e1", 10, 0),
		NewRecord(KindEvent, "e2", 20, 0),
		NewRecord(KindEvent, "e3", 30, 0),
		NewRangeRecord(KindPeriod, "outer", 15, 0, 25, 0),
	}

	stacked := StackPeriods(items, yearPx)
	require.Len(t, stacked, 1)
	require.Equal(t, 0, stacked[0].Level)

	items = append(items, NewRangeRecord(KindPeriod, "inner", 18, 0, 22, 0))
	stacked = StackPeriods(items, yearPx)
	require.Len(t, stacked, 2)
	require.Equal(t, "outer", stacked[0].Record.Title)
	require.Equal(t, 0, stacked[0].Level)
	require.Equal(t, "inner", stacked[1].Record.Title)
	require.Equal(t, 1, stacked[1].Level, "overlapping period must not share level 0")
}

func TestStackPeriods_DisjointReuseLevelZero(t *testing.T) {
	items := []Record{
		NewRangeRecord(KindPeriod, "a", 0, 0, 10, 0),
		NewRangeRecord(KindPeriod, "b", 20, 0, 30, 0),
	}
	for _, s := range StackPeriods(items, yearPx) {
		require.Equal(t, 0, s.Level)
	}
}

func TestStackPeriods_TouchingEndpointsCollide(t *testing.T) {
	// The overlap test is inclusive: sharing a single pixel is a collision.
	items := []Record{
		NewRangeRecord(KindPeriod, "a", 0, 0, 10, 0),
		NewRangeRecord(KindPeriod, "b", 10, 0, 20, 0),
	}
	stacked := StackPeriods(items, yearPx)
	require.Equal(t, 0, stacked[0].Level)
	require.Equal(t, 1, stacked[1].Level)
}

func TestStackPeriods_NoSameLevelOverlap(t *testing.T) {
	items := []Record{
		NewRangeRecord(KindPeriod, "p1", 0, 0, 50, 0),
		NewRangeRecord(KindPeriod, "p2", 10, 0, 20, 0),
		NewRangeRecord(KindPeriod, "p3", 15, 0, 60, 0),
		NewRangeRecord(KindPeriod, "p4", 21, 0, 40, 0),
		NewRangeRecord(KindPeriod, "p5", 55, 0, 70, 0),
		NewRangeRecord(KindPeriod, "p6", 65, 0, 80, 0),
	}

	stacked := StackPeriods(items, yearPx)
	for i, a := range stacked {
		for _, b := range stacked[i+1:] {
			if a.Level != b.Level {
				continue
			}
			overlap := a.StartPx <= b.EndPx && b.StartPx <= a.EndPx
			require.False(t, overlap, "%s and %s overlap on level %d", a.Record.Title, b.Record.Title, a.Level)
		}
	}
}

func TestStackPeriods_Deterministic(t *testing.T) {
	items := []Record{
		NewRangeRecord(KindPeriod, "p3", 15, 0, 60, 0),
		NewRangeRecord(KindPeriod, "p1", 0, 0, 50, 0),
		NewRangeRecord(KindPeriod, "p2", 10, 0, 20, 0),
	}
	require.Equal(t, StackPeriods(items, yearPx), StackPeriods(items, yearPx))
}

func TestStackPeriods_OnlyRealPeriodsParticipate(t *testing.T) {
	items := []Record{
		NewRangeRecord(KindAge, "age", 0, 0, 100, 0),
		NewRecord(KindPeriod, "no end", 5, 0), // degrades to a point record
		NewRecord(KindEvent, "e", 10, 0),
		NewRangeRecord(KindPeriod, "real", 20, 0, 30, 0),
	}

	stacked := StackPeriods(items, yearPx)
	require.Len(t, stacked, 1)
	require.Equal(t, "real", stacked[0].Record.Title)
}

func TestLevelOffset(t *testing.T) {
	require.Equal(t, 7.0, LevelOffset(0, 7))
	require.Equal(t, 21.0, LevelOffset(2, 7))
}
