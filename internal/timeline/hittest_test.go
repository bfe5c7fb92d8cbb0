package timeline

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNearestBookmark_WithinRadius(t *testing.T) {
	items := []Record{
		NewRecord(KindEvent, "event", 0, 0),
		NewRecord(KindBookmark, "bm", 50, 0),
		NewRecord(KindEvent, "far", 100, 0),
	}
	// Span 0..100 over 200px puts the bookmark at x=100, axis at y=80.

	hit := NearestBookmark(items, 1, 103, 78, 80, 200, 8)
	require.NotNil(t, hit)
	require.Equal(t, "bm", hit.Title)

	require.Nil(t, NearestBookmark(items, 1, 120, 80, 80, 200, 8))
	require.Nil(t, NearestBookmark(items, 1, 100, 40, 80, 200, 8), "too far above the axis")
}

func TestNearestBookmark_PicksClosest(t *testing.T) {
	items := []Record{
		NewRecord(KindEvent, "anchor", 0, 0),
		NewRecord(KindBookmark, "left", 48, 0),
		NewRecord(KindBookmark, "right", 52, 0),
		NewRecord(KindEvent, "anchor2", 100, 0),
	}

	hit := NearestBookmark(items, 1, 105, 80, 80, 200, 10)
	require.NotNil(t, hit)
	require.Equal(t, "right", hit.Title)
}

func TestNearestBookmark_UsesSubtickFraction(t *testing.T) {
	items := []Record{
		NewRecord(KindEvent, "anchor", 0, 0),
		NewRecord(KindBookmark, "mid", 50, 6),
		NewRecord(KindEvent, "anchor2", 100, 0),
	}
	// With granularity 12 the bookmark sits at year 50.5, x=101 over 200px,
	// the same spot the renderer draws it at.

	hit := NearestBookmark(items, 12, 101, 80, 80, 200, 2)
	require.NotNil(t, hit)
	require.Equal(t, "mid", hit.Title)

	// A pointer at the bare year position misses with a tight radius.
	require.Nil(t, NearestBookmark(items, 12, 98.5, 80, 80, 200, 2))
}

func TestNearestBookmark_EmptySet(t *testing.T) {
	require.Nil(t, NearestBookmark(nil, 1, 0, 0, 0, 200, 8))
}
