package timeline

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDensity_EmptySetAllZero(t *testing.T) {
	v := NewViewState()
	b := NewDensityBuilder(100)

	buckets := b.Buckets(v)
	require.Len(t, buckets, 100)
	for _, val := range buckets {
		require.Equal(t, 0.0, val)
	}
}

func TestDensity_NormalizedToOne(t *testing.T) {
	v := NewViewState()
	v.SetItems([]Record{
		NewRecord(KindEvent, "a", 10, 0),
		NewRecord(KindEvent, "b", 20, 0),
		NewRecord(KindEvent, "c", 30, 0),
		NewRangeRecord(KindPeriod, "p", 15, 0, 25, 0),
	})
	b := NewDensityBuilder(100)

	buckets := b.Buckets(v)
	max := 0.0
	for _, val := range buckets {
		require.GreaterOrEqual(t, val, 0.0)
		require.LessOrEqual(t, val, 1.0)
		if val > max {
			max = val
		}
	}
	require.Equal(t, 1.0, max)
}

func TestDensity_SingleInstantOccupiesOneBucket(t *testing.T) {
	v := NewViewState()
	v.SetItems([]Record{
		NewRecord(KindEvent, "a", 42, 0),
		NewRecord(KindEvent, "b", 42, 0),
	})
	b := NewDensityBuilder(50)

	buckets := b.Buckets(v)
	require.Equal(t, 1.0, buckets[0])
	for _, val := range buckets[1:] {
		require.Equal(t, 0.0, val)
	}
}

func TestDensity_RangeFillsInclusiveSpan(t *testing.T) {
	v := NewViewState()
	v.SetItems([]Record{
		NewRecord(KindEvent, "start", 0, 0),
		NewRecord(KindEvent, "end", 100, 0),
		NewRangeRecord(KindPeriod, "p", 25, 0, 50, 0),
	})
	b := NewDensityBuilder(10)

	buckets := b.Buckets(v)
	// The period covers buckets 2..5 inclusive (25%..50% of the span).
	require.Positive(t, buckets[2])
	require.Positive(t, buckets[3])
	require.Positive(t, buckets[4])
	require.Positive(t, buckets[5])
	require.Equal(t, 0.0, buckets[7])
}

func TestDensity_CachedUntilItemsReplaced(t *testing.T) {
	v := NewViewState()
	v.SetItems([]Record{NewRecord(KindEvent, "a", 1, 0)})
	b := NewDensityBuilder(10)

	first := b.Buckets(v)
	second := b.Buckets(v)
	require.Same(t, &first[0], &second[0], "expected cache hit for unchanged items")

	v.SetItems([]Record{NewRecord(KindEvent, "b", 2, 0)})
	third := b.Buckets(v)
	require.NotSame(t, &first[0], &third[0], "expected rebuild after SetItems")
}

func TestDensity_Deterministic(t *testing.T) {
	items := []Record{
		NewRangeRecord(KindPeriod, "p1", 5, 0, 40, 0),
		NewRecord(KindEvent, "e", 12, 3),
		NewRangeRecord(KindAge, "a", 0, 0, 60, 0),
	}
	v1 := NewViewState()
	v1.SetItems(items)
	v2 := NewViewState()
	v2.SetItems(items)

	require.Equal(t, NewDensityBuilder(64).Buckets(v1), NewDensityBuilder(64).Buckets(v2))
}

func TestDensity_DefaultBucketCount(t *testing.T) {
	require.Equal(t, DefaultBucketCount, NewDensityBuilder(0).BucketCount())
	require.Equal(t, 7, NewDensityBuilder(7).BucketCount())
}
