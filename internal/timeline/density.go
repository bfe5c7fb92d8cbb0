package timeline

// DefaultBucketCount is the histogram resolution used when none is configured.
const DefaultBucketCount = 100

// DensityBuilder computes the normalized record-density histogram shown along
// the top of the overview. The result is cached per record-set generation and
// recomputed lazily after SetItems invalidates it.
type DensityBuilder struct {
	bucketCount int

	cached    []float64
	cachedGen uint64
	valid     bool
}

// NewDensityBuilder returns a builder with the given bucket count, falling
// back to DefaultBucketCount for non-positive values.
func NewDensityBuilder(buckets int) *DensityBuilder {
	if buckets <= 0 {
		buckets = DefaultBucketCount
	}
	return &DensityBuilder{bucketCount: buckets}
}

// BucketCount returns the histogram resolution.
func (b *DensityBuilder) BucketCount() int { return b.bucketCount }

// Buckets returns the normalized density histogram for the view's current
// record set. Every entry is in [0, 1]; a non-empty set always has at least
// one bucket at exactly 1. The returned slice is the cache itself and must be
// treated as read-only.
func (b *DensityBuilder) Buckets(v *ViewState) []float64 {
	if b.valid && b.cachedGen == v.Generation() {
		return b.cached
	}
	b.cached = b.build(v.Items())
	b.cachedGen = v.Generation()
	b.valid = true
	return b.cached
}

// Invalidate drops the cache; the next Buckets call recomputes it.
func (b *DensityBuilder) Invalidate() {
	b.valid = false
}

func (b *DensityBuilder) build(items []Record) []float64 {
	counts := make([]float64, b.bucketCount)
	minYear, maxYear, ok := TimeRange(items)
	if !ok {
		return counts
	}

	for _, r := range items {
		endYear, _ := r.End()
		lo := b.bucketIndex(r.Year, minYear, maxYear)
		hi := b.bucketIndex(endYear, minYear, maxYear)
		if hi < lo {
			lo, hi = hi, lo
		}
		// Inclusive fill: a point record lands in exactly one bucket, a
		// range touches every bucket its span crosses.
		for i := lo; i <= hi; i++ {
			counts[i]++
		}
	}

	max := 0.0
	for _, c := range counts {
		if c > max {
			max = c
		}
	}
	if max > 0 {
		for i := range counts {
			counts[i] /= max
		}
	}
	return counts
}

func (b *DensityBuilder) bucketIndex(year, minYear, maxYear float64) int {
	if maxYear == minYear {
		return 0
	}
	i := int((year - minYear) / (maxYear - minYear) * float64(b.bucketCount))
	if i < 0 {
		return 0
	}
	if i >= b.bucketCount {
		return b.bucketCount - 1
	}
	return i
}
