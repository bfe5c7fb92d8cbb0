package timeline

import (
	"strings"

	"github.com/google/uuid"
)

// Kind identifies what a record represents on the timeline.
type Kind int

const (
	KindEvent Kind = iota
	KindPeriod
	KindAge
	KindBookmark
	KindNote
	KindPicture
	KindCharacter
	KindStartBoundary
	KindEndBoundary
	KindUnknown
)

var kindNames = map[Kind]string{
	KindEvent:         "event",
	KindPeriod:        "period",
	KindAge:           "age",
	KindBookmark:      "bookmark",
	KindNote:          "note",
	KindPicture:       "picture",
	KindCharacter:     "character",
	KindStartBoundary: "start_boundary",
	KindEndBoundary:   "end_boundary",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind maps a stored kind name to its Kind. Unrecognized names map to
// KindUnknown, which the renderer skips instead of failing the whole pass.
func ParseKind(s string) Kind {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return k
		}
	}
	return KindUnknown
}

// Record is one time-stamped entry delivered by the backing store. The engine
// treats records as read-only input; the set is always replaced wholesale.
type Record struct {
	ID         string
	Title      string
	Year       float64
	Subtick    float64
	EndYear    *float64
	EndSubtick *float64
	Kind       Kind
	Color      string // optional override of the per-kind color, "#rrggbb"
}

// NewRecord creates a point record with a fresh ID.
func NewRecord(kind Kind, title string, year, subtick float64) Record {
	return Record{
		ID:      uuid.NewString(),
		Title:   title,
		Year:    year,
		Subtick: subtick,
		Kind:    kind,
	}
}

// NewRangeRecord creates a record spanning from (year, subtick) to
// (endYear, endSubtick).
func NewRangeRecord(kind Kind, title string, year, subtick, endYear, endSubtick float64) Record {
	r := NewRecord(kind, title, year, subtick)
	r.EndYear = &endYear
	r.EndSubtick = &endSubtick
	return r
}

// End returns the record's end time, falling back to the start when no end is
// stored. A range kind without an end is thereby treated as a point record.
func (r Record) End() (year, subtick float64) {
	year, subtick = r.Year, r.Subtick
	if r.EndYear != nil {
		year = *r.EndYear
	}
	if r.EndSubtick != nil {
		subtick = *r.EndSubtick
	}
	return year, subtick
}

// IsRange reports whether the record spans a non-empty interval of time.
func (r Record) IsRange() bool {
	ey, es := r.End()
	return ey != r.Year || es != r.Subtick
}

// timeLess orders two (year, subtick) instants lexicographically.
func timeLess(y1, s1, y2, s2 float64) bool {
	if y1 != y2 {
		return y1 < y2
	}
	return s1 < s2
}

// TimeRange returns the span of years covered by the record set: the earliest
// start year and the latest end year. ok is false for an empty set, in which
// case callers must not derive positions from the returned values.
func TimeRange(items []Record) (minYear, maxYear float64, ok bool) {
	for i, r := range items {
		end, _ := r.End()
		if i == 0 {
			minYear, maxYear = r.Year, end
			continue
		}
		if r.Year < minYear {
			minYear = r.Year
		}
		if end > maxYear {
			maxYear = end
		}
	}
	return minYear, maxYear, len(items) > 0
}
