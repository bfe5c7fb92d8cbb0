package timeline

import "sort"

// Stacked is a period record with its assigned vertical level and the pixel
// interval it occupies on the overview surface.
type Stacked struct {
	Record  Record
	Level   int
	StartPx float64
	EndPx   float64
}

// pxInterval is one occupied stretch of a stacking level.
type pxInterval struct {
	start, end float64
}

// overlaps uses an inclusive test: touching endpoints count as a collision so
// adjacent periods never share a level while visually abutting.
func (a pxInterval) overlaps(b pxInterval) bool {
	return a.start <= b.end && b.start <= a.end
}

// StackPeriods assigns a vertical level to every period record so that no two
// periods whose pixel ranges overlap share a level. Periods are processed in
// ascending start-time order and each takes the smallest free level, greedy
// activity stacking. The assignment is deterministic for a given input order
// but not guaranteed minimal; determinism is the property renders rely on.
//
// Only KindPeriod records with a real span participate. A period without an
// end time degrades to a point record and is drawn by the marker stage
// instead.
func StackPeriods(items []Record, pixelAt func(year, subtick float64) float64) []Stacked {
	periods := make([]Record, 0, len(items))
	for _, r := range items {
		if r.Kind == KindPeriod && r.IsRange() {
			periods = append(periods, r)
		}
	}
	sort.SliceStable(periods, func(i, j int) bool {
		return timeLess(periods[i].Year, periods[i].Subtick, periods[j].Year, periods[j].Subtick)
	})

	var levels [][]pxInterval
	out := make([]Stacked, 0, len(periods))
	for _, p := range periods {
		endYear, endSubtick := p.End()
		span := pxInterval{
			start: pixelAt(p.Year, p.Subtick),
			end:   pixelAt(endYear, endSubtick),
		}
		if span.end < span.start {
			span.start, span.end = span.end, span.start
		}

		level := -1
		for i, occupied := range levels {
			free := true
			for _, iv := range occupied {
				if iv.overlaps(span) {
					free = false
					break
				}
			}
			if free {
				level = i
				break
			}
		}
		if level < 0 {
			level = len(levels)
			levels = append(levels, nil)
		}
		levels[level] = append(levels[level], span)

		out = append(out, Stacked{
			Record:  p,
			Level:   level,
			StartPx: span.start,
			EndPx:   span.end,
		})
	}
	return out
}

// LevelOffset is the vertical distance from the axis for a stacking level:
// level 0 sits one line spacing away, each further level one spacing more.
func LevelOffset(level int, lineSpacing float64) float64 {
	return float64(level+1) * lineSpacing
}
