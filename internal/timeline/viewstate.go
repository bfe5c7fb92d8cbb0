package timeline

// ViewState holds the mutable view parameters for one open timeline window.
// All mutation goes through the setter methods so that the derived
// pixels-per-year value stays current and the change hook (normally the
// scheduler's dirty flag) fires exactly once per mutation.
type ViewState struct {
	focusYear        float64
	granularity      int
	pixelsPerSubtick float64
	offsetPx         float64
	pixelsPerYear    float64

	items      []Record
	generation uint64

	onChange func()
}

// NewViewState returns a view state centred on year 0 with one subtick per
// year at one pixel per subtick.
func NewViewState() *ViewState {
	v := &ViewState{
		granularity:      1,
		pixelsPerSubtick: 1,
	}
	v.recompute()
	return v
}

// OnChange registers the hook invoked after every state mutation.
func (v *ViewState) OnChange(fn func()) {
	v.onChange = fn
}

func (v *ViewState) recompute() {
	v.pixelsPerYear = float64(v.granularity) * v.pixelsPerSubtick
}

func (v *ViewState) markChanged() {
	if v.onChange != nil {
		v.onChange()
	}
}

func (v *ViewState) FocusYear() float64 { return v.focusYear }

func (v *ViewState) SetFocusYear(year float64) {
	v.focusYear = year
	v.markChanged()
}

func (v *ViewState) Granularity() int { return v.granularity }

// SetGranularity sets the number of subticks per year. Values below 1 are
// clamped to 1.
func (v *ViewState) SetGranularity(g int) {
	if g < 1 {
		g = 1
	}
	v.granularity = g
	v.recompute()
	v.markChanged()
}

func (v *ViewState) PixelsPerSubtick() float64 { return v.pixelsPerSubtick }

// SetPixelsPerSubtick sets the pixel width of one subtick. Non-positive
// values are ignored so the transform never divides by zero.
func (v *ViewState) SetPixelsPerSubtick(px float64) {
	if px <= 0 {
		return
	}
	v.pixelsPerSubtick = px
	v.recompute()
	v.markChanged()
}

func (v *ViewState) OffsetPx() float64 { return v.offsetPx }

func (v *ViewState) SetOffsetPx(px float64) {
	v.offsetPx = px
	v.markChanged()
}

// PixelsPerYear is granularity times pixels-per-subtick, recomputed on every
// mutation of either input. Callers must not cache it across mutations.
func (v *ViewState) PixelsPerYear() float64 { return v.pixelsPerYear }

// Items returns the current record set. The slice is owned by the engine's
// collaborator and is read-only by convention; it is replaced, never edited.
func (v *ViewState) Items() []Record { return v.items }

// SetItems replaces the record set wholesale and bumps the generation used to
// invalidate derived caches such as the density buckets.
func (v *ViewState) SetItems(items []Record) {
	v.items = items
	v.generation++
	v.markChanged()
}

// Generation identifies the current record set for cache keying.
func (v *ViewState) Generation() uint64 { return v.generation }
