package ui

import (
	"fmt"
	"image/color"
	"math"
	"sync"
	"time"

	"Chronoline/internal/config"
	"Chronoline/internal/timeline"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog/log"
)

const overviewTickCount = 20 // fixed tick count across the observed range

// OverviewWidget renders the dense record overview: density histogram,
// stacked ranges, point markers, special markers, axis, year ticks and the
// current-year readout. It owns its drawing surface and only ever reads the
// shared view state; redraws are driven by the throttled scheduler.
type OverviewWidget struct {
	widget.BaseWidget

	mu      sync.RWMutex
	state   *timeline.ViewState
	cfg     *config.Config
	density *timeline.DensityBuilder
	sched   *timeline.Scheduler

	hover         *timeline.Record // bookmark under the pointer, if any
	indicatorX    float64
	haveIndicator bool
	lastSize      fyne.Size

	// OnJump forwards a bookmark click as a jump-to-date request against the
	// primary view. The overview never navigates itself.
	OnJump func(year, subtick float64)

	// OnResize reports surface size changes, feeding the synchronizer.
	OnResize func(width float64)
}

var _ fyne.Widget = (*OverviewWidget)(nil)
var _ fyne.Tappable = (*OverviewWidget)(nil)
var _ desktop.Hoverable = (*OverviewWidget)(nil)

// NewOverviewWidget builds the overview for the given shared view state.
func NewOverviewWidget(state *timeline.ViewState, cfg *config.Config) *OverviewWidget {
	w := &OverviewWidget{
		state:   state,
		cfg:     cfg,
		density: timeline.NewDensityBuilder(cfg.Density.Buckets),
	}
	w.sched = timeline.NewScheduler(func() {
		fyne.Do(w.BaseWidget.Refresh)
	})
	if cfg.TargetFPS > 0 {
		w.sched.SetInterval(time.Second / time.Duration(cfg.TargetFPS))
	}
	w.ExtendBaseWidget(w)
	return w
}

// Scheduler exposes the widget's redraw scheduler so the app can start and
// stop it with the window lifecycle and mark it dirty on state changes.
func (w *OverviewWidget) Scheduler() *timeline.Scheduler { return w.sched }

// MarkDirty requests a redraw on the next scheduler tick.
func (w *OverviewWidget) MarkDirty() { w.sched.MarkDirty() }

// SetIndicatorX places the synchronized "now" indicator, in overview pixels.
func (w *OverviewWidget) SetIndicatorX(x float64) {
	w.mu.Lock()
	w.indicatorX = x
	w.haveIndicator = true
	w.mu.Unlock()
	w.sched.MarkDirty()
}

// MouseMoved recomputes bookmark hover state; the tooltip itself is drawn by
// the next redraw pass, not here.
func (w *OverviewWidget) MouseMoved(ev *desktop.MouseEvent) {
	hit := w.bookmarkAt(ev.Position)
	w.mu.Lock()
	changed := hit != w.hover && (hit == nil || w.hover == nil || hit.ID != w.hover.ID)
	w.hover = hit
	w.mu.Unlock()
	if changed {
		w.sched.MarkDirty()
	}
}

func (w *OverviewWidget) MouseIn(*desktop.MouseEvent) {}

func (w *OverviewWidget) MouseOut() {
	w.mu.Lock()
	had := w.hover != nil
	w.hover = nil
	w.mu.Unlock()
	if had {
		w.sched.MarkDirty()
	}
}

// Tapped jumps the primary view to a bookmark's date when the tap lands
// within the hit radius of its marker.
func (w *OverviewWidget) Tapped(ev *fyne.PointEvent) {
	bm := w.bookmarkAt(ev.Position)
	if bm == nil || w.OnJump == nil {
		return
	}
	log.Debug().Str("bookmark", bm.Title).Float64("year", bm.Year).Msg("bookmark jump")
	w.OnJump(bm.Year, bm.Subtick)
}

func (w *OverviewWidget) bookmarkAt(pos fyne.Position) *timeline.Record {
	size := w.Size()
	axisY := float64(size.Height) - w.cfg.Layout.AxisInset
	return timeline.NearestBookmark(
		w.state.Items(), w.state.Granularity(),
		float64(pos.X), float64(pos.Y),
		axisY, float64(size.Width),
		w.cfg.Layout.HitRadius,
	)
}

func (w *OverviewWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &overviewRenderer{w: w}
	r.rebuild(w.Size())
	return r
}

// overviewRenderer rebuilds the full canvas object list on every refresh, in
// the fixed stage order: clear, histogram, ranges, points, special markers,
// axis, ticks, readout, then tooltip and indicator on top.
type overviewRenderer struct {
	w       *OverviewWidget
	objects []fyne.CanvasObject
}

func (r *overviewRenderer) Layout(size fyne.Size) {
	if size == r.w.lastSize {
		return
	}
	r.w.lastSize = size
	if r.w.OnResize != nil {
		r.w.OnResize(float64(size.Width))
	}
	if size.Width <= 0 || size.Height <= 0 {
		// A zero-sized surface is tolerated; the next valid resize redraws.
		return
	}
	// Resize redraws immediately, outside the throttled loop.
	r.rebuild(size)
	r.w.sched.ForceRedraw()
}

func (r *overviewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 140)
}

func (r *overviewRenderer) Refresh() {
	r.rebuild(r.w.Size())
	canvas.Refresh(r.w)
}

func (r *overviewRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *overviewRenderer) Destroy() {}

func (r *overviewRenderer) rebuild(size fyne.Size) {
	w := r.w
	cfg := w.cfg
	width := float64(size.Width)
	height := float64(size.Height)
	if width <= 0 || height <= 0 {
		width, height = 400, 140
	}
	axisY := height - cfg.Layout.AxisInset

	bg := canvas.NewRectangle(hexColor(cfg.Colors.Background, color.NRGBA{R: 0x15, G: 0x15, B: 0x1c, A: 0xff}))
	bg.Resize(fyne.NewSize(float32(width), float32(height)))
	objects := []fyne.CanvasObject{bg}

	items := w.state.Items()
	minYear, maxYear, ok := timeline.TimeRange(items)
	if !ok {
		// Degenerate state: no records, nothing to derive positions from.
		objects = append(objects, r.centeredReadout(width, height))
		r.objects = objects
		return
	}

	objects = append(objects, r.histogramBars(width)...)
	objects = append(objects, r.rangeLines(items, minYear, maxYear, width, axisY)...)
	objects = append(objects, r.pointMarkers(items, minYear, maxYear, width, axisY)...)
	objects = append(objects, r.specialMarkers(items, minYear, maxYear, width, axisY)...)

	axis := canvas.NewLine(hexColor(cfg.Colors.Axis, color.NRGBA{R: 0x9a, G: 0x9a, B: 0xa8, A: 0xff}))
	axis.Position1 = fyne.NewPos(0, float32(axisY))
	axis.Position2 = fyne.NewPos(float32(width), float32(axisY))
	axis.StrokeWidth = 1.5
	objects = append(objects, axis)

	objects = append(objects, r.yearTicks(minYear, maxYear, width, axisY)...)
	objects = append(objects, r.readout(width, height))

	w.mu.RLock()
	hover := w.hover
	indicatorX, haveIndicator := w.indicatorX, w.haveIndicator
	w.mu.RUnlock()

	if haveIndicator {
		ind := canvas.NewLine(hexColor(cfg.Colors.Indicator, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}))
		ind.Position1 = fyne.NewPos(float32(indicatorX), 0)
		ind.Position2 = fyne.NewPos(float32(indicatorX), float32(height))
		ind.StrokeWidth = 1
		objects = append(objects, ind)
	}
	if hover != nil {
		objects = append(objects, r.tooltip(hover, minYear, maxYear, width, axisY)...)
	}

	r.objects = objects
}

// histogramBars draws the density band along the top of the surface, each
// bar anchored to the band's bottom edge.
func (r *overviewRenderer) histogramBars(width float64) []fyne.CanvasObject {
	cfg := r.w.cfg
	buckets := r.w.density.Buckets(r.w.state)
	barColor := hexColor(cfg.Colors.Histogram, color.NRGBA{R: 0x3c, G: 0x4a, B: 0x6e, A: 0xff})
	bandBottom := cfg.Layout.HistogramHeight
	barWidth := width / float64(len(buckets))

	var out []fyne.CanvasObject
	for i, v := range buckets {
		if v <= 0 {
			continue
		}
		h := v * cfg.Layout.HistogramHeight
		bar := canvas.NewRectangle(barColor)
		bar.Move(fyne.NewPos(float32(float64(i)*barWidth), float32(bandBottom-h)))
		bar.Resize(fyne.NewSize(float32(math.Max(barWidth, 1)), float32(h)))
		out = append(out, bar)
	}
	return out
}

// rangeLines draws periods with their stacking offsets above the axis and
// ages as single unstacked lines below it, each with start/end end-caps.
func (r *overviewRenderer) rangeLines(items []timeline.Record, minYear, maxYear, width, axisY float64) []fyne.CanvasObject {
	cfg := r.w.cfg
	pixelAt := func(year, subtick float64) float64 {
		g := float64(r.w.state.Granularity())
		return timeline.OverviewPixelAtYear(year+subtick/g, minYear, maxYear, width)
	}

	var out []fyne.CanvasObject
	for _, s := range timeline.StackPeriods(items, pixelAt) {
		y := axisY - timeline.LevelOffset(s.Level, cfg.Layout.LineSpacing)
		c := r.recordColor(s.Record, cfg.Colors.Period)
		out = append(out, rangeWithCaps(s.StartPx, s.EndPx, y, c)...)
	}

	for _, rec := range items {
		if rec.Kind != timeline.KindAge || !rec.IsRange() {
			continue
		}
		endYear, endSubtick := rec.End()
		start := pixelAt(rec.Year, rec.Subtick)
		end := pixelAt(endYear, endSubtick)
		y := axisY + cfg.Layout.LineSpacing
		c := r.recordColor(rec, cfg.Colors.Age)
		out = append(out, rangeWithCaps(start, end, y, c)...)
	}
	return out
}

func rangeWithCaps(start, end, y float64, c color.Color) []fyne.CanvasObject {
	line := canvas.NewLine(c)
	line.Position1 = fyne.NewPos(float32(start), float32(y))
	line.Position2 = fyne.NewPos(float32(end), float32(y))
	line.StrokeWidth = 3

	const capHalf = 3
	capStart := canvas.NewLine(c)
	capStart.Position1 = fyne.NewPos(float32(start), float32(y-capHalf))
	capStart.Position2 = fyne.NewPos(float32(start), float32(y+capHalf))
	capStart.StrokeWidth = 2
	capEnd := canvas.NewLine(c)
	capEnd.Position1 = fyne.NewPos(float32(end), float32(y-capHalf))
	capEnd.Position2 = fyne.NewPos(float32(end), float32(y+capHalf))
	capEnd.StrokeWidth = 2

	return []fyne.CanvasObject{line, capStart, capEnd}
}

// pointMarkers draws point records as a stem with a dot above the axis.
// Records of unknown kind are skipped rather than aborting the pass.
func (r *overviewRenderer) pointMarkers(items []timeline.Record, minYear, maxYear, width, axisY float64) []fyne.CanvasObject {
	cfg := r.w.cfg

	var out []fyne.CanvasObject
	for _, rec := range items {
		var fallback string
		switch rec.Kind {
		case timeline.KindEvent:
			fallback = cfg.Colors.Event
		case timeline.KindNote:
			fallback = cfg.Colors.Note
		case timeline.KindPicture:
			fallback = cfg.Colors.Picture
		case timeline.KindCharacter:
			fallback = cfg.Colors.Character
		case timeline.KindPeriod:
			if rec.IsRange() {
				continue // handled by the range stage
			}
			// A period without an end degrades to a point marker.
			fallback = cfg.Colors.Period
		default:
			continue
		}

		g := float64(r.w.state.Granularity())
		x := timeline.OverviewPixelAtYear(rec.Year+rec.Subtick/g, minYear, maxYear, width)
		c := r.recordColor(rec, fallback)

		stem := canvas.NewLine(c)
		stem.Position1 = fyne.NewPos(float32(x), float32(axisY))
		stem.Position2 = fyne.NewPos(float32(x), float32(axisY-cfg.Layout.StemHeight))
		stem.StrokeWidth = 1

		dot := canvas.NewCircle(c)
		rad := cfg.Layout.MarkerRadius
		dot.Move(fyne.NewPos(float32(x-rad), float32(axisY-cfg.Layout.StemHeight-2*rad)))
		dot.Resize(fyne.NewSize(float32(2*rad), float32(2*rad)))

		out = append(out, stem, dot)
	}
	return out
}

// specialMarkers draws the single-instance markers: bookmarks at axis height
// (hit-testable) and the start/end boundary sentinels, each behind a soft
// glow disc.
func (r *overviewRenderer) specialMarkers(items []timeline.Record, minYear, maxYear, width, axisY float64) []fyne.CanvasObject {
	cfg := r.w.cfg
	g := float64(r.w.state.Granularity())

	var out []fyne.CanvasObject
	for _, rec := range items {
		var fallback string
		switch rec.Kind {
		case timeline.KindBookmark:
			fallback = cfg.Colors.Bookmark
		case timeline.KindStartBoundary, timeline.KindEndBoundary:
			fallback = cfg.Colors.Boundary
		default:
			continue
		}

		x := timeline.OverviewPixelAtYear(rec.Year+rec.Subtick/g, minYear, maxYear, width)
		c := r.recordColor(rec, fallback)

		glowColor := toNRGBA(c)
		glowColor.A = 0x40
		glow := canvas.NewCircle(glowColor)
		gr := cfg.Layout.GlowRadius
		glow.Move(fyne.NewPos(float32(x-gr), float32(axisY-gr)))
		glow.Resize(fyne.NewSize(float32(2*gr), float32(2*gr)))
		out = append(out, glow)

		switch rec.Kind {
		case timeline.KindBookmark:
			rad := cfg.Layout.MarkerRadius + 1
			dot := canvas.NewCircle(c)
			dot.Move(fyne.NewPos(float32(x-rad), float32(axisY-rad)))
			dot.Resize(fyne.NewSize(float32(2*rad), float32(2*rad)))
			out = append(out, dot)
		default:
			post := canvas.NewLine(c)
			post.Position1 = fyne.NewPos(float32(x), float32(axisY-14))
			post.Position2 = fyne.NewPos(float32(x), float32(axisY+6))
			post.StrokeWidth = 2.5
			out = append(out, post)
		}
	}
	return out
}

// yearTicks draws the fixed set of ticks across the observed range, labeling
// every fourth one with its rounded year. The first and last labels are
// nudged inward by 60% of their own width so they stay on the surface.
func (r *overviewRenderer) yearTicks(minYear, maxYear, width, axisY float64) []fyne.CanvasObject {
	cfg := r.w.cfg
	axisColor := hexColor(cfg.Colors.Axis, color.NRGBA{R: 0x9a, G: 0x9a, B: 0xa8, A: 0xff})
	textColor := hexColor(cfg.Colors.Text, color.NRGBA{R: 0xd8, G: 0xd8, B: 0xe0, A: 0xff})

	lastLabeled := ((overviewTickCount - 1) / 4) * 4

	var out []fyne.CanvasObject
	for i := 0; i < overviewTickCount; i++ {
		frac := float64(i) / float64(overviewTickCount-1)
		year := minYear + (maxYear-minYear)*frac
		x := timeline.OverviewPixelAtYear(year, minYear, maxYear, width)
		if maxYear == minYear {
			x = 0
		}

		tick := canvas.NewLine(axisColor)
		tick.Position1 = fyne.NewPos(float32(x), float32(axisY))
		tick.Position2 = fyne.NewPos(float32(x), float32(axisY+4))
		tick.StrokeWidth = 1
		out = append(out, tick)

		if i%4 != 0 {
			continue
		}
		label := canvas.NewText(fmt.Sprintf("%d", int(math.Round(year))), textColor)
		label.TextSize = 11
		labelWidth := float64(label.MinSize().Width)
		lx := x - labelWidth/2
		switch i {
		case 0:
			lx += labelWidth * 0.6
		case lastLabeled:
			lx -= labelWidth * 0.6
		}
		label.Move(fyne.NewPos(float32(lx), float32(axisY+6)))
		out = append(out, label)
	}
	return out
}

// readout shows the year currently centred in the primary view, derived from
// its focus year and pan offset rather than the overview's own domain.
func (r *overviewRenderer) readout(width, height float64) fyne.CanvasObject {
	t := canvas.NewText(r.readoutText(), hexColor(r.w.cfg.Colors.Text, color.White))
	t.TextSize = 12
	t.TextStyle = fyne.TextStyle{Bold: true}
	t.Move(fyne.NewPos(float32(width)-t.MinSize().Width-8, float32(height)-t.MinSize().Height-2))
	return t
}

func (r *overviewRenderer) centeredReadout(width, height float64) fyne.CanvasObject {
	t := canvas.NewText(r.readoutText(), hexColor(r.w.cfg.Colors.Text, color.White))
	t.TextSize = 12
	t.TextStyle = fyne.TextStyle{Bold: true}
	size := t.MinSize()
	t.Move(fyne.NewPos((float32(width)-size.Width)/2, (float32(height)-size.Height)/2))
	return t
}

func (r *overviewRenderer) readoutText() string {
	v := r.w.state
	current := v.FocusYear() - v.OffsetPx()/v.PixelsPerYear()
	return fmt.Sprintf("Year %d", int(math.Round(current)))
}

// tooltip draws the floating label bubble for the hovered bookmark: rounded
// rectangle, connector line down to the marker, title and year.
func (r *overviewRenderer) tooltip(bm *timeline.Record, minYear, maxYear, width, axisY float64) []fyne.CanvasObject {
	cfg := r.w.cfg
	g := float64(r.w.state.Granularity())
	x := timeline.OverviewPixelAtYear(bm.Year+bm.Subtick/g, minYear, maxYear, width)

	text := canvas.NewText(fmt.Sprintf("%s (%d)", bm.Title, int(math.Round(bm.Year))), color.Black)
	text.TextSize = 11
	textSize := text.MinSize()

	pad := float32(cfg.Layout.TooltipPadding)
	bubbleW := textSize.Width + 2*pad
	bubbleH := textSize.Height + 2*pad
	bubbleX := float32(x) - bubbleW/2
	if bubbleX < 0 {
		bubbleX = 0
	}
	if bubbleX+bubbleW > float32(width) {
		bubbleX = float32(width) - bubbleW
	}
	bubbleY := float32(axisY) - 26 - bubbleH

	accent := hexColor(cfg.Colors.Bookmark, color.NRGBA{R: 0xff, G: 0xd1, B: 0x66, A: 0xff})

	connector := canvas.NewLine(accent)
	connector.Position1 = fyne.NewPos(float32(x), float32(axisY))
	connector.Position2 = fyne.NewPos(float32(x), bubbleY+bubbleH)
	connector.StrokeWidth = 1

	bubble := canvas.NewRectangle(color.NRGBA{R: 0xf2, G: 0xf2, B: 0xf2, A: 0xf0})
	bubble.CornerRadius = 5
	bubble.StrokeColor = accent
	bubble.StrokeWidth = 1
	bubble.Move(fyne.NewPos(bubbleX, bubbleY))
	bubble.Resize(fyne.NewSize(bubbleW, bubbleH))

	text.Move(fyne.NewPos(bubbleX+pad, bubbleY+pad))

	return []fyne.CanvasObject{connector, bubble, text}
}

func (r *overviewRenderer) recordColor(rec timeline.Record, fallback string) color.Color {
	if rec.Color != "" {
		if c, ok := config.ParseHex(rec.Color); ok {
			return c
		}
	}
	return hexColor(fallback, color.White)
}

func hexColor(s string, fallback color.Color) color.Color {
	if c, ok := config.ParseHex(s); ok {
		return c
	}
	return fallback
}

func toNRGBA(c color.Color) color.NRGBA {
	r, g, b, a := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
