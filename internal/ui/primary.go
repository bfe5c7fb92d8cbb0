package ui

import (
	"fmt"
	"image/color"
	"math"

	"Chronoline/internal/config"
	"Chronoline/internal/timeline"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog/log"
)

// MarkerListener receives the primary view's "now" marker position whenever
// it moves: the marker's left edge plus the container's left edge and width,
// all in the primary view's pixel space. The overview synchronizer registers
// one of these instead of watching the widget tree.
type MarkerListener func(markerLeft, containerLeft, containerWidth float64)

// PrimaryView is the scrollable timeline strip the user navigates. It owns
// focus-year navigation (boundary gated), pan and zoom, and pushes marker
// movement to its listeners.
type PrimaryView struct {
	widget.BaseWidget

	state     *timeline.ViewState
	cfg       *config.Config
	lastSize  fyne.Size
	listeners []MarkerListener

	// OnAddRecord is the "add record here" affordance target. It is only
	// invoked for positions that resolve inside the boundaries.
	OnAddRecord func(year, subtick float64)
}

var _ fyne.Widget = (*PrimaryView)(nil)
var _ fyne.Draggable = (*PrimaryView)(nil)
var _ fyne.SecondaryTappable = (*PrimaryView)(nil)
var _ fyne.Scrollable = (*PrimaryView)(nil)

func NewPrimaryView(state *timeline.ViewState, cfg *config.Config) *PrimaryView {
	p := &PrimaryView{state: state, cfg: cfg}
	p.ExtendBaseWidget(p)
	return p
}

// AddMarkerListener subscribes to marker movement. The listener fires once
// immediately so a late subscriber starts aligned.
func (p *PrimaryView) AddMarkerListener(fn MarkerListener) {
	p.listeners = append(p.listeners, fn)
	p.notifyMarker()
}

func (p *PrimaryView) notifyMarker() {
	width := float64(p.Size().Width)
	markerLeft := p.state.PixelAtYear(p.state.FocusYear(), width)
	for _, fn := range p.listeners {
		fn(markerLeft, 0, width)
	}
}

// JumpToYear centres the view on the given year unless it lies outside the
// boundary markers, in which case the state is left untouched.
func (p *PrimaryView) JumpToYear(year float64) bool {
	if p.state.ClampedJump(year) != year {
		log.Debug().Float64("year", year).Msg("jump outside boundaries refused")
		return false
	}
	p.state.SetOffsetPx(0)
	p.notifyMarker()
	p.Refresh()
	return true
}

// Dragged pans the strip horizontally, the same hand-drag the whiteboard
// canvas uses.
func (p *PrimaryView) Dragged(ev *fyne.DragEvent) {
	p.state.SetOffsetPx(p.state.OffsetPx() + float64(ev.Dragged.DX))
	p.notifyMarker()
	p.Refresh()
}

func (p *PrimaryView) DragEnd() {}

// Scrolled zooms by adjusting the subtick pixel width.
func (p *PrimaryView) Scrolled(ev *fyne.ScrollEvent) {
	factor := 1.2
	if ev.Scrolled.DY < 0 {
		factor = 1 / factor
	}
	px := p.state.PixelsPerSubtick() * factor
	if px < 0.05 {
		px = 0.05
	}
	if px > 200 {
		px = 200
	}
	p.state.SetPixelsPerSubtick(px)
	p.notifyMarker()
	p.Refresh()
}

// TappedSecondary is the context-menu affordance. Positions resolving outside
// the boundaries refuse to act at all.
func (p *PrimaryView) TappedSecondary(ev *fyne.PointEvent) {
	width := float64(p.Size().Width)
	year := p.state.YearAtPixel(float64(ev.Position.X), width)
	subtick := p.state.SubtickAtPixel(float64(ev.Position.X), width)
	if !timeline.IsWithinBoundaries(year, subtick, p.state.Items()) {
		log.Debug().Float64("year", year).Msg("add-record outside boundaries refused")
		return
	}
	if p.OnAddRecord != nil {
		p.OnAddRecord(year, subtick)
	}
}

func (p *PrimaryView) CreateRenderer() fyne.WidgetRenderer {
	r := &primaryRenderer{p: p}
	r.rebuild(p.Size())
	return r
}

type primaryRenderer struct {
	p       *PrimaryView
	objects []fyne.CanvasObject
}

func (r *primaryRenderer) Layout(size fyne.Size) {
	if size == r.p.lastSize {
		return
	}
	r.p.lastSize = size
	r.rebuild(size)
	r.p.notifyMarker()
}

func (r *primaryRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 90)
}

func (r *primaryRenderer) Refresh() {
	r.rebuild(r.p.Size())
	canvas.Refresh(r.p)
}

func (r *primaryRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *primaryRenderer) Destroy() {}

func (r *primaryRenderer) rebuild(size fyne.Size) {
	cfg := r.p.cfg
	state := r.p.state
	width := float64(size.Width)
	height := float64(size.Height)
	if width <= 0 || height <= 0 {
		width, height = 400, 90
	}
	baseY := height * 0.6

	bg := canvas.NewRectangle(hexColor(cfg.Colors.Background, color.NRGBA{R: 0x15, G: 0x15, B: 0x1c, A: 0xff}))
	bg.Resize(fyne.NewSize(float32(width), float32(height)))

	axisColor := hexColor(cfg.Colors.Axis, color.NRGBA{R: 0x9a, G: 0x9a, B: 0xa8, A: 0xff})
	textColor := hexColor(cfg.Colors.Text, color.NRGBA{R: 0xd8, G: 0xd8, B: 0xe0, A: 0xff})

	base := canvas.NewLine(axisColor)
	base.Position1 = fyne.NewPos(0, float32(baseY))
	base.Position2 = fyne.NewPos(float32(width), float32(baseY))
	base.StrokeWidth = 1.5

	objects := []fyne.CanvasObject{bg, base}

	// Label whole years across the visible window, thinning the step so
	// labels keep roughly 60px of room as the zoom changes.
	step := 1
	if ppy := state.PixelsPerYear(); ppy < 60 {
		step = int(math.Ceil(60 / ppy))
	}
	first := int(math.Ceil(state.YearAtPixel(0, width)))
	last := int(math.Floor(state.YearAtPixel(width, width)))
	for y := first - (first % step); y <= last; y += step {
		x := state.PixelAtYear(float64(y), width)
		if x < 0 || x > width {
			continue
		}
		tick := canvas.NewLine(axisColor)
		tick.Position1 = fyne.NewPos(float32(x), float32(baseY-4))
		tick.Position2 = fyne.NewPos(float32(x), float32(baseY+4))
		tick.StrokeWidth = 1
		objects = append(objects, tick)

		label := canvas.NewText(fmt.Sprintf("%d", y), textColor)
		label.TextSize = 11
		label.Move(fyne.NewPos(float32(x)-label.MinSize().Width/2, float32(baseY+8)))
		objects = append(objects, label)
	}

	// The "now" marker sits at the focus year's position, offset included.
	markerX := state.PixelAtYear(state.FocusYear(), width)
	marker := canvas.NewLine(hexColor(cfg.Colors.Indicator, color.White))
	marker.Position1 = fyne.NewPos(float32(markerX), 6)
	marker.Position2 = fyne.NewPos(float32(markerX), float32(height-6))
	marker.StrokeWidth = 2
	objects = append(objects, marker)

	r.objects = objects
}
