package export

import (
	"fmt"
	"math"

	"Chronoline/internal/config"
	"Chronoline/internal/timeline"

	"github.com/jung-kurt/gofpdf"
)

// WritePDF renders the overview geometry into a single-page PDF of the given
// surface size, using the same transforms, density buckets and stacking
// levels the on-screen renderer uses. An empty record set produces the same
// single-label page the overview shows.
func WritePDF(path string, state *timeline.ViewState, cfg *config.Config, width, height float64) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("export: invalid surface size %gx%g", width, height)
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 9)

	fillHex(pdf, cfg.Colors.Background)
	pdf.Rect(0, 0, width, height, "F")

	items := state.Items()
	minYear, maxYear, ok := timeline.TimeRange(items)
	currentYear := int(math.Round(state.FocusYear() - state.OffsetPx()/state.PixelsPerYear()))
	if !ok {
		textHex(pdf, cfg.Colors.Text)
		pdf.Text(width/2-20, height/2, fmt.Sprintf("Year %d", currentYear))
		return pdf.OutputFileAndClose(path)
	}

	axisY := height - cfg.Layout.AxisInset

	// Density band along the top.
	density := timeline.NewDensityBuilder(cfg.Density.Buckets)
	buckets := density.Buckets(state)
	barWidth := width / float64(len(buckets))
	fillHex(pdf, cfg.Colors.Histogram)
	for i, v := range buckets {
		if v <= 0 {
			continue
		}
		h := v * cfg.Layout.HistogramHeight
		pdf.Rect(float64(i)*barWidth, cfg.Layout.HistogramHeight-h, math.Max(barWidth, 1), h, "F")
	}

	g := float64(state.Granularity())
	pixelAt := func(year, subtick float64) float64 {
		return timeline.OverviewPixelAtYear(year+subtick/g, minYear, maxYear, width)
	}

	// Stacked periods above the axis, ages on one line below it.
	pdf.SetLineWidth(2)
	for _, s := range timeline.StackPeriods(items, pixelAt) {
		drawHex(pdf, colorOf(s.Record, cfg.Colors.Period))
		y := axisY - timeline.LevelOffset(s.Level, cfg.Layout.LineSpacing)
		pdf.Line(s.StartPx, y, s.EndPx, y)
		pdf.Line(s.StartPx, y-3, s.StartPx, y+3)
		pdf.Line(s.EndPx, y-3, s.EndPx, y+3)
	}
	for _, rec := range items {
		if rec.Kind != timeline.KindAge || !rec.IsRange() {
			continue
		}
		drawHex(pdf, colorOf(rec, cfg.Colors.Age))
		endYear, endSubtick := rec.End()
		y := axisY + cfg.Layout.LineSpacing
		pdf.Line(pixelAt(rec.Year, rec.Subtick), y, pixelAt(endYear, endSubtick), y)
	}

	// Point and special markers.
	pdf.SetLineWidth(1)
	for _, rec := range items {
		switch rec.Kind {
		case timeline.KindEvent, timeline.KindNote, timeline.KindPicture, timeline.KindCharacter:
			x := pixelAt(rec.Year, rec.Subtick)
			drawHex(pdf, colorOf(rec, pointColor(cfg, rec.Kind)))
			fillHex(pdf, colorOf(rec, pointColor(cfg, rec.Kind)))
			pdf.Line(x, axisY, x, axisY-cfg.Layout.StemHeight)
			pdf.Circle(x, axisY-cfg.Layout.StemHeight-cfg.Layout.MarkerRadius, cfg.Layout.MarkerRadius, "F")
		case timeline.KindBookmark:
			x := pixelAt(rec.Year, rec.Subtick)
			fillHex(pdf, colorOf(rec, cfg.Colors.Bookmark))
			pdf.Circle(x, axisY, cfg.Layout.MarkerRadius+1, "F")
		case timeline.KindStartBoundary, timeline.KindEndBoundary:
			x := pixelAt(rec.Year, rec.Subtick)
			drawHex(pdf, colorOf(rec, cfg.Colors.Boundary))
			pdf.SetLineWidth(2)
			pdf.Line(x, axisY-14, x, axisY+6)
			pdf.SetLineWidth(1)
		}
	}

	// Axis, ticks, labels and the year readout.
	drawHex(pdf, cfg.Colors.Axis)
	pdf.SetLineWidth(1)
	pdf.Line(0, axisY, width, axisY)
	textHex(pdf, cfg.Colors.Text)
	for i := 0; i < 20; i++ {
		frac := float64(i) / 19
		year := minYear + (maxYear-minYear)*frac
		x := timeline.OverviewPixelAtYear(year, minYear, maxYear, width)
		pdf.Line(x, axisY, x, axisY+4)
		if i%4 == 0 {
			pdf.Text(x-6, axisY+14, fmt.Sprintf("%d", int(math.Round(year))))
		}
	}
	pdf.Text(width-60, height-6, fmt.Sprintf("Year %d", currentYear))

	return pdf.OutputFileAndClose(path)
}

func colorOf(rec timeline.Record, fallback string) string {
	if rec.Color != "" {
		if _, ok := config.ParseHex(rec.Color); ok {
			return rec.Color
		}
	}
	return fallback
}

func pointColor(cfg *config.Config, k timeline.Kind) string {
	switch k {
	case timeline.KindNote:
		return cfg.Colors.Note
	case timeline.KindPicture:
		return cfg.Colors.Picture
	case timeline.KindCharacter:
		return cfg.Colors.Character
	default:
		return cfg.Colors.Event
	}
}

func fillHex(pdf *gofpdf.Fpdf, hex string) {
	if c, ok := config.ParseHex(hex); ok {
		pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
	}
}

func drawHex(pdf *gofpdf.Fpdf, hex string) {
	if c, ok := config.ParseHex(hex); ok {
		pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
	}
}

func textHex(pdf *gofpdf.Fpdf, hex string) {
	if c, ok := config.ParseHex(hex); ok {
		pdf.SetTextColor(int(c.R), int(c.G), int(c.B))
	}
}
