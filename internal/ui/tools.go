package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog/log"
)

// NewToolbar builds the navigation bar above the primary strip: direct year
// entry (boundary gated through JumpToYear), zoom buttons and PDF export.
func NewToolbar(primary *PrimaryView, exportFn func(path string) error) fyne.CanvasObject {
	yearEntry := widget.NewEntry()
	yearEntry.SetPlaceHolder("Year…")

	jump := func() {
		year, err := strconv.ParseFloat(yearEntry.Text, 64)
		if err != nil {
			log.Debug().Str("input", yearEntry.Text).Msg("ignoring non-numeric jump target")
			return
		}
		primary.JumpToYear(year)
	}
	yearEntry.OnSubmitted = func(string) { jump() }
	goBtn := widget.NewButton("Go", jump)

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.ZoomInIcon(), func() {
			primary.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.Delta{DY: 1}})
		}),
		widget.NewToolbarAction(theme.ZoomOutIcon(), func() {
			primary.Scrolled(&fyne.ScrollEvent{Scrolled: fyne.Delta{DY: -1}})
		}),
	)

	exportBtn := widget.NewButton("Export PDF", func() {
		if exportFn == nil {
			return
		}
		if err := exportFn("chronoline.pdf"); err != nil {
			log.Error().Err(err).Msg("pdf export failed")
			return
		}
		log.Info().Str("path", "chronoline.pdf").Msg("overview exported")
	})

	entryBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(110, 36)), yearEntry)

	return container.NewHBox(
		widget.NewLabel("Jump to:"),
		entryBox,
		goBtn,
		widget.NewSeparator(),
		tb,
		widget.NewSeparator(),
		exportBtn,
		layout.NewSpacer(),
	)
}
