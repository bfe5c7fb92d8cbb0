package ui

import (
	"Chronoline/internal/config"
	"Chronoline/internal/timeline"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"github.com/rs/zerolog/log"
)

// RunApp wires the engine together and runs the window: primary strip and
// toolbar on top, overview below, one shared view state, one scheduler. The
// exportFn renders the current overview to the given file path.
func RunApp(cfg *config.Config, state *timeline.ViewState, exportFn func(path string) error) {
	myApp := app.New()
	myWindow := myApp.NewWindow("Chronoline")
	myWindow.Resize(fyne.NewSize(1100, 420))

	primary := NewPrimaryView(state, cfg)
	overview := NewOverviewWidget(state, cfg)

	// Bookmark clicks navigate the primary view, never the overview itself.
	overview.OnJump = func(year, subtick float64) {
		primary.JumpToYear(year)
	}

	// The overview indicator tracks the primary marker by re-projection;
	// the two views share no coordinate space.
	markerSync := timeline.NewOverviewSync(overview.SetIndicatorX)
	overview.OnResize = markerSync.SetOverviewWidth
	primary.AddMarkerListener(markerSync.PrimaryMarkerMoved)

	// Every state mutation marks the overview dirty; the scheduler decides
	// when the redraw actually happens.
	state.OnChange(overview.MarkDirty)

	primary.OnAddRecord = func(year, subtick float64) {
		// Record creation forms live outside the engine; the gate is ours,
		// the form is not.
		log.Info().Float64("year", year).Float64("subtick", subtick).Msg("add record requested")
	}

	toolbar := NewToolbar(primary, exportFn)
	content := container.NewBorder(
		container.NewVBox(toolbar, primary), nil, nil, nil,
		overview,
	)
	myWindow.SetContent(content)

	overview.Scheduler().Start()
	myWindow.SetOnClosed(overview.Scheduler().Stop)
	myWindow.ShowAndRun()
}
