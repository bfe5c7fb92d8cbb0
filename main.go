package main

import (
	"os"
	"time"

	"Chronoline/internal/config"
	"Chronoline/internal/export"
	"Chronoline/internal/timeline"
	"Chronoline/internal/ui"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const configPath = "chronoline.yaml"

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	if os.Getenv("CHRONOLINE_DEBUG") != "" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg := config.Load(configPath)

	state := timeline.NewViewState()
	state.SetGranularity(12)
	state.SetPixelsPerSubtick(6)
	state.SetItems(sampleRecords())
	state.SetFocusYear(312)

	log.Info().Int("records", len(state.Items())).Msg("starting Chronoline")

	ui.RunApp(cfg, state, func(path string) error {
		return export.WritePDF(path, state, cfg, 842, 400)
	})
}

// sampleRecords builds a small demo timeline so the app is usable without a
// backing store attached. A real deployment replaces this set wholesale via
// ViewState.SetItems whenever the store changes.
func sampleRecords() []timeline.Record {
	records := []timeline.Record{
		timeline.NewRecord(timeline.KindStartBoundary, "Dawn of Records", 0, 0),
		timeline.NewRecord(timeline.KindEndBoundary, "Present Day", 600, 0),

		timeline.NewRangeRecord(timeline.KindAge, "Age of Founding", 10, 0, 180, 0),
		timeline.NewRangeRecord(timeline.KindAge, "Age of Expansion", 180, 0, 450, 0),

		timeline.NewRangeRecord(timeline.KindPeriod, "Reign of Aldous I", 95, 0, 142, 6),
		timeline.NewRangeRecord(timeline.KindPeriod, "The Long Drought", 120, 0, 133, 0),
		timeline.NewRangeRecord(timeline.KindPeriod, "Guild Wars", 128, 3, 167, 0),
		timeline.NewRangeRecord(timeline.KindPeriod, "Reconstruction", 167, 0, 190, 0),

		timeline.NewRecord(timeline.KindEvent, "Founding of Meridell", 12, 0),
		timeline.NewRecord(timeline.KindEvent, "The Great Fire", 131, 7),
		timeline.NewRecord(timeline.KindEvent, "Treaty of the Two Rivers", 167, 2),
		timeline.NewRecord(timeline.KindEvent, "Coronation of Mira", 312, 4),
		timeline.NewRecord(timeline.KindCharacter, "Birth of Aldous I", 71, 9),
		timeline.NewRecord(timeline.KindNote, "Calendar reform", 200, 0),
		timeline.NewRecord(timeline.KindPicture, "Map of the old city", 260, 0),

		timeline.NewRecord(timeline.KindBookmark, "Current chapter", 312, 0),
		timeline.NewRecord(timeline.KindBookmark, "Research: drought", 125, 0),
	}
	return records
}
