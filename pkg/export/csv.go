// Package export renders logbook data for consumption outside the app:
// CSV for spreadsheets, ICS for calendars and a JSON backup of everything.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/pkoehlmann/pitbook-go/pkg/analytics"
	"github.com/pkoehlmann/pitbook-go/pkg/model"
)

var runCSVHeader = []string{
	"date", "event", "track", "car", "session", "best_lap", "avg_lap",
	"laps", "time_seconds", "position", "setup", "notes",
}

// WriteRunsCSV writes one row per run, with references resolved to names.
// Missing references degrade to empty cells instead of failing the export.
func WriteRunsCSV(w io.Writer, runs []analytics.EnrichedRun, snap *analytics.Snapshot) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(runCSVHeader); err != nil {
		return err
	}
	for i := range runs {
		r := &runs[i]
		if err := cw.Write(runCSVRow(r, snap)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func runCSVRow(r *analytics.EnrichedRun, snap *analytics.Snapshot) []string {
	eventTitle, trackName, carName, setupLabel := "", "", "", ""
	if ev, ok := snap.EventsByID[r.EventID]; ok {
		eventTitle = ev.Title
	}
	if tr, ok := snap.TracksByID[r.TrackID]; ok {
		trackName = tr.Name
	}
	if c, ok := snap.CarsByID[r.CarID]; ok {
		carName = c.Name
	}
	if s, ok := snap.SetupsByID[r.SetupID]; ok {
		setupLabel = s.VersionLabel
	}
	date := r.EventDate
	if date == "" {
		date = r.CreatedAt.Local().Format(model.DateLayout)
	}
	return []string{
		date, eventTitle, trackName, carName, r.SessionType,
		r.BestLap, r.AvgLap,
		fmt.Sprintf("%d", r.TotalLaps),
		formatSeconds(r.TimeSeconds),
		r.Position, setupLabel, r.Notes,
	}
}

func formatSeconds(v float64) string {
	if v == 0 {
		return ""
	}
	return fmt.Sprintf("%.3f", v)
}
