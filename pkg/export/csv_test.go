package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkoehlmann/pitbook-go/pkg/analytics"
	"github.com/pkoehlmann/pitbook-go/pkg/model"
	"github.com/pkoehlmann/pitbook-go/testsupport/basedata"
)

func sampleSnapshot() *analytics.Snapshot {
	car := basedata.SampleCar()
	track := basedata.SampleTrack()
	event := basedata.SampleEvent(track.ID, "2024-05-04")
	su := basedata.SampleSetup("s1", car.ID, nil)
	return &analytics.Snapshot{
		CarsByID:   map[string]*model.Car{car.ID: car},
		TracksByID: map[string]*model.Track{track.ID: track},
		EventsByID: map[string]*model.Event{event.ID: event},
		SetupsByID: map[string]*model.Setup{su.ID: su},
	}
}

func TestWriteRunsCSV(t *testing.T) {
	snap := sampleSnapshot()
	rl := basedata.SampleRunLog("r1", "event-2024-05-04", "car1")
	rl.SetupID = "s1"
	runs := []analytics.EnrichedRun{{
		RunLog:    *rl,
		EventDate: "2024-05-04",
		TrackID:   "track1",
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteRunsCSV(&buf, runs, snap))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, runCSVHeader, records[0])
	row := records[1]
	assert.Equal(t, "2024-05-04", row[0])
	assert.Equal(t, "Club race 2024-05-04", row[1])
	assert.Equal(t, "Riverside RC Raceway", row[2])
	assert.Equal(t, "TLR 22X-4", row[3])
	assert.Equal(t, "14.2", row[5])
	assert.Equal(t, "14.533", row[6])
	assert.Equal(t, "21", row[7])
	assert.Equal(t, "baseline", row[10])
}

func TestWriteRunsCSV_MissingReferences(t *testing.T) {
	snap := &analytics.Snapshot{
		CarsByID:   map[string]*model.Car{},
		TracksByID: map[string]*model.Track{},
		EventsByID: map[string]*model.Event{},
		SetupsByID: map[string]*model.Setup{},
	}
	runs := []analytics.EnrichedRun{{RunLog: *basedata.SampleRunLog("r1", "gone", "gone")}}

	var buf bytes.Buffer
	require.NoError(t, WriteRunsCSV(&buf, runs, snap))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Empty(t, records[1][1])
	assert.Empty(t, records[1][2])
	// createdAt day substitutes for the missing event date
	assert.Equal(t, basedata.TestTime().Local().Format(model.DateLayout), records[1][0])
}
