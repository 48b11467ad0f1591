package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkoehlmann/pitbook-go/pkg/model"
	"github.com/pkoehlmann/pitbook-go/testsupport/basedata"
)

func TestWriteEventsICS(t *testing.T) {
	track := basedata.SampleTrack()
	allDay := basedata.SampleEvent(track.ID, "2024-05-04")
	timed := basedata.SampleEvent(track.ID, "2024-05-11")
	timed.StartTime = "09:30"
	timed.Notes = "bring spare tires, and a towel"

	var buf bytes.Buffer
	require.NoError(t, WriteEventsICS(&buf, []*model.Event{allDay, timed},
		map[string]*model.Track{track.ID: track}))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR\r\n"))
	assert.Contains(t, out, "DTSTART;VALUE=DATE:20240504\r\n")
	assert.Contains(t, out, "DTSTART:20240511T093000\r\n")
	assert.Contains(t, out, "SUMMARY:Club race 2024-05-04\r\n")
	assert.Contains(t, out, "LOCATION:Riverside RC Raceway\\, 1 Track Lane\r\n")
	// commas in free text are escaped
	assert.Contains(t, out, "DESCRIPTION:bring spare tires\\, and a towel\r\n")
	assert.Equal(t, 2, strings.Count(out, "BEGIN:VEVENT"))
}

func TestWriteEventsICS_SkipsDatelessEvents(t *testing.T) {
	ev := basedata.SampleEvent("track1", "")
	var buf bytes.Buffer
	require.NoError(t, WriteEventsICS(&buf, []*model.Event{ev}, nil))
	assert.NotContains(t, buf.String(), "BEGIN:VEVENT")
}
