package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkoehlmann/pitbook-go/pkg/model"
)

// WriteEventsICS writes the events as a VCALENDAR. Events without a start
// time become all-day entries. Dates are emitted as floating local values,
// matching their timezone-naive storage.
func WriteEventsICS(w io.Writer, events []*model.Event, tracksByID map[string]*model.Track) error {
	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\r\n")
	b.WriteString("VERSION:2.0\r\n")
	b.WriteString("PRODID:-//pitbook//logbook//EN\r\n")
	for _, ev := range events {
		if ev.Date == "" {
			continue
		}
		b.WriteString("BEGIN:VEVENT\r\n")
		fmt.Fprintf(&b, "UID:%s@pitbook\r\n", ev.ID)
		day := strings.ReplaceAll(ev.Date, "-", "")
		if ev.StartTime != "" {
			clock := strings.ReplaceAll(ev.StartTime, ":", "")
			fmt.Fprintf(&b, "DTSTART:%sT%s00\r\n", day, clock)
		} else {
			fmt.Fprintf(&b, "DTSTART;VALUE=DATE:%s\r\n", day)
		}
		fmt.Fprintf(&b, "SUMMARY:%s\r\n", escapeICS(ev.Title))
		if tr, ok := tracksByID[ev.TrackID]; ok {
			location := tr.Name
			if tr.Address != "" {
				location += ", " + tr.Address
			}
			fmt.Fprintf(&b, "LOCATION:%s\r\n", escapeICS(location))
		}
		if ev.Notes != "" {
			fmt.Fprintf(&b, "DESCRIPTION:%s\r\n", escapeICS(ev.Notes))
		}
		b.WriteString("END:VEVENT\r\n")
	}
	b.WriteString("END:VCALENDAR\r\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func escapeICS(s string) string {
	r := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\n", "\\n",
		"\r", "",
	)
	return r.Replace(s)
}
