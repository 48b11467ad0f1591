package model

import "time"

// DateLayout is the storage format for calendar dates. Event dates are
// timezone-naive wall clock dates and must never be shifted through UTC.
const DateLayout = "2006-01-02"

type Event struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	TrackID string `json:"trackId"`
	// calendar date, YYYY-MM-DD
	Date string `json:"date"`
	// optional time of day, HH:MM
	StartTime      string    `json:"startTime,omitempty"`
	CarIDs         []string  `json:"carIds"`
	Notes          string    `json:"notes"`
	LiveRCEventURL string    `json:"liveRcEventUrl"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
