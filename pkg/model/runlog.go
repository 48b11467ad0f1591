package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// session types as used in run logs; stored as free text, these are the
// values the UI offers
const (
	SessionPractice = "Practice"
	SessionQ1       = "Q1"
	SessionQ2       = "Q2"
	SessionQ3       = "Q3"
	SessionMain     = "Main"
	SessionOther    = "Other"
)

type RunLog struct {
	ID          string `json:"id"`
	EventID     string `json:"eventId"`
	CarID       string `json:"carId"`
	SessionType string `json:"sessionType"`
	SetupID     string `json:"setupId,omitempty"`
	// best lap as entered, free text; parsed lazily by analytics
	BestLap string `json:"bestLap"`
	// derived from TimeSeconds/TotalLaps at write time, fixed 3 decimals
	AvgLap      string    `json:"avgLap"`
	TotalLaps   int       `json:"totalLaps"`
	TimeSeconds float64   `json:"time"`
	Position    string    `json:"position"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// RecalcAvgLap derives AvgLap from elapsed time and lap count. AvgLap is not
// independently editable; every write path calls this.
func (r *RunLog) RecalcAvgLap() {
	if r.TotalLaps <= 0 || r.TimeSeconds <= 0 {
		r.AvgLap = ""
		return
	}
	avg := decimal.NewFromFloat(r.TimeSeconds).
		Div(decimal.NewFromInt(int64(r.TotalLaps)))
	r.AvgLap = avg.StringFixed(3)
}
