package analytics

import (
	"sort"
	"time"

	"github.com/samber/lo"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gonum.org/v1/gonum/stat"

	"github.com/pkoehlmann/pitbook-go/pkg/model"
)

// Filter restricts the run set. All criteria are optional and combine with
// AND. Note: the date range tests the run's createdAt, while the trend series
// buckets by event date — this asymmetry is inherited behavior and kept on
// purpose (see the aggregate tests).
type Filter struct {
	CarID       string
	TrackID     string
	SessionType string
	// inclusive calendar dates, YYYY-MM-DD, applied to run createdAt
	DateFrom string
	DateTo   string
}

type KPIs struct {
	// minimum of all valid best laps, nil without data
	BestLapMin *float64
	// mean of all valid average laps; falls back to the mean of best laps
	// when no average lap is available (approximation, not a true average)
	AvgLapMean *float64
	RunCount   int
	// distinct events among the filtered runs
	EventCount int
}

type TrendPoint struct {
	// day bucket, YYYY-MM-DD
	Date    string
	BestLap *float64
	AvgLap  *float64
}

type TrackSummary struct {
	TrackID    string
	TrackName  string
	BestLapMin *float64
	AvgLapMean *float64
	RunCount   int
}

type AggregateInput struct {
	Runs       []EnrichedRun
	EventsByID map[string]*model.Event
	TracksByID map[string]*model.Track
	Filter     Filter
}

type AggregateResult struct {
	FilteredRuns []EnrichedRun
	KPIs         KPIs
	Trend        []TrendPoint
	ByTrack      []TrackSummary
}

// AggregateRuns filters the enriched runs and reduces them to KPIs, a
// day-bucketed trend series and a per-track summary. Zero matching runs is a
// normal state and yields empty-but-valid output.
func AggregateRuns(in AggregateInput) AggregateResult {
	filtered := filterRuns(in)
	return AggregateResult{
		FilteredRuns: filtered,
		KPIs:         computeKPIs(filtered),
		Trend:        computeTrend(filtered),
		ByTrack:      computeByTrack(filtered, in.TracksByID),
	}
}

func filterRuns(in AggregateInput) []EnrichedRun {
	f := in.Filter
	from, hasFrom := parseDayStart(f.DateFrom)
	to, hasTo := parseDayEnd(f.DateTo)
	return lo.Filter(in.Runs, func(run EnrichedRun, _ int) bool {
		if f.CarID != "" && run.CarID != f.CarID {
			return false
		}
		if f.TrackID != "" {
			// resolved through the event; a missing event fails closed
			ev, ok := in.EventsByID[run.EventID]
			if !ok || ev.TrackID != f.TrackID {
				return false
			}
		}
		if f.SessionType != "" && run.SessionType != f.SessionType {
			return false
		}
		if hasFrom && run.CreatedAt.Before(from) {
			return false
		}
		if hasTo && run.CreatedAt.After(to) {
			return false
		}
		return true
	})
}

func computeKPIs(runs []EnrichedRun) KPIs {
	best := validBestLaps(runs)
	avg := validAvgLaps(runs)
	kpis := KPIs{RunCount: len(runs)}
	if len(best) > 0 {
		m := lo.Min(best)
		kpis.BestLapMin = &m
	}
	switch {
	case len(avg) > 0:
		m := stat.Mean(avg, nil)
		kpis.AvgLapMean = &m
	case len(best) > 0:
		m := stat.Mean(best, nil)
		kpis.AvgLapMean = &m
	}
	eventIDs := lo.FilterMap(runs, func(run EnrichedRun, _ int) (string, bool) {
		return run.EventID, run.EventID != ""
	})
	kpis.EventCount = len(lo.Uniq(eventIDs))
	return kpis
}

func computeTrend(runs []EnrichedRun) []TrendPoint {
	byDay := lo.GroupBy(runs, dayKey)
	days := lo.Keys(byDay)
	sort.Strings(days)
	points := make([]TrendPoint, 0, len(days))
	for _, day := range days {
		dayRuns := byDay[day]
		point := TrendPoint{Date: day}
		if best := validBestLaps(dayRuns); len(best) > 0 {
			m := lo.Min(best)
			point.BestLap = &m
		}
		if avg := validAvgLaps(dayRuns); len(avg) > 0 {
			m := stat.Mean(avg, nil)
			point.AvgLap = &m
		}
		points = append(points, point)
	}
	return points
}

func computeByTrack(runs []EnrichedRun, tracksByID map[string]*model.Track) []TrackSummary {
	withTrack := lo.Filter(runs, func(run EnrichedRun, _ int) bool {
		return run.TrackID != ""
	})
	byTrack := lo.GroupBy(withTrack, func(run EnrichedRun) string {
		return run.TrackID
	})
	summaries := make([]TrackSummary, 0, len(byTrack))
	for trackID, trackRuns := range byTrack {
		s := TrackSummary{
			TrackID:   trackID,
			TrackName: trackName(trackID, tracksByID),
			RunCount:  len(trackRuns),
		}
		if best := validBestLaps(trackRuns); len(best) > 0 {
			m := lo.Min(best)
			s.BestLapMin = &m
		}
		// no best-lap fallback per track, unlike the global KPI
		if avg := validAvgLaps(trackRuns); len(avg) > 0 {
			m := stat.Mean(avg, nil)
			s.AvgLapMean = &m
		}
		summaries = append(summaries, s)
	}
	coll := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(summaries, func(i, j int) bool {
		return coll.CompareString(summaries[i].TrackName, summaries[j].TrackName) < 0
	})
	return summaries
}

// dayKey buckets a run by calendar day: the event date when known, the
// createdAt day (local wall clock) otherwise.
func dayKey(run EnrichedRun) string {
	if run.EventDate != "" {
		return run.EventDate
	}
	return run.CreatedAt.Local().Format(model.DateLayout)
}

func trackName(trackID string, tracksByID map[string]*model.Track) string {
	if t, ok := tracksByID[trackID]; ok {
		return t.Name
	}
	return "Unknown track"
}

func validBestLaps(runs []EnrichedRun) []float64 {
	return lo.FilterMap(runs, func(run EnrichedRun, _ int) (float64, bool) {
		if run.BestLapNum == nil {
			return 0, false
		}
		return *run.BestLapNum, true
	})
}

func validAvgLaps(runs []EnrichedRun) []float64 {
	return lo.FilterMap(runs, func(run EnrichedRun, _ int) (float64, bool) {
		if run.AvgLapNum == nil {
			return 0, false
		}
		return *run.AvgLapNum, true
	})
}

// the range bounds are wall clock days; an unparseable bound is ignored

func parseDayStart(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(model.DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func parseDayEnd(s string) (time.Time, bool) {
	t, ok := parseDayStart(s)
	if !ok {
		return time.Time{}, false
	}
	// inclusive through the end of the day
	return t.Add(24*time.Hour - time.Millisecond), true
}
