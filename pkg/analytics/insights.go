package analytics

import (
	"fmt"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"

	"github.com/pkoehlmann/pitbook-go/pkg/model"
)

// Highlight is one card shown on the stats overview.
type Highlight struct {
	Title  string
	Value  string
	Detail string
}

// BuildHighlights derives up to three highlight cards from the filtered runs:
// the track with the lowest mean average lap, the most used car and the most
// improved day. Cards without qualifying data are simply omitted.
func BuildHighlights(
	runs []EnrichedRun,
	tracksByID map[string]*model.Track,
	carsByID map[string]*model.Car,
) []Highlight {
	highlights := make([]Highlight, 0, 3)
	if h, ok := bestTrackHighlight(runs, tracksByID); ok {
		highlights = append(highlights, h)
	}
	if h, ok := mostUsedCarHighlight(runs, carsByID); ok {
		highlights = append(highlights, h)
	}
	if h, ok := mostImprovedDayHighlight(runs); ok {
		highlights = append(highlights, h)
	}
	return highlights
}

func bestTrackHighlight(runs []EnrichedRun, tracksByID map[string]*model.Track) (Highlight, bool) {
	withTrack := lo.Filter(runs, func(run EnrichedRun, _ int) bool {
		return run.TrackID != "" && run.AvgLapNum != nil
	})
	if len(withTrack) == 0 {
		return Highlight{}, false
	}
	byTrack := lo.GroupBy(withTrack, func(run EnrichedRun) string {
		return run.TrackID
	})
	bestID := ""
	bestMean := 0.0
	for trackID, trackRuns := range byTrack {
		mean := stat.Mean(validAvgLaps(trackRuns), nil)
		if bestID == "" || mean < bestMean ||
			(mean == bestMean && trackID < bestID) {
			bestID, bestMean = trackID, mean
		}
	}
	return Highlight{
		Title: "Best track",
		Value: trackName(bestID, tracksByID),
		Detail: fmt.Sprintf("mean average lap %.3fs over %d run(s)",
			bestMean, len(byTrack[bestID])),
	}, true
}

func mostUsedCarHighlight(runs []EnrichedRun, carsByID map[string]*model.Car) (Highlight, bool) {
	if len(runs) == 0 {
		return Highlight{}, false
	}
	counts := lo.CountValuesBy(runs, func(run EnrichedRun) string {
		return run.CarID
	})
	bestID := ""
	bestCount := 0
	for carID, count := range counts {
		if count > bestCount || (count == bestCount && carID < bestID) {
			bestID, bestCount = carID, count
		}
	}
	name := "Unknown car"
	if c, ok := carsByID[bestID]; ok {
		name = c.Name
	}
	return Highlight{
		Title:  "Most used car",
		Value:  name,
		Detail: fmt.Sprintf("%d run(s)", bestCount),
	}, true
}

// mostImprovedDayHighlight looks at adjacent runs across the whole filtered
// set (not per car or track) and picks the pair with the largest best lap
// improvement.
func mostImprovedDayHighlight(runs []EnrichedRun) (Highlight, bool) {
	withBest := lo.Filter(runs, func(run EnrichedRun, _ int) bool {
		return run.BestLapNum != nil
	})
	if len(withBest) < 2 {
		return Highlight{}, false
	}
	ordered := make([]EnrichedRun, len(withBest))
	copy(ordered, withBest)
	sortChronologically(ordered)

	bestDelta := 0.0
	bestIdx := -1
	for i := 1; i < len(ordered); i++ {
		delta := *ordered[i].BestLapNum - *ordered[i-1].BestLapNum
		if delta < bestDelta {
			bestDelta = delta
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		// no improvement anywhere, no card
		return Highlight{}, false
	}
	return Highlight{
		Title:  "Most improved day",
		Value:  dayKey(ordered[bestIdx]),
		Detail: fmt.Sprintf("best lap improved by %.3fs", -bestDelta),
	}, true
}
