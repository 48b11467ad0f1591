package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"

	"github.com/pkoehlmann/pitbook-go/pkg/diff"
	"github.com/pkoehlmann/pitbook-go/pkg/model"
	setuputil "github.com/pkoehlmann/pitbook-go/pkg/setup"
)

// Comparison describes one pair of consecutive runs of the same car on the
// same track that used different setups.
type Comparison struct {
	// day of the later run
	Date      string
	CarID     string
	TrackID   string
	TrackName string

	PrevSetupID string
	CurrSetupID string
	// number of fields that differ between the two normalized setups
	ChangeCount int
	// later best lap minus earlier best lap; negative means improvement
	BestLapDelta float64
	Note         string
}

// ChangeAnalysis is directional feedback, not a statistical claim: it pairs
// setup changes with lap time movement without controlling for anything else
// (weather, traction, driving).
type ChangeAnalysis struct {
	Comparisons []Comparison
	Insights    []string
}

const minComparisonsForInsights = 3

// AnalyzeSetupChanges pairs consecutive runs per car and track whose setups
// differ, diffs the setups and correlates change volume with lap time deltas.
// Runs without a setup reference or without a valid best lap are ignored, as
// are pairs where either setup record no longer exists.
func AnalyzeSetupChanges(
	runs []EnrichedRun,
	setupsByID map[string]*model.Setup,
	tracksByID map[string]*model.Track,
) ChangeAnalysis {
	eligible := lo.Filter(runs, func(run EnrichedRun, _ int) bool {
		return run.SetupID != "" && run.BestLapNum != nil
	})
	type groupKey struct{ carID, trackID string }
	groups := lo.GroupBy(eligible, func(run EnrichedRun) groupKey {
		return groupKey{carID: run.CarID, trackID: run.TrackID}
	})

	comparisons := make([]Comparison, 0)
	for key, groupRuns := range groups {
		sortChronologically(groupRuns)
		for i := 1; i < len(groupRuns); i++ {
			prev, curr := groupRuns[i-1], groupRuns[i]
			if prev.SetupID == curr.SetupID {
				continue
			}
			prevSetup, okPrev := setupsByID[prev.SetupID]
			currSetup, okCurr := setupsByID[curr.SetupID]
			if !okPrev || !okCurr {
				// deleted setups drop the pair, not the whole analysis
				continue
			}
			rows := diff.Objects(
				setuputil.Decompose(setuputil.Normalize(prevSetup)),
				setuputil.Decompose(setuputil.Normalize(currSetup)))
			changeCount := lo.CountBy(rows, func(r diff.Row) bool { return r.Changed })
			delta := *curr.BestLapNum - *prev.BestLapNum
			comparisons = append(comparisons, Comparison{
				Date:         dayKey(curr),
				CarID:        key.carID,
				TrackID:      key.trackID,
				TrackName:    trackName(key.trackID, tracksByID),
				PrevSetupID:  prev.SetupID,
				CurrSetupID:  curr.SetupID,
				ChangeCount:  changeCount,
				BestLapDelta: delta,
				Note:         deltaNote(delta),
			})
		}
	}
	sort.SliceStable(comparisons, func(i, j int) bool {
		return comparisons[i].Date < comparisons[j].Date
	})
	return ChangeAnalysis{
		Comparisons: comparisons,
		Insights:    buildChangeInsights(comparisons),
	}
}

func deltaNote(delta float64) string {
	switch {
	case delta < 0:
		return fmt.Sprintf("Improved by %.3fs", -delta)
	case delta > 0:
		return fmt.Sprintf("Slower by %.3fs", delta)
	default:
		return "No change"
	}
}

//nolint:lll // bucket table
var changeBuckets = []struct {
	label    string
	min, max int
}{
	{label: "Small changes (1-3 fields)", min: 1, max: 3},
	{label: "Medium changes (4-10 fields)", min: 4, max: 10},
	{label: "Large changes (10+ fields)", min: 11, max: int(^uint(0) >> 1)},
}

func buildChangeInsights(comparisons []Comparison) []string {
	if len(comparisons) == 0 {
		return nil
	}
	if len(comparisons) < minComparisonsForInsights {
		return []string{fmt.Sprintf(
			"Not enough data for setup insights yet — %d comparison(s) so far, need at least %d.",
			len(comparisons), minComparisonsForInsights)}
	}
	insights := make([]string, 0, len(changeBuckets))
	for _, bucket := range changeBuckets {
		deltas := lo.FilterMap(comparisons, func(c Comparison, _ int) (float64, bool) {
			return c.BestLapDelta, c.ChangeCount >= bucket.min && c.ChangeCount <= bucket.max
		})
		if len(deltas) == 0 {
			continue
		}
		insights = append(insights, fmt.Sprintf(
			"%s: average best lap delta %+.3fs over %d comparison(s)",
			bucket.label, stat.Mean(deltas, nil), len(deltas)))
	}
	return insights
}

// sortChronologically orders runs by event date, falling back to the
// creation timestamp when the event date is missing or ties.
func sortChronologically(runs []EnrichedRun) {
	sort.SliceStable(runs, func(i, j int) bool {
		ti, tj := sortTime(runs[i]), sortTime(runs[j])
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return runs[i].CreatedAt.Before(runs[j].CreatedAt)
	})
}

func sortTime(run EnrichedRun) time.Time {
	if run.EventDate != "" {
		if t, err := time.ParseInLocation(model.DateLayout, run.EventDate, time.Local); err == nil {
			return t
		}
	}
	return run.CreatedAt
}
