package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkoehlmann/pitbook-go/pkg/model"
)

func TestBuildHighlights_AllCards(t *testing.T) {
	tracks := map[string]*model.Track{
		"t1": {ID: "t1", Name: "Riverside"},
		"t2": {ID: "t2", Name: "Hilltop"},
	}
	cars := map[string]*model.Car{
		"c1": {ID: "c1", Name: "22X-4"},
		"c2": {ID: "c2", Name: "B7"},
	}
	runs := []EnrichedRun{
		withLaps(withEvent(run("r1", "e1", "c1"), "2024-05-01", "t1"), 15.5, 16.2),
		withLaps(withEvent(run("r2", "e2", "c1"), "2024-05-02", "t2"), 15.0, 15.5),
		withLaps(withEvent(run("r3", "e3", "c1"), "2024-05-03", "t2"), 14.6, 15.3),
		withLaps(withEvent(run("r4", "e4", "c2"), "2024-05-04", "t1"), 16.0, 16.4),
	}

	got := BuildHighlights(runs, tracks, cars)

	require.Len(t, got, 3)

	best := got[0]
	assert.Equal(t, "Best track", best.Title)
	assert.Equal(t, "Hilltop", best.Value) // mean 15.4 vs Riverside 16.3

	used := got[1]
	assert.Equal(t, "Most used car", used.Title)
	assert.Equal(t, "22X-4", used.Value)
	assert.Contains(t, used.Detail, "3 run(s)")

	improved := got[2]
	assert.Equal(t, "Most improved day", improved.Title)
	// biggest adjacent drop is r1->r2 (-0.5)
	assert.Equal(t, "2024-05-02", improved.Value)
	assert.Contains(t, improved.Detail, "0.500s")
}

func TestBuildHighlights_Empty(t *testing.T) {
	assert.Empty(t, BuildHighlights(nil, nil, nil))
}

func TestBuildHighlights_NoImprovementOmitsCard(t *testing.T) {
	runs := []EnrichedRun{
		withLaps(withEvent(run("r1", "e1", "c1"), "2024-05-01", ""), 14.0, 0),
		withLaps(withEvent(run("r2", "e2", "c1"), "2024-05-02", ""), 14.5, 0),
	}

	got := BuildHighlights(runs, nil, map[string]*model.Car{"c1": {ID: "c1", Name: "22X-4"}})

	require.Len(t, got, 1)
	assert.Equal(t, "Most used car", got[0].Title)
}

func TestBuildHighlights_UnknownReferences(t *testing.T) {
	runs := []EnrichedRun{
		withLaps(withEvent(run("r1", "e1", "cGone"), "2024-05-01", "tGone"), 15.0, 15.5),
	}

	got := BuildHighlights(runs, nil, nil)

	require.Len(t, got, 2)
	assert.Equal(t, "Unknown track", got[0].Value)
	assert.Equal(t, "Unknown car", got[1].Value)
}
