package analytics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	carrepos "github.com/pkoehlmann/pitbook-go/pkg/repository/car"
	eventrepos "github.com/pkoehlmann/pitbook-go/pkg/repository/event"
	runlogrepos "github.com/pkoehlmann/pitbook-go/pkg/repository/runlog"
	trackrepos "github.com/pkoehlmann/pitbook-go/pkg/repository/track"
	"github.com/pkoehlmann/pitbook-go/testsupport/basedata"
	"github.com/pkoehlmann/pitbook-go/testsupport/testdb"
)

func TestLoader_BuildAndEnrich(t *testing.T) {
	db := testdb.Setup(t)
	ctx := context.Background()

	car := basedata.SampleCar()
	track := basedata.SampleTrack()
	event := basedata.SampleEvent(track.ID, "2024-05-04")
	require.NoError(t, carrepos.Save(ctx, db, car))
	require.NoError(t, trackrepos.Save(ctx, db, track))
	require.NoError(t, eventrepos.Save(ctx, db, event))

	linked := basedata.SampleRunLog("r1", event.ID, car.ID)
	require.NoError(t, runlogrepos.Save(ctx, db, linked))
	orphan := basedata.SampleRunLog("r2", "gone", car.ID)
	orphan.BestLap = "DNF"
	require.NoError(t, runlogrepos.Save(ctx, db, orphan))

	loader := NewLoader(db)
	snap, err := loader.Load(ctx, false)
	require.NoError(t, err)

	assert.Len(t, snap.Cars, 1)
	assert.Len(t, snap.Tracks, 1)
	assert.Len(t, snap.Events, 1)
	require.Len(t, snap.Runs, 2)

	byID := map[string]EnrichedRun{}
	for _, r := range snap.Runs {
		byID[r.ID] = r
	}
	enriched := byID["r1"]
	assert.Equal(t, "2024-05-04", enriched.EventDate)
	assert.Equal(t, track.ID, enriched.TrackID)
	require.NotNil(t, enriched.BestLapNum)
	assert.InDelta(t, 14.2, *enriched.BestLapNum, 1e-9)
	require.NotNil(t, enriched.AvgLapNum)
	assert.InDelta(t, 14.533, *enriched.AvgLapNum, 1e-9)

	missing := byID["r2"]
	assert.Empty(t, missing.EventDate)
	assert.Empty(t, missing.TrackID)
	assert.Nil(t, missing.BestLapNum)
}

func TestLoader_CachesUntilInvalidated(t *testing.T) {
	db := testdb.Setup(t)
	ctx := context.Background()

	require.NoError(t, carrepos.Save(ctx, db, basedata.SampleCar()))

	loader := NewLoader(db)
	first, err := loader.Load(ctx, false)
	require.NoError(t, err)

	// a write the loader does not know about yet
	other := basedata.SampleCar()
	other.ID = "car2"
	other.Name = "Second car"
	require.NoError(t, carrepos.Save(ctx, db, other))

	cached, err := loader.Load(ctx, false)
	require.NoError(t, err)
	assert.Same(t, first, cached)
	assert.Len(t, cached.Cars, 1)

	loader.Invalidate(ctx)
	fresh, err := loader.Load(ctx, false)
	require.NoError(t, err)
	assert.NotSame(t, first, fresh)
	assert.Len(t, fresh.Cars, 2)
}

func TestLoader_ForceRefresh(t *testing.T) {
	db := testdb.Setup(t)
	ctx := context.Background()

	loader := NewLoader(db)
	first, err := loader.Load(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, first.Runs)

	require.NoError(t, carrepos.Save(ctx, db, basedata.SampleCar()))
	fresh, err := loader.Load(ctx, true)
	require.NoError(t, err)
	assert.Len(t, fresh.Cars, 1)
}
