package export

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkoehlmann/pitbook-go/pkg/analytics"
	"github.com/pkoehlmann/pitbook-go/pkg/model"
	setuprepos "github.com/pkoehlmann/pitbook-go/pkg/repository/setup"
	"github.com/pkoehlmann/pitbook-go/testsupport/basedata"
	"github.com/pkoehlmann/pitbook-go/testsupport/testdb"
)

func TestBackupRoundTrip(t *testing.T) {
	db := testdb.Setup(t)
	ctx := context.Background()

	snap := &analytics.Snapshot{
		Cars:   []*model.Car{basedata.SampleCar()},
		Tracks: []*model.Track{basedata.SampleTrack()},
		Events: []*model.Event{basedata.SampleEvent("track1", "2024-05-04")},
		Setups: []*model.Setup{basedata.SampleSetup("s1", "car1", nil)},
		RunLogs: []*model.RunLog{
			basedata.SampleRunLog("r1", "event-2024-05-04", "car1"),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteBackup(&buf, snap))

	restored, err := RestoreBackup(ctx, db, &buf)
	require.NoError(t, err)
	assert.Len(t, restored.Cars, 1)
	assert.Len(t, restored.RunLogs, 1)

	// the restored rows are readable through the repositories
	su, err := setuprepos.LoadByID(ctx, db, "s1")
	require.NoError(t, err)
	assert.Equal(t, "4.4", su.Data.Suspension.SpringsF)

	loader := analytics.NewLoader(db)
	fresh, err := loader.Load(ctx, false)
	require.NoError(t, err)
	assert.Len(t, fresh.Runs, 1)
	assert.Equal(t, "2024-05-04", fresh.Runs[0].EventDate)
}

func TestRestoreBackup_RejectsUnknownVersion(t *testing.T) {
	db := testdb.Setup(t)

	_, err := RestoreBackup(context.Background(), db,
		bytes.NewReader([]byte(`{"version": 99}`)))
	assert.ErrorContains(t, err, "unsupported backup version")
}
