package runlog

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkoehlmann/pitbook-go/testsupport/basedata"
	"github.com/pkoehlmann/pitbook-go/testsupport/testdb"
)

func TestSave_DerivesAvgLap(t *testing.T) {
	db := testdb.Setup(t)
	ctx := context.Background()

	r := basedata.SampleRunLog("r1", "e1", "car1")
	r.AvgLap = "tampered"
	r.TotalLaps = 20
	r.TimeSeconds = 300
	require.NoError(t, Save(ctx, db, r))

	got, err := LoadByID(ctx, db, "r1")
	require.NoError(t, err)
	assert.Equal(t, "15.000", got.AvgLap)
}

func TestSave_NoLapsClearsAvgLap(t *testing.T) {
	db := testdb.Setup(t)
	ctx := context.Background()

	r := basedata.SampleRunLog("r1", "e1", "car1")
	r.TotalLaps = 0
	require.NoError(t, Save(ctx, db, r))

	got, err := LoadByID(ctx, db, "r1")
	require.NoError(t, err)
	assert.Empty(t, got.AvgLap)
}

func TestSave_Upsert(t *testing.T) {
	db := testdb.Setup(t)
	ctx := context.Background()

	r := basedata.SampleRunLog("r1", "e1", "car1")
	require.NoError(t, Save(ctx, db, r))
	r.Position = "1st"
	require.NoError(t, Save(ctx, db, r))

	got, err := LoadByID(ctx, db, "r1")
	require.NoError(t, err)
	assert.Equal(t, "1st", got.Position)

	all, err := LoadAll(ctx, db)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSave_AssignsID(t *testing.T) {
	db := testdb.Setup(t)
	ctx := context.Background()

	r := basedata.SampleRunLog("", "e1", "car1")
	require.NoError(t, Save(ctx, db, r))
	assert.NotEmpty(t, r.ID)
}

func TestLoadByEventID(t *testing.T) {
	db := testdb.Setup(t)
	ctx := context.Background()

	require.NoError(t, Save(ctx, db, basedata.SampleRunLog("r1", "e1", "car1")))
	require.NoError(t, Save(ctx, db, basedata.SampleRunLog("r2", "e1", "car1")))
	require.NoError(t, Save(ctx, db, basedata.SampleRunLog("r3", "e2", "car1")))

	got, err := LoadByEventID(ctx, db, "e1")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestLoadByID_Missing(t *testing.T) {
	db := testdb.Setup(t)

	_, err := LoadByID(context.Background(), db, "nope")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestDeleteByID(t *testing.T) {
	db := testdb.Setup(t)
	ctx := context.Background()

	require.NoError(t, Save(ctx, db, basedata.SampleRunLog("r1", "e1", "car1")))

	type args struct {
		id string
	}
	tests := []struct {
		name string
		args args
		want int
	}{
		{name: "existing entry", args: args{id: "r1"}, want: 1},
		{name: "unknown entry", args: args{id: "r2"}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DeleteByID(ctx, db, tt.args.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
