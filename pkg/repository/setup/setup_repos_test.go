package setup

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkoehlmann/pitbook-go/pkg/model"
	"github.com/pkoehlmann/pitbook-go/testsupport/basedata"
	"github.com/pkoehlmann/pitbook-go/testsupport/testdb"
)

func TestSaveLoad_RoundTripsSetupData(t *testing.T) {
	db := testdb.Setup(t)
	ctx := context.Background()

	s := basedata.SampleSetup("s1", "car1", func(d *model.SetupData) {
		d.Chassis.RideHeightF = "21mm"
		d.Electronics.MotorTiming = "55°"
	})
	require.NoError(t, Save(ctx, db, s))

	got, err := LoadByID(ctx, db, "s1")
	require.NoError(t, err)
	if diff := cmp.Diff(s.Data, got.Data); diff != "" {
		t.Errorf("setup data not round tripped (-want +got):\n%s", diff)
	}
	assert.Equal(t, model.CurrentSetupSchemaVersion, got.SchemaVersion)
}

func TestSave_KeepsLegacySchemaVersion(t *testing.T) {
	db := testdb.Setup(t)
	ctx := context.Background()

	s := basedata.SampleSetup("s1", "car1", nil)
	s.SchemaVersion = 1
	s.Data = model.SetupData{RideHeight: "20mm", Springs: "4.4"}
	require.NoError(t, Save(ctx, db, s))

	got, err := LoadByID(ctx, db, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, got.SchemaVersion)
	assert.Equal(t, "20mm", got.Data.RideHeight)
	assert.Equal(t, "4.4", got.Data.Springs)
}

func TestLoadByCarID(t *testing.T) {
	db := testdb.Setup(t)
	ctx := context.Background()

	require.NoError(t, Save(ctx, db, basedata.SampleSetup("s1", "car1", nil)))
	require.NoError(t, Save(ctx, db, basedata.SampleSetup("s2", "car1", nil)))
	require.NoError(t, Save(ctx, db, basedata.SampleSetup("s3", "car2", nil)))

	got, err := LoadByCarID(ctx, db, "car1")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
