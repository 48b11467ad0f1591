package car

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkoehlmann/pitbook-go/testsupport/basedata"
	"github.com/pkoehlmann/pitbook-go/testsupport/testdb"
)

func TestSaveAndLoad(t *testing.T) {
	db := testdb.Setup(t)
	ctx := context.Background()

	c := basedata.SampleCar()
	require.NoError(t, Save(ctx, db, c))

	got, err := LoadByID(ctx, db, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "TLR 22X-4", got.Name)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestSave_AssignsID(t *testing.T) {
	db := testdb.Setup(t)
	ctx := context.Background()

	c := basedata.SampleCar()
	c.ID = ""
	require.NoError(t, Save(ctx, db, c))
	assert.NotEmpty(t, c.ID)
}

func TestSave_Upsert(t *testing.T) {
	db := testdb.Setup(t)
	ctx := context.Background()

	c := basedata.SampleCar()
	require.NoError(t, Save(ctx, db, c))
	c.Motor = "17.5T"
	require.NoError(t, Save(ctx, db, c))

	all, err := LoadAll(ctx, db)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "17.5T", all[0].Motor)
}

func TestDeleteByID(t *testing.T) {
	db := testdb.Setup(t)
	ctx := context.Background()

	c := basedata.SampleCar()
	require.NoError(t, Save(ctx, db, c))

	n, err := DeleteByID(ctx, db, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = LoadByID(ctx, db, c.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
