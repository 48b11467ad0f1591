package setup

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/pkoehlmann/pitbook-go/pkg/model"
)

func legacySetup() *model.Setup {
	return &model.Setup{
		ID:            "s1",
		CarID:         "c1",
		SchemaVersion: 1,
		Data: model.SetupData{
			RideHeight: "20mm",
			Springs:    "4.4",
			ShockOil:   "35wt",
		},
	}
}

func TestNormalize_LegacyMapping(t *testing.T) {
	got := Normalize(legacySetup())

	assert.Equal(t, "20mm", got.Chassis.RideHeightF)
	assert.Equal(t, "4.4", got.Suspension.SpringsF)
	assert.Equal(t, "35wt", got.Suspension.ShockOilF)
	// legacy slots are cleared after mapping
	assert.Empty(t, got.RideHeight)
	assert.Empty(t, got.Springs)
	assert.Empty(t, got.ShockOil)
}

func TestNormalize_LegacyNeverOverrides(t *testing.T) {
	s := legacySetup()
	s.Data.Chassis.RideHeightF = "22mm"

	got := Normalize(s)

	assert.Equal(t, "22mm", got.Chassis.RideHeightF)
	// the other legacy fields still land in their empty slots
	assert.Equal(t, "4.4", got.Suspension.SpringsF)
}

func TestNormalize_IgnoresLegacyFieldsOnV2(t *testing.T) {
	s := legacySetup()
	s.SchemaVersion = model.CurrentSetupSchemaVersion

	got := Normalize(s)

	assert.Empty(t, got.Chassis.RideHeightF)
	assert.Empty(t, got.Suspension.SpringsF)
}

func TestNormalize_Idempotent(t *testing.T) {
	once := Normalize(legacySetup())
	twice := Normalize(&model.Setup{
		SchemaVersion: model.CurrentSetupSchemaVersion,
		Data:          once,
	})

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("normalize not idempotent (-once +twice):\n%s", diff)
	}
}

func TestNormalize_NilSetup(t *testing.T) {
	assert.Equal(t, model.SetupData{}, Normalize(nil))
}

func TestDecompose(t *testing.T) {
	data := Normalize(legacySetup())
	m := Decompose(data)

	chassis, ok := m["chassis"].(map[string]any)
	assert.True(t, ok, "chassis group missing")
	assert.Equal(t, "20mm", chassis["rideHeightF"])
	// legacy keys are cleared during normalization and omitted when empty
	_, hasLegacy := m["rideHeight"]
	assert.False(t, hasLegacy)
}
