// Package setup normalizes versioned setup records into the canonical
// six-group shape used for display and diffing.
package setup

import (
	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/alt"

	"github.com/pkoehlmann/pitbook-go/pkg/model"
)

// Normalize maps a possibly-legacy setup record into the canonical shape.
// All known leaves are present in the result (missing ones stay ""), so
// diffing never has to deal with absent keys. Schema version 1 records carry
// flat rideHeight/springs/shockOil fields; those are mapped into the
// front-side canonical slots unless a value is already there — legacy data
// never overrides version 2 data. Normalize is pure and idempotent.
func Normalize(s *model.Setup) model.SetupData {
	if s == nil {
		return model.SetupData{}
	}
	data := s.Data
	if s.SchemaVersion < model.CurrentSetupSchemaVersion {
		if data.Chassis.RideHeightF == "" {
			data.Chassis.RideHeightF = data.RideHeight
		}
		if data.Suspension.SpringsF == "" {
			data.Suspension.SpringsF = data.Springs
		}
		if data.Suspension.ShockOilF == "" {
			data.Suspension.ShockOilF = data.ShockOil
		}
	}
	data.RideHeight = ""
	data.Springs = ""
	data.ShockOil = ""
	return data
}

var decomposeOpts = ojg.Options{UseTags: true, OmitNil: true, OmitEmpty: true}

// Decompose turns canonical setup data into the generic nested map shape the
// diff engine walks. Keys follow the json tags.
func Decompose(data model.SetupData) map[string]any {
	if m, ok := alt.Decompose(data, &decomposeOpts).(map[string]any); ok {
		return m
	}
	return map[string]any{}
}
