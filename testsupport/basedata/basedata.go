// Package basedata provides shared fixtures for tests.
package basedata

import (
	"time"

	"github.com/pkoehlmann/pitbook-go/pkg/model"
)

func TestTime() time.Time {
	t, _ := time.Parse(time.RFC3339, "2024-04-28T11:10:12Z")
	return t
}

func SampleCar() *model.Car {
	return &model.Car{
		ID:          "car1",
		Name:        "TLR 22X-4",
		Class:       "4wd Buggy",
		Chassis:     "22X-4",
		Motor:       "7.5T",
		ESC:         "Spec ESC",
		Transponder: "1234567",
		CreatedAt:   TestTime(),
		UpdatedAt:   TestTime(),
	}
}

func SampleTrack() *model.Track {
	return &model.Track{
		ID:        "track1",
		Name:      "Riverside RC Raceway",
		Address:   "1 Track Lane",
		Surface:   "clay",
		CreatedAt: TestTime(),
		UpdatedAt: TestTime(),
	}
}

func SampleEvent(trackID, date string) *model.Event {
	return &model.Event{
		ID:        "event-" + date,
		Title:     "Club race " + date,
		TrackID:   trackID,
		Date:      date,
		CarIDs:    []string{"car1"},
		CreatedAt: TestTime(),
		UpdatedAt: TestTime(),
	}
}

func SampleSetup(id, carID string, mutate func(*model.SetupData)) *model.Setup {
	s := &model.Setup{
		ID:            id,
		CarID:         carID,
		TrackID:       "track1",
		VersionLabel:  "baseline",
		SchemaVersion: model.CurrentSetupSchemaVersion,
		Data: model.SetupData{
			Suspension: model.SuspensionSetup{
				SpringsF:  "4.4",
				SpringsR:  "4.2",
				ShockOilF: "35wt",
				ShockOilR: "30wt",
			},
			Drivetrain: model.DrivetrainSetup{Pinion: "21", Spur: "78"},
		},
		CreatedAt: TestTime(),
		UpdatedAt: TestTime(),
	}
	if mutate != nil {
		mutate(&s.Data)
	}
	return s
}

func SampleRunLog(id, eventID, carID string) *model.RunLog {
	r := &model.RunLog{
		ID:          id,
		EventID:     eventID,
		CarID:       carID,
		SessionType: model.SessionPractice,
		BestLap:     "14.2",
		TotalLaps:   21,
		TimeSeconds: 305.2,
		Position:    "3rd",
		CreatedAt:   TestTime(),
		UpdatedAt:   TestTime(),
	}
	r.RecalcAvgLap()
	return r
}
