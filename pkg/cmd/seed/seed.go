// Package seed fills the database with a small, recognizable sample dataset.
// Useful for trying out the commands before any real data exists.
package seed

import (
	"context"
	"database/sql"
	"time"

	"github.com/spf13/cobra"

	"github.com/pkoehlmann/pitbook-go/log"
	"github.com/pkoehlmann/pitbook-go/pkg/cmd/util"
	"github.com/pkoehlmann/pitbook-go/pkg/db/migrate"
	"github.com/pkoehlmann/pitbook-go/pkg/model"
	carrepos "github.com/pkoehlmann/pitbook-go/pkg/repository/car"
	eventrepos "github.com/pkoehlmann/pitbook-go/pkg/repository/event"
	runlogrepos "github.com/pkoehlmann/pitbook-go/pkg/repository/runlog"
	setuprepos "github.com/pkoehlmann/pitbook-go/pkg/repository/setup"
	trackrepos "github.com/pkoehlmann/pitbook-go/pkg/repository/track"
)

func NewSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "fills the database with sample data",
		Long: `Writes a small sample dataset (two cars, two tracks, a few events with
setups and run logs). Records use fixed ids, so running seed twice does not
duplicate anything.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return seed()
		},
	}
}

func seed() error {
	db, err := util.OpenDB()
	if err != nil {
		return err
	}
	defer db.Close()
	if err := migrate.Up(db); err != nil {
		return err
	}

	ctx := context.Background()
	if err := seedEntities(ctx, db); err != nil {
		return err
	}
	log.Info("sample data written")
	return nil
}

//nolint:funlen // plain data listing
func seedEntities(ctx context.Context, db *sql.DB) error {
	cars := []*model.Car{
		{ID: "seed-car-22x4", Name: "TLR 22X-4", Notes: "club buggy, 13.5T"},
		{ID: "seed-car-b74", Name: "Team Associated B74.2", Notes: "carpet spec"},
	}
	tracks := []*model.Track{
		{
			ID: "seed-track-riverside", Name: "Riverside RC Raceway",
			Address: "1 Track Lane", Surface: "clay",
		},
		{
			ID: "seed-track-indoor", Name: "Hobbytown Indoor",
			Surface: "carpet",
		},
	}
	for _, c := range cars {
		if err := carrepos.Save(ctx, db, c); err != nil {
			return err
		}
	}
	for _, t := range tracks {
		if err := trackrepos.Save(ctx, db, t); err != nil {
			return err
		}
	}

	baseline := &model.Setup{
		ID: "seed-setup-base", CarID: "seed-car-22x4",
		TrackID: "seed-track-riverside", VersionLabel: "Riverside baseline",
		SchemaVersion: model.CurrentSetupSchemaVersion,
		Data: model.SetupData{
			Chassis: model.ChassisSetup{RideHeightF: "22mm", RideHeightR: "23mm"},
			Suspension: model.SuspensionSetup{
				SpringsF: "4.4", SpringsR: "4.2",
				ShockOilF: "32.5wt", ShockOilR: "30wt",
			},
			Tires: model.TireSetup{CompoundF: "Fugitive M4", CompoundR: "Fugitive M4"},
		},
	}
	softer := &model.Setup{
		ID: "seed-setup-soft", CarID: "seed-car-22x4",
		TrackID: "seed-track-riverside", VersionLabel: "Softer rear",
		SchemaVersion: model.CurrentSetupSchemaVersion,
		Data: model.SetupData{
			Chassis: model.ChassisSetup{RideHeightF: "22mm", RideHeightR: "23mm"},
			Suspension: model.SuspensionSetup{
				SpringsF: "4.4", SpringsR: "4.0",
				ShockOilF: "32.5wt", ShockOilR: "27.5wt",
			},
			Tires: model.TireSetup{CompoundF: "Fugitive M4", CompoundR: "Fugitive M4"},
		},
	}
	for _, s := range []*model.Setup{baseline, softer} {
		if err := setuprepos.Save(ctx, db, s); err != nil {
			return err
		}
	}

	events := []*model.Event{
		{
			ID: "seed-event-1", Title: "Club race round 3",
			TrackID: "seed-track-riverside", Date: "2026-07-18",
			StartTime: "09:00", CarIDs: []string{"seed-car-22x4"},
		},
		{
			ID: "seed-event-2", Title: "Club race round 4",
			TrackID: "seed-track-riverside", Date: "2026-08-01",
			CarIDs: []string{"seed-car-22x4", "seed-car-b74"},
		},
		{
			ID: "seed-event-3", Title: "Indoor practice",
			TrackID: "seed-track-indoor", Date: "2026-08-15",
			CarIDs: []string{"seed-car-b74"},
		},
	}
	for _, e := range events {
		if err := eventrepos.Save(ctx, db, e); err != nil {
			return err
		}
	}

	runs := []*model.RunLog{
		{
			ID: "seed-run-1", EventID: "seed-event-1", CarID: "seed-car-22x4",
			SessionType: model.SessionQ1, SetupID: "seed-setup-base",
			BestLap: "15.12", TotalLaps: 20, TimeSeconds: 309.4,
			CreatedAt: day("2026-07-18"),
		},
		{
			ID: "seed-run-2", EventID: "seed-event-1", CarID: "seed-car-22x4",
			SessionType: model.SessionMain, SetupID: "seed-setup-soft",
			BestLap: "14.87", TotalLaps: 21, TimeSeconds: 318.8,
			Position: "3rd A-Main", CreatedAt: day("2026-07-18"),
		},
		{
			ID: "seed-run-3", EventID: "seed-event-2", CarID: "seed-car-22x4",
			SessionType: model.SessionQ1, SetupID: "seed-setup-soft",
			BestLap: "14.95", TotalLaps: 21, TimeSeconds: 317.1,
			CreatedAt: day("2026-08-01"),
		},
		{
			ID: "seed-run-4", EventID: "seed-event-3", CarID: "seed-car-b74",
			SessionType: model.SessionPractice,
			BestLap: "17.40", TotalLaps: 17, TimeSeconds: 301.9,
			Notes: "green carpet, low grip", CreatedAt: day("2026-08-15"),
		},
	}
	for _, r := range runs {
		if err := runlogrepos.Save(ctx, db, r); err != nil {
			return err
		}
	}
	return nil
}

func day(d string) time.Time {
	t, _ := time.ParseInLocation(model.DateLayout, d, time.Local)
	return t.Add(10 * time.Hour)
}
