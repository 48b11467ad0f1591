// Package util holds small helpers shared by the CLI commands.
package util

import (
	"database/sql"

	"github.com/spf13/cobra"

	"github.com/pkoehlmann/pitbook-go/pkg/analytics"
	"github.com/pkoehlmann/pitbook-go/pkg/config"
	"github.com/pkoehlmann/pitbook-go/pkg/db/sqlite"
)

// OpenDB opens the configured database file.
func OpenDB() (*sql.DB, error) {
	return sqlite.Open(config.DB)
}

// FilterFlags binds the common run filter criteria to a command.
type FilterFlags struct {
	CarID   string
	TrackID string
	Session string
	From    string
	To      string
}

func (f *FilterFlags) Bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.CarID, "car", "", "only runs with this car id")
	cmd.Flags().StringVar(&f.TrackID, "track", "", "only runs at this track id")
	cmd.Flags().StringVar(&f.Session, "session", "",
		"only runs of this session type (Practice, Q1, Q2, Q3, Main, Other)")
	cmd.Flags().StringVar(&f.From, "from", "", "only runs logged on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.To, "to", "", "only runs logged on or before this date (YYYY-MM-DD)")
}

func (f *FilterFlags) Filter() analytics.Filter {
	return analytics.Filter{
		CarID:       f.CarID,
		TrackID:     f.TrackID,
		SessionType: f.Session,
		DateFrom:    f.From,
		DateTo:      f.To,
	}
}
