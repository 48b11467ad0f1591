package export

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pkoehlmann/pitbook-go/log"
	"github.com/pkoehlmann/pitbook-go/pkg/analytics"
	"github.com/pkoehlmann/pitbook-go/pkg/cmd/util"
	"github.com/pkoehlmann/pitbook-go/pkg/export"
)

var (
	filterFlags util.FilterFlags
	outFile     string
)

func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "exports logbook data for other tools",
	}
	cmd.PersistentFlags().StringVarP(&outFile, "out", "o", "",
		"output file (default: stdout)")
	cmd.AddCommand(newCsvCmd())
	cmd.AddCommand(newIcsCmd())
	return cmd
}

func newCsvCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "csv",
		Short: "writes the (filtered) runs as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportCsv(cmd)
		},
	}
	filterFlags.Bind(cmd)
	return cmd
}

func newIcsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ics",
		Short: "writes all events as an iCalendar file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportIcs(cmd)
		},
	}
}

func exportCsv(cmd *cobra.Command) error {
	db, err := util.OpenDB()
	if err != nil {
		return err
	}
	defer db.Close()

	snap, err := analytics.NewLoader(db).Load(context.Background(), false)
	if err != nil {
		return err
	}
	res := analytics.AggregateRuns(analytics.AggregateInput{
		Runs:       snap.Runs,
		EventsByID: snap.EventsByID,
		TracksByID: snap.TracksByID,
		Filter:     filterFlags.Filter(),
	})
	return withOutput(cmd, func(w io.Writer) error {
		return export.WriteRunsCSV(w, res.FilteredRuns, snap)
	})
}

func exportIcs(cmd *cobra.Command) error {
	db, err := util.OpenDB()
	if err != nil {
		return err
	}
	defer db.Close()

	snap, err := analytics.NewLoader(db).Load(context.Background(), false)
	if err != nil {
		return err
	}
	return withOutput(cmd, func(w io.Writer) error {
		return export.WriteEventsICS(w, snap.Events, snap.TracksByID)
	})
}

func withOutput(cmd *cobra.Command, write func(io.Writer) error) error {
	if outFile == "" {
		return write(cmd.OutOrStdout())
	}
	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := write(f); err != nil {
		return err
	}
	log.Info("export written", log.String("file", outFile))
	return f.Close()
}
