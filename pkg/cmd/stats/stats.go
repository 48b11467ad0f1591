package stats

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pkoehlmann/pitbook-go/pkg/analytics"
	"github.com/pkoehlmann/pitbook-go/pkg/cmd/util"
)

var filterFlags util.FilterFlags

func NewStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "shows KPIs, per-track summary and lap time trend",
		Long: `Aggregates the logged runs into overall KPIs, a per-track summary and a
day-by-day lap time trend. All filter flags are optional and combine.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showStats(cmd)
		},
	}
	filterFlags.Bind(cmd)
	return cmd
}

func showStats(cmd *cobra.Command) error {
	db, err := util.OpenDB()
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	snap, err := analytics.NewLoader(db).Load(ctx, false)
	if err != nil {
		return err
	}
	res := analytics.AggregateRuns(analytics.AggregateInput{
		Runs:       snap.Runs,
		EventsByID: snap.EventsByID,
		TracksByID: snap.TracksByID,
		Filter:     filterFlags.Filter(),
	})

	out := cmd.OutOrStdout()
	printKPIs(out, res.KPIs)
	printByTrack(out, res.ByTrack)
	printTrend(out, res.Trend)
	return nil
}

func printKPIs(out io.Writer, k analytics.KPIs) {
	fmt.Fprintf(out, "Runs:     %d\n", k.RunCount)
	fmt.Fprintf(out, "Events:   %d\n", k.EventCount)
	fmt.Fprintf(out, "Best lap: %s\n", fmtLap(k.BestLapMin))
	fmt.Fprintf(out, "Avg lap:  %s\n", fmtLap(k.AvgLapMean))
}

func printByTrack(out io.Writer, tracks []analytics.TrackSummary) {
	if len(tracks) == 0 {
		return
	}
	fmt.Fprintln(out, "\nPer track:")
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TRACK\tRUNS\tBEST\tAVG")
	for _, t := range tracks {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n",
			t.TrackName, t.RunCount, fmtLap(t.BestLapMin), fmtLap(t.AvgLapMean))
	}
	tw.Flush()
}

func printTrend(out io.Writer, trend []analytics.TrendPoint) {
	if len(trend) == 0 {
		return
	}
	fmt.Fprintln(out, "\nTrend:")
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tBEST\tAVG")
	for _, p := range trend {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Date, fmtLap(p.BestLap), fmtLap(p.AvgLap))
	}
	tw.Flush()
}

func fmtLap(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.3f", *v)
}
