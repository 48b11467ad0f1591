package insights

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

func NewInsightsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insights",
		Short: "shows highlight cards and setup change analysis",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showInsights(cmd)
		},
	}
	filterFlags.Bind(cmd)
	return cmd
}

func showInsights(cmd *cobra.Command) error {
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
	printHighlights(out, analytics.BuildHighlights(res.FilteredRuns, snap.TracksByID, snap.CarsByID))
	printChanges(out, analytics.AnalyzeSetupChanges(res.FilteredRuns, snap.SetupsByID, snap.TracksByID))
	return nil
}

func printHighlights(out io.Writer, highlights []analytics.Highlight) {
	if len(highlights) == 0 {
		fmt.Fprintln(out, "No highlights yet. Log a few runs first.")
		return
	}
	for _, h := range highlights {
		fmt.Fprintf(out, "%s: %s (%s)\n", h.Title, h.Value, h.Detail)
	}
}

func printChanges(out io.Writer, analysis analytics.ChangeAnalysis) {
	if len(analysis.Comparisons) == 0 {
		return
	}
	fmt.Fprintln(out, "\nSetup changes:")
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tTRACK\tFIELDS\tDELTA\tNOTE")
	for _, c := range analysis.Comparisons {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%+.3f\t%s\n",
			c.Date, c.TrackName, c.ChangeCount, c.BestLapDelta, c.Note)
	}
	tw.Flush()
	if len(analysis.Insights) > 0 {
		fmt.Fprintln(out)
		for _, line := range analysis.Insights {
			fmt.Fprintf(out, "  %s\n", line)
		}
	}
}
