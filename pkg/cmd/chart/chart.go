package chart

import (
	"context"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spf13/cobra"

	"github.com/pkoehlmann/pitbook-go/log"
	"github.com/pkoehlmann/pitbook-go/pkg/analytics"
	"github.com/pkoehlmann/pitbook-go/pkg/cmd/util"
)

var (
	filterFlags util.FilterFlags
	outFile     string
)

func NewChartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "renders charts as standalone HTML files",
	}
	cmd.PersistentFlags().StringVarP(&outFile, "out", "o", "trend.html",
		"output HTML file")
	cmd.AddCommand(newTrendCmd())
	return cmd
}

func newTrendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trend",
		Short: "renders the lap time trend as a line chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderTrend()
		},
	}
	filterFlags.Bind(cmd)
	return cmd
}

func renderTrend() error {
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

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Lap time trend", Width: "1100px", Height: "550px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Lap time trend",
			Subtitle: "best and average lap per day, seconds",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "seconds", Scale: opts.Bool(true)}),
	)

	dates := make([]string, 0, len(res.Trend))
	best := make([]opts.LineData, 0, len(res.Trend))
	avg := make([]opts.LineData, 0, len(res.Trend))
	for _, p := range res.Trend {
		dates = append(dates, p.Date)
		best = append(best, lineValue(p.BestLap))
		avg = append(avg, lineValue(p.AvgLap))
	}
	line.SetXAxis(dates).
		AddSeries("best lap", best).
		AddSeries("avg lap", avg,
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))

	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := line.Render(f); err != nil {
		return err
	}
	log.Info("chart written",
		log.String("file", outFile),
		log.Int("days", len(dates)))
	return f.Close()
}

// echarts renders "-" as a gap in the series
func lineValue(v *float64) opts.LineData {
	if v == nil {
		return opts.LineData{Value: "-"}
	}
	return opts.LineData{Value: *v}
}
