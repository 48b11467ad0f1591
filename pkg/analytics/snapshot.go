// Package analytics derives KPIs, trends and setup change insights from the
// recorded run history.
package analytics

import (
	"context"

	"github.com/samber/lo"

	"github.com/pkoehlmann/pitbook-go/log"
	"github.com/pkoehlmann/pitbook-go/pkg/laptime"
	"github.com/pkoehlmann/pitbook-go/pkg/model"
	"github.com/pkoehlmann/pitbook-go/pkg/repository"
	carrepos "github.com/pkoehlmann/pitbook-go/pkg/repository/car"
	eventrepos "github.com/pkoehlmann/pitbook-go/pkg/repository/event"
	runlogrepos "github.com/pkoehlmann/pitbook-go/pkg/repository/runlog"
	setuprepos "github.com/pkoehlmann/pitbook-go/pkg/repository/setup"
	trackrepos "github.com/pkoehlmann/pitbook-go/pkg/repository/track"
	"github.com/pkoehlmann/pitbook-go/pkg/utils/cache"
	"github.com/pkoehlmann/pitbook-go/pkg/utils/cache/loadercache"
)

// EnrichedRun is a run log augmented with the derived values analytics needs:
// the event date, the track resolved through the event and the parsed lap
// times. Built fresh on every snapshot load, never mutated afterwards.
type EnrichedRun struct {
	model.RunLog
	// calendar date of the parent event, empty when the event is missing
	EventDate string
	// track resolved transitively through the event, empty when unresolvable
	TrackID    string
	BestLapNum *float64
	AvgLapNum  *float64
}

// Snapshot holds everything analytics computations work on. Consumers must
// treat it as immutable; it is shared between callers until invalidated.
type Snapshot struct {
	Cars    []*model.Car
	Tracks  []*model.Track
	Events  []*model.Event
	Setups  []*model.Setup
	RunLogs []*model.RunLog

	CarsByID   map[string]*model.Car
	TracksByID map[string]*model.Track
	EventsByID map[string]*model.Event
	SetupsByID map[string]*model.Setup

	Runs []EnrichedRun
}

const snapshotKey = "snapshot"

// Loader loads and caches the analytics snapshot. The cache has no TTL; it
// stays valid until Invalidate is called (every write path is expected to do
// that).
type Loader struct {
	conn  repository.Querier
	cache cache.Cache[string, Snapshot]
	l     *log.Logger
}

type LoaderOption func(*Loader)

func WithLogger(arg *log.Logger) LoaderOption {
	return func(l *Loader) {
		l.l = arg
	}
}

func NewLoader(conn repository.Querier, opts ...LoaderOption) *Loader {
	ret := &Loader{
		conn: conn,
		l:    log.Default().Named("analytics"),
	}
	for _, opt := range opts {
		opt(ret)
	}
	ret.cache = loadercache.New(
		loadercache.WithLoader(ret.build),
		loadercache.WithLogger[string, Snapshot](ret.l),
	)
	return ret
}

// Load returns the cached snapshot, building it on first use. Store errors
// propagate to the caller; there is no retry here.
func (l *Loader) Load(ctx context.Context, forceRefresh bool) (*Snapshot, error) {
	if forceRefresh {
		l.cache.Invalidate(ctx, snapshotKey)
	}
	return l.cache.Get(ctx, snapshotKey)
}

// Invalidate drops the cached snapshot. Call after any write to cars, tracks,
// events, setups or run logs.
func (l *Loader) Invalidate(ctx context.Context) {
	l.cache.Invalidate(ctx, snapshotKey)
}

//nolint:funlen // linear assembly of the snapshot
func (l *Loader) build(ctx context.Context, _ string) (*Snapshot, error) {
	snap := &Snapshot{}
	var err error
	if snap.Cars, err = carrepos.LoadAll(ctx, l.conn); err != nil {
		return nil, err
	}
	if snap.Tracks, err = trackrepos.LoadAll(ctx, l.conn); err != nil {
		return nil, err
	}
	if snap.Events, err = eventrepos.LoadAll(ctx, l.conn); err != nil {
		return nil, err
	}
	if snap.Setups, err = setuprepos.LoadAll(ctx, l.conn); err != nil {
		return nil, err
	}
	if snap.RunLogs, err = runlogrepos.LoadAll(ctx, l.conn); err != nil {
		return nil, err
	}

	snap.CarsByID = lo.SliceToMap(snap.Cars,
		func(c *model.Car) (string, *model.Car) { return c.ID, c })
	snap.TracksByID = lo.SliceToMap(snap.Tracks,
		func(t *model.Track) (string, *model.Track) { return t.ID, t })
	snap.EventsByID = lo.SliceToMap(snap.Events,
		func(e *model.Event) (string, *model.Event) { return e.ID, e })
	snap.SetupsByID = lo.SliceToMap(snap.Setups,
		func(s *model.Setup) (string, *model.Setup) { return s.ID, s })

	snap.Runs = make([]EnrichedRun, 0, len(snap.RunLogs))
	for _, rl := range snap.RunLogs {
		er := EnrichedRun{RunLog: *rl}
		// a run whose event is gone keeps working with reduced linkage
		if ev, ok := snap.EventsByID[rl.EventID]; ok {
			er.EventDate = ev.Date
			er.TrackID = ev.TrackID
		}
		if v, ok := laptime.ParseLap(rl.BestLap); ok {
			er.BestLapNum = &v
		}
		if v, ok := laptime.ParseLap(rl.AvgLap); ok {
			er.AvgLapNum = &v
		}
		snap.Runs = append(snap.Runs, er)
	}
	l.l.Debug("snapshot built",
		log.Int("cars", len(snap.Cars)),
		log.Int("tracks", len(snap.Tracks)),
		log.Int("events", len(snap.Events)),
		log.Int("setups", len(snap.Setups)),
		log.Int("runs", len(snap.Runs)))
	return snap, nil
}
