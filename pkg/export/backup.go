package export

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/oj"

	"github.com/pkoehlmann/pitbook-go/pkg/analytics"
	"github.com/pkoehlmann/pitbook-go/pkg/model"
	"github.com/pkoehlmann/pitbook-go/pkg/repository"
	carrepos "github.com/pkoehlmann/pitbook-go/pkg/repository/car"
	eventrepos "github.com/pkoehlmann/pitbook-go/pkg/repository/event"
	runlogrepos "github.com/pkoehlmann/pitbook-go/pkg/repository/runlog"
	setuprepos "github.com/pkoehlmann/pitbook-go/pkg/repository/setup"
	trackrepos "github.com/pkoehlmann/pitbook-go/pkg/repository/track"
)

const backupVersion = 1

// times are written as RFC3339 strings so backups stay human readable
var backupOpts = ojg.Options{UseTags: true, TimeFormat: time.RFC3339Nano, Indent: 2}

// Backup is the full database content as one JSON document.
type Backup struct {
	Version   int             `json:"version"`
	CreatedAt time.Time       `json:"createdAt"`
	Cars      []*model.Car    `json:"cars"`
	Tracks    []*model.Track  `json:"tracks"`
	Events    []*model.Event  `json:"events"`
	Setups    []*model.Setup  `json:"setups"`
	RunLogs   []*model.RunLog `json:"runLogs"`
}

// WriteBackup serializes the snapshot content as indented JSON.
func WriteBackup(w io.Writer, snap *analytics.Snapshot) error {
	b := Backup{
		Version:   backupVersion,
		CreatedAt: time.Now(),
		Cars:      snap.Cars,
		Tracks:    snap.Tracks,
		Events:    snap.Events,
		Setups:    snap.Setups,
		RunLogs:   snap.RunLogs,
	}
	_, err := io.WriteString(w, oj.JSON(&b, &backupOpts))
	return err
}

// RestoreBackup reads a backup document and upserts every record. Existing
// records with the same id are replaced; nothing is deleted.
func RestoreBackup(ctx context.Context, conn repository.Querier, r io.Reader) (*Backup, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var b Backup
	if err := oj.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("parse backup: %w", err)
	}
	if b.Version != backupVersion {
		return nil, fmt.Errorf("unsupported backup version %d", b.Version)
	}
	for _, c := range b.Cars {
		if err := carrepos.Save(ctx, conn, c); err != nil {
			return nil, err
		}
	}
	for _, t := range b.Tracks {
		if err := trackrepos.Save(ctx, conn, t); err != nil {
			return nil, err
		}
	}
	for _, e := range b.Events {
		if err := eventrepos.Save(ctx, conn, e); err != nil {
			return nil, err
		}
	}
	for _, s := range b.Setups {
		if err := setuprepos.Save(ctx, conn, s); err != nil {
			return nil, err
		}
	}
	for _, rl := range b.RunLogs {
		if err := runlogrepos.Save(ctx, conn, rl); err != nil {
			return nil, err
		}
	}
	return &b, nil
}
