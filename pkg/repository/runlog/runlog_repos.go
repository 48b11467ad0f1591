package runlog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pkoehlmann/pitbook-go/pkg/model"
	"github.com/pkoehlmann/pitbook-go/pkg/repository"
)

// Save inserts or replaces a run log. The average lap is derived from
// elapsed time and lap count here so the stored value is always consistent.
func Save(ctx context.Context, conn repository.Querier, r *model.RunLog) error {
	now := time.Now()
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now
	r.RecalcAvgLap()
	_, err := conn.ExecContext(ctx, `
insert into run_log (id, event_id, car_id, session_type, setup_id, best_lap, avg_lap, total_laps, time_seconds, position, notes, created_at, updated_at)
values (?,?,?,?,?,?,?,?,?,?,?,?,?)
on conflict(id) do update set
  event_id=excluded.event_id, car_id=excluded.car_id,
  session_type=excluded.session_type, setup_id=excluded.setup_id,
  best_lap=excluded.best_lap, avg_lap=excluded.avg_lap,
  total_laps=excluded.total_laps, time_seconds=excluded.time_seconds,
  position=excluded.position, notes=excluded.notes,
  updated_at=excluded.updated_at`,
		r.ID, r.EventID, r.CarID, r.SessionType, r.SetupID, r.BestLap, r.AvgLap,
		r.TotalLaps, r.TimeSeconds, r.Position, r.Notes,
		repository.FormatTime(r.CreatedAt), repository.FormatTime(r.UpdatedAt))
	return err
}

func LoadByID(ctx context.Context, conn repository.Querier, id string) (*model.RunLog, error) {
	row := conn.QueryRowContext(ctx, selector+" where id=?", id)
	var item model.RunLog
	if err := scan(&item, row.Scan); err != nil {
		return nil, err
	}
	return &item, nil
}

func LoadAll(ctx context.Context, conn repository.Querier) ([]*model.RunLog, error) {
	return loadMany(ctx, conn, selector+" order by created_at")
}

// LoadByEventID returns the runs recorded at one event.
func LoadByEventID(ctx context.Context, conn repository.Querier, eventID string) ([]*model.RunLog, error) {
	return loadMany(ctx, conn, selector+" where event_id=? order by created_at", eventID)
}

// LoadByCarID returns the runs driven with one car.
func LoadByCarID(ctx context.Context, conn repository.Querier, carID string) ([]*model.RunLog, error) {
	return loadMany(ctx, conn, selector+" where car_id=? order by created_at", carID)
}

// deletes an entry from the database, returns number of rows deleted.
func DeleteByID(ctx context.Context, conn repository.Querier, id string) (int, error) {
	res, err := conn.ExecContext(ctx, "delete from run_log where id=?", id)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

func loadMany(ctx context.Context, conn repository.Querier, query string, args ...any) ([]*model.RunLog, error) {
	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ret := make([]*model.RunLog, 0)
	for rows.Next() {
		var item model.RunLog
		if err := scan(&item, rows.Scan); err != nil {
			return nil, err
		}
		ret = append(ret, &item)
	}
	return ret, rows.Err()
}

// little helper
const selector = string(`select id, event_id, car_id, session_type, setup_id, best_lap, avg_lap, total_laps, time_seconds, position, notes, created_at, updated_at from run_log`)

func scan(e *model.RunLog, scanFn func(...any) error) error {
	var created, updated string
	if err := scanFn(&e.ID, &e.EventID, &e.CarID, &e.SessionType, &e.SetupID,
		&e.BestLap, &e.AvgLap, &e.TotalLaps, &e.TimeSeconds, &e.Position,
		&e.Notes, &created, &updated); err != nil {
		return err
	}
	e.CreatedAt = repository.ParseTime(created)
	e.UpdatedAt = repository.ParseTime(updated)
	return nil
}
