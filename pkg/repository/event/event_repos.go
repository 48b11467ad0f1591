package event

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ohler55/ojg/oj"

	"github.com/pkoehlmann/pitbook-go/pkg/model"
	"github.com/pkoehlmann/pitbook-go/pkg/repository"
)

// Save inserts or replaces an event. The car id list is stored as a JSON
// array.
func Save(ctx context.Context, conn repository.Querier, e *model.Event) error {
	now := time.Now()
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	e.UpdatedAt = now
	if e.CarIDs == nil {
		e.CarIDs = []string{}
	}
	carIDs, err := oj.Marshal(e.CarIDs)
	if err != nil {
		return err
	}
	_, err = conn.ExecContext(ctx, `
insert into event (id, title, track_id, date, start_time, car_ids, notes, liverc_event_url, created_at, updated_at)
values (?,?,?,?,?,?,?,?,?,?)
on conflict(id) do update set
  title=excluded.title, track_id=excluded.track_id, date=excluded.date,
  start_time=excluded.start_time, car_ids=excluded.car_ids, notes=excluded.notes,
  liverc_event_url=excluded.liverc_event_url, updated_at=excluded.updated_at`,
		e.ID, e.Title, e.TrackID, e.Date, e.StartTime, string(carIDs), e.Notes,
		e.LiveRCEventURL,
		repository.FormatTime(e.CreatedAt), repository.FormatTime(e.UpdatedAt))
	return err
}

func LoadByID(ctx context.Context, conn repository.Querier, id string) (*model.Event, error) {
	row := conn.QueryRowContext(ctx, selector+" where id=?", id)
	var item model.Event
	if err := scan(&item, row.Scan); err != nil {
		return nil, err
	}
	return &item, nil
}

func LoadAll(ctx context.Context, conn repository.Querier) ([]*model.Event, error) {
	return loadMany(ctx, conn, selector+" order by date, title")
}

// LoadByTrackID returns the events held at one track.
func LoadByTrackID(ctx context.Context, conn repository.Querier, trackID string) ([]*model.Event, error) {
	return loadMany(ctx, conn, selector+" where track_id=? order by date, title", trackID)
}

// deletes an entry from the database, returns number of rows deleted.
func DeleteByID(ctx context.Context, conn repository.Querier, id string) (int, error) {
	res, err := conn.ExecContext(ctx, "delete from event where id=?", id)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

func loadMany(ctx context.Context, conn repository.Querier, query string, args ...any) ([]*model.Event, error) {
	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ret := make([]*model.Event, 0)
	for rows.Next() {
		var item model.Event
		if err := scan(&item, rows.Scan); err != nil {
			return nil, err
		}
		ret = append(ret, &item)
	}
	return ret, rows.Err()
}

// little helper
const selector = string(`select id, title, track_id, date, start_time, car_ids, notes, liverc_event_url, created_at, updated_at from event`)

func scan(e *model.Event, scanFn func(...any) error) error {
	var created, updated, carIDs string
	if err := scanFn(&e.ID, &e.Title, &e.TrackID, &e.Date, &e.StartTime,
		&carIDs, &e.Notes, &e.LiveRCEventURL, &created, &updated); err != nil {
		return err
	}
	e.CreatedAt = repository.ParseTime(created)
	e.UpdatedAt = repository.ParseTime(updated)
	e.CarIDs = []string{}
	if carIDs != "" {
		if err := oj.Unmarshal([]byte(carIDs), &e.CarIDs); err != nil {
			return err
		}
	}
	return nil
}
