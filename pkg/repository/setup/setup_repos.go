package setup

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ohler55/ojg/oj"

	"github.com/pkoehlmann/pitbook-go/pkg/model"
	"github.com/pkoehlmann/pitbook-go/pkg/repository"
)

// Save inserts or replaces a setup. The nested setup data is stored as a JSON
// column; a missing schema version defaults to the current one.
func Save(ctx context.Context, conn repository.Querier, s *model.Setup) error {
	now := time.Now()
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.SchemaVersion == 0 {
		s.SchemaVersion = model.CurrentSetupSchemaVersion
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now
	data, err := oj.Marshal(s.Data)
	if err != nil {
		return err
	}
	_, err = conn.ExecContext(ctx, `
insert into setup (id, car_id, track_id, version_label, schema_version, data, created_at, updated_at)
values (?,?,?,?,?,?,?,?)
on conflict(id) do update set
  car_id=excluded.car_id, track_id=excluded.track_id,
  version_label=excluded.version_label, schema_version=excluded.schema_version,
  data=excluded.data, updated_at=excluded.updated_at`,
		s.ID, s.CarID, s.TrackID, s.VersionLabel, s.SchemaVersion, string(data),
		repository.FormatTime(s.CreatedAt), repository.FormatTime(s.UpdatedAt))
	return err
}

func LoadByID(ctx context.Context, conn repository.Querier, id string) (*model.Setup, error) {
	row := conn.QueryRowContext(ctx, selector+" where id=?", id)
	var item model.Setup
	if err := scan(&item, row.Scan); err != nil {
		return nil, err
	}
	return &item, nil
}

func LoadAll(ctx context.Context, conn repository.Querier) ([]*model.Setup, error) {
	return loadMany(ctx, conn, selector+" order by created_at")
}

// LoadByCarID returns the setup history of one car.
func LoadByCarID(ctx context.Context, conn repository.Querier, carID string) ([]*model.Setup, error) {
	return loadMany(ctx, conn, selector+" where car_id=? order by created_at", carID)
}

// deletes an entry from the database, returns number of rows deleted.
func DeleteByID(ctx context.Context, conn repository.Querier, id string) (int, error) {
	res, err := conn.ExecContext(ctx, "delete from setup where id=?", id)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

func loadMany(ctx context.Context, conn repository.Querier, query string, args ...any) ([]*model.Setup, error) {
	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ret := make([]*model.Setup, 0)
	for rows.Next() {
		var item model.Setup
		if err := scan(&item, rows.Scan); err != nil {
			return nil, err
		}
		ret = append(ret, &item)
	}
	return ret, rows.Err()
}

// little helper
const selector = string(`select id, car_id, track_id, version_label, schema_version, data, created_at, updated_at from setup`)

func scan(e *model.Setup, scanFn func(...any) error) error {
	var created, updated, data string
	if err := scanFn(&e.ID, &e.CarID, &e.TrackID, &e.VersionLabel,
		&e.SchemaVersion, &data, &created, &updated); err != nil {
		return err
	}
	e.CreatedAt = repository.ParseTime(created)
	e.UpdatedAt = repository.ParseTime(updated)
	if data != "" {
		if err := oj.Unmarshal([]byte(data), &e.Data); err != nil {
			return err
		}
	}
	return nil
}
