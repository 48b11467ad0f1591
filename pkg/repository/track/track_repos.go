package track

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pkoehlmann/pitbook-go/pkg/model"
	"github.com/pkoehlmann/pitbook-go/pkg/repository"
)

// Save inserts or replaces a track.
func Save(ctx context.Context, conn repository.Querier, t *model.Track) error {
	now := time.Now()
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
	_, err := conn.ExecContext(ctx, `
insert into track (id, name, address, website_url, surface, liverc_url, notes, created_at, updated_at)
values (?,?,?,?,?,?,?,?,?)
on conflict(id) do update set
  name=excluded.name, address=excluded.address, website_url=excluded.website_url,
  surface=excluded.surface, liverc_url=excluded.liverc_url, notes=excluded.notes,
  updated_at=excluded.updated_at`,
		t.ID, t.Name, t.Address, t.WebsiteURL, t.Surface, t.LiveRCURL, t.Notes,
		repository.FormatTime(t.CreatedAt), repository.FormatTime(t.UpdatedAt))
	return err
}

func LoadByID(ctx context.Context, conn repository.Querier, id string) (*model.Track, error) {
	row := conn.QueryRowContext(ctx, selector+" where id=?", id)
	var item model.Track
	if err := scan(&item, row.Scan); err != nil {
		return nil, err
	}
	return &item, nil
}

func LoadAll(ctx context.Context, conn repository.Querier) ([]*model.Track, error) {
	rows, err := conn.QueryContext(ctx, selector+" order by name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ret := make([]*model.Track, 0)
	for rows.Next() {
		var item model.Track
		if err := scan(&item, rows.Scan); err != nil {
			return nil, err
		}
		ret = append(ret, &item)
	}
	return ret, rows.Err()
}

// deletes an entry from the database, returns number of rows deleted.
func DeleteByID(ctx context.Context, conn repository.Querier, id string) (int, error) {
	res, err := conn.ExecContext(ctx, "delete from track where id=?", id)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

// little helper
const selector = string(`select id, name, address, website_url, surface, liverc_url, notes, created_at, updated_at from track`)

func scan(e *model.Track, scanFn func(...any) error) error {
	var created, updated string
	if err := scanFn(&e.ID, &e.Name, &e.Address, &e.WebsiteURL, &e.Surface,
		&e.LiveRCURL, &e.Notes, &created, &updated); err != nil {
		return err
	}
	e.CreatedAt = repository.ParseTime(created)
	e.UpdatedAt = repository.ParseTime(updated)
	return nil
}
