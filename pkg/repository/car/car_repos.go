package car

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pkoehlmann/pitbook-go/pkg/model"
	"github.com/pkoehlmann/pitbook-go/pkg/repository"
)

// Save inserts or replaces a car. A missing id is assigned, timestamps are
// maintained here.
func Save(ctx context.Context, conn repository.Querier, c *model.Car) error {
	now := time.Now()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	_, err := conn.ExecContext(ctx, `
insert into car (id, name, class, chassis, motor, esc, transponder, notes, image, created_at, updated_at)
values (?,?,?,?,?,?,?,?,?,?,?)
on conflict(id) do update set
  name=excluded.name, class=excluded.class, chassis=excluded.chassis,
  motor=excluded.motor, esc=excluded.esc, transponder=excluded.transponder,
  notes=excluded.notes, image=excluded.image, updated_at=excluded.updated_at`,
		c.ID, c.Name, c.Class, c.Chassis, c.Motor, c.ESC, c.Transponder,
		c.Notes, c.Image,
		repository.FormatTime(c.CreatedAt), repository.FormatTime(c.UpdatedAt))
	return err
}

func LoadByID(ctx context.Context, conn repository.Querier, id string) (*model.Car, error) {
	row := conn.QueryRowContext(ctx, selector+" where id=?", id)
	var item model.Car
	if err := scan(&item, row.Scan); err != nil {
		return nil, err
	}
	return &item, nil
}

func LoadAll(ctx context.Context, conn repository.Querier) ([]*model.Car, error) {
	rows, err := conn.QueryContext(ctx, selector+" order by name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ret := make([]*model.Car, 0)
	for rows.Next() {
		var item model.Car
		if err := scan(&item, rows.Scan); err != nil {
			return nil, err
		}
		ret = append(ret, &item)
	}
	return ret, rows.Err()
}

// deletes an entry from the database, returns number of rows deleted.
func DeleteByID(ctx context.Context, conn repository.Querier, id string) (int, error) {
	res, err := conn.ExecContext(ctx, "delete from car where id=?", id)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

// little helper
const selector = string(`select id, name, class, chassis, motor, esc, transponder, notes, image, created_at, updated_at from car`)

func scan(e *model.Car, scanFn func(...any) error) error {
	var created, updated string
	if err := scanFn(&e.ID, &e.Name, &e.Class, &e.Chassis, &e.Motor, &e.ESC,
		&e.Transponder, &e.Notes, &e.Image, &created, &updated); err != nil {
		return err
	}
	e.CreatedAt = repository.ParseTime(created)
	e.UpdatedAt = repository.ParseTime(updated)
	return nil
}
