package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingsTable = "public.locker_bookings"

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository stores bookings in PostgreSQL. Rows keep insertion order
// through the serial seq column.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Load(ctx context.Context) ([]*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "name", "mobile", "city", "station_type", "station",
		"day", "date", "days", "price", "pin", "slot",
	).
		From(bookingsTable).
		OrderBy("seq ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build load bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("load bookings failed: %w", err)
	}
	defer rows.Close()

	bookings := make([]*Booking, 0)
	for rows.Next() {
		var (
			b    Booking
			pin  *int
			slot *int
		)
		if err := rows.Scan(
			&b.ID, &b.Name, &b.Mobile, &b.City, &b.StationType, &b.Station,
			&b.Day, &b.Date, &b.Days, &b.Price, &pin, &slot,
		); err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		if pin != nil {
			b.PIN = PINCode(*pin)
		}
		if slot != nil {
			b.Slot = SlotNumber(*slot)
		}
		bookings = append(bookings, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings failed: %w", err)
	}
	return bookings, nil
}

func (r *pgxRepository) Append(ctx context.Context, b *Booking) error {
	var pin, slot *int
	if b.PIN.Set {
		pin = &b.PIN.Code
	}
	if b.Slot.Assigned {
		slot = &b.Slot.Number
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert(bookingsTable).
		Columns(
			"id", "name", "mobile", "city", "station_type", "station",
			"day", "date", "days", "price", "pin", "slot",
		).
		Values(
			b.ID, b.Name, b.Mobile, b.City, b.StationType, b.Station,
			b.Day, b.Date, b.Days, b.Price, pin, slot,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build append booking query failed: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrDuplicateBooking
		}
		return fmt.Errorf("append booking failed: %w", err)
	}
	return nil
}
