package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// Create inserts the booking unless a confirmed booking for the same room
	// and date overlaps its time window, in which case it returns
	// ErrTimeConflict. The check and the insert run atomically.
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, error)

	// CancelConfirmed transitions a confirmed booking to cancelled.
	// Returns ErrNotFound if no confirmed booking with that id exists.
	CancelConfirmed(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create booking tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	// Serialize admission per (room, date). Two requests racing for the same
	// slot queue up here, so the scan below always sees the other's insert.
	// The lock is released when the transaction ends.
	if _, err := tx.Exec(ctx,
		"SELECT pg_advisory_xact_lock(hashtextextended($1, 0))",
		b.RoomID+"@"+b.Date,
	); err != nil {
		return fmt.Errorf("acquire booking lock failed: %w", err)
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("start_time", "end_time").
		From("public.bookings").
		Where(squirrel.Eq{"room_id": b.RoomID}).
		Where(squirrel.Eq{"date": b.Date}).
		Where(squirrel.Eq{"status": StatusConfirmed}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build conflict scan query failed: %w", err)
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("conflict scan failed: %w", err)
	}

	newStart, _ := ParseClock(b.StartTime)
	newEnd, _ := ParseClock(b.EndTime)
	conflict := false

	for rows.Next() {
		var start, end string
		if err := rows.Scan(&start, &end); err != nil {
			rows.Close()
			return fmt.Errorf("scan existing booking failed: %w", err)
		}
		existStart, _ := ParseClock(start)
		existEnd, _ := ParseClock(end)
		if Overlaps(newStart, newEnd, existStart, existEnd) {
			conflict = true
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("conflict scan failed: %w", err)
	}
	if conflict {
		return ErrTimeConflict
	}

	query, args, err = psql.Insert("public.bookings").
		Columns("user_id", "room_id", "date", "start_time", "end_time", "purpose", "status").
		Values(b.UserID, b.RoomID, b.Date, b.StartTime, b.EndTime, b.Purpose, b.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := tx.QueryRow(ctx, query, args...).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return fmt.Errorf("create booking failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create booking tx failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"b.id", "b.user_id", "u.name", "u.email",
		"b.room_id", "r.name", "r.type", "r.capacity", "r.facilities",
		"b.date", "b.start_time", "b.end_time", "b.purpose", "b.status",
		"b.created_at", "b.updated_at",
	).
		From("public.bookings b").
		Join("public.users u ON b.user_id = u.id").
		Join("public.rooms r ON b.room_id = r.id").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var b Booking
	if err := row.Scan(
		&b.ID, &b.UserID, &b.UserName, &b.UserEmail,
		&b.RoomID, &b.RoomName, &b.RoomType, &b.RoomCapacity, &b.RoomFacilities,
		&b.Date, &b.StartTime, &b.EndTime, &b.Purpose, &b.Status,
		&b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"b.id", "b.user_id", "u.name", "u.email",
		"b.room_id", "r.name", "r.type", "r.capacity", "r.facilities",
		"b.date", "b.start_time", "b.end_time", "b.purpose", "b.status",
		"b.created_at", "b.updated_at",
	).
		From("public.bookings b").
		Join("public.users u ON b.user_id = u.id").
		Join("public.rooms r ON b.room_id = r.id")

	if filter.UserID != "" {
		query = query.Where(squirrel.Eq{"b.user_id": filter.UserID})
	}

	// Newest first. Zero-padded times make the text sort chronological.
	query = query.OrderBy("b.date DESC", "b.start_time DESC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.UserName, &b.UserEmail,
			&b.RoomID, &b.RoomName, &b.RoomType, &b.RoomCapacity, &b.RoomFacilities,
			&b.Date, &b.StartTime, &b.EndTime, &b.Purpose, &b.Status,
			&b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, nil
}

func (r *pgxRepository) CancelConfirmed(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("status", StatusCancelled).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": StatusConfirmed}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build cancel booking query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("cancel booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
