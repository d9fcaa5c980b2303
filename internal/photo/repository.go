package photo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, p *Photo) error
	GetByID(ctx context.Context, id string) (*Photo, error)
	ListByRoom(ctx context.Context, roomID string) ([]*Photo, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *pgxpool.Pool
}

func NewPgxRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Photo) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.room_photos").
		Columns("id", "room_id", "filename", "storage_path", "thumbnail_path", "content_type", "size", "created_at").
		Values(p.ID, p.RoomID, p.Filename, p.StoragePath, p.ThumbnailPath, p.ContentType, p.Size, p.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create photo record: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Photo, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "room_id", "filename", "storage_path", "thumbnail_path", "content_type", "size", "created_at").
		From("public.room_photos").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	p := &Photo{}
	var thumbnailPath sql.NullString

	err = r.db.QueryRow(ctx, query, args...).Scan(
		&p.ID,
		&p.RoomID,
		&p.Filename,
		&p.StoragePath,
		&thumbnailPath,
		&p.ContentType,
		&p.Size,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get photo: %w", err)
	}

	if thumbnailPath.Valid {
		p.ThumbnailPath = &thumbnailPath.String
	}

	return p, nil
}

func (r *repository) ListByRoom(ctx context.Context, roomID string) ([]*Photo, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "room_id", "filename", "storage_path", "thumbnail_path", "content_type", "size", "created_at").
		From("public.room_photos").
		Where(squirrel.Eq{"room_id": roomID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	defer rows.Close()

	var photos []*Photo
	for rows.Next() {
		p := &Photo{}
		var thumbnailPath sql.NullString
		if err := rows.Scan(
			&p.ID,
			&p.RoomID,
			&p.Filename,
			&p.StoragePath,
			&thumbnailPath,
			&p.ContentType,
			&p.Size,
			&p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan photo: %w", err)
		}
		if thumbnailPath.Valid {
			p.ThumbnailPath = &thumbnailPath.String
		}
		photos = append(photos, p)
	}

	return photos, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.room_photos").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	ct, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete photo record: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
