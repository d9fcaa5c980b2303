package photo

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/campusbook/room-booking-backend/internal/pkg/storage"
	"github.com/campusbook/room-booking-backend/internal/room"
)

type Service interface {
	Upload(ctx context.Context, header *multipart.FileHeader, roomID string) (*Photo, error)
	ListByRoom(ctx context.Context, roomID string) ([]*Photo, error)
	Download(ctx context.Context, id string) (io.ReadCloser, *Photo, error)
	DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Photo, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo        Repository
	roomService room.Service
	storage     storage.Storage
	imgProc     *storage.ImageProcessor
}

func NewService(repo Repository, roomService room.Service, store storage.Storage) Service {
	return &service{
		repo:        repo,
		roomService: roomService,
		storage:     store,
		imgProc:     storage.NewImageProcessor(),
	}
}

func (s *service) Upload(ctx context.Context, header *multipart.FileHeader, roomID string) (*Photo, error) {
	// The photo must belong to an existing room.
	if _, err := s.roomService.GetByID(ctx, roomID); err != nil {
		return nil, err
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrNotImage
	}

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// Buffer the content for the two writes (original + thumbnail).
	// Room photos are small enough that this is fine.
	fileBytes, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read file content: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	photoID := uuid.New().String()

	// Sharding path: rooms/ab/UUID.ext
	shard := photoID[:2]
	storagePath := fmt.Sprintf("rooms/%s/%s%s", shard, photoID, ext)

	if err := s.storage.Save(ctx, storagePath, bytes.NewReader(fileBytes)); err != nil {
		return nil, fmt.Errorf("failed to save photo to storage: %w", err)
	}

	var thumbnailPath *string
	thumbReader, err := s.imgProc.GenerateThumbnail(bytes.NewReader(fileBytes), 200, 200)
	if err == nil {
		tPath := fmt.Sprintf("rooms/%s/%s_thumb.jpg", shard, photoID)
		if err := s.storage.Save(ctx, tPath, thumbReader); err == nil {
			thumbnailPath = &tPath
		}
	}
	// A failed thumbnail does not fail the upload.

	p := &Photo{
		ID:            photoID,
		RoomID:        roomID,
		Filename:      header.Filename,
		StoragePath:   storagePath,
		ThumbnailPath: thumbnailPath,
		ContentType:   contentType,
		Size:          header.Size,
		CreatedAt:     time.Now(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		// Cleanup storage if the record could not be written.
		_ = s.storage.Delete(ctx, storagePath)
		if thumbnailPath != nil {
			_ = s.storage.Delete(ctx, *thumbnailPath)
		}
		return nil, err
	}

	return p, nil
}

func (s *service) ListByRoom(ctx context.Context, roomID string) ([]*Photo, error) {
	if _, err := s.roomService.GetByID(ctx, roomID); err != nil {
		return nil, err
	}
	return s.repo.ListByRoom(ctx, roomID)
}

func (s *service) Download(ctx context.Context, id string) (io.ReadCloser, *Photo, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	stream, err := s.storage.Get(ctx, p.StoragePath)
	if err != nil {
		return nil, nil, ErrNotFound
	}
	return stream, p, nil
}

func (s *service) DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Photo, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if p.ThumbnailPath == nil {
		return nil, nil, ErrNotFound
	}

	stream, err := s.storage.Get(ctx, *p.ThumbnailPath)
	if err != nil {
		return nil, nil, ErrNotFound
	}
	return stream, p, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.storage.Delete(ctx, p.StoragePath)
	if p.ThumbnailPath != nil {
		_ = s.storage.Delete(ctx, *p.ThumbnailPath)
	}
	return nil
}
