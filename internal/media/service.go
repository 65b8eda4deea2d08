package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/palinaresort/resort-booking-backend/internal/catalog"
	"github.com/palinaresort/resort-booking-backend/internal/pkg/storage"
)

// Catalog is the slice of the catalog service the media service needs:
// validating the cabin type and pointing its cover image at a photo.
type Catalog interface {
	GetCabinType(ctx context.Context, id int64) (*catalog.CabinType, error)
	SetCabinImageURL(ctx context.Context, id int64, imageURL string) error
}

type Service interface {
	Upload(ctx context.Context, cabinTypeID int64, header *multipart.FileHeader) (*Photo, error)
	ListByCabinType(ctx context.Context, cabinTypeID int64) ([]*Photo, error)
	Download(ctx context.Context, id string) (io.ReadCloser, *Photo, error)
	DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Photo, error)
}

type service struct {
	repo    Repository
	storage storage.Storage
	catalog Catalog
}

func NewService(repo Repository, store storage.Storage, cat Catalog) Service {
	return &service{
		repo:    repo,
		storage: store,
		catalog: cat,
	}
}

func (s *service) Upload(ctx context.Context, cabinTypeID int64, header *multipart.FileHeader) (*Photo, error) {
	cabin, err := s.catalog.GetCabinType(ctx, cabinTypeID)
	if err != nil {
		return nil, err
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrNotAnImage
	}

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// Buffer the whole image so it can be saved and thumbnailed.
	// Cabin photos are small enough for this to be fine.
	content, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read file content: %w", err)
	}

	photoID := uuid.New().String()
	ext := strings.ToLower(filepath.Ext(header.Filename))
	shard := photoID[:2]
	storagePath := fmt.Sprintf("photos/%s/%s%s", shard, photoID, ext)

	if err := s.storage.Save(ctx, storagePath, bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("failed to save photo: %w", err)
	}

	// A failed thumbnail never fails the upload.
	var thumbnailPath *string
	thumb, err := storage.Thumbnail(bytes.NewReader(content), 400, 400)
	if err != nil {
		log.Warn().Err(err).Str("photo_id", photoID).Msg("thumbnail generation failed")
	} else {
		tPath := fmt.Sprintf("photos/%s/%s_thumb.jpg", shard, photoID)
		if err := s.storage.Save(ctx, tPath, thumb); err != nil {
			log.Warn().Err(err).Str("photo_id", photoID).Msg("thumbnail save failed")
		} else {
			thumbnailPath = &tPath
		}
	}

	p := &Photo{
		ID:            photoID,
		CabinTypeID:   cabinTypeID,
		Filename:      header.Filename,
		StoragePath:   storagePath,
		ThumbnailPath: thumbnailPath,
		ContentType:   contentType,
		Size:          header.Size,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		_ = s.storage.Delete(ctx, storagePath)
		if thumbnailPath != nil {
			_ = s.storage.Delete(ctx, *thumbnailPath)
		}
		return nil, err
	}

	// First photo becomes the cabin's cover image.
	if cabin.ImageURL == "" {
		if err := s.catalog.SetCabinImageURL(ctx, cabinTypeID, PhotoURL(p.ID)); err != nil {
			log.Warn().Err(err).Int64("cabin_type_id", cabinTypeID).Msg("set cover image failed")
		}
	}

	return p, nil
}

func (s *service) ListByCabinType(ctx context.Context, cabinTypeID int64) ([]*Photo, error) {
	return s.repo.ListByCabinType(ctx, cabinTypeID)
}

func (s *service) Download(ctx context.Context, id string) (io.ReadCloser, *Photo, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	stream, err := s.storage.Get(ctx, p.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to retrieve photo from storage: %w", err)
	}
	return stream, p, nil
}

func (s *service) DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Photo, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if p.ThumbnailPath == nil {
		return nil, nil, ErrNoThumbnail
	}

	stream, err := s.storage.Get(ctx, *p.ThumbnailPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to retrieve thumbnail from storage: %w", err)
	}
	return stream, p, nil
}
