package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"wemoment-backend/internal/models"
	"wemoment-backend/internal/state"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// PhotoService handles gallery uploads and listing
type PhotoService struct {
	store   *state.Store
	storage ObjectStorage
	now     func() time.Time
}

// NewPhotoService creates a new photo service. storage may be nil, in which
// case uploads are rejected and only listing works.
func NewPhotoService(store *state.Store, storage ObjectStorage) *PhotoService {
	return &PhotoService{
		store:   store,
		storage: storage,
		now:     time.Now,
	}
}

// UploadRequest describes a photo being uploaded
type UploadRequest struct {
	Filename    string
	ContentType string
	Title       string
	Description string
	Size        int64
}

// Upload stores the file and adds the photo to the gallery
func (s *PhotoService) Upload(ctx context.Context, userID string, req UploadRequest, body io.Reader) (*models.Photo, error) {
	if s.storage == nil {
		return nil, ErrStorageDisabled
	}

	if req.ContentType == "" {
		req.ContentType = "image/jpeg"
	}
	if !strings.HasPrefix(req.ContentType, "image/") {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMedia, req.ContentType)
	}

	photoID := uuid.New().String()
	ext := strings.ToLower(path.Ext(req.Filename))
	if ext == "" {
		ext = ".jpg"
	}
	key := fmt.Sprintf("photos/%s%s", photoID, ext)

	url, err := s.storage.Put(ctx, key, req.ContentType, body, req.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to store photo: %w", err)
	}

	title := req.Title
	if title == "" {
		title = strings.TrimSuffix(path.Base(req.Filename), path.Ext(req.Filename))
	}

	photo := models.Photo{
		ID:          photoID,
		URL:         url,
		Title:       title,
		Description: req.Description,
		UploadedBy:  userID,
		CreatedAt:   s.now(),
	}
	s.store.Dispatch(ctx, state.AddPhoto{Photo: photo})

	log.Info().
		Str("user_id", userID).
		Str("photo_id", photoID).
		Msg("Photo uploaded")

	return &photo, nil
}

// List returns gallery photos created in [from, to], newest first
func (s *PhotoService) List(from, to time.Time) []models.Photo {
	return state.PhotosBetween(s.store.State().Photos, from, to)
}

// Delete removes a photo from the gallery and, when possible, from storage
func (s *PhotoService) Delete(ctx context.Context, photoID string) error {
	var photo *models.Photo
	for _, p := range s.store.State().Photos {
		if p.ID == photoID {
			p := p
			photo = &p
			break
		}
	}
	if photo == nil {
		return ErrPhotoNotFound
	}

	s.store.Dispatch(ctx, state.DeletePhoto{ID: photoID})

	if s.storage != nil {
		if err := s.storage.Delete(ctx, photo.URL); err != nil {
			log.Error().Err(err).Str("photo_id", photoID).Msg("Failed to delete stored photo")
		}
	}
	return nil
}
