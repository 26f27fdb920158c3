package handlers

import (
	"net/http"
	"time"

	"wemoment-backend/internal/middleware"
	"wemoment-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const maxUploadBytes = 10 << 20

// PhotoHandler handles photo-related HTTP requests
type PhotoHandler struct {
	photoService *services.PhotoService
}

// NewPhotoHandler creates a new photo handler
func NewPhotoHandler(photoService *services.PhotoService) *PhotoHandler {
	return &PhotoHandler{
		photoService: photoService,
	}
}

// GetPhotos handles GET /api/v1/photos
func (h *PhotoHandler) GetPhotos(w http.ResponseWriter, r *http.Request) {
	from, err := parseTimeParam(r.URL.Query().Get("from"), false)
	if err != nil {
		respondError(w, "invalid from", http.StatusBadRequest)
		return
	}
	to, err := parseTimeParam(r.URL.Query().Get("to"), true)
	if err != nil {
		respondError(w, "invalid to", http.StatusBadRequest)
		return
	}

	photos := h.photoService.List(from, to)

	response := map[string]interface{}{
		"photos": photos,
		"total":  len(photos),
	}
	respondJSON(w, http.StatusOK, response)
}

// UploadPhoto handles POST /api/v1/photos/upload
func (h *PhotoHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondError(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	req := services.UploadRequest{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Size:        header.Size,
	}

	photo, err := h.photoService.Upload(ctx, userID, req, file)
	if err != nil {
		log.Error().
			Err(err).
			Str("user_id", userID).
			Str("filename", header.Filename).
			Msg("Failed to upload photo")
		respondError(w, err.Error(), statusFor(err))
		return
	}

	respondJSON(w, http.StatusCreated, photo)
}

// DeletePhoto handles DELETE /api/v1/photos/{photo_id}
func (h *PhotoHandler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	photoID := chi.URLParam(r, "photo_id")
	if err := h.photoService.Delete(r.Context(), photoID); err != nil {
		respondError(w, err.Error(), statusFor(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// parseTimeParam accepts RFC3339 or a bare local date. A bare upper bound
// covers the whole day.
func parseTimeParam(value string, endOfDay bool) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := services.ParseLocalDate(value, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay && len(value) == len("2006-01-02") {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}
