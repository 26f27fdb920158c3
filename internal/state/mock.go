package state

import (
	"time"

	"wemoment-backend/internal/models"
)

// MockPhotos returns the demo gallery seeded on first run
func MockPhotos() []models.Photo {
	base := time.Date(2024, time.January, 15, 18, 30, 0, 0, time.UTC)
	return []models.Photo{
		{
			ID:          "mock-photo-1",
			URL:         "https://images.unsplash.com/photo-1516589178581-6cd7833ae3b2?w=800",
			Title:       "Pôr do sol na praia",
			Description: "Nosso primeiro pôr do sol juntos",
			UploadedBy:  "demo",
			CreatedAt:   base,
		},
		{
			ID:          "mock-photo-2",
			URL:         "https://images.unsplash.com/photo-1529634806980-85c3dd6d34ac?w=800",
			Title:       "Jantar especial",
			Description: "Comemorando seis meses",
			UploadedBy:  "demo",
			CreatedAt:   base.AddDate(0, 1, 3),
		},
		{
			ID:          "mock-photo-3",
			URL:         "https://images.unsplash.com/photo-1518199266791-5375a83190b7?w=800",
			Title:       "Trilha na serra",
			Description: "Chegamos no topo!",
			UploadedBy:  "demo",
			CreatedAt:   base.AddDate(0, 2, 10),
		},
		{
			ID:          "mock-photo-4",
			URL:         "https://images.unsplash.com/photo-1522673607200-164d1b6ce486?w=800",
			Title:       "Piquenique no parque",
			Description: "Domingo perfeito",
			UploadedBy:  "demo",
			CreatedAt:   base.AddDate(0, 3, 21),
		},
	}
}
