package repository

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"jobboard/database"
	"jobboard/internal/http-api/models"
)

type SongRepository interface {
	SearchLyrics(ctx context.Context, keyword string) ([]models.Song, error)
}

type songRepository struct {
	db *gorm.DB
}

func NewSongRepository(db *gorm.DB) SongRepository {
	return &songRepository{db: db}
}

// SearchLyrics returns every song whose lyrics contain keyword. Case
// sensitivity follows the engine's LIKE. An empty keyword matches all rows.
func (r *songRepository) SearchLyrics(ctx context.Context, keyword string) ([]models.Song, error) {
	const where = "lyrics LIKE ?"
	pattern := "%" + keyword + "%"
	slog.DebugContext(ctx, "Searching lyrics", "where", where, "args", []any{pattern})

	var songs []models.Song
	if err := database.Session(ctx, r.db).Where(where, pattern).Order("id").Find(&songs).Error; err != nil {
		return nil, fmt.Errorf("search lyrics: %w", err)
	}
	return songs, nil
}
