package service

import (
	"context"

	"jobboard/internal/http-api/models"
	"jobboard/internal/http-api/repository"
)

type SearchService interface {
	SearchLyrics(ctx context.Context, keyword string) ([]models.Song, error)
}

type searchService struct {
	songRepo repository.SongRepository
}

func NewSearchService(songRepo repository.SongRepository) SearchService {
	return &searchService{songRepo: songRepo}
}

// SearchLyrics does no validation: an empty keyword lists every song.
func (s *searchService) SearchLyrics(ctx context.Context, keyword string) ([]models.Song, error) {
	return s.songRepo.SearchLyrics(ctx, keyword)
}
