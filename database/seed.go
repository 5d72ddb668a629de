package database

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"gorm.io/gorm"

	"jobboard/internal/http-api/models"
)

const seedBatchSize = 500

// SeedSongs inserts every CSV row from r into the song table in a single
// transaction and returns the number of rows written. Columns are matched by
// header name; columns outside the song table are ignored. The dataset ships
// its row number in an unnamed first column, which is mapped to "number".
func SeedSongs(ctx context.Context, db *gorm.DB, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read seed header: %w", err)
	}
	index := headerIndex(header)

	total := 0
	err = Session(ctx, db).Transaction(func(tx *gorm.DB) error {
		batch := make([]models.Song, 0, seedBatchSize)
		flush := func() error {
			if len(batch) == 0 {
				return nil
			}
			if err := tx.Create(&batch).Error; err != nil {
				return fmt.Errorf("failed to insert songs: %w", err)
			}
			total += len(batch)
			batch = batch[:0]
			return nil
		}

		for line := 2; ; line++ {
			record, err := reader.Read()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return fmt.Errorf("failed to read seed line %d: %w", line, err)
			}
			batch = append(batch, songFromRecord(record, index))
			if len(batch) == seedBatchSize {
				if err := flush(); err != nil {
					return err
				}
			}
		}
		return flush()
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}
	if _, ok := index["number"]; !ok {
		if i, ok := index[""]; ok {
			index["number"] = i
		}
	}
	return index
}

func songFromRecord(record []string, index map[string]int) models.Song {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}
	return models.Song{
		Number:      field("number"),
		ArtistName:  field("artist_name"),
		TrackName:   field("track_name"),
		ReleaseDate: field("release_date"),
		Genre:       field("genre"),
		Lyrics:      field("lyrics"),
	}
}
