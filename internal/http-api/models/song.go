package models

// Song is a row of the lyrics dataset loaded by init-db. The application
// never writes it after seeding.
type Song struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Number      string `json:"number"`
	ArtistName  string `json:"artist_name"`
	TrackName   string `json:"track_name"`
	ReleaseDate string `json:"release_date"`
	Genre       string `json:"genre"`
	Lyrics      string `json:"lyrics"`
}

func (Song) TableName() string {
	return "song"
}
