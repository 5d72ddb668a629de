package models

import "time"

// Post is a job posting. Username is filled from the author join on reads
// and ignored on writes.
type Post struct {
	ID       int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	AuthorID int64     `gorm:"not null;index" json:"author_id"`
	Created  time.Time `gorm:"autoCreateTime" json:"created"`
	Title    string    `gorm:"not null" json:"title"`
	Body     string    `gorm:"not null" json:"body"`

	Username string `gorm:"->" json:"username"`
}

func (Post) TableName() string {
	return "post"
}

// OwnedBy reports whether userID is the post's author.
func (p *Post) OwnedBy(userID int64) bool {
	return p.AuthorID == userID
}
