package models

import "time"

type Comment struct {
	ID       int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID   int64     `gorm:"not null;index" json:"post_id"`
	AuthorID int64     `gorm:"not null" json:"author_id"`
	Content  string    `gorm:"not null" json:"content"`
	Created  time.Time `gorm:"autoCreateTime" json:"created"`

	Username string `gorm:"->" json:"username"`
}

func (Comment) TableName() string {
	return "comment"
}
