package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"jobboard/database"
	"jobboard/internal/http-api/models"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListByPost(ctx context.Context, postID int64) ([]models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create a new comment
func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	err := database.Session(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		return tx.Create(comment).Error
	})
	if err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}

// ListByPost retrieves all comments of a post with their authors, newest first.
func (r *commentRepository) ListByPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	var comments []models.Comment
	err := database.Session(ctx, r.db).
		Table("comment c").
		Select("c.id, c.post_id, c.author_id, c.content, c.created, u.username").
		Joins(`JOIN "user" u ON c.author_id = u.id`).
		Where("c.post_id = ?", postID).
		Order("c.created DESC").
		Order("c.id DESC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}
