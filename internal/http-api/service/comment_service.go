package service

import (
	"context"

	"jobboard/internal/http-api/models"
	"jobboard/internal/http-api/repository"
)

type CommentService interface {
	List(ctx context.Context, postID int64) ([]models.Comment, error)
	Create(ctx context.Context, postID, authorID int64, content string) (*models.Comment, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
}

func NewCommentService(commentRepo repository.CommentRepository) CommentService {
	return &commentService{commentRepo: commentRepo}
}

// List returns the post's comments, newest first.
func (s *commentService) List(ctx context.Context, postID int64) ([]models.Comment, error) {
	return s.commentRepo.ListByPost(ctx, postID)
}

// Create appends a comment. The post must already have been loaded by the
// caller.
func (s *commentService) Create(ctx context.Context, postID, authorID int64, content string) (*models.Comment, error) {
	if content == "" {
		return nil, invalid("content", "Content is required.")
	}

	comment := &models.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Content:  content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}
