package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"jobboard/internal/http-api/dto"
	"jobboard/internal/http-api/models"
	"jobboard/internal/http-api/repository"
)

type PostService interface {
	List(ctx context.Context) ([]models.Post, error)
	DefaultTitle(ctx context.Context, user *models.User) (string, error)
	Create(ctx context.Context, authorID int64, form dto.PostForm) (*models.Post, error)
	GetPost(ctx context.Context, id, currentUserID int64, checkAuthor bool) (*models.Post, error)
	Update(ctx context.Context, id int64, form dto.PostForm) error
	Delete(ctx context.Context, id int64) error
}

type postService struct {
	postRepo repository.PostRepository
}

func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

func (s *postService) List(ctx context.Context) ([]models.Post, error) {
	return s.postRepo.List(ctx)
}

// DefaultTitle suggests "<username>'s Job <n+1>" where n counts the user's
// existing posts. It is only a form default, nothing keeps it unique.
func (s *postService) DefaultTitle(ctx context.Context, user *models.User) (string, error) {
	n, err := s.postRepo.CountByAuthor(ctx, user.ID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s's Job %d", user.Username, n+1), nil
}

func validatePost(form dto.PostForm) error {
	if form.Title == "" {
		return invalid("title", "Title is required.")
	}
	return nil
}

// Create stores a new post authored by authorID.
func (s *postService) Create(ctx context.Context, authorID int64, form dto.PostForm) (*models.Post, error) {
	if err := validatePost(form); err != nil {
		return nil, err
	}

	post := &models.Post{
		AuthorID: authorID,
		Title:    form.Title,
		Body:     form.Body,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost fetches a post with its author's username. With checkAuthor set,
// anyone but the author gets ErrForbidden.
func (s *postService) GetPost(ctx context.Context, id, currentUserID int64, checkAuthor bool) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	if checkAuthor && !post.OwnedBy(currentUserID) {
		return nil, ErrForbidden
	}
	return post, nil
}

// Update overwrites title and body. Ownership is checked by the caller
// through GetPost.
func (s *postService) Update(ctx context.Context, id int64, form dto.PostForm) error {
	if err := validatePost(form); err != nil {
		return err
	}
	return s.postRepo.Update(ctx, id, form.Title, form.Body)
}

func (s *postService) Delete(ctx context.Context, id int64) error {
	return s.postRepo.Delete(ctx, id)
}
