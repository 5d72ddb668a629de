package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"jobboard/database"
	"jobboard/internal/http-api/models"
)

type PostRepository interface {
	List(ctx context.Context) ([]models.Post, error)
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	CountByAuthor(ctx context.Context, authorID int64) (int64, error)
	Create(ctx context.Context, post *models.Post) error
	Update(ctx context.Context, id int64, title, body string) error
	UpdateBody(ctx context.Context, id int64, body string) error
	Delete(ctx context.Context, id int64) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// withAuthor selects post columns plus the author's username.
func (r *postRepository) withAuthor(ctx context.Context) *gorm.DB {
	return database.Session(ctx, r.db).
		Table("post p").
		Select("p.id, p.author_id, p.created, p.title, p.body, u.username").
		Joins(`JOIN "user" u ON p.author_id = u.id`)
}

// List returns every post, newest first.
func (r *postRepository) List(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	err := r.withAuthor(ctx).
		Order("p.created DESC").
		Order("p.id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// GetByID returns gorm.ErrRecordNotFound when no post has the id.
func (r *postRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	var post models.Post
	if err := r.withAuthor(ctx).Where("p.id = ?", id).Take(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) CountByAuthor(ctx context.Context, authorID int64) (int64, error) {
	var count int64
	err := database.Session(ctx, r.db).
		Model(&models.Post{}).
		Where("author_id = ?", authorID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return count, nil
}

// Create inserts the post and commits; GORM fills in post.ID and post.Created.
func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	err := database.Session(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		return tx.Create(post).Error
	})
	if err != nil {
		return fmt.Errorf("create post: %w", err)
	}
	return nil
}

func (r *postRepository) Update(ctx context.Context, id int64, title, body string) error {
	err := database.Session(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		return tx.Model(&models.Post{}).
			Where("id = ?", id).
			Updates(map[string]any{"title": title, "body": body}).Error
	})
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	return nil
}

func (r *postRepository) UpdateBody(ctx context.Context, id int64, body string) error {
	err := database.Session(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		return tx.Model(&models.Post{}).Where("id = ?", id).Update("body", body).Error
	})
	if err != nil {
		return fmt.Errorf("update post body: %w", err)
	}
	return nil
}

// Delete removes the post; its comments go with it through the foreign key.
func (r *postRepository) Delete(ctx context.Context, id int64) error {
	err := database.Session(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		return tx.Where("id = ?", id).Delete(&models.Post{}).Error
	})
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}
