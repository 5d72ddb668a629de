package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"jobboard/internal/http-api/dto"
	"jobboard/internal/http-api/models"
)

func TestDefaultTitle(t *testing.T) {
	mockPostRepo := new(MockPostRepository)
	postService := NewPostService(mockPostRepo)
	ctx := context.Background()

	mockPostRepo.On("CountByAuthor", ctx, int64(7)).Return(int64(2), nil)

	title, err := postService.DefaultTitle(ctx, &models.User{ID: 7, Username: "alice"})

	assert.NoError(t, err)
	assert.Equal(t, "alice's Job 3", title)
	mockPostRepo.AssertExpectations(t)
}

func TestCreatePost_Success(t *testing.T) {
	mockPostRepo := new(MockPostRepository)
	postService := NewPostService(mockPostRepo)
	ctx := context.Background()

	mockPostRepo.On("Create", ctx, mock.MatchedBy(func(p *models.Post) bool {
		return p.AuthorID == 1 && p.Title == "Hello" && p.Body == "World"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Post).ID = 42
	}).Return(nil)

	post, err := postService.Create(ctx, 1, dto.PostForm{Title: "Hello", Body: "World"})

	require.NoError(t, err)
	assert.Equal(t, int64(42), post.ID)
	mockPostRepo.AssertExpectations(t)
}

func TestCreatePost_EmptyTitle(t *testing.T) {
	mockPostRepo := new(MockPostRepository)
	postService := NewPostService(mockPostRepo)

	post, err := postService.Create(context.Background(), 1, dto.PostForm{Body: "World"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Title is required.", verr.Message)
	assert.Nil(t, post)
	mockPostRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetPost(t *testing.T) {
	ctx := context.Background()
	post := &models.Post{ID: 5, AuthorID: 1, Title: "Hello", Username: "alice"}

	tests := []struct {
		name        string
		userID      int64
		checkAuthor bool
		repoPost    *models.Post
		repoErr     error
		wantErr     error
	}{
		{name: "author", userID: 1, checkAuthor: true, repoPost: post},
		{name: "other user without check", userID: 2, checkAuthor: false, repoPost: post},
		{name: "other user with check", userID: 2, checkAuthor: true, repoPost: post, wantErr: ErrForbidden},
		{name: "missing", userID: 1, checkAuthor: true, repoErr: gorm.ErrRecordNotFound, wantErr: ErrPostNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockPostRepo := new(MockPostRepository)
			if tt.repoPost != nil {
				mockPostRepo.On("GetByID", ctx, int64(5)).Return(tt.repoPost, nil)
			} else {
				mockPostRepo.On("GetByID", ctx, int64(5)).Return(nil, tt.repoErr)
			}

			got, err := NewPostService(mockPostRepo).GetPost(ctx, 5, tt.userID, tt.checkAuthor)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, post, got)
		})
	}
}

func TestGetPost_DatabaseError(t *testing.T) {
	ctx := context.Background()
	mockPostRepo := new(MockPostRepository)
	dbErr := errors.New("disk I/O error")
	mockPostRepo.On("GetByID", ctx, int64(5)).Return(nil, dbErr)

	_, err := NewPostService(mockPostRepo).GetPost(ctx, 5, 1, false)

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrPostNotFound)
}

func TestUpdatePost(t *testing.T) {
	ctx := context.Background()
	mockPostRepo := new(MockPostRepository)
	postService := NewPostService(mockPostRepo)

	mockPostRepo.On("Update", ctx, int64(5), "New", "Text").Return(nil)

	assert.NoError(t, postService.Update(ctx, 5, dto.PostForm{Title: "New", Body: "Text"}))

	var verr *ValidationError
	assert.ErrorAs(t, postService.Update(ctx, 5, dto.PostForm{Body: "Text"}), &verr)
	mockPostRepo.AssertNumberOfCalls(t, "Update", 1)
}

func TestDeletePost(t *testing.T) {
	ctx := context.Background()
	mockPostRepo := new(MockPostRepository)
	mockPostRepo.On("Delete", ctx, int64(5)).Return(nil)

	assert.NoError(t, NewPostService(mockPostRepo).Delete(ctx, 5))
	mockPostRepo.AssertExpectations(t)
}
