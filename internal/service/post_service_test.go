package service

import (
	"context"
	"strings"
	"testing"

	"barkbook/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPostRepo struct {
	mock.Mock
}

func (m *mockPostRepo) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *mockPostRepo) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	args := m.Called(ctx, id, currentUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *mockPostRepo) List(ctx context.Context, currentUserID uint) ([]*models.Post, error) {
	args := m.Called(ctx, currentUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Post), args.Error(1)
}

func (m *mockPostRepo) ToggleLike(ctx context.Context, userID, postID uint) (*models.LikeResult, error) {
	args := m.Called(ctx, userID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LikeResult), args.Error(1)
}

func TestPostServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		posts := new(mockPostRepo)
		dogs := new(mockDogRepo)
		svc := NewPostService(posts, dogs)

		dogs.On("GetByID", mock.Anything, uint(5)).
			Return(&models.Dog{ID: 5, Name: "Rex", OwnerID: 1}, nil)
		posts.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Post) bool {
			return p.Content == "Walkies!" && p.AuthorID == 1 && p.DogID == 5
		})).Return(nil)
		posts.On("GetByID", mock.Anything, mock.Anything, uint(1)).
			Return(&models.Post{ID: 10, Content: "Walkies!", AuthorID: 1, DogID: 5}, nil)

		post, err := svc.CreatePost(ctx, CreatePostInput{AuthorID: 1, Content: "Walkies!", DogID: 5})
		require.NoError(t, err)
		assert.Equal(t, uint(10), post.ID)
		posts.AssertExpectations(t)
	})

	t.Run("Blank content", func(t *testing.T) {
		posts := new(mockPostRepo)
		dogs := new(mockDogRepo)
		svc := NewPostService(posts, dogs)

		_, err := svc.CreatePost(ctx, CreatePostInput{AuthorID: 1, Content: "  \n ", DogID: 5})
		require.Error(t, err)

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeValidation, appErr.Code)
		posts.AssertNotCalled(t, "Create")
	})

	t.Run("Content too long", func(t *testing.T) {
		posts := new(mockPostRepo)
		dogs := new(mockDogRepo)
		svc := NewPostService(posts, dogs)

		_, err := svc.CreatePost(ctx, CreatePostInput{
			AuthorID: 1,
			Content:  strings.Repeat("a", maxPostContentLen+1),
			DogID:    5,
		})
		require.Error(t, err)
		posts.AssertNotCalled(t, "Create")
	})

	t.Run("Dog owned by someone else", func(t *testing.T) {
		posts := new(mockPostRepo)
		dogs := new(mockDogRepo)
		svc := NewPostService(posts, dogs)

		dogs.On("GetByID", mock.Anything, uint(5)).
			Return(&models.Dog{ID: 5, Name: "Rex", OwnerID: 2}, nil)

		_, err := svc.CreatePost(ctx, CreatePostInput{AuthorID: 1, Content: "Walkies!", DogID: 5})
		require.Error(t, err)

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeUnauthorized, appErr.Code)
		posts.AssertNotCalled(t, "Create")
	})
}

func TestPostServiceToggleLike(t *testing.T) {
	ctx := context.Background()

	posts := new(mockPostRepo)
	dogs := new(mockDogRepo)
	svc := NewPostService(posts, dogs)

	posts.On("ToggleLike", mock.Anything, uint(1), uint(7)).
		Return(&models.LikeResult{PostID: 7, LikesCount: 1, LikedByUser: true}, nil)

	result, err := svc.ToggleLike(ctx, 1, 7)
	require.NoError(t, err)
	assert.True(t, result.LikedByUser)
	assert.Equal(t, 1, result.LikesCount)
}
