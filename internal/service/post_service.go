package service

import (
	"context"
	"strings"

	"barkbook/internal/models"
	"barkbook/internal/observability"
	"barkbook/internal/repository"
)

const maxPostContentLen = 5000

type PostService struct {
	postRepo repository.PostRepository
	dogRepo  repository.DogRepository
}

type CreatePostInput struct {
	AuthorID uint
	Content  string
	ImageURL string
	DogID    uint
}

func NewPostService(postRepo repository.PostRepository, dogRepo repository.DogRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		dogRepo:  dogRepo,
	}
}

// CreatePost validates and persists a new post. The referenced dog must
// exist and belong to the author; posting on behalf of someone else's dog
// is rejected before anything is written.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxPostContentLen {
		return nil, models.NewValidationError("Content too long (max 5000 characters)")
	}
	if in.DogID == 0 {
		return nil, models.NewValidationError("dog_id is required")
	}

	dog, err := s.dogRepo.GetByID(ctx, in.DogID)
	if err != nil {
		return nil, err
	}
	if dog.OwnerID != in.AuthorID {
		return nil, models.NewUnauthorizedError("You can only post as your own dog")
	}

	post := &models.Post{
		Content:  in.Content,
		ImageURL: in.ImageURL,
		AuthorID: in.AuthorID,
		DogID:    in.DogID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	observability.PostsCreated.Inc()
	return s.postRepo.GetByID(ctx, post.ID, in.AuthorID)
}

// ListPosts returns the feed newest-first. currentUserID of zero means an
// anonymous caller; the per-post liked flag is then always false.
func (s *PostService) ListPosts(ctx context.Context, currentUserID uint) ([]*models.Post, error) {
	return s.postRepo.List(ctx, currentUserID)
}

func (s *PostService) GetPost(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id, currentUserID)
}

// ToggleLike flips the caller's like on a post and reports the new state.
func (s *PostService) ToggleLike(ctx context.Context, userID, postID uint) (*models.LikeResult, error) {
	result, err := s.postRepo.ToggleLike(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	if result.LikedByUser {
		observability.LikeToggles.WithLabelValues("liked").Inc()
	} else {
		observability.LikeToggles.WithLabelValues("unliked").Inc()
	}
	return result, nil
}
