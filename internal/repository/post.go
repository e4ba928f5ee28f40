package repository

import (
	"context"
	"errors"
	"time"

	"barkbook/internal/cache"
	"barkbook/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error)
	List(ctx context.Context, currentUserID uint) ([]*models.Post, error)
	ToggleLike(ctx context.Context, userID, postID uint) (*models.LikeResult, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateFeed(ctx)
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	var post models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
		Preload("Author").
		Preload("Dog").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

// List returns all posts newest-first with author and dog summaries resolved
// at read time. The anonymous feed is served through the cache; per-user
// feeds (with the liked flag) always hit the database.
func (r *postRepository) List(ctx context.Context, currentUserID uint) ([]*models.Post, error) {
	var posts []*models.Post

	fetch := func() error {
		return r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
			Preload("Author").
			Preload("Dog").
			Order("created_at DESC").
			Find(&posts).Error
	}

	var err error
	if currentUserID == 0 {
		err = cache.Aside(ctx, cache.FeedKey, &posts, cache.FeedTTL, fetch)
	} else {
		err = fetch()
	}
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// applyPostDetails adds subqueries to fetch the like count and liked status in a single query.
func (r *postRepository) applyPostDetails(db *gorm.DB, currentUserID uint) *gorm.DB {
	selectQuery := "posts.*, " +
		"(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) as likes_count"

	if currentUserID != 0 {
		return db.Select(selectQuery+", EXISTS(SELECT 1 FROM likes WHERE likes.post_id = posts.id AND likes.user_id = ?) as liked", currentUserID)
	}

	return db.Select(selectQuery + ", false as liked")
}

// ToggleLike flips the (post, user) like membership and reports the new state.
// The INSERT ... ON CONFLICT DO NOTHING against the composite unique index is
// the linearization point: a concurrent duplicate toggle lands on the DELETE
// branch instead of appending twice, and toggles by different users never
// overwrite each other because no whole-row like state is read back and saved.
func (r *postRepository) ToggleLike(ctx context.Context, userID, postID uint) (*models.LikeResult, error) {
	var exists int64
	if err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", postID).
		Count(&exists).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	if exists == 0 {
		return nil, models.NewNotFoundError("Post", postID)
	}

	res := r.db.WithContext(ctx).Exec(
		`INSERT INTO likes (user_id, post_id, created_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT (user_id, post_id) DO NOTHING`,
		userID, postID, time.Now().UTC(),
	)
	if res.Error != nil {
		return nil, models.NewInternalError(res.Error)
	}

	liked := res.RowsAffected == 1
	if !liked {
		if err := r.db.WithContext(ctx).
			Where("user_id = ? AND post_id = ?", userID, postID).
			Delete(&models.Like{}).Error; err != nil {
			return nil, models.NewInternalError(err)
		}
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	cache.InvalidateFeed(ctx)

	return &models.LikeResult{
		PostID:      postID,
		LikesCount:  int(count),
		LikedByUser: liked,
	}, nil
}
