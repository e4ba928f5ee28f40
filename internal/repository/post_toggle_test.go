package repository

import (
	"context"
	"fmt"
	"testing"

	"barkbook/internal/database"
	"barkbook/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newToggleTestDB opens an in-memory database with the full schema, pinned to
// a single connection so every statement sees the same memory store. Unlike
// the sqlmock tests above, these run the real unique index on likes.
func newToggleTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func createToggleUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	u := models.User{Email: email, Password: "hashed"}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func createDogPost(t *testing.T, db *gorm.DB, owner models.User) models.Post {
	t.Helper()
	d := models.Dog{Name: "Rex", OwnerID: owner.ID}
	require.NoError(t, db.Create(&d).Error)
	p := models.Post{Content: "Woof!", AuthorID: owner.ID, DogID: d.ID}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func countLikes(t *testing.T, db *gorm.DB, postID uint) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&n).Error)
	return n
}

func TestToggleLikeRepeatedSequence(t *testing.T) {
	db := newToggleTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	owner := createToggleUser(t, db, "owner@example.com")
	post := createDogPost(t, db, owner)

	// Each toggle flips the state; an even-length sequence lands back where
	// it started.
	for i := 0; i < 4; i++ {
		res, err := repo.ToggleLike(ctx, owner.ID, post.ID)
		require.NoError(t, err, "toggle %d", i)

		wantLiked := i%2 == 0
		assert.Equal(t, wantLiked, res.LikedByUser, fmt.Sprintf("toggle %d", i))
		if wantLiked {
			assert.Equal(t, 1, res.LikesCount)
		} else {
			assert.Equal(t, 0, res.LikesCount)
		}
	}

	assert.EqualValues(t, 0, countLikes(t, db, post.ID))

	got, err := repo.GetByID(ctx, post.ID, owner.ID)
	require.NoError(t, err)
	assert.False(t, got.Liked)
	assert.Equal(t, 0, got.LikesCount)
}

func TestToggleLikeDistinctUsers(t *testing.T) {
	db := newToggleTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	owner := createToggleUser(t, db, "owner@example.com")
	other := createToggleUser(t, db, "other@example.com")
	post := createDogPost(t, db, owner)

	res, err := repo.ToggleLike(ctx, owner.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, res.LikedByUser)
	assert.Equal(t, 1, res.LikesCount)

	res, err = repo.ToggleLike(ctx, other.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, res.LikedByUser)
	assert.Equal(t, 2, res.LikesCount)

	// Unliking by one user must not disturb the other user's like.
	res, err = repo.ToggleLike(ctx, owner.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, res.LikedByUser)
	assert.Equal(t, 1, res.LikesCount)

	got, err := repo.GetByID(ctx, post.ID, other.ID)
	require.NoError(t, err)
	assert.True(t, got.Liked)
	assert.Equal(t, 1, got.LikesCount)

	got, err = repo.GetByID(ctx, post.ID, owner.ID)
	require.NoError(t, err)
	assert.False(t, got.Liked)
}
