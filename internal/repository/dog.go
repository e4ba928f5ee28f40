package repository

import (
	"context"
	"errors"

	"barkbook/internal/cache"
	"barkbook/internal/models"

	"gorm.io/gorm"
)

// DogRepository defines persistence operations for dog profiles.
type DogRepository interface {
	Create(ctx context.Context, dog *models.Dog) error
	GetByOwner(ctx context.Context, ownerID uint) (*models.Dog, error)
	GetByID(ctx context.Context, id uint) (*models.Dog, error)
	Update(ctx context.Context, dog *models.Dog) error
}

type dogRepository struct {
	db *gorm.DB
}

// NewDogRepository returns a new DogRepository implementation.
func NewDogRepository(db *gorm.DB) DogRepository {
	return &dogRepository{db: db}
}

func (r *dogRepository) Create(ctx context.Context, dog *models.Dog) error {
	if err := r.db.WithContext(ctx).Create(dog).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Dog profile already exists")
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateDog(ctx, dog.OwnerID)
	return nil
}

func (r *dogRepository) GetByOwner(ctx context.Context, ownerID uint) (*models.Dog, error) {
	var dog models.Dog
	key := cache.DogKey(ownerID)

	err := cache.Aside(ctx, key, &dog, cache.DogTTL, func() error {
		if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&dog).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Dog profile", ownerID)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &dog, nil
}

func (r *dogRepository) GetByID(ctx context.Context, id uint) (*models.Dog, error) {
	var dog models.Dog
	if err := r.db.WithContext(ctx).First(&dog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Dog", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &dog, nil
}

func (r *dogRepository) Update(ctx context.Context, dog *models.Dog) error {
	if err := r.db.WithContext(ctx).Save(dog).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateDog(ctx, dog.OwnerID)
	cache.InvalidateFeed(ctx)
	return nil
}
