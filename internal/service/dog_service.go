package service

import (
	"context"

	"barkbook/internal/models"
	"barkbook/internal/repository"
	"barkbook/internal/validation"
)

type DogService struct {
	dogRepo repository.DogRepository
	avatars *AvatarService
}

type CreateDogInput struct {
	OwnerID uint
	Name    string
	Breed   string
	Age     int

	// Avatar is an opaque reference (typically a URL) supplied at creation
	// time. Uploaded image assets go through UpdateMyDog instead.
	Avatar string
}

// DogPatch carries a partial profile update. Nil fields were absent from the
// request and leave the stored value untouched; a present field always wins,
// including zero values like age 0 or an empty breed.
type DogPatch struct {
	Name  *string
	Breed *string
	Age   *int

	// Avatar is the raw upload replacing the current avatar; ClearAvatar
	// removes it. At most one of the two is set.
	Avatar      []byte
	ClearAvatar bool
}

func NewDogService(dogRepo repository.DogRepository, avatars *AvatarService) *DogService {
	return &DogService{
		dogRepo: dogRepo,
		avatars: avatars,
	}
}

func (s *DogService) CreateDog(ctx context.Context, in CreateDogInput) (*models.Dog, error) {
	if err := validation.ValidateDogName(in.Name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateDogAge(in.Age); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	dog := &models.Dog{
		Name:    in.Name,
		Breed:   in.Breed,
		Age:     in.Age,
		Avatar:  in.Avatar,
		OwnerID: in.OwnerID,
	}
	if err := s.dogRepo.Create(ctx, dog); err != nil {
		return nil, err
	}
	return dog, nil
}

func (s *DogService) GetMyDog(ctx context.Context, ownerID uint) (*models.Dog, error) {
	return s.dogRepo.GetByOwner(ctx, ownerID)
}

// UpdateMyDog applies a partial update to the caller's dog profile. A new
// avatar is written to the asset store before the record is saved, and the
// previous asset is removed only after the save succeeds, so a failed update
// never leaves the profile pointing at a deleted asset.
func (s *DogService) UpdateMyDog(ctx context.Context, ownerID uint, patch DogPatch) (*models.Dog, error) {
	dog, err := s.dogRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		if err := validation.ValidateDogName(*patch.Name); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		dog.Name = *patch.Name
	}
	if patch.Breed != nil {
		dog.Breed = *patch.Breed
	}
	if patch.Age != nil {
		if err := validation.ValidateDogAge(*patch.Age); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		dog.Age = *patch.Age
	}

	oldHandle := dog.AvatarHandle
	replacedAvatar := false

	switch {
	case len(patch.Avatar) > 0:
		stored, err := s.avatars.Store(ownerID, patch.Avatar)
		if err != nil {
			return nil, err
		}
		dog.Avatar = stored.URL
		dog.AvatarHandle = stored.Handle
		replacedAvatar = oldHandle != "" && oldHandle != stored.Handle
	case patch.ClearAvatar:
		dog.Avatar = ""
		dog.AvatarHandle = ""
		replacedAvatar = oldHandle != ""
	}

	if err := s.dogRepo.Update(ctx, dog); err != nil {
		return nil, err
	}

	if replacedAvatar {
		// Best effort; an orphaned asset is preferable to a broken profile.
		_ = s.avatars.Delete(oldHandle)
	}

	return dog, nil
}
