package profiles_repositories

import (
	profiles_models "devcollab/internal/features/profiles/models"
	"devcollab/internal/storage"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileRepository struct{}

func (r *ProfileRepository) CreateProfile(profile *profiles_models.Profile) error {
	return storage.GetDb().Create(profile).Error
}

func (r *ProfileRepository) UpdateProfile(profile *profiles_models.Profile) error {
	return storage.GetDb().Save(profile).Error
}

// GetProfiles returns every profile, newest first.
func (r *ProfileRepository) GetProfiles() ([]*profiles_models.Profile, error) {
	var profiles []*profiles_models.Profile

	if err := storage.GetDb().Order("created_at DESC").Find(&profiles).Error; err != nil {
		return nil, err
	}

	return profiles, nil
}

func (r *ProfileRepository) GetProfileByID(id uuid.UUID) (*profiles_models.Profile, error) {
	var profile profiles_models.Profile

	if err := storage.GetDb().Where("id = ?", id).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &profile, nil
}

func (r *ProfileRepository) GetProfileByUsername(username string) (*profiles_models.Profile, error) {
	var profile profiles_models.Profile

	if err := storage.GetDb().Where("username = ?", username).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &profile, nil
}
