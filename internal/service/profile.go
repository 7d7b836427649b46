package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dishlet/backend/internal/models"
)

// ProfileService handles user profile operations
type ProfileService struct {
	db *gorm.DB
}

// NewProfileService creates a new ProfileService instance
func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// GetProfile retrieves a user's profile
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: profile for user %s", ErrNotFound, userID)
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return &profile, nil
}

// RecordCookingActivity applies a streak update to the user's profile.
// The update is computed by the caller (ComputeStreakUpdate) after a
// successful recipe save.
func (s *ProfileService) RecordCookingActivity(ctx context.Context, userID uuid.UUID, update StreakUpdate) (*models.UserProfile, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	date := update.LastCookedDate
	profile.LastCookedDate = &date
	profile.StreakCount = update.StreakCount
	profile.Badges = models.JSONBStringArray(update.Badges)

	if err := s.db.WithContext(ctx).Save(profile).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return profile, nil
}
