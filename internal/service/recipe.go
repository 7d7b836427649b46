package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dishlet/backend/internal/models"
)

// RecipeService handles the saved-recipe collection.
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// SaveDraft exports a generated draft into the user's collection. Rating
// defaults to 0 and instructions_language to English when the draft does
// not carry them.
func (s *RecipeService) SaveDraft(ctx context.Context, userID uuid.UUID, draft *RecipeDraft) (*models.Recipe, error) {
	if draft.Name == "" || len(draft.Instructions) == 0 {
		return nil, fmt.Errorf("%w: recipe needs a name and instructions", ErrValidation)
	}
	if draft.Rating < 0 || draft.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 0 and 5", ErrValidation)
	}

	lang := draft.InstructionsLanguage
	if lang == "" {
		lang = "en"
	}

	recipe := models.Recipe{
		ID:                   uuid.New(),
		Name:                 draft.Name,
		Ingredients:          draft.Ingredients,
		Instructions:         models.JSONBStringArray(draft.Instructions),
		CookingTime:          draft.CookingTime,
		Difficulty:           draft.Difficulty,
		Cuisine:              draft.Cuisine,
		Servings:             int(draft.Servings),
		ImageURL:             draft.ImageURL,
		Preference:           draft.Preference,
		Rating:               draft.Rating,
		InstructionsLanguage: lang,
		UserID:               userID,
	}

	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return &recipe, nil
}

// ListRecipes returns a user's saved recipes, newest first.
func (s *RecipeService) ListRecipes(ctx context.Context, userID uuid.UUID) ([]*models.Recipe, error) {
	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	result := make([]*models.Recipe, len(recipes))
	for i := range recipes {
		result[i] = &recipes[i]
	}
	return result, nil
}

// UpdateRating sets the rating on a saved recipe owned by the user.
func (s *RecipeService) UpdateRating(ctx context.Context, userID, recipeID uuid.UUID, rating int) (*models.Recipe, error) {
	if rating < 0 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 0 and 5", ErrValidation)
	}

	var recipe models.Recipe
	if err := s.db.WithContext(ctx).
		First(&recipe, "id = ? AND user_id = ?", recipeID, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: recipe %s", ErrNotFound, recipeID)
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	recipe.Rating = rating
	if err := s.db.WithContext(ctx).Save(&recipe).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return &recipe, nil
}

// DeleteRecipe removes a saved recipe owned by the user.
func (s *RecipeService) DeleteRecipe(ctx context.Context, userID, recipeID uuid.UUID) error {
	res := s.db.WithContext(ctx).
		Delete(&models.Recipe{}, "id = ? AND user_id = ?", recipeID, userID)
	if res.Error != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: recipe %s", ErrNotFound, recipeID)
	}
	return nil
}
