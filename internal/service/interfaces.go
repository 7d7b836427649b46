package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/dishlet/backend/internal/middleware"
	"github.com/dishlet/backend/internal/models"
)

// IGeneratorService runs the generation pipeline.
type IGeneratorService interface {
	Generate(ctx context.Context, req GenerateRequest) (*DraftBatch, error)
}

// IDraftService caches and serves generated batches.
type IDraftService interface {
	BatchStore
	GetBatch(ctx context.Context, id string) (*DraftBatch, error)
	DeleteBatch(ctx context.Context, id string) error
}

// IRecipeService defines the interface for saved-recipe operations
type IRecipeService interface {
	SaveDraft(ctx context.Context, userID uuid.UUID, draft *RecipeDraft) (*models.Recipe, error)
	ListRecipes(ctx context.Context, userID uuid.UUID) ([]*models.Recipe, error)
	UpdateRating(ctx context.Context, userID, recipeID uuid.UUID, rating int) (*models.Recipe, error)
	DeleteRecipe(ctx context.Context, userID, recipeID uuid.UUID) error
}

// IProfileService defines the interface for user profile operations
type IProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
	RecordCookingActivity(ctx context.Context, userID uuid.UUID, update StreakUpdate) (*models.UserProfile, error)
}

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(fullName, email, password string) (string, error)
	Login(email, password string) (string, error)
	GetUser(userID uuid.UUID) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	ValidateToken(token string) (*middleware.TokenClaims, error)
}

// IEmailService defines the interface for email operations
type IEmailService interface {
	NextSuggestion() string
	SendDailySuggestion(user *models.User, message string) error
	SendWelcomeEmail(user *models.User) error
	SendEmail(to, subject, body string) error
}

// Compile-time interface checks.
var (
	_ IGeneratorService = (*GeneratorService)(nil)
	_ IDraftService     = (*DraftService)(nil)
	_ IRecipeService    = (*RecipeService)(nil)
	_ IProfileService   = (*ProfileService)(nil)
	_ IAuthService      = (*AuthService)(nil)
	_ IEmailService     = (*EmailService)(nil)
	_ TextGenerator     = (*LLMService)(nil)
	_ ImageGenerator    = (*ImageService)(nil)
)
