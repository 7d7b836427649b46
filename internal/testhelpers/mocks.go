package testhelpers

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dishlet/backend/internal/middleware"
	"github.com/dishlet/backend/internal/models"
	"github.com/dishlet/backend/internal/service"
)

// MockAuthService is a mock implementation of the auth service interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(fullName, email, password string) (string, error) {
	args := m.Called(fullName, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Login(email, password string) (string, error) {
	args := m.Called(email, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) GetUser(userID uuid.UUID) (*models.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) GetUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) ValidateToken(token string) (*middleware.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*middleware.TokenClaims), args.Error(1)
}

// MockGeneratorService is a mock implementation of the generator service interface
type MockGeneratorService struct {
	mock.Mock
}

func (m *MockGeneratorService) Generate(ctx context.Context, req service.GenerateRequest) (*service.DraftBatch, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DraftBatch), args.Error(1)
}

// MockDraftService is a mock implementation of the draft cache interface
type MockDraftService struct {
	mock.Mock
}

func (m *MockDraftService) SaveBatch(ctx context.Context, batch *service.DraftBatch) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}

func (m *MockDraftService) GetBatch(ctx context.Context, id string) (*service.DraftBatch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DraftBatch), args.Error(1)
}

func (m *MockDraftService) DeleteBatch(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRecipeService is a mock implementation of the recipe service interface
type MockRecipeService struct {
	mock.Mock
}

func (m *MockRecipeService) SaveDraft(ctx context.Context, userID uuid.UUID, draft *service.RecipeDraft) (*models.Recipe, error) {
	args := m.Called(ctx, userID, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeService) ListRecipes(ctx context.Context, userID uuid.UUID) ([]*models.Recipe, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Recipe), args.Error(1)
}

func (m *MockRecipeService) UpdateRating(ctx context.Context, userID, recipeID uuid.UUID, rating int) (*models.Recipe, error) {
	args := m.Called(ctx, userID, recipeID, rating)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeService) DeleteRecipe(ctx context.Context, userID, recipeID uuid.UUID) error {
	args := m.Called(ctx, userID, recipeID)
	return args.Error(0)
}

// MockProfileService is a mock implementation of the profile service interface
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockProfileService) RecordCookingActivity(ctx context.Context, userID uuid.UUID, update service.StreakUpdate) (*models.UserProfile, error) {
	args := m.Called(ctx, userID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

// MockEmailService is a mock implementation of the email service interface
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) NextSuggestion() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockEmailService) SendDailySuggestion(user *models.User, message string) error {
	args := m.Called(user, message)
	return args.Error(0)
}

func (m *MockEmailService) SendWelcomeEmail(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockEmailService) SendEmail(to, subject, body string) error {
	args := m.Called(to, subject, body)
	return args.Error(0)
}
