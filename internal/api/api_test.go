package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dishlet/backend/internal/middleware"
	"github.com/dishlet/backend/internal/service"
	"github.com/dishlet/backend/internal/testhelpers"
)

// testAPI wires real services over an in-memory database with mocked
// generation collaborators.
type testAPI struct {
	router    *gin.Engine
	db        *gorm.DB
	auth      *service.AuthService
	generator *testhelpers.MockGeneratorService
	drafts    *testhelpers.MockDraftService
	recipes   *RecipeHandler

	token  string
	userID uuid.UUID
}

func setupTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("SMTP_HOST", "")
	t.Setenv("SMTP_PORT", "")

	db := testhelpers.SetupTestDatabase(t)
	authService := service.NewAuthService(db, "test-secret")
	emailService := service.NewEmailService()
	recipeService := service.NewRecipeService(db)
	profileService := service.NewProfileService(db)

	a := &testAPI{
		db:        db,
		auth:      authService,
		generator: new(testhelpers.MockGeneratorService),
		drafts:    new(testhelpers.MockDraftService),
	}

	authHandler := NewAuthHandler(authService, emailService)
	generateHandler := NewGenerateHandler(a.generator, a.drafts)
	a.recipes = NewRecipeHandler(recipeService, profileService)
	profileHandler := NewProfileHandler(profileService, recipeService, authService)
	notificationHandler := NewNotificationHandler(emailService, authService)

	router := gin.New()
	router.Use(gin.Recovery())

	v1 := router.Group("/api/v1")
	authHandler.RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	generateHandler.RegisterRoutes(protected)
	a.recipes.RegisterRoutes(protected)
	profileHandler.RegisterRoutes(protected)
	notificationHandler.RegisterRoutes(v1, protected)

	a.router = router

	token, err := authService.Register("Test Cook", "cook@example.com", "password123")
	require.NoError(t, err)
	a.token = token

	user, err := authService.GetUserByEmail("cook@example.com")
	require.NoError(t, err)
	a.userID = user.ID

	return a
}

// do performs an authenticated JSON request against the test router.
func (a *testAPI) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(raw)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	a := setupTestAPI(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodPost, "/api/v1/generate"},
		{http.MethodGet, "/api/v1/recipes"},
		{http.MethodGet, "/api/v1/profile"},
		{http.MethodPost, "/api/v1/notifications/send"},
	} {
		req := httptest.NewRequest(route.method, route.path, bytes.NewBufferString("{}"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		a.router.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}
}
