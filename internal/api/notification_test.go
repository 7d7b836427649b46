package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dishlet/backend/internal/models"
	"github.com/dishlet/backend/internal/testhelpers"
)

func TestGetSuggestionIsPublic(t *testing.T) {
	a := setupTestAPI(t)
	a.token = ""

	seen := map[string]bool{}
	for i := 0; i < 4; i++ {
		w := a.do(t, http.MethodGet, "/api/v1/notifications/suggestion", nil)
		require.Equal(t, http.StatusOK, w.Code)
		msg, ok := decodeBody(t, w)["message"].(string)
		require.True(t, ok)
		require.NotEmpty(t, msg)
		seen[msg] = true
	}
	// The suggestion rotates through distinct messages.
	assert.Len(t, seen, 4)
}

func TestSendSuggestion(t *testing.T) {
	gin.SetMode(gin.TestMode)

	user := &models.User{FullName: "Test Cook", Email: "cook@example.com"}

	setup := func(email *testhelpers.MockEmailService, auth *testhelpers.MockAuthService) *gin.Engine {
		router := gin.New()
		handler := NewNotificationHandler(email, auth)
		group := router.Group("/api/v1")
		protected := group.Group("")
		protected.Use(func(c *gin.Context) {
			c.Set("user_id", user.ID)
		})
		handler.RegisterRoutes(group, protected)
		return router
	}

	t.Run("custom message is mailed as-is", func(t *testing.T) {
		email := new(testhelpers.MockEmailService)
		auth := new(testhelpers.MockAuthService)
		auth.On("GetUser", user.ID).Return(user, nil)
		email.On("SendDailySuggestion", user, "Taco night?").Return(nil)

		router := setup(email, auth)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/notifications/send",
			bytes.NewBufferString(`{"message": "Taco night?"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		email.AssertExpectations(t)
	})

	t.Run("empty body falls back to the rotating suggestion", func(t *testing.T) {
		email := new(testhelpers.MockEmailService)
		auth := new(testhelpers.MockAuthService)
		auth.On("GetUser", user.ID).Return(user, nil)
		email.On("NextSuggestion").Return("It’s dinner time 🍲 Want a surprise recipe?")
		email.On("SendDailySuggestion", user, "It’s dinner time 🍲 Want a surprise recipe?").Return(nil)

		router := setup(email, auth)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/notifications/send", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		email.AssertExpectations(t)
	})
}
