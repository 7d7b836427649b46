package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dishlet/backend/internal/models"
	"github.com/dishlet/backend/internal/service"
	"github.com/dishlet/backend/internal/testhelpers"
)

func TestRegisterAndLogin(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewAuthService(db, "test-secret")

	token, err := svc.Register("Ada Lovelace", "ada@example.com", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	t.Run("registration creates an empty cooking profile", func(t *testing.T) {
		user, err := svc.GetUserByEmail("ada@example.com")
		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", user.FullName)

		var profile models.UserProfile
		require.NoError(t, db.Where("user_id = ?", user.ID).First(&profile).Error)
		assert.Equal(t, 0, profile.StreakCount)
		assert.Nil(t, profile.LastCookedDate)
		assert.Empty(t, profile.Badges)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		_, err := svc.Register("Ada Again", "ada@example.com", "password456")
		assert.Error(t, err)
	})

	t.Run("login with correct password", func(t *testing.T) {
		token, err := svc.Login("ada@example.com", "password123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("login with wrong password", func(t *testing.T) {
		_, err := svc.Login("ada@example.com", "wrong")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("login with unknown email", func(t *testing.T) {
		_, err := svc.Login("nobody@example.com", "password123")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestValidateToken(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewAuthService(db, "test-secret")

	token, err := svc.Register("Ada Lovelace", "ada@example.com", "password123")
	require.NoError(t, err)

	user, err := svc.GetUserByEmail("ada@example.com")
	require.NoError(t, err)

	t.Run("valid token resolves to the user", func(t *testing.T) {
		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)

		got, err := svc.GetUser(claims.UserID)
		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", got.Email)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.Error(t, err)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		other := service.NewAuthService(db, "other-secret")
		otherToken, err := other.Login("ada@example.com", "password123")
		require.NoError(t, err)

		_, err = svc.ValidateToken(otherToken)
		assert.Error(t, err)
	})
}
