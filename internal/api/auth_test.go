package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterEndpoint(t *testing.T) {
	a := setupTestAPI(t)
	a.token = "" // registration is public

	t.Run("valid registration returns a token", func(t *testing.T) {
		w := a.do(t, http.MethodPost, "/api/v1/auth/register", map[string]any{
			"full_name": "Ada Lovelace",
			"email":     "ada@example.com",
			"password":  "password123",
		})
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NotEmpty(t, decodeBody(t, w)["token"])
	})

	t.Run("invalid email is rejected", func(t *testing.T) {
		w := a.do(t, http.MethodPost, "/api/v1/auth/register", map[string]any{
			"full_name": "Ada Lovelace",
			"email":     "not-an-email",
			"password":  "password123",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("short password is rejected", func(t *testing.T) {
		w := a.do(t, http.MethodPost, "/api/v1/auth/register", map[string]any{
			"full_name": "Ada Lovelace",
			"email":     "ada2@example.com",
			"password":  "short",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		w := a.do(t, http.MethodPost, "/api/v1/auth/register", map[string]any{
			"full_name": "Another Ada",
			"email":     "ada@example.com",
			"password":  "password123",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLoginEndpoint(t *testing.T) {
	a := setupTestAPI(t)
	a.token = ""

	t.Run("valid credentials return a token", func(t *testing.T) {
		w := a.do(t, http.MethodPost, "/api/v1/auth/login", map[string]any{
			"email":    "cook@example.com",
			"password": "password123",
		})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, decodeBody(t, w)["token"])
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		w := a.do(t, http.MethodPost, "/api/v1/auth/login", map[string]any{
			"email":    "cook@example.com",
			"password": "wrongpassword",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
