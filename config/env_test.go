package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvironment(t *testing.T) {
	t.Setenv("CI", "")

	t.Run("defaults to development", func(t *testing.T) {
		t.Setenv("ENV", "")
		assert.Equal(t, Development, GetEnvironment())
		assert.False(t, IsTest())
		assert.False(t, IsProduction())
	})

	t.Run("test", func(t *testing.T) {
		t.Setenv("ENV", "test")
		assert.Equal(t, Test, GetEnvironment())
		assert.True(t, IsTest())
		assert.False(t, IsProduction())
	})

	t.Run("production", func(t *testing.T) {
		t.Setenv("ENV", "production")
		assert.Equal(t, Production, GetEnvironment())
		assert.False(t, IsTest())
		assert.True(t, IsProduction())
	})

	t.Run("CI wins over ENV", func(t *testing.T) {
		t.Setenv("CI", "true")
		t.Setenv("ENV", "production")
		assert.Equal(t, CI, GetEnvironment())
	})
}
