package models_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dishlet/backend/internal/models"
)

func TestJSONBStringArrayScan(t *testing.T) {
	var arr models.JSONBStringArray

	require.NoError(t, arr.Scan([]byte(`["a","b"]`)))
	assert.Equal(t, models.JSONBStringArray{"a", "b"}, arr)

	require.NoError(t, arr.Scan(`["c"]`))
	assert.Equal(t, models.JSONBStringArray{"c"}, arr)

	require.NoError(t, arr.Scan(nil))
	assert.Empty(t, arr)
}

func TestJSONBStringArrayValue(t *testing.T) {
	empty, err := models.JSONBStringArray{}.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", empty)

	val, err := models.JSONBStringArray{"x"}.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `["x"]`, string(val.([]byte)))
}

func TestRecipePersistsInstructions(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Recipe{}))

	recipe := models.Recipe{
		ID:                   uuid.New(),
		Name:                 "Test Dish",
		Ingredients:          "a, b",
		Instructions:         models.JSONBStringArray{"first", "second"},
		Preference:           "veg",
		InstructionsLanguage: "en",
		UserID:               uuid.New(),
	}
	require.NoError(t, db.Create(&recipe).Error)

	var loaded models.Recipe
	require.NoError(t, db.First(&loaded, "id = ?", recipe.ID).Error)
	assert.Equal(t, models.JSONBStringArray{"first", "second"}, loaded.Instructions)
	assert.Equal(t, "en", loaded.InstructionsLanguage)
}
