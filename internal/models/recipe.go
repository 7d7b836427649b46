package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// Recipe is a saved recipe. Ingredients are kept as the comma-separated
// free text the generator produced; instructions are ordered steps.
type Recipe struct {
	ID                   uuid.UUID        `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
	DeletedAt            gorm.DeletedAt   `gorm:"index" json:"-"`
	Name                 string           `gorm:"size:255;not null" json:"name"`
	Ingredients          string           `gorm:"type:text;not null" json:"ingredients"`
	Instructions         JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"instructions"`
	CookingTime          string           `gorm:"size:50" json:"cooking_time"`
	Difficulty           string           `gorm:"size:20" json:"difficulty"`
	Cuisine              string           `gorm:"size:50" json:"cuisine"`
	Servings             int              `json:"servings"`
	ImageURL             string           `gorm:"size:512" json:"image_url"`
	Preference           string           `gorm:"size:20;not null" json:"preference"`
	Rating               int              `gorm:"not null;default:0;check:rating >= 0 AND rating <= 5" json:"rating"`
	InstructionsLanguage string           `gorm:"size:5;not null;default:'en'" json:"instructions_language"`
	UserID               uuid.UUID        `gorm:"type:varchar(36);not null;index" json:"user_id"`
}
