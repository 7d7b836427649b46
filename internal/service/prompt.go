package service

import (
	"fmt"
	"strings"
)

// Schema is a minimal JSON-schema representation, enough to describe the
// structured responses we request from the LLM and to embed in the prompt.
type Schema struct {
	Type       string             `json:"type"`
	Properties map[string]*Schema `json:"properties,omitempty"`
	Items      *Schema            `json:"items,omitempty"`
	Required   []string           `json:"required,omitempty"`
	Enum       []string           `json:"enum,omitempty"`
	MinItems   int                `json:"minItems,omitempty"`
	MaxItems   int                `json:"maxItems,omitempty"`
}

// RecipeRequest is a built generation request: the natural-language prompt
// plus the response schema the provider must conform to.
type RecipeRequest struct {
	Prompt string
	Schema *Schema
}

const (
	// MinRecipesPerBatch and MaxRecipesPerBatch bound the size of a
	// generated batch; responses outside this range are rejected.
	MinRecipesPerBatch = 2
	MaxRecipesPerBatch = 3
)

// BuildRecipeRequest builds the generation request for the given user input.
// Empty ingredients are only allowed in surprise mode.
func BuildRecipeRequest(ingredients, preference string, surprise bool) (*RecipeRequest, error) {
	ingredients = strings.TrimSpace(ingredients)
	if ingredients == "" && !surprise {
		return nil, fmt.Errorf("%w: ingredients are required", ErrValidation)
	}

	var base string
	if surprise {
		ing := ingredients
		if ing == "" {
			ing = "any common pantry items"
		}
		base = fmt.Sprintf("Create three surprising, creative yet practical recipes using: %s.", ing)
	} else {
		base = fmt.Sprintf("Create three practical recipes using these ingredients: %s.", ingredients)
	}

	prompt := base + "\n" +
		"Important: Provide the instructions in English by default.\n" +
		"Include for each: name, ingredients (concise comma-separated), step-by-step instructions (array), cooking_time, difficulty (Easy/Medium/Hard), cuisine, servings (number).\n" +
		fmt.Sprintf("Adapt strictly to this preference: %s (veg, non_veg, vegan, healthy).", preference)

	return &RecipeRequest{Prompt: prompt, Schema: recipeBatchSchema()}, nil
}

func recipeBatchSchema() *Schema {
	return &Schema{
		Type: "object",
		Properties: map[string]*Schema{
			"recipes": {
				Type:     "array",
				MinItems: MinRecipesPerBatch,
				MaxItems: MaxRecipesPerBatch,
				Items: &Schema{
					Type: "object",
					Properties: map[string]*Schema{
						"name":         {Type: "string"},
						"ingredients":  {Type: "string"},
						"instructions": {Type: "array", Items: &Schema{Type: "string"}},
						"cooking_time": {Type: "string"},
						"difficulty":   {Type: "string", Enum: []string{"Easy", "Medium", "Hard"}},
						"cuisine":      {Type: "string"},
						"servings":     {Type: "number"},
					},
					Required: []string{"name", "ingredients", "instructions"},
				},
			},
		},
		Required: []string{"recipes"},
	}
}

// translationSchema describes the expected shape of a translation response.
func translationSchema() *Schema {
	return &Schema{
		Type: "object",
		Properties: map[string]*Schema{
			"instructions": {Type: "array", Items: &Schema{Type: "string"}},
		},
		Required: []string{"instructions"},
	}
}

// languageLabels maps supported instruction-language codes to the
// human-readable names used in translation prompts.
var languageLabels = map[string]string{
	"en": "English",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"it": "Italian",
	"hi": "Hindi",
}

// LanguageLabel resolves a language code to its prompt label. Unknown
// codes fall back to English.
func LanguageLabel(code string) string {
	if label, ok := languageLabels[code]; ok {
		return label
	}
	return "English"
}
