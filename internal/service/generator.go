package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// TextGenerator is the text-generation collaborator. Translation goes
// through the same interface with a different prompt and schema.
type TextGenerator interface {
	Invoke(ctx context.Context, prompt string, schema *Schema) (json.RawMessage, error)
}

// ImageGenerator is the image-generation collaborator.
type ImageGenerator interface {
	GenerateImageFromPrompt(ctx context.Context, prompt string) (string, error)
}

// BatchStore caches generated draft batches.
type BatchStore interface {
	SaveBatch(ctx context.Context, batch *DraftBatch) error
}

// ServingsCount tolerates providers returning servings as a number or a
// numeric string.
type ServingsCount int

func (s *ServingsCount) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*s = ServingsCount(int(num))
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		n, err := strconv.Atoi(strings.TrimSpace(str))
		if err != nil {
			return fmt.Errorf("invalid servings format")
		}
		*s = ServingsCount(n)
		return nil
	}

	return fmt.Errorf("invalid servings format")
}

// RecipeDraft is a generated-but-not-yet-persisted recipe. Once returned
// to the client only rating and instructions_language change.
type RecipeDraft struct {
	Name                 string        `json:"name"`
	Ingredients          string        `json:"ingredients"`
	Instructions         []string      `json:"instructions"`
	CookingTime          string        `json:"cooking_time"`
	Difficulty           string        `json:"difficulty"`
	Cuisine              string        `json:"cuisine"`
	Servings             ServingsCount `json:"servings"`
	ImageURL             string        `json:"image_url"`
	Preference           string        `json:"preference"`
	InstructionsLanguage string        `json:"instructions_language"`
	Rating               int           `json:"rating"`
}

// DraftBatch is the result of one generation action.
type DraftBatch struct {
	ID        string        `json:"id"`
	UserID    string        `json:"user_id"`
	CreatedAt time.Time     `json:"created_at"`
	Recipes   []RecipeDraft `json:"recipes"`
}

// GenerateRequest is one user-initiated generation action.
type GenerateRequest struct {
	UserID      uuid.UUID
	Ingredients string
	Preference  string
	Surprise    bool
	Language    string
}

// GeneratorService runs the enrichment pipeline: text generation, image
// fan-out, and conditional translation fan-out.
type GeneratorService struct {
	llm    TextGenerator
	images ImageGenerator
	drafts BatchStore

	mu       sync.Mutex
	inFlight map[uuid.UUID]struct{}
}

// NewGeneratorService creates a new GeneratorService instance. drafts may
// be nil, in which case batches are not cached.
func NewGeneratorService(llm TextGenerator, images ImageGenerator, drafts BatchStore) *GeneratorService {
	return &GeneratorService{
		llm:      llm,
		images:   images,
		drafts:   drafts,
		inFlight: make(map[uuid.UUID]struct{}),
	}
}

// Generate turns a generation request into a batch of fully-enriched
// drafts, in generation order. Exactly one generation runs per user at a
// time; a second request while one is in flight fails with
// ErrGenerationInFlight. Any single image or translation failure fails
// the whole batch; there is no partial-success path.
func (s *GeneratorService) Generate(ctx context.Context, req GenerateRequest) (*DraftBatch, error) {
	if err := s.acquire(req.UserID); err != nil {
		return nil, err
	}
	defer s.release(req.UserID)

	built, err := BuildRecipeRequest(req.Ingredients, req.Preference, req.Surprise)
	if err != nil {
		return nil, err
	}

	recipes, err := s.generateRecipes(ctx, built)
	if err != nil {
		return nil, err
	}

	if err := s.attachImages(ctx, recipes, req); err != nil {
		return nil, err
	}

	if err := s.translateInstructions(ctx, recipes, normalizeLanguage(req.Language)); err != nil {
		return nil, err
	}

	batch := &DraftBatch{
		ID:        uuid.New().String(),
		UserID:    req.UserID.String(),
		CreatedAt: time.Now(),
		Recipes:   recipes,
	}

	// The batch cache is a convenience, not part of the pipeline contract.
	if s.drafts != nil {
		if err := s.drafts.SaveBatch(ctx, batch); err != nil {
			log.Printf("[Generator] Failed to cache draft batch %s: %v", batch.ID, err)
		}
	}

	return batch, nil
}

func (s *GeneratorService) acquire(userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[userID]; busy {
		return ErrGenerationInFlight
	}
	s.inFlight[userID] = struct{}{}
	return nil
}

func (s *GeneratorService) release(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, userID)
}

// generateRecipes invokes the text collaborator and validates the payload
// against the batch schema. A response outside the 2-3 recipe range or
// missing required fields fails the batch; it is never truncated or padded.
func (s *GeneratorService) generateRecipes(ctx context.Context, req *RecipeRequest) ([]RecipeDraft, error) {
	raw, err := s.llm.Invoke(ctx, req.Prompt, req.Schema)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	var payload struct {
		Recipes []RecipeDraft `json:"recipes"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", ErrGeneration, err)
	}

	if n := len(payload.Recipes); n < MinRecipesPerBatch || n > MaxRecipesPerBatch {
		return nil, fmt.Errorf("%w: expected %d-%d recipes, got %d", ErrGeneration, MinRecipesPerBatch, MaxRecipesPerBatch, n)
	}

	for i, r := range payload.Recipes {
		if r.Name == "" || r.Ingredients == "" || len(r.Instructions) == 0 {
			return nil, fmt.Errorf("%w: recipe %d is missing required fields", ErrGeneration, i)
		}
	}

	return payload.Recipes, nil
}

// attachImages requests one image per recipe concurrently and joins on
// all of them. Each goroutine writes only its own slot.
func (s *GeneratorService) attachImages(ctx context.Context, recipes []RecipeDraft, req GenerateRequest) error {
	ingredients := strings.TrimSpace(req.Ingredients)
	if ingredients == "" {
		ingredients = "pantry items"
	}
	style := strings.ReplaceAll(req.Preference, "_", " ")

	g, gctx := errgroup.WithContext(ctx)
	for i := range recipes {
		g.Go(func() error {
			prompt := fmt.Sprintf(
				"High-quality, vibrant, realistic food photo of %s, %s style, appetizing plating, soft natural light, top-down angle, colorful ingredients (%s).",
				recipes[i].Name, style, ingredients,
			)
			url, err := s.images.GenerateImageFromPrompt(gctx, prompt)
			if err != nil {
				return fmt.Errorf("%w: %s: %v", ErrEnrichment, recipes[i].Name, err)
			}
			recipes[i].ImageURL = url
			recipes[i].Preference = req.Preference
			return nil
		})
	}
	return g.Wait()
}

// translateInstructions translates every recipe's steps into the requested
// language, concurrently, unless the language is English.
func (s *GeneratorService) translateInstructions(ctx context.Context, recipes []RecipeDraft, language string) error {
	if language == "en" {
		for i := range recipes {
			recipes[i].InstructionsLanguage = "en"
		}
		return nil
	}

	label := LanguageLabel(language)
	g, gctx := errgroup.WithContext(ctx)
	for i := range recipes {
		g.Go(func() error {
			steps, err := json.Marshal(recipes[i].Instructions)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrTranslation, err)
			}
			prompt := fmt.Sprintf(
				"Translate the following cooking instructions into %s. Keep the step-by-step structure and clarity. Return only the translated steps array.\n%s",
				label, steps,
			)
			raw, err := s.llm.Invoke(gctx, prompt, translationSchema())
			if err != nil {
				return fmt.Errorf("%w: %s: %v", ErrTranslation, recipes[i].Name, err)
			}
			var res struct {
				Instructions []string `json:"instructions"`
			}
			if err := json.Unmarshal(raw, &res); err != nil {
				return fmt.Errorf("%w: malformed response: %v", ErrTranslation, err)
			}
			if len(res.Instructions) == 0 {
				return fmt.Errorf("%w: empty instructions for %s", ErrTranslation, recipes[i].Name)
			}
			recipes[i].Instructions = res.Instructions
			recipes[i].InstructionsLanguage = language
			return nil
		})
	}
	return g.Wait()
}

// normalizeLanguage maps empty or unsupported codes to English so that
// instructions_language stays within the supported set.
func normalizeLanguage(code string) string {
	if _, ok := languageLabels[code]; ok {
		return code
	}
	return "en"
}
