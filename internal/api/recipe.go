package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dishlet/backend/internal/middleware"
	"github.com/dishlet/backend/internal/service"
)

// RecipeHandler handles the saved-recipe collection. Saving also records
// cooking activity on the user's profile (streak and badges).
type RecipeHandler struct {
	recipeService  service.IRecipeService
	profileService service.IProfileService

	now func() time.Time
}

// NewRecipeHandler creates a new RecipeHandler instance
func NewRecipeHandler(recipeService service.IRecipeService, profileService service.IProfileService) *RecipeHandler {
	return &RecipeHandler{
		recipeService:  recipeService,
		profileService: profileService,
		now:            time.Now,
	}
}

// RegisterRoutes registers the recipe routes
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.POST("", h.SaveRecipe)
		recipes.PUT("/:id/rating", h.UpdateRating)
		recipes.DELETE("/:id", h.DeleteRecipe)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	recipes, err := h.recipeService.ListRecipes(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// SaveRecipe exports a generated draft into the user's collection and
// applies the streak update. The save itself failing surfaces as an
// error; the client keeps its draft either way.
func (h *RecipeHandler) SaveRecipe(c *gin.Context) {
	var draft service.RecipeDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	recipe, err := h.recipeService.SaveDraft(c.Request.Context(), userID, &draft)
	if err != nil {
		respondError(c, err)
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	update := service.ComputeStreakUpdate(
		h.now(), profile.LastCookedDate, profile.StreakCount,
		draft.Preference, draft.Ingredients, profile.Badges,
	)
	profile, err = h.profileService.RecordCookingActivity(c.Request.Context(), userID, update)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"recipe":  recipe,
		"profile": profile,
	})
}

func (h *RecipeHandler) UpdateRating(c *gin.Context) {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var req struct {
		Rating *int `json:"rating" binding:"required,min=0,max=5"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	recipe, err := h.recipeService.UpdateRating(c.Request.Context(), userID, recipeID, *req.Rating)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.recipeService.DeleteRecipe(c.Request.Context(), userID, recipeID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "recipe deleted", "id": recipeID})
}
