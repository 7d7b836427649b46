package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dishlet/backend/internal/middleware"
	"github.com/dishlet/backend/internal/service"
)

// ProfileHandler serves the user's cooking profile.
type ProfileHandler struct {
	profileService service.IProfileService
	recipeService  service.IRecipeService
	authService    service.IAuthService
}

// NewProfileHandler creates a new ProfileHandler instance
func NewProfileHandler(profileService service.IProfileService, recipeService service.IRecipeService, authService service.IAuthService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		recipeService:  recipeService,
		authService:    authService,
	}
}

// RegisterRoutes registers the profile routes
func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/profile", h.GetProfile)
}

// GetProfile returns the user's streak, badges and saved recipe count.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	recipes, err := h.recipeService.ListRecipes(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"full_name":        user.FullName,
		"email":            user.Email,
		"last_cooked_date": profile.LastCookedDate,
		"streak_count":     profile.StreakCount,
		"badges":           profile.Badges,
		"recipes_saved":    len(recipes),
	})
}
