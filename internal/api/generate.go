package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dishlet/backend/internal/middleware"
	"github.com/dishlet/backend/internal/service"
)

// GenerateHandler runs the recipe generation pipeline and serves cached
// draft batches.
type GenerateHandler struct {
	generator service.IGeneratorService
	drafts    service.IDraftService
}

// NewGenerateHandler creates a new GenerateHandler instance
func NewGenerateHandler(generator service.IGeneratorService, drafts service.IDraftService) *GenerateHandler {
	return &GenerateHandler{
		generator: generator,
		drafts:    drafts,
	}
}

// RegisterRoutes registers the generation routes
func (h *GenerateHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/generate", h.Generate)
	batches := router.Group("/generate/batches")
	{
		batches.GET("/:id", h.GetBatch)
		batches.DELETE("/:id", h.DeleteBatch)
	}
}

// Generate handles one generation action: text generation, image
// enrichment and optional translation. Surprise mode allows empty
// ingredients.
func (h *GenerateHandler) Generate(c *gin.Context) {
	var req struct {
		Ingredients string `json:"ingredients"`
		Preference  string `json:"preference" binding:"required,oneof=veg non_veg vegan healthy"`
		Surprise    bool   `json:"surprise"`
		Language    string `json:"language"`
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

	batch, err := h.generator.Generate(c.Request.Context(), service.GenerateRequest{
		UserID:      userID,
		Ingredients: req.Ingredients,
		Preference:  req.Preference,
		Surprise:    req.Surprise,
		Language:    req.Language,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, batch)
}

func (h *GenerateHandler) GetBatch(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	batch, err := h.drafts.GetBatch(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if batch.UserID != userID.String() {
		c.JSON(http.StatusNotFound, gin.H{"error": "batch not found"})
		return
	}

	c.JSON(http.StatusOK, batch)
}

func (h *GenerateHandler) DeleteBatch(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	batch, err := h.drafts.GetBatch(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if batch.UserID != userID.String() {
		c.JSON(http.StatusNotFound, gin.H{"error": "batch not found"})
		return
	}

	if err := h.drafts.DeleteBatch(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "batch deleted"})
}
