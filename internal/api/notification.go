package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dishlet/backend/internal/middleware"
	"github.com/dishlet/backend/internal/service"
)

// NotificationHandler serves daily suggestions and mails them on request.
type NotificationHandler struct {
	emailService service.IEmailService
	authService  service.IAuthService
}

// NewNotificationHandler creates a new NotificationHandler instance
func NewNotificationHandler(emailService service.IEmailService, authService service.IAuthService) *NotificationHandler {
	return &NotificationHandler{
		emailService: emailService,
		authService:  authService,
	}
}

// RegisterRoutes registers the notification routes. The suggestion
// endpoint is public; sending requires auth.
func (h *NotificationHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/notifications/suggestion", h.GetSuggestion)
	protected.POST("/notifications/send", h.SendSuggestion)
}

func (h *NotificationHandler) GetSuggestion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": h.emailService.NextSuggestion()})
}

// SendSuggestion mails the given suggestion (or the next one in rotation)
// to the authenticated user.
func (h *NotificationHandler) SendSuggestion(c *gin.Context) {
	var req struct {
		Message string `json:"message"`
	}
	// Body is optional
	_ = c.ShouldBindJSON(&req)

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

	message := req.Message
	if message == "" {
		message = h.emailService.NextSuggestion()
	}

	if err := h.emailService.SendDailySuggestion(user, message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send suggestion"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "suggestion sent", "suggestion": message})
}
