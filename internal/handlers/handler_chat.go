package handlers

import (
	"net/http"

	portssvc "github.com/expensemgmt/expense_management_app/internal/core/ports/services"
	"github.com/expensemgmt/expense_management_app/internal/dto"
	"github.com/expensemgmt/expense_management_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// chatHandler handles the assistant endpoints. The chat reply is always HTTP
// 200: assistant failures are folded into the reply text by the service.
type chatHandler struct {
	chatService portssvc.ChatSvcFacade
}

func newChatHandler(cs portssvc.ChatSvcFacade) *chatHandler {
	return &chatHandler{chatService: cs}
}

// RegisterChatRoutes registers the chat endpoints, applying any extra
// middleware (rate limiting) to the group. Exported for handler tests.
func RegisterChatRoutes(rg *gin.RouterGroup, chatService portssvc.ChatSvcFacade, mw ...gin.HandlerFunc) {
	h := newChatHandler(chatService)

	chat := rg.Group("/chat", mw...)
	{
		chat.POST("", h.chat)
		chat.GET("/status", h.status)
	}
}

// chat answers a user message, optionally continuing a prior conversation.
func (h *chatHandler) chat(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Chat request received")
	reply := h.chatService.Respond(c.Request.Context(), req.Message, req.History)

	c.JSON(http.StatusOK, dto.ChatResponse{
		Success:      true,
		Message:      reply,
		IsConfigured: h.chatService.IsConfigured(),
	})
}

// status reports whether the hosted chat model is configured.
func (h *chatHandler) status(c *gin.Context) {
	configured := h.chatService.IsConfigured()
	message := "AI chat is not configured. Set OPENAI_ENDPOINT and OPENAI_DEPLOYMENT to enable AI features."
	if configured {
		message = "AI chat is configured and ready"
	}
	c.JSON(http.StatusOK, dto.ChatStatusResponse{
		IsConfigured: configured,
		Message:      message,
	})
}
