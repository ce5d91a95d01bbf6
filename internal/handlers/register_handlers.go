package handlers

import (
	"time"

	portssvc "github.com/expensemgmt/expense_management_app/internal/core/ports/services"
	"github.com/expensemgmt/expense_management_app/internal/middleware"
	"github.com/expensemgmt/expense_management_app/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container interfaces.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	api := r.Group("/api")

	RegisterExpenseRoutes(api, services.Expense, cfg.DefaultUserID)

	// The chat endpoints fan out to the hosted model, so they get a per-IP
	// rate limit the rest of the API does not need.
	chatLimiter := middleware.NewChatLimiter(limiter.Rate{
		Period: time.Minute,
		Limit:  cfg.ChatRateLimitPerMin,
	})
	RegisterChatRoutes(api, services.Chat, middleware.RateLimit(chatLimiter))

	RegisterPageRoutes(r, services.Expense, cfg.DefaultUserID, cfg.DefaultReviewerID)
}
