package notification

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Maxwellrubert/employee-dashboard/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	handlers := []gin.HandlerFunc{
		middleware.RateLimitByIP(1, 3),
	}
	if rdb != nil {
		handlers = append(handlers, middleware.Idempotency(rdb))
	}
	handlers = append(handlers, handler.SendEmail)

	r.POST("/send-email", handlers...)
}
