package dashboard

import (
	"github.com/gin-gonic/gin"

	"github.com/Maxwellrubert/employee-dashboard/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	dash := r.Group("/dashboard")
	{
		dash.GET("/stats",
			middleware.RateLimitByIP(10, 20),
			handler.Stats,
		)
	}
}
