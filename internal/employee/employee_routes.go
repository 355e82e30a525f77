package employee

import (
	"github.com/gin-gonic/gin"

	"github.com/Maxwellrubert/employee-dashboard/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	{
		employees.GET("",
			middleware.RateLimitByIP(10, 20),
			handler.GetAll,
		)
		employees.GET("/:id",
			middleware.RateLimitByIP(10, 20),
			handler.GetByID,
		)
		employees.POST("",
			middleware.RateLimitByIP(2, 5),
			handler.Create,
		)
		employees.PUT("/:id",
			middleware.RateLimitByIP(2, 5),
			handler.Update,
		)
		employees.DELETE("/:id",
			middleware.RateLimitByIP(1, 3),
			handler.Delete,
		)
	}
}
