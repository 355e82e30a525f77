package system

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/health", handler.Health)
	r.GET("/debug", handler.Debug)
}
