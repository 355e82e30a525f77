package app

import (
	"context"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Maxwellrubert/employee-dashboard/internal/config"
	"github.com/Maxwellrubert/employee-dashboard/internal/dashboard"
	"github.com/Maxwellrubert/employee-dashboard/internal/employee"
	"github.com/Maxwellrubert/employee-dashboard/internal/notification"
	"github.com/Maxwellrubert/employee-dashboard/internal/shared/apperror"
	"github.com/Maxwellrubert/employee-dashboard/internal/shared/response"
	"github.com/Maxwellrubert/employee-dashboard/internal/system"
)

func registerModules(
	router *gin.Engine,
	repo employee.Repository,
	rdb *redis.Client,
	cfg config.Config,
	logger *zap.Logger,
) error {
	// --- Services ---
	employeeService := employee.NewService(repo, logger)
	dashboardService := dashboard.NewService(repo, logger)
	webhookClient := notification.NewWebhookClient(cfg.WebhookURL)
	notificationService := notification.NewService(employeeService, webhookClient, logger)

	// First boot on an empty store gets the starter directory; a seeding
	// failure is logged but never blocks startup.
	if err := employeeService.SeedSampleData(context.Background()); err != nil {
		logger.Warn("seeding sample employees failed", zap.Error(err))
	}

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, logger)
	dashboardHandler := dashboard.NewHandler(dashboardService, logger)
	notificationHandler := notification.NewHandler(notificationService, logger)
	if rdb != nil {
		notificationHandler = notification.NewHandlerWithRedis(notificationService, rdb, logger)
	}
	systemHandler := system.NewHandler(employeeService, cfg.Environment, cfg.StorageDriver, logger)

	// --- Routes Registration ---
	root := router.Group("")
	{
		employee.RegisterRoutes(root, employeeHandler)
		dashboard.RegisterRoutes(root, dashboardHandler)
		notification.RegisterRoutes(root, notificationHandler, rdb)
		system.RegisterRoutes(root, systemHandler)
	}

	router.NoRoute(notFoundHandler(cfg.StaticDir))

	return nil
}

// notFoundHandler serves the bundled UI for unmatched GETs when a static
// dir is configured (SPA fallback), otherwise a JSON 404.
func notFoundHandler(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if staticDir != "" && c.Request.Method == http.MethodGet {
			requested := filepath.Join(staticDir, filepath.Clean("/"+c.Request.URL.Path))
			if info, err := os.Stat(requested); err == nil && !info.IsDir() {
				c.File(requested)
				return
			}
			c.File(filepath.Join(staticDir, "index.html"))
			return
		}
		response.Error(c, http.StatusNotFound, apperror.CodeNotFound, "Route not found", nil)
	}
}
