package app

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Maxwellrubert/employee-dashboard/internal/config"
	"github.com/Maxwellrubert/employee-dashboard/internal/employee"
	"github.com/Maxwellrubert/employee-dashboard/internal/middleware"
	"github.com/Maxwellrubert/employee-dashboard/internal/shared/connection"
)

// BuildApp wires infrastructure and modules onto the router. The storage
// adapter is chosen once here; everything downstream sees only the
// Repository interface.
func BuildApp(router *gin.Engine, cfg config.Config, logger *zap.Logger) error {
	router.Use(cors.Default())
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(logger))

	repo, err := buildRepository(cfg)
	if err != nil {
		return err
	}
	logger.Info("storage adapter ready", zap.String("driver", cfg.StorageDriver))

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
		if err != nil {
			return err
		}
	}

	return registerModules(router, repo, rdb, cfg, logger)
}

func buildRepository(cfg config.Config) (employee.Repository, error) {
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		db, err := connection.ConnectGORMWithRetry(
			cfg.DBHost,
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBName,
			cfg.DBPort,
			cfg.DBSSLMode,
			5,
		)
		if err != nil {
			return nil, err
		}
		if err := db.AutoMigrate(&employee.Employee{}); err != nil {
			return nil, fmt.Errorf("migrate employees table: %w", err)
		}
		return employee.NewGormRepository(db), nil

	case config.DriverFile:
		return employee.NewFileRepository(cfg.StorageFile)

	case config.DriverMemory:
		return employee.NewMemoryRepository(), nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
