package system

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Maxwellrubert/employee-dashboard/internal/employee"
	"github.com/Maxwellrubert/employee-dashboard/internal/shared/apperror"
	"github.com/Maxwellrubert/employee-dashboard/internal/shared/response"
)

type HealthResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	Environment string `json:"environment"`
	Timestamp   string `json:"timestamp"`
}

type DebugResponse struct {
	Environment   string                      `json:"environment"`
	EmployeeCount int                         `json:"employeeCount"`
	Employees     []employee.EmployeeResponse `json:"employees"`
	Storage       string                      `json:"storage"`
	Timestamp     string                      `json:"timestamp"`
}

type Handler struct {
	employees   employee.Service
	environment string
	storage     string
	logger      *zap.Logger
}

func NewHandler(employees employee.Service, environment, storage string, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("system.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("system.handler")
	}
	return &Handler{
		employees:   employees,
		environment: environment,
		storage:     storage,
		logger:      l,
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:      "OK",
		Message:     "Server is running",
		Environment: h.environment,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	})
}

// Debug exposes the raw directory plus the active storage driver, handy
// when diagnosing a misconfigured deployment.
func (h *Handler) Debug(c *gin.Context) {
	empls, err := h.employees.GetAll(c.Request.Context())
	if err != nil {
		h.logger.Error("debug endpoint failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, "Debug endpoint failed", nil)
		return
	}
	c.JSON(http.StatusOK, DebugResponse{
		Environment:   h.environment,
		EmployeeCount: len(empls),
		Employees:     empls,
		Storage:       h.storage,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	})
}
