package employee

import (
	"context"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	employeeerrors "github.com/Maxwellrubert/employee-dashboard/internal/employee/errors"
	"github.com/Maxwellrubert/employee-dashboard/internal/shared/contextutil"
)

// Deliberately permissive: something@something.something, no RFC parsing.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Service interface {
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) (EmployeeResponse, error)
	SeedSampleData(ctx context.Context) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		repo:   repo,
		logger: l,
		now:    time.Now,
	}
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(empls), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if empl == nil {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}
	return mapToResponse(*empl), nil
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	if err := validateCreate(req); err != nil {
		s.logger.Warn("create employee validation failed",
			zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	// Read-then-write; two racing creates can both pass. The postgres
	// driver still refuses the second insert via the unique index.
	exists, err := s.repo.EmailExists(ctx, req.Email, "")
	if err != nil {
		s.logger.Error("create employee uniqueness check failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if exists {
		s.logger.Warn("create employee duplicate email", zap.String("email", req.Email))
		return EmployeeResponse{}, employeeerrors.ErrEmailAlreadyExists
	}

	startDate := s.today()
	if req.StartDate != "" {
		startDate, _ = time.Parse(dateLayout, req.StartDate)
	}

	empl := &Employee{
		Name:       req.Name,
		Position:   req.Position,
		Email:      req.Email,
		Department: req.Department,
		Phone:      req.Phone,
		StartDate:  startDate,
		Status:     req.Status,
	}
	if strings.TrimSpace(empl.Department) == "" {
		empl.Department = DefaultDepartment
	}
	if empl.Status == "" {
		empl.Status = StatusActive
	}
	if req.Salary != nil {
		empl.Salary = *req.Salary
	}

	if err := s.repo.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)
	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update employee fetch existing failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if empl == nil {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	if err := validateUpdate(req); err != nil {
		s.logger.Warn("update employee validation failed",
			zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	exists, err := s.repo.EmailExists(ctx, req.Email, id)
	if err != nil {
		s.logger.Error("update employee uniqueness check failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if exists {
		s.logger.Warn("update employee duplicate email", zap.String("email", req.Email))
		return EmployeeResponse{}, employeeerrors.ErrEmailAlreadyExists
	}

	// Field-by-field merge: omitted optional fields keep the stored value.
	empl.Name = req.Name
	empl.Position = req.Position
	empl.Email = req.Email
	if req.Department != nil {
		empl.Department = *req.Department
	}
	if req.Phone != nil {
		empl.Phone = *req.Phone
	}
	if req.StartDate != nil {
		empl.StartDate, _ = time.Parse(dateLayout, *req.StartDate)
	}
	if req.Salary != nil {
		empl.Salary = *req.Salary
	}
	if req.Status != nil {
		empl.Status = *req.Status
	}

	if err := s.repo.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update employee success", zap.String("employee_id", id))
	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id string) (EmployeeResponse, error) {
	empl, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete employee failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if empl == nil {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return mapToResponse(*empl), nil
}

func (s *service) today() time.Time {
	now := s.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func validateCreate(req CreateEmployeeRequest) error {
	details := map[string]string{}
	requireField(details, "name", req.Name)
	requireField(details, "position", req.Position)
	requireField(details, "email", req.Email)
	if len(details) > 0 {
		return employeeerrors.ErrMissingRequiredFields.WithDetails(details)
	}

	if !emailShape.MatchString(req.Email) {
		return employeeerrors.ErrInvalidEmail.WithDetails(map[string]string{
			"email": "email must look like name@example.com",
		})
	}
	if req.Salary != nil && *req.Salary < 0 {
		return employeeerrors.ErrInvalidSalary.WithDetails(map[string]string{
			"salary": "salary must be zero or positive",
		})
	}
	if req.StartDate != "" {
		if _, err := time.Parse(dateLayout, req.StartDate); err != nil {
			return employeeerrors.ErrInvalidStartDate
		}
	}
	if req.Status != "" && req.Status != StatusActive && req.Status != StatusInactive {
		return employeeerrors.ErrInvalidStatus
	}
	return nil
}

func validateUpdate(req UpdateEmployeeRequest) error {
	details := map[string]string{}
	requireField(details, "name", req.Name)
	requireField(details, "position", req.Position)
	requireField(details, "email", req.Email)
	if len(details) > 0 {
		return employeeerrors.ErrMissingRequiredFields.WithDetails(details)
	}

	if !emailShape.MatchString(req.Email) {
		return employeeerrors.ErrInvalidEmail.WithDetails(map[string]string{
			"email": "email must look like name@example.com",
		})
	}
	if req.Salary != nil && *req.Salary < 0 {
		return employeeerrors.ErrInvalidSalary.WithDetails(map[string]string{
			"salary": "salary must be zero or positive",
		})
	}
	if req.StartDate != nil {
		if _, err := time.Parse(dateLayout, *req.StartDate); err != nil {
			return employeeerrors.ErrInvalidStartDate
		}
	}
	if req.Status != nil && *req.Status != StatusActive && *req.Status != StatusInactive {
		return employeeerrors.ErrInvalidStatus
	}
	return nil
}

func requireField(details map[string]string, name, value string) {
	if strings.TrimSpace(value) == "" {
		details[name] = name + " is required"
	}
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         empl.ID.String(),
		Name:       empl.Name,
		Position:   empl.Position,
		Email:      empl.Email,
		Department: empl.Department,
		Phone:      empl.Phone,
		StartDate:  empl.StartDate.Format(dateLayout),
		Salary:     empl.Salary,
		Status:     empl.Status,
		CreatedAt:  empl.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  empl.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
