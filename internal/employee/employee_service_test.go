package employee_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/Maxwellrubert/employee-dashboard/internal/employee"
	employeeerrors "github.com/Maxwellrubert/employee-dashboard/internal/employee/errors"
	employeeMock "github.com/Maxwellrubert/employee-dashboard/internal/employee/mock"
	"github.com/Maxwellrubert/employee-dashboard/internal/shared/apperror"
)

type serviceDeps struct {
	service employee.Service
	repo    *employeeMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	repo := employeeMock.NewMockRepository(ctrl)
	svc := employee.NewService(repo, zap.NewNop())
	return &serviceDeps{service: svc, repo: repo}
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success - applies defaults", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := employee.CreateEmployeeRequest{
			Name:     "A",
			Position: "Eng",
			Email:    "a@x.com",
		}
		newID := uuid.New()

		deps.repo.EXPECT().
			EmailExists(gomock.Any(), "a@x.com", "").
			Return(false, nil)

		deps.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, "A", e.Name)
				assert.Equal(t, "General", e.Department)
				assert.Equal(t, "active", e.Status)
				assert.Equal(t, 0, e.Salary)
				assert.Equal(t, time.Now().UTC().Format("2006-01-02"), e.StartDate.Format("2006-01-02"))
				e.ID = newID
				e.CreatedAt = time.Now().UTC()
				e.UpdatedAt = e.CreatedAt
				return nil
			})

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, newID.String(), resp.ID)
		assert.Equal(t, "a@x.com", resp.Email)
		assert.Equal(t, "General", resp.Department)
		assert.Equal(t, "active", resp.Status)
		assert.Equal(t, 0, resp.Salary)
	})

	t.Run("success - keeps supplied optional fields", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := employee.CreateEmployeeRequest{
			Name:       "B",
			Position:   "PM",
			Email:      "b@x.com",
			Department: "Product",
			Phone:      "0812",
			StartDate:  "2024-06-01",
			Salary:     intPtr(90000),
			Status:     "inactive",
		}

		deps.repo.EXPECT().
			EmailExists(gomock.Any(), "b@x.com", "").
			Return(false, nil)

		deps.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, "Product", e.Department)
				assert.Equal(t, "2024-06-01", e.StartDate.Format("2006-01-02"))
				assert.Equal(t, 90000, e.Salary)
				assert.Equal(t, "inactive", e.Status)
				e.ID = uuid.New()
				return nil
			})

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, 90000, resp.Salary)
		assert.Equal(t, "2024-06-01", resp.StartDate)
	})

	t.Run("missing required fields", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := employee.CreateEmployeeRequest{
			Name:     "   ",
			Position: "Eng",
			Email:    "a@x.com",
		}

		_, err := deps.service.Create(ctx, req)

		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, 400, httpErr.Status)
		assert.Equal(t, apperror.CodeInvalidInput, httpErr.Code)
		assert.Contains(t, err.Error(), "required")
	})

	t.Run("invalid email shape", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := employee.CreateEmployeeRequest{
			Name:     "A",
			Position: "Eng",
			Email:    "not-an-email",
		}

		_, err := deps.service.Create(ctx, req)

		assert.ErrorContains(t, err, "Invalid email format")
	})

	t.Run("negative salary", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := employee.CreateEmployeeRequest{
			Name:     "A",
			Position: "Eng",
			Email:    "a@x.com",
			Salary:   intPtr(-1),
		}

		_, err := deps.service.Create(ctx, req)

		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, 400, httpErr.Status)
		assert.Contains(t, err.Error(), "Salary")
	})

	t.Run("duplicate email", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := employee.CreateEmployeeRequest{
			Name:     "A",
			Position: "Eng",
			Email:    "a@x.com",
		}

		deps.repo.EXPECT().
			EmailExists(gomock.Any(), "a@x.com", "").
			Return(true, nil)

		_, err := deps.service.Create(ctx, req)

		assert.ErrorIs(t, err, employeeerrors.ErrEmailAlreadyExists)
		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, 400, httpErr.Status)
		assert.Equal(t, apperror.CodeConflict, httpErr.Code)
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()

	existing := func() *employee.Employee {
		return &employee.Employee{
			ID:         uuid.New(),
			Name:       "A",
			Position:   "Eng",
			Email:      "a@x.com",
			Department: "Engineering",
			Phone:      "0812",
			StartDate:  time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
			Salary:     75000,
			Status:     "active",
		}
	}

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			FindByID(gomock.Any(), "missing").
			Return(nil, nil)

		_, err := deps.service.Update(ctx, "missing", employee.UpdateEmployeeRequest{
			Name:     "A",
			Position: "Eng",
			Email:    "a@x.com",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("partial merge keeps omitted fields", func(t *testing.T) {
		deps := setupServiceTest(t)
		empl := existing()
		id := empl.ID.String()

		deps.repo.EXPECT().
			FindByID(gomock.Any(), id).
			Return(empl, nil)
		deps.repo.EXPECT().
			EmailExists(gomock.Any(), "new@x.com", id).
			Return(false, nil)
		deps.repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, "Renamed", e.Name)
				assert.Equal(t, "new@x.com", e.Email)
				// Omitted optional fields keep prior values.
				assert.Equal(t, "Engineering", e.Department)
				assert.Equal(t, "0812", e.Phone)
				assert.Equal(t, 75000, e.Salary)
				assert.Equal(t, "active", e.Status)
				return nil
			})

		resp, err := deps.service.Update(ctx, id, employee.UpdateEmployeeRequest{
			Name:     "Renamed",
			Position: "Eng",
			Email:    "new@x.com",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Renamed", resp.Name)
		assert.Equal(t, "Engineering", resp.Department)
	})

	t.Run("supplied optional fields overwrite", func(t *testing.T) {
		deps := setupServiceTest(t)
		empl := existing()
		id := empl.ID.String()

		deps.repo.EXPECT().
			FindByID(gomock.Any(), id).
			Return(empl, nil)
		deps.repo.EXPECT().
			EmailExists(gomock.Any(), "a@x.com", id).
			Return(false, nil)
		deps.repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, "Design", e.Department)
				assert.Equal(t, 80000, e.Salary)
				assert.Equal(t, "inactive", e.Status)
				return nil
			})

		_, err := deps.service.Update(ctx, id, employee.UpdateEmployeeRequest{
			Name:       "A",
			Position:   "Eng",
			Email:      "a@x.com",
			Department: strPtr("Design"),
			Salary:     intPtr(80000),
			Status:     strPtr("inactive"),
		})

		assert.NoError(t, err)
	})

	t.Run("duplicate email on another record", func(t *testing.T) {
		deps := setupServiceTest(t)
		empl := existing()
		id := empl.ID.String()

		deps.repo.EXPECT().
			FindByID(gomock.Any(), id).
			Return(empl, nil)
		deps.repo.EXPECT().
			EmailExists(gomock.Any(), "taken@x.com", id).
			Return(true, nil)

		_, err := deps.service.Update(ctx, id, employee.UpdateEmployeeRequest{
			Name:     "A",
			Position: "Eng",
			Email:    "taken@x.com",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmailAlreadyExists)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("returns removed snapshot", func(t *testing.T) {
		deps := setupServiceTest(t)
		empl := &employee.Employee{
			ID:    uuid.New(),
			Name:  "A",
			Email: "a@x.com",
		}

		deps.repo.EXPECT().
			Delete(gomock.Any(), empl.ID.String()).
			Return(empl, nil)

		resp, err := deps.service.Delete(ctx, empl.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, "a@x.com", resp.Email)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			Delete(gomock.Any(), "missing").
			Return(nil, nil)

		_, err := deps.service.Delete(ctx, "missing")

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_GetByID(t *testing.T) {
	deps := setupServiceTest(t)

	deps.repo.EXPECT().
		FindByID(gomock.Any(), "missing").
		Return(nil, nil)

	_, err := deps.service.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	httpErr := apperror.ToHTTP(err)
	assert.Equal(t, 404, httpErr.Status)
}

func TestEmployeeService_GetAll(t *testing.T) {
	deps := setupServiceTest(t)
	empls := []employee.Employee{
		{ID: uuid.New(), Name: "Newest", Email: "n@x.com"},
		{ID: uuid.New(), Name: "Oldest", Email: "o@x.com"},
	}

	deps.repo.EXPECT().
		FindAll(gomock.Any()).
		Return(empls, nil)

	resp, err := deps.service.GetAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "Newest", resp[0].Name)
}

func TestEmployeeService_SeedSampleData(t *testing.T) {
	t.Run("seeds empty store", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			Count(gomock.Any()).
			Return(int64(0), nil)
		deps.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil).
			Times(3)

		assert.NoError(t, deps.service.SeedSampleData(context.Background()))
	})

	t.Run("leaves populated store alone", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			Count(gomock.Any()).
			Return(int64(5), nil)

		assert.NoError(t, deps.service.SeedSampleData(context.Background()))
	})
}
