package notification_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/Maxwellrubert/employee-dashboard/internal/employee"
	employeeerrors "github.com/Maxwellrubert/employee-dashboard/internal/employee/errors"
	"github.com/Maxwellrubert/employee-dashboard/internal/notification"
	notificationerrors "github.com/Maxwellrubert/employee-dashboard/internal/notification/errors"
	"github.com/Maxwellrubert/employee-dashboard/internal/shared/apperror"
)

type fakeEmployeeService struct {
	GetByIDFn func(ctx context.Context, id string) (employee.EmployeeResponse, error)
}

func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeEmployeeService) GetAll(ctx context.Context) ([]employee.EmployeeResponse, error) {
	panic("not used")
}
func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	panic("not used")
}
func (f *fakeEmployeeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	panic("not used")
}
func (f *fakeEmployeeService) Delete(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	panic("not used")
}
func (f *fakeEmployeeService) SeedSampleData(ctx context.Context) error {
	panic("not used")
}

type fakeWebhookClient struct {
	delivery notification.Delivery
	calls    int
	payload  notification.EmailPayload
}

func (f *fakeWebhookClient) Send(ctx context.Context, payload notification.EmailPayload) notification.Delivery {
	f.calls++
	f.payload = payload
	return f.delivery
}

func knownEmployee() *fakeEmployeeService {
	return &fakeEmployeeService{
		GetByIDFn: func(ctx context.Context, id string) (employee.EmployeeResponse, error) {
			return employee.EmployeeResponse{
				ID:         id,
				Name:       "John Doe",
				Email:      "john.doe@company.com",
				Position:   "Software Engineer",
				Department: "Engineering",
			}, nil
		},
	}
}

func TestNotificationService_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown employee makes no outbound call", func(t *testing.T) {
		employees := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, id string) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}
		client := &fakeWebhookClient{}
		svc := notification.NewService(employees, client, zap.NewNop())

		_, err := svc.Send(ctx, notification.SendEmailRequest{EmployeeID: "missing"})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
		assert.Equal(t, 0, client.calls)
	})

	t.Run("delivered relays remote body and employee name", func(t *testing.T) {
		client := &fakeWebhookClient{
			delivery: notification.Delivery{
				Outcome: notification.OutcomeDelivered,
				Status:  http.StatusOK,
				Body:    map[string]any{"queued": true},
			},
		}
		svc := notification.NewService(knownEmployee(), client, zap.NewNop())

		resp, err := svc.Send(ctx, notification.SendEmailRequest{EmployeeID: "emp-1"})

		assert.NoError(t, err)
		assert.Equal(t, 1, client.calls)
		assert.Equal(t, "Email sent successfully", resp.Message)
		assert.Equal(t, "John Doe", resp.Employee)
		assert.Equal(t, map[string]any{"queued": true}, resp.Data)

		// Payload defaults and snapshot fields.
		assert.Equal(t, "general", client.payload.EmailType)
		assert.Equal(t, "", client.payload.CustomMessage)
		assert.Equal(t, "emp-1", client.payload.Employee.ID)
		assert.Equal(t, "Engineering", client.payload.Employee.Department)
		assert.NotEmpty(t, client.payload.Timestamp)
	})

	t.Run("explicit type and message pass through", func(t *testing.T) {
		client := &fakeWebhookClient{
			delivery: notification.Delivery{Outcome: notification.OutcomeDelivered},
		}
		svc := notification.NewService(knownEmployee(), client, zap.NewNop())

		_, err := svc.Send(ctx, notification.SendEmailRequest{
			EmployeeID:    "emp-1",
			EmailType:     "welcome",
			CustomMessage: "Glad to have you aboard",
		})

		assert.NoError(t, err)
		assert.Equal(t, "welcome", client.payload.EmailType)
		assert.Equal(t, "Glad to have you aboard", client.payload.CustomMessage)
	})

	t.Run("unreachable maps to 503", func(t *testing.T) {
		client := &fakeWebhookClient{
			delivery: notification.Delivery{Outcome: notification.OutcomeUnreachable},
		}
		svc := notification.NewService(knownEmployee(), client, zap.NewNop())

		_, err := svc.Send(ctx, notification.SendEmailRequest{EmployeeID: "emp-1"})

		assert.ErrorIs(t, err, notificationerrors.ErrWebhookUnavailable)
		assert.Equal(t, http.StatusServiceUnavailable, apperror.ToHTTP(err).Status)
	})

	t.Run("upstream error passes the remote status through", func(t *testing.T) {
		client := &fakeWebhookClient{
			delivery: notification.Delivery{
				Outcome: notification.OutcomeUpstreamError,
				Status:  http.StatusBadGateway,
			},
		}
		svc := notification.NewService(knownEmployee(), client, zap.NewNop())

		_, err := svc.Send(ctx, notification.SendEmailRequest{EmployeeID: "emp-1"})

		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusBadGateway, httpErr.Status)
		assert.Equal(t, apperror.CodeUpstreamError, httpErr.Code)
	})

	t.Run("transport failure maps to 500", func(t *testing.T) {
		client := &fakeWebhookClient{
			delivery: notification.Delivery{Outcome: notification.OutcomeTransportFailure},
		}
		svc := notification.NewService(knownEmployee(), client, zap.NewNop())

		_, err := svc.Send(ctx, notification.SendEmailRequest{EmployeeID: "emp-1"})

		assert.ErrorIs(t, err, notificationerrors.ErrSendFailed)
		assert.Equal(t, http.StatusInternalServerError, apperror.ToHTTP(err).Status)
	})
}
