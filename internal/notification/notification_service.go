package notification

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Maxwellrubert/employee-dashboard/internal/employee"
	notificationerrors "github.com/Maxwellrubert/employee-dashboard/internal/notification/errors"
	"github.com/Maxwellrubert/employee-dashboard/internal/shared/apperror"
	"github.com/Maxwellrubert/employee-dashboard/internal/shared/contextutil"
)

type Service interface {
	Send(ctx context.Context, req SendEmailRequest) (SendEmailResponse, error)
}

type service struct {
	employees employee.Service
	client    WebhookClient
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(employees employee.Service, client WebhookClient, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{
		employees: employees,
		client:    client,
		logger:    l,
		now:       time.Now,
	}
}

// Send looks up the employee, forwards the notification payload to the
// workflow webhook and relays the remote outcome. Single attempt; a
// missing employee aborts before any outbound call.
func (s *service) Send(ctx context.Context, req SendEmailRequest) (SendEmailResponse, error) {
	// Request-scoped logger when the middleware attached one.
	log := contextutil.GetLogger(ctx, s.logger)

	empl, err := s.employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return SendEmailResponse{}, err
	}

	emailType := req.EmailType
	if emailType == "" {
		emailType = defaultEmailType
	}

	payload := EmailPayload{
		Employee: EmailRecipient{
			ID:         empl.ID,
			Name:       empl.Name,
			Email:      empl.Email,
			Position:   empl.Position,
			Department: empl.Department,
		},
		EmailType:     emailType,
		CustomMessage: req.CustomMessage,
		Timestamp:     s.now().UTC().Format(time.RFC3339),
	}

	delivery := s.client.Send(ctx, payload)

	switch delivery.Outcome {
	case OutcomeDelivered:
		log.Info("email dispatched",
			zap.String("employee_id", empl.ID),
			zap.String("email_type", emailType),
		)
		return SendEmailResponse{
			Message:  "Email sent successfully",
			Data:     delivery.Body,
			Employee: empl.Name,
		}, nil

	case OutcomeUnreachable:
		log.Error("email webhook unreachable", zap.Error(delivery.Err))
		return SendEmailResponse{}, notificationerrors.ErrWebhookUnavailable

	case OutcomeUpstreamError:
		log.Error("email webhook rejected payload",
			zap.Int("status", delivery.Status),
		)
		return SendEmailResponse{}, apperror.New(
			apperror.CodeUpstreamError,
			fmt.Sprintf("Email workflow returned status %d", delivery.Status),
			delivery.Status,
		)

	default:
		log.Error("email dispatch failed", zap.Error(delivery.Err))
		return SendEmailResponse{}, notificationerrors.ErrSendFailed
	}
}
