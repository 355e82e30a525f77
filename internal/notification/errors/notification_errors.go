package notificationerrors

import (
	"net/http"

	"github.com/Maxwellrubert/employee-dashboard/internal/shared/apperror"
)

var (
	ErrWebhookUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"Email workflow service unavailable. Please ensure the webhook endpoint is reachable.",
		http.StatusServiceUnavailable,
	)
	ErrSendFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to send email",
		http.StatusInternalServerError,
	)
)
