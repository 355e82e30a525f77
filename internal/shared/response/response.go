package response

import (
	"github.com/gin-gonic/gin"

	"github.com/Maxwellrubert/employee-dashboard/internal/shared/apperror"
)

// ErrorBody is the JSON shape every failed request returns. The dashboard
// UI only reads "error"; code and details are supplementary.
type ErrorBody struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

func Error(c *gin.Context, status int, code, message string, details any) {
	c.JSON(status, ErrorBody{
		Error:   message,
		Code:    code,
		Details: details,
	})
}

// FromError maps any error through the apperror taxonomy and writes it.
func FromError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}
