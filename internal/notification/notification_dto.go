package notification

const defaultEmailType = "general"

type SendEmailRequest struct {
	EmployeeID    string `json:"employeeId" binding:"required"`
	EmailType     string `json:"emailType"`
	CustomMessage string `json:"customMessage"`
}

// EmailRecipient is the employee snapshot forwarded to the workflow.
type EmailRecipient struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Position   string `json:"position"`
	Department string `json:"department"`
}

// EmailPayload is the body POSTed to the n8n webhook.
type EmailPayload struct {
	Employee      EmailRecipient `json:"employee"`
	EmailType     string         `json:"emailType"`
	CustomMessage string         `json:"customMessage"`
	Timestamp     string         `json:"timestamp"`
}

type SendEmailResponse struct {
	Message  string `json:"message"`
	Data     any    `json:"data"`
	Employee string `json:"employee"`
}
