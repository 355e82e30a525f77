package employee

const dateLayout = "2006-01-02"

type CreateEmployeeRequest struct {
	Name       string `json:"name" binding:"required"`
	Position   string `json:"position" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Department string `json:"department"`
	Phone      string `json:"phone"`
	StartDate  string `json:"startDate"`
	Salary     *int   `json:"salary"`
	Status     string `json:"status"`
}

// UpdateEmployeeRequest is a partial update: name, position and email stay
// mandatory, the pointer fields retain their stored value when omitted.
type UpdateEmployeeRequest struct {
	Name       string  `json:"name" binding:"required"`
	Position   string  `json:"position" binding:"required"`
	Email      string  `json:"email" binding:"required"`
	Department *string `json:"department"`
	Phone      *string `json:"phone"`
	StartDate  *string `json:"startDate"`
	Salary     *int    `json:"salary"`
	Status     *string `json:"status"`
}

type EmployeeResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Position   string `json:"position"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Phone      string `json:"phone"`
	StartDate  string `json:"startDate"`
	Salary     int    `json:"salary"`
	Status     string `json:"status"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

type DeleteEmployeeResponse struct {
	Message  string           `json:"message"`
	Employee EmployeeResponse `json:"employee"`
}
