package employee

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"

	DefaultDepartment = "General"
)

// Employee is the sole persisted entity. The json tags double as the
// on-disk format of the file storage driver.
type Employee struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	Position   string    `gorm:"not null" json:"position"`
	Email      string    `gorm:"uniqueIndex:uq_employee_email" json:"email"`
	Department string    `gorm:"default:General" json:"department"`
	Phone      string    `json:"phone"`
	StartDate  time.Time `gorm:"type:date" json:"startDate"`
	Salary     int       `json:"salary"`
	Status     string    `gorm:"default:active" json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
