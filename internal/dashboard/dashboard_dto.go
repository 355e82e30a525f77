package dashboard

// Stats is the summary block rendered on the dashboard landing page.
type Stats struct {
	TotalEmployees      int            `json:"totalEmployees"`
	ActiveEmployees     int            `json:"activeEmployees"`
	Departments         int            `json:"departments"`
	AverageSalary       int            `json:"averageSalary"`
	DepartmentBreakdown map[string]int `json:"departmentBreakdown"`
	RecentHires         int            `json:"recentHires"`
}
