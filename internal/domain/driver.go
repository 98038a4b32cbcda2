package domain

// Employment classifications carried on the driver record.
// Recipient phone numbers are disclosed only on routes driven by an
// EmployeeStatusEmployee driver; contractors and volunteers never see them.
const (
	EmployeeStatusEmployee   = "Employee"
	EmployeeStatusContractor = "Contractor"
	EmployeeStatusVolunteer  = "Volunteer"
)

// A driver eligible for route assignment. Capacity is the load limit
// (number of deliveries) used by the upstream route optimizer.
type Driver struct {
	ID             int    `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Capacity       int    `json:"capacity"`
	EmployeeStatus string `json:"employee_status"`
}

func (d Driver) FullName() string {
	return d.FirstName + " " + d.LastName
}
