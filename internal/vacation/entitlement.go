package vacation

import "fmt"

// Entitlement is the number of vacation days an employee is allotted for a
// year, including days carried over from the previous year.
type Entitlement struct {
	EmployeeID      int `json:"employeeId"`
	Year            int `json:"year"`
	NumberOfDays    int `json:"numberOfDays"`
	TransferredDays int `json:"transferedDays"`
}

// Total is the number of days available in the year.
func (e Entitlement) Total() int {
	return e.NumberOfDays + e.TransferredDays
}

func (e Entitlement) String() string {
	if e.EmployeeID == 0 || e.Year == 0 {
		return "Entitlement"
	}

	return fmt.Sprintf(
		"%d: EmployeeId %d - %d days",
		e.Year,
		e.EmployeeID,
		e.NumberOfDays,
	)
}
