package directory

import "strings"

// ParseEmployees converts raw rows into employees, one for one and in order.
// A bad salary only affects its own row.
func ParseEmployees(raw []RawRecord) []Employee {
	out := make([]Employee, 0, len(raw))
	for _, record := range raw {
		out = append(out, parseEmployee(record))
	}
	return out
}

func parseEmployee(record RawRecord) Employee {
	return Employee{
		FullName:      record.FullName,
		FirstName:     firstName(record.FullName),
		Position:      record.Position,
		Location:      record.Location,
		EmployeeID:    record.EmployeeID,
		JoinDate:      record.JoinDate,
		SalaryDisplay: record.SalaryDisplay,
		Salary:        ParseAmount(record.SalaryDisplay),
	}
}

func firstName(fullName string) string {
	fields := strings.Fields(fullName)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
