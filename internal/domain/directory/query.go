package directory

import (
	"strings"

	"golang.org/x/text/cases"
)

// FilterAndSearch keeps employees whose full name contains search and whose
// position contains position, both compared case-insensitively. Empty terms
// match everything.
func FilterAndSearch(employees []Employee, search, position string) []Employee {
	folder := cases.Fold()
	search = folder.String(search)
	position = folder.String(position)

	out := make([]Employee, 0, len(employees))
	for _, emp := range employees {
		if search != "" && !containsFolded(folder, emp.FullName, search) {
			continue
		}
		if position != "" && !containsFolded(folder, emp.Position, position) {
			continue
		}
		out = append(out, emp)
	}
	return out
}

func containsFolded(folder cases.Caser, value, foldedTerm string) bool {
	return strings.Contains(folder.String(value), foldedTerm)
}

// DistinctPositions lists every position once, in first-seen order.
func DistinctPositions(employees []Employee) []string {
	seen := make(map[string]struct{}, len(employees))
	out := make([]string, 0)
	for _, emp := range employees {
		if _, ok := seen[emp.Position]; ok {
			continue
		}
		seen[emp.Position] = struct{}{}
		out = append(out, emp.Position)
	}
	return out
}

// TopSalarySeries projects the first n employees as given; it does not sort.
func TopSalarySeries(employees []Employee, n int) []SalaryPoint {
	if n <= 0 {
		n = DefaultSeriesLength
	}
	if len(employees) < n {
		n = len(employees)
	}
	out := make([]SalaryPoint, 0, n)
	for _, emp := range employees[:n] {
		out = append(out, SalaryPoint{
			FirstName: emp.FirstName,
			Salary:    emp.Salary,
			FullName:  emp.FullName,
			Position:  emp.Position,
		})
	}
	return out
}

// FindByName returns the first employee whose full name matches exactly.
func FindByName(employees []Employee, fullName string) (Employee, error) {
	for _, emp := range employees {
		if emp.FullName == fullName {
			return emp, nil
		}
	}
	return Employee{}, ErrEmployeeNotFound
}
