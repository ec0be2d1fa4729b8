package directory

import (
	"fmt"
	"hash/fnv"
	"strings"
)

func BuildProfile(emp Employee) Profile {
	return Profile{
		Employee:   emp,
		Email:      emailFor(emp.FullName),
		Phone:      phoneFor(emp.EmployeeID),
		Department: DepartmentFor(emp.Position),
		Manager:    DefaultManager,
		Status:     StatusActive,
	}
}

func emailFor(fullName string) string {
	local := strings.Replace(strings.ToLower(strings.TrimSpace(fullName)), " ", ".", 1)
	return local + "@" + EmailDomain
}

// phoneFor derives a stable placeholder number from the employee id.
func phoneFor(employeeID string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(employeeID))
	sum := h.Sum32()
	exchange := sum%900 + 100
	line := (sum/900)%9000 + 1000
	return fmt.Sprintf("+1 (555) %d-%d", exchange, line)
}

func DepartmentFor(position string) string {
	switch {
	case strings.Contains(position, "Developer"):
		return DepartmentEngineering
	case strings.Contains(position, "Accountant"):
		return DepartmentFinance
	case strings.Contains(position, "Sales"):
		return DepartmentSales
	default:
		return DepartmentOperations
	}
}

// PositionLabel shortens a position for chart legends.
func PositionLabel(position string) string {
	runes := []rune(position)
	if len(runes) <= MaxPositionLabel {
		return position
	}
	return string(runes[:MaxPositionLabel]) + "..."
}
