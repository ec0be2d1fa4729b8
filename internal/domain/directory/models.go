package directory

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const rawRecordWidth = 6

// RawRecord is one row of the table-data payload. On the wire it is a
// positional array: [fullName, position, location, employeeId, joinDate, salary].
type RawRecord struct {
	FullName      string
	Position      string
	Location      string
	EmployeeID    string
	JoinDate      string
	SalaryDisplay string
}

func (r *RawRecord) UnmarshalJSON(data []byte) error {
	var fields []json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if len(fields) != rawRecordWidth {
		return fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedRecord, rawRecordWidth, len(fields))
	}

	values := make([]string, rawRecordWidth)
	for i, field := range fields {
		value, err := fieldString(field)
		if err != nil {
			return fmt.Errorf("%w: field %d: %v", ErrMalformedRecord, i, err)
		}
		values[i] = value
	}

	*r = RawRecord{
		FullName:      values[0],
		Position:      values[1],
		Location:      values[2],
		EmployeeID:    values[3],
		JoinDate:      values[4],
		SalaryDisplay: values[5],
	}
	return nil
}

func (r RawRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string{r.FullName, r.Position, r.Location, r.EmployeeID, r.JoinDate, r.SalaryDisplay})
}

// fieldString accepts strings, numbers and booleans; upstream exports are
// not always consistent about quoting ids.
func fieldString(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "", nil
	}
	switch trimmed[0] {
	case '"':
		var value string
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return "", err
		}
		return value, nil
	case '{', '[':
		return "", fmt.Errorf("unexpected nested value")
	}
	return string(trimmed), nil
}

type Employee struct {
	FullName      string `json:"fullName"`
	FirstName     string `json:"firstName"`
	Position      string `json:"position"`
	Location      string `json:"location"`
	EmployeeID    string `json:"employeeId"`
	JoinDate      string `json:"joinDate"`
	SalaryDisplay string `json:"salaryDisplay"`
	Salary        Amount `json:"salary"`
}

type SalaryPoint struct {
	FirstName string `json:"firstName"`
	Salary    Amount `json:"salary"`
	FullName  string `json:"fullName"`
	Position  string `json:"position"`
}

type PositionAggregate struct {
	Position string `json:"position"`
	Count    int    `json:"count"`
}

type LocationAggregate struct {
	Location        string     `json:"location"`
	Employees       []Employee `json:"employees"`
	TotalSalary     Amount     `json:"totalSalary"`
	Count           int        `json:"count"`
	AverageSalary   Amount     `json:"averageSalary"`
	UnknownSalaries int        `json:"unknownSalaries"`
}

type Summary struct {
	Count           int    `json:"count"`
	AverageSalary   Amount `json:"averageSalary"`
	MaxSalary       Amount `json:"maxSalary"`
	UnknownSalaries int    `json:"unknownSalaries"`
}

// Profile is the detail-page view of an employee.
type Profile struct {
	Employee
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Manager    string `json:"manager"`
	Status     string `json:"status"`
}
