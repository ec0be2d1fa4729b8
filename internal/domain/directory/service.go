package directory

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Source yields the raw table data. Implementations must be safe for
// concurrent use; every call is a fresh fetch.
type Source interface {
	FetchRecords(ctx context.Context) ([]RawRecord, error)
}

// Pinger is implemented by sources that can report readiness cheaply.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Service struct {
	source  Source
	timeout time.Duration
}

func NewService(source Source, timeout time.Duration) *Service {
	return &Service{source: source, timeout: timeout}
}

// Employees fetches and parses the current record set.
func (s *Service) Employees(ctx context.Context) ([]Employee, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	raw, err := s.source.FetchRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	employees := ParseEmployees(raw)
	for _, emp := range employees {
		if !emp.Salary.Known {
			slog.Debug("salary not numeric", "employeeId", emp.EmployeeID, "salary", emp.SalaryDisplay)
		}
	}
	return employees, nil
}

func (s *Service) Profile(ctx context.Context, fullName string) (Profile, error) {
	employees, err := s.Employees(ctx)
	if err != nil {
		return Profile{}, err
	}
	emp, err := FindByName(employees, fullName)
	if err != nil {
		return Profile{}, err
	}
	return BuildProfile(emp), nil
}

func (s *Service) Ready(ctx context.Context) error {
	pinger, ok := s.source.(Pinger)
	if !ok {
		return nil
	}
	if err := pinger.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	return nil
}
