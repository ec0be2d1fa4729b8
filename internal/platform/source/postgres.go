package source

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"empdir/internal/domain/directory"
)

// Postgres reads records from the employee_records table in insertion order.
type Postgres struct {
	DB *pgxpool.Pool
}

func NewPostgres(db *pgxpool.Pool) *Postgres {
	return &Postgres{DB: db}
}

func (p *Postgres) FetchRecords(ctx context.Context) ([]directory.RawRecord, error) {
	rows, err := p.DB.Query(ctx, `
    SELECT full_name,
           COALESCE(position, ''),
           COALESCE(location, ''),
           COALESCE(employee_id, ''),
           COALESCE(join_date, ''),
           COALESCE(salary, '')
    FROM employee_records
    ORDER BY seq
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]directory.RawRecord, 0)
	for rows.Next() {
		var rec directory.RawRecord
		if err := rows.Scan(&rec.FullName, &rec.Position, &rec.Location, &rec.EmployeeID, &rec.JoinDate, &rec.SalaryDisplay); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *Postgres) Ping(ctx context.Context) error {
	return p.DB.Ping(ctx)
}
