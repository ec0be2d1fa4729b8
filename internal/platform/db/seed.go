package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"empdir/internal/domain/directory"
)

// Seed loads records into an empty employee_records table. A table that
// already holds rows is left alone.
func Seed(ctx context.Context, pool *pgxpool.Pool, records []directory.RawRecord) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM employee_records").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tx, err := pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batch := &pgx.Batch{}
	for _, rec := range records {
		batch.Queue(`
      INSERT INTO employee_records (full_name, position, location, employee_id, join_date, salary)
      VALUES ($1,$2,$3,$4,$5,$6)
    `, rec.FullName, rec.Position, rec.Location, rec.EmployeeID, rec.JoinDate, rec.SalaryDisplay)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("seed employee records: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}
	slog.Info("seeded employee records", "count", len(records))
	return nil
}
