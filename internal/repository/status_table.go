package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/shrine-api/internal/model"
	"github.com/deppfellow/shrine-api/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

// statusTable implements the operations shared by every resource whose
// rows carry a status column: listing, filtering, status changes, deletes
// and per-status counts.
//
// Lists are newest first. Rows created within the same timestamp fall
// back to id so the order is total.
type statusTable[T any, S model.StatusSet] struct {
	db      DBTX
	table   string
	columns string
	scan    func(row scanner) (*T, error)
}

const newestFirst = "ORDER BY created_at DESC, id DESC"

func (t *statusTable[T, S]) collect(rows pgx.Rows) ([]T, error) {
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := t.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", t.table, err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s rows: %w", t.table, err)
	}
	return items, nil
}

// ListAll returns every record, newest first.
func (t *statusTable[T, S]) ListAll(ctx context.Context) ([]T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s %s`, t.columns, t.table, newestFirst)

	rows, err := t.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", t.table, err)
	}
	return t.collect(rows)
}

// ListByStatus returns the records in status, newest first. The status is
// assumed valid; callers check it against S first.
func (t *statusTable[T, S]) ListByStatus(ctx context.Context, status string) ([]T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE status = $1 %s`, t.columns, t.table, newestFirst)

	rows, err := t.db.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s by status: %w", t.table, err)
	}
	return t.collect(rows)
}

// GetByID returns one record or a not-found error for t.table.
func (t *statusTable[T, S]) GetByID(ctx context.Context, id int64) (*T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, t.columns, t.table)

	item, err := t.scan(t.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, t.wrap("get", err)
	}
	return item, nil
}

// UpdateStatus sets the status of one record and returns the updated row.
//
// updated_at strictly increases even when two updates land within the
// same clock tick.
func (t *statusTable[T, S]) UpdateStatus(ctx context.Context, id int64, status string) (*T, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET status = $1,
			updated_at = GREATEST(NOW(), updated_at + INTERVAL '1 microsecond')
		WHERE id = $2
		RETURNING %s`, t.table, t.columns)

	item, err := t.scan(t.db.QueryRow(ctx, query, status, id))
	if err != nil {
		return nil, t.wrap("update status of", err)
	}
	return item, nil
}

// Delete removes one record and returns it as it was.
func (t *statusTable[T, S]) Delete(ctx context.Context, id int64) (*T, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1 RETURNING %s`, t.table, t.columns)

	item, err := t.scan(t.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, t.wrap("delete", err)
	}
	return item, nil
}

// Stats counts records per status. Every status of S is present, zero when
// no rows have it, and "total" equals the sum.
func (t *statusTable[T, S]) Stats(ctx context.Context) (model.Stats, error) {
	query := fmt.Sprintf(`SELECT status, COUNT(*) FROM %s GROUP BY status`, t.table)

	rows, err := t.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count %s: %w", t.table, err)
	}
	defer rows.Close()

	stats := model.NewStats[S]()
	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan %s count: %w", t.table, err)
		}
		stats[status] = count
		stats["total"] += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s counts: %w", t.table, err)
	}
	return stats, nil
}

func (t *statusTable[T, S]) wrap(action string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return sqlerr.NotFound(t.table)
	}
	return fmt.Errorf("failed to %s %s: %w", action, t.table, err)
}
