package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pacewatch/internal/core/domain"
)

// ExportRepository implements port.ExportRepository. All writes are
// single-row conditional updates; the forwarder never contends with the
// ingestion transaction for the same row state because ingestion resets a
// record to pending atomically within its own transaction.
type ExportRepository struct {
	pool *pgxpool.Pool
}

// NewExportRepository returns a new repository instance.
func NewExportRepository(pool *pgxpool.Pool) *ExportRepository {
	return &ExportRepository{pool: pool}
}

// RequeueStaleFailures flips failed records untouched since cutoff back to
// pending. Payloads are left as-is.
func (r *ExportRepository) RequeueStaleFailures(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE analytics_exports
SET status = 'pending', updated_at = now()
WHERE status = 'failed' AND updated_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// PendingBatch returns up to limit pending records, oldest created first.
func (r *ExportRepository) PendingBatch(ctx context.Context, limit int) ([]domain.AnalyticsExport, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, metric_id, payload, status, last_attempt_at, last_error, created_at, updated_at
FROM analytics_exports
WHERE status = 'pending'
ORDER BY created_at
LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AnalyticsExport, error) {
		var rec domain.AnalyticsExport
		err := row.Scan(&rec.ID, &rec.MetricID, &rec.Payload, &rec.Status, &rec.LastAttemptAt, &rec.LastError, &rec.CreatedAt, &rec.UpdatedAt)
		return rec, err
	})
}

// MarkSent moves the record to its terminal sent state and stamps the
// source metric's exported_at in the same transaction. The return is named
// so a commit failure propagates; the record then stays pending and the next
// run retries it.
func (r *ExportRepository) MarkSent(ctx context.Context, id int64, at time.Time) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { err = finishTx(ctx, tx, err) }()

	var metricID int64
	err = tx.QueryRow(ctx, `UPDATE analytics_exports
SET status = 'sent', last_attempt_at = $2, last_error = NULL, updated_at = now()
WHERE id = $1
RETURNING metric_id`, id, at).Scan(&metricID)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `UPDATE daily_metrics SET exported_at = $2, updated_at = now() WHERE id = $1`, metricID, at)
	return err
}

// MarkFailed records a delivery failure; the stale-requeue cycle will bring
// the record back to pending later.
func (r *ExportRepository) MarkFailed(ctx context.Context, id int64, at time.Time, lastError string) error {
	_, err := r.pool.Exec(ctx, `UPDATE analytics_exports
SET status = 'failed', last_attempt_at = $2, last_error = $3, updated_at = now()
WHERE id = $1`, id, at, lastError)
	return err
}

// StatusCounts reports queue depth per status.
func (r *ExportRepository) StatusCounts(ctx context.Context) (map[domain.ExportStatus]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, count(*) FROM analytics_exports GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.ExportStatus]int64)
	for rows.Next() {
		var status domain.ExportStatus
		var n int64
		if err = rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}
