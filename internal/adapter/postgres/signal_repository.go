package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pacewatch/internal/core/domain"
	"pacewatch/internal/core/port"
)

// SignalRepository implements port.SignalRepository for the operator-facing
// query and resolve endpoints.
type SignalRepository struct {
	pool *pgxpool.Pool
}

// NewSignalRepository returns a new repository instance.
func NewSignalRepository(pool *pgxpool.Pool) *SignalRepository {
	return &SignalRepository{pool: pool}
}

// ListByCampaign returns a campaign's signals, newest detection first. When
// includeResolved is false only unresolved rows are returned.
func (r *SignalRepository) ListByCampaign(ctx context.Context, campaignID int64, includeResolved bool) ([]domain.FraudSignal, error) {
	query := `SELECT ` + signalColumns + ` FROM fraud_signals WHERE campaign_id = $1`
	if !includeResolved {
		query += ` AND resolved_at IS NULL`
	}
	query += ` ORDER BY detected_at DESC`

	rows, err := r.pool.Query(ctx, query, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanSignal)
}

// Find returns a signal by id, or nil when absent.
func (r *SignalRepository) Find(ctx context.Context, id int64) (*domain.FraudSignal, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+signalColumns+` FROM fraud_signals WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	sig, err := pgx.CollectOneRow(rows, scanSignal)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sig, nil
}

// Resolve conditionally resolves the signal. The WHERE clause keeps the
// update idempotent: an already-resolved row is left untouched and returned
// as stored.
func (r *SignalRepository) Resolve(ctx context.Context, id int64, note string, at time.Time) (*domain.FraudSignal, error) {
	_, err := r.pool.Exec(ctx, `UPDATE fraud_signals
SET resolved_at = $2, resolution_note = $3, updated_at = now()
WHERE id = $1 AND resolved_at IS NULL`, id, at, nullableNote(note))
	if err != nil {
		return nil, err
	}
	sig, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if sig == nil {
		return nil, port.ErrSignalNotFound
	}
	return sig, nil
}

func nullableNote(note string) *string {
	if note == "" {
		return nil
	}
	return &note
}
