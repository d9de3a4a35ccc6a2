package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// finishTx commits when err is nil, otherwise rolls back. A commit error
// replaces a nil err, so callers assigning the result to a named return
// never observe success for a transaction that did not persist.
func finishTx(ctx context.Context, tx pgx.Tx, err error) error {
	if err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}
