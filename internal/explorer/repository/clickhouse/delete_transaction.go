package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// DeleteTransaction writes a tombstone that hides the transaction from all reads.
func (r *Repository) DeleteTransaction(ctx context.Context, transactionID string) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("delete_transaction", err, start)
	}()

	const query = `
INSERT INTO transactions (transaction_id, version, is_deleted)
VALUES (?, ?, 1)`

	if err = r.conn.Exec(ctx, query, transactionID, r.versions.Next()); err != nil {
		return fmt.Errorf("delete transaction %s: %w", transactionID, err)
	}
	return nil
}
