package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/coinexplorer-backend/internal/explorer/model"
)

// DeleteAddressTransaction tombstones one address index entry.
func (r *Repository) DeleteAddressTransaction(ctx context.Context, address, transactionID string, role model.Role) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("delete_address_transaction", err, start)
	}()

	const query = `
INSERT INTO address_transactions (address, transaction_id, role, version, is_deleted)
VALUES (?, ?, ?, ?, 1)`

	if err = r.conn.Exec(ctx, query, address, transactionID, string(role), r.versions.Next()); err != nil {
		return fmt.Errorf("delete %s entry of %s for %s: %w", role, transactionID, address, err)
	}
	return nil
}
