package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/coinexplorer-backend/internal/explorer/model"
)

// InsertAddressTransactions upserts address index entries keyed by (address, transaction, role).
func (r *Repository) InsertAddressTransactions(ctx context.Context, entries []model.AddressEntry) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_address_transactions", err, start)
	}()

	if len(entries) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertAddressTransactionsQuery)
	if err != nil {
		return fmt.Errorf("prepare address transactions batch: %w", err)
	}

	for _, e := range entries {
		if err = batch.Append(
			e.Address,
			e.TransactionID,
			string(e.Role),
			e.Amount,
			e.CreatedAt.UTC(),
			r.versions.Next(),
			uint8(0),
		); err != nil {
			return fmt.Errorf("append address transaction: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert address transactions: %w", err)
	}
	return nil
}

const insertAddressTransactionsQuery = `
INSERT INTO address_transactions (
	address,
	transaction_id,
	role,
	amount,
	created_at,
	version,
	is_deleted
) VALUES`
