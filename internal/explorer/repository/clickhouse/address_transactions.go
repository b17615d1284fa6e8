package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/coinexplorer-backend/internal/explorer/model"
)

// AddressTransactions returns the live index entries of an address in creation order.
func (r *Repository) AddressTransactions(ctx context.Context, address string) (entries []model.AddressEntry, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("address_transactions", err, start)
	}()

	const query = `
SELECT
	transaction_id,
	role,
	amount,
	created_at
FROM address_transactions FINAL
WHERE address = ? AND is_deleted = 0
ORDER BY created_at ASC, transaction_id ASC, role ASC`

	rows, err := r.conn.Query(ctx, query, address)
	if err != nil {
		return nil, fmt.Errorf("query address transactions: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	for rows.Next() {
		var (
			e    model.AddressEntry
			role string
		)
		if err = rows.Scan(&e.TransactionID, &role, &e.Amount, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan address transaction: %w", err)
		}
		e.Address = address
		e.Role = model.Role(role)
		e.CreatedAt = e.CreatedAt.UTC()
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate address transactions: %w", err)
	}
	return entries, nil
}
