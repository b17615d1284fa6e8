package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// AddressTotals returns the amounts received and sent across all live entries.
func (r *Repository) AddressTotals(ctx context.Context) (received, sent uint64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("address_totals", err, start)
	}()

	const query = `
SELECT
	sumIf(amount, role = 'receiver'),
	sumIf(amount, role = 'sender')
FROM address_transactions FINAL
WHERE is_deleted = 0`

	if err = r.conn.QueryRow(ctx, query).Scan(&received, &sent); err != nil {
		return 0, 0, fmt.Errorf("query address totals: %w", err)
	}
	return received, sent, nil
}
