package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// UniqueAddressCount returns how many addresses have at least one live entry.
func (r *Repository) UniqueAddressCount(ctx context.Context) (uint64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("unique_address_count", err, start)
	}()

	const query = `
SELECT uniqExact(address)
FROM address_transactions FINAL
WHERE is_deleted = 0`

	var count uint64
	if err = r.conn.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("query unique address count: %w", err)
	}
	return count, nil
}
