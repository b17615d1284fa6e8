package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/coinexplorer-backend/internal/explorer/model"
)

// TransactionsPerDay counts live transactions per UTC creation day, oldest day first.
func (r *Repository) TransactionsPerDay(ctx context.Context) (days []model.DailyTransactions, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("transactions_per_day", err, start)
	}()

	const query = `
SELECT
	formatDateTime(created_at, '%Y-%m-%d', 'UTC') AS day,
	count() AS transactions_count
FROM transactions FINAL
WHERE is_deleted = 0
GROUP BY day
ORDER BY day ASC`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query transactions per day: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	days = []model.DailyTransactions{}
	for rows.Next() {
		var d model.DailyTransactions
		if err = rows.Scan(&d.Day, &d.TransactionsCount); err != nil {
			return nil, fmt.Errorf("scan transactions per day: %w", err)
		}
		days = append(days, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions per day: %w", err)
	}
	return days, nil
}
