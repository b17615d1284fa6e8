package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/coinexplorer-backend/internal/explorer/model"
)

// ListTransactions returns a page of transaction summaries, newest confirmation block first.
func (r *Repository) ListTransactions(ctx context.Context, limit, offset uint64) (summaries []model.TransactionSummary, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("list_transactions", err, start)
	}()

	summaries = []model.TransactionSummary{}
	if limit == 0 {
		return summaries, nil
	}

	const query = `
SELECT
	transaction_id,
	created_at,
	sender,
	receiver,
	amount
FROM transactions FINAL
WHERE is_deleted = 0
ORDER BY confirmation_block DESC, transaction_id ASC
LIMIT ? OFFSET ?`

	rows, err := r.conn.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query transaction list: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	for rows.Next() {
		var s model.TransactionSummary
		if err = rows.Scan(&s.TransactionID, &s.CreatedAt, &s.Sender, &s.Receiver, &s.Amount); err != nil {
			return nil, fmt.Errorf("scan transaction summary: %w", err)
		}
		s.CreatedAt = s.CreatedAt.UTC()
		summaries = append(summaries, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction list: %w", err)
	}
	return summaries, nil
}
