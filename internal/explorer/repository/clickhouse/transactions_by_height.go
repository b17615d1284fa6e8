package clickhouse

import (
	"context"
	"time"

	"github.com/goodnatureofminers/coinexplorer-backend/internal/explorer/model"
)

// TransactionsByHeight returns live transactions confirmed at the height, possibly none.
func (r *Repository) TransactionsByHeight(ctx context.Context, height uint64) ([]model.Transaction, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("transactions_by_height", err, start)
	}()

	query := `
SELECT` + transactionColumns + `
FROM transactions FINAL
WHERE confirmation_block = ? AND is_deleted = 0
ORDER BY created_at ASC, transaction_id ASC`

	txs, err := r.queryTransactions(ctx, query, height)
	if err != nil {
		return nil, err
	}
	if txs == nil {
		txs = []model.Transaction{}
	}
	return txs, nil
}
