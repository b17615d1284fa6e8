package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/coinexplorer-backend/internal/explorer/model"
)

// TransactionOutputsByTxIDs returns the output links of many parent transactions.
func (r *Repository) TransactionOutputsByTxIDs(ctx context.Context, txids []string) (map[string][]model.TransactionOutput, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("transaction_outputs_by_txids", err, start)
	}()

	result := make(map[string][]model.TransactionOutput, len(txids))
	if len(txids) == 0 {
		return result, nil
	}

	const query = `
SELECT
	transaction_id,
	child_transaction_id,
	address,
	amount
FROM transaction_outputs FINAL
WHERE transaction_id IN ?
ORDER BY transaction_id ASC, version ASC`

	rows, err := r.conn.Query(ctx, query, txids)
	if err != nil {
		return nil, fmt.Errorf("query transaction outputs by txids: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	for rows.Next() {
		var output model.TransactionOutput
		if err = rows.Scan(
			&output.TransactionID,
			&output.ChildTransactionID,
			&output.Address,
			&output.Amount,
		); err != nil {
			return nil, fmt.Errorf("scan transaction output: %w", err)
		}
		result[output.TransactionID] = append(result[output.TransactionID], output)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction outputs: %w", err)
	}

	return result, nil
}
