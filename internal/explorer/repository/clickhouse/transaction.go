package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/goodnatureofminers/coinexplorer-backend/internal/explorer/model"
)

const transactionColumns = `
	transaction_id,
	created_at,
	confirmation_block,
	amount,
	confirmations_number,
	has_input,
	input_parent_coin_info,
	input_puzzle_hash,
	input_amount,
	sender,
	receiver`

// Transaction returns a live transaction together with its outputs.
func (r *Repository) Transaction(ctx context.Context, transactionID string) (*model.Transaction, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("transaction", err, start)
	}()

	query := `
SELECT` + transactionColumns + `
FROM transactions FINAL
WHERE transaction_id = ? AND is_deleted = 0`

	txs, err := r.queryTransactions(ctx, query, transactionID)
	if err != nil {
		return nil, err
	}
	if len(txs) == 0 {
		err = model.NotFoundError(fmt.Sprintf("transaction %s", transactionID))
		return nil, err
	}
	return &txs[0], nil
}

func (r *Repository) queryTransactions(ctx context.Context, query string, args ...any) (txs []model.Transaction, err error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	ids := make([]string, 0)
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
		ids = append(ids, tx.TransactionID)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	if len(txs) == 0 {
		return txs, nil
	}

	outputs, err := r.TransactionOutputsByTxIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range txs {
		txs[i].Outputs = outputs[txs[i].TransactionID]
		if txs[i].Outputs == nil {
			txs[i].Outputs = []model.TransactionOutput{}
		}
	}
	return txs, nil
}

func scanTransaction(rows driver.Rows) (model.Transaction, error) {
	var (
		tx       model.Transaction
		hasInput bool
		input    model.Coin
	)
	if err := rows.Scan(
		&tx.TransactionID,
		&tx.CreatedAt,
		&tx.ConfirmationBlock,
		&tx.Amount,
		&tx.ConfirmationsNumber,
		&hasInput,
		&input.ParentCoinInfo,
		&input.PuzzleHash,
		&input.Amount,
		&tx.Sender,
		&tx.Receiver,
	); err != nil {
		return model.Transaction{}, fmt.Errorf("scan transaction: %w", err)
	}
	tx.CreatedAt = tx.CreatedAt.UTC()
	if hasInput {
		tx.Input = &input
	}
	return tx, nil
}
