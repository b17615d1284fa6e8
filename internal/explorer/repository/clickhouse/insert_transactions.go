package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/coinexplorer-backend/internal/explorer/model"
)

// InsertTransactions upserts transactions keyed by transaction id.
func (r *Repository) InsertTransactions(ctx context.Context, txs []model.Transaction) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_transactions", err, start)
	}()

	if len(txs) == 0 {
		return nil
	}

	const query = `
INSERT INTO transactions (
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
	receiver,
	version,
	is_deleted
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare transactions batch: %w", err)
	}

	for _, tx := range txs {
		var input model.Coin
		if tx.Input != nil {
			input = *tx.Input
		}
		if err = batch.Append(
			tx.TransactionID,
			tx.CreatedAt.UTC(),
			tx.ConfirmationBlock,
			tx.Amount,
			tx.ConfirmationsNumber,
			tx.Input != nil,
			input.ParentCoinInfo,
			input.PuzzleHash,
			input.Amount,
			tx.Sender,
			tx.Receiver,
			r.versions.Next(),
			uint8(0),
		); err != nil {
			return fmt.Errorf("append transaction: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transactions: %w", err)
	}
	return nil
}
