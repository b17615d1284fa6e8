package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/coinexplorer-backend/internal/explorer/model"
)

// InsertTransactionOutputs upserts output links keyed by (parent, child) transaction ids.
func (r *Repository) InsertTransactionOutputs(ctx context.Context, outputs []model.TransactionOutput) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_transaction_outputs", err, start)
	}()

	if len(outputs) == 0 {
		return nil
	}

	const query = `
INSERT INTO transaction_outputs (
	transaction_id,
	child_transaction_id,
	address,
	amount,
	version
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare transaction outputs batch: %w", err)
	}

	for _, output := range outputs {
		if err = batch.Append(
			output.TransactionID,
			output.ChildTransactionID,
			output.Address,
			output.Amount,
			r.versions.Next(),
		); err != nil {
			return fmt.Errorf("append transaction output: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transaction outputs: %w", err)
	}
	return nil
}
