// Package chain turns node coin data into explorer transactions.
package chain

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/goodnatureofminers/coinexplorer-backend/internal/explorer/model"
	"github.com/goodnatureofminers/coinexplorer-backend/pkg/safe"
)

// Resolver derives transaction identities and values from coin sets.
type Resolver struct {
	gateway NodeGateway
}

// NewResolver constructs a Resolver backed by the node gateway.
func NewResolver(gateway NodeGateway) *Resolver {
	return &Resolver{gateway: gateway}
}

// ResolveParentTransactionID returns the id of the transaction that created the coin.
func (r *Resolver) ResolveParentTransactionID(_ context.Context, coin model.Coin) (string, error) {
	id, err := r.gateway.CoinInfo(coin.ParentCoinInfo, coin.PuzzleHash, coin.Amount)
	if err != nil {
		return "", fmt.Errorf("%w: resolve parent transaction: %w", model.ErrNodeUnavailable, err)
	}
	if id == "" {
		return "", fmt.Errorf("%w: empty parent transaction id", model.ErrNodeUnavailable)
	}
	return id, nil
}

// ComputeBlockAmount returns the value created by the block minus the value it spent.
func (r *Resolver) ComputeBlockAmount(ctx context.Context, hash string) (int64, error) {
	ar, err := r.gateway.GetAdditionsAndRemovals(ctx, hash)
	if err != nil {
		return 0, fmt.Errorf("additions and removals of %s: %w", hash, err)
	}

	added, err := sumAmounts(ar.Additions)
	if err != nil {
		return 0, fmt.Errorf("sum additions: %w", err)
	}
	removed, err := sumAmounts(ar.Removals)
	if err != nil {
		return 0, fmt.Errorf("sum removals: %w", err)
	}
	return added - removed, nil
}

func sumAmounts(records []model.CoinRecord) (int64, error) {
	var total int64
	for _, rec := range records {
		v, err := safe.Int64(rec.Coin.Amount)
		if err != nil {
			return 0, err
		}
		if total > math.MaxInt64-v {
			return 0, fmt.Errorf("amount total overflows int64 at coin %s", rec.Coin.ParentCoinInfo)
		}
		total += v
	}
	return total, nil
}

// BlockTransactions derives one transaction per coin created by a transaction block.
// Non-transaction blocks yield no transactions.
func (r *Resolver) BlockTransactions(ctx context.Context, record *model.BlockRecord, peakHeight uint64) ([]model.Transaction, error) {
	if record == nil || !record.IsTransactionBlock() {
		return nil, nil
	}

	ar, err := r.gateway.GetAdditionsAndRemovals(ctx, record.HeaderHash)
	if err != nil {
		return nil, fmt.Errorf("additions and removals of %s: %w", record.HeaderHash, err)
	}

	spent := make(map[string]model.Coin, len(ar.Removals))
	for _, rem := range ar.Removals {
		name, err := r.coinName(rem.Coin)
		if err != nil {
			return nil, err
		}
		spent[name] = rem.Coin
	}

	var confirmations uint64
	if peakHeight > record.Height {
		confirmations = peakHeight - record.Height
	}

	txs := make([]model.Transaction, 0, len(ar.Additions))
	for _, add := range ar.Additions {
		tx, err := r.transaction(ctx, record, add, spent)
		if err != nil {
			return nil, err
		}
		tx.ConfirmationsNumber = confirmations
		txs = append(txs, tx)
	}
	return txs, nil
}

func (r *Resolver) transaction(ctx context.Context, record *model.BlockRecord, add model.CoinRecord, spent map[string]model.Coin) (model.Transaction, error) {
	id, err := r.coinName(add.Coin)
	if err != nil {
		return model.Transaction{}, err
	}
	receiver, err := r.gateway.PuzzleHashToAddress(add.Coin.PuzzleHash)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("receiver of %s: %w", id, err)
	}

	input, err := r.input(ctx, add, spent)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("input of %s: %w", id, err)
	}

	sender := model.SentinelSender
	if input != nil {
		sender, err = r.gateway.PuzzleHashToAddress(input.PuzzleHash)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("sender of %s: %w", id, err)
		}
	}

	createdAt := record.Time()
	if add.Timestamp > 0 {
		createdAt = time.Unix(add.Timestamp, 0).UTC()
	}

	return model.Transaction{
		TransactionID:     id,
		CreatedAt:         createdAt,
		ConfirmationBlock: record.Height,
		Amount:            add.Coin.Amount,
		Input:             input,
		Outputs:           []model.TransactionOutput{},
		Sender:            sender,
		Receiver:          receiver,
	}, nil
}

// input returns the coin spent to create add, or nil for reward coins.
func (r *Resolver) input(ctx context.Context, add model.CoinRecord, spent map[string]model.Coin) (*model.Coin, error) {
	if coin, ok := spent[add.Coin.ParentCoinInfo]; ok {
		return &coin, nil
	}
	if add.Coinbase {
		return nil, nil
	}

	parent, err := r.gateway.GetCoinRecord(ctx, add.Coin.ParentCoinInfo)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	coin := parent.Coin
	return &coin, nil
}

func (r *Resolver) coinName(c model.Coin) (string, error) {
	name, err := r.gateway.CoinInfo(c.ParentCoinInfo, c.PuzzleHash, c.Amount)
	if err != nil {
		return "", fmt.Errorf("coin name: %w", err)
	}
	return name, nil
}
