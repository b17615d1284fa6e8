package ingester

import (
	"context"
	"time"

	"github.com/goodnatureofminers/coinexplorer-backend/internal/explorer/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ChainSource interface {
		GetBlockchainState(ctx context.Context) (*model.BlockchainState, error)
		GetBlockRecordByHeight(ctx context.Context, height uint64) (*model.BlockRecord, error)
	}
	TransactionDeriver interface {
		BlockTransactions(ctx context.Context, record *model.BlockRecord, peakHeight uint64) ([]model.Transaction, error)
	}
	Ledger interface {
		CreateMany(ctx context.Context, txs []model.Transaction) error
	}
	Metrics interface {
		ObserveProcessHeight(err error, height uint64, started time.Time)
		ObserveFlush(err error, transactions int, started time.Time)
	}
)
