package explorer

import (
	"context"
	"encoding/json"

	"github.com/goodnatureofminers/coinexplorer-backend/internal/explorer/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	NodeGateway interface {
		GetBlockchainState(ctx context.Context) (*model.BlockchainState, error)
		GetBlocks(ctx context.Context, start, end uint64) ([]model.FullBlock, error)
		GetBlock(ctx context.Context, hash string) (*model.FullBlock, error)
		GetBlockRecordByHeight(ctx context.Context, height uint64) (*model.BlockRecord, error)
		GetBlockRecord(ctx context.Context, hash string) (*model.BlockRecord, error)
		GetUnfinishedBlockHeaders(ctx context.Context, height uint64) ([]json.RawMessage, error)
		GetUnspentCoins(ctx context.Context, puzzleHash string) ([]model.CoinRecord, error)
		GetCoinRecord(ctx context.Context, name string) (*model.CoinRecord, error)
		GetAdditionsAndRemovals(ctx context.Context, hash string) (*model.AdditionsAndRemovals, error)
		GetNetworkSpace(ctx context.Context, olderHash, newerHash string) (*model.NetworkSpace, error)
		PuzzleHashToAddress(puzzleHash string) (string, error)
		AddressToPuzzleHash(address string) (string, error)
	}
	AmountResolver interface {
		ComputeBlockAmount(ctx context.Context, hash string) (int64, error)
	}
	Repository interface {
		ListTransactions(ctx context.Context, limit, offset uint64) ([]model.TransactionSummary, error)
		Transaction(ctx context.Context, transactionID string) (*model.Transaction, error)
		TransactionsByHeight(ctx context.Context, height uint64) ([]model.Transaction, error)
		TransactionsPerDay(ctx context.Context) ([]model.DailyTransactions, error)
	}
	Directory interface {
		GetAddress(ctx context.Context, address string) (*model.Address, error)
		UniqueAddressCount(ctx context.Context) (uint64, error)
		CirculatingSupply(ctx context.Context) (*model.Supply, error)
	}
)
