package transport

import (
	"context"
	"encoding/json"

	"github.com/goodnatureofminers/coinexplorer-backend/internal/explorer/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Explorer interface {
		GetBlockchainState(ctx context.Context) (*model.BlockchainState, error)
		GetBlocks(ctx context.Context, start, end uint64) ([]model.FullBlock, error)
		GetBlockByHash(ctx context.Context, hash string) (*model.FullBlock, error)
		GetBlockByHeight(ctx context.Context, height uint64) (*model.FullBlock, error)
		GetBlockRecord(ctx context.Context, hash string) (*model.BlockRecord, error)
		GetBlockRecordByHeight(ctx context.Context, height uint64) (*model.BlockRecord, error)
		GetUnfinishedBlockHeaders(ctx context.Context, height uint64) ([]json.RawMessage, error)
		GetUnspentCoins(ctx context.Context, puzzleHash string) ([]model.CoinRecord, error)
		GetCoinRecord(ctx context.Context, name string) (*model.CoinRecord, error)
		GetAdditionsAndRemovals(ctx context.Context, hash string) (*model.AdditionsAndRemovals, error)
		GetNetworkSpace(ctx context.Context, olderHash, newerHash string) (*model.NetworkSpace, error)
		PuzzleHashToAddress(puzzleHash string) (string, error)
		AddressToPuzzleHash(address string) (string, error)
		GetAddress(ctx context.Context, address string) (*model.Address, error)
		ListTransactions(ctx context.Context, limit, offset uint64) ([]model.TransactionSummary, error)
		GetTransaction(ctx context.Context, transactionID string) (*model.Transaction, error)
		GetTransactionsByHeight(ctx context.Context, height uint64) ([]model.Transaction, error)
		GetTransactionsPerDay(ctx context.Context) ([]model.DailyTransactions, error)
		Find(ctx context.Context, token string) (*model.SearchResult, error)
	}
)
