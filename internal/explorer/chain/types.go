package chain

import (
	"context"

	"github.com/goodnatureofminers/coinexplorer-backend/internal/explorer/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// NodeGateway is the subset of full node queries the resolver depends on.
type NodeGateway interface {
	GetAdditionsAndRemovals(ctx context.Context, hash string) (*model.AdditionsAndRemovals, error)
	GetCoinRecord(ctx context.Context, name string) (*model.CoinRecord, error)
	PuzzleHashToAddress(puzzleHash string) (string, error)
	CoinInfo(parentCoinInfo, puzzleHash string, amount uint64) (string, error)
}
