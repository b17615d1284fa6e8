// Package explorer serves read queries over the node and the indexed ledger.
package explorer

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/coinexplorer-backend/internal/explorer/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const hashPrefix = "0x"

// Service combines gateway lookups with ledger and directory aggregates.
type Service struct {
	gateway       NodeGateway
	amounts       AmountResolver
	repo          Repository
	directory     Directory
	addressPrefix string
	logger        *zap.Logger
}

func NewService(gateway NodeGateway, amounts AmountResolver, repo Repository, directory Directory, addressPrefix string, logger *zap.Logger) (*Service, error) {
	if gateway == nil {
		return nil, errors.New("node gateway is required")
	}
	if amounts == nil {
		return nil, errors.New("amount resolver is required")
	}
	if repo == nil {
		return nil, errors.New("transaction repository is required")
	}
	if directory == nil {
		return nil, errors.New("address directory is required")
	}
	if addressPrefix == "" {
		addressPrefix = model.AddressPrefix
	}
	return &Service{
		gateway:       gateway,
		amounts:       amounts,
		repo:          repo,
		directory:     directory,
		addressPrefix: addressPrefix,
		logger:        logger.Named("explorer"),
	}, nil
}

// GetBlockchainState returns the node state extended with circulating supply and address count.
func (s *Service) GetBlockchainState(ctx context.Context) (*model.BlockchainState, error) {
	state, err := s.gateway.GetBlockchainState(ctx)
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		supply, err := s.directory.CirculatingSupply(gctx)
		if err != nil {
			return fmt.Errorf("circulating supply: %w", err)
		}
		state.CirculatingSupply = supply.CirculatingSupply
		return nil
	})
	g.Go(func() error {
		count, err := s.directory.UniqueAddressCount(gctx)
		if err != nil {
			return fmt.Errorf("unique address count: %w", err)
		}
		state.UniqueAddressCount = count
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return state, nil
}

// GetBlocks returns full blocks in the [start, end) height range.
func (s *Service) GetBlocks(ctx context.Context, start, end uint64) ([]model.FullBlock, error) {
	if end < start {
		return nil, fmt.Errorf("%w: end %d is below start %d", model.ErrInvalidArgument, end, start)
	}
	return s.gateway.GetBlocks(ctx, start, end)
}

// GetBlockByHash returns the block. Transaction blocks carry their amount and ledger transactions.
func (s *Service) GetBlockByHash(ctx context.Context, hash string) (*model.FullBlock, error) {
	block, err := s.gateway.GetBlock(ctx, hash)
	if err != nil {
		return nil, err
	}
	if !block.RewardChainBlock.IsTransactionBlock || block.TransactionsInfo == nil {
		return block, nil
	}

	info := block.TransactionsInfo
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		amount, err := s.amounts.ComputeBlockAmount(gctx, block.HeaderHash)
		if err != nil {
			return fmt.Errorf("block amount: %w", err)
		}
		info.Amount = &amount
		return nil
	})
	g.Go(func() error {
		txs, err := s.repo.TransactionsByHeight(gctx, block.RewardChainBlock.Height)
		if err != nil {
			return fmt.Errorf("block transactions: %w", err)
		}
		info.Transactions = txs
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return block, nil
}

// GetBlockByHeight resolves the header hash at height and returns the block view for it.
func (s *Service) GetBlockByHeight(ctx context.Context, height uint64) (*model.FullBlock, error) {
	record, err := s.gateway.GetBlockRecordByHeight(ctx, height)
	if err != nil {
		return nil, err
	}
	block, err := s.GetBlockByHash(ctx, record.HeaderHash)
	if err != nil {
		return nil, err
	}
	block.HeaderHash = record.HeaderHash
	return block, nil
}

func (s *Service) GetBlockRecordByHeight(ctx context.Context, height uint64) (*model.BlockRecord, error) {
	return s.gateway.GetBlockRecordByHeight(ctx, height)
}

func (s *Service) GetBlockRecord(ctx context.Context, hash string) (*model.BlockRecord, error) {
	return s.gateway.GetBlockRecord(ctx, hash)
}

func (s *Service) GetUnfinishedBlockHeaders(ctx context.Context, height uint64) ([]json.RawMessage, error) {
	return s.gateway.GetUnfinishedBlockHeaders(ctx, height)
}

// GetUnspentCoins returns unspent coins of a puzzle hash.
func (s *Service) GetUnspentCoins(ctx context.Context, puzzleHash string) ([]model.CoinRecord, error) {
	if err := validateHash(puzzleHash); err != nil {
		return nil, err
	}
	return s.gateway.GetUnspentCoins(ctx, puzzleHash)
}

func (s *Service) GetCoinRecord(ctx context.Context, name string) (*model.CoinRecord, error) {
	if err := validateHash(name); err != nil {
		return nil, err
	}
	return s.gateway.GetCoinRecord(ctx, name)
}

func (s *Service) GetAdditionsAndRemovals(ctx context.Context, hash string) (*model.AdditionsAndRemovals, error) {
	return s.gateway.GetAdditionsAndRemovals(ctx, hash)
}

func (s *Service) GetNetworkSpace(ctx context.Context, olderHash, newerHash string) (*model.NetworkSpace, error) {
	return s.gateway.GetNetworkSpace(ctx, olderHash, newerHash)
}

func (s *Service) PuzzleHashToAddress(puzzleHash string) (string, error) {
	return s.gateway.PuzzleHashToAddress(puzzleHash)
}

func (s *Service) AddressToPuzzleHash(address string) (string, error) {
	return s.gateway.AddressToPuzzleHash(address)
}

func (s *Service) GetAddress(ctx context.Context, address string) (*model.Address, error) {
	return s.directory.GetAddress(ctx, address)
}

// ListTransactions returns transaction summaries, newest block first.
func (s *Service) ListTransactions(ctx context.Context, limit, offset uint64) ([]model.TransactionSummary, error) {
	return s.repo.ListTransactions(ctx, limit, offset)
}

func (s *Service) GetTransaction(ctx context.Context, transactionID string) (*model.Transaction, error) {
	return s.repo.Transaction(ctx, transactionID)
}

func (s *Service) GetTransactionsByHeight(ctx context.Context, height uint64) ([]model.Transaction, error) {
	return s.repo.TransactionsByHeight(ctx, height)
}

// GetTransactionsPerDay counts transactions per UTC day, oldest day first.
func (s *Service) GetTransactionsPerDay(ctx context.Context) ([]model.DailyTransactions, error) {
	return s.repo.TransactionsPerDay(ctx)
}

// Find resolves a search token to an address, a transaction or a block.
// Tokens starting with cgn or the configured network prefix are addresses.
func (s *Service) Find(ctx context.Context, token string) (*model.SearchResult, error) {
	token = strings.TrimSpace(token)

	switch {
	case strings.HasPrefix(token, model.AddressPrefix), strings.HasPrefix(token, s.addressPrefix):
		address, err := s.directory.GetAddress(ctx, token)
		if err != nil {
			return nil, err
		}
		return &model.SearchResult{Address: address}, nil

	case strings.HasPrefix(token, hashPrefix):
		tx, err := s.repo.Transaction(ctx, token)
		if err == nil {
			return &model.SearchResult{Transaction: tx}, nil
		}
		if !errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		s.logger.Debug("no transaction for token, trying block", zap.String("token", token))
		block, err := s.GetBlockByHash(ctx, token)
		if err != nil {
			return nil, err
		}
		return &model.SearchResult{Block: block}, nil

	default:
		height, err := strconv.ParseUint(token, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", model.ErrInvalidSearchToken, token)
		}
		block, err := s.GetBlockByHeight(ctx, height)
		if err != nil {
			return nil, err
		}
		return &model.SearchResult{Block: block}, nil
	}
}

func validateHash(hash string) error {
	raw, err := hex.DecodeString(strings.TrimPrefix(hash, hashPrefix))
	if err != nil || len(raw) != 32 {
		return fmt.Errorf("%w: %q", model.ErrInvalidHash, hash)
	}
	return nil
}
