// Package node adapts full node RPC calls into typed explorer results.
package node

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goodnatureofminers/coinexplorer-backend/internal/explorer/model"
	"github.com/goodnatureofminers/coinexplorer-backend/pkg/safe"
	"go.uber.org/atomic"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const defaultRetryDelay = 5 * time.Second

// failureMode selects how a success=false response is reported.
type failureMode int

const (
	// lookupFailure reports a record that the node could not find.
	lookupFailure failureMode = iota
	// upstreamFailure reports any other node side failure.
	upstreamFailure
)

type envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Gateway issues full node queries and normalizes their responses.
type Gateway struct {
	transport  Transport
	metrics    RPCMetrics
	limiter    ratelimit.Limiter
	addresses  AddressCodec
	logger     *zap.Logger
	retryDelay time.Duration

	ready   *atomic.Bool
	mu      sync.Mutex
	onReady []func()
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewGateway constructs a Gateway. rps limits outgoing RPC calls, zero disables the limit.
func NewGateway(transport Transport, metrics RPCMetrics, addressPrefix string, rps int, logger *zap.Logger) (*Gateway, error) {
	if transport == nil {
		return nil, errors.New("full node transport is required")
	}
	if metrics == nil {
		return nil, errors.New("rpc metrics is required")
	}
	if addressPrefix == "" {
		addressPrefix = model.AddressPrefix
	}

	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}

	return &Gateway{
		transport:  transport,
		metrics:    metrics,
		limiter:    limiter,
		addresses:  NewAddressCodec(addressPrefix),
		logger:     logger.Named("node"),
		retryDelay: defaultRetryDelay,
		ready:      atomic.NewBool(false),
	}, nil
}

// GetBlockchainState returns the node view of the chain tip.
func (g *Gateway) GetBlockchainState(ctx context.Context) (*model.BlockchainState, error) {
	var res struct {
		BlockchainState *model.BlockchainState `json:"blockchain_state"`
	}
	if err := g.call(ctx, "get_blockchain_state", struct{}{}, upstreamFailure, &res); err != nil {
		return nil, err
	}
	if res.BlockchainState == nil {
		return nil, malformed("get_blockchain_state", "missing blockchain_state")
	}
	if res.BlockchainState.Peak != nil {
		normalizeBlockRecord(res.BlockchainState.Peak)
	}
	return res.BlockchainState, nil
}

// GetBlocks returns full blocks in the [start, end) height range.
func (g *Gateway) GetBlocks(ctx context.Context, start, end uint64) ([]model.FullBlock, error) {
	startHeight, err := safe.Uint32(start)
	if err != nil {
		return nil, fmt.Errorf("start height: %w", err)
	}
	endHeight, err := safe.Uint32(end)
	if err != nil {
		return nil, fmt.Errorf("end height: %w", err)
	}

	var res struct {
		Blocks []model.FullBlock `json:"blocks"`
	}
	req := map[string]any{"start": startHeight, "end": endHeight, "exclude_header_hash": false}
	if err := g.call(ctx, "get_blocks", req, lookupFailure, &res); err != nil {
		return nil, err
	}
	for i := range res.Blocks {
		normalizeFullBlock(&res.Blocks[i])
	}
	return res.Blocks, nil
}

// GetBlock returns the full block with the given header hash.
func (g *Gateway) GetBlock(ctx context.Context, hash string) (*model.FullBlock, error) {
	var res struct {
		Block *model.FullBlock `json:"block"`
	}
	if err := g.call(ctx, "get_block", map[string]any{"header_hash": hash}, lookupFailure, &res); err != nil {
		return nil, err
	}
	if res.Block == nil {
		return nil, malformed("get_block", "missing block")
	}
	res.Block.HeaderHash = hash
	normalizeFullBlock(res.Block)
	return res.Block, nil
}

// GetBlockRecordByHeight returns the block record at the given height.
func (g *Gateway) GetBlockRecordByHeight(ctx context.Context, height uint64) (*model.BlockRecord, error) {
	h, err := safe.Uint32(height)
	if err != nil {
		return nil, fmt.Errorf("height: %w", err)
	}
	return g.blockRecord(ctx, "get_block_record_by_height", map[string]any{"height": h})
}

// GetBlockRecord returns the block record with the given header hash.
func (g *Gateway) GetBlockRecord(ctx context.Context, hash string) (*model.BlockRecord, error) {
	return g.blockRecord(ctx, "get_block_record", map[string]any{"header_hash": hash})
}

func (g *Gateway) blockRecord(ctx context.Context, endpoint string, req any) (*model.BlockRecord, error) {
	var res struct {
		BlockRecord *model.BlockRecord `json:"block_record"`
	}
	if err := g.call(ctx, endpoint, req, lookupFailure, &res); err != nil {
		return nil, err
	}
	if res.BlockRecord == nil || res.BlockRecord.HeaderHash == "" {
		return nil, malformed(endpoint, "missing block_record")
	}
	normalizeBlockRecord(res.BlockRecord)
	return res.BlockRecord, nil
}

// GetUnfinishedBlockHeaders returns headers of blocks that are still being infused.
func (g *Gateway) GetUnfinishedBlockHeaders(ctx context.Context, height uint64) ([]json.RawMessage, error) {
	h, err := safe.Uint32(height)
	if err != nil {
		return nil, fmt.Errorf("height: %w", err)
	}
	var res struct {
		Headers []json.RawMessage `json:"headers"`
	}
	if err := g.call(ctx, "get_unfinished_block_headers", map[string]any{"height": h}, lookupFailure, &res); err != nil {
		return nil, err
	}
	return res.Headers, nil
}

// GetUnspentCoins returns unspent coin records locked by the puzzle hash.
func (g *Gateway) GetUnspentCoins(ctx context.Context, puzzleHash string) ([]model.CoinRecord, error) {
	var res struct {
		CoinRecords []model.CoinRecord `json:"coin_records"`
	}
	req := map[string]any{"puzzle_hash": puzzleHash, "include_spent_coins": false}
	if err := g.call(ctx, "get_coin_records_by_puzzle_hash", req, lookupFailure, &res); err != nil {
		return nil, err
	}
	for i := range res.CoinRecords {
		normalizeCoin(&res.CoinRecords[i].Coin)
	}
	return res.CoinRecords, nil
}

// GetCoinRecord returns the coin record with the given coin name.
func (g *Gateway) GetCoinRecord(ctx context.Context, name string) (*model.CoinRecord, error) {
	var res struct {
		CoinRecord *model.CoinRecord `json:"coin_record"`
	}
	if err := g.call(ctx, "get_coin_record_by_name", map[string]any{"name": name}, lookupFailure, &res); err != nil {
		return nil, err
	}
	if res.CoinRecord == nil {
		return nil, malformed("get_coin_record_by_name", "missing coin_record")
	}
	normalizeCoin(&res.CoinRecord.Coin)
	return res.CoinRecord, nil
}

// GetAdditionsAndRemovals returns the coins created and spent by the block.
func (g *Gateway) GetAdditionsAndRemovals(ctx context.Context, hash string) (*model.AdditionsAndRemovals, error) {
	var res model.AdditionsAndRemovals
	if err := g.call(ctx, "get_additions_and_removals", map[string]any{"header_hash": hash}, lookupFailure, &res); err != nil {
		return nil, err
	}
	for i := range res.Additions {
		normalizeCoin(&res.Additions[i].Coin)
	}
	for i := range res.Removals {
		normalizeCoin(&res.Removals[i].Coin)
	}
	return &res, nil
}

// GetNetworkSpace estimates the space committed between the two blocks.
func (g *Gateway) GetNetworkSpace(ctx context.Context, olderHash, newerHash string) (*model.NetworkSpace, error) {
	var res model.NetworkSpace
	req := map[string]any{
		"newer_block_header_hash": newerHash,
		"older_block_header_hash": olderHash,
	}
	if err := g.call(ctx, "get_network_space", req, upstreamFailure, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// PuzzleHashToAddress encodes the puzzle hash as an address.
func (g *Gateway) PuzzleHashToAddress(puzzleHash string) (string, error) {
	return g.addresses.Encode(puzzleHash)
}

// AddressToPuzzleHash decodes the address into its puzzle hash.
func (g *Gateway) AddressToPuzzleHash(address string) (string, error) {
	return g.addresses.Decode(address)
}

// CoinInfo returns the name of the coin identified by its parent, puzzle hash and amount.
func (g *Gateway) CoinInfo(parentCoinInfo, puzzleHash string, amount uint64) (string, error) {
	return CoinName(model.Coin{ParentCoinInfo: parentCoinInfo, PuzzleHash: puzzleHash, Amount: amount})
}

func (g *Gateway) call(ctx context.Context, endpoint string, request any, mode failureMode, result any) (err error) {
	started := time.Now()
	defer func() {
		g.metrics.Observe(endpoint, err, started)
	}()

	if !g.ready.Load() {
		return fmt.Errorf("%s: %w: connection not established", endpoint, model.ErrNodeUnavailable)
	}

	g.limiter.Take()
	body, err := g.transport.Call(ctx, endpoint, request)
	if err != nil {
		return fmt.Errorf("%s: %w", endpoint, err)
	}

	var env envelope
	if err = json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("%s: %w: %v", endpoint, model.ErrMalformedResponse, err)
	}
	if !env.Success {
		if mode == lookupFailure {
			return fmt.Errorf("%s: %w", endpoint, model.NotFoundError(env.Error))
		}
		return fmt.Errorf("%s: %w", endpoint, &model.UpstreamError{Message: env.Error})
	}

	if err = json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("%s: %w: %v", endpoint, model.ErrMalformedResponse, err)
	}
	return nil
}

func malformed(endpoint, reason string) error {
	return fmt.Errorf("%s: %w: %s", endpoint, model.ErrMalformedResponse, reason)
}
