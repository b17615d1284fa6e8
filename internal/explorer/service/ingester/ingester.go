// Package ingester derives transactions from node blocks and hands them to the ledger.
package ingester

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/coinexplorer-backend/internal/explorer/model"
	"github.com/goodnatureofminers/coinexplorer-backend/pkg/batcher"
	"github.com/goodnatureofminers/coinexplorer-backend/pkg/workerpool"
	"go.uber.org/zap"
)

// Config tunes ingestion concurrency and batching. Zero values select defaults.
type Config struct {
	Workers       int
	BatchSize     int
	FlushInterval time.Duration
	FlushRPS      int
}

func (c Config) withDefaults() Config {
	if c.Workers <= 0 {
		c.Workers = defaultWorkerCount
	}
	if c.BatchSize <= 0 {
		c.BatchSize = defaultBatchSize
	}
	if c.FlushInterval <= 0 {
		c.FlushInterval = defaultFlushInterval
	}
	return c
}

// Service walks block heights and persists the derived transactions.
type Service struct {
	source  ChainSource
	deriver TransactionDeriver
	ledger  Ledger
	metrics Metrics
	cfg     Config
	logger  *zap.Logger
}

func NewService(source ChainSource, deriver TransactionDeriver, ledger Ledger, metrics Metrics, cfg Config, logger *zap.Logger) (*Service, error) {
	if source == nil {
		return nil, errors.New("chain source is required")
	}
	if deriver == nil {
		return nil, errors.New("transaction deriver is required")
	}
	if ledger == nil {
		return nil, errors.New("ledger is required")
	}
	if metrics == nil {
		return nil, errors.New("ingester metrics is required")
	}
	return &Service{
		source:  source,
		deriver: deriver,
		ledger:  ledger,
		metrics: metrics,
		cfg:     cfg.withDefaults(),
		logger:  logger.Named("ingester"),
	}, nil
}

// Run ingests the inclusive [from, to] height range. A zero or out of range to stops at the peak.
// It returns the last ingested height.
func (s *Service) Run(ctx context.Context, from, to uint64) (uint64, error) {
	peak, err := s.peak(ctx)
	if err != nil {
		return 0, err
	}
	if to == 0 || to > peak {
		to = peak
	}
	if from > to {
		s.logger.Info("nothing to ingest", zap.Uint64("from", from), zap.Uint64("to", to))
		return to, nil
	}
	return to, s.ingest(ctx, from, to, peak)
}

func (s *Service) peak(ctx context.Context) (uint64, error) {
	state, err := s.source.GetBlockchainState(ctx)
	if err != nil {
		return 0, fmt.Errorf("blockchain state: %w", err)
	}
	if state.Peak == nil {
		return 0, fmt.Errorf("%w: node reports no peak", model.ErrNodeUnavailable)
	}
	return state.Peak.Height, nil
}

func (s *Service) ingest(ctx context.Context, from, to, peak uint64) error {
	s.logger.Info("ingesting heights", zap.Uint64("from", from), zap.Uint64("to", to), zap.Uint64("peak", peak))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	writer := batcher.New[model.Transaction](
		s.logger.Named("writer"),
		s.flush,
		s.cfg.BatchSize,
		s.cfg.FlushInterval,
		s.cfg.FlushRPS,
	)
	writer.Start(ctx)

	processErr := workerpool.Range(ctx, s.cfg.Workers, from, to, func(ctx context.Context, height uint64) error {
		return s.processHeight(ctx, writer, height, peak)
	}, cancel)

	flushErr := writer.Stop()
	if processErr != nil {
		return processErr
	}
	if flushErr != nil {
		return fmt.Errorf("flush transactions: %w", flushErr)
	}
	s.logger.Info("heights ingested", zap.Uint64("from", from), zap.Uint64("to", to))
	return nil
}

func (s *Service) processHeight(ctx context.Context, writer *batcher.Batcher[model.Transaction], height, peak uint64) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveProcessHeight(err, height, started)
	}()

	record, err := s.source.GetBlockRecordByHeight(ctx, height)
	if err != nil {
		return fmt.Errorf("block record at height %d: %w", height, err)
	}
	txs, err := s.deriver.BlockTransactions(ctx, record, peak)
	if err != nil {
		return fmt.Errorf("transactions at height %d: %w", height, err)
	}
	for _, tx := range txs {
		if err = writer.Add(ctx, tx); err != nil {
			return fmt.Errorf("queue transaction %s: %w", tx.TransactionID, err)
		}
	}
	return nil
}

func (s *Service) flush(ctx context.Context, txs []model.Transaction) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveFlush(err, len(txs), started)
	}()
	return s.ledger.CreateMany(ctx, txs)
}
