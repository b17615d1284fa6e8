// Package ledger persists transactions and keeps their links and address entries in step.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goodnatureofminers/coinexplorer-backend/internal/explorer/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultFanOutLimit = 16

// Service owns the transaction lifecycle: persist, link to the parent, register with the directory.
type Service struct {
	repo        Repository
	resolver    ParentResolver
	directory   Directory
	metrics     Metrics
	fanOutLimit int
	logger      *zap.Logger
}

func NewService(repo Repository, resolver ParentResolver, directory Directory, metrics Metrics, logger *zap.Logger) (*Service, error) {
	if repo == nil {
		return nil, errors.New("ledger repository is required")
	}
	if resolver == nil {
		return nil, errors.New("parent resolver is required")
	}
	if directory == nil {
		return nil, errors.New("address directory is required")
	}
	if metrics == nil {
		return nil, errors.New("ledger metrics is required")
	}
	return &Service{
		repo:        repo,
		resolver:    resolver,
		directory:   directory,
		metrics:     metrics,
		fanOutLimit: defaultFanOutLimit,
		logger:      logger.Named("ledger"),
	}, nil
}

// Create persists one transaction and runs its link fan-out.
func (s *Service) Create(ctx context.Context, tx model.Transaction) error {
	return s.CreateMany(ctx, []model.Transaction{tx})
}

// CreateMany persists the transactions in one insert, then registers each one for its receiver and,
// once its parent is resolved, for its sender. Resolved parents get the transaction appended to their
// outputs. A failure in one transaction does not stop the others and the first failure is returned.
// Every step is an idempotent upsert, so retrying a failed call converges.
func (s *Service) CreateMany(ctx context.Context, txs []model.Transaction) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveCreate(err, len(txs), started)
	}()

	if len(txs) == 0 {
		return nil
	}

	if err = s.repo.InsertTransactions(ctx, txs); err != nil {
		return fmt.Errorf("insert transactions: %w", err)
	}
	s.metrics.ObserveLink(model.Unlinked, len(txs))

	var (
		mu    sync.Mutex
		links = make([]model.TransactionOutput, 0, len(txs))
		g     errgroup.Group
	)
	g.SetLimit(s.fanOutLimit)

	for _, tx := range txs {
		g.Go(func() error {
			return s.directory.RegisterTransaction(ctx, entry(tx, model.RoleReceiver))
		})
		if tx.Input == nil {
			continue
		}
		g.Go(func() error {
			parentID, err := s.resolver.ResolveParentTransactionID(ctx, *tx.Input)
			if err != nil {
				return fmt.Errorf("parent of %s: %w", tx.TransactionID, err)
			}
			mu.Lock()
			links = append(links, model.TransactionOutput{
				TransactionID:      parentID,
				ChildTransactionID: tx.TransactionID,
				Address:            tx.Receiver,
				Amount:             tx.Amount,
			})
			mu.Unlock()
			if !tx.HasSender() {
				return nil
			}
			return s.directory.RegisterTransaction(ctx, entry(tx, model.RoleSender))
		})
	}
	fanOutErr := g.Wait()

	var outputsErr error
	if len(links) > 0 {
		if outputsErr = s.repo.InsertTransactionOutputs(ctx, links); outputsErr != nil {
			outputsErr = fmt.Errorf("append outputs: %w", outputsErr)
		} else {
			s.metrics.ObserveLink(model.Linked, len(links))
		}
	}

	if err = errors.Join(fanOutErr, outputsErr); err != nil {
		s.logger.Warn("transaction fan-out failed", zap.Int("transactions", len(txs)), zap.Error(err))
		return err
	}
	s.logger.Debug("transactions created", zap.Int("transactions", len(txs)), zap.Int("links", len(links)))
	return nil
}

// Remove deregisters the transaction from its addresses and tombstones it.
// If either deregistration fails the record is kept and the sender entry is restored.
func (s *Service) Remove(ctx context.Context, transactionID string) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveRemove(err, started)
	}()

	tx, err := s.repo.Transaction(ctx, transactionID)
	if err != nil {
		return fmt.Errorf("load transaction: %w", err)
	}

	hasSender := tx.HasSender()
	if hasSender {
		if err = s.directory.DeregisterTransaction(ctx, tx.Sender, tx.TransactionID, model.RoleSender); err != nil {
			return err
		}
	}

	if err = s.directory.DeregisterTransaction(ctx, tx.Receiver, tx.TransactionID, model.RoleReceiver); err != nil {
		if hasSender {
			if restoreErr := s.directory.RegisterTransaction(ctx, entry(*tx, model.RoleSender)); restoreErr != nil {
				s.logger.Error("sender entry not restored",
					zap.String("transaction_id", tx.TransactionID),
					zap.String("sender", tx.Sender),
					zap.Error(restoreErr),
				)
				err = errors.Join(err, fmt.Errorf("restore sender entry: %w", restoreErr))
			}
		}
		return err
	}

	if err = s.repo.DeleteTransaction(ctx, tx.TransactionID); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	s.metrics.ObserveLink(model.Removed, 1)
	s.logger.Debug("transaction removed", zap.String("transaction_id", tx.TransactionID))
	return nil
}

func entry(tx model.Transaction, role model.Role) model.AddressEntry {
	address := tx.Receiver
	if role == model.RoleSender {
		address = tx.Sender
	}
	return model.AddressEntry{
		Address:       address,
		TransactionID: tx.TransactionID,
		Role:          role,
		Amount:        tx.Amount,
		CreatedAt:     tx.CreatedAt,
	}
}
