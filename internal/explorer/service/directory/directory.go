// Package directory maintains the per-address transaction index.
package directory

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/coinexplorer-backend/internal/explorer/model"
	"github.com/goodnatureofminers/coinexplorer-backend/pkg/keylock"
	"github.com/goodnatureofminers/coinexplorer-backend/pkg/safe"
	"go.uber.org/zap"
)

// Service registers transactions under the addresses that took part in them.
// Writes to one address are serialized.
type Service struct {
	repo   Repository
	locks  *keylock.Locker
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) (*Service, error) {
	if repo == nil {
		return nil, errors.New("directory repository is required")
	}
	return &Service{
		repo:   repo,
		locks:  keylock.New(),
		logger: logger.Named("directory"),
	}, nil
}

// RegisterTransaction records the entry. Registering the same (address, transaction, role) again replaces it.
func (s *Service) RegisterTransaction(ctx context.Context, entry model.AddressEntry) error {
	if entry.Address == "" || entry.Address == model.SentinelSender {
		return fmt.Errorf("%w: %q", model.ErrInvalidAddress, entry.Address)
	}

	unlock := s.locks.Lock(entry.Address)
	defer unlock()

	if err := s.repo.InsertAddressTransactions(ctx, []model.AddressEntry{entry}); err != nil {
		return fmt.Errorf("register %s of %s for %s: %w", entry.Role, entry.TransactionID, entry.Address, err)
	}
	s.logger.Debug("transaction registered",
		zap.String("address", entry.Address),
		zap.String("transaction_id", entry.TransactionID),
		zap.String("role", string(entry.Role)),
	)
	return nil
}

// DeregisterTransaction removes the entry. Removing an absent entry is not an error.
func (s *Service) DeregisterTransaction(ctx context.Context, address, transactionID string, role model.Role) error {
	unlock := s.locks.Lock(address)
	defer unlock()

	if err := s.repo.DeleteAddressTransaction(ctx, address, transactionID, role); err != nil {
		return fmt.Errorf("deregister %s of %s for %s: %w", role, transactionID, address, err)
	}
	s.logger.Debug("transaction deregistered",
		zap.String("address", address),
		zap.String("transaction_id", transactionID),
		zap.String("role", string(role)),
	)
	return nil
}

// GetAddress returns the balance and transaction history of an address.
func (s *Service) GetAddress(ctx context.Context, address string) (*model.Address, error) {
	entries, err := s.repo.AddressTransactions(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("address %s: %w", address, err)
	}
	if len(entries) == 0 {
		return nil, model.NotFoundError(fmt.Sprintf("address %s", address))
	}

	result := &model.Address{Address: address, Transactions: make([]string, 0, len(entries))}
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		switch e.Role {
		case model.RoleReceiver:
			result.Received += e.Amount
		case model.RoleSender:
			result.Sent += e.Amount
		}
		if _, ok := seen[e.TransactionID]; ok {
			continue
		}
		seen[e.TransactionID] = struct{}{}
		result.Transactions = append(result.Transactions, e.TransactionID)
	}

	result.Balance, err = balance(result.Received, result.Sent)
	if err != nil {
		return nil, fmt.Errorf("balance of %s: %w", address, err)
	}
	return result, nil
}

// UniqueAddressCount returns the number of addresses with at least one registered transaction.
func (s *Service) UniqueAddressCount(ctx context.Context) (uint64, error) {
	count, err := s.repo.UniqueAddressCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("unique address count: %w", err)
	}
	return count, nil
}

// CirculatingSupply returns the value held across all addresses, never negative.
func (s *Service) CirculatingSupply(ctx context.Context) (*model.Supply, error) {
	received, sent, err := s.repo.AddressTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("circulating supply: %w", err)
	}
	supply := &model.Supply{}
	if received > sent {
		supply.CirculatingSupply = received - sent
	}
	return supply, nil
}

func balance(received, sent uint64) (int64, error) {
	if received >= sent {
		return safe.Int64(received - sent)
	}
	deficit, err := safe.Int64(sent - received)
	if err != nil {
		return 0, err
	}
	return -deficit, nil
}
