package directory

import (
	"context"

	"github.com/goodnatureofminers/coinexplorer-backend/internal/explorer/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		InsertAddressTransactions(ctx context.Context, entries []model.AddressEntry) error
		DeleteAddressTransaction(ctx context.Context, address, transactionID string, role model.Role) error
		AddressTransactions(ctx context.Context, address string) ([]model.AddressEntry, error)
		UniqueAddressCount(ctx context.Context) (uint64, error)
		AddressTotals(ctx context.Context) (received, sent uint64, err error)
	}
)
