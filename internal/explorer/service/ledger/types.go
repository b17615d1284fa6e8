package ledger

import (
	"context"
	"time"

	"github.com/goodnatureofminers/coinexplorer-backend/internal/explorer/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		InsertTransactions(ctx context.Context, txs []model.Transaction) error
		InsertTransactionOutputs(ctx context.Context, outputs []model.TransactionOutput) error
		Transaction(ctx context.Context, transactionID string) (*model.Transaction, error)
		DeleteTransaction(ctx context.Context, transactionID string) error
	}
	ParentResolver interface {
		ResolveParentTransactionID(ctx context.Context, coin model.Coin) (string, error)
	}
	Directory interface {
		RegisterTransaction(ctx context.Context, entry model.AddressEntry) error
		DeregisterTransaction(ctx context.Context, address, transactionID string, role model.Role) error
	}
	Metrics interface {
		ObserveCreate(err error, transactions int, started time.Time)
		ObserveRemove(err error, started time.Time)
		ObserveLink(state model.LinkState, links int)
	}
)
