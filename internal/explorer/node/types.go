package node

import (
	"context"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Transport carries raw RPC calls to the full node.
	Transport interface {
		Connect(ctx context.Context) error
		Call(ctx context.Context, endpoint string, request any) ([]byte, error)
	}
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
