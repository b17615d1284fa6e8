package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/coinexplorer-backend/internal/config"
	"github.com/goodnatureofminers/coinexplorer-backend/internal/explorer/chain"
	"github.com/goodnatureofminers/coinexplorer-backend/internal/explorer/node"
	"github.com/goodnatureofminers/coinexplorer-backend/internal/explorer/repository/clickhouse"
	"github.com/goodnatureofminers/coinexplorer-backend/internal/explorer/service/directory"
	"github.com/goodnatureofminers/coinexplorer-backend/internal/explorer/service/ingester"
	"github.com/goodnatureofminers/coinexplorer-backend/internal/explorer/service/ledger"
	"github.com/goodnatureofminers/coinexplorer-backend/internal/metrics"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type options struct {
	MetricsAddr   string         `long:"metrics-addr" env:"INGESTER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	Workers       int            `long:"workers" env:"INGESTER_WORKERS" description:"concurrent heights" default:"8"`
	BatchSize     int            `long:"batch-size" env:"INGESTER_BATCH_SIZE" description:"transactions per ledger flush" default:"500"`
	FlushInterval time.Duration  `long:"flush-interval" env:"INGESTER_FLUSH_INTERVAL" description:"max time between ledger flushes" default:"2s"`
	FlushRPS      int            `long:"flush-rps" env:"INGESTER_FLUSH_RPS" description:"max ledger flushes per second, 0 disables the limit" default:"0"`
	Node          config.Node    `group:"full node" namespace:"node" env-namespace:"INGESTER_NODE"`
	Storage       config.Storage `group:"storage" env-namespace:"INGESTER"`
}

type runCommand struct {
	From uint64 `long:"from" description:"first height" default:"0"`
	To   uint64 `long:"to" description:"last height, 0 stops at the peak" default:"0"`
}

type removeCommand struct {
	Args struct {
		IDs []string `positional-arg-name:"transaction-id" required:"1"`
	} `positional-args:"yes"`
}

var (
	opts   options
	ctx    context.Context
	logger *zap.Logger
)

func main() {
	var stop context.CancelFunc
	ctx, stop = signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	logger, err = zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	parser := flags.NewParser(&opts, flags.Default)
	mustAddCommand(parser, "run", "Ingest a height range", "Ingests [from, to] and exits.", &runCommand{})
	mustAddCommand(parser, "remove", "Remove transactions", "Deregisters and deletes the given transactions.", &removeCommand{})

	if _, err := parser.Parse(); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("ingester failed", zap.Error(err))
	}
}

func mustAddCommand(parser *flags.Parser, name, short, long string, data any) {
	if _, err := parser.AddCommand(name, short, long, data); err != nil {
		panic(fmt.Sprintf("add command %s: %v", name, err))
	}
}

func (c *runCommand) Execute([]string) error {
	return withServices(func(svc *services) error {
		last, err := svc.ingester.Run(ctx, c.From, c.To)
		if err != nil {
			return err
		}
		logger.Info("range ingested", zap.Uint64("from", c.From), zap.Uint64("to", last))
		return nil
	})
}

func (c *removeCommand) Execute([]string) error {
	return withServices(func(svc *services) error {
		for _, id := range c.Args.IDs {
			if err := svc.ledger.Remove(ctx, id); err != nil {
				return fmt.Errorf("remove %s: %w", id, err)
			}
			logger.Info("transaction removed", zap.String("transaction_id", id))
		}
		return nil
	})
}

type services struct {
	ledger   *ledger.Service
	ingester *ingester.Service
}

func withServices(fn func(*services) error) error {
	startMetricsServer(ctx, opts.MetricsAddr, logger)

	client, err := node.NewClient(opts.Node.ClientConfig())
	if err != nil {
		return fmt.Errorf("init full node client: %w", err)
	}
	gateway, err := node.NewGateway(client, metrics.NewRPCClient(opts.Storage.Network), opts.Node.AddressPrefix, opts.Node.RPS, logger)
	if err != nil {
		return fmt.Errorf("init node gateway: %w", err)
	}
	defer gateway.Close()

	repo, err := clickhouse.NewRepository(opts.Storage.ClickhouseDSN, metrics.NewClickhouseRepository(opts.Storage.Network))
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("close repository", zap.Error(err))
		}
	}()

	resolver := chain.NewResolver(gateway)
	dir, err := directory.NewService(repo, logger)
	if err != nil {
		return err
	}
	ldg, err := ledger.NewService(repo, resolver, dir, metrics.NewLedger(opts.Storage.Network), logger)
	if err != nil {
		return err
	}
	ing, err := ingester.NewService(gateway, resolver, ldg, metrics.NewIngester(opts.Storage.Network), ingester.Config{
		Workers:       opts.Workers,
		BatchSize:     opts.BatchSize,
		FlushInterval: opts.FlushInterval,
		FlushRPS:      opts.FlushRPS,
	}, logger)
	if err != nil {
		return err
	}

	ready := make(chan struct{})
	gateway.OnReady(func() { close(ready) })
	gateway.Start(ctx)
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-ready:
	}

	return fn(&services{ledger: ldg, ingester: ing})
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
