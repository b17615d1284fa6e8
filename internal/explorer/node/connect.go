package node

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
)

// Start launches the background connect loop. It returns immediately.
func (g *Gateway) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)

	g.mu.Lock()
	g.cancel = cancel
	g.mu.Unlock()

	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		if err := g.connect(ctx); err != nil {
			if !errors.Is(err, context.Canceled) {
				g.logger.Error("full node connect loop stopped", zap.Error(err))
			}
			return
		}
		g.markReady()
	}()
}

// OnReady registers fn to run once the gateway is connected. If it already is, fn runs immediately.
func (g *Gateway) OnReady(fn func()) {
	g.mu.Lock()
	if !g.ready.Load() {
		g.onReady = append(g.onReady, fn)
		g.mu.Unlock()
		return
	}
	g.mu.Unlock()
	fn()
}

// Ready reports whether the gateway has connected to the full node.
func (g *Gateway) Ready() bool {
	return g.ready.Load()
}

// Close stops the connect loop and waits for it to exit.
func (g *Gateway) Close() {
	g.mu.Lock()
	cancel := g.cancel
	g.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	g.wg.Wait()
}

func (g *Gateway) connect(ctx context.Context) error {
	attempt := 0
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		attempt++
		return struct{}{}, g.transport.Connect(ctx)
	},
		backoff.WithBackOff(backoff.NewConstantBackOff(g.retryDelay)),
		backoff.WithMaxElapsedTime(0),
		backoff.WithNotify(func(err error, next time.Duration) {
			g.logger.Warn("full node not reachable, retrying",
				zap.Int("attempt", attempt),
				zap.Duration("retry_in", next),
				zap.Error(err),
			)
		}),
	)
	if err != nil {
		return err
	}
	g.logger.Info("connected to full node", zap.Int("attempts", attempt))
	return nil
}

func (g *Gateway) markReady() {
	g.mu.Lock()
	g.ready.Store(true)
	listeners := g.onReady
	g.onReady = nil
	g.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}
