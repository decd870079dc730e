// Package bot runs the dispatch orchestration: one worker per traded
// mint plus a single writer keeping a shared recent blockhash fresh.
package bot

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/solstack-labs/poolagent/pkg/market"
	"github.com/solstack-labs/poolagent/pkg/registry"
)

// Dispatcher consumes a locked entry and a recent blockhash and
// performs one dispatch attempt. Implementations own instruction
// assembly and submission.
type Dispatcher interface {
	Dispatch(ctx context.Context, entry *registry.Entry, blockhash solana.Hash) error
}

// BlockhashSource yields fresh recent blockhashes.
type BlockhashSource interface {
	LatestBlockhash(ctx context.Context) (solana.Hash, error)
}

// Config tunes the orchestration cadence.
type Config struct {
	// ProcessDelay is the pause between dispatch iterations per mint.
	ProcessDelay time.Duration
	// BlockhashRefresh is the interval of the blockhash writer.
	BlockhashRefresh time.Duration
	// RefreshEvery refreshes an entry's bucket state every N dispatch
	// iterations. Zero disables in-loop refresh.
	RefreshEvery int
}

// Bot drives the per-mint workers over a registry.
type Bot struct {
	reg        *registry.Registry
	dispatcher Dispatcher
	refresher  *market.Refresher
	source     BlockhashSource
	log        *zap.Logger
	cfg        Config

	// recent is written only by the blockhash worker and copied out by
	// dispatch workers under mu.
	mu     sync.Mutex
	recent solana.Hash
}

func New(reg *registry.Registry, dispatcher Dispatcher, refresher *market.Refresher, source BlockhashSource, cfg Config, log *zap.Logger) *Bot {
	if cfg.ProcessDelay <= 0 {
		cfg.ProcessDelay = 200 * time.Millisecond
	}
	if cfg.BlockhashRefresh <= 0 {
		cfg.BlockhashRefresh = 10 * time.Second
	}
	return &Bot{
		reg:        reg,
		dispatcher: dispatcher,
		refresher:  refresher,
		source:     source,
		log:        log,
		cfg:        cfg,
	}
}

// Run primes the blockhash, starts the blockhash writer and one worker
// per registered mint, and blocks until the context is cancelled and
// every worker has drained.
func (b *Bot) Run(ctx context.Context) error {
	initial, err := b.source.LatestBlockhash(ctx)
	if err != nil {
		return fmt.Errorf("prime blockhash: %w", err)
	}
	b.setBlockhash(initial)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		b.blockhashWorker(ctx)
	}()

	for _, mint := range b.reg.Mints() {
		entry, ok := b.reg.Get(mint)
		if !ok {
			continue
		}
		wg.Add(1)
		go func(entry *registry.Entry) {
			defer wg.Done()
			b.mintWorker(ctx, entry)
		}(entry)
	}

	wg.Wait()
	return ctx.Err()
}

func (b *Bot) setBlockhash(h solana.Hash) {
	b.mu.Lock()
	b.recent = h
	b.mu.Unlock()
}

// Blockhash copies the cached recent blockhash out under the lock.
func (b *Bot) Blockhash() solana.Hash {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.recent
}

// blockhashWorker is the single writer of the cached blockhash. Fetch
// failures keep the previous value; a stale hash is usually still
// inside its validity window.
func (b *Bot) blockhashWorker(ctx context.Context) {
	ticker := time.NewTicker(b.cfg.BlockhashRefresh)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h, err := b.source.LatestBlockhash(ctx)
			if err != nil {
				b.log.Warn("blockhash refresh failed, keeping previous", zap.Error(err))
				continue
			}
			b.setBlockhash(h)
		}
	}
}

// mintWorker loops forever over one entry, checking for cancellation
// only at iteration boundaries so an in-flight dispatch is never torn.
func (b *Bot) mintWorker(ctx context.Context, entry *registry.Entry) {
	log := b.log.With(zap.Stringer("mint", entry.Mint))
	log.Info("worker started", zap.Int("pools", entry.PoolCount()))

	timer := time.NewTimer(0)
	defer timer.Stop()
	if !timer.Stop() {
		<-timer.C
	}

	for iteration := 0; ; iteration++ {
		if ctx.Err() != nil {
			log.Info("worker stopped")
			return
		}

		blockhash := b.Blockhash()

		entry.Lock()
		if b.refresher != nil && b.cfg.RefreshEvery > 0 && iteration%b.cfg.RefreshEvery == 0 {
			b.refresher.RefreshEntry(ctx, entry)
		}
		err := b.dispatcher.Dispatch(ctx, entry, blockhash)
		entry.Unlock()

		if err != nil {
			log.Error("dispatch failed", zap.Error(err))
		}

		timer.Reset(b.cfg.ProcessDelay)
		select {
		case <-ctx.Done():
			log.Info("worker stopped")
			return
		case <-timer.C:
		}
	}
}
