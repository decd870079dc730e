// Package trade holds the dispatch-side collaborator of the bot. The
// executor validates an iteration's inputs and hands the pool set to
// the pluggable instruction builder; the default builder only records
// the attempt, which keeps the orchestration testable end to end.
package trade

import (
	"context"
	"fmt"
	"sync"

	"cosmossdk.io/math"
	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/solstack-labs/poolagent/pkg/registry"
)

// Builder turns a locked entry into transaction instructions. A real
// implementation encodes per-venue swaps; tests and dry runs use nil.
type Builder interface {
	Build(ctx context.Context, entry *registry.Entry, amountIn math.Int) ([]solana.Instruction, error)
}

// Executor implements bot.Dispatcher.
type Executor struct {
	builder  Builder
	amountIn math.Int
	log      *zap.Logger

	mu         sync.Mutex
	dispatched int
	notional   math.Int
}

// NewExecutor creates an executor dispatching amountIn lamports of the
// anchor asset per iteration. builder may be nil for dry runs.
func NewExecutor(builder Builder, amountIn math.Int, log *zap.Logger) *Executor {
	return &Executor{
		builder:  builder,
		amountIn: amountIn,
		log:      log,
		notional: math.ZeroInt(),
	}
}

// Dispatch performs one iteration against the entry. The caller holds
// the entry lock.
func (e *Executor) Dispatch(ctx context.Context, entry *registry.Entry, blockhash solana.Hash) error {
	if blockhash.IsZero() {
		return fmt.Errorf("mint %s: no recent blockhash", entry.Mint)
	}
	if entry.PoolCount() == 0 {
		return fmt.Errorf("mint %s: no pools registered", entry.Mint)
	}
	if entry.WalletTokenAccount.IsZero() || entry.WalletWsolAccount.IsZero() {
		return fmt.Errorf("mint %s: wallet accounts not initialized", entry.Mint)
	}

	if e.builder != nil {
		insts, err := e.builder.Build(ctx, entry, e.amountIn)
		if err != nil {
			return fmt.Errorf("build instructions for %s: %w", entry.Mint, err)
		}
		e.log.Debug("built dispatch instructions",
			zap.Stringer("mint", entry.Mint),
			zap.Int("instructions", len(insts)))
	}

	e.mu.Lock()
	e.dispatched++
	e.notional = e.notional.Add(e.amountIn)
	e.mu.Unlock()

	e.log.Debug("dispatch iteration",
		zap.Stringer("mint", entry.Mint),
		zap.Int("pools", entry.PoolCount()),
		zap.Stringer("blockhash", blockhash))
	return nil
}

// Stats returns how many iterations ran and the cumulative notional.
func (e *Executor) Stats() (int, math.Int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dispatched, e.notional
}
