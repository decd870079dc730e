// Package registry holds the per-mint pool collections the dispatch
// loop trades against. Entries are built once by market discovery and
// then owned jointly by their worker and the refresher, so each entry
// carries its own lock.
package registry

import (
	"sync"

	"github.com/gagliardetto/solana-go"

	"github.com/solstack-labs/poolagent/pkg/dex"
	"github.com/solstack-labs/poolagent/pkg/pool/futarchy"
	"github.com/solstack-labs/poolagent/pkg/pool/heaven"
	"github.com/solstack-labs/poolagent/pkg/pool/humidifi"
	"github.com/solstack-labs/poolagent/pkg/pool/meteora"
	"github.com/solstack-labs/poolagent/pkg/pool/orca"
	"github.com/solstack-labs/poolagent/pkg/pool/pump"
	"github.com/solstack-labs/poolagent/pkg/pool/raydium"
	"github.com/solstack-labs/poolagent/pkg/pool/vertigo"
)

// Entry collects every pool trading one mint against an anchor asset,
// plus the wallet accounts dispatch needs for that mint.
type Entry struct {
	mu sync.Mutex

	Mint               solana.PublicKey
	TokenProgram       solana.PublicKey
	WalletTokenAccount solana.PublicKey
	WalletWsolAccount  solana.PublicKey

	PumpPools        []*pump.Pool
	RaydiumAmmPools  []*raydium.AmmPool
	RaydiumCpPools   []*raydium.CpPool
	RaydiumClmmPools []*raydium.ClmmPool
	PancakeClmmPools []*raydium.ClmmPool
	ByrealClmmPools  []*raydium.ClmmPool
	DlmmPools        []*meteora.DlmmPool
	DammV2Pools      []*meteora.DammV2Pool
	WhirlpoolPools   []*orca.WhirlpoolPool
	HumidifiPools    []*humidifi.Pool
	FutarchyPools    []*futarchy.Pool
	VertigoPools     []*vertigo.Pool
	HeavenPools      []*heaven.Pool
}

// Lock takes the entry for a dispatch iteration or a refresh pass.
func (e *Entry) Lock() { e.mu.Lock() }

// Unlock releases the entry.
func (e *Entry) Unlock() { e.mu.Unlock() }

// PoolCount returns how many pools the entry holds across all venues.
func (e *Entry) PoolCount() int {
	return len(e.PumpPools) + len(e.RaydiumAmmPools) + len(e.RaydiumCpPools) +
		len(e.RaydiumClmmPools) + len(e.PancakeClmmPools) + len(e.ByrealClmmPools) +
		len(e.DlmmPools) + len(e.DammV2Pools) + len(e.WhirlpoolPools) +
		len(e.HumidifiPools) + len(e.FutarchyPools) + len(e.VertigoPools) +
		len(e.HeavenPools)
}

// Pools returns every pool in the entry behind the venue-neutral
// interface, in a stable venue order.
func (e *Entry) Pools() []dex.Pool {
	out := make([]dex.Pool, 0, e.PoolCount())
	for _, p := range e.PumpPools {
		out = append(out, p)
	}
	for _, p := range e.RaydiumAmmPools {
		out = append(out, p)
	}
	for _, p := range e.RaydiumCpPools {
		out = append(out, p)
	}
	for _, p := range e.RaydiumClmmPools {
		out = append(out, p)
	}
	for _, p := range e.PancakeClmmPools {
		out = append(out, p)
	}
	for _, p := range e.ByrealClmmPools {
		out = append(out, p)
	}
	for _, p := range e.DlmmPools {
		out = append(out, p)
	}
	for _, p := range e.DammV2Pools {
		out = append(out, p)
	}
	for _, p := range e.WhirlpoolPools {
		out = append(out, p)
	}
	for _, p := range e.HumidifiPools {
		out = append(out, p)
	}
	for _, p := range e.FutarchyPools {
		out = append(out, p)
	}
	for _, p := range e.VertigoPools {
		out = append(out, p)
	}
	for _, p := range e.HeavenPools {
		out = append(out, p)
	}
	return out
}

// Registry maps traded mints to their entries.
type Registry struct {
	mu      sync.RWMutex
	entries map[solana.PublicKey]*Entry
}

func New() *Registry {
	return &Registry{entries: make(map[solana.PublicKey]*Entry)}
}

// Get returns the entry for mint, if registered.
func (r *Registry) Get(mint solana.PublicKey) (*Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[mint]
	return e, ok
}

// Put registers an entry under its mint, replacing any previous one.
func (r *Registry) Put(e *Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[e.Mint] = e
}

// Mints returns the registered mints.
func (r *Registry) Mints() []solana.PublicKey {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]solana.PublicKey, 0, len(r.entries))
	for mint := range r.entries {
		out = append(out, mint)
	}
	return out
}

// Len returns the number of registered mints.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
