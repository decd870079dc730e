package market

import (
	"context"

	"go.uber.org/zap"

	"github.com/solstack-labs/poolagent/pkg/pool/meteora"
	"github.com/solstack-labs/poolagent/pkg/pool/orca"
	"github.com/solstack-labs/poolagent/pkg/pool/raydium"
	"github.com/solstack-labs/poolagent/pkg/registry"
)

// Refresher recomputes the price-dependent bucket accounts of
// registered pools. Any failure leaves the previous addresses in
// place: a stale tick array is still more useful than none.
type Refresher struct {
	fetcher Fetcher
	log     *zap.Logger
}

func NewRefresher(fetcher Fetcher, log *zap.Logger) *Refresher {
	return &Refresher{fetcher: fetcher, log: log}
}

// RefreshEntry re-fetches every bucketed pool in the entry and
// recomputes its tick or bin arrays around the current price. The
// caller must hold the entry lock.
func (r *Refresher) RefreshEntry(ctx context.Context, entry *registry.Entry) {
	r.refreshDlmm(ctx, entry.DlmmPools)
	r.refreshClmm(ctx, entry.RaydiumClmmPools)
	r.refreshClmm(ctx, entry.PancakeClmmPools)
	r.refreshClmm(ctx, entry.ByrealClmmPools)
	r.refreshWhirlpools(ctx, entry.WhirlpoolPools)
}

func (r *Refresher) refreshDlmm(ctx context.Context, pools []*meteora.DlmmPool) {
	for _, p := range pools {
		if ctx.Err() != nil {
			return
		}
		info, err := r.fetcher.FetchAccount(ctx, p.Address)
		if err != nil || info == nil {
			r.log.Warn("dlmm refresh fetch failed, keeping previous bin arrays",
				zap.Stringer("pool", p.Address), zap.Error(err))
			continue
		}
		fresh, err := meteora.DecodeDlmm(p.Address, info.Data)
		if err != nil {
			r.log.Warn("dlmm refresh decode failed, keeping previous bin arrays",
				zap.Stringer("pool", p.Address), zap.Error(err))
			continue
		}
		arrays, err := meteora.DeriveBinArrays(p.Address, fresh.ActiveID)
		if err != nil {
			r.log.Warn("dlmm bin array derivation failed, keeping previous bin arrays",
				zap.Stringer("pool", p.Address), zap.Error(err))
			continue
		}
		p.ActiveID = fresh.ActiveID
		p.BinArrays = arrays
	}
}

func (r *Refresher) refreshClmm(ctx context.Context, pools []*raydium.ClmmPool) {
	for _, p := range pools {
		if ctx.Err() != nil {
			return
		}
		info, err := r.fetcher.FetchAccount(ctx, p.Address)
		if err != nil || info == nil {
			r.log.Warn("clmm refresh fetch failed, keeping previous tick arrays",
				zap.Stringer("pool", p.Address), zap.Error(err))
			continue
		}
		fresh, err := raydium.DecodeClmm(p.Kind(), p.Program, p.Address, info.Data)
		if err != nil {
			r.log.Warn("clmm refresh decode failed, keeping previous tick arrays",
				zap.Stringer("pool", p.Address), zap.Error(err))
			continue
		}
		arrays, err := raydium.DeriveTickArrays(p.Program, p.Address, fresh.TickCurrent, fresh.TickSpacing)
		if err != nil {
			r.log.Warn("clmm tick array derivation failed, keeping previous tick arrays",
				zap.Stringer("pool", p.Address), zap.Error(err))
			continue
		}
		p.TickCurrent = fresh.TickCurrent
		p.TickSpacing = fresh.TickSpacing
		p.Liquidity = fresh.Liquidity
		p.SqrtPriceX64 = fresh.SqrtPriceX64
		p.TickArrays = arrays
	}
}

func (r *Refresher) refreshWhirlpools(ctx context.Context, pools []*orca.WhirlpoolPool) {
	for _, p := range pools {
		if ctx.Err() != nil {
			return
		}
		info, err := r.fetcher.FetchAccount(ctx, p.Address)
		if err != nil || info == nil {
			r.log.Warn("whirlpool refresh fetch failed, keeping previous tick arrays",
				zap.Stringer("pool", p.Address), zap.Error(err))
			continue
		}
		fresh, err := orca.Decode(p.Address, info.Data)
		if err != nil {
			r.log.Warn("whirlpool refresh decode failed, keeping previous tick arrays",
				zap.Stringer("pool", p.Address), zap.Error(err))
			continue
		}
		arrays, err := orca.DeriveTickArrays(p.Address, fresh.TickCurrentIndex, fresh.TickSpacing)
		if err != nil {
			r.log.Warn("whirlpool tick array derivation failed, keeping previous tick arrays",
				zap.Stringer("pool", p.Address), zap.Error(err))
			continue
		}
		p.TickCurrentIndex = fresh.TickCurrentIndex
		p.TickSpacing = fresh.TickSpacing
		p.Liquidity = fresh.Liquidity
		p.SqrtPrice = fresh.SqrtPrice
		p.TickArrays = arrays
	}
}
