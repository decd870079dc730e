// Package dex defines the venue-neutral vocabulary shared by the
// per-venue decoders and the discovery pipeline.
package dex

import "github.com/gagliardetto/solana-go"

// Kind identifies a pool venue.
type Kind string

const (
	KindPumpSwap      Kind = "pump_swap"
	KindRaydiumAmm    Kind = "raydium_amm"
	KindRaydiumCpmm   Kind = "raydium_cpmm"
	KindRaydiumClmm   Kind = "raydium_clmm"
	KindPancakeClmm   Kind = "pancake_clmm"
	KindByrealClmm    Kind = "byreal_clmm"
	KindMeteoraDlmm   Kind = "meteora_dlmm"
	KindMeteoraDammV2 Kind = "meteora_damm_v2"
	KindOrcaWhirlpool Kind = "orca_whirlpool"
	KindHumidifi      Kind = "humidifi"
	KindFutarchy      Kind = "futarchy"
	KindVertigo       Kind = "vertigo"
	KindHeaven        Kind = "heaven"
)

// Pool is the minimum surface the discovery pipeline needs from a
// decoded pool account.
type Pool interface {
	Kind() Kind
	PoolID() solana.PublicKey
	// Mints returns both sides of the pool; which one is the traded
	// asset is decided against the anchor set at registration time.
	Mints() (base, quote solana.PublicKey)
}

// Bucketed is implemented by pools whose liquidity is segmented into
// derived accounts (tick arrays, bin arrays) that must accompany any
// instruction touching the pool and drift as the price moves.
type Bucketed interface {
	Pool
	// LiquidityBuckets derives the bucket account addresses around the
	// pool's current price index.
	LiquidityBuckets() ([]solana.PublicKey, error)
}
