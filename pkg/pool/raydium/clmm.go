package raydium

import (
	"encoding/binary"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"lukechampine.com/uint128"

	"github.com/solstack-labs/poolagent/pkg/dex"
	"github.com/solstack-labs/poolagent/pkg/dexerr"
	"github.com/solstack-labs/poolagent/pkg/layout"
)

// CLMM PoolState offsets, 8-byte discriminator included. Several forks
// of the Raydium CLMM program (PancakeSwap, Byreal) reuse this exact
// layout, so the decoder is parameterized by program and kind.
const (
	clmmOffAmmConfig    = 9
	clmmOffTokenMint0   = 73
	clmmOffTokenMint1   = 105
	clmmOffTokenVault0  = 137
	clmmOffTokenVault1  = 169
	clmmOffObservation  = 201
	clmmOffTickSpacing  = 235
	clmmOffLiquidity    = 237
	clmmOffSqrtPriceX64 = 253
	clmmOffTickCurrent  = 269
	clmmOffStatus       = 389
	clmmOffBitmap       = 904
)

var clmmSpec = layout.NewSpec("clmm",
	layout.Field{Name: "amm_config", Off: clmmOffAmmConfig, Size: 32},
	layout.Field{Name: "token_mint_0", Off: clmmOffTokenMint0, Size: 32},
	layout.Field{Name: "token_mint_1", Off: clmmOffTokenMint1, Size: 32},
	layout.Field{Name: "token_vault_0", Off: clmmOffTokenVault0, Size: 32},
	layout.Field{Name: "token_vault_1", Off: clmmOffTokenVault1, Size: 32},
	layout.Field{Name: "observation_key", Off: clmmOffObservation, Size: 32},
	layout.Field{Name: "tick_spacing", Off: clmmOffTickSpacing, Size: 2},
	layout.Field{Name: "liquidity", Off: clmmOffLiquidity, Size: 16},
	layout.Field{Name: "sqrt_price_x64", Off: clmmOffSqrtPriceX64, Size: 16},
	layout.Field{Name: "tick_current", Off: clmmOffTickCurrent, Size: 4},
	layout.Field{Name: "status", Off: clmmOffStatus, Size: 1},
	layout.Field{Name: "tick_array_bitmap", Off: clmmOffBitmap, Size: 128},
)

var _ dex.Bucketed = (*ClmmPool)(nil)

// ClmmPool is a decoded concentrated-liquidity pool of the Raydium CLMM
// layout family.
type ClmmPool struct {
	kind    dex.Kind
	Program solana.PublicKey

	Address      solana.PublicKey
	AmmConfig    solana.PublicKey
	TokenMint0   solana.PublicKey
	TokenMint1   solana.PublicKey
	TokenVault0  solana.PublicKey
	TokenVault1  solana.PublicKey
	Observation  solana.PublicKey
	TickSpacing  uint16
	Liquidity    uint128.Uint128
	SqrtPriceX64 uint128.Uint128
	TickCurrent  int32
	Status       uint8

	// Derived at registration/refresh time.
	TickArrays      []solana.PublicKey
	BitmapExtension solana.PublicKey
}

func (p *ClmmPool) Kind() dex.Kind           { return p.kind }
func (p *ClmmPool) PoolID() solana.PublicKey { return p.Address }
func (p *ClmmPool) Mints() (solana.PublicKey, solana.PublicKey) {
	return p.TokenMint0, p.TokenMint1
}

// DecodeClmm parses a CLMM PoolState account under the given fork.
func DecodeClmm(kind dex.Kind, program, address solana.PublicKey, data []byte) (*ClmmPool, error) {
	if err := clmmSpec.Check(data); err != nil {
		return nil, err
	}
	return &ClmmPool{
		kind:         kind,
		Program:      program,
		Address:      address,
		AmmConfig:    layout.PublicKey(data, clmmOffAmmConfig),
		TokenMint0:   layout.PublicKey(data, clmmOffTokenMint0),
		TokenMint1:   layout.PublicKey(data, clmmOffTokenMint1),
		TokenVault0:  layout.PublicKey(data, clmmOffTokenVault0),
		TokenVault1:  layout.PublicKey(data, clmmOffTokenVault1),
		Observation:  layout.PublicKey(data, clmmOffObservation),
		TickSpacing:  layout.U16(data, clmmOffTickSpacing),
		Liquidity:    layout.U128(data, clmmOffLiquidity),
		SqrtPriceX64: layout.U128(data, clmmOffSqrtPriceX64),
		TickCurrent:  layout.I32(data, clmmOffTickCurrent),
		Status:       layout.U8(data, clmmOffStatus),
	}, nil
}

// TickArrayStartIndex returns the start index of the tick array holding
// tick, flooring toward negative infinity so negative ticks land in the
// array below zero.
func TickArrayStartIndex(tick int32, tickSpacing uint16) int32 {
	ticksInArray := int32(tickSpacing) * TickArraySize
	start := tick / ticksInArray
	if tick < 0 && tick%ticksInArray != 0 {
		start--
	}
	return start * ticksInArray
}

// DeriveTickArrayPDA derives the tick array account for a start index.
// The program writes the index into the seed big-endian.
func DeriveTickArrayPDA(program, pool solana.PublicKey, startIndex int32) (solana.PublicKey, error) {
	var idx [4]byte
	binary.BigEndian.PutUint32(idx[:], uint32(startIndex))
	pda, _, err := solana.FindProgramAddress(
		[][]byte{[]byte(TickArraySeed), pool.Bytes(), idx[:]},
		program,
	)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("tick array %d for %s: %w", startIndex, pool, dexerr.ErrDerivationFailure)
	}
	return pda, nil
}

// DeriveTickArrays derives the tick arrays one step below, at, and one
// step above the current tick.
func DeriveTickArrays(program, pool solana.PublicKey, tickCurrent int32, tickSpacing uint16) ([]solana.PublicKey, error) {
	ticksInArray := int32(tickSpacing) * TickArraySize
	base := TickArrayStartIndex(tickCurrent, tickSpacing)

	out := make([]solana.PublicKey, 0, 3)
	for _, offset := range []int32{-1, 0, 1} {
		pda, err := DeriveTickArrayPDA(program, pool, base+offset*ticksInArray)
		if err != nil {
			return nil, err
		}
		out = append(out, pda)
	}
	return out, nil
}

// DeriveBitmapExtension derives the tick array bitmap extension account.
func DeriveBitmapExtension(program, pool solana.PublicKey) (solana.PublicKey, error) {
	pda, _, err := solana.FindProgramAddress(
		[][]byte{[]byte(TickArrayBitmapExtSeed), pool.Bytes()},
		program,
	)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("bitmap extension for %s: %w", pool, dexerr.ErrDerivationFailure)
	}
	return pda, nil
}

// LiquidityBuckets derives the tick arrays around the current price.
func (p *ClmmPool) LiquidityBuckets() ([]solana.PublicKey, error) {
	return DeriveTickArrays(p.Program, p.Address, p.TickCurrent, p.TickSpacing)
}
