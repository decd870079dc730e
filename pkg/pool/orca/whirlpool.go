// Package orca decodes Orca Whirlpool pool accounts and derives the
// tick array and oracle addresses swaps against them must reference.
package orca

import (
	"fmt"
	"strconv"

	"github.com/gagliardetto/solana-go"
	"lukechampine.com/uint128"

	"github.com/solstack-labs/poolagent/pkg/dex"
	"github.com/solstack-labs/poolagent/pkg/dexerr"
	"github.com/solstack-labs/poolagent/pkg/layout"
)

// Whirlpool account offsets, 8-byte discriminator included. The full
// account is 653 bytes; only the fields below matter here.
const (
	wpOffConfig           = 8
	wpOffTickSpacing      = 41
	wpOffLiquidity        = 49
	wpOffSqrtPrice        = 65
	wpOffTickCurrentIndex = 81
	wpOffTokenMintA       = 101
	wpOffTokenVaultA      = 133
	wpOffTokenMintB       = 181
	wpOffTokenVaultB      = 213
)

var whirlpoolSpec = layout.NewSpec("orca_whirlpool",
	layout.Field{Name: "whirlpools_config", Off: wpOffConfig, Size: 32},
	layout.Field{Name: "tick_spacing", Off: wpOffTickSpacing, Size: 2},
	layout.Field{Name: "liquidity", Off: wpOffLiquidity, Size: 16},
	layout.Field{Name: "sqrt_price", Off: wpOffSqrtPrice, Size: 16},
	layout.Field{Name: "tick_current_index", Off: wpOffTickCurrentIndex, Size: 4},
	layout.Field{Name: "token_mint_a", Off: wpOffTokenMintA, Size: 32},
	layout.Field{Name: "token_vault_a", Off: wpOffTokenVaultA, Size: 32},
	layout.Field{Name: "token_mint_b", Off: wpOffTokenMintB, Size: 32},
	layout.Field{Name: "token_vault_b", Off: wpOffTokenVaultB, Size: 32},
)

var _ dex.Bucketed = (*WhirlpoolPool)(nil)

// WhirlpoolPool is a decoded Whirlpool.
type WhirlpoolPool struct {
	Address          solana.PublicKey
	WhirlpoolsConfig solana.PublicKey
	TokenMintA       solana.PublicKey
	TokenMintB       solana.PublicKey
	TokenVaultA      solana.PublicKey
	TokenVaultB      solana.PublicKey
	TickSpacing      uint16
	Liquidity        uint128.Uint128
	SqrtPrice        uint128.Uint128
	TickCurrentIndex int32

	// Derived at registration/refresh time.
	Oracle     solana.PublicKey
	TickArrays []solana.PublicKey
}

func (p *WhirlpoolPool) Kind() dex.Kind           { return dex.KindOrcaWhirlpool }
func (p *WhirlpoolPool) PoolID() solana.PublicKey { return p.Address }
func (p *WhirlpoolPool) Mints() (solana.PublicKey, solana.PublicKey) {
	return p.TokenMintA, p.TokenMintB
}

// Decode parses a Whirlpool account.
func Decode(address solana.PublicKey, data []byte) (*WhirlpoolPool, error) {
	if err := whirlpoolSpec.Check(data); err != nil {
		return nil, err
	}
	return &WhirlpoolPool{
		Address:          address,
		WhirlpoolsConfig: layout.PublicKey(data, wpOffConfig),
		TokenMintA:       layout.PublicKey(data, wpOffTokenMintA),
		TokenMintB:       layout.PublicKey(data, wpOffTokenMintB),
		TokenVaultA:      layout.PublicKey(data, wpOffTokenVaultA),
		TokenVaultB:      layout.PublicKey(data, wpOffTokenVaultB),
		TickSpacing:      layout.U16(data, wpOffTickSpacing),
		Liquidity:        layout.U128(data, wpOffLiquidity),
		SqrtPrice:        layout.U128(data, wpOffSqrtPrice),
		TickCurrentIndex: layout.I32(data, wpOffTickCurrentIndex),
	}, nil
}

// TickArrayStartIndex returns the start index of the tick array holding
// tick, flooring toward negative infinity.
func TickArrayStartIndex(tick int32, tickSpacing uint16) int32 {
	ticksInArray := int32(tickSpacing) * TickArraySize
	start := tick / ticksInArray
	if tick < 0 && tick%ticksInArray != 0 {
		start--
	}
	return start * ticksInArray
}

// DeriveTickArrayPDA derives the tick array account for a start index.
// The program seeds the index as its decimal string.
func DeriveTickArrayPDA(whirlpool solana.PublicKey, startIndex int32) (solana.PublicKey, error) {
	seeds := [][]byte{
		[]byte(TickArraySeed),
		whirlpool.Bytes(),
		[]byte(strconv.FormatInt(int64(startIndex), 10)),
	}
	pda, _, err := solana.FindProgramAddress(seeds, WhirlpoolProgramID)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("tick array %d for %s: %w", startIndex, whirlpool, dexerr.ErrDerivationFailure)
	}
	return pda, nil
}

// DeriveTickArrays derives the tick arrays one step below, at, and one
// step above the current tick.
func DeriveTickArrays(whirlpool solana.PublicKey, tickCurrent int32, tickSpacing uint16) ([]solana.PublicKey, error) {
	ticksInArray := int32(tickSpacing) * TickArraySize
	base := TickArrayStartIndex(tickCurrent, tickSpacing)

	out := make([]solana.PublicKey, 0, 3)
	for _, offset := range []int32{-1, 0, 1} {
		pda, err := DeriveTickArrayPDA(whirlpool, base+offset*ticksInArray)
		if err != nil {
			return nil, err
		}
		out = append(out, pda)
	}
	return out, nil
}

// DeriveOraclePDA derives the oracle account attached to a whirlpool.
func DeriveOraclePDA(whirlpool solana.PublicKey) (solana.PublicKey, error) {
	pda, _, err := solana.FindProgramAddress(
		[][]byte{[]byte(OracleSeed), whirlpool.Bytes()},
		WhirlpoolProgramID,
	)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("oracle for %s: %w", whirlpool, dexerr.ErrDerivationFailure)
	}
	return pda, nil
}

// LiquidityBuckets derives the tick arrays around the current price.
func (p *WhirlpoolPool) LiquidityBuckets() ([]solana.PublicKey, error) {
	return DeriveTickArrays(p.Address, p.TickCurrentIndex, p.TickSpacing)
}
