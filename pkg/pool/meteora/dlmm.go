// Package meteora decodes Meteora DLMM pairs and DAMM v2 pools. DLMM
// liquidity lives in derived bin array accounts keyed by the active bin,
// so the decoder also carries the bin index math.
package meteora

import (
	"encoding/binary"
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/solstack-labs/poolagent/pkg/dex"
	"github.com/solstack-labs/poolagent/pkg/dexerr"
	"github.com/solstack-labs/poolagent/pkg/layout"
)

// LbPair offsets, 8-byte discriminator included.
const (
	dlmmOffActiveID   = 76
	dlmmOffBinStep    = 80
	dlmmOffTokenXMint = 88
	dlmmOffTokenYMint = 120
	dlmmOffReserveX   = 152
	dlmmOffReserveY   = 184
	dlmmOffOracle     = 552
)

var lbPairSpec = layout.NewSpec("meteora_dlmm",
	layout.Field{Name: "active_id", Off: dlmmOffActiveID, Size: 4},
	layout.Field{Name: "bin_step", Off: dlmmOffBinStep, Size: 2},
	layout.Field{Name: "token_x_mint", Off: dlmmOffTokenXMint, Size: 32},
	layout.Field{Name: "token_y_mint", Off: dlmmOffTokenYMint, Size: 32},
	layout.Field{Name: "reserve_x", Off: dlmmOffReserveX, Size: 32},
	layout.Field{Name: "reserve_y", Off: dlmmOffReserveY, Size: 32},
	layout.Field{Name: "oracle", Off: dlmmOffOracle, Size: 32},
)

var _ dex.Bucketed = (*DlmmPool)(nil)

// DlmmPool is a decoded LB pair.
type DlmmPool struct {
	Address    solana.PublicKey
	TokenXMint solana.PublicKey
	TokenYMint solana.PublicKey
	ReserveX   solana.PublicKey
	ReserveY   solana.PublicKey
	Oracle     solana.PublicKey
	ActiveID   int32
	BinStep    uint16

	// Derived at registration/refresh time.
	BinArrays []solana.PublicKey
}

func (p *DlmmPool) Kind() dex.Kind           { return dex.KindMeteoraDlmm }
func (p *DlmmPool) PoolID() solana.PublicKey { return p.Address }
func (p *DlmmPool) Mints() (solana.PublicKey, solana.PublicKey) {
	return p.TokenXMint, p.TokenYMint
}

// DecodeDlmm parses an LB pair account.
func DecodeDlmm(address solana.PublicKey, data []byte) (*DlmmPool, error) {
	if err := lbPairSpec.Check(data); err != nil {
		return nil, err
	}
	return &DlmmPool{
		Address:    address,
		TokenXMint: layout.PublicKey(data, dlmmOffTokenXMint),
		TokenYMint: layout.PublicKey(data, dlmmOffTokenYMint),
		ReserveX:   layout.PublicKey(data, dlmmOffReserveX),
		ReserveY:   layout.PublicKey(data, dlmmOffReserveY),
		Oracle:     layout.PublicKey(data, dlmmOffOracle),
		ActiveID:   layout.I32(data, dlmmOffActiveID),
		BinStep:    layout.U16(data, dlmmOffBinStep),
	}, nil
}

// BinIDToBinArrayIndex converts a bin ID to its bin array index,
// flooring toward negative infinity for negative IDs.
func BinIDToBinArrayIndex(binID int32) int64 {
	quotient := binID / MaxBinPerArray
	remainder := binID % MaxBinPerArray
	if binID < 0 && remainder != 0 {
		quotient--
	}
	return int64(quotient)
}

// DeriveBinArrayPDA derives the bin array account for an LB pair and a
// bin array index. The index is seeded little-endian as a signed 64-bit
// value.
func DeriveBinArrayPDA(lbPair solana.PublicKey, binArrayIndex int64) (solana.PublicKey, error) {
	var idx [8]byte
	binary.LittleEndian.PutUint64(idx[:], uint64(binArrayIndex))
	pda, _, err := solana.FindProgramAddress(
		[][]byte{[]byte(BinArraySeed), lbPair.Bytes(), idx[:]},
		DlmmProgramID,
	)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("bin array %d for %s: %w", binArrayIndex, lbPair, dexerr.ErrDerivationFailure)
	}
	return pda, nil
}

// DeriveBinArrays derives the bin arrays one below, at, and one above
// the array holding the active bin.
func DeriveBinArrays(lbPair solana.PublicKey, activeID int32) ([]solana.PublicKey, error) {
	base := BinIDToBinArrayIndex(activeID)
	out := make([]solana.PublicKey, 0, 3)
	for _, offset := range []int64{-1, 0, 1} {
		pda, err := DeriveBinArrayPDA(lbPair, base+offset)
		if err != nil {
			return nil, err
		}
		out = append(out, pda)
	}
	return out, nil
}

// DeriveBinArrayBitmapExtension derives the bitmap extension account.
func DeriveBinArrayBitmapExtension(lbPair solana.PublicKey) (solana.PublicKey, error) {
	pda, _, err := solana.FindProgramAddress(
		[][]byte{[]byte(BinArrayBitmapSeed), lbPair.Bytes()},
		DlmmProgramID,
	)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("bitmap extension for %s: %w", lbPair, dexerr.ErrDerivationFailure)
	}
	return pda, nil
}

// DeriveEventAuthorityPDA derives the DLMM event authority.
func DeriveEventAuthorityPDA() solana.PublicKey {
	pda, _, _ := solana.FindProgramAddress([][]byte{[]byte(EventAuthoritySeed)}, DlmmProgramID)
	return pda
}

// LiquidityBuckets derives the bin arrays around the active bin.
func (p *DlmmPool) LiquidityBuckets() ([]solana.PublicKey, error) {
	return DeriveBinArrays(p.Address, p.ActiveID)
}
