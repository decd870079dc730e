package meteora

import (
	"github.com/gagliardetto/solana-go"

	"github.com/solstack-labs/poolagent/pkg/dex"
	"github.com/solstack-labs/poolagent/pkg/layout"
)

// DAMM v2 (cp-amm) Pool offsets, 8-byte discriminator included.
const (
	dammOffTokenAMint  = 168
	dammOffTokenBMint  = 200
	dammOffTokenAVault = 232
	dammOffTokenBVault = 264
)

var dammV2Spec = layout.NewSpec("meteora_damm_v2",
	layout.Field{Name: "token_a_mint", Off: dammOffTokenAMint, Size: 32},
	layout.Field{Name: "token_b_mint", Off: dammOffTokenBMint, Size: 32},
	layout.Field{Name: "token_a_vault", Off: dammOffTokenAVault, Size: 32},
	layout.Field{Name: "token_b_vault", Off: dammOffTokenBVault, Size: 32},
)

// DammV2Pool is a decoded DAMM v2 pool.
type DammV2Pool struct {
	Address     solana.PublicKey
	TokenAMint  solana.PublicKey
	TokenBMint  solana.PublicKey
	TokenAVault solana.PublicKey
	TokenBVault solana.PublicKey
}

func (p *DammV2Pool) Kind() dex.Kind           { return dex.KindMeteoraDammV2 }
func (p *DammV2Pool) PoolID() solana.PublicKey { return p.Address }
func (p *DammV2Pool) Mints() (solana.PublicKey, solana.PublicKey) {
	return p.TokenAMint, p.TokenBMint
}

// DecodeDammV2 parses a DAMM v2 pool account.
func DecodeDammV2(address solana.PublicKey, data []byte) (*DammV2Pool, error) {
	if err := dammV2Spec.Check(data); err != nil {
		return nil, err
	}
	return &DammV2Pool{
		Address:     address,
		TokenAMint:  layout.PublicKey(data, dammOffTokenAMint),
		TokenBMint:  layout.PublicKey(data, dammOffTokenBMint),
		TokenAVault: layout.PublicKey(data, dammOffTokenAVault),
		TokenBVault: layout.PublicKey(data, dammOffTokenBVault),
	}, nil
}
