package raydium

import (
	"github.com/gagliardetto/solana-go"

	"github.com/solstack-labs/poolagent/pkg/dex"
	"github.com/solstack-labs/poolagent/pkg/layout"
)

// CPMM PoolState offsets, 8-byte discriminator included.
const (
	cpOffAmmConfig      = 8
	cpOffPoolCreator    = 40
	cpOffToken0Vault    = 72
	cpOffToken1Vault    = 104
	cpOffLpMint         = 136
	cpOffToken0Mint     = 168
	cpOffToken1Mint     = 200
	cpOffToken0Program  = 232
	cpOffToken1Program  = 264
	cpOffObservationKey = 296
)

var cpmmSpec = layout.NewSpec("raydium_cpmm",
	layout.Field{Name: "amm_config", Off: cpOffAmmConfig, Size: 32},
	layout.Field{Name: "token_0_vault", Off: cpOffToken0Vault, Size: 32},
	layout.Field{Name: "token_1_vault", Off: cpOffToken1Vault, Size: 32},
	layout.Field{Name: "token_0_mint", Off: cpOffToken0Mint, Size: 32},
	layout.Field{Name: "token_1_mint", Off: cpOffToken1Mint, Size: 32},
	layout.Field{Name: "observation_key", Off: cpOffObservationKey, Size: 32},
)

// CpPool is a decoded Raydium CPMM pool.
type CpPool struct {
	Address     solana.PublicKey
	AmmConfig   solana.PublicKey
	Token0Mint  solana.PublicKey
	Token1Mint  solana.PublicKey
	Token0Vault solana.PublicKey
	Token1Vault solana.PublicKey
	Observation solana.PublicKey
}

func (p *CpPool) Kind() dex.Kind           { return dex.KindRaydiumCpmm }
func (p *CpPool) PoolID() solana.PublicKey { return p.Address }
func (p *CpPool) Mints() (solana.PublicKey, solana.PublicKey) {
	return p.Token0Mint, p.Token1Mint
}

// DecodeCpmm parses a CPMM PoolState account.
func DecodeCpmm(address solana.PublicKey, data []byte) (*CpPool, error) {
	if err := cpmmSpec.Check(data); err != nil {
		return nil, err
	}
	return &CpPool{
		Address:     address,
		AmmConfig:   layout.PublicKey(data, cpOffAmmConfig),
		Token0Mint:  layout.PublicKey(data, cpOffToken0Mint),
		Token1Mint:  layout.PublicKey(data, cpOffToken1Mint),
		Token0Vault: layout.PublicKey(data, cpOffToken0Vault),
		Token1Vault: layout.PublicKey(data, cpOffToken1Vault),
		Observation: layout.PublicKey(data, cpOffObservationKey),
	}, nil
}
