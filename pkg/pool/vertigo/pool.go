// Package vertigo decodes Vertigo AMM pool accounts. The pool account
// stores only owner and mints; the vaults are the pool's associated
// token accounts and are derived here.
package vertigo

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/solstack-labs/poolagent/pkg/dex"
	"github.com/solstack-labs/poolagent/pkg/dexerr"
	"github.com/solstack-labs/poolagent/pkg/layout"
)

var ProgramID = solana.MustPublicKeyFromBase58("vrTGoBuy5rYSxAfV3jaRJWHH6nN9WK4NRExGxsk1bCJ")

// Offsets, 8-byte discriminator included.
const (
	offOwner = 9
	offMintA = 41
	offMintB = 73
)

var poolSpec = layout.NewSpec("vertigo",
	layout.Field{Name: "owner", Off: offOwner, Size: 32},
	layout.Field{Name: "mint_a", Off: offMintA, Size: 32},
	layout.Field{Name: "mint_b", Off: offMintB, Size: 32},
)

// Pool is a decoded Vertigo pool.
type Pool struct {
	Address solana.PublicKey
	Owner   solana.PublicKey
	MintA   solana.PublicKey
	MintB   solana.PublicKey

	// Vaults are the pool's ATAs, derived after decode.
	VaultA solana.PublicKey
	VaultB solana.PublicKey
}

func (p *Pool) Kind() dex.Kind           { return dex.KindVertigo }
func (p *Pool) PoolID() solana.PublicKey { return p.Address }
func (p *Pool) Mints() (solana.PublicKey, solana.PublicKey) {
	return p.MintA, p.MintB
}

// Decode parses a Vertigo pool account and derives its vaults.
func Decode(address solana.PublicKey, data []byte) (*Pool, error) {
	if err := poolSpec.Check(data); err != nil {
		return nil, err
	}
	p := &Pool{
		Address: address,
		Owner:   layout.PublicKey(data, offOwner),
		MintA:   layout.PublicKey(data, offMintA),
		MintB:   layout.PublicKey(data, offMintB),
	}
	var err error
	p.VaultA, err = DeriveVault(address, p.MintA)
	if err != nil {
		return nil, err
	}
	p.VaultB, err = DeriveVault(address, p.MintB)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// DeriveVault returns the pool's associated token account for mint.
func DeriveVault(pool, mint solana.PublicKey) (solana.PublicKey, error) {
	vault, _, err := solana.FindAssociatedTokenAddress(pool, mint)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("vault for %s/%s: %w", pool, mint, dexerr.ErrDerivationFailure)
	}
	return vault, nil
}
