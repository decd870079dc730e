// Package futarchy decodes Futarchy AMM pool accounts.
package futarchy

import (
	"github.com/gagliardetto/solana-go"

	"github.com/solstack-labs/poolagent/pkg/dex"
	"github.com/solstack-labs/poolagent/pkg/layout"
)

var ProgramID = solana.MustPublicKeyFromBase58("FUTARELBfJfQ8RDGhg1wdhddq1odMAJUePHFuBYfUxKq")

const (
	offBaseMint   = 157
	offQuoteMint  = 189
	offBaseVault  = 221
	offQuoteVault = 253
)

var poolSpec = layout.NewSpec("futarchy",
	layout.Field{Name: "base_mint", Off: offBaseMint, Size: 32},
	layout.Field{Name: "quote_mint", Off: offQuoteMint, Size: 32},
	layout.Field{Name: "base_vault", Off: offBaseVault, Size: 32},
	layout.Field{Name: "quote_vault", Off: offQuoteVault, Size: 32},
)

// Pool is a decoded Futarchy AMM pool.
type Pool struct {
	Address    solana.PublicKey
	BaseMint   solana.PublicKey
	QuoteMint  solana.PublicKey
	BaseVault  solana.PublicKey
	QuoteVault solana.PublicKey
}

func (p *Pool) Kind() dex.Kind           { return dex.KindFutarchy }
func (p *Pool) PoolID() solana.PublicKey { return p.Address }
func (p *Pool) Mints() (solana.PublicKey, solana.PublicKey) {
	return p.BaseMint, p.QuoteMint
}

// Decode parses a Futarchy AMM pool account.
func Decode(address solana.PublicKey, data []byte) (*Pool, error) {
	if err := poolSpec.Check(data); err != nil {
		return nil, err
	}
	return &Pool{
		Address:    address,
		BaseMint:   layout.PublicKey(data, offBaseMint),
		QuoteMint:  layout.PublicKey(data, offQuoteMint),
		BaseVault:  layout.PublicKey(data, offBaseVault),
		QuoteVault: layout.PublicKey(data, offQuoteVault),
	}, nil
}
