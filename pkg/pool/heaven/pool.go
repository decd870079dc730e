// Package heaven decodes Heaven pool accounts. Heaven pools quote
// against SOL or USDC, so its anchor set is wider than the other
// venues'.
package heaven

import (
	"github.com/gagliardetto/solana-go"

	"github.com/solstack-labs/poolagent/pkg/dex"
	"github.com/solstack-labs/poolagent/pkg/layout"
)

var ProgramID = solana.MustPublicKeyFromBase58("HEAVEnMX7RoaYCucpyFterLWzH8rcGiiLjZGWjeHvSFo")

// Offsets, 8-byte discriminator included.
const (
	offProtocolConfig = 40
	offBaseMint       = 104
	offQuoteMint      = 136
	offBaseVault      = 168
	offQuoteVault     = 200
	offTokenProgram   = 232
)

var poolSpec = layout.NewSpec("heaven",
	layout.Field{Name: "protocol_config", Off: offProtocolConfig, Size: 32},
	layout.Field{Name: "base_mint", Off: offBaseMint, Size: 32},
	layout.Field{Name: "quote_mint", Off: offQuoteMint, Size: 32},
	layout.Field{Name: "base_vault", Off: offBaseVault, Size: 32},
	layout.Field{Name: "quote_vault", Off: offQuoteVault, Size: 32},
	layout.Field{Name: "token_program", Off: offTokenProgram, Size: 32},
)

// Pool is a decoded Heaven pool.
type Pool struct {
	Address        solana.PublicKey
	ProtocolConfig solana.PublicKey
	BaseMint       solana.PublicKey
	QuoteMint      solana.PublicKey
	BaseVault      solana.PublicKey
	QuoteVault     solana.PublicKey
	TokenProgram   solana.PublicKey
}

func (p *Pool) Kind() dex.Kind           { return dex.KindHeaven }
func (p *Pool) PoolID() solana.PublicKey { return p.Address }
func (p *Pool) Mints() (solana.PublicKey, solana.PublicKey) {
	return p.BaseMint, p.QuoteMint
}

// Decode parses a Heaven pool account.
func Decode(address solana.PublicKey, data []byte) (*Pool, error) {
	if err := poolSpec.Check(data); err != nil {
		return nil, err
	}
	return &Pool{
		Address:        address,
		ProtocolConfig: layout.PublicKey(data, offProtocolConfig),
		BaseMint:       layout.PublicKey(data, offBaseMint),
		QuoteMint:      layout.PublicKey(data, offQuoteMint),
		BaseVault:      layout.PublicKey(data, offBaseVault),
		QuoteVault:     layout.PublicKey(data, offQuoteVault),
		TokenProgram:   layout.PublicKey(data, offTokenProgram),
	}, nil
}
