// Package pump decodes PumpSwap AMM pool accounts and derives the
// creator-fee addresses attached to every swap.
package pump

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/solstack-labs/poolagent/pkg/dex"
	"github.com/solstack-labs/poolagent/pkg/dexerr"
	"github.com/solstack-labs/poolagent/pkg/layout"
)

// Account byte offsets, 8-byte discriminator included. The layout is
// bump u8, index u16, creator, then the pubkey run below, lp_supply u64,
// coin_creator, and a trailing mayhem flag appended by a later program
// upgrade.
const (
	offBaseMint    = 8 + 35
	offQuoteMint   = 8 + 67
	offLpMint      = 8 + 99
	offBaseVault   = 8 + 131
	offQuoteVault  = 8 + 163
	offCoinCreator = 8 + 203
	offMayhemMode  = 8 + 235
)

var poolSpec = layout.NewSpec("pump",
	layout.Field{Name: "base_mint", Off: offBaseMint, Size: 32},
	layout.Field{Name: "quote_mint", Off: offQuoteMint, Size: 32},
	layout.Field{Name: "lp_mint", Off: offLpMint, Size: 32},
	layout.Field{Name: "base_vault", Off: offBaseVault, Size: 32},
	layout.Field{Name: "quote_vault", Off: offQuoteVault, Size: 32},
)

// Pool is a decoded PumpSwap pool plus the fee accounts swaps against
// it must reference.
type Pool struct {
	Address    solana.PublicKey
	BaseMint   solana.PublicKey
	QuoteMint  solana.PublicKey
	BaseVault  solana.PublicKey
	QuoteVault solana.PublicKey

	// CoinCreator is zero on pools created before creator fees existed.
	CoinCreator solana.PublicKey
	MayhemMode  bool

	// Populated at registration time.
	FeeWallet                 solana.PublicKey
	FeeTokenWallet            solana.PublicKey
	CoinCreatorVaultAuthority solana.PublicKey
	CoinCreatorVaultATA       solana.PublicKey
}

func (p *Pool) Kind() dex.Kind           { return dex.KindPumpSwap }
func (p *Pool) PoolID() solana.PublicKey { return p.Address }
func (p *Pool) Mints() (solana.PublicKey, solana.PublicKey) {
	return p.BaseMint, p.QuoteMint
}

// Decode parses a PumpSwap pool account. The coin creator and mayhem
// fields are optional trailing data: old accounts simply end before
// them and get a zero creator and mayhem off.
func Decode(address solana.PublicKey, data []byte) (*Pool, error) {
	if err := poolSpec.Check(data); err != nil {
		return nil, err
	}
	p := &Pool{
		Address:    address,
		BaseMint:   layout.PublicKey(data, offBaseMint),
		QuoteMint:  layout.PublicKey(data, offQuoteMint),
		BaseVault:  layout.PublicKey(data, offBaseVault),
		QuoteVault: layout.PublicKey(data, offQuoteVault),
	}
	if len(data) >= offCoinCreator+32 {
		p.CoinCreator = layout.PublicKey(data, offCoinCreator)
	}
	if len(data) > offMayhemMode {
		p.MayhemMode = layout.Bool(data, offMayhemMode)
	}
	return p, nil
}

// DeriveCreatorVaultAuthority returns the PDA that collects creator
// fees for the given creator. A zero creator has no vault and maps to
// the zero authority.
func DeriveCreatorVaultAuthority(creator solana.PublicKey) (solana.PublicKey, error) {
	if creator.IsZero() {
		return solana.PublicKey{}, nil
	}
	authority, _, err := solana.FindProgramAddress(
		[][]byte{[]byte(creatorVaultSeed), creator.Bytes()},
		ProgramID,
	)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("creator vault for %s: %w", creator, dexerr.ErrDerivationFailure)
	}
	return authority, nil
}

// SelectFeeWallet picks the protocol fee recipient for this pool.
func (p *Pool) SelectFeeWallet() solana.PublicKey {
	if p.MayhemMode {
		return MayhemFeeWallet
	}
	return ProtocolFeeWallet
}
