package market

import (
	"context"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/solstack-labs/poolagent/pkg/pool/futarchy"
	"github.com/solstack-labs/poolagent/pkg/pool/pump"
	"github.com/solstack-labs/poolagent/pkg/sol"
)

// fakeFetcher serves accounts from memory, positionally for batches.
type fakeFetcher struct {
	accounts map[solana.PublicKey]*sol.AccountInfo
}

func (f *fakeFetcher) FetchAccount(_ context.Context, address solana.PublicKey) (*sol.AccountInfo, error) {
	return f.accounts[address], nil
}

func (f *fakeFetcher) FetchAccounts(_ context.Context, addresses []solana.PublicKey) ([]*sol.AccountInfo, error) {
	out := make([]*sol.AccountInfo, len(addresses))
	for i, addr := range addresses {
		out[i] = f.accounts[addr]
	}
	return out, nil
}

// Protocol offsets for synthetic account payloads.
const (
	pumpBaseMintOff   = 43
	pumpQuoteMintOff  = 75
	pumpBaseVaultOff  = 139
	pumpQuoteVaultOff = 171
	pumpAccountLen    = 203
	futBaseMintOff    = 157
	futQuoteMintOff   = 189
	futAccountLen     = 285
)

func pumpAccount(baseMint, quoteMint solana.PublicKey) *sol.AccountInfo {
	data := make([]byte, pumpAccountLen)
	copy(data[pumpBaseMintOff:], baseMint.Bytes())
	copy(data[pumpQuoteMintOff:], quoteMint.Bytes())
	copy(data[pumpBaseVaultOff:], solana.NewWallet().PublicKey().Bytes())
	copy(data[pumpQuoteVaultOff:], solana.NewWallet().PublicKey().Bytes())
	return &sol.AccountInfo{Owner: pump.ProgramID, Data: data}
}

func futarchyAccount(baseMint, quoteMint solana.PublicKey) *sol.AccountInfo {
	data := make([]byte, futAccountLen)
	copy(data[futBaseMintOff:], baseMint.Bytes())
	copy(data[futQuoteMintOff:], quoteMint.Bytes())
	return &sol.AccountInfo{Owner: futarchy.ProgramID, Data: data}
}

func mintAccount() *sol.AccountInfo {
	return &sol.AccountInfo{Owner: sol.TokenProgram, Data: make([]byte, 82)}
}

func TestInitializeFromMarkets(t *testing.T) {
	mintA := solana.NewWallet().PublicKey()
	mintB := solana.NewWallet().PublicKey()

	pumpAddr := solana.NewWallet().PublicKey()
	futAddr := solana.NewWallet().PublicKey()
	unknownAddr := solana.NewWallet().PublicKey()
	anchorlessAddr := solana.NewWallet().PublicKey()
	absentAddr := solana.NewWallet().PublicKey()

	fetcher := &fakeFetcher{accounts: map[solana.PublicKey]*sol.AccountInfo{
		pumpAddr: pumpAccount(mintA, sol.WSOL),
		futAddr:  futarchyAccount(mintB, sol.WSOL),
		unknownAddr: {
			Owner: solana.NewWallet().PublicKey(),
			Data:  make([]byte, 512),
		},
		anchorlessAddr: pumpAccount(solana.NewWallet().PublicKey(), solana.NewWallet().PublicKey()),
		mintA:          mintAccount(),
		mintB:          mintAccount(),
	}}

	wallet := solana.NewWallet().PublicKey()
	in := NewInitializer(fetcher, wallet, zap.NewNop())

	markets := []string{
		pumpAddr.String(),
		futAddr.String(),
		unknownAddr.String(),
		anchorlessAddr.String(),
		absentAddr.String(),
		"not-a-base58-address",
	}
	reg, err := in.InitializeFromMarkets(context.Background(), markets)
	require.NoError(t, err)

	// Only the two anchored pools under known programs registered.
	assert.Equal(t, 2, reg.Len())

	entryA, ok := reg.Get(mintA)
	require.True(t, ok)
	require.Len(t, entryA.PumpPools, 1)
	assert.Equal(t, 1, entryA.PoolCount())
	assert.Equal(t, sol.TokenProgram, entryA.TokenProgram)
	assert.False(t, entryA.WalletTokenAccount.IsZero())
	assert.False(t, entryA.WalletWsolAccount.IsZero())

	// Pump enrichment: fee accounts set, zero creator means zero vault.
	pp := entryA.PumpPools[0]
	assert.Equal(t, pump.ProtocolFeeWallet, pp.FeeWallet)
	assert.False(t, pp.FeeTokenWallet.IsZero())
	assert.True(t, pp.CoinCreatorVaultAuthority.IsZero())
	assert.True(t, pp.CoinCreatorVaultATA.IsZero())

	entryB, ok := reg.Get(mintB)
	require.True(t, ok)
	require.Len(t, entryB.FutarchyPools, 1)

	// The anchorless pool landed nowhere.
	for _, mint := range reg.Mints() {
		entry, _ := reg.Get(mint)
		for _, p := range entry.Pools() {
			base, quote := p.Mints()
			assert.True(t, base.Equals(sol.WSOL) || quote.Equals(sol.WSOL) || base.Equals(sol.USDC) || quote.Equals(sol.USDC))
		}
	}
}

func TestInitializeGroupsPoolsByMint(t *testing.T) {
	mint := solana.NewWallet().PublicKey()
	pumpAddr := solana.NewWallet().PublicKey()
	futAddr := solana.NewWallet().PublicKey()

	fetcher := &fakeFetcher{accounts: map[solana.PublicKey]*sol.AccountInfo{
		pumpAddr: pumpAccount(mint, sol.WSOL),
		futAddr:  futarchyAccount(mint, sol.WSOL),
		mint:     mintAccount(),
	}}

	in := NewInitializer(fetcher, solana.NewWallet().PublicKey(), zap.NewNop())
	reg, err := in.InitializeFromMarkets(context.Background(), []string{pumpAddr.String(), futAddr.String()})
	require.NoError(t, err)

	require.Equal(t, 1, reg.Len())
	entry, ok := reg.Get(mint)
	require.True(t, ok)
	assert.Equal(t, 2, entry.PoolCount())
	assert.Len(t, entry.PumpPools, 1)
	assert.Len(t, entry.FutarchyPools, 1)
}

func TestInitializeUnknownMintProgramFatal(t *testing.T) {
	mint := solana.NewWallet().PublicKey()
	pumpAddr := solana.NewWallet().PublicKey()

	fetcher := &fakeFetcher{accounts: map[solana.PublicKey]*sol.AccountInfo{
		pumpAddr: pumpAccount(mint, sol.WSOL),
		// Mint owned by neither token program.
		mint: {Owner: solana.NewWallet().PublicKey(), Data: make([]byte, 82)},
	}}

	in := NewInitializer(fetcher, solana.NewWallet().PublicKey(), zap.NewNop())
	_, err := in.InitializeFromMarkets(context.Background(), []string{pumpAddr.String()})
	require.Error(t, err)
}
