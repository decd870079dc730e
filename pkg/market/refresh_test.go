package market

import (
	"context"
	"encoding/binary"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/solstack-labs/poolagent/pkg/pool/raydium"
	"github.com/solstack-labs/poolagent/pkg/registry"
	"github.com/solstack-labs/poolagent/pkg/sol"
)

// CLMM PoolState offsets for synthetic refresh payloads.
const (
	clmmTickSpacingOff = 235
	clmmTickCurrentOff = 269
	clmmAccountLen     = 1032
)

func clmmAccount(mint0, mint1 solana.PublicKey, tickSpacing uint16, tickCurrent int32) *sol.AccountInfo {
	data := make([]byte, clmmAccountLen)
	copy(data[73:], mint0.Bytes())
	copy(data[105:], mint1.Bytes())
	binary.LittleEndian.PutUint16(data[clmmTickSpacingOff:], tickSpacing)
	binary.LittleEndian.PutUint32(data[clmmTickCurrentOff:], uint32(tickCurrent))
	return &sol.AccountInfo{Owner: raydium.ClmmProgramID, Data: data}
}

func newClmmEntry(t *testing.T, addr solana.PublicKey, info *sol.AccountInfo) *registry.Entry {
	t.Helper()
	pool, err := DecodePool(info.Owner, addr, info.Data)
	require.NoError(t, err)
	clmm, ok := pool.(*raydium.ClmmPool)
	require.True(t, ok)
	clmm.TickArrays, err = clmm.LiquidityBuckets()
	require.NoError(t, err)
	return &registry.Entry{
		Mint:             clmm.TokenMint1,
		RaydiumClmmPools: []*raydium.ClmmPool{clmm},
	}
}

func TestRefreshRecomputesTickArrays(t *testing.T) {
	mint := solana.NewWallet().PublicKey()
	addr := solana.NewWallet().PublicKey()

	entry := newClmmEntry(t, addr, clmmAccount(sol.WSOL, mint, 10, 0))
	before := append([]solana.PublicKey(nil), entry.RaydiumClmmPools[0].TickArrays...)

	// The pool moved far enough to land in a different tick array.
	fetcher := &fakeFetcher{accounts: map[solana.PublicKey]*sol.AccountInfo{
		addr: clmmAccount(sol.WSOL, mint, 10, 1800),
	}}
	NewRefresher(fetcher, zap.NewNop()).RefreshEntry(context.Background(), entry)

	p := entry.RaydiumClmmPools[0]
	assert.Equal(t, int32(1800), p.TickCurrent)
	assert.Len(t, p.TickArrays, 3)
	assert.NotEqual(t, before, p.TickArrays)
}

func TestRefreshKeepsStaleArraysOnFetchFailure(t *testing.T) {
	mint := solana.NewWallet().PublicKey()
	addr := solana.NewWallet().PublicKey()

	entry := newClmmEntry(t, addr, clmmAccount(sol.WSOL, mint, 10, 1800))
	before := append([]solana.PublicKey(nil), entry.RaydiumClmmPools[0].TickArrays...)

	// The account vanished from the fetcher's view.
	fetcher := &fakeFetcher{accounts: map[solana.PublicKey]*sol.AccountInfo{}}
	NewRefresher(fetcher, zap.NewNop()).RefreshEntry(context.Background(), entry)

	p := entry.RaydiumClmmPools[0]
	assert.Equal(t, before, p.TickArrays)
	assert.Equal(t, int32(1800), p.TickCurrent)
}

func TestRefreshKeepsStaleArraysOnDecodeFailure(t *testing.T) {
	mint := solana.NewWallet().PublicKey()
	addr := solana.NewWallet().PublicKey()

	entry := newClmmEntry(t, addr, clmmAccount(sol.WSOL, mint, 10, 0))
	before := append([]solana.PublicKey(nil), entry.RaydiumClmmPools[0].TickArrays...)

	// Truncated payload fails the layout check.
	fetcher := &fakeFetcher{accounts: map[solana.PublicKey]*sol.AccountInfo{
		addr: {Owner: raydium.ClmmProgramID, Data: make([]byte, 100)},
	}}
	NewRefresher(fetcher, zap.NewNop()).RefreshEntry(context.Background(), entry)

	assert.Equal(t, before, entry.RaydiumClmmPools[0].TickArrays)
}
