package trade

import (
	"context"
	"crypto/rand"
	"testing"

	"cosmossdk.io/math"
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/solstack-labs/poolagent/pkg/pool/futarchy"
	"github.com/solstack-labs/poolagent/pkg/registry"
)

func testEntry() *registry.Entry {
	mint := solana.NewWallet().PublicKey()
	return &registry.Entry{
		Mint:               mint,
		WalletTokenAccount: solana.NewWallet().PublicKey(),
		WalletWsolAccount:  solana.NewWallet().PublicKey(),
		FutarchyPools: []*futarchy.Pool{{
			Address:  solana.NewWallet().PublicKey(),
			BaseMint: mint,
		}},
	}
}

func randomHash() solana.Hash {
	var h solana.Hash
	rand.Read(h[:])
	return h
}

func TestDispatchAccumulatesStats(t *testing.T) {
	e := NewExecutor(nil, math.NewInt(1_000_000), zap.NewNop())
	entry := testEntry()

	require.NoError(t, e.Dispatch(context.Background(), entry, randomHash()))
	require.NoError(t, e.Dispatch(context.Background(), entry, randomHash()))

	dispatched, notional := e.Stats()
	assert.Equal(t, 2, dispatched)
	assert.Equal(t, math.NewInt(2_000_000), notional)
}

func TestDispatchRejectsZeroBlockhash(t *testing.T) {
	e := NewExecutor(nil, math.NewInt(1), zap.NewNop())
	err := e.Dispatch(context.Background(), testEntry(), solana.Hash{})
	require.Error(t, err)

	dispatched, _ := e.Stats()
	assert.Equal(t, 0, dispatched)
}

func TestDispatchRejectsEmptyEntry(t *testing.T) {
	e := NewExecutor(nil, math.NewInt(1), zap.NewNop())
	entry := &registry.Entry{Mint: solana.NewWallet().PublicKey()}

	err := e.Dispatch(context.Background(), entry, randomHash())
	require.Error(t, err)
}
