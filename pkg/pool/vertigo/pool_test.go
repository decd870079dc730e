package vertigo

import (
	"errors"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solstack-labs/poolagent/pkg/dex"
	"github.com/solstack-labs/poolagent/pkg/dexerr"
)

func TestDecodeDerivesVaults(t *testing.T) {
	owner := solana.NewWallet().PublicKey()
	mintA := solana.NewWallet().PublicKey()
	mintB := solana.NewWallet().PublicKey()

	data := make([]byte, 128)
	copy(data[offOwner:], owner.Bytes())
	copy(data[offMintA:], mintA.Bytes())
	copy(data[offMintB:], mintB.Bytes())

	addr := solana.NewWallet().PublicKey()
	p, err := Decode(addr, data)
	require.NoError(t, err)
	assert.Equal(t, dex.KindVertigo, p.Kind())
	assert.Equal(t, owner, p.Owner)
	assert.Equal(t, mintA, p.MintA)
	assert.Equal(t, mintB, p.MintB)

	// Vaults are the pool's ATAs for each mint.
	wantA, _, err := solana.FindAssociatedTokenAddress(addr, mintA)
	require.NoError(t, err)
	wantB, _, err := solana.FindAssociatedTokenAddress(addr, mintB)
	require.NoError(t, err)
	assert.Equal(t, wantA, p.VaultA)
	assert.Equal(t, wantB, p.VaultB)
}

func TestDecodeTruncated(t *testing.T) {
	_, err := Decode(solana.NewWallet().PublicKey(), make([]byte, offMintB+16))
	require.Error(t, err)
	assert.True(t, errors.Is(err, dexerr.ErrTruncatedData))
}
