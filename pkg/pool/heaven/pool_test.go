package heaven

import (
	"errors"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solstack-labs/poolagent/pkg/dex"
	"github.com/solstack-labs/poolagent/pkg/dexerr"
)

func TestDecode(t *testing.T) {
	config := solana.NewWallet().PublicKey()
	baseMint := solana.NewWallet().PublicKey()
	quoteMint := solana.NewWallet().PublicKey()
	baseVault := solana.NewWallet().PublicKey()
	quoteVault := solana.NewWallet().PublicKey()

	data := make([]byte, 300)
	copy(data[offProtocolConfig:], config.Bytes())
	copy(data[offBaseMint:], baseMint.Bytes())
	copy(data[offQuoteMint:], quoteMint.Bytes())
	copy(data[offBaseVault:], baseVault.Bytes())
	copy(data[offQuoteVault:], quoteVault.Bytes())
	copy(data[offTokenProgram:], solana.TokenProgramID.Bytes())

	addr := solana.NewWallet().PublicKey()
	p, err := Decode(addr, data)
	require.NoError(t, err)
	assert.Equal(t, dex.KindHeaven, p.Kind())
	assert.Equal(t, addr, p.PoolID())
	assert.Equal(t, config, p.ProtocolConfig)
	assert.Equal(t, baseMint, p.BaseMint)
	assert.Equal(t, quoteMint, p.QuoteMint)
	assert.Equal(t, baseVault, p.BaseVault)
	assert.Equal(t, quoteVault, p.QuoteVault)
	assert.Equal(t, solana.TokenProgramID, p.TokenProgram)
}

func TestDecodeTruncated(t *testing.T) {
	_, err := Decode(solana.NewWallet().PublicKey(), make([]byte, 200))
	require.Error(t, err)
	assert.True(t, errors.Is(err, dexerr.ErrTruncatedData))
}
