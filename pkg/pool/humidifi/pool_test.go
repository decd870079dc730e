package humidifi

import (
	"errors"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solstack-labs/poolagent/pkg/dex"
	"github.com/solstack-labs/poolagent/pkg/dexerr"
)

func TestDeobfuscateRoundTrip(t *testing.T) {
	key := solana.NewWallet().PublicKey()

	obfuscated := DeobfuscateKey(key.Bytes())
	recovered := DeobfuscateKey(obfuscated.Bytes())

	assert.NotEqual(t, key, obfuscated)
	assert.Equal(t, key, recovered)
}

func buildAccount(baseMint, quoteMint, baseVault, quoteVault solana.PublicKey) []byte {
	data := make([]byte, poolSpec.MinLen)
	// The account stores the obfuscated form; the transform is its own
	// inverse, so obfuscating here means Decode recovers the plain keys.
	copy(data[offBaseMint:], DeobfuscateKey(baseMint.Bytes()).Bytes())
	copy(data[offQuoteMint:], DeobfuscateKey(quoteMint.Bytes()).Bytes())
	copy(data[offBaseVault:], DeobfuscateKey(baseVault.Bytes()).Bytes())
	copy(data[offQuoteVault:], DeobfuscateKey(quoteVault.Bytes()).Bytes())
	return data
}

func TestDecode(t *testing.T) {
	pool := solana.NewWallet().PublicKey()
	baseMint := solana.NewWallet().PublicKey()
	quoteMint := solana.MustPublicKeyFromBase58("So11111111111111111111111111111111111111112")
	baseVault := solana.NewWallet().PublicKey()
	quoteVault := solana.NewWallet().PublicKey()

	p, err := Decode(pool, buildAccount(baseMint, quoteMint, baseVault, quoteVault))
	require.NoError(t, err)

	assert.Equal(t, dex.KindHumidifi, p.Kind())
	assert.Equal(t, pool, p.PoolID())
	assert.Equal(t, baseMint, p.BaseMint)
	assert.Equal(t, quoteMint, p.QuoteMint)
	assert.Equal(t, baseVault, p.BaseVault)
	assert.Equal(t, quoteVault, p.QuoteVault)

	base, quote := p.Mints()
	assert.Equal(t, baseMint, base)
	assert.Equal(t, quoteMint, quote)
}

func TestDecodeTruncated(t *testing.T) {
	_, err := Decode(solana.NewWallet().PublicKey(), make([]byte, poolSpec.MinLen-1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, dexerr.ErrTruncatedData))
}
