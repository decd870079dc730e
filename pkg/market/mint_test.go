package market

import (
	"errors"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solstack-labs/poolagent/pkg/dexerr"
	"github.com/solstack-labs/poolagent/pkg/pool/heaven"
	"github.com/solstack-labs/poolagent/pkg/pool/humidifi"
	"github.com/solstack-labs/poolagent/pkg/pool/pump"
	"github.com/solstack-labs/poolagent/pkg/sol"
)

func TestTradedMintQuoteAnchor(t *testing.T) {
	token := solana.NewWallet().PublicKey()
	p := &pump.Pool{BaseMint: token, QuoteMint: sol.WSOL}

	mint, err := TradedMint(p)
	require.NoError(t, err)
	assert.Equal(t, token, mint)
}

func TestTradedMintBaseAnchor(t *testing.T) {
	token := solana.NewWallet().PublicKey()
	p := &pump.Pool{BaseMint: sol.WSOL, QuoteMint: token}

	mint, err := TradedMint(p)
	require.NoError(t, err)
	assert.Equal(t, token, mint)
}

func TestTradedMintNoAnchor(t *testing.T) {
	p := &pump.Pool{
		BaseMint:  solana.NewWallet().PublicKey(),
		QuoteMint: solana.NewWallet().PublicKey(),
	}

	_, err := TradedMint(p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, dexerr.ErrAnchorAssetAbsent))
}

func TestTradedMintHeavenAcceptsUSDC(t *testing.T) {
	token := solana.NewWallet().PublicKey()

	mint, err := TradedMint(&heaven.Pool{BaseMint: token, QuoteMint: sol.USDC})
	require.NoError(t, err)
	assert.Equal(t, token, mint)

	// USDC is not an anchor for other venues.
	_, err = TradedMint(&humidifi.Pool{BaseMint: token, QuoteMint: sol.USDC})
	require.Error(t, err)
	assert.True(t, errors.Is(err, dexerr.ErrAnchorAssetAbsent))
}
