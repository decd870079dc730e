package market

import (
	"errors"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solstack-labs/poolagent/pkg/dex"
	"github.com/solstack-labs/poolagent/pkg/dexerr"
	"github.com/solstack-labs/poolagent/pkg/pool/byreal"
	"github.com/solstack-labs/poolagent/pkg/pool/futarchy"
	"github.com/solstack-labs/poolagent/pkg/pool/heaven"
	"github.com/solstack-labs/poolagent/pkg/pool/humidifi"
	"github.com/solstack-labs/poolagent/pkg/pool/meteora"
	"github.com/solstack-labs/poolagent/pkg/pool/orca"
	"github.com/solstack-labs/poolagent/pkg/pool/pancake"
	"github.com/solstack-labs/poolagent/pkg/pool/pump"
	"github.com/solstack-labs/poolagent/pkg/pool/raydium"
	"github.com/solstack-labs/poolagent/pkg/pool/vertigo"
)

func TestDetectKind(t *testing.T) {
	cases := []struct {
		program solana.PublicKey
		want    dex.Kind
	}{
		{pump.ProgramID, dex.KindPumpSwap},
		{raydium.AmmProgramID, dex.KindRaydiumAmm},
		{raydium.CpmmProgramID, dex.KindRaydiumCpmm},
		{raydium.ClmmProgramID, dex.KindRaydiumClmm},
		{pancake.ProgramID, dex.KindPancakeClmm},
		{byreal.ProgramID, dex.KindByrealClmm},
		{meteora.DlmmProgramID, dex.KindMeteoraDlmm},
		{meteora.DammV2ProgramID, dex.KindMeteoraDammV2},
		{orca.WhirlpoolProgramID, dex.KindOrcaWhirlpool},
		{humidifi.ProgramID, dex.KindHumidifi},
		{futarchy.ProgramID, dex.KindFutarchy},
		{vertigo.ProgramID, dex.KindVertigo},
		{heaven.ProgramID, dex.KindHeaven},
	}
	for _, c := range cases {
		kind, ok := DetectKind(c.program)
		require.True(t, ok, "program %s", c.program)
		assert.Equal(t, c.want, kind)
	}

	_, ok := DetectKind(solana.NewWallet().PublicKey())
	assert.False(t, ok)
}

func TestDecodePoolUnknownVenue(t *testing.T) {
	_, err := DecodePool(solana.NewWallet().PublicKey(), solana.NewWallet().PublicKey(), make([]byte, 1024))
	require.Error(t, err)
	assert.True(t, errors.Is(err, dexerr.ErrUnknownVenue))
}
