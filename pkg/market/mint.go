package market

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/solstack-labs/poolagent/pkg/dex"
	"github.com/solstack-labs/poolagent/pkg/dexerr"
	"github.com/solstack-labs/poolagent/pkg/sol"
)

// anchorsFor returns the anchor assets a venue quotes against. Every
// venue accepts WSOL; Heaven additionally quotes against USDC.
func anchorsFor(kind dex.Kind) []solana.PublicKey {
	if kind == dex.KindHeaven {
		return []solana.PublicKey{sol.WSOL, sol.USDC}
	}
	return []solana.PublicKey{sol.WSOL}
}

func isAnchor(mint solana.PublicKey, anchors []solana.PublicKey) bool {
	for _, a := range anchors {
		if mint.Equals(a) {
			return true
		}
	}
	return false
}

// TradedMint returns the non-anchor side of a pool. Pools where neither
// side is an anchor asset cannot be registered.
func TradedMint(p dex.Pool) (solana.PublicKey, error) {
	base, quote := p.Mints()
	anchors := anchorsFor(p.Kind())
	if isAnchor(quote, anchors) {
		return base, nil
	}
	if isAnchor(base, anchors) {
		return quote, nil
	}
	return solana.PublicKey{}, fmt.Errorf("pool %s (%s/%s): %w", p.PoolID(), base, quote, dexerr.ErrAnchorAssetAbsent)
}
