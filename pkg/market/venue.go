// Package market turns raw market account addresses into a registry of
// decoded pools grouped by traded mint, and keeps the derived bucket
// state of registered pools fresh.
package market

import (
	"github.com/gagliardetto/solana-go"

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

// Venue binds an owner program to its pool decoder. Adding a venue
// means adding one table row; nothing else in the pipeline changes.
type Venue struct {
	Kind    dex.Kind
	Program solana.PublicKey
	Decode  func(address solana.PublicKey, data []byte) (dex.Pool, error)
}

var venueTable = buildVenueTable()

func buildVenueTable() map[solana.PublicKey]Venue {
	vs := []Venue{
		{
			Kind:    dex.KindPumpSwap,
			Program: pump.ProgramID,
			Decode: func(addr solana.PublicKey, data []byte) (dex.Pool, error) {
				return pump.Decode(addr, data)
			},
		},
		{
			Kind:    dex.KindRaydiumAmm,
			Program: raydium.AmmProgramID,
			Decode: func(addr solana.PublicKey, data []byte) (dex.Pool, error) {
				return raydium.DecodeAmm(addr, data)
			},
		},
		{
			Kind:    dex.KindRaydiumCpmm,
			Program: raydium.CpmmProgramID,
			Decode: func(addr solana.PublicKey, data []byte) (dex.Pool, error) {
				return raydium.DecodeCpmm(addr, data)
			},
		},
		{
			Kind:    dex.KindRaydiumClmm,
			Program: raydium.ClmmProgramID,
			Decode: func(addr solana.PublicKey, data []byte) (dex.Pool, error) {
				return raydium.DecodeClmm(dex.KindRaydiumClmm, raydium.ClmmProgramID, addr, data)
			},
		},
		{
			Kind:    dex.KindPancakeClmm,
			Program: pancake.ProgramID,
			Decode: func(addr solana.PublicKey, data []byte) (dex.Pool, error) {
				return raydium.DecodeClmm(dex.KindPancakeClmm, pancake.ProgramID, addr, data)
			},
		},
		{
			Kind:    dex.KindByrealClmm,
			Program: byreal.ProgramID,
			Decode: func(addr solana.PublicKey, data []byte) (dex.Pool, error) {
				return raydium.DecodeClmm(dex.KindByrealClmm, byreal.ProgramID, addr, data)
			},
		},
		{
			Kind:    dex.KindMeteoraDlmm,
			Program: meteora.DlmmProgramID,
			Decode: func(addr solana.PublicKey, data []byte) (dex.Pool, error) {
				return meteora.DecodeDlmm(addr, data)
			},
		},
		{
			Kind:    dex.KindMeteoraDammV2,
			Program: meteora.DammV2ProgramID,
			Decode: func(addr solana.PublicKey, data []byte) (dex.Pool, error) {
				return meteora.DecodeDammV2(addr, data)
			},
		},
		{
			Kind:    dex.KindOrcaWhirlpool,
			Program: orca.WhirlpoolProgramID,
			Decode: func(addr solana.PublicKey, data []byte) (dex.Pool, error) {
				return orca.Decode(addr, data)
			},
		},
		{
			Kind:    dex.KindHumidifi,
			Program: humidifi.ProgramID,
			Decode: func(addr solana.PublicKey, data []byte) (dex.Pool, error) {
				return humidifi.Decode(addr, data)
			},
		},
		{
			Kind:    dex.KindFutarchy,
			Program: futarchy.ProgramID,
			Decode: func(addr solana.PublicKey, data []byte) (dex.Pool, error) {
				return futarchy.Decode(addr, data)
			},
		},
		{
			Kind:    dex.KindVertigo,
			Program: vertigo.ProgramID,
			Decode: func(addr solana.PublicKey, data []byte) (dex.Pool, error) {
				return vertigo.Decode(addr, data)
			},
		},
		{
			Kind:    dex.KindHeaven,
			Program: heaven.ProgramID,
			Decode: func(addr solana.PublicKey, data []byte) (dex.Pool, error) {
				return heaven.Decode(addr, data)
			},
		},
	}
	table := make(map[solana.PublicKey]Venue, len(vs))
	for _, v := range vs {
		table[v.Program] = v
	}
	return table
}

// DetectKind maps an account owner to a venue kind.
func DetectKind(owner solana.PublicKey) (dex.Kind, bool) {
	v, ok := venueTable[owner]
	return v.Kind, ok
}

// DecodePool decodes a pool account by its owner program.
func DecodePool(owner, address solana.PublicKey, data []byte) (dex.Pool, error) {
	v, ok := venueTable[owner]
	if !ok {
		return nil, dexerr.UnknownVenue(owner)
	}
	return v.Decode(address, data)
}
