// Package humidifi decodes Humidifi pool accounts. The program stores
// its pool pubkeys XORed against fixed keys; the keys are public and
// the transform is self-inverse.
package humidifi

import (
	"encoding/binary"

	"github.com/gagliardetto/solana-go"

	"github.com/solstack-labs/poolagent/pkg/dex"
	"github.com/solstack-labs/poolagent/pkg/layout"
)

var ProgramID = solana.MustPublicKeyFromBase58("9H6tua7jkLhdm3w8BvgpTn5LZNU7g4ZynDmCiNN3q6Rp")

// xorKeys obfuscate each pubkey as four little-endian 64-bit words.
var xorKeys = [4]uint64{
	0xfb5ce87aae443c38,
	0x04a2178451bac3c7,
	0x04a1178751b9c3c6,
	0x04a0178651b8c3c5,
}

// Obfuscated pubkey offsets within the account.
const (
	offQuoteMint  = 0x180
	offBaseMint   = 0x1a0
	offQuoteVault = 0x1c0
	offBaseVault  = 0x1e0
)

var poolSpec = layout.NewSpec("humidifi",
	layout.Field{Name: "quote_mint", Off: offQuoteMint, Size: 32},
	layout.Field{Name: "base_mint", Off: offBaseMint, Size: 32},
	layout.Field{Name: "quote_vault", Off: offQuoteVault, Size: 32},
	layout.Field{Name: "base_vault", Off: offBaseVault, Size: 32},
)

// Pool is a decoded Humidifi pool.
type Pool struct {
	Address    solana.PublicKey
	BaseMint   solana.PublicKey
	QuoteMint  solana.PublicKey
	BaseVault  solana.PublicKey
	QuoteVault solana.PublicKey
}

func (p *Pool) Kind() dex.Kind           { return dex.KindHumidifi }
func (p *Pool) PoolID() solana.PublicKey { return p.Address }
func (p *Pool) Mints() (solana.PublicKey, solana.PublicKey) {
	return p.BaseMint, p.QuoteMint
}

// DeobfuscateKey applies the XOR keys to a 32-byte field. Applying it
// twice returns the input.
func DeobfuscateKey(raw []byte) solana.PublicKey {
	var out [32]byte
	for i, key := range xorKeys {
		word := binary.LittleEndian.Uint64(raw[i*8:]) ^ key
		binary.LittleEndian.PutUint64(out[i*8:], word)
	}
	return solana.PublicKeyFromBytes(out[:])
}

// Decode parses a Humidifi pool account, deobfuscating the embedded
// pubkeys.
func Decode(address solana.PublicKey, data []byte) (*Pool, error) {
	if err := poolSpec.Check(data); err != nil {
		return nil, err
	}
	return &Pool{
		Address:    address,
		BaseMint:   DeobfuscateKey(data[offBaseMint : offBaseMint+32]),
		QuoteMint:  DeobfuscateKey(data[offQuoteMint : offQuoteMint+32]),
		BaseVault:  DeobfuscateKey(data[offBaseVault : offBaseVault+32]),
		QuoteVault: DeobfuscateKey(data[offQuoteVault : offQuoteVault+32]),
	}, nil
}
