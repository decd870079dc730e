// Package layout provides fixed-offset readers for raw Solana account
// data together with a declarative length check. Most venue layouts are
// not clean packed structs (padding, reserved regions, obfuscated
// fields), so decoders declare the fields they touch and read them at
// explicit offsets after a single validation pass.
package layout

import (
	"encoding/binary"

	"github.com/gagliardetto/solana-go"
	"lukechampine.com/uint128"

	"github.com/solstack-labs/poolagent/pkg/dexerr"
)

// Field names one value a decoder reads out of the account payload.
type Field struct {
	Name string
	Off  int
	Size int
}

// Spec is the set of fields one venue decoder depends on. The minimum
// payload length is the end of the furthest field.
type Spec struct {
	Venue  string
	MinLen int
	fields []Field
}

// NewSpec builds a Spec and computes its minimum payload length.
func NewSpec(venue string, fields ...Field) Spec {
	s := Spec{Venue: venue, fields: fields}
	for _, f := range fields {
		if end := f.Off + f.Size; end > s.MinLen {
			s.MinLen = end
		}
	}
	return s
}

// Check validates that data is long enough for every declared field.
func (s Spec) Check(data []byte) error {
	if len(data) < s.MinLen {
		return dexerr.Truncated(s.Venue, s.MinLen, len(data))
	}
	return nil
}

// Fields returns the declared fields, mostly for tests and diagnostics.
func (s Spec) Fields() []Field { return s.fields }

// The readers below assume Spec.Check already passed for the offsets
// in use. All integers are little-endian on chain.

func PublicKey(data []byte, off int) solana.PublicKey {
	return solana.PublicKeyFromBytes(data[off : off+32])
}

func U8(data []byte, off int) uint8 {
	return data[off]
}

func Bool(data []byte, off int) bool {
	return data[off] != 0
}

func U16(data []byte, off int) uint16 {
	return binary.LittleEndian.Uint16(data[off : off+2])
}

func U32(data []byte, off int) uint32 {
	return binary.LittleEndian.Uint32(data[off : off+4])
}

func I32(data []byte, off int) int32 {
	return int32(binary.LittleEndian.Uint32(data[off : off+4]))
}

func U64(data []byte, off int) uint64 {
	return binary.LittleEndian.Uint64(data[off : off+8])
}

func U128(data []byte, off int) uint128.Uint128 {
	return uint128.FromBytes(data[off : off+16])
}
