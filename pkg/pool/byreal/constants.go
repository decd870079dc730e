// Package byreal carries the Byreal deployment constants. Byreal is a
// Raydium CLMM fork and shares its pool layout and authority.
package byreal

import "github.com/gagliardetto/solana-go"

var (
	ProgramID = solana.MustPublicKeyFromBase58("REALQqNEomY6cQGZJUGwywTBD2UmDT32rZcNnfxQ5N2")
	Authority = solana.MustPublicKeyFromBase58("GThUX1Atko4tqhN2NaiTazWSeFWMuiUvfFnyJyUghFMJ")
)
