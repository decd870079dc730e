// Package pancake carries the PancakeSwap Solana deployment constants.
// The pool accounts themselves use the Raydium CLMM layout.
package pancake

import "github.com/gagliardetto/solana-go"

var (
	ProgramID = solana.MustPublicKeyFromBase58("HpNfyc2Saw7RKkQd8nEL4khUcuPhQ7WwY1B2qjx8jxFq")
	Authority = solana.MustPublicKeyFromBase58("GThUX1Atko4tqhN2NaiTazWSeFWMuiUvfFnyJyUghFMJ")
)
