package sol

import "github.com/gagliardetto/solana-go"

// Anchor assets. Pools are registered under the mint of their non-anchor
// side; WSOL is the universal anchor, USDC and USD1 are accepted by a
// subset of venues.
var (
	WSOL = solana.MustPublicKeyFromBase58("So11111111111111111111111111111111111111112")
	USDC = solana.MustPublicKeyFromBase58("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v")
	USD1 = solana.MustPublicKeyFromBase58("USD1ttGY1N17NEEHLmELoaybftRBUSErhqYiQzvEmuB")

	NativeSOL = solana.MustPublicKeyFromBase58("11111111111111111111111111111111")

	TokenProgram     = solana.TokenProgramID
	Token2022Program = solana.MustPublicKeyFromBase58("TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb")

	// Shared address lookup table preloaded alongside any configured ones.
	DefaultLookupTable = solana.MustPublicKeyFromBase58("4sKLJ1Qoudh8PJyqBeuKocYdsZvxTcRShUt9aKqwhgvC")

	TokenAccountSize = uint64(165)
)
