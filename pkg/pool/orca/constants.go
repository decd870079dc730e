package orca

import "github.com/gagliardetto/solana-go"

var (
	WhirlpoolProgramID = solana.MustPublicKeyFromBase58("whirLbMiicVdio4qvUfM5KAg6Ct8VwpYzGff3uctyCc")
)

const (
	// TickArraySize is the tick count per Whirlpool tick array (the
	// Raydium CLMM family uses 60 instead).
	TickArraySize = 88

	TickArraySeed = "tick_array"
	OracleSeed    = "oracle"
)
