package meteora

import "github.com/gagliardetto/solana-go"

var (
	// DlmmProgramID is the Meteora DLMM (LB pair) program.
	DlmmProgramID = solana.MustPublicKeyFromBase58("LBUZKhRxPF3XUpBCjp4YzTKgLccjZhTSDM9YuVaPwxo")

	// DammV2ProgramID is the Meteora DAMM v2 (cp-amm) program.
	DammV2ProgramID = solana.MustPublicKeyFromBase58("cpamdpZCGKUy5JxQXB4dcpGPiikHawvSWAd6mEn1sGG")

	// MemoProgramID accompanies DLMM swaps on transfer-hook tokens.
	MemoProgramID = solana.MustPublicKeyFromBase58("MemoSq4gqABAXKb96qnH8TysNcWxMyWCqXgDLGmfcHr")
)

const (
	// MaxBinPerArray is the number of bins in one bin array account.
	MaxBinPerArray = 70

	BinArraySeed       = "bin_array"
	BinArrayBitmapSeed = "bitmap"
	EventAuthoritySeed = "__event_authority"
)
