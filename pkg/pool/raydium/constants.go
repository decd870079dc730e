package raydium

import "github.com/gagliardetto/solana-go"

// Program IDs
var (
	AmmProgramID  = solana.MustPublicKeyFromBase58("675kPX9MHTjS2zt1qfr1NYHuzeLXfQM9H24wFSUt1Mp8")
	CpmmProgramID = solana.MustPublicKeyFromBase58("CPMMoo8L3F4NbTegBCKVNunggL7H1ZpdTHKxQB5qKP1C")
	ClmmProgramID = solana.MustPublicKeyFromBase58("CAMMCzo5YL8w4VFF8KVHrK22GGUsp5VTaW7grrKgrWqK")
)

// Tick array configuration for the CLMM layout family.
const (
	TickArraySize = 60

	TickArraySeed          = "tick_array"
	TickArrayBitmapExtSeed = "pool_tick_array_bitmap_extension"
	VaultAndLpMintAuthSeed = "vault_and_lp_mint_auth_seed"
)
