package pump

import (
	"cosmossdk.io/math"
	"github.com/gagliardetto/solana-go"
)

var (
	ProgramID         = solana.MustPublicKeyFromBase58("pAMMBay6oceH9fJKBRHGP5D4bD4sWpmSwMn52FMfXEA")
	GlobalConfig      = solana.MustPublicKeyFromBase58("ADyA8hdefvWN2dbGGWFotbzWxrAvLW83WG6QCVXvJKqw")
	ProtocolFeeWallet = solana.MustPublicKeyFromBase58("JCRGumoE9Qi5BBgULTgdgTLjSgkCMSbF62ZZfGs84JeU")
	MayhemFeeWallet   = solana.MustPublicKeyFromBase58("GesfTA3X2arioaHp8bbKdjG9vJtskViWACZoYvxp4twS")
)

// creatorVaultSeed prefixes the PDA holding creator fee proceeds.
const creatorVaultSeed = "creator_vault"

var (
	BaseDecimalInt = 1000000000                   // 1*10^9
	BaseDecimal    = math.NewIntWithDecimal(1, 9) // 1*10^9
)
