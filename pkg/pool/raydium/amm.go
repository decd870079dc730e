// Package raydium decodes the three Raydium pool layouts: the legacy
// AMM v4 market, the constant-product CPMM, and the concentrated
// liquidity CLMM. The CLMM layout and tick-array derivation are shared
// with other venues that forked the program.
package raydium

import (
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"

	"github.com/solstack-labs/poolagent/pkg/dex"
	"github.com/solstack-labs/poolagent/pkg/dexerr"
)

// AmmInfoSize is the fixed size of a Raydium AMM v4 pool account.
const AmmInfoSize = 752

type ammFees struct {
	MinSeparateNumerator   uint64
	MinSeparateDenominator uint64
	TradeFeeNumerator      uint64
	TradeFeeDenominator    uint64
	PnlNumerator           uint64
	PnlDenominator         uint64
	SwapFeeNumerator       uint64
	SwapFeeDenominator     uint64
}

type ammOutput struct {
	NeedTakePnlCoin      uint64
	NeedTakePnlPc        uint64
	TotalPnlPc           uint64
	TotalPnlCoin         uint64
	PoolTotalDepositPc   [2]uint64
	PoolTotalDepositCoin [2]uint64
	SwapCoinInAmount     [2]uint64
	SwapPcOutAmount      [2]uint64
	SwapCoin2PcFee       uint64
	SwapPcInAmount       [2]uint64
	SwapCoinOutAmount    [2]uint64
	SwapPc2CoinFee       uint64
}

// ammInfo is the on-chain AMM v4 account. The account has no
// discriminator; the whole 752 bytes are one packed struct.
type ammInfo struct {
	Status             uint64
	Nonce              uint64
	OrderNum           uint64
	Depth              uint64
	CoinDecimals       uint64
	PcDecimals         uint64
	State              uint64
	ResetFlag          uint64
	MinSize            uint64
	VolMaxCutRatio     uint64
	AmountWave         uint64
	CoinLotSize        uint64
	PcLotSize          uint64
	MinPriceMultiplier uint64
	MaxPriceMultiplier uint64
	SysDecimalValue    uint64
	Fees               ammFees
	Output             ammOutput
	TokenCoin          solana.PublicKey
	TokenPc            solana.PublicKey
	CoinMint           solana.PublicKey
	PcMint             solana.PublicKey
	LpMint             solana.PublicKey
	OpenOrders         solana.PublicKey
	Market             solana.PublicKey
	SerumDex           solana.PublicKey
	TargetOrders       solana.PublicKey
	WithdrawQueue      solana.PublicKey
	TokenTempLp        solana.PublicKey
	AmmOwner           solana.PublicKey
	PnlOwner           solana.PublicKey
}

// AmmPool is a decoded Raydium AMM v4 pool.
type AmmPool struct {
	Address   solana.PublicKey
	CoinMint  solana.PublicKey
	PcMint    solana.PublicKey
	CoinVault solana.PublicKey
	PcVault   solana.PublicKey
}

func (p *AmmPool) Kind() dex.Kind           { return dex.KindRaydiumAmm }
func (p *AmmPool) PoolID() solana.PublicKey { return p.Address }
func (p *AmmPool) Mints() (solana.PublicKey, solana.PublicKey) {
	return p.CoinMint, p.PcMint
}

// DecodeAmm parses an AMM v4 pool account.
func DecodeAmm(address solana.PublicKey, data []byte) (*AmmPool, error) {
	if len(data) < AmmInfoSize {
		return nil, dexerr.Truncated("raydium_amm", AmmInfoSize, len(data))
	}
	var info ammInfo
	if err := bin.NewBinDecoder(data).Decode(&info); err != nil {
		return nil, fmt.Errorf("raydium_amm %s: %v: %w", address, err, dexerr.ErrInvalidLayout)
	}
	return &AmmPool{
		Address:   address,
		CoinMint:  info.CoinMint,
		PcMint:    info.PcMint,
		CoinVault: info.TokenCoin,
		PcVault:   info.TokenPc,
	}, nil
}
