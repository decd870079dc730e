package market

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/solstack-labs/poolagent/pkg/dex"
	"github.com/solstack-labs/poolagent/pkg/pool/futarchy"
	"github.com/solstack-labs/poolagent/pkg/pool/heaven"
	"github.com/solstack-labs/poolagent/pkg/pool/humidifi"
	"github.com/solstack-labs/poolagent/pkg/pool/meteora"
	"github.com/solstack-labs/poolagent/pkg/pool/orca"
	"github.com/solstack-labs/poolagent/pkg/pool/pump"
	"github.com/solstack-labs/poolagent/pkg/pool/raydium"
	"github.com/solstack-labs/poolagent/pkg/pool/vertigo"
	"github.com/solstack-labs/poolagent/pkg/registry"
	"github.com/solstack-labs/poolagent/pkg/sol"
)

// Fetcher is the account access the initializer and refresher need.
// *sol.Client satisfies it; tests plug in fakes.
type Fetcher interface {
	FetchAccount(ctx context.Context, address solana.PublicKey) (*sol.AccountInfo, error)
	FetchAccounts(ctx context.Context, addresses []solana.PublicKey) ([]*sol.AccountInfo, error)
}

// Initializer builds the mint registry from a configured market list.
type Initializer struct {
	fetcher Fetcher
	wallet  solana.PublicKey
	log     *zap.Logger
}

func NewInitializer(fetcher Fetcher, wallet solana.PublicKey, log *zap.Logger) *Initializer {
	return &Initializer{fetcher: fetcher, wallet: wallet, log: log}
}

// InitializeFromMarkets fetches every configured market account,
// detects its venue, decodes it, and groups the resulting pools by
// traded mint into registry entries. Bad addresses, absent accounts,
// unknown owners, undecodable payloads and anchorless pools are logged
// and skipped; the rest proceed.
func (in *Initializer) InitializeFromMarkets(ctx context.Context, markets []string) (*registry.Registry, error) {
	addresses := make([]solana.PublicKey, 0, len(markets))
	for _, m := range markets {
		addr, err := solana.PublicKeyFromBase58(m)
		if err != nil {
			in.log.Error("invalid market address, skipping", zap.String("market", m), zap.Error(err))
			continue
		}
		addresses = append(addresses, addr)
	}

	infos, err := in.fetcher.FetchAccounts(ctx, addresses)
	if err != nil {
		return nil, fmt.Errorf("fetch market accounts: %w", err)
	}

	byMint := make(map[solana.PublicKey][]dex.Pool)
	for i, info := range infos {
		addr := addresses[i]
		if info == nil {
			in.log.Warn("market account not found, skipping", zap.Stringer("market", addr))
			continue
		}
		pool, err := DecodePool(info.Owner, addr, info.Data)
		if err != nil {
			in.log.Warn("cannot register market, skipping",
				zap.Stringer("market", addr),
				zap.Stringer("owner", info.Owner),
				zap.Error(err))
			continue
		}
		mint, err := TradedMint(pool)
		if err != nil {
			in.log.Warn("pool has no anchor side, skipping",
				zap.Stringer("market", addr),
				zap.Error(err))
			continue
		}
		in.log.Info("discovered pool",
			zap.Stringer("pool", addr),
			zap.String("venue", string(pool.Kind())),
			zap.Stringer("mint", mint))
		byMint[mint] = append(byMint[mint], pool)
	}

	reg := registry.New()
	for mint, pools := range byMint {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		entry, err := in.buildEntry(ctx, mint, pools)
		if err != nil {
			return nil, fmt.Errorf("initialize mint %s: %w", mint, err)
		}
		reg.Put(entry)
	}
	return reg, nil
}

// buildEntry assembles one registry entry. Enrichment failures on the
// strict venues abort initialization; bucket derivation failures on
// the CLMM forks only drop the affected pool.
func (in *Initializer) buildEntry(ctx context.Context, mint solana.PublicKey, pools []dex.Pool) (*registry.Entry, error) {
	mintInfo, err := in.fetcher.FetchAccount(ctx, mint)
	if err != nil {
		return nil, fmt.Errorf("fetch mint account: %w", err)
	}
	if mintInfo == nil {
		return nil, fmt.Errorf("mint account %s not found", mint)
	}
	if mintInfo.Owner != sol.TokenProgram && mintInfo.Owner != sol.Token2022Program {
		return nil, fmt.Errorf("mint %s owned by unknown token program %s", mint, mintInfo.Owner)
	}

	walletToken, _, err := solana.FindAssociatedTokenAddress(in.wallet, mint)
	if err != nil {
		return nil, fmt.Errorf("derive wallet token account: %w", err)
	}
	walletWsol, _, err := solana.FindAssociatedTokenAddress(in.wallet, sol.WSOL)
	if err != nil {
		return nil, fmt.Errorf("derive wallet wsol account: %w", err)
	}

	entry := &registry.Entry{
		Mint:               mint,
		TokenProgram:       mintInfo.Owner,
		WalletTokenAccount: walletToken,
		WalletWsolAccount:  walletWsol,
	}

	for _, pool := range pools {
		switch p := pool.(type) {
		case *pump.Pool:
			if err := enrichPumpPool(p); err != nil {
				return nil, err
			}
			entry.PumpPools = append(entry.PumpPools, p)

		case *raydium.AmmPool:
			entry.RaydiumAmmPools = append(entry.RaydiumAmmPools, p)

		case *raydium.CpPool:
			entry.RaydiumCpPools = append(entry.RaydiumCpPools, p)

		case *raydium.ClmmPool:
			ext, err := raydium.DeriveBitmapExtension(p.Program, p.Address)
			if err == nil {
				p.BitmapExtension = ext
				p.TickArrays, err = p.LiquidityBuckets()
			}
			if err != nil {
				in.log.Warn("clmm bucket derivation failed, skipping pool",
					zap.Stringer("pool", p.Address), zap.Error(err))
				continue
			}
			switch p.Kind() {
			case dex.KindPancakeClmm:
				entry.PancakeClmmPools = append(entry.PancakeClmmPools, p)
			case dex.KindByrealClmm:
				entry.ByrealClmmPools = append(entry.ByrealClmmPools, p)
			default:
				entry.RaydiumClmmPools = append(entry.RaydiumClmmPools, p)
			}

		case *meteora.DlmmPool:
			p.BinArrays, err = p.LiquidityBuckets()
			if err != nil {
				return nil, fmt.Errorf("dlmm %s: %w", p.Address, err)
			}
			entry.DlmmPools = append(entry.DlmmPools, p)

		case *meteora.DammV2Pool:
			entry.DammV2Pools = append(entry.DammV2Pools, p)

		case *orca.WhirlpoolPool:
			p.Oracle, err = orca.DeriveOraclePDA(p.Address)
			if err == nil {
				p.TickArrays, err = p.LiquidityBuckets()
			}
			if err != nil {
				return nil, fmt.Errorf("whirlpool %s: %w", p.Address, err)
			}
			entry.WhirlpoolPools = append(entry.WhirlpoolPools, p)

		case *humidifi.Pool:
			entry.HumidifiPools = append(entry.HumidifiPools, p)

		case *futarchy.Pool:
			entry.FutarchyPools = append(entry.FutarchyPools, p)

		case *vertigo.Pool:
			entry.VertigoPools = append(entry.VertigoPools, p)

		case *heaven.Pool:
			entry.HeavenPools = append(entry.HeavenPools, p)

		default:
			in.log.Warn("no registration path for pool, skipping",
				zap.Stringer("pool", pool.PoolID()),
				zap.String("venue", string(pool.Kind())))
		}
	}
	return entry, nil
}

// enrichPumpPool fills the fee and creator-vault accounts every
// PumpSwap swap references.
func enrichPumpPool(p *pump.Pool) error {
	p.FeeWallet = p.SelectFeeWallet()
	feeTokenWallet, _, err := solana.FindAssociatedTokenAddress(p.FeeWallet, p.QuoteMint)
	if err != nil {
		return fmt.Errorf("pump %s fee token wallet: %w", p.Address, err)
	}
	p.FeeTokenWallet = feeTokenWallet

	authority, err := pump.DeriveCreatorVaultAuthority(p.CoinCreator)
	if err != nil {
		return fmt.Errorf("pump %s: %w", p.Address, err)
	}
	p.CoinCreatorVaultAuthority = authority
	if !authority.IsZero() {
		ata, _, err := solana.FindAssociatedTokenAddress(authority, p.QuoteMint)
		if err != nil {
			return fmt.Errorf("pump %s creator vault ata: %w", p.Address, err)
		}
		p.CoinCreatorVaultATA = ata
	}
	return nil
}
