package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"cosmossdk.io/math"
	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/solstack-labs/poolagent/pkg/bot"
	"github.com/solstack-labs/poolagent/pkg/config"
	"github.com/solstack-labs/poolagent/pkg/market"
	"github.com/solstack-labs/poolagent/pkg/sol"
	"github.com/solstack-labs/poolagent/pkg/trade"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := sol.NewClient(ctx, cfg.RpcURL, cfg.WsURL, cfg.RpcRequestsPerSecond)
	if err != nil {
		logger.Fatal("create solana client", zap.Error(err))
	}
	defer client.Close()

	wallet := cfg.PrivateKey.PublicKey()
	logger.Info("starting", zap.Stringer("wallet", wallet), zap.Int("markets", len(cfg.Markets)))

	// Discover pools and group them by traded mint.
	initializer := market.NewInitializer(client, wallet, logger)
	reg, err := initializer.InitializeFromMarkets(ctx, cfg.Markets)
	if err != nil {
		logger.Fatal("initialize markets", zap.Error(err))
	}
	if reg.Len() == 0 {
		logger.Fatal("no pools registered, nothing to do")
	}
	logger.Info("registry initialized", zap.Int("mints", reg.Len()))

	// Make sure the wallet can hold WSOL and every traded mint.
	if _, _, err := client.EnsureAssociatedTokenAccount(ctx, cfg.PrivateKey, sol.WSOL); err != nil {
		logger.Fatal("ensure wsol account", zap.Error(err))
	}
	if cfg.WrapSolLamports > 0 {
		if err := client.WrapSol(ctx, cfg.PrivateKey, cfg.WrapSolLamports); err != nil {
			logger.Fatal("wrap sol", zap.Uint64("lamports", cfg.WrapSolLamports), zap.Error(err))
		}
		logger.Info("wrapped sol", zap.Uint64("lamports", cfg.WrapSolLamports))
	}
	for _, mint := range reg.Mints() {
		if _, err := client.ResolveTokenProgram(ctx, mint); err != nil {
			logger.Fatal("resolve token program", zap.Stringer("mint", mint), zap.Error(err))
		}
		if _, created, err := client.EnsureAssociatedTokenAccount(ctx, cfg.PrivateKey, mint); err != nil {
			logger.Fatal("ensure token account", zap.Stringer("mint", mint), zap.Error(err))
		} else if created {
			logger.Info("created token account", zap.Stringer("mint", mint))
		}
	}

	// Preload address lookup tables; individual failures are tolerable.
	tableAddrs := append([]solana.PublicKey{sol.DefaultLookupTable}, cfg.LookupTables...)
	tables, failed, err := client.LoadLookupTables(ctx, tableAddrs)
	if err != nil {
		logger.Fatal("load lookup tables", zap.Error(err))
	}
	for addr, ferr := range failed {
		logger.Warn("lookup table skipped", zap.Stringer("table", addr), zap.Error(ferr))
	}
	if len(tables) == 0 {
		logger.Warn("no lookup tables loaded, transactions will not be compressed")
	}
	logger.Info("lookup tables loaded", zap.Int("tables", len(tables)))

	refresher := market.NewRefresher(client, logger)
	executor := trade.NewExecutor(nil, math.NewInt(cfg.AmountIn), logger)

	b := bot.New(reg, executor, refresher, client, bot.Config{
		ProcessDelay:     cfg.ProcessDelay,
		BlockhashRefresh: cfg.BlockhashRefresh,
		RefreshEvery:     cfg.RefreshEvery,
	}, logger)

	if err := b.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Fatal("bot stopped", zap.Error(err))
	}

	if cfg.WrapSolLamports > 0 {
		// The run context is already cancelled at this point.
		if err := client.UnwrapSol(context.Background(), cfg.PrivateKey); err != nil {
			logger.Warn("unwrap sol", zap.Error(err))
		}
	}

	dispatched, notional := executor.Stats()
	logger.Info("shutdown complete",
		zap.Int("dispatched", dispatched),
		zap.String("notional", notional.String()))
}
