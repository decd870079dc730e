// Package config loads the agent configuration from the environment,
// reading a .env file first when one is present.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/joho/godotenv"
)

// Config is the full runtime configuration.
type Config struct {
	RpcURL string
	WsURL  string
	// RpcRequestsPerSecond throttles all RPC traffic; zero disables.
	RpcRequestsPerSecond int

	PrivateKey solana.PrivateKey

	// Markets are the pool account addresses to initialize from.
	// Validation happens later so one bad address never blocks the rest.
	Markets []string

	// LookupTables are preloaded at startup alongside the default one.
	LookupTables []solana.PublicKey

	ProcessDelay     time.Duration
	BlockhashRefresh time.Duration
	RefreshEvery     int

	// AmountIn is the per-dispatch anchor amount in lamports.
	AmountIn int64

	// WrapSolLamports is wrapped into WSOL at startup and unwrapped at
	// shutdown. Zero skips wrapping.
	WrapSolLamports uint64
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	// Missing .env is fine; the environment may be set externally.
	_ = godotenv.Load()

	cfg := &Config{
		RpcURL:               getenv("SOLANA_RPC_URL", "https://api.mainnet-beta.solana.com"),
		WsURL:                os.Getenv("SOLANA_WS_RPC_URL"),
		RpcRequestsPerSecond: getenvInt("RPC_REQUESTS_PER_SECOND", 10),
		ProcessDelay:         getenvDurationMs("PROCESS_DELAY_MS", 200*time.Millisecond),
		BlockhashRefresh:     getenvDurationMs("BLOCKHASH_REFRESH_MS", 10*time.Second),
		RefreshEvery:         getenvInt("POOL_REFRESH_EVERY", 25),
		AmountIn:             int64(getenvInt("AMOUNT_IN_LAMPORTS", 10_000_000)),
		WrapSolLamports:      uint64(getenvInt("WRAP_SOL_LAMPORTS", 0)),
	}

	keyStr := os.Getenv("SOLANA_PRIVATE_KEY")
	if keyStr == "" {
		return nil, fmt.Errorf("SOLANA_PRIVATE_KEY is required")
	}
	key, err := solana.PrivateKeyFromBase58(keyStr)
	if err != nil {
		return nil, fmt.Errorf("SOLANA_PRIVATE_KEY: %w", err)
	}
	cfg.PrivateKey = key

	cfg.Markets = splitList(os.Getenv("MARKETS"))
	if len(cfg.Markets) == 0 {
		return nil, fmt.Errorf("MARKETS is required (comma-separated pool addresses)")
	}

	for _, s := range splitList(os.Getenv("LOOKUP_TABLES")) {
		addr, err := solana.PublicKeyFromBase58(s)
		if err != nil {
			return nil, fmt.Errorf("LOOKUP_TABLES entry %q: %w", s, err)
		}
		cfg.LookupTables = append(cfg.LookupTables, addr)
	}

	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvDurationMs(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms <= 0 {
		return def
	}
	return time.Duration(ms) * time.Millisecond
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
