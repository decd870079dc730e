package sol

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/ws"
	"golang.org/x/time/rate"
)

// getMultipleAccounts caps the batch size at 100 keys per request.
const maxAccountBatch = 100

// AccountInfo is the slice of on-chain account state the pool pipeline
// needs: who owns it and its raw payload.
type AccountInfo struct {
	Owner solana.PublicKey
	Data  []byte
}

// Client wraps the RPC and optional WebSocket connections behind a
// shared rate limiter so every fetch path observes one throttle.
type Client struct {
	RpcClient *rpc.Client
	WsClient  *ws.Client

	limiter *rate.Limiter
}

// NewClient creates a Solana client. rps bounds outgoing RPC requests
// per second; zero or negative disables throttling.
func NewClient(ctx context.Context, endpoint, wsEndpoint string, rps int) (*Client, error) {
	c := &Client{
		RpcClient: rpc.New(endpoint),
		limiter:   rate.NewLimiter(rate.Inf, 1),
	}
	if rps > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rps), rps)
	}
	if wsEndpoint != "" {
		wsClient, err := ws.Connect(ctx, wsEndpoint)
		if err != nil {
			return nil, fmt.Errorf("failed to establish WebSocket connection: %w", err)
		}
		c.WsClient = wsClient
	}
	return c, nil
}

// Close terminates all client connections.
func (c *Client) Close() error {
	if c.WsClient != nil {
		c.WsClient.Close()
	}
	return nil
}

func (c *Client) throttle(ctx context.Context) error {
	return c.limiter.Wait(ctx)
}

// FetchAccount returns the owner and data of a single account, or
// (nil, nil) when the account does not exist.
func (c *Client) FetchAccount(ctx context.Context, address solana.PublicKey) (*AccountInfo, error) {
	if err := c.throttle(ctx); err != nil {
		return nil, err
	}
	res, err := c.RpcClient.GetAccountInfoWithOpts(ctx, address, &rpc.GetAccountInfoOpts{
		Encoding:   solana.EncodingBase64,
		Commitment: rpc.CommitmentConfirmed,
	})
	if err == rpc.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get account %s: %w", address, err)
	}
	if res.Value == nil {
		return nil, nil
	}
	return &AccountInfo{
		Owner: res.Value.Owner,
		Data:  res.Value.Data.GetBinary(),
	}, nil
}

// FetchAccounts resolves many accounts positionally, batching requests
// at the RPC limit. Absent accounts come back as nil entries.
func (c *Client) FetchAccounts(ctx context.Context, addresses []solana.PublicKey) ([]*AccountInfo, error) {
	out := make([]*AccountInfo, 0, len(addresses))
	for start := 0; start < len(addresses); start += maxAccountBatch {
		end := start + maxAccountBatch
		if end > len(addresses) {
			end = len(addresses)
		}
		if err := c.throttle(ctx); err != nil {
			return nil, err
		}
		res, err := c.RpcClient.GetMultipleAccountsWithOpts(ctx, addresses[start:end], &rpc.GetMultipleAccountsOpts{
			Encoding:   solana.EncodingBase64,
			Commitment: rpc.CommitmentConfirmed,
		})
		if err != nil {
			return nil, fmt.Errorf("get multiple accounts [%d:%d]: %w", start, end, err)
		}
		for _, acc := range res.Value {
			if acc == nil {
				out = append(out, nil)
				continue
			}
			out = append(out, &AccountInfo{
				Owner: acc.Owner,
				Data:  acc.Data.GetBinary(),
			})
		}
	}
	return out, nil
}

// LatestBlockhash fetches a fresh recent blockhash.
func (c *Client) LatestBlockhash(ctx context.Context) (solana.Hash, error) {
	if err := c.throttle(ctx); err != nil {
		return solana.Hash{}, err
	}
	res, err := c.RpcClient.GetLatestBlockhash(ctx, rpc.CommitmentConfirmed)
	if err != nil {
		return solana.Hash{}, fmt.Errorf("get latest blockhash: %w", err)
	}
	return res.Value.Blockhash, nil
}
