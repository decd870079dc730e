package sol

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	addresslookuptable "github.com/gagliardetto/solana-go/programs/address-lookup-table"
)

// LoadLookupTables fetches and deserializes the given address lookup
// tables. Tables that are missing or fail to decode are reported in the
// returned error map but do not abort the load; callers decide whether
// an empty result is acceptable.
func (c *Client) LoadLookupTables(ctx context.Context, addresses []solana.PublicKey) (map[solana.PublicKey]solana.PublicKeySlice, map[solana.PublicKey]error, error) {
	tables := make(map[solana.PublicKey]solana.PublicKeySlice, len(addresses))
	failed := make(map[solana.PublicKey]error)

	infos, err := c.FetchAccounts(ctx, addresses)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch lookup tables: %w", err)
	}
	for i, info := range infos {
		addr := addresses[i]
		if info == nil {
			failed[addr] = fmt.Errorf("lookup table %s not found", addr)
			continue
		}
		state, err := addresslookuptable.DecodeAddressLookupTableState(info.Data)
		if err != nil {
			failed[addr] = fmt.Errorf("decode lookup table %s: %w", addr, err)
			continue
		}
		tables[addr] = state.Addresses
	}
	return tables, failed, nil
}
