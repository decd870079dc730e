package sol

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	associatedtokenaccount "github.com/gagliardetto/solana-go/programs/associated-token-account"
	computebudget "github.com/gagliardetto/solana-go/programs/compute-budget"
)

// Compute budget applied to housekeeping transactions (ATA creation,
// WSOL wrapping) so they never compete with dispatch traffic on fees.
const (
	setupComputeUnitLimit = uint32(80_000)
	setupComputeUnitPrice = uint64(100_000)
)

// ResolveTokenProgram returns the program owning a mint account. Only
// SPL Token and Token-2022 mints are supported; anything else is an
// error because downstream instructions must name the right program.
func (c *Client) ResolveTokenProgram(ctx context.Context, mint solana.PublicKey) (solana.PublicKey, error) {
	info, err := c.FetchAccount(ctx, mint)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("fetch mint %s: %w", mint, err)
	}
	if info == nil {
		return solana.PublicKey{}, fmt.Errorf("mint account %s not found", mint)
	}
	switch info.Owner {
	case TokenProgram, Token2022Program:
		return info.Owner, nil
	}
	return solana.PublicKey{}, fmt.Errorf("mint %s owned by unsupported program %s", mint, info.Owner)
}

// EnsureAssociatedTokenAccount makes sure the payer's ATA for mint
// exists, creating it when missing. It returns the ATA address and
// whether a creation transaction was sent.
func (c *Client) EnsureAssociatedTokenAccount(ctx context.Context, payer solana.PrivateKey, mint solana.PublicKey) (solana.PublicKey, bool, error) {
	owner := payer.PublicKey()
	ata, _, err := solana.FindAssociatedTokenAddress(owner, mint)
	if err != nil {
		return solana.PublicKey{}, false, fmt.Errorf("derive ata for %s: %w", mint, err)
	}

	info, err := c.FetchAccount(ctx, ata)
	if err != nil {
		return solana.PublicKey{}, false, err
	}
	if info != nil {
		return ata, false, nil
	}

	limitInst, err := computebudget.NewSetComputeUnitLimitInstruction(setupComputeUnitLimit).ValidateAndBuild()
	if err != nil {
		return solana.PublicKey{}, false, err
	}
	priceInst, err := computebudget.NewSetComputeUnitPriceInstruction(setupComputeUnitPrice).ValidateAndBuild()
	if err != nil {
		return solana.PublicKey{}, false, err
	}
	createInst, err := associatedtokenaccount.NewCreateInstruction(owner, owner, mint).ValidateAndBuild()
	if err != nil {
		return solana.PublicKey{}, false, fmt.Errorf("build create ata for %s: %w", mint, err)
	}

	blockhash, err := c.LatestBlockhash(ctx)
	if err != nil {
		return solana.PublicKey{}, false, err
	}
	insts := []solana.Instruction{limitInst, priceInst, createInst}
	if _, err := c.SendTx(ctx, blockhash, []solana.PrivateKey{payer}, insts, nil, false); err != nil {
		return solana.PublicKey{}, false, fmt.Errorf("create ata for %s: %w", mint, err)
	}
	return ata, true, nil
}
