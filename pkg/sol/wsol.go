package sol

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"
)

// WrapSol funds the payer's WSOL account with lamports, creating the
// account first when it does not exist yet.
func (c *Client) WrapSol(ctx context.Context, payer solana.PrivateKey, lamports uint64) error {
	user := payer.PublicKey()

	wsolAccount, _, err := c.EnsureAssociatedTokenAccount(ctx, payer, WSOL)
	if err != nil {
		return fmt.Errorf("ensure wsol account: %w", err)
	}

	transferInst, err := system.NewTransferInstruction(lamports, user, wsolAccount).ValidateAndBuild()
	if err != nil {
		return fmt.Errorf("build transfer: %w", err)
	}
	// SyncNative turns the transferred lamports into WSOL balance.
	syncInst, err := token.NewSyncNativeInstruction(wsolAccount).ValidateAndBuild()
	if err != nil {
		return fmt.Errorf("build sync native: %w", err)
	}

	blockhash, err := c.LatestBlockhash(ctx)
	if err != nil {
		return err
	}
	insts := []solana.Instruction{transferInst, syncInst}
	if _, err := c.SendTx(ctx, blockhash, []solana.PrivateKey{payer}, insts, nil, false); err != nil {
		return fmt.Errorf("wrap sol: %w", err)
	}
	return nil
}

// UnwrapSol closes the payer's WSOL account, returning its lamports.
func (c *Client) UnwrapSol(ctx context.Context, payer solana.PrivateKey) error {
	user := payer.PublicKey()

	wsolAccount, _, err := solana.FindAssociatedTokenAddress(user, WSOL)
	if err != nil {
		return fmt.Errorf("derive wsol account: %w", err)
	}
	closeInst, err := token.NewCloseAccountInstruction(wsolAccount, user, user, nil).ValidateAndBuild()
	if err != nil {
		return fmt.Errorf("build close account: %w", err)
	}

	blockhash, err := c.LatestBlockhash(ctx)
	if err != nil {
		return err
	}
	if _, err := c.SendTx(ctx, blockhash, []solana.PrivateKey{payer}, []solana.Instruction{closeInst}, nil, false); err != nil {
		return fmt.Errorf("unwrap sol: %w", err)
	}
	return nil
}
