// Package dexerr defines the error taxonomy shared by the venue decoders
// and the market discovery pipeline. Callers classify failures with
// errors.Is so that discovery can decide between skipping a pool and
// aborting a whole mint entry.
package dexerr

import (
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

var (
	// ErrTruncatedData reports an account payload shorter than the venue
	// layout requires.
	ErrTruncatedData = errors.New("account data truncated")

	// ErrInvalidLayout reports account data that is long enough but fails
	// a structural check (bad discriminator, impossible field value).
	ErrInvalidLayout = errors.New("account data does not match layout")

	// ErrUnknownVenue reports an account owned by a program no decoder
	// is registered for.
	ErrUnknownVenue = errors.New("unknown venue program")

	// ErrAnchorAssetAbsent reports a pool in which neither side is an
	// accepted anchor asset, so the traded mint cannot be determined.
	ErrAnchorAssetAbsent = errors.New("no anchor asset in pool")

	// ErrDerivationFailure reports a PDA derivation that produced no
	// valid off-curve address.
	ErrDerivationFailure = errors.New("program address derivation failed")
)

// Truncated wraps ErrTruncatedData with what was needed versus present.
func Truncated(venue string, need, got int) error {
	return fmt.Errorf("%s: need %d bytes, got %d: %w", venue, need, got, ErrTruncatedData)
}

// UnknownVenue wraps ErrUnknownVenue with the offending owner program.
func UnknownVenue(owner solana.PublicKey) error {
	return fmt.Errorf("owner %s: %w", owner, ErrUnknownVenue)
}
