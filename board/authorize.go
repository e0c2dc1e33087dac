package board

import (
	"fmt"

	"tokenboard/ledger"
	"tokenboard/token"
)

// authorizeCreate is the pure precondition check for CreateBoard: the
// sender signs, the holding account really belongs to the declared token
// program, and it records a non-zero balance of the board's token held by
// the sender. Checks run in order and fail on first violation.
func authorizeCreate(sender, holding, tokenProgram ledger.AccountInfo, in CreateBoard) error {
	if !sender.IsSigner {
		return ErrMissingSignature
	}

	// An account's contents are only trustworthy if its owning program is
	// the one the caller declared; anyone can fabricate a buffer that
	// decodes like a holding.
	if holding.Account.Owner != tokenProgram.Key() {
		return fmt.Errorf("%w: owned by %s, declared %s",
			ErrWrongOwnerProgram, holding.Account.Owner, tokenProgram.Key())
	}

	h, err := token.UnpackHolding(holding.Account.Data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedTokenAccount, err)
	}

	if h.Owner != sender.Key() || h.Mint != in.Token || h.Amount == 0 {
		return ErrUnauthorizedOrEmptyHolding
	}
	return nil
}
