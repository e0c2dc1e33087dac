// Package token models the external asset-holding program at its interface
// boundary: the fixed account layout and the few fields this module reads.
package token

import (
	"encoding/binary"
	"errors"

	"tokenboard/ledger"
)

// ProgramID is the well-known id of the asset-holding program.
var ProgramID = ledger.MustPubkeyFromBase58("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")

// AccountSize is the full holding-account layout:
// mint 32 | owner 32 | amount 8 | delegate option 36 | state 1 |
// is-native option 12 | delegated amount 8 | close-authority option 36.
const AccountSize = 165

var ErrInvalidAccountData = errors.New("unexpected token account data")

// Holding is the slice of the layout this module reads: who holds how much
// of which asset. The remaining fields belong to the token program.
type Holding struct {
	Mint   ledger.Pubkey
	Owner  ledger.Pubkey
	Amount uint64
}

// UnpackHolding decodes a full holding-account image.
func UnpackHolding(data []byte) (Holding, error) {
	if len(data) != AccountSize {
		return Holding{}, ErrInvalidAccountData
	}
	var h Holding
	copy(h.Mint[:], data[0:32])
	copy(h.Owner[:], data[32:64])
	h.Amount = binary.LittleEndian.Uint64(data[64:72])
	return h, nil
}

// PackHolding builds a full account image for the given holding. Fields
// beyond mint/owner/amount keep their zero value; genesis and tests use
// this to fabricate holdings without running the token program.
func PackHolding(h Holding) []byte {
	data := make([]byte, AccountSize)
	copy(data[0:32], h.Mint[:])
	copy(data[32:64], h.Owner[:])
	binary.LittleEndian.PutUint64(data[64:72], h.Amount)
	return data
}
