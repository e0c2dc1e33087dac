package board

import (
	"fmt"

	"github.com/near/borsh-go"

	"tokenboard/ledger"
)

// BoardRecord is the persisted board entity, written exactly once per
// successful CreateBoard into storage owned by this program.
//
// Borsh layout: bool | owner 32 | token 32 | u32-length-prefixed url.
type BoardRecord struct {
	IsInitialized bool
	Owner         ledger.Pubkey
	Token         ledger.Pubkey
	URL           string
}

// Serialize returns the record's full Borsh encoding. The storage account
// is sized from this, never from a fixed type size, since the url is
// variable length.
func (r BoardRecord) Serialize() ([]byte, error) {
	data, err := borsh.Serialize(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerializationFailure, err)
	}
	return data, nil
}

// DecodeBoardRecord reads a record back out of storage. Trailing bytes
// beyond the record are ignored.
func DecodeBoardRecord(data []byte) (BoardRecord, error) {
	var r BoardRecord
	if err := borsh.Deserialize(&r, data); err != nil {
		return BoardRecord{}, fmt.Errorf("%w: %v", ErrSerializationFailure, err)
	}
	return r, nil
}
