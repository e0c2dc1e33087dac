package host

import (
	"encoding/binary"
	"errors"
	"fmt"

	"tokenboard/ledger"
)

// System program errors, propagated verbatim through the CPI boundary.
var (
	ErrAccountInUse        = errors.New("account already in use")
	ErrInsufficientFunds   = errors.New("insufficient payer funds")
	ErrMissingCreateSigner = errors.New("create-account requires both signatures")
	ErrMalformedSystemCall = errors.New("malformed system instruction")
)

const (
	createAccountTag = 0

	// tag 1 | lamports 8 | space 8 | owner 32
	createAccountSize = 49
)

// SystemProgram implements the host's account-creation primitive. A fresh
// account must co-sign its own creation; the payer funds the rent-exempt
// balance.
type SystemProgram struct{}

var _ Program = SystemProgram{}

// NewCreateAccountInstruction builds the create-account call. Both the payer
// and the new account are declared writable signers.
func NewCreateAccountInstruction(payer, newAccount ledger.Pubkey, lamports, space uint64, owner ledger.Pubkey) ledger.Instruction {
	data := make([]byte, createAccountSize)
	data[0] = createAccountTag
	binary.LittleEndian.PutUint64(data[1:9], lamports)
	binary.LittleEndian.PutUint64(data[9:17], space)
	copy(data[17:49], owner[:])

	return ledger.Instruction{
		ProgramID: ledger.SystemProgramID,
		Data:      data,
		Accounts: []ledger.AccountMeta{
			{Key: payer, IsSigner: true, IsWritable: true},
			{Key: newAccount, IsSigner: true, IsWritable: true},
		},
	}
}

func (SystemProgram) Handle(cpi ledger.Invoker, programID ledger.Pubkey, accounts []ledger.AccountInfo, payload []byte) error {
	if len(payload) != createAccountSize || payload[0] != createAccountTag {
		return ErrMalformedSystemCall
	}
	if len(accounts) < 2 {
		return fmt.Errorf("%w: want payer and new account", ErrMalformedSystemCall)
	}

	lamports := binary.LittleEndian.Uint64(payload[1:9])
	space := binary.LittleEndian.Uint64(payload[9:17])
	owner, err := ledger.PubkeyFromBytes(payload[17:49])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedSystemCall, err)
	}

	payer, newAccount := accounts[0], accounts[1]
	if !payer.IsSigner || !newAccount.IsSigner {
		return ErrMissingCreateSigner
	}

	if inUse(newAccount.Account) {
		return fmt.Errorf("%w: %s", ErrAccountInUse, newAccount.Key())
	}
	if payer.Account.Lamports < lamports {
		return fmt.Errorf("%w: have %d, need %d", ErrInsufficientFunds, payer.Account.Lamports, lamports)
	}

	payer.Account.Lamports -= lamports
	newAccount.Account.Lamports += lamports
	newAccount.Account.Data = make([]byte, space)
	newAccount.Account.Owner = owner
	return nil
}

// inUse reports whether the slot already carries funds, data, or a
// non-system owner.
func inUse(a *ledger.Account) bool {
	return a.Lamports > 0 || len(a.Data) > 0 || a.Owner != ledger.SystemProgramID
}
