// Package host simulates the ledger runtime the board program executes in:
// a program registry, an account bank, and whole-invocation atomicity with
// rollback of every writable account on failure.
package host

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"tokenboard/ledger"
)

var (
	ErrUnknownProgram      = errors.New("unknown program")
	ErrAccountNotSupplied  = errors.New("account not supplied by caller")
	ErrPrivilegeEscalation = errors.New("privilege escalation")
)

// Program is an executable registered with the host.
type Program interface {
	// Handle processes one instruction payload against the declared accounts.
	Handle(cpi ledger.Invoker, programID ledger.Pubkey, accounts []ledger.AccountInfo, payload []byte) error
}

// Receipt records the terminal outcome of one invocation.
type Receipt struct {
	InvocationID string
	Err          error
}

type Host struct {
	programs map[ledger.Pubkey]Program
	bank     *bank
	log      *slog.Logger
}

func New(log *slog.Logger) *Host {
	return &Host{
		programs: make(map[ledger.Pubkey]Program),
		bank:     newBank(),
		log:      log,
	}
}

func (h *Host) Register(id ledger.Pubkey, p Program) {
	h.programs[id] = p
}

// SetAccount installs or replaces one account in the bank.
func (h *Host) SetAccount(a *ledger.Account) {
	h.bank.set(a)
}

// LoadAccounts installs a full account set, e.g. from genesis or a snapshot.
func (h *Host) LoadAccounts(accounts []*ledger.Account) {
	for _, a := range accounts {
		h.bank.set(a)
	}
}

// Account returns a copy of the account's current state. Missing accounts
// read as empty, system-owned slots.
func (h *Host) Account(key ledger.Pubkey) ledger.Account {
	return h.bank.read(key)
}

// Accounts returns a copy of every non-empty account, ordered by key.
func (h *Host) Accounts() []*ledger.Account {
	return h.bank.all()
}

// ExecuteTransaction runs one instruction atomically: every account the
// instruction declared writable is snapshotted up front and restored if the
// program returns an error. The error is surfaced verbatim in the receipt.
func (h *Host) ExecuteTransaction(in ledger.Instruction) Receipt {
	id := uuid.NewString()

	program, ok := h.programs[in.ProgramID]
	if !ok {
		return Receipt{InvocationID: id, Err: fmt.Errorf("%w: %s", ErrUnknownProgram, in.ProgramID)}
	}

	infos := make([]ledger.AccountInfo, len(in.Accounts))
	snapshots := make(map[ledger.Pubkey]*ledger.Account)
	for i, meta := range in.Accounts {
		account := h.bank.getOrCreate(meta.Key)
		infos[i] = ledger.AccountInfo{
			Account:    account,
			IsSigner:   meta.IsSigner,
			IsWritable: meta.IsWritable,
		}
		if meta.IsWritable {
			if _, ok := snapshots[meta.Key]; !ok {
				snapshots[meta.Key] = account.Clone()
			}
		}
	}

	cpi := &invocation{host: h}
	if err := program.Handle(cpi, in.ProgramID, infos, in.Data); err != nil {
		for key, snapshot := range snapshots {
			h.bank.getOrCreate(key).Restore(snapshot)
		}
		h.log.Error("invocation failed", "invocation", id, "program", in.ProgramID.String(), "err", err)
		return Receipt{InvocationID: id, Err: err}
	}

	return Receipt{InvocationID: id}
}

// invocation is the cross-program invoker bound to one transaction. The
// callee sees the caller's live accounts; an inner instruction may only
// declare signer or writable on an account the caller already held that
// privilege for.
type invocation struct {
	host *Host
}

var _ ledger.Invoker = &invocation{}

func (v *invocation) Invoke(in ledger.Instruction, accounts []ledger.AccountInfo) error {
	program, ok := v.host.programs[in.ProgramID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownProgram, in.ProgramID)
	}

	infos := make([]ledger.AccountInfo, len(in.Accounts))
	for i, meta := range in.Accounts {
		outer, ok := findAccount(accounts, meta.Key)
		if !ok {
			return fmt.Errorf("%w: %s", ErrAccountNotSupplied, meta.Key)
		}
		if meta.IsSigner && !outer.IsSigner {
			return fmt.Errorf("%w: %s is not a signer in the caller's context", ErrPrivilegeEscalation, meta.Key)
		}
		if meta.IsWritable && !outer.IsWritable {
			return fmt.Errorf("%w: %s is not writable in the caller's context", ErrPrivilegeEscalation, meta.Key)
		}
		infos[i] = ledger.AccountInfo{
			Account:    outer.Account,
			IsSigner:   meta.IsSigner,
			IsWritable: meta.IsWritable,
		}
	}

	return program.Handle(v, in.ProgramID, infos, in.Data)
}

func findAccount(accounts []ledger.AccountInfo, key ledger.Pubkey) (ledger.AccountInfo, bool) {
	for _, info := range accounts {
		if info.Key() == key {
			return info, true
		}
	}
	return ledger.AccountInfo{}, false
}
