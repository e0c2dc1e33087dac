// Package board implements the board program: a single instruction that
// provisions and initializes a token-gated message board account.
package board

import (
	"fmt"
	"log/slog"

	"tokenboard/host"
	"tokenboard/ledger"
)

// ProgramID is the id the board program is registered under.
var ProgramID = ledger.PubkeyFromSeed("board-program")

// Positional account contract for CreateBoard. Order is the interface.
const (
	idxSender        = iota // must sign, funds the new account
	idxBoard                // uninitialized storage, must co-sign its creation
	idxHolding              // read-only token holding of the sender
	idxTokenProgram         // read-only, declared owner of the holding
	idxSystemProgram        // read-only, create-account primitive
	idxRentSysvar           // read-only, rent schedule
	accountCount
)

// Processor handles board instructions. Stateless across invocations: one
// payload in, one terminal outcome out.
type Processor struct {
	log *slog.Logger
}

func NewProcessor(log *slog.Logger) *Processor {
	return &Processor{log: log}
}

var _ host.Program = &Processor{}

// Handle decodes the payload and dispatches it against the declared
// accounts. Any returned error aborts the whole invocation; the host rolls
// back every writable account.
func (p *Processor) Handle(cpi ledger.Invoker, programID ledger.Pubkey, accounts []ledger.AccountInfo, payload []byte) error {
	in, err := DecodeInstruction(payload)
	if err != nil {
		return err
	}
	switch in := in.(type) {
	case CreateBoard:
		return p.createBoard(cpi, programID, accounts, in)
	default:
		return fmt.Errorf("%w: unhandled instruction %T", ErrMalformedInstruction, in)
	}
}

func (p *Processor) createBoard(cpi ledger.Invoker, programID ledger.Pubkey, accounts []ledger.AccountInfo, in CreateBoard) error {
	if len(accounts) < accountCount {
		return fmt.Errorf("%w: got %d, want %d", ErrNotEnoughAccounts, len(accounts), accountCount)
	}
	sender := accounts[idxSender]
	boardAccount := accounts[idxBoard]
	holding := accounts[idxHolding]
	tokenProgram := accounts[idxTokenProgram]
	systemProgram := accounts[idxSystemProgram]
	rentSysvar := accounts[idxRentSysvar]

	if err := authorizeCreate(sender, holding, tokenProgram, in); err != nil {
		return err
	}

	record := BoardRecord{
		IsInitialized: true,
		Owner:         sender.Key(),
		Token:         in.Token,
		URL:           in.URL,
	}
	data, err := record.Serialize()
	if err != nil {
		return err
	}

	if err := p.provision(cpi, sender, boardAccount, systemProgram, rentSysvar, programID, uint64(len(data))); err != nil {
		return err
	}

	return p.write(boardAccount, record, data)
}

// provision sizes and funds the board account through the system program.
// The CPI is atomic with the rest of the invocation; any failure aborts
// everything.
func (p *Processor) provision(cpi ledger.Invoker, sender, boardAccount, systemProgram, rentSysvar ledger.AccountInfo, owner ledger.Pubkey, space uint64) error {
	rent, err := ledger.RentFromAccount(rentSysvar)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProvisioningFailure, err)
	}
	lamports := rent.MinimumBalance(space)

	createIx := host.NewCreateAccountInstruction(sender.Key(), boardAccount.Key(), lamports, space, owner)
	if err := cpi.Invoke(createIx, []ledger.AccountInfo{sender, boardAccount, systemProgram}); err != nil {
		return fmt.Errorf("%w: %v", ErrProvisioningFailure, err)
	}
	return nil
}

// write serializes the record into the freshly provisioned storage.
func (p *Processor) write(boardAccount ledger.AccountInfo, record BoardRecord, data []byte) error {
	buf := boardAccount.Account.Data
	if len(buf) < len(data) {
		return fmt.Errorf("%w: storage is %d bytes, record needs %d",
			ErrSerializationFailure, len(buf), len(data))
	}
	copy(buf, data)

	p.log.Info("message board created", "token", record.Token.String())
	return nil
}
