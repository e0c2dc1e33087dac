// boardsim boots a simulated ledger host from a genesis file, executes one
// CreateBoard instruction, and prints the resulting board record.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"tokenboard/board"
	"tokenboard/genesis"
	"tokenboard/host"
	"tokenboard/ledger"
	"tokenboard/ledgerdb"
	"tokenboard/token"
)

type options struct {
	genesisPath string
	dbPath      string
	sender      string
	board       string
	holding     string
	mint        string
	url         string
}

func main() {
	var opts options
	flag.StringVar(&opts.genesisPath, "genesis", "genesis.yaml", "path to the genesis file")
	flag.StringVar(&opts.dbPath, "db", "", "optional sqlite path to persist the ledger after the run")
	flag.StringVar(&opts.sender, "sender", "alice", "sender key (base58 or seed name)")
	flag.StringVar(&opts.board, "board", "alice-board", "new board account key")
	flag.StringVar(&opts.holding, "holding", "alice-usdx", "sender's token holding account key")
	flag.StringVar(&opts.mint, "token", "usdx", "token id the board is gated on")
	flag.StringVar(&opts.url, "url", "https://example.org/board", "board url")
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	if err := run(opts, log); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func run(opts options, log *slog.Logger) error {
	gen, err := genesis.Load(opts.genesisPath)
	if err != nil {
		return fmt.Errorf("loading genesis: %w", err)
	}

	h := host.New(log)
	h.LoadAccounts(gen.Build())
	h.Register(ledger.SystemProgramID, host.SystemProgram{})
	h.Register(board.ProgramID, board.NewProcessor(log))

	senderKey := ledger.ResolvePubkey(opts.sender)
	boardKey := ledger.ResolvePubkey(opts.board)

	payload := board.CreateBoard{
		Token: ledger.ResolvePubkey(opts.mint),
		URL:   opts.url,
	}.Encode()

	receipt := h.ExecuteTransaction(ledger.Instruction{
		ProgramID: board.ProgramID,
		Data:      payload,
		Accounts: []ledger.AccountMeta{
			{Key: senderKey, IsSigner: true, IsWritable: true},
			{Key: boardKey, IsSigner: true, IsWritable: true},
			{Key: ledger.ResolvePubkey(opts.holding)},
			{Key: token.ProgramID},
			{Key: ledger.SystemProgramID},
			{Key: ledger.SysvarRentID},
		},
	})
	if receipt.Err != nil {
		return fmt.Errorf("invocation %s: %w", receipt.InvocationID, receipt.Err)
	}

	stored := h.Account(boardKey)
	record, err := board.DecodeBoardRecord(stored.Data)
	if err != nil {
		return err
	}
	log.Info("board record",
		"board", boardKey.String(),
		"owner", record.Owner.String(),
		"token", record.Token.String(),
		"url", record.URL,
		"lamports", stored.Lamports,
	)

	if opts.dbPath != "" {
		store, err := ledgerdb.Open(opts.dbPath)
		if err != nil {
			return err
		}
		defer store.Close()
		accounts := h.Accounts()
		if err := store.SaveAccounts(context.Background(), accounts); err != nil {
			return err
		}
		log.Info("ledger saved", "path", opts.dbPath, "accounts", len(accounts))
	}
	return nil
}
