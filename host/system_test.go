package host

import (
	"errors"
	"testing"

	"tokenboard/ledger"
)

func createAccounts(payerLamports uint64, payerSigns, newSigns bool) (payer, newAccount ledger.AccountInfo) {
	payer = ledger.AccountInfo{
		Account: &ledger.Account{
			Key:      ledger.PubkeyFromSeed("payer"),
			Lamports: payerLamports,
			Owner:    ledger.SystemProgramID,
		},
		IsSigner:   payerSigns,
		IsWritable: true,
	}
	newAccount = ledger.AccountInfo{
		Account:    ledger.NewAccount(ledger.PubkeyFromSeed("fresh")),
		IsSigner:   newSigns,
		IsWritable: true,
	}
	return payer, newAccount
}

func TestCreateAccount(t *testing.T) {
	owner := ledger.PubkeyFromSeed("some-program")
	payer, newAccount := createAccounts(1000, true, true)
	ix := NewCreateAccountInstruction(payer.Key(), newAccount.Key(), 600, 48, owner)

	err := SystemProgram{}.Handle(nil, ledger.SystemProgramID, []ledger.AccountInfo{payer, newAccount}, ix.Data)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if payer.Account.Lamports != 400 {
		t.Errorf("payer lamports: expected 400, got %d", payer.Account.Lamports)
	}
	if newAccount.Account.Lamports != 600 {
		t.Errorf("new account lamports: expected 600, got %d", newAccount.Account.Lamports)
	}
	if len(newAccount.Account.Data) != 48 {
		t.Errorf("space: expected 48, got %d", len(newAccount.Account.Data))
	}
	if newAccount.Account.Owner != owner {
		t.Errorf("owner: expected %s, got %s", owner, newAccount.Account.Owner)
	}
}

func TestCreateAccountInUse(t *testing.T) {
	owner := ledger.PubkeyFromSeed("some-program")
	payer, newAccount := createAccounts(1000, true, true)
	newAccount.Account.Data = []byte{1}

	ix := NewCreateAccountInstruction(payer.Key(), newAccount.Key(), 600, 48, owner)
	err := SystemProgram{}.Handle(nil, ledger.SystemProgramID, []ledger.AccountInfo{payer, newAccount}, ix.Data)
	if !errors.Is(err, ErrAccountInUse) {
		t.Errorf("expected ErrAccountInUse, got %v", err)
	}
}

func TestCreateAccountInsufficientFunds(t *testing.T) {
	owner := ledger.PubkeyFromSeed("some-program")
	payer, newAccount := createAccounts(100, true, true)

	ix := NewCreateAccountInstruction(payer.Key(), newAccount.Key(), 600, 48, owner)
	err := SystemProgram{}.Handle(nil, ledger.SystemProgramID, []ledger.AccountInfo{payer, newAccount}, ix.Data)
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("expected ErrInsufficientFunds, got %v", err)
	}
}

func TestCreateAccountMissingSignatures(t *testing.T) {
	owner := ledger.PubkeyFromSeed("some-program")

	cases := []struct {
		name       string
		payerSigns bool
		newSigns   bool
	}{
		{"payer does not sign", false, true},
		{"new account does not sign", true, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			payer, newAccount := createAccounts(1000, c.payerSigns, c.newSigns)
			ix := NewCreateAccountInstruction(payer.Key(), newAccount.Key(), 600, 48, owner)
			err := SystemProgram{}.Handle(nil, ledger.SystemProgramID, []ledger.AccountInfo{payer, newAccount}, ix.Data)
			if !errors.Is(err, ErrMissingCreateSigner) {
				t.Errorf("expected ErrMissingCreateSigner, got %v", err)
			}
		})
	}
}

func TestCreateAccountMalformedPayload(t *testing.T) {
	payer, newAccount := createAccounts(1000, true, true)
	err := SystemProgram{}.Handle(nil, ledger.SystemProgramID, []ledger.AccountInfo{payer, newAccount}, []byte{createAccountTag, 1, 2})
	if !errors.Is(err, ErrMalformedSystemCall) {
		t.Errorf("expected ErrMalformedSystemCall, got %v", err)
	}
}
