// Package genesis describes the simulator's initial ledger state in YAML:
// funded accounts, token holdings, and an optional rent schedule.
package genesis

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"tokenboard/ledger"
	"tokenboard/token"
)

// File is the top-level genesis document. Keys are either 32-byte base58
// ids or human-readable seed names.
type File struct {
	Rent     *RentConfig     `yaml:"rent,omitempty"`
	Accounts []AccountConfig `yaml:"accounts"`
	Holdings []HoldingConfig `yaml:"holdings"`
}

type RentConfig struct {
	LamportsPerByteYear uint64 `yaml:"lamports_per_byte_year"`
	ExemptionYears      uint64 `yaml:"exemption_years"`
}

// AccountConfig funds a plain system-owned account.
type AccountConfig struct {
	Key      string `yaml:"key"`
	Lamports uint64 `yaml:"lamports"`
}

// HoldingConfig fabricates a token holding without running the token
// program.
type HoldingConfig struct {
	Key    string `yaml:"key"`
	Owner  string `yaml:"owner"`
	Mint   string `yaml:"mint"`
	Amount uint64 `yaml:"amount"`
}

func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(raw)
}

func Parse(raw []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parsing genesis: %w", err)
	}
	for i, a := range f.Accounts {
		if a.Key == "" {
			return nil, fmt.Errorf("accounts[%d]: empty key", i)
		}
	}
	for i, h := range f.Holdings {
		if h.Key == "" || h.Owner == "" || h.Mint == "" {
			return nil, fmt.Errorf("holdings[%d]: key, owner and mint are required", i)
		}
	}
	return &f, nil
}

// Build materializes the account set: funded accounts, packed holdings
// owned by the token program, and the rent sysvar.
func (f *File) Build() []*ledger.Account {
	rent := ledger.DefaultRent()
	if f.Rent != nil {
		rent = ledger.Rent{
			LamportsPerByteYear: f.Rent.LamportsPerByteYear,
			ExemptionYears:      f.Rent.ExemptionYears,
		}
	}

	accounts := []*ledger.Account{ledger.NewRentSysvarAccount(rent)}
	for _, a := range f.Accounts {
		accounts = append(accounts, &ledger.Account{
			Key:      ledger.ResolvePubkey(a.Key),
			Lamports: a.Lamports,
			Owner:    ledger.SystemProgramID,
		})
	}
	for _, h := range f.Holdings {
		accounts = append(accounts, &ledger.Account{
			Key:   ledger.ResolvePubkey(h.Key),
			Owner: token.ProgramID,
			Data: token.PackHolding(token.Holding{
				Mint:   ledger.ResolvePubkey(h.Mint),
				Owner:  ledger.ResolvePubkey(h.Owner),
				Amount: h.Amount,
			}),
		})
	}
	return accounts
}
