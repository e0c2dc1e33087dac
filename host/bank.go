package host

import (
	"sort"
	"sync"

	"tokenboard/ledger"
)

// bank holds the live account set. The map itself is guarded so independent
// invocations can run on different accounts concurrently; exclusive access
// to a writable account is the batch scheduler's job, not the bank's.
type bank struct {
	mu       sync.RWMutex
	accounts map[ledger.Pubkey]*ledger.Account
}

func newBank() *bank {
	return &bank{accounts: make(map[ledger.Pubkey]*ledger.Account)}
}

func (b *bank) set(a *ledger.Account) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.accounts[a.Key] = a.Clone()
}

// getOrCreate returns the live account, materializing an empty system-owned
// slot if the key was never seen.
func (b *bank) getOrCreate(key ledger.Pubkey) *ledger.Account {
	b.mu.Lock()
	defer b.mu.Unlock()
	if a, ok := b.accounts[key]; ok {
		return a
	}
	a := ledger.NewAccount(key)
	b.accounts[key] = a
	return a
}

// read returns a copy; missing accounts read as empty.
func (b *bank) read(key ledger.Pubkey) ledger.Account {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if a, ok := b.accounts[key]; ok {
		return *a.Clone()
	}
	return *ledger.NewAccount(key)
}

// all returns clones of every non-empty account, ordered by key for stable
// output.
func (b *bank) all() []*ledger.Account {
	b.mu.RLock()
	defer b.mu.RUnlock()
	var accounts []*ledger.Account
	for _, a := range b.accounts {
		if a.Lamports == 0 && len(a.Data) == 0 && a.Owner == ledger.SystemProgramID {
			continue
		}
		accounts = append(accounts, a.Clone())
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Key.String() < accounts[j].Key.String()
	})
	return accounts
}
