package ledger

// Account is a host-managed storage slot: a balance, a raw data buffer,
// and the id of the program allowed to mutate it.
type Account struct {
	Key      Pubkey
	Lamports uint64
	Owner    Pubkey
	Data     []byte
}

// NewAccount returns an empty, system-owned account for the given key.
func NewAccount(key Pubkey) *Account {
	return &Account{Key: key, Owner: SystemProgramID}
}

// Clone deep-copies the account, including its data buffer.
func (a *Account) Clone() *Account {
	clone := *a
	if a.Data != nil {
		clone.Data = make([]byte, len(a.Data))
		copy(clone.Data, a.Data)
	}
	return &clone
}

// Restore overwrites the account in place with the snapshot's contents.
func (a *Account) Restore(snapshot *Account) {
	a.Lamports = snapshot.Lamports
	a.Owner = snapshot.Owner
	if snapshot.Data == nil {
		a.Data = nil
	} else {
		a.Data = make([]byte, len(snapshot.Data))
		copy(a.Data, snapshot.Data)
	}
}

// AccountInfo is the capability handle a program receives for one account
// of its instruction. IsSigner and IsWritable reflect what the transaction
// declared, not what the program would like; capability is conferred by the
// caller, never assumed.
type AccountInfo struct {
	Account    *Account
	IsSigner   bool
	IsWritable bool
}

// Key is a shorthand for the underlying account id.
func (info AccountInfo) Key() Pubkey {
	return info.Account.Key
}
