package ledgerdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tokenboard/ledger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndLoadAccounts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	accounts := []*ledger.Account{
		{
			Key:      ledger.PubkeyFromSeed("alice"),
			Lamports: 10_000_000,
			Owner:    ledger.SystemProgramID,
		},
		{
			Key:      ledger.PubkeyFromSeed("alice-board"),
			Lamports: 4000,
			Owner:    ledger.PubkeyFromSeed("board-program"),
			Data:     []byte{1, 2, 3, 4},
		},
	}
	require.NoError(t, store.SaveAccounts(ctx, accounts))

	loaded, err := store.LoadAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	byKey := make(map[ledger.Pubkey]*ledger.Account)
	for _, a := range loaded {
		byKey[a.Key] = a
	}
	alice := byKey[ledger.PubkeyFromSeed("alice")]
	require.NotNil(t, alice)
	assert.Equal(t, uint64(10_000_000), alice.Lamports)
	assert.Equal(t, ledger.SystemProgramID, alice.Owner)
	assert.Empty(t, alice.Data)

	board := byKey[ledger.PubkeyFromSeed("alice-board")]
	require.NotNil(t, board)
	assert.Equal(t, []byte{1, 2, 3, 4}, board.Data)
	assert.Equal(t, ledger.PubkeyFromSeed("board-program"), board.Owner)
}

func TestSaveReplacesSnapshot(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := []*ledger.Account{
		{Key: ledger.PubkeyFromSeed("a"), Lamports: 1, Owner: ledger.SystemProgramID},
		{Key: ledger.PubkeyFromSeed("b"), Lamports: 2, Owner: ledger.SystemProgramID},
	}
	require.NoError(t, store.SaveAccounts(ctx, first))

	second := []*ledger.Account{
		{Key: ledger.PubkeyFromSeed("c"), Lamports: 3, Owner: ledger.SystemProgramID},
	}
	require.NoError(t, store.SaveAccounts(ctx, second))

	loaded, err := store.LoadAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, ledger.PubkeyFromSeed("c"), loaded[0].Key)
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}

func TestLoadEmptyStore(t *testing.T) {
	store := newTestStore(t)
	loaded, err := store.LoadAccounts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
