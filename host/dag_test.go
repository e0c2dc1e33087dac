package host

import (
	"slices"
	"testing"

	"tokenboard/ledger"
)

func TestDagOrdersWriteConflicts(t *testing.T) {
	a := ledger.PubkeyFromSeed("A")
	b := ledger.PubkeyFromSeed("B")
	c := ledger.PubkeyFromSeed("C")

	nodes := []*accessNode{
		{seqID: 0, writes: []ledger.Pubkey{a, b}},
		{seqID: 1, writes: []ledger.Pubkey{b, c}},
		{seqID: 2, writes: []ledger.Pubkey{c}},
	}
	dag := newDependencyDag(nodes)

	assertIDsEqual(t, dag.dependencies(0), []int{})
	assertIDsEqual(t, dag.dependencies(1), []int{0})
	assertIDsEqual(t, dag.dependencies(2), []int{1})
	assertIDsEqual(t, dag.dependants(0), []int{1})
	assertIDsEqual(t, dag.dependants(1), []int{2})
}

func TestDagReadersDependOnWriters(t *testing.T) {
	a := ledger.PubkeyFromSeed("A")

	nodes := []*accessNode{
		{seqID: 0, writes: []ledger.Pubkey{a}},
		{seqID: 1, reads: []ledger.Pubkey{a}},
		{seqID: 2, reads: []ledger.Pubkey{a}},
	}
	dag := newDependencyDag(nodes)

	assertIDsEqual(t, dag.dependencies(1), []int{0})
	assertIDsEqual(t, dag.dependencies(2), []int{0})
	// Two readers of the same account stay independent of each other.
	assertIDsEqual(t, dag.dependants(1), []int{})
}

func TestDagIndependentNodes(t *testing.T) {
	nodes := []*accessNode{
		{seqID: 0, writes: []ledger.Pubkey{ledger.PubkeyFromSeed("A")}},
		{seqID: 1, writes: []ledger.Pubkey{ledger.PubkeyFromSeed("B")}},
	}
	dag := newDependencyDag(nodes)

	assertIDsEqual(t, dag.dependencies(1), []int{})
	assertIDsEqual(t, dag.dependants(0), []int{})
}

func TestAccessNodeFromInstruction(t *testing.T) {
	a := ledger.PubkeyFromSeed("A")
	b := ledger.PubkeyFromSeed("B")
	in := ledger.Instruction{
		ProgramID: transferProgramID,
		Accounts: []ledger.AccountMeta{
			{Key: a, IsSigner: true, IsWritable: true},
			{Key: b},
		},
	}

	node := newAccessNode(3, in)
	if node.seqID != 3 {
		t.Errorf("seqID: expected 3, got %d", node.seqID)
	}
	if !slices.Contains(node.writes, a) {
		t.Errorf("expected %s in writes", a)
	}
	if !slices.Contains(node.reads, b) {
		t.Errorf("expected %s in reads", b)
	}
	// The invoked program account counts as a read.
	if !slices.Contains(node.reads, transferProgramID) {
		t.Errorf("expected program id in reads")
	}
}

func assertIDsEqual(t *testing.T, actual, expected []int) {
	t.Helper()
	if len(actual) == 0 && len(expected) == 0 {
		return
	}
	if !slices.Equal(actual, expected) {
		t.Errorf("expected ids %v, got %v", expected, actual)
	}
}
