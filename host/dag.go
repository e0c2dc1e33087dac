package host

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"tokenboard/ledger"
)

// accessNode captures the declared account access of one instruction in a
// batch. seqID is the instruction's position, which fixes the order
// conflicting instructions must observe.
type accessNode struct {
	seqID  int
	reads  []ledger.Pubkey
	writes []ledger.Pubkey
}

func newAccessNode(seqID int, in ledger.Instruction) *accessNode {
	node := &accessNode{seqID: seqID}
	writable := make(map[ledger.Pubkey]bool)
	for _, meta := range in.Accounts {
		if meta.IsWritable {
			writable[meta.Key] = true
		}
	}
	seen := make(map[ledger.Pubkey]bool)
	for _, meta := range in.Accounts {
		if seen[meta.Key] {
			continue
		}
		seen[meta.Key] = true
		if writable[meta.Key] {
			node.writes = append(node.writes, meta.Key)
		} else {
			node.reads = append(node.reads, meta.Key)
		}
	}
	// The program account itself is read by the invocation.
	if !seen[in.ProgramID] {
		node.reads = append(node.reads, in.ProgramID)
	}
	return node
}

// dependencyDag orders instructions that conflict on a writable account.
// Access is declared up front, so unlike optimistic scheduling the graph is
// final once built and no instruction is ever re-executed.
type dependencyDag struct {
	nodes            []*accessNode
	dependenciesByID map[int]map[int]bool
	dependantsByID   map[int]map[int]bool
}

func newDependencyDag(nodes []*accessNode) *dependencyDag {
	dag := &dependencyDag{
		nodes:            nodes,
		dependenciesByID: make(map[int]map[int]bool, len(nodes)),
		dependantsByID:   make(map[int]map[int]bool, len(nodes)),
	}
	for _, node := range nodes {
		dag.dependenciesByID[node.seqID] = make(map[int]bool)
		dag.dependantsByID[node.seqID] = make(map[int]bool)
	}
	for i, node := range nodes {
		for j := 0; j < i; j++ {
			if conflicts(nodes[j], node) {
				dag.dependantsByID[nodes[j].seqID][node.seqID] = true
				dag.dependenciesByID[node.seqID][nodes[j].seqID] = true
			}
		}
	}
	return dag
}

// conflicts reports whether two instructions touch a common account with at
// least one write.
func conflicts(a, b *accessNode) bool {
	return intersects(a.writes, b.writes) ||
		intersects(a.writes, b.reads) ||
		intersects(a.reads, b.writes)
}

func intersects(left, right []ledger.Pubkey) bool {
	lookup := make(map[ledger.Pubkey]bool, len(left))
	for _, key := range left {
		lookup[key] = true
	}
	for _, key := range right {
		if lookup[key] {
			return true
		}
	}
	return false
}

func (dag *dependencyDag) dependencies(seqID int) []int {
	return sortedIDs(dag.dependenciesByID[seqID])
}

func (dag *dependencyDag) dependants(seqID int) []int {
	return sortedIDs(dag.dependantsByID[seqID])
}

func sortedIDs(set map[int]bool) []int {
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (dag *dependencyDag) String() string {
	sb := strings.Builder{}
	for _, node := range dag.nodes {
		deps := dag.dependencies(node.seqID)
		entries := make([]string, len(deps))
		for i, dep := range deps {
			entries[i] = strconv.Itoa(dep)
		}
		sb.WriteString(fmt.Sprintf(
			"Dependency{id:%d,deps:(%s)}\n",
			node.seqID,
			strings.Join(entries, ","),
		))
	}
	return sb.String()
}
