package host

import (
	"fmt"
	"strings"

	"tokenboard/ledger"
)

// BatchGraphviz renders a batch's conflict graph in the DOT language, with
// each edge labeled by the accounts forcing the ordering.
// Online viewer: https://dreampuf.github.io/GraphvizOnline
func BatchGraphviz(name string, batch []ledger.Instruction) string {
	nodes := make([]*accessNode, len(batch))
	for i, in := range batch {
		nodes[i] = newAccessNode(i, in)
	}
	dag := newDependencyDag(nodes)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("digraph %s {\n", name))
	sb.WriteString("\tnode [style=filled, color=\"#c0d0e0\"];\n")
	for _, node := range nodes {
		if len(dag.dependants(node.seqID)) == 0 && len(dag.dependencies(node.seqID)) == 0 {
			sb.WriteString(fmt.Sprintf("\t%d;\n", node.seqID))
			continue
		}
		for _, depSeqID := range dag.dependants(node.seqID) {
			sb.WriteString(fmt.Sprintf("\t%d -> %d ", node.seqID, depSeqID))
			sb.WriteString(fmt.Sprintf(
				"[label=\"%s\", fontsize=8, fontcolor=\"#a0a0a0\"];\n",
				strings.Join(conflictingKeys(node, nodes[depSeqID]), ","),
			))
		}
	}
	sb.WriteString("}")
	return sb.String()
}

// conflictingKeys returns abbreviated ids of the accounts that cause the
// dependency between two nodes.
func conflictingKeys(dependency, dependant *accessNode) []string {
	unique := make(map[ledger.Pubkey]bool)
	collect := func(left, right []ledger.Pubkey) {
		lookup := make(map[ledger.Pubkey]bool, len(left))
		for _, key := range left {
			lookup[key] = true
		}
		for _, key := range right {
			if lookup[key] {
				unique[key] = true
			}
		}
	}
	collect(dependency.writes, dependant.writes)
	collect(dependency.writes, dependant.reads)
	collect(dependency.reads, dependant.writes)

	var keys []string
	for key := range unique {
		keys = append(keys, abbreviate(key))
	}
	return keys
}

func abbreviate(key ledger.Pubkey) string {
	s := key.String()
	if len(s) > 8 {
		return s[:8]
	}
	return s
}
