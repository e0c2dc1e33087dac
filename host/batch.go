package host

import (
	"sync"

	"tokenboard/ledger"
)

// BatchExecutor runs a batch of invocations on a fixed worker pool.
// Instructions that conflict on a writable account execute in batch order;
// everything else runs concurrently.
type BatchExecutor struct {
	host     *Host
	nWorkers int
}

func NewBatchExecutor(host *Host, nWorkers int) *BatchExecutor {
	return &BatchExecutor{host: host, nWorkers: nWorkers}
}

// Execute returns one receipt per instruction, index-aligned with the batch.
// A failed invocation only rolls back its own writes; the rest of the batch
// proceeds.
func (e *BatchExecutor) Execute(batch []ledger.Instruction) []Receipt {
	if len(batch) == 0 {
		return nil
	}

	nodes := make([]*accessNode, len(batch))
	for i, in := range batch {
		nodes[i] = newAccessNode(i, in)
	}
	dag := newDependencyDag(nodes)

	receipts := make([]Receipt, len(batch))
	// Buffered to the batch size so completions never block on enqueue.
	ready := make(chan int, len(batch))
	remaining := make([]int, len(batch))
	completed := 0

	var mu sync.Mutex
	for seqID := range batch {
		remaining[seqID] = len(dag.dependencies(seqID))
		if remaining[seqID] == 0 {
			ready <- seqID
		}
	}

	workers := e.nWorkers
	if workers < 1 {
		workers = 1
	}
	if workers > len(batch) {
		workers = len(batch)
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seqID := range ready {
				receipts[seqID] = e.host.ExecuteTransaction(batch[seqID])

				mu.Lock()
				completed++
				for _, dependant := range dag.dependants(seqID) {
					remaining[dependant]--
					if remaining[dependant] == 0 {
						ready <- dependant
					}
				}
				if completed == len(batch) {
					close(ready)
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	return receipts
}
