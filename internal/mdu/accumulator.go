package mdu

import "sync"

// accumulator is the running block total of a single root.
type accumulator struct {
	mu     sync.Mutex // Guards blocks; one per root so unrelated roots never contend
	root   int
	label  string
	blocks int64
}

// add increases the total by blocks.
func (a *accumulator) add(blocks int64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.blocks += blocks
}

// total returns the current total.
func (a *accumulator) total() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.blocks
}

// accumulators holds one accumulator per root, indexed by root id.
type accumulators []*accumulator

// newAccumulators creates one zeroed accumulator per label.
func newAccumulators(labels []string) accumulators {
	accs := make(accumulators, len(labels))
	for i, label := range labels {
		accs[i] = &accumulator{root: i, label: label}
	}

	return accs
}

// add adds blocks to the accumulator of root.
func (a accumulators) add(root int, blocks int64) {
	a[root].add(blocks)
}
