package mdu

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
)

var (
	// ErrNoRoots is returned when there is nothing to measure.
	ErrNoRoots = errors.New("no valid paths to process")
	// ErrWorkers is returned for a worker count below one.
	ErrWorkers = errors.New("number of workers must be at least 1")
	// ErrLifecycle is returned when pool operations are called out of order.
	ErrLifecycle = errors.New("pool operation called out of order")
)

// phase tracks where a Pool is in its lifecycle.
type phase int

const (
	phaseNew phase = iota
	phaseSeeded
	phaseDone
	phaseClosed
)

// Usage is the measured size of one root.
type Usage struct {
	// Label is the root path as given by the caller.
	Label string `json:"path"`
	// Blocks is the total number of 512-byte blocks under the root.
	Blocks int64 `json:"blocks"`
	// Skipped is true when the root could not be accessed at all.
	Skipped bool `json:"skipped,omitempty"`
}

// Bytes returns the total in bytes.
func (u Usage) Bytes() int64 {
	return u.Blocks * BlockSize
}

// Results are the per-root totals of a finished run, in root order.
type Results struct {
	// Roots holds one entry per root, indexed by root id.
	Roots []Usage
	// Failed is true when any path or subpath could not be read.
	Failed bool
}

// Option configures a Pool.
type Option func(*Pool)

// WithFS replaces the filesystem the pool reads from.
func WithFS(fsys FS) Option {
	return func(p *Pool) {
		if fsys != nil {
			p.fs = fsys
		}
	}
}

// WithErrorOutput sets where per-path errors are reported.
func WithErrorOutput(w io.Writer) Option {
	return func(p *Pool) {
		p.log.errors = w
	}
}

// WithDebug enables debug output to w.
func WithDebug(w io.Writer) Option {
	return func(p *Pool) {
		p.log.enabled = w != nil
		p.log.debug = w
	}
}

// Pool coordinates the workers of a single disk usage computation.
//
// The lifecycle methods (Seed, Run, Results, Shutdown) must be called from a
// single goroutine, in that order.
type Pool struct {
	fs  FS
	log *logger

	numWorkers int

	// mu guards tasks, idle and terminated. cond is bound to mu.
	mu         sync.Mutex
	cond       *sync.Cond
	tasks      taskStack
	idle       int
	terminated bool

	accs    accumulators
	skipped []bool

	failMu sync.Mutex
	failed bool

	// Progress counters, read concurrently by progress reporters.
	entries atomic.Int64
	blocks  atomic.Int64

	phase phase
}

// NewPool creates a pool that measures one root per label using workers goroutines.
// Labels are used as paths and as display names.
func NewPool(labels []string, workers int, opts ...Option) (*Pool, error) {
	if len(labels) == 0 {
		return nil, ErrNoRoots
	}

	if workers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrWorkers, workers)
	}

	p := &Pool{
		fs:         OSFS{},
		log:        &logger{},
		numWorkers: workers,
		accs:       newAccumulators(labels),
		skipped:    make([]bool, len(labels)),
	}
	p.cond = sync.NewCond(&p.mu)

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Seed pushes one task per root. Roots that cannot be accessed are reported,
// marked as skipped and flag the run as failed. It returns ErrNoRoots when no
// root could be seeded.
func (p *Pool) Seed() error {
	if p.phase != phaseNew {
		return fmt.Errorf("%w: seed", ErrLifecycle)
	}

	seeded := 0

	for _, acc := range p.accs {
		if _, err := p.fs.StatLink(acc.label); err != nil {
			p.log.errorf("cannot access '%s': %v", acc.label, cause(err))
			p.skipped[acc.root] = true
			p.fail()

			continue
		}

		p.push(Task{Path: acc.label, Root: acc.root})
		seeded++
	}

	p.phase = phaseSeeded

	if seeded == 0 {
		return ErrNoRoots
	}

	p.log.printf("[debug]: seeded %d of %d roots\n", seeded, len(p.accs))

	return nil
}

// Run starts the workers and blocks until every one of them has terminated.
func (p *Pool) Run() error {
	if p.phase != phaseSeeded {
		return fmt.Errorf("%w: run", ErrLifecycle)
	}

	var wg sync.WaitGroup

	for id := range p.numWorkers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			p.work(id)
		}()
	}

	wg.Wait()

	p.phase = phaseDone

	return nil
}

// Results returns the per-root totals. It is only valid after Run returned.
func (p *Pool) Results() (Results, error) {
	if p.phase != phaseDone {
		return Results{}, fmt.Errorf("%w: results", ErrLifecycle)
	}

	roots := make([]Usage, len(p.accs))
	for i, acc := range p.accs {
		roots[i] = Usage{Label: acc.label, Blocks: acc.total(), Skipped: p.skipped[i]}
	}

	return Results{Roots: roots, Failed: p.hasFailed()}, nil
}

// Shutdown releases the pool's state. The pool cannot be used afterwards.
func (p *Pool) Shutdown() {
	p.mu.Lock()
	if pending := p.tasks.len(); pending > 0 {
		p.log.printf("[debug]: dropping %d pending tasks\n", pending)
	}

	p.tasks.clear()
	p.mu.Unlock()

	p.accs = nil
	p.skipped = nil
	p.phase = phaseClosed
}

// Progress returns the number of entries visited and the blocks published so far.
// It is safe to call while Run is in progress.
func (p *Pool) Progress() (entries, blocks int64) {
	return p.entries.Load(), p.blocks.Load()
}

// push adds a task and wakes one waiting worker.
func (p *Pool) push(t Task) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.tasks.push(t)
	p.cond.Signal()
}

// fail marks the run as failed. It only ever moves false to true.
func (p *Pool) fail() {
	p.failMu.Lock()
	defer p.failMu.Unlock()

	p.failed = true
}

func (p *Pool) hasFailed() bool {
	p.failMu.Lock()
	defer p.failMu.Unlock()

	return p.failed
}

// publish adds blocks to the total of root.
func (p *Pool) publish(root int, blocks int64) {
	p.accs.add(root, blocks)
	p.blocks.Add(blocks)
}
