package mdu

import (
	"context"
	"fmt"
	"os"
	"time"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// startProgressReporter invokes hook(entries, bytes) on each tick until the
// returned stop function is called. stop waits for the reporter to exit, so
// hook is never called after it returns.
func startProgressReporter(p *Pool, hook func(int64, int64), interval time.Duration) (stop func()) {
	if hook == nil {
		return func() {}
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	ticker := time.NewTicker(interval)

	go func() {
		defer close(done)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				entries, blocks := p.Progress()
				hook(entries, blocks*BlockSize)
			case <-ctx.Done():
				return
			}
		}
	}()

	return func() {
		cancel()
		<-done
	}
}

// Run measures every path in opt.Paths with opt.Workers concurrent workers
// and returns the per-root totals.
//
// Paths that cannot be read are reported to opt.ErrOutput and set
// Stats.Failed; the totals then cover everything that could be measured.
// An error is only returned when nothing could be measured at all, or when
// opt.Verify is set and the reference walk disagrees.
//
// Progress updates are sent to progressHook if provided. The measurement
// itself cannot be cancelled once started.
func Run(opt Options, progressHook func(int64, int64)) (*Stats, error) {
	if opt.Workers == 0 {
		opt.Workers = 1
	}

	if opt.ErrOutput == nil {
		opt.ErrOutput = os.Stderr
	}

	options := []Option{
		WithFS(opt.FS),
		WithErrorOutput(opt.ErrOutput),
	}

	if opt.Debug {
		options = append(options, WithDebug(opt.ErrOutput))
	}

	pool, err := NewPool(opt.Paths, opt.Workers, options...)
	if err != nil {
		return nil, fmt.Errorf("creating worker pool: %w", err)
	}
	defer pool.Shutdown()

	start := time.Now()

	if err := pool.Seed(); err != nil {
		return nil, err
	}

	stopProgress := startProgressReporter(pool, progressHook, opt.ProgressInterval)

	err = pool.Run()

	stopProgress()

	if err != nil {
		return nil, err
	}

	results, err := pool.Results()
	if err != nil {
		return nil, err
	}

	entries, _ := pool.Progress()

	stats := &Stats{
		Roots:   results.Roots,
		Failed:  results.Failed,
		Entries: entries,
		Workers: opt.Workers,
		Elapsed: time.Since(start),
	}

	pool.log.printf("[debug]: measured %d entries in %v\n", entries, stats.Elapsed)

	if opt.Verify && opt.FS == nil {
		if err := verify(results, opt.Workers); err != nil {
			return stats, err
		}

		stats.Verified = true
	}

	return stats, nil
}
