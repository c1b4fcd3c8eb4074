package mdu

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"
)

// ErrMismatch is returned when the reference walk disagrees with the pool.
var ErrMismatch = errors.New("totals differ from reference walk")

// ReferenceBlocks measures root with fastwalk, independently of the task pool.
//
// It counts the same things the pool does: every path once, symbolic links
// not followed, directories included. The second result is true when any
// path could not be read.
func ReferenceBlocks(root string, workers int) (int64, bool) {
	info, err := os.Lstat(root)
	if err != nil {
		return 0, true
	}

	var (
		total  atomic.Int64
		failed atomic.Bool
	)

	total.Store(infoBlocks(info))

	if !info.IsDir() {
		return total.Load(), false
	}

	conf := &fastwalk.Config{
		Follow:     false, // Don't follow symlinks
		NumWorkers: workers,
	}

	cleanRoot := filepath.Clean(root)

	//nolint:varnamelen // d is standard for DirEntry
	walkErr := fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			failed.Store(true)

			return nil // Keep walking the rest of the tree
		}

		if path == root || filepath.Clean(path) == cleanRoot {
			return nil
		}

		entryInfo, err := d.Info()
		if err != nil {
			failed.Store(true)

			return nil //nolint:nilerr // Intentionally skip errors during walk
		}

		total.Add(infoBlocks(entryInfo))

		return nil
	})
	if walkErr != nil {
		failed.Store(true)
	}

	return total.Load(), failed.Load()
}

// verify compares results against a reference walk of every measured root.
func verify(results Results, workers int) error {
	for _, usage := range results.Roots {
		if usage.Skipped {
			continue
		}

		want, failed := ReferenceBlocks(usage.Label, workers)
		if failed {
			// Unreadable paths make both sides incomplete in possibly different ways.
			continue
		}

		if want != usage.Blocks {
			return fmt.Errorf("%w: %q: got %d blocks, reference walk found %d",
				ErrMismatch, usage.Label, usage.Blocks, want)
		}
	}

	return nil
}
