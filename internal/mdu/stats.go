package mdu

import (
	"io"
	"time"
)

// Stats holds the outcome of a disk usage run.
type Stats struct {
	// Roots contains the total of every root, in the order they were given.
	Roots []Usage `json:"roots"`
	// Failed indicates that at least one path could not be read.
	Failed bool `json:"failed"`
	// Entries is the number of files and directories measured.
	Entries int64 `json:"entries"`
	// Workers is the number of workers that took part.
	Workers int `json:"workers"`
	// Verified indicates the totals were checked against a reference walk.
	Verified bool `json:"verified"`
	// Elapsed is the total time taken for the measurement.
	Elapsed time.Duration `json:"elapsed"`
}

// TotalBlocks returns the sum over all measured roots.
func (s *Stats) TotalBlocks() int64 {
	var total int64

	for _, root := range s.Roots {
		total += root.Blocks
	}

	return total
}

// Options configures a disk usage run and CLI behavior.
type Options struct {
	// Paths are the roots to measure.
	Paths []string
	// Workers is the number of concurrent workers.
	Workers int
	// Human indicates whether sizes are printed in human-readable units.
	Human bool
	// Verify indicates whether totals are checked against a reference walk.
	Verify bool
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// Debug indicates whether debug output is enabled.
	Debug bool
	// Output represents output format (table or json).
	Output string
	// Version indicates whether to show version and exit.
	Version bool
	// ErrOutput receives per-path errors and debug output. Defaults to os.Stderr.
	ErrOutput io.Writer
	// FS overrides the filesystem. Defaults to the operating system.
	FS FS
}
