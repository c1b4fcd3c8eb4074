// Package mdu computes disk usage for a set of root paths.
//
// Every root is split into tasks, one per directory, that a fixed number of
// workers drain from a shared LIFO pool. Workers detect completion with an
// idle-count barrier: the last worker to find the pool empty while all others
// are waiting declares the run finished. Sizes are reported in 512-byte blocks,
// like du.
package mdu
