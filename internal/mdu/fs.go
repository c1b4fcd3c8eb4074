package mdu

import (
	"os"
)

// BlockSize is the size in bytes of the allocation unit all totals are reported in.
const BlockSize = 512

// Stat is the metadata the traversal needs about a single path.
type Stat struct {
	// IsDir is true when the path is a directory. Symbolic links are never directories.
	IsDir bool
	// Blocks is the number of 512-byte blocks allocated to the path.
	Blocks int64
}

// FS provides the filesystem primitives used by the traversal.
//
// Both methods may perform real I/O and are always called without holding
// the task pool lock.
type FS interface {
	// StatLink returns metadata for path without following symbolic links.
	StatLink(path string) (Stat, error)
	// ListChildren returns the names of the entries of the directory at path.
	// It may return a partial listing together with an error.
	ListChildren(path string) ([]string, error)
}

// OSFS implements FS on top of the operating system.
type OSFS struct{}

// StatLink implements FS.
func (OSFS) StatLink(path string) (Stat, error) {
	return statLink(path)
}

// ListChildren implements FS.
func (OSFS) ListChildren(path string) ([]string, error) {
	dir, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer dir.Close()

	return dir.Readdirnames(-1)
}

// blocksFromSize rounds size in bytes up to whole blocks.
func blocksFromSize(size int64) int64 {
	if size <= 0 {
		return 0
	}

	return (size + BlockSize - 1) / BlockSize
}
