package mdu

import (
	"io/fs"
	"path/filepath"
	"slices"
	"sort"
)

// fakeNode is one entry of a fakeFS.
type fakeNode struct {
	dir      bool
	blocks   int64
	children []string
}

// fakeFS is an in-memory FS. It is built before a run and only read during it.
type fakeFS struct {
	nodes   map[string]*fakeNode
	statErr map[string]error
	listErr map[string]error
	partial map[string]bool
}

func newFakeFS() *fakeFS {
	return &fakeFS{
		nodes:   make(map[string]*fakeNode),
		statErr: make(map[string]error),
		listErr: make(map[string]error),
		partial: make(map[string]bool),
	}
}

// dir adds a directory with its own block count, creating missing parents.
func (f *fakeFS) dir(path string, blocks int64) *fakeFS {
	f.add(path, &fakeNode{dir: true, blocks: blocks})

	return f
}

// file adds a regular file, creating missing parents.
func (f *fakeFS) file(path string, blocks int64) *fakeFS {
	f.add(path, &fakeNode{blocks: blocks})

	return f
}

// denyList makes listing path fail without returning any entry.
func (f *fakeFS) denyList(path string) *fakeFS {
	f.listErr[path] = fs.ErrPermission

	return f
}

// breakList makes listing path fail after returning the entries it has.
func (f *fakeFS) breakList(path string) *fakeFS {
	f.listErr[path] = fs.ErrInvalid
	f.partial[path] = true

	return f
}

// denyStat makes stat of path fail.
func (f *fakeFS) denyStat(path string) *fakeFS {
	f.statErr[path] = fs.ErrPermission

	return f
}

func (f *fakeFS) add(path string, node *fakeNode) {
	path = filepath.Clean(path)

	if existing, ok := f.nodes[path]; ok {
		existing.dir = node.dir
		existing.blocks = node.blocks

		return
	}

	f.nodes[path] = node

	parent := filepath.Dir(path)
	if parent == path || parent == "." {
		return
	}

	if _, ok := f.nodes[parent]; !ok {
		f.add(parent, &fakeNode{dir: true})
	}

	f.nodes[parent].children = append(f.nodes[parent].children, filepath.Base(path))
}

// StatLink implements FS.
func (f *fakeFS) StatLink(path string) (Stat, error) {
	if err, ok := f.statErr[path]; ok {
		return Stat{}, &fs.PathError{Op: "lstat", Path: path, Err: err}
	}

	node, ok := f.nodes[path]
	if !ok {
		return Stat{}, &fs.PathError{Op: "lstat", Path: path, Err: fs.ErrNotExist}
	}

	return Stat{IsDir: node.dir, Blocks: node.blocks}, nil
}

// ListChildren implements FS.
func (f *fakeFS) ListChildren(path string) ([]string, error) {
	node, ok := f.nodes[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}

	names := slices.Clone(node.children)

	if err, ok := f.listErr[path]; ok {
		if !f.partial[path] {
			names = nil
		}

		return names, &fs.PathError{Op: "readdirent", Path: path, Err: err}
	}

	return names, nil
}

// sequentialBlocks sums a subtree recursively on a single goroutine.
func (f *fakeFS) sequentialBlocks(path string) int64 {
	node, ok := f.nodes[path]
	if !ok {
		return 0
	}

	total := node.blocks

	children := slices.Clone(node.children)
	sort.Strings(children)

	for _, name := range children {
		total += f.sequentialBlocks(filepath.Join(path, name))
	}

	return total
}
