package mdu

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// process measures the path of a single task.
//
// Files are added to the root's total directly. For a directory the blocks of
// the directory itself and of its non-directory entries are summed locally and
// published once; every subdirectory becomes a new task so that idle workers
// can pick it up.
func (p *Pool) process(t Task) {
	st, err := p.fs.StatLink(t.Path)
	if err != nil {
		p.log.errorf("cannot access '%s': %v", t.Path, cause(err))
		p.fail()

		return
	}

	p.entries.Add(1)

	if !st.IsDir {
		p.publish(t.Root, st.Blocks)

		return
	}

	total := st.Blocks

	// A partial listing is still measured; only the entries it lost are missing.
	names, listErr := p.fs.ListChildren(t.Path)

	for _, name := range names {
		if name == "." || name == ".." {
			continue
		}

		child := joinPath(t.Path, name)

		childStat, err := p.fs.StatLink(child)
		if err != nil {
			p.log.errorf("cannot access '%s': %v", child, cause(err))
			p.fail()

			continue
		}

		if childStat.IsDir {
			p.push(Task{Path: child, Root: t.Root})

			continue
		}

		p.entries.Add(1)

		total += childStat.Blocks
	}

	if listErr != nil {
		p.log.errorf("cannot read directory '%s': %v", t.Path, cause(listErr))
		p.fail()
	}

	p.publish(t.Root, total)
}

// joinPath appends name to dir without cleaning the result. Lexical cleaning
// would resolve ".." before the kernel follows symlinks in dir.
func joinPath(dir, name string) string {
	if dir == "" {
		return name
	}

	if os.IsPathSeparator(dir[len(dir)-1]) {
		return dir + name
	}

	return dir + string(filepath.Separator) + name
}

// cause strips the path and operation from filesystem errors, since every
// message already names the path.
func cause(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}

	return err
}
