//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package mdu

import (
	"errors"
	"io/fs"
	"syscall"

	"golang.org/x/sys/unix"
)

// statLink reads st_blocks with lstat(2), which reports 512-byte units.
func statLink(path string) (Stat, error) {
	var st unix.Stat_t

	for {
		err := unix.Lstat(path, &st)
		if errors.Is(err, unix.EINTR) {
			continue
		}

		if err != nil {
			return Stat{}, &fs.PathError{Op: "lstat", Path: path, Err: err}
		}

		break
	}

	return Stat{
		IsDir:  st.Mode&unix.S_IFMT == unix.S_IFDIR,
		Blocks: int64(st.Blocks), //nolint:unconvert // Blocks is not int64 on every platform
	}, nil
}

// infoBlocks returns the allocated blocks of an already retrieved FileInfo.
func infoBlocks(info fs.FileInfo) int64 {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return int64(st.Blocks) //nolint:unconvert // Blocks is not int64 on every platform
	}

	return blocksFromSize(info.Size())
}
