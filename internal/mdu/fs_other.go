//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package mdu

import (
	"io/fs"
	"os"
)

// statLink approximates allocated blocks from the apparent size where the
// platform does not expose st_blocks.
func statLink(path string) (Stat, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return Stat{}, err
	}

	return Stat{
		IsDir:  info.IsDir(),
		Blocks: infoBlocks(info),
	}, nil
}

// infoBlocks returns the allocated blocks of an already retrieved FileInfo.
func infoBlocks(info fs.FileInfo) int64 {
	if info.IsDir() {
		return 0
	}

	return blocksFromSize(info.Size())
}
