//go:build unix

package scanner

import (
	"io/fs"
	"sync"
	"syscall"

	"golang.org/x/sys/unix"
)

// platformRootInfo identifies the filesystem the scan started on
type platformRootInfo struct {
	dev uint64
}

func getPlatformRootInfo(path string) platformRootInfo {
	var stat unix.Stat_t
	if err := unix.Stat(path, &stat); err != nil {
		return platformRootInfo{}
	}
	return platformRootInfo{dev: uint64(stat.Dev)}
}

// shouldSkipDir skips mount points and directories already reached through
// another link (firmlinks on macOS)
func shouldSkipDir(path string, d fs.DirEntry, rootInfo platformRootInfo, seenItems *sync.Map) bool {
	info, err := d.Info()
	if err != nil {
		return false
	}
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return false
	}

	if rootInfo.dev != 0 && uint64(stat.Dev) != rootInfo.dev {
		return true
	}
	_, seen := seenItems.LoadOrStore(stat.Ino, true)
	return seen
}

// getFileSize returns allocated bytes, or -1 for a hard link already counted
func getFileSize(info fs.FileInfo, seenItems *sync.Map) int64 {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return info.Size()
	}

	if stat.Nlink > 1 {
		if _, seen := seenItems.LoadOrStore(stat.Ino, true); seen {
			return -1
		}
	}

	// Blocks is in 512-byte units
	return int64(stat.Blocks) * 512
}
