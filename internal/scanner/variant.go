package scanner

import "os"

// FileSystem renders paths the way the host OS does
type FileSystem struct{}

// Separator returns the OS path separator
func (FileSystem) Separator() string {
	return string(os.PathSeparator)
}

// Suffix marks files and folders
func (FileSystem) Suffix(leaf bool) string {
	if leaf {
		return " (file)"
	}
	return " (folder)"
}
