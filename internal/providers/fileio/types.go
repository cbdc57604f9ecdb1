package fileio

import "os"

// FileOps provides common helpers for file demonstrations. Every
// demonstration works under BaseDir and cleans up after itself.
type FileOps struct {
	BaseDir string
}

// tempDir returns the directory demonstrations work in.
func (ops *FileOps) tempDir() string {
	if ops.BaseDir != "" {
		return ops.BaseDir
	}
	return os.TempDir()
}
