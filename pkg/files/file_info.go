package files

import (
	"os"
	"time"
)

var _ os.FileInfo = FileInfo{}

// FileInfo is the os.FileInfo view of a synthetic DirEntry.
type FileInfo struct {
	DirEntry
}

func (f FileInfo) Size() int64        { return f.size }
func (f FileInfo) Mode() os.FileMode  { return f.mode }
func (f FileInfo) ModTime() time.Time { return f.modTime }
func (f FileInfo) Sys() any           { return nil }
