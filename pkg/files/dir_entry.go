package files

import (
	"os"
	"path/filepath"
	"time"
)

type DirEntryOption func(*DirEntry)

// AsDir marks the entry as a directory.
func AsDir() DirEntryOption {
	return func(d *DirEntry) {
		d.mode = os.ModeDir
	}
}

// AsSymlink marks the entry as a symbolic link.
func AsSymlink() DirEntryOption {
	return func(d *DirEntry) {
		d.mode = os.ModeSymlink
	}
}

func Size(v int64) DirEntryOption {
	return func(d *DirEntry) {
		d.size = v
	}
}

func ModTime(v time.Time) DirEntryOption {
	return func(d *DirEntry) {
		d.modTime = v
	}
}

// InfoErr makes Info fail, the way stat fails on a file removed between
// listing and visiting.
func InfoErr(err error) DirEntryOption {
	return func(d *DirEntry) {
		d.infoErr = err
	}
}

// NewDirEntry returns a synthetic os.DirEntry. Without options it describes
// an empty regular file.
func NewDirEntry(name string, o ...DirEntryOption) DirEntry {
	if parent, _ := filepath.Split(name); parent != "" {
		// It's OK to have panic here.
		panic("dir entry name can not have path: " + name)
	}
	dirEntry := DirEntry{name: name}
	for _, opt := range o {
		opt(&dirEntry)
	}
	return dirEntry
}

var _ os.DirEntry = DirEntry{}

type DirEntry struct {
	name    string
	mode    os.FileMode
	size    int64
	modTime time.Time
	infoErr error
}

func (d DirEntry) Name() string      { return d.name }
func (d DirEntry) IsDir() bool       { return d.mode.IsDir() }
func (d DirEntry) Type() os.FileMode { return d.mode }
func (d DirEntry) Info() (os.FileInfo, error) {
	if d.infoErr != nil {
		return nil, d.infoErr
	}
	return FileInfo{DirEntry: d}, nil
}
