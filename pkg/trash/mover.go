// Package trash moves files and directories into the user trash directory
// instead of deleting them.
package trash

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// DefaultDir returns the conventional user trash location.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".local", "share", "Trash", "files")
}

type MoverOption func(*Mover)

func WithDir(dir string) MoverOption {
	return func(m *Mover) {
		m.dir = dir
	}
}

func WithLogger(log *slog.Logger) MoverOption {
	return func(m *Mover) {
		m.log = log
	}
}

// Mover renames entries into a trash directory, dodging name collisions
// with a counter suffix.
type Mover struct {
	fs  afero.Fs
	dir string
	log *slog.Logger
}

func NewMover(o ...MoverOption) *Mover {
	return NewMoverWithFs(afero.NewOsFs(), o...)
}

func NewMoverWithFs(fs afero.Fs, o ...MoverOption) *Mover {
	m := &Mover{
		fs:  fs,
		dir: DefaultDir(),
	}
	for _, opt := range o {
		opt(m)
	}
	if m.log == nil {
		m.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return m
}

// Move renames path into the trash directory, creating it as needed. When
// the name is taken it retries as stem_1, stem_2, ... before the extension.
// It returns the destination path.
func (m *Mover) Move(path string) (string, error) {
	if err := m.fs.MkdirAll(m.dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create trash directory: %w", err)
	}

	name := filepath.Base(path)
	ext := filepath.Ext(name)
	if ext == name {
		// Dotfiles keep their name whole.
		ext = ""
	}
	stem := strings.TrimSuffix(name, ext)

	dest := filepath.Join(m.dir, name)
	for counter := 1; m.exists(dest); counter++ {
		dest = filepath.Join(m.dir, fmt.Sprintf("%s_%d%s", stem, counter, ext))
	}

	if err := m.fs.Rename(path, dest); err != nil {
		return "", fmt.Errorf("cannot move %s to trash: %w", path, err)
	}
	m.log.Info("moved to trash",
		slog.String("path", path), slog.String("dest", dest))
	return dest, nil
}

func (m *Mover) exists(path string) bool {
	_, err := m.fs.Stat(path)
	return err == nil
}
