package osfile

import (
	"context"
	"os"

	"github.com/duview/duview/pkg/files"
)

var osReadDir = os.ReadDir

var _ files.Store = (*Store)(nil)

// Store reads directories from the local filesystem.
type Store struct{}

func NewStore() *Store {
	return &Store{}
}

func (s Store) ReadDir(ctx context.Context, name string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return osReadDir(name)
}
