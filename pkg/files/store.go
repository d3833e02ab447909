package files

import (
	"context"
	"os"
)

// Store lists directory contents. Implementations must fail fast once ctx is
// done.
type Store interface {
	ReadDir(ctx context.Context, name string) ([]os.DirEntry, error)
}
