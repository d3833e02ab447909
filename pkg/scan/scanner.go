package scan

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/duview/duview/pkg/files"
)

// snapshotEvery is the number of file visits between periodic snapshots.
const snapshotEvery = 50

// NoDepthLimit disables the depth bound.
const NoDepthLimit = -1

// FileVisitedFunc receives the running file count and the path of the file
// just visited.
type FileVisitedFunc func(count int64, path string)

// SnapshotFunc receives a read-only copy of the aggregate. It must hand the
// snapshot off rather than do heavy work inline: the walk continues as soon
// as it returns.
type SnapshotFunc func(*Aggregate)

type Option func(*Scanner)

// WithMaxDepth bounds recursion depth; the root is depth 0 and negative
// means unlimited. Directories below the bound show up as zero-sized leaves
// and are excluded from every counter.
func WithMaxDepth(depth int) Option {
	return func(s *Scanner) {
		s.maxDepth = depth
	}
}

func WithFileVisited(f FileVisitedFunc) Option {
	return func(s *Scanner) {
		s.onFile = f
	}
}

func WithSnapshots(f SnapshotFunc) Option {
	return func(s *Scanner) {
		s.onSnapshot = f
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(s *Scanner) {
		s.log = log
	}
}

// Scanner walks a directory tree sequentially, depth first, accumulating
// usage statistics. A Scanner is reusable; every Scan call owns a fresh
// Aggregate.
type Scanner struct {
	store      files.Store
	log        *slog.Logger
	maxDepth   int
	onFile     FileVisitedFunc
	onSnapshot SnapshotFunc
}

func New(store files.Store, o ...Option) *Scanner {
	s := &Scanner{
		store:    store,
		maxDepth: NoDepthLimit,
	}
	for _, opt := range o {
		opt(s)
	}
	if s.log == nil {
		s.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

// Scan walks the tree rooted at root until it is exhausted or ctx is
// cancelled. It never fails: an unreadable root yields an empty Aggregate
// and a cancelled walk returns the consistent partial result accumulated so
// far. A final snapshot fires either way.
func (s *Scanner) Scan(ctx context.Context, root string) *Aggregate {
	w := &walker{Scanner: s, agg: NewAggregate()}
	w.walk(ctx, root, 0)
	w.snapshot()
	return w.agg
}

// walker is the per-call scan state.
type walker struct {
	*Scanner
	agg    *Aggregate
	visits int64
}

// walk returns the byte size of the subtree at path that was actually
// visited. Cutoffs, failures and cancellation all contribute zero or the
// partial sum gathered before stopping; the inventory entry for path itself
// is the caller's job.
func (w *walker) walk(ctx context.Context, path string, depth int) int64 {
	if ctx.Err() != nil {
		return 0
	}
	if w.maxDepth >= 0 && depth > w.maxDepth {
		return 0
	}

	children, err := w.store.ReadDir(ctx, path)
	if err != nil {
		w.log.Debug("skipping unreadable directory",
			slog.String("path", path), slog.Any("error", err))
		return 0
	}
	w.agg.DirCount++

	var total int64
	for _, child := range children {
		if ctx.Err() != nil {
			break
		}
		childPath := filepath.Join(path, child.Name())
		switch {
		case child.Type()&os.ModeSymlink != 0:
			// Never followed, never counted; this also breaks cycles.
			w.log.Debug("skipping symlink", slog.String("path", childPath))
		case child.IsDir():
			size := w.walk(ctx, childPath, depth+1)
			total += size
			w.agg.addDir(childPath, child.Name(), size)
			w.snapshot()
		case child.Type().IsRegular():
			info, err := child.Info()
			if err != nil {
				w.log.Debug("skipping unreadable file",
					slog.String("path", childPath), slog.Any("error", err))
				continue
			}
			size := info.Size()
			total += size
			w.agg.addFile(childPath, child.Name(), size, Categorize(child.Name()))
			w.fileVisited(childPath)
		default:
			// Sockets, devices, fifos: not part of the inventory.
		}
	}
	return total
}

func (w *walker) fileVisited(path string) {
	if w.onFile != nil {
		w.observe(func() {
			w.onFile(w.agg.FileCount, path)
		})
	}
	w.visits++
	if w.visits%snapshotEvery == 0 {
		w.snapshot()
	}
}

func (w *walker) snapshot() {
	if w.onSnapshot == nil {
		return
	}
	snap := w.agg.Snapshot()
	w.observe(func() {
		w.onSnapshot(snap)
	})
}

// observe shields the walk from observer callbacks: a panicking observer is
// logged and the traversal carries on.
func (w *walker) observe(f func()) {
	defer func() {
		if r := recover(); r != nil {
			w.log.Error("observer panicked", slog.Any("panic", r))
		}
	}()
	f()
}
