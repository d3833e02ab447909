package duview

import (
	"context"
	"time"

	"github.com/duview/duview/pkg/scan"
)

// tableRefreshEvery throttles inventory refreshes during a scan. The stats
// and category panels are cheap and update on every snapshot.
const tableRefreshEvery = time.Second

type fileProgress struct {
	count int64
	path  string
}

// session is one running scan: the walking goroutine, two latest-wins
// hand-off channels and a consumer that applies updates on the UI goroutine.
type session struct {
	an     *Analyzer
	cancel context.CancelFunc

	snapshots chan *scan.Aggregate
	progress  chan fileProgress
	done      chan struct{}
}

func newSession(an *Analyzer, path string, depth int) *session {
	ctx, cancel := context.WithCancel(context.Background())
	s := &session{
		an:        an,
		cancel:    cancel,
		snapshots: make(chan *scan.Aggregate, 1),
		progress:  make(chan fileProgress, 1),
		done:      make(chan struct{}),
	}

	scanner := scan.New(an.store,
		scan.WithMaxDepth(depth),
		scan.WithLogger(an.log),
		scan.WithFileVisited(func(count int64, p string) {
			offer(s.progress, fileProgress{count: count, path: p})
		}),
		scan.WithSnapshots(func(agg *scan.Aggregate) {
			offer(s.snapshots, agg)
		}),
	)

	go s.consume()

	go func() {
		agg := scanner.Scan(ctx, path)
		cancelled := ctx.Err() != nil
		close(s.done)
		an.queueDraw(func() {
			an.finishScan(agg, cancelled)
		})
	}()

	return s
}

// offer replaces the pending value instead of blocking. The walk must never
// wait for the UI, and the UI only wants the latest state anyway.
func offer[T any](ch chan T, v T) {
	for {
		select {
		case ch <- v:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

func (s *session) consume() {
	var lastTableRefresh time.Time
	for {
		select {
		case <-s.done:
			return
		case p := <-s.progress:
			s.an.queueDraw(func() {
				s.an.applyProgress(p)
			})
		case agg := <-s.snapshots:
			refreshTable := time.Since(lastTableRefresh) >= tableRefreshEvery
			if refreshTable {
				lastTableRefresh = time.Now()
			}
			s.an.queueDraw(func() {
				s.an.applySnapshot(agg, refreshTable)
			})
		}
	}
}
