package profiling

import (
	"fmt"
	"os"
	"runtime/pprof"
	"time"
)

var pprofWriteHeapProfile = pprof.WriteHeapProfile
var memProfilingInterval = 30 * time.Second

// DoMemProfiling rewrites the named file with a fresh heap profile on a
// fixed interval until the process exits. The returned func forces a write,
// so callers can defer it to capture the final state.
func DoMemProfiling(fileName string) (writeMemProfile func()) {
	writeMemProfile = func() {
		f, err := osCreate(fileName)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "could not create memory profile %s: %v\n", fileName, err)
			return
		}
		defer func() {
			_ = f.Close()
		}()
		if err = pprofWriteHeapProfile(f); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "could not write memory profile: %v\n", err)
		}
	}

	interval := memProfilingInterval
	go func() {
		for {
			time.Sleep(interval)
			writeMemProfile()
		}
	}()

	return writeMemProfile
}
