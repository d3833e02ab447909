// Package profiling wires runtime/pprof into the command line flags.
package profiling

import (
	"fmt"
	"os"
	"runtime/pprof"
)

var osCreate = os.Create
var pprofStartCPUProfile = pprof.StartCPUProfile

// DoCPUProfiling starts CPU profiling into the named file. The returned
// func stops profiling and closes the file, and is safe to call even when
// starting failed.
func DoCPUProfiling(fileName string) (closeFunc func()) {
	f, err := osCreate(fileName)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "could not create CPU profile %s: %v\n", fileName, err)
		return func() {}
	}
	if err = pprofStartCPUProfile(f); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "could not start CPU profile: %v\n", err)
		_ = f.Close()
		return func() {}
	}
	return func() {
		pprof.StopCPUProfile()
		_ = f.Close()
	}
}
