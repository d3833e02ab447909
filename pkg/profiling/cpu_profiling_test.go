package profiling

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The seams are package globals, so none of these tests can run in parallel.

func TestDoCPUProfiling(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fileName := filepath.Join(t.TempDir(), "cpu.prof")

		closeFunc := DoCPUProfiling(fileName)
		if assert.NotNil(t, closeFunc) {
			closeFunc()
		}

		info, err := os.Stat(fileName)
		assert.NoError(t, err)
		assert.NotZero(t, info.Size())
	})

	t.Run("create_error", func(t *testing.T) {
		origOsCreate := osCreate
		t.Cleanup(func() { osCreate = origOsCreate })
		osCreate = func(name string) (*os.File, error) {
			return nil, errors.New("mock error")
		}

		closeFunc := DoCPUProfiling("unused")
		if assert.NotNil(t, closeFunc, "close func must be callable even when profiling never started") {
			closeFunc()
		}
	})

	t.Run("start_error", func(t *testing.T) {
		origStart := pprofStartCPUProfile
		t.Cleanup(func() { pprofStartCPUProfile = origStart })
		pprofStartCPUProfile = func(w io.Writer) error {
			return errors.New("mock pprof error")
		}

		closeFunc := DoCPUProfiling(filepath.Join(t.TempDir(), "cpu.prof"))
		if assert.NotNil(t, closeFunc) {
			closeFunc()
		}
	})
}
