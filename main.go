package main

import (
	"fmt"
	"os"

	"github.com/duview/duview/pkg/cli"
)

// version is set at build time via -ldflags.
var version = "dev"

var osExit = os.Exit

var execute = func() error {
	return cli.New(version).Execute()
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Recovered from panic: %v\n", r)
			osExit(1)
		}
	}()

	if err := execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		osExit(1)
	}
}
