package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/duview/duview/pkg/files/osfile"
	"github.com/duview/duview/pkg/fsutils"
	"github.com/duview/duview/pkg/report"
	"github.com/duview/duview/pkg/scan"
)

func (c CLI) newReportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "report [path]",
		Short: "Scan a directory and print a summary",
		Long: heredoc.Doc(`
			report walks the tree headlessly and prints the totals, the
			category breakdown and the largest items to stdout. The path
			defaults to the current directory.

			While stderr is a terminal a single status line tracks the scan.
			Interrupting with Ctrl-C stops the walk and reports the consistent
			partial result gathered so far.
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}
			return runReport(cmd, path, output, resolveConfig())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format: json or table")

	return cmd
}

func runReport(cmd *cobra.Command, path, output string, cfg config) error {
	allowedOutputs := []string{"table", "json"}
	if !slices.Contains(allowedOutputs, output) {
		return fmt.Errorf("invalid output format %q: must be one of %v", output, allowedOutputs)
	}

	path = fsutils.ExpandHome(path)
	ok, err := fsutils.DirExists(path)
	if err != nil {
		return fmt.Errorf("cannot stat %s: %w", path, err)
	}
	if !ok {
		return fmt.Errorf("not a directory: %s", path)
	}

	log, closeLog, err := fileLogger(cfg.logFile, slog.NewTextHandler(os.Stderr, nil))
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt, syscall.SIGTERM)
	defer close(interrupts)
	defer signal.Stop(interrupts)
	go func() {
		if _, ok := <-interrupts; ok {
			cancel()
		}
	}()

	enableProgress := output != "json" && isatty.IsTerminal(os.Stderr.Fd())

	var onSnapshot scan.SnapshotFunc
	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		onSnapshot = func(agg *scan.Aggregate) {
			msg := fmt.Sprintf("Scanning… %d files, %s",
				agg.FileCount, humanize.IBytes(uint64(agg.TotalSize)))
			fmt.Fprintf(os.Stderr, "\r\033[2K%s\r", msg)
		}
	}

	scanner := scan.New(osfile.NewStore(),
		scan.WithMaxDepth(cfg.depth),
		scan.WithLogger(log),
		scan.WithSnapshots(onSnapshot),
	)

	start := time.Now()
	agg := scanner.Scan(ctx, path)
	elapsed := time.Since(start)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if ctx.Err() != nil {
		fmt.Fprintln(os.Stderr, "scan interrupted, reporting the part of the tree already walked")
	}

	r := report.New(path, agg, elapsed)

	switch output {
	case "json":
		return report.PrintJSON(r, cmd.OutOrStdout())
	case "table":
		return report.PrintTable(r, cmd.OutOrStdout())
	default:
		return fmt.Errorf("unknown output format: %s", output)
	}
}
