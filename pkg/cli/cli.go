// Package cli wires the duview commands together: the interactive viewer as
// the root command and the headless report mode as a subcommand.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"path/filepath"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/duview/duview/pkg/duview"
	"github.com/duview/duview/pkg/fsutils"
	"github.com/duview/duview/pkg/profiling"
	"github.com/duview/duview/pkg/scan"
)

var osUserHomeDir = os.UserHomeDir
var httpListenAndServe = http.ListenAndServe

var setupApp = duview.SetupApp

type application interface{ Run() error }

var runApp = func(app application) error {
	return app.Run()
}

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Execute runs the CLI with the process arguments.
func (c CLI) Execute() error {
	return c.newRootCmd().Execute()
}

// options holds the raw flag values; the effective configuration is read
// through viper so config file and environment settings apply.
type options struct {
	depth      int
	logFile    string
	trashDir   string
	cpuProfile string
	memProfile string
	pprofAddr  string
}

// config is the resolved configuration, flag > env > file > default.
type config struct {
	depth    int
	logFile  string
	trashDir string
}

func resolveConfig() config {
	return config{
		depth:    viper.GetInt("depth"),
		logFile:  viper.GetString("log_file"),
		trashDir: viper.GetString("trash_dir"),
	}
}

func (c CLI) newRootCmd() *cobra.Command {
	opts := &options{}

	var stopProfiling func()

	root := &cobra.Command{
		Use:   "duview [path]",
		Short: "Interactive disk usage viewer for the terminal",
		Long: heredoc.Doc(`
			duview walks a directory tree, sizes everything it can reach and
			breaks the total down by content category.

			Without a subcommand it opens the full-screen viewer: live totals
			while the scan runs, a category breakdown, and an item table with
			move-to-trash and reveal-in-file-manager actions. A scan can be
			cancelled at any point; the numbers shown for a cancelled scan are
			consistent for the part of the tree already walked.

			Configuration is read from ~/.config/duview/config.yaml and from
			DUVIEW_* environment variables; flags take precedence.
		`),
		Version:       c.version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initConfig()
			stopProfiling = startProfiling(opts)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if stopProfiling != nil {
				stopProfiling()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultPath()
			if len(args) > 0 {
				path = args[0]
			}
			return runTUI(path, resolveConfig())
		},
	}

	pf := root.PersistentFlags()
	pf.IntVarP(&opts.depth, "depth", "d", scan.NoDepthLimit,
		"Maximum depth below the root (negative for unlimited)")
	pf.StringVar(&opts.logFile, "log-file", "", "Append log output to `file`")
	pf.StringVar(&opts.trashDir, "trash-dir", "", "Move deleted items to `dir` instead of the user trash")
	pf.StringVar(&opts.cpuProfile, "cpuprofile", "", "write cpu profile to `file`")
	pf.StringVar(&opts.memProfile, "memprofile", "", "write memory profile to `file`")
	pf.StringVar(&opts.pprofAddr, "pprof", "", "start pprof http server on `address` (e.g. localhost:6060)")

	_ = viper.BindPFlag("depth", pf.Lookup("depth"))
	_ = viper.BindPFlag("log_file", pf.Lookup("log-file"))
	_ = viper.BindPFlag("trash_dir", pf.Lookup("trash-dir"))

	root.AddCommand(c.newReportCmd())

	return root
}

// initConfig reads in the config file and DUVIEW_* environment variables.
func initConfig() {
	if home, err := osUserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "duview"))
	}
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("DUVIEW")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			_, _ = fmt.Fprintf(os.Stderr, "cannot read config file: %v\n", err)
		}
	}
}

func defaultPath() string {
	home, err := osUserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

func runTUI(path string, cfg config) error {
	log, closeLog, err := fileLogger(cfg.logFile, slog.NewTextHandler(io.Discard, nil))
	if err != nil {
		return err
	}
	defer closeLog()

	app := tview.NewApplication()
	setupApp(app, duview.Config{
		Path:     path,
		MaxDepth: cfg.depth,
		TrashDir: cfg.trashDir,
		Logger:   log,
	})
	return runApp(app)
}

// fileLogger returns a logger appending to path, or one backed by fallback
// when no path is configured. The returned func closes the log file.
func fileLogger(path string, fallback slog.Handler) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(fallback), func() {}, nil
	}
	f, err := os.OpenFile(fsutils.ExpandHome(path), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file %q: %w", path, err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), func() { _ = f.Close() }, nil
}

func startProfiling(opts *options) func() {
	if opts.pprofAddr != "" {
		go func() {
			if err := httpListenAndServe(opts.pprofAddr, nil); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "pprof server error: %v\n", err)
			}
		}()
	}

	stops := make([]func(), 0, 2)
	if opts.cpuProfile != "" {
		stops = append(stops, profiling.DoCPUProfiling(opts.cpuProfile))
	}
	if opts.memProfile != "" {
		stops = append(stops, profiling.DoMemProfiling(opts.memProfile))
	}
	return func() {
		for _, stop := range stops {
			stop()
		}
	}
}
