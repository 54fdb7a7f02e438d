// Package main is the entry point for the reduxact scenario runner.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/kuzn-ilya/redux-act-typings-tests/internal/logging"
	"github.com/kuzn-ilya/redux-act-typings-tests/internal/scenario"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// errFailed is returned after all scenarios ran and at least one failed.
// Individual failures have already been reported.
var errFailed = errors.New("one or more scenarios failed")

type runOptions struct {
	logLevel  string
	logFormat string
	metrics   bool
	trace     bool
}

func main() {
	os.Exit(run())
}

func run() int {
	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "reduxact",
		Short:         "Run action creator and reducer scenarios",
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.AddCommand(newRunCmd(stdout, stderr), newVersionCmd(stdout))
	return root
}

func newVersionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(stdout, "reduxact %s\n", version)
			fmt.Fprintf(stdout, "Commit: %s\n", commit)
			fmt.Fprintf(stdout, "Built: %s\n", date)
		},
	}
}

func newRunCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run [files...]",
		Short: "Run scenario files",
		Long: `The run command loads every TOML or YAML scenario file given, runs it and
reports the final state of each store. It exits with status 1 when a file
cannot be loaded or a scenario does not reach its expected state.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenarios(stdout, stderr, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", logging.FormatConsole, "Log format (console, json)")
	flags.BoolVar(&opts.metrics, "metrics", false, "Print store metrics in Prometheus text format")
	flags.BoolVar(&opts.trace, "trace", false, "Print the actions seen by the first store")

	return cmd
}

func runScenarios(stdout, stderr io.Writer, opts runOptions, files []string) error {
	logger, err := logging.New(logging.Config{
		Level:  opts.logLevel,
		Format: opts.logFormat,
		Output: stderr,
	})
	if err != nil {
		return err
	}

	loader := scenario.NewLoader()
	runner := scenario.NewRunner(scenario.Options{
		Logger:  logger,
		Metrics: opts.metrics,
		Trace:   opts.trace,
	})
	registry := prometheus.NewRegistry()

	failed := false
	for _, path := range files {
		sc, err := loader.Load(path)
		if err != nil {
			fmt.Fprintf(stdout, "ERROR %s: %v\n", path, err)
			failed = true
			continue
		}

		res, err := runner.Run(sc)
		if res == nil {
			fmt.Fprintf(stdout, "ERROR %s: %v\n", sc.Name, err)
			failed = true
			continue
		}
		report(stdout, res)
		if err != nil {
			failed = true
		}

		for i, m := range res.Metrics {
			labels := prometheus.Labels{"file": path, "scenario": res.Name, "store": strconv.Itoa(i)}
			if err := prometheus.WrapRegistererWith(labels, registry).Register(m); err != nil {
				logger.Warn().Err(err).Str("file", path).Str("scenario", res.Name).Int("store", i).Msg("registering metrics")
			}
		}
	}

	if opts.metrics {
		if err := writeMetrics(stdout, registry); err != nil {
			return err
		}
	}

	if failed {
		return errFailed
	}
	return nil
}

func report(w io.Writer, res *scenario.Result) {
	status := "PASS"
	if !res.Passed {
		status = "FAIL"
	}

	states := make([]string, len(res.States))
	for i, s := range res.States {
		states[i] = strconv.FormatInt(s, 10)
	}

	line := fmt.Sprintf("%s %s: states=[%s]", status, res.Name, strings.Join(states, " "))
	if res.Expect != nil {
		line += fmt.Sprintf(" expect=%d", *res.Expect)
	}
	fmt.Fprintln(w, line)

	for _, t := range res.Trace {
		fmt.Fprintf(w, "  %s\n", t)
	}
}

func writeMetrics(w io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}

	encoder := expfmt.NewEncoder(w, expfmt.FmtText)
	for _, mf := range families {
		if err := encoder.Encode(mf); err != nil {
			return fmt.Errorf("encoding metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
